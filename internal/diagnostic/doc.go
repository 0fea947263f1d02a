// Package diagnostic provides structured errors, warnings and infos produced while
// validating a pattern generator config against the loaded type graph.
//
// Each diagnostic carries a stable code, the type and field it concerns and
// optional "did you mean" suggestions.
package diagnostic
