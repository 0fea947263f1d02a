// Package gen generates pattern types for struct types.
//
// Generation uses text/template + go/format. For a struct T the generated TPattern
// holds one eq.Eq slot per exported field and implements:
//   - Matches(actual T, ctx *eq.Context) bool, checking every slot and recording
//     each mismatching field;
//   - MatchAny(actual any, ctx *eq.Context) bool, accepting T and *T.
//
// Fields may be skipped, matched by the pattern of another generated type, or
// compared by a custom function, as configured in a patternfile.File.
package gen
