// Package report renders failed assertions into the fixed assertr text block.
//
// The block is framed by Delimiter lines, optionally names the source location of
// the failing assertion, carries the primary message and lists every collected detail
// message, most specific first. Callers depend on this text verbatim.
package report
