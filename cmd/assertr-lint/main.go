// Command assertr-lint reports assertion chains that are never ended.
//
// Usage:
//
//	assertr-lint [-pkg import/path] ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"assertr/internal/lint"
)

func main() {
	singlechecker.Main(lint.Analyzer)
}
