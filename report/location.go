package report

import (
	"bufio"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"unicode"
)

// Location is a position in a Go source file.
type Location struct {
	File   string
	Line   int
	Column int
}

// String formats the location as file:line:column.
func (l Location) String() string {
	return l.File + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Column)
}

const maxCallerDepth = 64

// moduleDir is the directory holding the sources of this module. Frames inside it
// belong to the library, except for test files.
var moduleDir = func() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}

	return filepath.Dir(filepath.Dir(file))
}()

// Caller returns the location of the innermost stack frame that does not belong to
// the library sources: the line of user code that ran the failing assertion.
func Caller() (Location, bool) {
	pcs := make([]uintptr, maxCallerDepth)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	for {
		frame, more := frames.Next()
		if frame.File != "" && !isLibraryFrame(frame) {
			return Location{
				File:   frame.File,
				Line:   frame.Line,
				Column: column(frame.File, frame.Line),
			}, true
		}

		if !more {
			return Location{}, false
		}
	}
}

func isLibraryFrame(frame runtime.Frame) bool {
	if strings.HasPrefix(frame.Function, "runtime.") {
		return true
	}

	if strings.HasSuffix(frame.File, "_test.go") {
		return false
	}

	return moduleDir != "" && strings.HasPrefix(frame.File, moduleDir+"/")
}

// column returns the 1-based column of the first non-blank character on the given
// line. Stack frames carry no column, so the statement start stands in for it.
func column(file string, line int) int {
	f, err := os.Open(file)
	if err != nil {
		return 1
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for n := 1; scanner.Scan(); n++ {
		if n != line {
			continue
		}

		text := scanner.Text()
		for i, r := range text {
			if !unicode.IsSpace(r) {
				return i + 1
			}
		}

		return 1
	}

	return 1
}
