// Package render turns values into the text used by failure messages.
package render

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/pmezard/go-difflib/difflib"
)

var spewConfig = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	DisableMethods:          true,
	MaxDepth:                10,
}

var spewConfigStringerEnabled = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	MaxDepth:                10,
}

// Value renders a single value: strings quoted, numbers and bools plain, nil as
// "nil", errors by their message and composites in Go syntax.
func Value(v any) string {
	if v == nil {
		return "nil"
	}

	if err, ok := v.(error); ok {
		return strconv.Quote(err.Error())
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return strconv.Quote(rv.String())
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%#v", v)
	}
}

// List renders values as "[a, b, c]".
func List[T any](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = Value(v)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// Dump renders v in the multi-line spew format used for diffs.
func Dump(v any) string {
	return spewConfig.Sdump(v)
}

// Diff returns a unified diff between expected and actual when both have the same
// type and that type is a struct, map, slice, array or string. It returns "" when a
// line diff would not help the reader.
func Diff(expected, actual any) string {
	if expected == nil || actual == nil {
		return ""
	}

	et, ek := typeAndKind(expected)
	at, _ := typeAndKind(actual)

	if et != at {
		return ""
	}

	if ek != reflect.Struct && ek != reflect.Map && ek != reflect.Slice && ek != reflect.Array && ek != reflect.String {
		return ""
	}

	var e, a string

	switch et {
	case reflect.TypeFor[string]():
		e = reflect.ValueOf(expected).String()
		a = reflect.ValueOf(actual).String()
	case reflect.TypeFor[time.Time]():
		e = spewConfigStringerEnabled.Sdump(expected)
		a = spewConfigStringerEnabled.Sdump(actual)
	default:
		e = spewConfig.Sdump(expected)
		a = spewConfig.Sdump(actual)
	}

	if ek == reflect.String && !strings.Contains(e, "\n") && !strings.Contains(a, "\n") {
		return ""
	}

	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(e),
		B:        difflib.SplitLines(a),
		FromFile: "Expected",
		FromDate: "",
		ToFile:   "Actual",
		ToDate:   "",
		Context:  1,
	})

	return diff
}

func typeAndKind(v any) (reflect.Type, reflect.Kind) {
	t := reflect.TypeOf(v)
	k := t.Kind()

	if k == reflect.Ptr {
		t = t.Elem()
		k = t.Kind()
	}

	return t, k
}
