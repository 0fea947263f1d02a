package eq

import (
	"math"
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// Equaler is implemented by values that compare themselves against a B.
type Equaler[B any] interface {
	EqualTo(other B, ctx *Context) bool
}

// Pattern is implemented by expectations that match a live value of type A.
// Generated pattern types implement it for the struct they describe.
type Pattern[A any] interface {
	Matches(actual A, ctx *Context) bool
}

// Matcher is the untyped form of Pattern. CompareAny consults it when the static
// types of both sides are unknown, for example for elements of []any.
type Matcher interface {
	MatchAny(actual any, ctx *Context) bool
}

// exportAll lets native equality look into unexported fields.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// Compare reports whether a equals b. An Equaler on the left or a Pattern on the
// right decides; otherwise CompareAny applies.
func Compare[A, B any](a A, b B, ctx *Context) bool {
	if e, ok := any(a).(Equaler[B]); ok {
		return e.EqualTo(b, ctx)
	}

	if p, ok := any(b).(Pattern[A]); ok {
		return p.Matches(a, ctx)
	}

	return CompareAny(a, b, ctx)
}

// CompareAny compares two dynamically typed values:
//   - a Matcher on the right decides;
//   - slices and arrays are equal when they have the same length and every
//     index-aligned pair compares equal;
//   - maps are equal when they have the same keys with equal values;
//   - values of the same type use native equality (honoring Equal methods);
//   - basic values of the same kind (a named type and its unnamed form) are
//     compared after conversion;
//   - numbers of different kinds are equal when they denote the same value, so
//     int64(5) equals the untyped constant 5;
//   - an untyped nil equals nil pointers, slices, maps, channels and funcs.
//
// Only Matchers record differences; native equality is atomic.
func CompareAny(a, b any, ctx *Context) bool {
	if m, ok := b.(Matcher); ok {
		return m.MatchAny(a, ctx)
	}

	if a == nil || b == nil {
		return isNil(a) && isNil(b)
	}

	ra := reflect.ValueOf(a)
	rb := reflect.ValueOf(b)

	switch {
	case isSequence(ra) && isSequence(rb):
		return sequenceValues(ra, rb)
	case ra.Kind() == reflect.Map && rb.Kind() == reflect.Map:
		return mapValues(ra, rb)
	case ra.Type() == rb.Type():
		return cmp.Equal(a, b, exportAll)
	case isBasic(ra.Kind()) && ra.Kind() == rb.Kind():
		return rb.Convert(ra.Type()).Equal(ra)
	case isNumber(ra.Kind()) && isNumber(rb.Kind()):
		return numbers(ra, rb)
	default:
		return false
	}
}

// Sequence reports whether a and b have equal length and every index-aligned pair
// compares equal. It stops at the first mismatch and records no per-index detail.
func Sequence[A, B any](a []A, b []B) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !Compare(a[i], b[i], nil) {
			return false
		}
	}

	return true
}

func sequenceValues(a, b reflect.Value) bool {
	if a.Len() != b.Len() {
		return false
	}

	for i := range a.Len() {
		if !CompareAny(a.Index(i).Interface(), b.Index(i).Interface(), nil) {
			return false
		}
	}

	return true
}

func mapValues(a, b reflect.Value) bool {
	if a.Len() != b.Len() {
		return false
	}

	keyType := b.Type().Key()

	iter := a.MapRange()
	for iter.Next() {
		key := iter.Key()
		if key.Type() != keyType {
			if !key.Type().ConvertibleTo(keyType) {
				return false
			}

			key = key.Convert(keyType)
		}

		other := b.MapIndex(key)
		if !other.IsValid() {
			return false
		}

		if !CompareAny(iter.Value().Interface(), other.Interface(), nil) {
			return false
		}
	}

	return true
}

// isNil reports whether v is nil or a typed nil of a nil-able kind.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// numbers compares two numeric values of different kinds without losing
// precision: a float only equals an integer when it is integral and in range.
func numbers(a, b reflect.Value) bool {
	if isFloat(b.Kind()) && !isFloat(a.Kind()) {
		a, b = b, a
	}

	switch {
	case isFloat(a.Kind()) && isFloat(b.Kind()):
		return a.Float() == b.Float()
	case isFloat(a.Kind()):
		f := a.Float()
		if f != math.Trunc(f) {
			return false
		}

		if isUnsigned(b.Kind()) {
			return f >= 0 && f < 1<<64 && uint64(f) == b.Uint()
		}

		return f >= math.MinInt64 && f < 1<<63 && int64(f) == b.Int()
	case isUnsigned(a.Kind()) && isUnsigned(b.Kind()):
		return a.Uint() == b.Uint()
	case isUnsigned(a.Kind()):
		return b.Int() >= 0 && uint64(b.Int()) == a.Uint()
	case isUnsigned(b.Kind()):
		return a.Int() >= 0 && uint64(a.Int()) == b.Uint()
	default:
		return a.Int() == b.Int()
	}
}

func isNumber(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Float64
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func isUnsigned(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isSequence(v reflect.Value) bool {
	return v.Kind() == reflect.Slice || v.Kind() == reflect.Array
}

func isBasic(k reflect.Kind) bool {
	switch k {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}
