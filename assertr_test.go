package assertr_test

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assertr"
	"assertr/eq"
	"assertr/holder"
	"assertr/report"
)

type person struct {
	Name string
	Age  int
}

type personPattern struct {
	Name eq.Eq[string]
	Age  eq.Eq[int]
}

func (p personPattern) Matches(actual person, ctx *eq.Context) bool {
	ok := eq.Field(ctx, "Name", actual.Name, p.Name)
	return eq.Field(ctx, "Age", actual.Age, p.Age) && ok
}

func block(lines ...string) string {
	return report.Delimiter + "\n" + strings.Join(lines, "\n") + "\n" + report.Delimiter + "\n"
}

func misuseOf(t *testing.T, fn func()) *assertr.MisuseError {
	t.Helper()

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()

	require.NotNil(t, recovered, "expected a misuse panic")

	err, ok := recovered.(*assertr.MisuseError)
	require.Truef(t, ok, "expected *assertr.MisuseError, got %T: %v", recovered, recovered)

	return err
}

func TestAbortPanicsWithReport(t *testing.T) {
	expected := block(
		"Expected: 2",
		"",
		"  Actual: 1",
	)

	assert.PanicsWithValue(t, expected, func() {
		assertr.That(1).WithLocation(false).IsEqualTo(2)
	})
}

func TestPassingChain(t *testing.T) {
	a := assertr.That(person{Name: "Bob", Age: 30})
	a.IsEqualTo(person{Name: "Bob", Age: 30}).
		IsNotEqualTo(person{Name: "Alice"}).
		Satisfies(func(p person) bool { return p.Age > 18 }, "is an adult")

	assert.Equal(t, 3, a.Assertions())
	assert.NotPanics(t, a.End)
}

func TestEndWithoutAssertions(t *testing.T) {
	err := misuseOf(t, func() {
		assertr.That(1).End()
	})

	assert.Equal(t, assertr.MisuseNoAssertions, err.Kind)
	assert.EqualError(t, err, "assertr: assertion chain ended without performing a single assertion")
}

func TestEndTwiceIsNoop(t *testing.T) {
	a := assertr.That("x").IsEqualTo("x")
	a.End()

	assert.NotPanics(t, a.End)
}

func TestCaptureCollectsEveryFailure(t *testing.T) {
	a := assertr.That(1).WithCapture().WithLocation(false)
	a.WithDetailMessage("first").IsEqualTo(2)
	a.WithDetailMessage("second").IsEqualTo(3)

	failures := a.CaptureFailures()
	require.Len(t, failures, 2)

	assert.Equal(t, block(
		"Expected: 2",
		"",
		"  Actual: 1",
		"",
		"Details: [",
		"    first,",
		"]",
	), failures[0])

	assert.Equal(t, block(
		"Expected: 3",
		"",
		"  Actual: 1",
		"",
		"Details: [",
		"    first,",
		"    second,",
		"]",
	), failures[1])
}

func TestCaptureWithoutFailures(t *testing.T) {
	a := assertr.That(1).WithCapture().IsEqualTo(1)

	failures := a.CaptureFailures()
	assert.NotNil(t, failures)
	assert.Empty(t, failures)
}

func TestDerivedFailureReachesRoot(t *testing.T) {
	root := assertr.That(person{Name: "Bob", Age: 30}).WithCapture().WithLocation(false)
	root.WithDetailMessage("checking the person")

	name := assertr.Derive(root, func(p person) string { return p.Name }).
		WithSubjectName("Name").
		WithDetailMessage("checking the name")
	name.IsEqualTo("Alice")

	assert.Equal(t, 1, name.Assertions())
	assert.Equal(t, 1, root.Assertions())

	failures := root.CaptureFailures()
	require.Len(t, failures, 1)
	assert.Equal(t, block(
		"Subject: Name",
		"",
		`Expected: "Alice"`,
		"",
		`  Actual: "Bob"`,
		"",
		"Details: [",
		"    checking the name,",
		"    checking the person,",
		"]",
	), failures[0])
}

func TestDerivedDetailsDoNotLeakToParent(t *testing.T) {
	root := assertr.That(person{Name: "Bob"}).WithCapture().WithLocation(false)

	assertr.Derive(root, func(p person) string { return p.Name }).
		WithDetailMessage("child only").
		IsEqualTo("Bob")
	root.Satisfies(func(p person) bool { return p.Age > 0 }, "has an age")

	failures := root.CaptureFailures()
	require.Len(t, failures, 1)
	assert.NotContains(t, failures[0], "child only")
}

func TestFieldNamesSubjectAndEndsChild(t *testing.T) {
	root := assertr.That(person{Name: "Bob", Age: 30}).WithCapture().WithLocation(false).WithSubjectName("person")

	assertr.Field(root, "Age", func(p person) int { return p.Age }, func(age *assertr.AssertThat[int]) {
		age.IsEqualTo(31)
	})

	failures := root.CaptureFailures()
	require.Len(t, failures, 1)
	assert.True(t, strings.HasPrefix(failures[0], report.Delimiter+"\nSubject: person.Age\n\nExpected: 31"), failures[0])
}

func TestUncheckedChild(t *testing.T) {
	err := misuseOf(t, func() {
		root := assertr.That(person{Name: "Bob"})
		assertr.Derive(root, func(p person) string { return p.Name })
		root.IsEqualTo(person{Name: "Bob"}).End()
	})

	assert.Equal(t, assertr.MisuseUncheckedChild, err.Kind)
}

func TestMapSharesState(t *testing.T) {
	a := assertr.That(7).WithCapture().WithLocation(false).WithDetailMessage("as text")

	text := assertr.Map(a, func(h holder.Holder[int]) holder.Holder[string] {
		return holder.Map(h, strconv.Itoa)
	})
	text.IsEqualTo("8")

	assert.Equal(t, 1, a.Assertions())

	failures := a.CaptureFailures()
	require.Len(t, failures, 1)
	assert.Contains(t, failures[0], `Expected: "8"`)
	assert.Contains(t, failures[0], "    as text,")
}

func TestCaptureFailuresOnDerived(t *testing.T) {
	root := assertr.That(person{Name: "Bob"}).WithCapture()
	child := assertr.Derive(root, func(p person) string { return p.Name })
	child.IsEqualTo("Bob")

	err := misuseOf(t, func() { child.CaptureFailures() })
	assert.Equal(t, assertr.MisuseCaptureOnDerived, err.Kind)

	err = misuseOf(t, func() { child.WithCapture() })
	assert.Equal(t, assertr.MisuseCaptureOnDerived, err.Kind)

	assert.Empty(t, root.CaptureFailures())
}

func TestUndrainedCapture(t *testing.T) {
	assert.PanicsWithError(t,
		"assertr: assertion chain in capture mode ended without draining its failures; call CaptureFailures()",
		func() {
			assertr.That(1).WithCapture().IsEqualTo(2).End()
		},
	)
}

func TestDrainTwice(t *testing.T) {
	a := assertr.That(1).WithCapture().IsEqualTo(1)
	a.CaptureFailures()

	err := misuseOf(t, func() { a.CaptureFailures() })
	assert.Equal(t, assertr.MisuseDrainedTwice, err.Kind)

	err = misuseOf(t, func() { a.WithCapture() })
	assert.Equal(t, assertr.MisuseDrainedTwice, err.Kind)
}

func TestCaptureFailuresWithoutCapture(t *testing.T) {
	a := assertr.That(1).IsEqualTo(1)

	err := misuseOf(t, func() { a.CaptureFailures() })
	assert.Equal(t, assertr.MisuseNotCapturing, err.Kind)
}

func TestWithoutCapture(t *testing.T) {
	a := assertr.That(1).WithCapture()
	assert.True(t, a.IsCapturing())

	a.WithoutCapture()
	assert.False(t, a.IsCapturing())

	a.WithCapture().WithLocation(false).IsEqualTo(2)

	err := misuseOf(t, func() { a.WithoutCapture() })
	assert.Equal(t, assertr.MisusePendingFailures, err.Kind)
	assert.Len(t, a.CaptureFailures(), 1)
}

func TestUnwrapOwned(t *testing.T) {
	assert.Equal(t, 5, assertr.That(5).UnwrapOwned())

	v := 5
	err := misuseOf(t, func() { assertr.ThatRef(&v).UnwrapOwned() })

	assert.Equal(t, assertr.MisuseNotOwned, err.Kind)
	assert.ErrorIs(t, err, holder.ErrNotOwned)
}

func TestThatRefBorrows(t *testing.T) {
	v := person{Name: "Bob"}
	a := assertr.ThatRef(&v)

	assert.Same(t, &v, a.ActualRef())
	a.IsEqualTo(person{Name: "Bob"}).End()
}

func TestLocation(t *testing.T) {
	var (
		file string
		line int
	)

	recovered := func() (r any) {
		defer func() { r = recover() }()

		_, file, line, _ = runtime.Caller(0)
		assertr.That(1).IsEqualTo(2)

		return nil
	}()

	msg, ok := recovered.(string)
	require.True(t, ok)
	assert.Contains(t, msg, fmt.Sprintf("Assertion failed at %s:%d:3\n\n", file, line+1))
}

func TestIsEqualToPattern(t *testing.T) {
	a := assertr.That(person{Name: "Bob", Age: 30}).WithCapture().WithLocation(false)
	a.IsEqualTo(personPattern{Name: eq.Exact("Bob")})
	a.IsEqualTo(personPattern{Name: eq.Exact("Alice"), Age: eq.Exact(31)})
	assertr.EqualTo(a, personPattern{Age: eq.Exact(30)})

	failures := a.CaptureFailures()
	require.Len(t, failures, 1)
	assert.Contains(t, failures[0], "Details: [\n"+
		`    "Name": expected "Alice", but was "Bob",`+"\n"+
		`    "Age": expected 31, but was 30,`+"\n"+
		"]\n")
}

func TestIsEqualToStructDiff(t *testing.T) {
	a := assertr.That(person{Name: "Bob", Age: 30}).WithCapture().WithLocation(false)
	a.IsEqualTo(person{Name: "Bob", Age: 31})

	failures := a.CaptureFailures()
	require.Len(t, failures, 1)
	assert.Contains(t, failures[0], "Diff:\n--- Expected\n+++ Actual\n")
	assert.Contains(t, failures[0], "- Age: (int) 31\n")
	assert.Contains(t, failures[0], "+ Age: (int) 30\n")
}

func TestSome(t *testing.T) {
	p := &person{Name: "Bob"}
	assertr.Some(assertr.That(p)).IsEqualTo(person{Name: "Bob"}).End()

	a := assertr.That[*person](nil).WithCapture().WithLocation(false)
	assertr.Some(a).IsEqualTo(person{Name: "Bob"})

	assert.Equal(t, 2, a.Assertions())

	failures := a.CaptureFailures()
	require.Len(t, failures, 1)
	assert.Contains(t, failures[0], "Expected: non-nil *assertr_test.person\n\n  Actual: nil")
}

func TestSliceAssertions(t *testing.T) {
	a := assertr.That([]int{1, 2, 3}).WithCapture().WithLocation(false)
	assertr.HasLength(a, 3)
	assertr.ContainsExactly(a, []int{1, 2, 3})
	assertr.ContainsExactlyInAnyOrder(a, []int{3, 1, 2})
	assertr.ContainsExactlyMatchingInAnyOrder(a,
		func(v int) bool { return v == 1 },
		func(v int) bool { return v > 1 },
		func(v int) bool { return v > 2 },
	)

	assert.Empty(t, a.CaptureFailures())
}

func TestContainsExactlyFailures(t *testing.T) {
	a := assertr.That([]int{1, 2, 3}).WithCapture().WithLocation(false)
	assertr.ContainsExactly(a, []int{3, 2, 1})
	assertr.ContainsExactly(a, []int{1, 2})

	failures := a.CaptureFailures()
	require.Len(t, failures, 2)

	assert.Equal(t, block(
		"Actual: [1, 2, 3]",
		"",
		"did not exactly match",
		"",
		"Expected: [3, 2, 1]",
		"",
		"Details: [",
		"    The order of elements does not match!,",
		"]",
	), failures[0])

	assert.Contains(t, failures[1], "    Elements not expected: [3],\n")
	assert.Contains(t, failures[1], "    Actual length 3 does not match expected length 2,\n")
}

func TestContainsExactlyInAnyOrderFailure(t *testing.T) {
	a := assertr.That([]int{1, 5, 7}).WithCapture().WithLocation(false)
	assertr.ContainsExactlyInAnyOrder(a, []int{5, 3, 4, 42})

	failures := a.CaptureFailures()
	require.Len(t, failures, 1)
	assert.Contains(t, failures[0], "Details: [\n"+
		"    Elements not expected: [1, 7],\n"+
		"    Elements not found: [3, 4, 42],\n"+
		"    Actual length 3 does not match expected length 4,\n"+
		"]\n")
}

func TestContainsExactlyMatchingInAnyOrderFailure(t *testing.T) {
	a := assertr.That([]string{"a", "bb", "ccc"}).WithCapture().WithLocation(false)
	assertr.ContainsExactlyMatchingInAnyOrder(a,
		func(s string) bool { return len(s) == 1 },
		func(s string) bool { return len(s) == 2 },
	)

	failures := a.CaptureFailures()
	require.Len(t, failures, 1)
	assert.Contains(t, failures[0], `    Elements not matched by any predicate: ["ccc"],`)
	assert.Contains(t, failures[0], "    Actual length 3 does not match the number of predicates 2,")
}

func TestHasLengthFailure(t *testing.T) {
	a := assertr.That([]int{1}).WithCapture().WithLocation(false)
	assertr.HasLength(a, 2)

	failures := a.CaptureFailures()
	require.Len(t, failures, 1)
	assert.Equal(t, block(
		"Expected length: 2",
		"",
		"  Actual length: 1",
		"",
		"Details: [",
		"    Actual: [1],",
		"]",
	), failures[0])
}

func TestMapEqualTo(t *testing.T) {
	a := assertr.That(map[string]int{"e1": 42}).WithCapture().WithLocation(false)
	assertr.MapEqualTo(a, map[string]int{"e1": 42})
	assertr.MapEqualTo(a, map[string]int{"e1": 43})
	assertr.MapEqualTo(a, map[string]int{})

	failures := a.CaptureFailures()
	require.Len(t, failures, 2)
	assert.Contains(t, failures[0], `    "e1": expected 43, but was 42,`)
	assert.Contains(t, failures[1], `    Key not expected: "e1",`)
}

func TestThatPanic(t *testing.T) {
	a := assertr.ThatPanic(func() { panic("boom") })
	assertr.HasPanicMessage(a, "boom")
	assertr.PanicValueAs[string](a).IsEqualTo("boom").End()

	assertr.HasPanicMessage(assertr.ThatPanic(func() { panic(errors.New("bad")) }), "bad").End()
}

func TestThatPanicOnFailedAssertion(t *testing.T) {
	a := assertr.ThatPanic(func() {
		assertr.That(1).WithLocation(false).IsEqualTo(2)
	})

	assertr.HasPanicMessage(a, block("Expected: 2", "", "  Actual: 1")).End()
}

func TestPanicValueAsFailures(t *testing.T) {
	a := assertr.ThatPanic(func() {}).WithCapture().WithLocation(false)
	assertr.PanicValueAs[string](a).IsEqualTo("never evaluated")
	assertr.HasPanicMessage(a, "boom")

	assert.Equal(t, 3, a.Assertions())

	failures := a.CaptureFailures()
	require.Len(t, failures, 2)
	assert.Contains(t, failures[0], "Expected the function to panic, but it returned normally")
	assert.Contains(t, failures[1], "Expected the function to panic, but it returned normally")

	b := assertr.ThatPanic(func() { panic(42) }).WithCapture().WithLocation(false)
	assertr.PanicValueAs[string](b)

	failures = b.CaptureFailures()
	require.Len(t, failures, 1)
	assert.Contains(t, failures[0], "Expected a panic value of type string, but it was int: 42")
}

type recordingTB struct {
	testing.TB

	cleanups []func()
	errors   []string
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Cleanup(f func()) {
	r.cleanups = append(r.cleanups, f)
}

func (r *recordingTB) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *recordingTB) runCleanups() {
	for _, f := range r.cleanups {
		f()
	}
}

func TestBoundTo(t *testing.T) {
	t.Run("ended", func(t *testing.T) {
		tb := &recordingTB{}
		assertr.That(1).BoundTo(tb).IsEqualTo(1).End()
		tb.runCleanups()

		assert.Empty(t, tb.errors)
	})

	t.Run("not ended", func(t *testing.T) {
		tb := &recordingTB{}
		assertr.That(1).BoundTo(tb).IsEqualTo(1)
		tb.runCleanups()

		assert.Equal(t, []string{"assertr: assertion chain was never ended; finish it with End() or CaptureFailures()"}, tb.errors)
	})

	t.Run("aborted", func(t *testing.T) {
		tb := &recordingTB{}
		assert.Panics(t, func() {
			assertr.That(1).BoundTo(tb).IsEqualTo(2)
		})
		tb.runCleanups()

		assert.Empty(t, tb.errors)
	})

	t.Run("real test", func(t *testing.T) {
		assertr.That("bound").BoundTo(t).IsEqualTo("bound").End()
	})
}

func TestAssertingAfterCaptureFailures(t *testing.T) {
	a := assertr.That(1).WithCapture().IsEqualTo(1)
	assert.Empty(t, a.CaptureFailures())

	err := misuseOf(t, func() { a.IsEqualTo(2) })
	assert.Equal(t, assertr.MisuseUsedAfterEnd, err.Kind)

	err = misuseOf(t, func() { a.Fail("late") })
	assert.Equal(t, assertr.MisuseUsedAfterEnd, err.Kind)
}

func TestAssertingAfterEnd(t *testing.T) {
	a := assertr.That(person{Name: "Bob"}).IsEqualTo(person{Name: "Bob"})
	child := assertr.Derive(a, func(p person) string { return p.Name })
	child.IsEqualTo("Bob")
	a.End()

	err := misuseOf(t, func() { a.IsEqualTo(person{}) })
	assert.Equal(t, assertr.MisuseUsedAfterEnd, err.Kind)

	err = misuseOf(t, func() { child.IsEqualTo("Bob") })
	assert.Equal(t, assertr.MisuseUsedAfterEnd, err.Kind)
	assert.EqualError(t, err, "assertr: assertion chain was used after it ended; start a new chain with That()")
}

func TestUncheckedGrandchild(t *testing.T) {
	err := misuseOf(t, func() {
		root := assertr.That(person{Name: "Bob"})
		child := assertr.Derive(root, func(p person) string { return p.Name })
		child.IsEqualTo("Bob")
		assertr.Derive(child, func(s string) int { return len(s) })
		root.End()
	})

	assert.Equal(t, assertr.MisuseUncheckedChild, err.Kind)

	root := assertr.That(person{Name: "Bob"})
	child := assertr.Derive(root, func(p person) string { return p.Name })
	assertr.Derive(child, func(s string) int { return len(s) }).IsEqualTo(3)
	root.End()
}

func TestIsEqualToAcrossNumericKinds(t *testing.T) {
	assertr.That(int64(5)).IsEqualTo(5).End()
	assertr.That(uint8(200)).IsEqualTo(200).End()
	assertr.That(2.0).IsEqualTo(2).End()

	a := assertr.That(float32(0.1)).WithCapture().WithLocation(false)
	a.IsEqualTo(0.1)
	a.IsEqualTo(int64(6))

	failures := a.CaptureFailures()
	require.Len(t, failures, 2)
	assert.Equal(t, block("Expected: 0.1 (float64)", "", "  Actual: 0.1 (float32)"), failures[0])
	assert.Equal(t, block("Expected: 6", "", "  Actual: 0.1"), failures[1])
}

func TestIsEqualToNil(t *testing.T) {
	var err error
	assertr.That(err).IsEqualTo(nil).End()
	assertr.That((*int)(nil)).IsEqualTo(nil).End()
	assertr.That([]string(nil)).IsEqualTo(nil).End()
	assertr.That(map[string]int(nil)).IsEqualTo(nil).End()

	var typed *assertr.MisuseError
	err = typed
	assertr.That(err).IsEqualTo(nil).End()

	a := assertr.That([]string{}).WithCapture().WithLocation(false)
	a.IsEqualTo(nil)
	assertr.That(new(int)).IsNotEqualTo(nil).End()

	failures := a.CaptureFailures()
	require.Len(t, failures, 1)
	assert.Equal(t, block("Expected: nil", "", "  Actual: []string{}"), failures[0])
}
