package assertr

import (
	"assertr/holder"
)

// Derive starts a child chain on a value projected from a's value. The child owns
// the projected value and has its own detail messages and subject name, but its
// failures are reported through the root chain and its assertions count towards
// every ancestor. a.End verifies that the child performed at least one assertion.
func Derive[T, U any](a *AssertThat[T], mapper func(T) U) *AssertThat[U] {
	var mapped U
	if !a.broken {
		mapped = mapper(a.Actual())
	}

	return &AssertThat[U]{
		actual: holder.Owned(mapped),
		st:     a.st.derive(),
		broken: a.broken,
	}
}

// Map changes the type of a's value in place. The returned chain shares a's
// failure sink, detail messages and assertion counter.
func Map[T, U any](a *AssertThat[T], mapper func(holder.Holder[T]) holder.Holder[U]) *AssertThat[U] {
	return &AssertThat[U]{
		actual: mapper(a.actual),
		st:     a.st,
		broken: a.broken,
	}
}

// Field derives a child chain named name, runs check on it and ends it.
//
//	assertr.Field(a, "Name", func(p Person) string { return p.Name }, func(name *assertr.AssertThat[string]) {
//		name.IsEqualTo("Bob")
//	})
func Field[T, U any](a *AssertThat[T], name string, mapper func(T) U, check func(*AssertThat[U])) *AssertThat[T] {
	child := Derive(a, mapper).WithSubjectName(name)
	check(child)
	child.End()

	return a
}

// narrow counts one assertion and maps a's value with f. When f rejects the value,
// the chain fails with failure(value) and continues broken.
func narrow[T, U any](a *AssertThat[T], f func(T) (U, bool), failure func(T) string) *AssertThat[U] {
	a.Track()

	if a.broken {
		var zero U
		return Map(a, func(holder.Holder[T]) holder.Holder[U] { return holder.Owned(zero) })
	}

	var (
		ok  bool
		msg string
	)

	next := Map(a, func(h holder.Holder[T]) holder.Holder[U] {
		return holder.Map(h, func(v T) U {
			u, good := f(v)
			if !good {
				msg = failure(v)
			}
			ok = good

			return u
		})
	})

	if !ok {
		next.broken = true
		a.st.fail(msg, nil)
	}

	return next
}
