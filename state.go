package assertr

import (
	"strings"

	"assertr/report"
	"assertr/strategy"
)

// state is the diagnostic scope shared by every AssertThat of one chain node.
// Map keeps the state, Derive creates a child state linked to its parent.
type state struct {
	parent   *state
	children []*state

	subject    string
	details    []string
	assertions int
	location   bool

	// strategy is only consulted on the root; derived states delegate to it.
	strategy *strategy.Strategy

	ended   bool
	aborted bool
}

func newRootState() *state {
	return &state{location: true, strategy: strategy.New()}
}

func (s *state) derive() *state {
	child := &state{
		parent:   s,
		location: s.location,
		strategy: strategy.New(),
	}
	s.children = append(s.children, child)

	return child
}

func (s *state) isRoot() bool {
	return s.parent == nil
}

func (s *state) root() *state {
	for s.parent != nil {
		s = s.parent
	}

	return s
}

// track counts one assertion on s and every ancestor.
func (s *state) track() {
	s.checkLive()

	for n := s; n != nil; n = n.parent {
		n.assertions++
	}
}

// collectDetails returns extra followed by the detail messages of s and its
// ancestors, nearest scope first.
func (s *state) collectDetails(extra []string) []string {
	details := append([]string(nil), extra...)
	for n := s; n != nil; n = n.parent {
		details = append(details, n.details...)
	}

	return details
}

// subjectPath joins the subject names from the root down to s.
func (s *state) subjectPath() string {
	var names []string
	for n := s; n != nil; n = n.parent {
		if n.subject != "" {
			names = append([]string{n.subject}, names...)
		}
	}

	return strings.Join(names, ".")
}

// fail formats a report and hands it to the root strategy. In abort mode this
// does not return.
func (s *state) fail(primary string, extra []string) {
	s.checkLive()

	var loc *report.Location
	if s.location {
		if l, ok := report.Caller(); ok {
			loc = &l
		}
	}

	if path := s.subjectPath(); path != "" {
		primary = "Subject: " + path + "\n\n" + primary
	}

	text := report.Format(primary, s.collectDetails(extra), loc)

	root := s.root()
	if root.strategy.Mode() == strategy.ModeAbort {
		root.aborted = true
	}

	root.strategy.Record(text)
}

// checkLive panics when the root chain already ended. Its strategy is settled
// by then, so a late failure could not be reported.
func (s *state) checkLive() {
	if s.root().ended {
		panic(misuse(MisuseUsedAfterEnd, nil))
	}
}

// end enforces the end-of-life invariants of s.
func (s *state) end() {
	if s.ended {
		return
	}

	s.ended = true

	if s.assertions == 0 {
		if s.isRoot() {
			panic(misuse(MisuseNoAssertions, nil))
		}

		panic(misuse(MisuseUncheckedChild, nil))
	}

	if s.hasUncheckedDescendant() {
		panic(misuse(MisuseUncheckedChild, nil))
	}

	if s.isRoot() {
		if err := s.strategy.Verify(); err != nil {
			panic(misuse(MisuseUndrained, err))
		}
	}
}

// hasUncheckedDescendant reports whether any chain derived from s, at any depth,
// performed no assertion. Counts include descendants, so a checked child can
// still hide an unchecked grandchild.
func (s *state) hasUncheckedDescendant() bool {
	for _, child := range s.children {
		if child.assertions == 0 || child.hasUncheckedDescendant() {
			return true
		}
	}

	return false
}
