package eq

import (
	"fmt"
	"strconv"
	"strings"

	"assertr/internal/render"
)

// Differences lists explanations of why two values are not equal.
type Differences []string

// String joins the differences, one per line.
func (d Differences) String() string {
	return strings.Join(d, "\n")
}

// Context accumulates the differences found during one comparison.
// All methods accept a nil receiver, which records nothing.
type Context struct {
	differences Differences
}

// NewContext creates an empty Context.
func NewContext() *Context {
	return &Context{}
}

// Add records a difference.
func (c *Context) Add(msg string) {
	if c == nil {
		return
	}

	c.differences = append(c.differences, msg)
}

// Addf records a formatted difference.
func (c *Context) Addf(format string, args ...any) {
	c.Add(fmt.Sprintf(format, args...))
}

// AddField records a mismatching field.
func (c *Context) AddField(field string, expected, actual any) {
	c.Add(strconv.Quote(field) + ": expected " + render.Value(expected) + ", but was " + render.Value(actual))
}

// Differences returns a copy of the recorded differences.
func (c *Context) Differences() Differences {
	if c == nil || len(c.differences) == 0 {
		return nil
	}

	return append(Differences(nil), c.differences...)
}

// Len returns the number of recorded differences.
func (c *Context) Len() int {
	if c == nil {
		return 0
	}

	return len(c.differences)
}
