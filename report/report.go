package report

import (
	"strings"
)

// Delimiter opens and closes every failure report.
const Delimiter = "-------- assertr --------"

const detailIndent = "    "

// Report is a single failed assertion ready to be rendered.
type Report struct {
	// Primary is the failure message of the assertion itself.
	Primary string
	// Details are the collected detail messages, nearest scope first.
	Details []string
	// Location is the call site of the assertion. Nil disables the location header.
	Location *Location
}

// String renders the report.
func (r Report) String() string {
	return Format(r.Primary, r.Details, r.Location)
}

// Format renders a failure report:
//
//	-------- assertr --------
//	Assertion failed at <file>:<line>:<column>
//
//	<primary>
//
//	Details: [
//	    <detail>,
//	]
//	-------- assertr --------
//
// The location header is written only for a non-nil loc, the details block only for
// a non-empty details list.
func Format(primary string, details []string, loc *Location) string {
	var b strings.Builder

	b.WriteString(Delimiter)
	b.WriteByte('\n')

	if loc != nil {
		b.WriteString("Assertion failed at ")
		b.WriteString(loc.String())
		b.WriteString("\n\n")
	}

	b.WriteString(primary)
	b.WriteByte('\n')

	if len(details) > 0 {
		b.WriteString("\nDetails: [\n")
		for _, d := range details {
			b.WriteString(detailIndent)
			b.WriteString(d)
			b.WriteString(",\n")
		}
		b.WriteString("]\n")
	}

	b.WriteString(Delimiter)
	b.WriteByte('\n')

	return b.String()
}
