package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"assertr/internal/common"
)

// Diagnostic codes.
const (
	CodeNoPackage      = "no_package"
	CodeNoTypes        = "no_types"
	CodeUnknownType    = "unknown_type"
	CodeNotStruct      = "not_struct"
	CodeDuplicateType  = "duplicate_type"
	CodeDuplicateName  = "duplicate_pattern_name"
	CodeInvalidName    = "invalid_identifier"
	CodeUnknownField   = "unknown_field"
	CodeUnknownPattern = "unknown_pattern"
	CodePatternType    = "pattern_type_mismatch"
	CodeSkippedField   = "skipped_field"
	CodeEmptyPattern   = "empty_pattern"
	CodeConflict       = "conflicting_options"
)

// Diagnostics holds all diagnostics of one validation run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic is a single finding.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a stable identifier for the kind of finding.
	Code string
	// Message is the human-readable description.
	Message string
	// TypeName is the configured type this relates to (if any).
	TypeName string
	// FieldPath is the field this relates to (if any).
	FieldPath string
	// Suggestions are close names the user may have meant.
	Suggestions []string
}

// Severity is the level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, typeName, fieldPath string, suggestions ...string) {
	d.Errors = append(d.Errors, newDiagnostic(SeverityError, code, message, typeName, fieldPath, suggestions))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, typeName, fieldPath string) {
	d.Warnings = append(d.Warnings, newDiagnostic(SeverityWarning, code, message, typeName, fieldPath, nil))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, typeName, fieldPath string) {
	d.Infos = append(d.Infos, newDiagnostic(SeverityInfo, code, message, typeName, fieldPath, nil))
}

func newDiagnostic(sev Severity, code, message, typeName, fieldPath string, suggestions []string) Diagnostic {
	return Diagnostic{
		Severity:    sev,
		Code:        code,
		Message:     message,
		TypeName:    typeName,
		FieldPath:   fieldPath,
		Suggestions: suggestions,
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns every diagnostic, errors first.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, len(d.Errors))
	for i, e := range d.Errors {
		parts[i] = e.String()
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string:
//
//	[Person] Person.Adress: [unknown_field] no field Adress (did you mean Address?)
func (d Diagnostic) String() string {
	var prefix []string
	if d.TypeName != "" {
		prefix = append(prefix, "["+d.TypeName+"]")
	}

	if d.FieldPath != "" {
		prefix = append(prefix, d.FieldPath)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
