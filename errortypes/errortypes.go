package errortypes

import (
	"fmt"
	"strings"
)

// UnknownField should be used when a variable line carries a key that is not
// part of the active document's allowlist. Key holds the rejected key, Line a
// bounded preview of the offending line, and Allowed the full allowlist.
type UnknownField struct {
	Key     string
	Line    string
	Allowed []string
}

func (err *UnknownField) Error() string {
	return fmt.Sprintf("unknown variable %q in line %q: expected one of %s",
		err.Key, err.Line, strings.Join(err.Allowed, ", "))
}

func (err *UnknownField) Code() int {
	return UnknownFieldErrorCode
}

func (err *UnknownField) Severity() Severity {
	return SeverityFatal
}

// UnsupportedDirective should be used when a variable is syntactically valid
// but belongs to a newer file version than the one being parsed. app-ads.txt
// 1.0 rejects the ads.txt 1.1 directives OWNERDOMAIN and MANAGERDOMAIN this
// way, rather than treating them as unknown keys.
type UnsupportedDirective struct {
	Directive string
}

func (err *UnsupportedDirective) Error() string {
	return fmt.Sprintf("directive %s is part of ads.txt 1.1 and is not valid in app-ads.txt 1.0", err.Directive)
}

func (err *UnsupportedDirective) Code() int {
	return UnsupportedDirectiveErrorCode
}

func (err *UnsupportedDirective) Severity() Severity {
	return SeverityFatal
}

// MissingField should be used when a line lacks a mandatory component: a
// variable with no value segment, or a seller record without one of domain,
// publisher id or relation.
type MissingField struct {
	Field string
	Line  string
}

func (err *MissingField) Error() string {
	return fmt.Sprintf("missing %s in line %q", err.Field, err.Line)
}

func (err *MissingField) Code() int {
	return MissingFieldErrorCode
}

func (err *MissingField) Severity() Severity {
	return SeverityFatal
}

// InvalidValue should be used when a value is present but not acceptable: an
// unrecognized relation keyword, an unknown country code, or a malformed
// manager domain. Value holds a bounded preview of the rejected text and
// Expected a short hint describing what would have been accepted.
type InvalidValue struct {
	Value    string
	Expected string
}

func (err *InvalidValue) Error() string {
	return fmt.Sprintf("invalid value %q: expected %s", err.Value, err.Expected)
}

func (err *InvalidValue) Code() int {
	return InvalidValueErrorCode
}

func (err *InvalidValue) Severity() Severity {
	return SeverityFatal
}

// ConversionRejected should be used when downgrading an ads.txt 1.1 document
// to app-ads.txt 1.0 would lose populated 1.1-only fields.
type ConversionRejected struct {
	Field string
}

func (err *ConversionRejected) Error() string {
	return fmt.Sprintf("cannot convert to app-ads.txt 1.0: %s is ads.txt 1.1-only and is populated", err.Field)
}

func (err *ConversionRejected) Code() int {
	return ConversionRejectedErrorCode
}

func (err *ConversionRejected) Severity() Severity {
	return SeverityFatal
}

// Warning is a generic non-fatal finding, produced by the advisory document
// validators rather than by parsing.
type Warning struct {
	Message     string
	WarningCode int
}

func (err *Warning) Error() string {
	return err.Message
}

func (err *Warning) Code() int {
	return err.WarningCode
}

func (err *Warning) Severity() Severity {
	return SeverityWarning
}
