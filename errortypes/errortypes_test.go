package errortypes

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadCode(t *testing.T) {
	tests := []struct {
		name     string
		give     error
		expected int
	}{
		{
			name:     "unknown_field",
			give:     &UnknownField{Key: "foo"},
			expected: UnknownFieldErrorCode,
		},
		{
			name:     "unsupported_directive",
			give:     &UnsupportedDirective{Directive: "OWNERDOMAIN"},
			expected: UnsupportedDirectiveErrorCode,
		},
		{
			name:     "missing_field",
			give:     &MissingField{Field: "relation"},
			expected: MissingFieldErrorCode,
		},
		{
			name:     "invalid_value",
			give:     &InvalidValue{Value: "x"},
			expected: InvalidValueErrorCode,
		},
		{
			name:     "conversion_rejected",
			give:     &ConversionRejected{Field: "ownerdomain"},
			expected: ConversionRejectedErrorCode,
		},
		{
			name:     "warning",
			give:     &Warning{Message: "m", WarningCode: InvalidDomainWarningCode},
			expected: InvalidDomainWarningCode,
		},
		{
			name:     "plain_error",
			give:     errors.New("anything"),
			expected: UnknownErrorCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReadCode(tt.give))
		})
	}
}

func TestSeverity(t *testing.T) {
	assert.False(t, IsWarning(&InvalidValue{Value: "x"}))
	assert.False(t, IsWarning(errors.New("plain")))
	assert.True(t, IsWarning(&Warning{Message: "m", WarningCode: UnknownWarningCode}))

	assert.True(t, ContainsFatalError([]error{&Warning{}, &MissingField{Field: "domain"}}))
	assert.True(t, ContainsFatalError([]error{errors.New("untyped counts as fatal")}))
	assert.False(t, ContainsFatalError([]error{&Warning{}, &Warning{}}))
	assert.False(t, ContainsFatalError(nil))
}

func TestAggregateErrors(t *testing.T) {
	agg := NewAggregateErrors("validation failed", []error{
		&Warning{Message: "first", WarningCode: InvalidDomainWarningCode},
		&Warning{Message: "second", WarningCode: DuplicateRecordWarningCode},
	})

	assert.Equal(t, "validation failed (2 errors):\n  1: first\n  2: second\n", agg.Error())

	var warning *Warning
	assert.True(t, errors.As(agg, &warning))
}

func TestAggregateErrorsSingle(t *testing.T) {
	agg := NewAggregateErrors("validation failed", []error{
		&Warning{Message: "only", WarningCode: InvalidContactWarningCode},
	})

	assert.Equal(t, "validation failed (1 error):\n  1: only\n", agg.Error())
}

func TestAggregateErrorsEmpty(t *testing.T) {
	assert.Empty(t, NewAggregateErrors("nothing", nil).Error())
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name     string
		give     string
		expected string
	}{
		{
			name:     "short_text_untouched",
			give:     "greenadexchange.com, 12345, DIRECT",
			expected: "greenadexchange.com, 12345, DIRECT",
		},
		{
			name:     "exact_limit_untouched",
			give:     strings.Repeat("a", 64),
			expected: strings.Repeat("a", 64),
		},
		{
			name:     "over_limit_capped",
			give:     strings.Repeat("a", 65),
			expected: strings.Repeat("a", 64) + "...",
		},
		{
			name:     "multibyte_runes_kept_whole",
			give:     strings.Repeat("ü", 70),
			expected: strings.Repeat("ü", 64) + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Preview(tt.give))
		})
	}
}
