package validator

import (
	"fmt"
	"regexp"
)

// NotEmpty validates that a submitted value is not the empty string.
// Whitespace counts as content, the way browsers submit it.
func NotEmpty(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// SameAs validates that two submitted values are byte-for-byte identical.
func SameAs(field, value, otherField, other string) Rule {
	return Rule{
		Check: func() bool {
			return value == other
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match %s", otherField),
			TranslationKey: "validation.same",
			TranslationValues: map[string]any{
				"field": field,
				"other": otherField,
			},
		},
	}
}

// Accepted validates that a checkbox-like flag is set.
func Accepted(field string, value bool) Rule {
	return Rule{
		Check: func() bool {
			return value
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be accepted",
			TranslationKey: "validation.accepted",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Declined validates that a checkbox-like flag is not set.
func Declined(field string, value bool) Rule {
	return Rule{
		Check: func() bool {
			return !value
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must not be selected",
			TranslationKey: "validation.declined",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MatchesRegex validates that a string matches the given pattern.
func MatchesRegex(field, value string, pattern *regexp.Regexp) Rule {
	return Rule{
		Check: func() bool {
			return pattern.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "has invalid format",
			TranslationKey: "validation.regex",
			TranslationValues: map[string]any{
				"field":   field,
				"pattern": pattern.String(),
			},
		},
	}
}

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %v", min),
			TranslationKey: "validation.min",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}
