package validator_test

import (
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/createrainforest/bosweb/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "email",
			Message: "is required",
		})
		assert.Equal(t, "validation failed: email: is required", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "vorname", Message: "missing"})
		errs.Add(validator.ValidationError{Field: "plz", Message: "missing"})

		assert.Equal(t, "validation failed: vorname: missing; plz: missing", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "password", Message: "too short"})
	errs.Add(validator.ValidationError{Field: "email", Message: "invalid"})
	errs.Add(validator.ValidationError{Field: "password", Message: "not repeated"})

	assert.True(t, errs.Has("password"))
	assert.False(t, errs.Has("name"))
	assert.Equal(t, []string{"too short", "not repeated"}, errs.Get("password"))
	assert.Equal(t, []string{"password", "email"}, errs.Fields())
	assert.Equal(t, []string{"too short", "invalid", "not repeated"}, errs.Messages())
	assert.False(t, errs.IsEmpty())

	var empty validator.ValidationErrors
	assert.True(t, empty.IsEmpty())
	assert.Empty(t, empty.Messages())
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.NotEmpty("name", "Anna"),
			validator.SameAs("password", "x", "password1", "x"),
		)
		assert.NoError(t, err)
	})

	t.Run("handles empty rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects failures in rule order", func(t *testing.T) {
		err := validator.Apply(
			validator.NotEmpty("vorname", "").WithMessage("first"),
			validator.NotEmpty("name", "ok").WithMessage("skipped"),
			validator.NotEmpty("ort", "").WithMessage("second"),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"first", "second"}, verrs.Messages())
	})
}

func TestFirst(t *testing.T) {
	calls := 0
	counting := validator.Rule{
		Check: func() bool { calls++; return false },
		Error: validator.ValidationError{Field: "later", Message: "later"},
	}

	err := validator.First(
		validator.NotEmpty("password", "").WithMessage("empty"),
		counting,
	)
	verrs := validator.ExtractValidationErrors(err)
	require.NotNil(t, verrs)
	assert.Equal(t, []string{"empty"}, verrs.Messages())
	assert.Zero(t, calls)

	assert.NoError(t, validator.First(validator.NotEmpty("password", "pw")))
}

func TestFieldRules(t *testing.T) {
	tests := []struct {
		name string
		rule validator.Rule
		pass bool
	}{
		{"not empty with text", validator.NotEmpty("f", "x"), true},
		{"not empty with whitespace", validator.NotEmpty("f", " "), true},
		{"not empty with empty", validator.NotEmpty("f", ""), false},
		{"same as identical", validator.SameAs("a", "pw", "b", "pw"), true},
		{"same as trailing space", validator.SameAs("a", "pw", "b", "pw "), false},
		{"accepted", validator.Accepted("f", true), true},
		{"not accepted", validator.Accepted("f", false), false},
		{"declined", validator.Declined("f", false), true},
		{"not declined", validator.Declined("f", true), false},
		{"regex match", validator.MatchesRegex("f", "12:30", regexp.MustCompile(`^\d\d:\d\d$`)), true},
		{"regex mismatch", validator.MatchesRegex("f", "noon", regexp.MustCompile(`^\d\d:\d\d$`)), false},
		{"min num reached", validator.MinNum("n", 5, 5), true},
		{"min num missed", validator.MinNum("n", 4.5, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.pass, tt.rule.Check())
		})
	}
}

func TestRule_WithMessage(t *testing.T) {
	rule := validator.NotEmpty("email", "")
	custom := rule.WithMessage("Bitte E-Mail angeben")

	assert.Equal(t, "field is required", rule.Error.Message)
	assert.Equal(t, "Bitte E-Mail angeben", custom.Error.Message)
	assert.Equal(t, "validation.required", custom.Error.TranslationKey)
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("extracts wrapped ValidationErrors", func(t *testing.T) {
		var original validator.ValidationErrors
		original.Add(validator.ValidationError{Field: "email", Message: "is required"})

		wrapped := fmt.Errorf("checking form: %w", original)
		extracted := validator.ExtractValidationErrors(wrapped)
		require.NotNil(t, extracted)
		assert.True(t, extracted.Has("email"))
		assert.True(t, validator.IsValidationError(wrapped))
	})

	t.Run("returns nil for other errors", func(t *testing.T) {
		err := errors.New("regular error")
		assert.Nil(t, validator.ExtractValidationErrors(err))
		assert.False(t, validator.IsValidationError(err))
	})

	t.Run("returns nil for nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})
}
