package formcheck

import (
	"fmt"
	"strconv"
	"strings"
)

// CheckType selects what a Rule verifies. The code is interpreted relative
// to the kind of control the rule's field resolves to: on a checkbox
// CheckRange means "must be checked", on a radio group CheckEmail means "one
// option must be chosen". See Validate for the full table.
type CheckType int

const (
	CheckNone   CheckType = iota // only the required flag applies
	CheckRange                   // numeric value within "min_max"
	CheckEmail                   // email-shaped value
	CheckDate                    // "regex#day#month#year" calendar date
	CheckTime                    // value matches a regex
	CheckLinked                  // a companion checkbox must be checked
	CheckEqual                   // value equals another field's value
)

func (c CheckType) String() string {
	switch c {
	case CheckNone:
		return "none"
	case CheckRange:
		return "range"
	case CheckEmail:
		return "email"
	case CheckDate:
		return "date"
	case CheckTime:
		return "time"
	case CheckLinked:
		return "linked"
	case CheckEqual:
		return "equal"
	default:
		return "check_" + strconv.Itoa(int(c))
	}
}

func (c CheckType) valid() bool {
	return c >= CheckNone && c <= CheckEqual
}

// requiredMarker prefixes Param on rules whose field must not be empty.
const requiredMarker = "#"

// Rule is one declarative field check.
//
// Field selects the control (see form.Scope for the selector syntax). Param
// carries the check's argument and, for linked checks, the selector of the
// linked control. A leading "#" on Param marks the field as required.
type Rule struct {
	Field   string
	Param   string
	Check   CheckType
	Message string
}

// Required reports whether the rule's field must not be empty.
func (r Rule) Required() bool {
	return strings.HasPrefix(r.Param, requiredMarker)
}

// Arg returns Param without the required marker.
func (r Rule) Arg() string {
	return strings.TrimPrefix(r.Param, requiredMarker)
}

// Require returns a copy of the rule with the required marker set.
func (r Rule) Require() Rule {
	if !r.Required() {
		r.Param = requiredMarker + r.Param
	}
	return r
}

// ParseRules decodes a flat list of (field, param, check code, message)
// tuples, the shape legacy page declarations use.
func ParseRules(args ...string) ([]Rule, error) {
	if len(args)%4 != 0 {
		return nil, fmt.Errorf("%w: %d arguments do not form complete tuples", ErrMalformedRules, len(args))
	}

	rules := make([]Rule, 0, len(args)/4)
	for i := 0; i < len(args); i += 4 {
		code, err := strconv.Atoi(strings.TrimSpace(args[i+2]))
		if err != nil {
			return nil, fmt.Errorf("%w: rule %d: %q", ErrInvalidCheckType, i/4, args[i+2])
		}
		check := CheckType(code)
		if !check.valid() {
			return nil, fmt.Errorf("%w: rule %d: %d", ErrInvalidCheckType, i/4, code)
		}
		if args[i] == "" {
			return nil, fmt.Errorf("%w: rule %d has no field", ErrMalformedRules, i/4)
		}
		rules = append(rules, Rule{
			Field:   args[i],
			Param:   args[i+1],
			Check:   check,
			Message: args[i+3],
		})
	}
	return rules, nil
}

// MustParseRules is like ParseRules but panics on malformed input.
// Intended for rule sets declared at package initialisation.
func MustParseRules(args ...string) []Rule {
	rules, err := ParseRules(args...)
	if err != nil {
		panic(err)
	}
	return rules
}

// Required builds a rule that only demands a non-empty value.
func Required(field, message string) Rule {
	return Rule{Field: field, Param: requiredMarker, Check: CheckNone, Message: message}
}

// Range builds a rule demanding a number strictly between min and max.
func Range(field string, min, max float64, message string) Rule {
	param := strconv.FormatFloat(min, 'f', -1, 64) + "_" + strconv.FormatFloat(max, 'f', -1, 64)
	return Rule{Field: field, Param: param, Check: CheckRange, Message: message}
}

// Email builds a rule demanding an email-shaped value.
func Email(field, message string) Rule {
	return Rule{Field: field, Check: CheckEmail, Message: message}
}

// Date builds a rule matching pattern and checking the captured day, month
// and year groups form a real calendar date. A day group of 0 means the
// pattern captures no day and the first of the month is assumed.
func Date(field, pattern string, dayGroup, monthGroup, yearGroup int, message string) Rule {
	day := ""
	if dayGroup > 0 {
		day = strconv.Itoa(dayGroup)
	}
	param := strings.Join([]string{pattern, day, strconv.Itoa(monthGroup), strconv.Itoa(yearGroup)}, "#")
	return Rule{Field: field, Param: param, Check: CheckDate, Message: message}
}

// Time builds a rule matching the value against pattern.
func Time(field, pattern, message string) Rule {
	return Rule{Field: field, Param: pattern, Check: CheckTime, Message: message}
}

// Linked builds a rule demanding that the checkbox selected by companion is
// checked. companion may index into a group, e.g. "agree[1]".
func Linked(field, companion, message string) Rule {
	return Rule{Field: field, Param: companion, Check: CheckLinked, Message: message}
}

// Equal builds a rule demanding the value equals the other field's value.
func Equal(field, other, message string) Rule {
	return Rule{Field: field, Param: other, Check: CheckEqual, Message: message}
}

// Checked builds a rule demanding a checkbox is checked.
func Checked(checkbox, message string) Rule {
	return Rule{Field: checkbox, Check: CheckRange, Message: message}
}

// CheckboxCompanion builds a rule demanding that text is filled in when
// the checkbox is checked.
func CheckboxCompanion(checkbox, text, message string) Rule {
	return Rule{Field: checkbox, Param: text, Check: CheckEmail, Message: message}
}

// OptionCompanion builds a rule demanding that text is filled in when the
// indexed radio option, e.g. "numsqm[4]", is checked.
func OptionCompanion(option, text, message string) Rule {
	return Rule{Field: option, Param: text, Check: CheckRange, Message: message}
}

// OneOf builds a rule demanding that a radio group has a checked option.
func OneOf(group, message string) Rule {
	return Rule{Field: group, Check: CheckEmail, Message: message}
}

// Selected builds a rule demanding a select has something other than its
// first (placeholder) option chosen.
func Selected(field, message string) Rule {
	return Rule{Field: field, Check: CheckRange, Message: message}
}

// MinLength builds a rule demanding a text area holds at least n characters.
func MinLength(field string, n int, message string) Rule {
	return Rule{Field: field, Param: strconv.Itoa(n), Check: CheckRange, Message: message}
}
