package formcheck

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/createrainforest/bosweb/pkg/form"
	"github.com/createrainforest/bosweb/pkg/validator"
)

// Validate evaluates every rule against the controls in scope and returns
// nil when all pass, or validator.ValidationErrors listing one entry per
// failed rule in rule order.
//
// What a rule checks depends on the control its Field resolves to:
//
//	control         check           passes when
//	text/password/  required (#)    value is not empty
//	hidden          CheckRange      empty, or numeric strictly inside "min_max"
//	                CheckEmail      empty, or email-shaped
//	                CheckDate       empty, or a real date per "re#d#m#y"
//	                CheckTime       empty, or matches the pattern
//	                CheckLinked     the linked checkbox is checked, whatever the value
//	                CheckEqual      empty, or equal to the linked field's value
//	radio group     CheckRange      indexed option unchecked, or linked text filled
//	                CheckEmail      some option is checked
//	checkbox (or    CheckRange      checked
//	indexed group)  CheckEmail      unchecked, or linked text filled
//	select          CheckRange      selected index is not 0
//	textarea        any             at least Param characters; required means not empty
//
// A field that cannot be resolved fails its rule.
func Validate(scope form.Scope, rules ...Rule) error {
	checks := make([]validator.Rule, 0, len(rules))
	for _, r := range rules {
		checks = append(checks, r.compile(scope))
	}
	return validator.Apply(checks...)
}

func (r Rule) compile(scope form.Scope) validator.Rule {
	return validator.Rule{
		Check: func() bool { return r.passes(scope) },
		Error: validator.ValidationError{
			Field:          form.StripIndex(r.Field),
			Message:        r.Message,
			TranslationKey: "validation.form." + r.Check.String(),
			TranslationValues: map[string]any{
				"field": r.Field,
				"param": r.Arg(),
			},
		},
	}
}

func (r Rule) passes(scope form.Scope) bool {
	if scope == nil {
		return false
	}
	ctrl, err := scope.Resolve(r.Field)
	if err != nil {
		return false
	}

	switch c := ctrl.(type) {
	case *form.Text:
		return r.checkText(scope, c.Value)
	case *form.RadioGroup:
		return r.checkRadioGroup(scope, c)
	case *form.CheckboxGroup:
		return r.checkCheckboxGroup(scope, c)
	case *form.Checkbox:
		return r.checkCheckbox(scope, c)
	case *form.Select:
		return r.checkSelect(c)
	case *form.TextArea:
		return r.checkTextArea(c)
	default:
		return true
	}
}

func (r Rule) checkText(scope form.Scope, value string) bool {
	if r.Check == CheckLinked {
		if value == "" && r.Required() {
			return false
		}
		return linkedChecked(scope, r.Arg())
	}
	if value == "" {
		return !r.Required()
	}

	arg := r.Arg()
	switch r.Check {
	case CheckRange:
		min, max := parseBounds(arg)
		return InRange(value, min, max)
	case CheckEmail:
		return IsEmail(value)
	case CheckDate:
		pattern, day, month, year := parseDateParam(arg)
		return ValidDate(value, pattern, day, month, year)
	case CheckTime:
		return MatchTime(value, arg)
	case CheckEqual:
		other, ok := linkedValue(scope, arg)
		return ok && value == other
	default:
		return true
	}
}

func (r Rule) checkRadioGroup(scope form.Scope, g *form.RadioGroup) bool {
	switch r.Check {
	case CheckRange:
		p, err := form.ParsePath(r.Field)
		if err != nil {
			return false
		}
		if !form.IsChecked(g, p) {
			return true
		}
		return linkedFilled(scope, r.Arg())
	case CheckEmail:
		return g.AnyChecked()
	default:
		return true
	}
}

// checkCheckboxGroup applies checkbox semantics to the option selected by
// the field index, or to the whole group when unindexed.
func (r Rule) checkCheckboxGroup(scope form.Scope, g *form.CheckboxGroup) bool {
	p, err := form.ParsePath(r.Field)
	if err != nil {
		return false
	}
	checked := form.IsChecked(g, p)
	switch r.Check {
	case CheckRange:
		return checked
	case CheckEmail:
		return !checked || linkedFilled(scope, r.Arg())
	default:
		return true
	}
}

func (r Rule) checkCheckbox(scope form.Scope, c *form.Checkbox) bool {
	switch r.Check {
	case CheckRange:
		return c.Checked
	case CheckEmail:
		return !c.Checked || linkedFilled(scope, r.Arg())
	default:
		return true
	}
}

func (r Rule) checkSelect(s *form.Select) bool {
	if r.Check == CheckRange {
		return s.SelectedIndex() != 0
	}
	return true
}

func (r Rule) checkTextArea(t *form.TextArea) bool {
	if t.Value == "" && r.Required() {
		return false
	}
	min, err := strconv.Atoi(strings.TrimSpace(r.Arg()))
	if err != nil {
		return true
	}
	return utf8.RuneCountInString(t.Value) >= min
}

// linkedChecked reports whether the checkbox or group option named by
// selector is checked.
func linkedChecked(scope form.Scope, selector string) bool {
	p, err := form.ParsePath(selector)
	if err != nil {
		return false
	}
	ctrl, err := scope.Resolve(selector)
	if err != nil {
		return false
	}
	return form.IsChecked(ctrl, p)
}

func linkedValue(scope form.Scope, selector string) (string, bool) {
	if selector == "" {
		return "", false
	}
	ctrl, err := scope.Resolve(selector)
	if err != nil {
		return "", false
	}
	switch c := ctrl.(type) {
	case *form.Text:
		return c.Value, true
	case *form.TextArea:
		return c.Value, true
	case *form.Checkbox:
		return c.Value, true
	default:
		return form.ValueOf(ctrl)
	}
}

func linkedFilled(scope form.Scope, selector string) bool {
	v, ok := linkedValue(scope, selector)
	return ok && v != ""
}
