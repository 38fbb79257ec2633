package form

import (
	"net/url"
	"slices"
)

// Field declares one control of a Schema.
type Field struct {
	name     string
	kind     Kind
	options  []string
	value    string
	grouped  bool
	multiple bool
}

// Name returns the declared control name.
func (f Field) Name() string { return f.name }

// TextField declares a text input.
func TextField(name string) Field {
	return Field{name: name, kind: KindText}
}

// PasswordField declares a password input.
func PasswordField(name string) Field {
	return Field{name: name, kind: KindPassword}
}

// HiddenField declares a hidden input with a default value used when nothing is posted.
func HiddenField(name, value string) Field {
	return Field{name: name, kind: KindHidden, value: value}
}

// CheckboxField declares a single checkbox.
func CheckboxField(name string) Field {
	return Field{name: name, kind: KindCheckbox, value: "on"}
}

// CheckboxGroupField declares same-named checkboxes, one per value.
func CheckboxGroupField(name string, values ...string) Field {
	return Field{name: name, kind: KindCheckbox, options: values, grouped: true}
}

// RadioField declares a radio group with one option per value.
func RadioField(name string, values ...string) Field {
	return Field{name: name, kind: KindRadio, options: values}
}

// SelectField declares a single-choice drop-down.
func SelectField(name string, options ...string) Field {
	return Field{name: name, kind: KindSelectOne, options: options}
}

// MultiSelectField declares a multiple-choice list box.
func MultiSelectField(name string, options ...string) Field {
	return Field{name: name, kind: KindSelectMultiple, options: options, multiple: true}
}

// TextAreaField declares a multi-line text input.
func TextAreaField(name string) Field {
	return Field{name: name, kind: KindTextArea}
}

// Schema declares the controls of a named form.
type Schema struct {
	name   string
	fields []Field
}

// NewSchema creates a schema for the form with the given name.
func NewSchema(name string, fields ...Field) *Schema {
	return &Schema{name: name, fields: fields}
}

// Name returns the form name.
func (s *Schema) Name() string { return s.name }

// Fields returns the declared fields in order.
func (s *Schema) Fields() []Field {
	return slices.Clone(s.fields)
}

// Bind builds the form state a browser would hold for the posted values.
//
// Checkboxes are checked when their name (and, in groups, their value) was
// posted. Radio options are checked when their value was posted. A
// single-choice select with no valid posted value selects its first option.
func (s *Schema) Bind(values url.Values) *Form {
	f := NewForm(s.name)
	for _, field := range s.fields {
		f.Add(field.bind(values))
	}
	return f
}

func (f Field) bind(values url.Values) Control {
	posted := values[f.name]

	switch f.kind {
	case KindCheckbox:
		if f.grouped {
			g := &CheckboxGroup{Name: f.name, Boxes: make([]*Checkbox, 0, len(f.options))}
			for _, v := range f.options {
				g.Boxes = append(g.Boxes, &Checkbox{
					Name:    f.name,
					Value:   v,
					Checked: slices.Contains(posted, v),
				})
			}
			return g
		}
		cb := &Checkbox{Name: f.name, Value: f.value, Checked: len(posted) > 0}
		if len(posted) > 0 && posted[0] != "" {
			cb.Value = posted[0]
		}
		return cb

	case KindRadio:
		g := &RadioGroup{Name: f.name, Options: make([]*Radio, 0, len(f.options))}
		selected := firstOf(posted)
		checked := false
		for _, v := range f.options {
			isChecked := !checked && len(posted) > 0 && v == selected
			checked = checked || isChecked
			g.Options = append(g.Options, &Radio{Value: v, Checked: isChecked})
		}
		return g

	case KindSelectOne, KindSelectMultiple:
		sel := &Select{Name: f.name, Options: slices.Clone(f.options), Multiple: f.multiple}
		for i, opt := range f.options {
			if slices.Contains(posted, opt) {
				sel.Selected = append(sel.Selected, i)
				if !f.multiple {
					break
				}
			}
		}
		if !f.multiple && len(sel.Selected) == 0 && len(f.options) > 0 {
			sel.Selected = []int{0}
		}
		return sel

	case KindTextArea:
		return &TextArea{Name: f.name, Value: firstOf(posted)}

	default:
		value := f.value
		if len(posted) > 0 {
			value = posted[0]
		}
		return &Text{Name: f.name, Type: f.kind, Value: value}
	}
}

func firstOf(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
