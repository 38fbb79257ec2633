package form

// Kind is the browser-reported type of a control.
type Kind uint8

const (
	KindText Kind = iota
	KindPassword
	KindHidden
	KindCheckbox
	KindRadio
	KindSelectOne
	KindSelectMultiple
	KindTextArea
)

// String returns the type string a browser reports for the control.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindPassword:
		return "password"
	case KindHidden:
		return "hidden"
	case KindCheckbox:
		return "checkbox"
	case KindRadio:
		return "radio"
	case KindSelectOne:
		return "select-one"
	case KindSelectMultiple:
		return "select-multiple"
	case KindTextArea:
		return "textarea"
	default:
		return "unknown"
	}
}

// Control is a single form control or a group of same-named options.
// The set of implementations is closed to this package.
type Control interface {
	FieldName() string
	Kind() Kind
	isControl()
}

// Checkable is implemented by controls that carry a checked state.
type Checkable interface {
	IsChecked() bool
}

// Group is a set of same-named checkable options addressed by index.
type Group interface {
	Control
	Len() int
	Option(i int) (Checkable, bool)
	AnyChecked() bool
}

// Text is a single-line input: text, password or hidden.
type Text struct {
	Name  string
	Type  Kind
	Value string
}

func (t *Text) FieldName() string { return t.Name }

func (t *Text) Kind() Kind {
	switch t.Type {
	case KindPassword, KindHidden:
		return t.Type
	default:
		return KindText
	}
}

func (*Text) isControl() {}

// Checkbox is a single checkbox.
type Checkbox struct {
	Name    string
	Value   string
	Checked bool
}

func (c *Checkbox) FieldName() string { return c.Name }
func (*Checkbox) Kind() Kind          { return KindCheckbox }
func (c *Checkbox) IsChecked() bool   { return c.Checked }
func (*Checkbox) isControl()          {}

// Radio is one option of a RadioGroup.
type Radio struct {
	Value   string
	Checked bool
}

func (r *Radio) IsChecked() bool { return r.Checked }

// RadioGroup is the set of radio buttons sharing a name.
type RadioGroup struct {
	Name    string
	Options []*Radio
}

func (g *RadioGroup) FieldName() string { return g.Name }
func (*RadioGroup) Kind() Kind          { return KindRadio }
func (*RadioGroup) isControl()          {}
func (g *RadioGroup) Len() int          { return len(g.Options) }

func (g *RadioGroup) Option(i int) (Checkable, bool) {
	if i < 0 || i >= len(g.Options) {
		return nil, false
	}
	return g.Options[i], true
}

func (g *RadioGroup) AnyChecked() bool {
	for _, o := range g.Options {
		if o.Checked {
			return true
		}
	}
	return false
}

// Selected returns the value of the checked option.
func (g *RadioGroup) Selected() (string, bool) {
	for _, o := range g.Options {
		if o.Checked {
			return o.Value, true
		}
	}
	return "", false
}

// CheckboxGroup is the set of checkboxes sharing a name.
type CheckboxGroup struct {
	Name  string
	Boxes []*Checkbox
}

func (g *CheckboxGroup) FieldName() string { return g.Name }
func (*CheckboxGroup) Kind() Kind          { return KindCheckbox }
func (*CheckboxGroup) isControl()          {}
func (g *CheckboxGroup) Len() int          { return len(g.Boxes) }

func (g *CheckboxGroup) Option(i int) (Checkable, bool) {
	if i < 0 || i >= len(g.Boxes) {
		return nil, false
	}
	return g.Boxes[i], true
}

func (g *CheckboxGroup) AnyChecked() bool {
	for _, b := range g.Boxes {
		if b.Checked {
			return true
		}
	}
	return false
}

// Select is a drop-down or list box.
type Select struct {
	Name     string
	Options  []string
	Selected []int
	Multiple bool
}

func (s *Select) FieldName() string { return s.Name }

func (s *Select) Kind() Kind {
	if s.Multiple {
		return KindSelectMultiple
	}
	return KindSelectOne
}

func (*Select) isControl() {}

// SelectedIndex returns the first selected index, or -1 when nothing is selected.
func (s *Select) SelectedIndex() int {
	if len(s.Selected) == 0 {
		return -1
	}
	return s.Selected[0]
}

// SelectedValue returns the value of the first selected option.
func (s *Select) SelectedValue() (string, bool) {
	i := s.SelectedIndex()
	if i < 0 || i >= len(s.Options) {
		return "", false
	}
	return s.Options[i], true
}

// TextArea is a multi-line text input.
type TextArea struct {
	Name  string
	Value string
}

func (t *TextArea) FieldName() string { return t.Name }
func (*TextArea) Kind() Kind          { return KindTextArea }
func (*TextArea) isControl()          {}

// ValueOf returns the value a control would submit.
// Groups yield the first checked option; unchecked checkboxes yield nothing.
func ValueOf(c Control) (string, bool) {
	switch v := c.(type) {
	case *Text:
		return v.Value, true
	case *TextArea:
		return v.Value, true
	case *Checkbox:
		if !v.Checked {
			return "", false
		}
		return v.Value, true
	case *RadioGroup:
		return v.Selected()
	case *CheckboxGroup:
		for _, b := range v.Boxes {
			if b.Checked {
				return b.Value, true
			}
		}
		return "", false
	case *Select:
		return v.SelectedValue()
	default:
		return "", false
	}
}
