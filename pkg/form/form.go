package form

import "fmt"

// Form is a named set of controls with their current state.
type Form struct {
	name     string
	controls []Control
	index    map[string]Control
}

// NewForm creates a form holding the given controls in order.
func NewForm(name string, controls ...Control) *Form {
	f := &Form{
		name:  name,
		index: make(map[string]Control, len(controls)),
	}
	for _, c := range controls {
		f.Add(c)
	}
	return f
}

// Name returns the form name.
func (f *Form) Name() string { return f.name }

// Add appends a control. A later control with the same name replaces the earlier one.
func (f *Form) Add(c Control) {
	if c == nil {
		return
	}
	if _, exists := f.index[c.FieldName()]; exists {
		for i, existing := range f.controls {
			if existing.FieldName() == c.FieldName() {
				f.controls[i] = c
				break
			}
		}
	} else {
		f.controls = append(f.controls, c)
	}
	f.index[c.FieldName()] = c
}

// Controls returns the controls in declaration order.
func (f *Form) Controls() []Control {
	out := make([]Control, len(f.controls))
	copy(out, f.controls)
	return out
}

// Lookup returns the control with the given name.
func (f *Form) Lookup(name string) (Control, bool) {
	c, ok := f.index[name]
	return c, ok
}

// Resolve implements Scope. Dotted selectors must name this form; frame
// suffixes are not supported on a bare form.
func (f *Form) Resolve(selector string) (Control, error) {
	p, err := ParsePath(selector)
	if err != nil {
		return nil, err
	}
	if p.Frame != "" {
		return nil, fmt.Errorf("%w: %q", ErrFrameNotFound, p.Frame)
	}
	if p.Form != "" && p.Form != f.name {
		return nil, fmt.Errorf("%w: %s", ErrFieldNotFound, selector)
	}
	if c, ok := f.index[p.Name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrFieldNotFound, selector)
}

// Value returns the value of a text-like control, or "" when absent.
func (f *Form) Value(name string) string {
	c, ok := f.index[name]
	if !ok {
		return ""
	}
	v, _ := ValueOf(c)
	return v
}

// Checked reports whether the selected checkbox or group option is checked.
// "numsqm[0]" addresses the first option of the numsqm group.
func (f *Form) Checked(selector string) bool {
	p, err := ParsePath(selector)
	if err != nil {
		return false
	}
	c, ok := f.index[p.Name]
	if !ok {
		return false
	}
	return IsChecked(c, p)
}

// IsChecked reports the checked state of c, selecting a group option by the
// path index. Unindexed groups report whether any option is checked.
func IsChecked(c Control, p Path) bool {
	switch v := c.(type) {
	case Group:
		if !p.Indexed {
			if v.Len() == 1 {
				o, _ := v.Option(0)
				return o.IsChecked()
			}
			return v.AnyChecked()
		}
		o, ok := v.Option(p.Index)
		return ok && o.IsChecked()
	case Checkable:
		return v.IsChecked()
	default:
		return false
	}
}
