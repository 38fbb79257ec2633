package form

import "fmt"

// Scope resolves field selectors to controls.
type Scope interface {
	Resolve(selector string) (Control, error)
}

// Document is a page made of forms, named child frames and nested layers.
// Controls outside any form are held by name as direct controls.
type Document struct {
	controls map[string]Control
	forms    []*Form
	frames   map[string]*Document
	layers   []*Document
}

// NewDocument creates a document holding the given forms in order.
func NewDocument(forms ...*Form) *Document {
	d := &Document{
		controls: make(map[string]Control),
		frames:   make(map[string]*Document),
	}
	for _, f := range forms {
		d.AddForm(f)
	}
	return d
}

// AddForm appends a form. Nil forms are ignored.
func (d *Document) AddForm(f *Form) *Document {
	if f != nil {
		d.forms = append(d.forms, f)
	}
	return d
}

// AddControl registers a control that belongs to no form. A later control
// with the same name replaces the earlier one.
func (d *Document) AddControl(c Control) *Document {
	if c != nil && c.FieldName() != "" {
		d.controls[c.FieldName()] = c
	}
	return d
}

// AddFrame registers a child frame reachable with a "?name" selector suffix.
func (d *Document) AddFrame(name string, child *Document) *Document {
	if name != "" && child != nil {
		d.frames[name] = child
	}
	return d
}

// AddLayer registers a nested document searched after the document's own forms.
func (d *Document) AddLayer(child *Document) *Document {
	if child != nil {
		d.layers = append(d.layers, child)
	}
	return d
}

// Form returns the form with the given name.
func (d *Document) Form(name string) (*Form, bool) {
	for _, f := range d.forms {
		if f.Name() == name {
			return f, true
		}
	}
	return nil, false
}

// Frame returns the child frame with the given name.
func (d *Document) Frame(name string) (*Document, bool) {
	child, ok := d.frames[name]
	return child, ok
}

// Resolve implements Scope.
//
// A "?frame" suffix moves the lookup into that child frame. A dotted selector
// looks in the named form only. Otherwise the direct controls are checked
// first, then every form in order, then every nested layer.
func (d *Document) Resolve(selector string) (Control, error) {
	p, err := ParsePath(selector)
	if err != nil {
		return nil, err
	}
	c, ok, err := d.resolve(p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFieldNotFound, selector)
	}
	return c, nil
}

func (d *Document) resolve(p Path) (Control, bool, error) {
	if p.Frame != "" {
		child, ok := d.frames[p.Frame]
		if !ok {
			return nil, false, fmt.Errorf("%w: %q", ErrFrameNotFound, p.Frame)
		}
		p.Frame = ""
		return child.resolve(p)
	}

	if p.Form != "" {
		if f, ok := d.Form(p.Form); ok {
			c, found := f.Lookup(p.Name)
			return c, found, nil
		}
	} else {
		if c, ok := d.controls[p.Name]; ok {
			return c, true, nil
		}
		for _, f := range d.forms {
			if c, ok := f.Lookup(p.Name); ok {
				return c, true, nil
			}
		}
	}

	for _, layer := range d.layers {
		c, ok, err := layer.resolve(p)
		if err != nil {
			return nil, false, err
		}
		if ok {
			return c, true, nil
		}
	}
	return nil, false, nil
}
