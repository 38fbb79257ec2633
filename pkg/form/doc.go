// Package form models HTML form controls on the server side and resolves
// field selectors against them.
//
// Controls are a closed set of variants implementing Control: Text (text,
// password and hidden inputs), Checkbox, RadioGroup, CheckboxGroup, Select and
// TextArea. Checks dispatch on the concrete type instead of inspecting a type
// string at runtime.
//
// A Schema declares which controls a named form has. Binding posted values
// with Schema.Bind produces a Form holding the current control state, the
// same state a browser would expose for that submission:
//
//	schema := form.NewSchema("bestellformular",
//		form.CheckboxField("disclaimer_read"),
//		form.RadioField("numsqm", "1", "5", "10", "30", "x"),
//		form.TextField("numsqm1"),
//	)
//	f := schema.Bind(r.PostForm)
//
// # Resolving selectors
//
// Both Form and Document implement Scope. Document is the explicit form scope
// for pages made of several forms or frames. A selector may be
//
//   - a plain field name ("email"), searched in every form in order,
//   - a dotted path ("form.email") naming the form first,
//   - suffixed with "?frame" to resolve inside a child frame document,
//   - indexed ("numsqm[4]"); the index is ignored for lookup and can be read
//     with ParsePath.
//
// Lookups that find nothing return an error wrapping ErrFieldNotFound.
package form
