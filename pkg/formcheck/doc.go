// Package formcheck validates submitted forms against declarative rule lists.
//
// A Rule names a field, an optional parameter and a CheckType. What the check
// means depends on the control the field resolves to, so one small set of
// codes covers text inputs, checkboxes, radio groups, selects and text areas.
// Rule lists can be built with the constructors in this package or decoded
// from the flat tuple form legacy pages declare with ParseRules.
//
// # Usage
//
//	rules := []formcheck.Rule{
//	    formcheck.Required("vorname", "Bitte geben Sie Ihren Vornamen ein"),
//	    formcheck.Range("betrag", 0, 10000, "Der Betrag ist ungültig"),
//	    formcheck.Linked("email", "newsletter", "Bitte bestätigen Sie den Newsletter"),
//	}
//	if err := formcheck.Validate(doc, rules...); err != nil {
//	    alert := formcheck.Alert(err)
//	    // show alert and keep the form open
//	}
//
// Validate always evaluates every rule. Failures come back as
// validator.ValidationErrors in rule order; Alert turns them into the
// message block shown to the visitor.
//
// Range checks are strict: a value equal to either bound fails.
package formcheck
