// Package validator provides the rule engine that form checks are built on.
//
// A Rule couples a boolean Check function with translation-friendly error
// metadata. Apply evaluates rules in order and aggregates every failure into
// a ValidationErrors slice that satisfies the error interface; First stops at
// the first failure for checks that report one problem at a time.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.NotEmpty("password", password).WithMessage("Das Kennwort darf nicht leer sein"),
//	    validator.SameAs("password", password, "password1", repeat),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, msg := range verrs.Messages() {
//	        // show msg
//	    }
//	}
//
// # Error Handling
//
// ValidationErrors works with errors.As, so validation problems can be told
// apart from infrastructure failures while keeping field-level details.
// Order is preserved: Messages returns one entry per failed rule in the order
// the rules were given.
//
// The package is stateless and goroutine-safe.
package validator
