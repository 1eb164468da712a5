// Package validator adapts the email and IP literal checks of this module to
// declarative form validation.
//
// Rules are small values that pair a boolean Check function with
// translation-friendly error metadata. Apply evaluates a list of rules and
// aggregates the failures into a ValidationErrors slice that satisfies the
// error interface, so several field problems can be returned at once.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredString("email", form.Email),
//	    validator.ValidRFC822Email("email", form.Email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, e := range verrs.GetErrors("email") {
//	        // e.TranslationValues["reason"] tells which check failed
//	    }
//	}
//
// # Error Handling
//
// ValidationErrors matches ErrValidationFailed with errors.Is, and can be
// recovered with errors.As or ExtractValidationErrors.
//
// Rules hold no shared state and are safe to build concurrently.
package validator
