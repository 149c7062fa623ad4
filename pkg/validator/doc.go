// Package validator defines the validation contract used by form fields.
//
// A validator is a named pure function from a prepared field value to
// either nil or a [Fault]. A fault carries a message key and positional
// arguments; it is never formatted here. Message text is produced later by
// a [TranslateFunc], typically [github.com/dmitrymomot/forms/pkg/i18n.Resolver.TranslateMessage].
//
// # Validators
//
//	name := forms.Text("name", "Name", 25, 100,
//	    forms.WithValidators(
//	        validator.Required(),
//	        validator.MinLength(2),
//	    ),
//	)
//
// [Required] is a marker: fields lift it out of their chain and run it
// first. When the value is empty it records exactly one
// "validation_required" error and no other rule runs.
//
// # Custom validators
//
//	noAdmin := validator.New("no_admin", func(v any) *validator.Fault {
//	    if v == "admin" {
//	        return validator.NewFault("username_reserved")
//	    }
//	    return nil
//	})
//
// # Errors
//
// Recorded failures are collected as [ValidationErrors], ordered as they
// were produced. Translate fills the Message of every entry in place:
//
//	errs.Translate(resolver.TranslateMessage)
package validator
