// Package internal provides the core types and implementation of the forms
// engine.
//
// This package is internal and should not be used directly. Import
// "github.com/dmitrymomot/forms" instead, which re-exports the public API.
//
// # Core Types
//
//   - Definition: Immutable form declaration shared across requests
//   - FieldSpec: Immutable declaration of one field (kind, validators, attributes)
//   - Form: One request's binding of a Definition to an input snapshot
//   - Field: Per-request state of one field (raw value, errors, cleaned value)
//   - Kind: Type-specific prepare, empty, validate and import hooks
//
// # Field Pipeline
//
// A field validates in one pass:
//
//  1. The raw value is prepared by the kind (list reduced to a scalar,
//     checkbox turned into a bool, upload descriptor extracted).
//  2. If the prepared value is empty and the field is required, exactly one
//     "validation_required" error is recorded and nothing else runs.
//  3. Otherwise every caller validator runs in order. Failures are recorded
//     under the validator's name and do not stop the chain.
//  4. A non-empty value is then checked by the kind. Its failure is recorded
//     under the kind's type name.
//  5. With no errors the field is valid and the kind imports the cleaned value.
//
// The verdict is cached until Revalidate. Messages are resolved when the
// error is recorded, so a key missing from the catalog panics during
// validation.
//
// # Binding
//
// A form is bound when the submitted values name at least one declared
// field, or, for multipart forms, when the files do. Defaults never bind a
// form. An unbound form is never valid and runs no validator:
//
//	def := internal.MustDefine("contact",
//	    internal.WithFields(
//	        internal.Text("name", "Name", 25, 10, internal.Required()),
//	        internal.Email("email", "E-mail", 25, 100, internal.Required()),
//	    ),
//	)
//
//	form := def.Bind(internal.Input{Values: map[string]any{"name": "ab"}})
//	if form.IsValid() {
//	    data, _ := form.CleanedData()
//	    _ = data
//	}
//
// # Errors
//
// Errors returns the first error of each invalid field, AllErrors every
// recorded error. Configuration mistakes are returned by Define (empty or
// duplicate names, multipart with get) or panic at declaration time
// (unknown multiple-choice widget, invalid regular expression).
package internal
