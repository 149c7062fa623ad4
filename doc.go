// Package forms binds HTTP submissions to declared forms and validates them.
//
// A form is declared once and shared across requests. Each request binds it
// to the submitted values and files, which yields a [Form] that validates
// lazily and caches the outcome.
//
// # Quick Start
//
//	var signup = forms.MustDefine("signup",
//	    forms.WithFields(
//	        forms.Text("name", "Name", 25, 100, forms.Required()),
//	        forms.Email("email", "Email", 25, 100, forms.Required()),
//	        forms.Integer("age", "Age", 3, 3,
//	            forms.WithValidators(validator.Min(18)),
//	        ),
//	    ),
//	)
//
//	func handleSignup(w http.ResponseWriter, r *http.Request) {
//	    form, err := signup.BindRequest(r)
//	    if err != nil {
//	        http.Error(w, err.Error(), http.StatusBadRequest)
//	        return
//	    }
//	    if !form.IsValid() {
//	        _ = render.Form(form.View()).Render(r.Context(), w)
//	        return
//	    }
//	    data, _ := form.CleanedData()
//	    // data["age"] is an int, or nil when left blank.
//	}
//
// # Fields
//
// Every field runs the same pipeline: the raw value is prepared, an empty
// required value records a single "validation_required" error, the caller's
// validators run in order, and a non-empty value is checked by the field
// type. A field is valid when it recorded no errors, and only valid fields
// produce a cleaned value.
//
// # Messages
//
// Errors are message keys with positional arguments. They are resolved
// against the form's catalog in the request language, negotiated from the
// Accept-Language header. See [github.com/dmitrymomot/forms/pkg/i18n].
//
// # Uploads
//
// Multipart forms spool files to disk. Validated uploads can be handed to a
// [github.com/dmitrymomot/forms/pkg/storage] backend:
//
//	data, _ := form.CleanedData()
//	infos, err := storage.PutUploads(ctx, store, storage.Uploads(data), 4)
package forms
