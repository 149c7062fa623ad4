// Package render turns field and form views into templ components.
//
// Views are plain data produced by the form engine ([FieldView],
// [FormView]); nothing here validates or resolves messages. Every value and
// attribute is HTML-escaped, attributes are written in sorted key order and
// help text is treated as markdown, converted with goldmark and sanitized.
//
//	templ.Handler(render.Form(form.View(), render.WithAction("/contact"))).ServeHTTP(w, r)
package render
