// Package binder reads an *http.Request into the input snapshot a form
// binds to.
//
// GET forms read the query string and POST forms read only the request
// body, so a form is never bound by data sent through the other channel.
// Multipart uploads are spooled with upload.FromMultipart; a spool failure
// is kept on the file as a transport error code and reported later as a
// validation error of that field.
//
// Locale picks the request language from the "lang" query parameter, the
// "lang" cookie or Accept-Language, in that order.
package binder
