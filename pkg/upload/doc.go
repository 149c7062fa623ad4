// Package upload models files received through multipart form submissions.
//
// A [File] is the descriptor of one spooled upload: client name, client
// media type, temporary path, size and transport [ErrorCode]. Codes map to
// validation faults with [ErrorCode.Fault]. [FromMultipart] spools a
// multipart part to disk; [DecodeImage] reads image headers for PNG, JPEG,
// GIF, BMP, TIFF and WebP.
package upload
