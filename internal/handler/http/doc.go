// Package http implements the mirror endpoint served by `vault mirror-serve`.
//
// The endpoint stores encrypted export documents uploaded by the HTTP mirror
// capability of other vault instances. It accepts HEAD, GET and PUT on
// /mirror/{name} behind HTTP basic auth; request tracing, access logging and
// compression are handled in middleware before the handlers run. The server
// never sees plaintext: it only checks that an upload is a well-formed
// export document.
package http
