// Package form builds multipart form bodies from request structs.
//
// Encode walks the exported fields of a struct in declaration order and
// turns every present value into one text part. File attachments are added
// afterwards with AddFile, so repeated file fields keep the order in which
// they were appended.
//
// Field naming follows the `form` struct tag:
//
//	type Request struct {
//	    URL   string   `form:"url"`
//	    Scale *float64 `form:"scale"`
//	    Skip  string   `form:"-"`
//	}
//
// A field is left out when it holds a nil pointer, interface, map or slice,
// when it is a func or chan, or when its name is in the ignore list. Optional
// values are therefore pointers: a non-nil pointer to false is still sent.
package form
