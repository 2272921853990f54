// Package zonenames provides lookup and search helpers over generated
// zone-name sets, plus a small net/http handler that returns JSON matches
// for tooling UIs.
//
// An Index resolves a zone name to its canonical (generated) spelling,
// optionally tolerating any casing. Search ranks prefix matches before
// substring matches. The default handler responds to GET and HEAD requests
// and supports query and limit parameters.
package zonenames
