// Package mergeop implements patch operations over property trees.
//
// Each operation is a Symbol registered by name.  A Symbol is
// instantiated with its patch body and arguments to give an Op, which
// patches a document into a new tree and leaves the document unchanged.
//
// The operations are
//
//	json-patch   RFC 6902 operations given as an array of dictionaries
//	merge-patch  RFC 7386 merge with a dictionary body
//	update       replaces or adds the entries of the body, by key
//	replace      the body itself
//	delete       removes the nodes at each path argument
//
// json-patch and merge-patch run over the JSON form of the document, so
// data and dates in the patched document become strings.
package mergeop
