// Package eval evaluates expressions over property trees.
//
// Expressions use the expr language (github.com/expr-lang/expr).  The
// environment of an expression holds the caller's variables together with
// `doc`, the document holding the node evaluated at, as plain Go values: dictionaries are
// maps and arrays are slices.  The functions
//
//	whereami()     the path of the node being expanded
//	getpath(p)     the value at path p from the document root
//	listpath(p)    the values matching path p from the document root
//	getenv(name)   an environment variable
//
// are always available.
//
// ExpandEnv rewrites the strings of a tree: a string which is exactly
// .[expr] is replaced by the value of expr, and each $[expr] inside any
// other string is replaced by the text of its value.  Inside brackets a
// backslash escapes the following character.
package eval
