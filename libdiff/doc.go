// Package libdiff computes differences between property trees.
//
// Diff compares two trees structurally.  Dictionaries are compared entry
// by entry under the same name, ignoring entry order.  Arrays are aligned
// with a sequence diff over summaries of their elements, so an element
// inserted in the middle of an array is reported once rather than as a
// change to every element after it.
//
// DiffText compares the pretty text encodings line by line.
package libdiff
