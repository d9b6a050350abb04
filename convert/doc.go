// Package convert moves property trees between the text form and other
// document formats: JSON, YAML and MessagePack.
//
// Dictionaries keep their entry order in every format.  JSON and YAML have
// no data or date scalars, so data is written as a base64 string and a
// date as an RFC 3339 string; both come back as strings.  MessagePack
// carries all seven scalar and container kinds natively.
//
// None of the formats may hold a null, which has no counterpart in a
// property tree.  In the other direction a key outside a dictionary, as in
// an array of keys built for ir.Node.Update, cannot be encoded and fails
// with ErrUnsupported.
package convert
