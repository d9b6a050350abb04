// Package encode writes property list trees as text.
//
// [Encode] produces the text form accepted by the parse package, either
// pretty printed or in the compact wire form selected by [EncodeWire].
// Output can be colored for terminals with [EncodeColors].  Keys are only
// written as dictionary entries; a tree holding a key elsewhere, such as an
// array of keys built for ir.Node.Update, fails with ErrEncoding.
//
// [Dump] produces an outline of a tree for people, not for parsing.
package encode
