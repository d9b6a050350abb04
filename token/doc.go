// Package token holds the lexical pieces shared by the property list
// decoder and encoder: input positions, string quoting and escapes, number
// syntax and date syntax.
package token
