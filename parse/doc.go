// Package parse decodes the text form of property lists.
//
// # Grammar
//
//	value  = dict / array / data / date / string / true / false / number / real
//	dict   = "{" (string (":" / "=") value ";")* "}"
//	array  = "(" (value ("," value)*)? ")"
//	data   = "<" hex-digit* ">"             whitespace inside is ignored
//	date   = "<*D" "YYYY-MM-DD HH:MM:SS" [tz] ">"
//	string = '"' (escape / char)* '"'
//	true   = "true", any case
//	false  = "false", any case
//	number = ["-"] digit+
//	real   = number with a fraction and/or exponent
//
// Escapes are \\ \/ \" \b \t \f \n and \r.  Strings must be valid UTF-8.
// Integers are 64 bit; literals outside that range are decode errors.
//
// # Incremental decoding
//
// A [Decoder] accepts input in chunks of any size through [Decoder.Parse]
// or as an io.Writer.  Tokens may be split anywhere between chunks.  A
// number has no closing delimiter, so a number ending the input is only
// complete after [Decoder.Close] or a nul byte.
//
// [Decoder.Result] hands over the tree once a document is complete.  On
// failure the partial tree is freed.
//
// [Parse] and [ParseReader] wrap a Decoder for whole documents.
package parse
