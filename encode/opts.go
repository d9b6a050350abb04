package encode

type EncodeOption func(*EncState)

// Indent sets the number of spaces per nesting level in pretty output.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Depth sets the nesting level the output starts at.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// EncodeWire selects the compact form with no whitespace, such as
// {"a":1;"b":(1,2);}.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}
