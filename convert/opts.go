package convert

type Option func(*opts)

type opts struct {
	pretty bool
	indent string
}

func newOpts(os []Option) *opts {
	o := &opts{pretty: true, indent: "  "}
	for _, opt := range os {
		opt(o)
	}
	return o
}

// Compact selects output without line breaks or indentation.
func Compact() Option {
	return func(o *opts) { o.pretty = false }
}

// IndentWith sets the string repeated per nesting level in pretty output.
func IndentWith(s string) Option {
	return func(o *opts) { o.indent = s }
}
