package parse

type parseOpts struct {
	strictData   bool
	maxDepth     int
	maxTokenSize int
	chunkSize    int
}

const (
	defaultChunkSize = 4096
	minScratch       = 64
)

type ParseOption func(*parseOpts)

// StrictData makes an odd number of hex digits in a data token an error.
// By default the last byte is completed with a zero low nibble.
func StrictData(v bool) ParseOption {
	return func(o *parseOpts) { o.strictData = v }
}

// MaxDepth limits the nesting of dictionaries and arrays.  Zero means no
// limit.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// MaxTokenSize limits the size in bytes of a single string, data, date or
// number token.  Exceeding it fails with ir.ErrOutOfMemory.  Zero means no
// limit.
func MaxTokenSize(n int) ParseOption {
	return func(o *parseOpts) { o.maxTokenSize = n }
}

// ChunkSize sets the read size used by ParseReader.
func ChunkSize(n int) ParseOption {
	return func(o *parseOpts) {
		if n > 0 {
			o.chunkSize = n
		}
	}
}

func newOpts(opts []ParseOption) parseOpts {
	o := parseOpts{chunkSize: defaultChunkSize}
	for _, f := range opts {
		f(&o)
	}
	return o
}
