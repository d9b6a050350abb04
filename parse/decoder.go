package parse

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/signadot/plist-format/go-plist/debug"
	"github.com/signadot/plist-format/go-plist/ir"
	"github.com/signadot/plist-format/go-plist/token"
)

// Decoder builds a tree from text delivered in chunks of any size.
//
// Every call to Parse continues exactly where the previous one stopped,
// including in the middle of a token: partial tokens are kept in a scratch
// buffer owned by the Decoder.  Feeding a document one byte at a time
// gives the same tree as feeding it whole.
//
// A Decoder is not safe for concurrent use.
type Decoder struct {
	state  State
	expect expect
	depth  int

	// cur is the open container, or the key awaiting its value.
	cur *ir.Node
	top *ir.Node

	escape  bool
	nibbles int
	lead    bool
	lit     int
	buf     []byte

	pos   token.Pos
	start token.Pos
	err   error
	opts  parseOpts
}

func NewDecoder(opts ...ParseOption) *Decoder {
	return &Decoder{
		pos:  token.StartPos(),
		opts: newOpts(opts),
	}
}

func (d *Decoder) State() State {
	return d.state
}

// Depth returns the number of containers currently open.
func (d *Decoder) Depth() int {
	return d.depth
}

// Pos returns the position of the next byte to be read.
func (d *Decoder) Pos() token.Pos {
	return d.pos
}

// Parse feeds chunk to the decoder and reports whether a complete document
// has been seen.  A nul byte ends the input: it terminates a pending number
// and the rest of the chunk is ignored.
//
// After an error the decoder stays failed, and Parse returns the same
// error, until Result or Reset is called.
func (d *Decoder) Parse(chunk []byte) (bool, error) {
	if d.state == StateError {
		return false, d.err
	}
	for i := 0; i < len(chunk); {
		c := chunk[i]
		if c == 0 {
			if err := d.terminate(); err != nil {
				return false, err
			}
			break
		}
		consumed, err := d.step(c)
		if err != nil {
			return false, err
		}
		if consumed {
			d.pos.Advance(c)
			i++
		}
	}
	return d.state == StateDone, nil
}

// Write implements io.Writer on top of Parse.
func (d *Decoder) Write(p []byte) (int, error) {
	if _, err := d.Parse(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Close signals the end of input.  It completes a number at the very end
// of the document and fails if the document is incomplete.
func (d *Decoder) Close() error {
	if d.state == StateError {
		return d.err
	}
	if err := d.terminate(); err != nil {
		return err
	}
	if d.state == StateDone {
		return nil
	}
	return d.fail(d.pos, fmt.Errorf("%w: %w in %s", ir.ErrDecode, io.ErrUnexpectedEOF, d.state))
}

// Result returns the decoded tree, which the caller then owns.  If no
// complete document has been seen any partial tree is freed and the error
// wraps ir.ErrNotFound.  In either case the decoder is reset for reuse.
func (d *Decoder) Result() (*ir.Node, error) {
	if d.state != StateDone {
		err := fmt.Errorf("%w: no complete document", ir.ErrNotFound)
		if d.err != nil {
			err = fmt.Errorf("%w: %w", err, d.err)
		}
		d.Reset()
		return nil, err
	}
	top := d.top
	d.top = nil
	d.Reset()
	return top, nil
}

// Reset frees any partial tree and returns the decoder to its initial
// state, keeping its options and scratch buffer.
func (d *Decoder) Reset() {
	if d.top != nil {
		d.top.Free()
	}
	*d = Decoder{
		buf:  d.buf[:0],
		pos:  token.StartPos(),
		opts: d.opts,
	}
}

func (d *Decoder) step(c byte) (bool, error) {
	switch d.state {
	case StateScan, StateDone:
		return true, d.scan(c)
	case StateString:
		return true, d.str(c)
	case StateTrue, StateFalse:
		return true, d.literal(c)
	case StateData:
		return true, d.data(c)
	case StateDate:
		return true, d.date(c)
	case StateNumber, StateDouble:
		if !token.IsNumberByte(c) {
			return false, d.finishNumber()
		}
		if c == '.' || c == 'e' || c == 'E' {
			d.state = StateDouble
		}
		return true, d.push(c)
	}
	return false, d.err
}

// terminate ends a token which has no closing delimiter of its own.
func (d *Decoder) terminate() error {
	if d.state == StateNumber || d.state == StateDouble {
		return d.finishNumber()
	}
	return nil
}

func (d *Decoder) scan(c byte) error {
	if isSpace(c) {
		return nil
	}
	if d.state == StateDone {
		return d.errorf(d.pos, ErrTrailingData, "%q", c)
	}
	switch c {
	case '{':
		return d.open(c, ir.DictKind)
	case '(':
		return d.open(c, ir.ArrayKind)
	case '}':
		if !d.cur.Is(ir.DictKind) || d.expect != expectKey {
			return d.unexpected(c)
		}
		return d.close()
	case ')':
		if !d.cur.Is(ir.ArrayKind) || (d.expect != expectFirstElem && d.expect != expectElemSep) {
			return d.unexpected(c)
		}
		return d.close()
	case ':', '=':
		if d.expect != expectColon {
			return d.unexpected(c)
		}
		d.expect = expectValue
		return nil
	case ';':
		if d.expect != expectEntrySep {
			return d.unexpected(c)
		}
		d.expect = expectKey
		return nil
	case ',':
		if d.expect != expectElemSep {
			return d.unexpected(c)
		}
		d.expect = expectValue
		return nil
	case '"':
		if !d.expect.valueStart() && d.expect != expectKey {
			return d.unexpected(c)
		}
		d.begin(StateString)
		return nil
	}
	if !d.expect.valueStart() {
		return d.unexpected(c)
	}
	switch c {
	case '<':
		d.begin(StateData)
		d.lead = true
		return nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		d.begin(StateNumber)
		return d.push(c)
	case 't', 'T':
		d.begin(StateTrue)
		d.lit = 1
		return nil
	case 'f', 'F':
		d.begin(StateFalse)
		d.lit = 1
		return nil
	}
	return d.unexpected(c)
}

// begin enters the token state s at the current position.
func (d *Decoder) begin(s State) {
	d.state = s
	d.start = d.pos
	d.buf = d.buf[:0]
	d.escape = false
	d.nibbles = 0
	d.lead = false
	d.lit = 0
}

func (d *Decoder) str(c byte) error {
	if d.escape {
		u, ok := token.Unescape(c)
		if !ok {
			return d.errorf(d.pos, token.ErrBadEscape, "\\%c", c)
		}
		d.escape = false
		return d.push(u)
	}
	switch c {
	case '\\':
		d.escape = true
		return nil
	case '"':
		return d.finishString()
	}
	return d.push(c)
}

func (d *Decoder) finishString() error {
	if !utf8.Valid(d.buf) {
		return d.errorf(d.start, token.ErrBadUTF8, "in string")
	}
	s := string(d.buf)
	if d.expect == expectKey {
		k, err := d.cur.AddKey(s)
		if err != nil {
			return d.fail(d.start, err)
		}
		d.cur = k
		d.state = StateScan
		d.expect = expectColon
		return nil
	}
	n, err := ir.NewString(s)
	if err != nil {
		return d.fail(d.start, err)
	}
	return d.value(n)
}

var literals = [...]string{
	StateTrue:  "true",
	StateFalse: "false",
}

func (d *Decoder) literal(c byte) error {
	word := literals[d.state]
	if c|0x20 != word[d.lit] {
		return d.errorf(d.start, token.ErrLiteral, "%q in %s", c, word)
	}
	d.lit++
	if d.lit < len(word) {
		return nil
	}
	n, err := ir.NewBoolean(d.state == StateTrue)
	if err != nil {
		return d.fail(d.start, err)
	}
	return d.value(n)
}

func (d *Decoder) data(c byte) error {
	if d.lead {
		d.lead = false
		if c == '*' {
			d.begin(StateDate)
			return nil
		}
	}
	if isSpace(c) {
		return nil
	}
	if c == '>' {
		return d.finishData()
	}
	v, ok := hexVal(c)
	if !ok {
		return d.errorf(d.pos, token.ErrHex, "%q", c)
	}
	if d.nibbles%2 == 0 {
		if err := d.push(v << 4); err != nil {
			return err
		}
	} else {
		d.buf[len(d.buf)-1] |= v
	}
	d.nibbles++
	return nil
}

func (d *Decoder) finishData() error {
	if d.nibbles%2 != 0 && d.opts.strictData {
		return d.errorf(d.start, token.ErrOddHex, "%d digits", d.nibbles)
	}
	b := d.buf
	if b == nil {
		b = []byte{}
	}
	n, err := ir.NewData(b)
	if err != nil {
		return d.fail(d.start, err)
	}
	return d.value(n)
}

func (d *Decoder) date(c byte) error {
	if d.lit == 0 {
		if c != 'D' {
			return d.errorf(d.pos, token.ErrDate, "expected 'D' after \"<*\", got %q", c)
		}
		d.lit = 1
		return nil
	}
	if c != '>' {
		return d.push(c)
	}
	t, err := token.ParseDate(string(d.buf))
	if err != nil {
		return d.fail(d.start, fmt.Errorf("%w: %w", ir.ErrDecode, err))
	}
	n, err := ir.NewDate(t)
	if err != nil {
		return d.fail(d.start, err)
	}
	return d.value(n)
}

func (d *Decoder) finishNumber() error {
	var (
		n   *ir.Node
		err error
	)
	if d.state == StateDouble {
		var f float64
		if f, err = token.ParseReal(d.buf); err == nil {
			n, err = ir.NewReal(f)
		}
	} else {
		var i int64
		if i, err = token.ParseInt(d.buf); err == nil {
			n, err = ir.NewInteger(i)
		}
	}
	if err != nil {
		if !errors.Is(err, ir.ErrOutOfMemory) {
			err = fmt.Errorf("%w: %w", ir.ErrDecode, err)
		}
		return d.fail(d.start, err)
	}
	return d.value(n)
}

// open attaches a new container and makes it current.
func (d *Decoder) open(c byte, k ir.Kind) error {
	if !d.expect.valueStart() {
		return d.unexpected(c)
	}
	if limit := d.opts.maxDepth; limit > 0 && d.depth >= limit {
		return d.errorf(d.pos, ErrMaxDepth, "limit %d", limit)
	}
	var (
		n   *ir.Node
		err error
	)
	if k == ir.DictKind {
		n, err = ir.NewDictionary()
	} else {
		n, err = ir.NewArray()
	}
	if err != nil {
		return d.fail(d.pos, err)
	}
	if err := d.attach(n); err != nil {
		return err
	}
	d.cur = n
	d.depth++
	if k == ir.DictKind {
		d.expect = expectKey
	} else {
		d.expect = expectFirstElem
	}
	if debug.Decode() {
		debug.Logf("decode: open %s depth %d at %s\n", k, d.depth, d.pos)
	}
	return nil
}

func (d *Decoder) close() error {
	c := d.cur
	d.depth--
	if debug.Decode() {
		debug.Logf("decode: close %s depth %d at %s\n", c.Kind(), d.depth, d.pos)
	}
	d.after(c)
	return nil
}

// value attaches a completed scalar.
func (d *Decoder) value(n *ir.Node) error {
	if err := d.attach(n); err != nil {
		return err
	}
	d.after(n)
	return nil
}

func (d *Decoder) attach(n *ir.Node) error {
	var err error
	switch {
	case d.cur == nil:
		d.top = n
	case d.cur.Is(ir.KeyKind):
		err = d.cur.SetValue(n)
	default:
		err = d.cur.Append(n)
	}
	if err != nil {
		n.Free()
		return d.fail(d.pos, err)
	}
	return nil
}

// after moves to the context following the completed value n.
func (d *Decoder) after(n *ir.Node) {
	p := n.Parent()
	switch {
	case p == nil:
		d.cur = nil
		d.state = StateDone
		d.expect = expectEnd
		return
	case p.Is(ir.KeyKind):
		d.cur = p.Parent()
		d.expect = expectEntrySep
	default:
		d.cur = p
		d.expect = expectElemSep
	}
	d.state = StateScan
}

// push appends c to the scratch buffer, doubling its capacity as needed.
func (d *Decoder) push(c byte) error {
	if limit := d.opts.maxTokenSize; limit > 0 && len(d.buf) >= limit {
		return d.fail(d.start, fmt.Errorf("%w: token longer than %d bytes", ir.ErrOutOfMemory, limit))
	}
	if len(d.buf) == cap(d.buf) {
		nb := make([]byte, len(d.buf), max(2*cap(d.buf), minScratch))
		copy(nb, d.buf)
		d.buf = nb
	}
	d.buf = append(d.buf, c)
	return nil
}

func (d *Decoder) unexpected(c byte) error {
	return d.errorf(d.pos, token.ErrUnexpected, "%q, expected %s", c, d.expect)
}

func (d *Decoder) errorf(pos token.Pos, kind error, format string, args ...any) error {
	return d.fail(pos, fmt.Errorf("%w: %w: "+format, append([]any{ir.ErrDecode, kind}, args...)...))
}

// fail latches err as the decoder's error.
func (d *Decoder) fail(pos token.Pos, err error) error {
	d.err = &DecodeErr{Err: err, Pos: pos}
	d.state = StateError
	if debug.Decode() {
		debug.Logf("decode: %v\n", d.err)
	}
	return d.err
}
