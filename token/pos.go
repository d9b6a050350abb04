package token

import "fmt"

// Pos is a position in a byte stream.  Line and Col count from 1 and Col
// counts bytes.
type Pos struct {
	Offset int64
	Line   int
	Col    int
}

func StartPos() Pos {
	return Pos{Line: 1, Col: 1}
}

// Advance moves p past the byte c.
func (p *Pos) Advance(c byte) {
	p.Offset++
	if c == '\n' {
		p.Line++
		p.Col = 1
		return
	}
	p.Col++
}

func (p Pos) String() string {
	return fmt.Sprintf("offset %d (line=%d, col=%d)", p.Offset, p.Line, p.Col)
}
