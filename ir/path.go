package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Path returns the location of y relative to the root of its tree, as
// accepted by GetPath.  Values are addressed through the name of the key
// holding them, so a value and its key share a path.
func (y *Node) Path() string {
	var frags []string
	for n := y; n != nil; n = n.parent {
		if n.kind == KeyKind {
			frags = append(frags, "."+PathField(n.name))
			continue
		}
		p := n.parent
		if p == nil {
			break
		}
		switch p.kind {
		case KeyKind:
		case ArrayKind:
			frags = append(frags, "["+strconv.Itoa(n.index)+"]")
		default:
			panic("parent but not in container")
		}
	}
	var b strings.Builder
	b.WriteByte('$')
	for i := len(frags) - 1; i >= 0; i-- {
		b.WriteString(frags[i])
	}
	return b.String()
}

// Path is a parsed path expression.  A path starts with '$' and continues
// with any number of steps:
//
//	.name       dictionary entry
//	.'a.b'      dictionary entry with quoting
//	[3]         array element
//	[*]         every array element (ListPath only)
//	..          every node below (ListPath only)
type Path struct {
	IndexAll bool
	Index    *int
	Field    *string
	Subtree  bool
	Next     *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Subtree:
			buf.WriteString("..")
		case x.IndexAll:
			buf.WriteString("[*]")
		case x.Field != nil:
			if buf.Len() != 0 && buf.Bytes()[buf.Len()-1] != '.' {
				buf.WriteByte('.')
			}
			buf.WriteString(PathField(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

func ParsePath(p string) (*Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: path %q should start with '$'", ErrInvalidArgument, p)
	}
	root := &Path{}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w: path %q: %w", ErrInvalidArgument, p, err)
	}
	return root, nil
}

func parseFrag(frag string, at *Path) error {
	for len(frag) != 0 {
		switch frag[0] {
		case '.':
			if len(frag) > 1 && frag[1] == '.' {
				at.Subtree = true
				frag = frag[2:]
				// "..name" continues with a field
				if len(frag) != 0 && frag[0] != '[' {
					frag = "." + frag
				}
				break
			}
			field, rest, err := parseField(frag[1:])
			if err != nil {
				return err
			}
			at.Field = &field
			frag = rest
		case '[':
			i := strings.IndexByte(frag[1:], ']')
			if i == -1 {
				return fmt.Errorf("expected '[' <index> ']'")
			}
			index, all, err := parseIndex(frag[1 : i+1])
			if err != nil {
				return err
			}
			at.IndexAll = all
			if !all {
				at.Index = &index
			}
			frag = frag[i+2:]
		default:
			return fmt.Errorf("expected '.' or '['")
		}
		if len(frag) != 0 {
			at.Next = &Path{}
			at = at.Next
		}
	}
	return nil
}

func parseIndex(is string) (index int, all bool, err error) {
	if is == "*" {
		return 0, true, nil
	}
	u, err := strconv.ParseUint(is, 10, 31)
	if err != nil {
		return 0, false, err
	}
	return int(u), false, nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch {
		case c == '\\' && !escaped:
			escaped = true
		case c == '\'' && !escaped:
			return string(res), frag[i+1:], nil
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

// PathField returns f as it appears in a path after a '.', quoted when it
// holds a character with meaning in paths.
func PathField(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]\\") == -1 {
		return f
	}
	f = strings.ReplaceAll(f, "\\", "\\\\")
	return "'" + strings.ReplaceAll(f, "'", "\\'") + "'"
}

// GetPath returns the node at yPath below y.  The node stays owned by its
// tree.  Wildcards are not accepted.
func (y *Node) GetPath(yPath string) (*Node, error) {
	yp, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	res := y
	for ; yp != nil; yp = yp.Next {
		if yp.IndexAll {
			return nil, fmt.Errorf("%w: any index in get", ErrInvalidArgument)
		}
		if yp.Subtree {
			return nil, fmt.Errorf("%w: recurse .. in get", ErrInvalidArgument)
		}
		if res.kind == KeyKind {
			if res = res.value; res == nil {
				return nil, fmt.Errorf("%w: key without value", ErrNotFound)
			}
		}
		switch {
		case yp.Index != nil:
			if res.kind != ArrayKind {
				return nil, fmt.Errorf("%w: expected array, got %s", ErrWrongKind, res.kind)
			}
			index := *yp.Index
			if index >= len(res.children) {
				return nil, fmt.Errorf("%w: index %d (len %d)", ErrOutOfRange, index, len(res.children))
			}
			res = res.children[index]
		case yp.Field != nil:
			if res.kind != DictKind {
				return nil, fmt.Errorf("%w: expected dict, got %s", ErrWrongKind, res.kind)
			}
			v := res.Get(*yp.Field)
			if v == nil {
				return nil, fmt.Errorf("%w: %s", ErrNotFound, yp)
			}
			res = v
		}
	}
	return res, nil
}

// ListPath appends to dst every node below y matching yPath.
func (y *Node) ListPath(dst []*Node, yPath string) ([]*Node, error) {
	yp, err := ParsePath(yPath)
	if err != nil {
		return nil, err
	}
	return y.listPath(dst, yp)
}

func (y *Node) listPath(dst []*Node, yp *Path) ([]*Node, error) {
	if y.kind == KeyKind {
		if y.value == nil {
			return dst, nil
		}
		y = y.value
	}
	if yp == nil {
		return append(dst, y), nil
	}
	var err error
	if yp.Subtree {
		err = y.Visit(func(n *Node, isPost bool) (bool, error) {
			if isPost || n.kind == KeyKind {
				return !isPost, nil
			}
			dst, err = n.listPath(dst, yp.Next)
			return n.kind.IsContainer(), err
		})
		if err != nil {
			return nil, err
		}
		return dst, nil
	}
	switch {
	case yp.Field != nil:
		if v := y.Get(*yp.Field); v != nil {
			return v.listPath(dst, yp.Next)
		}
	case yp.Index != nil:
		if v := y.At(*yp.Index); v != nil {
			return v.listPath(dst, yp.Next)
		}
	case yp.IndexAll:
		if y.kind != ArrayKind {
			return dst, nil
		}
		for _, v := range y.children {
			if dst, err = v.listPath(dst, yp.Next); err != nil {
				return nil, err
			}
		}
	default:
		return y.listPath(dst, yp.Next)
	}
	return dst, nil
}
