package eval

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/signadot/plist-format/go-plist/convert"
	"github.com/signadot/plist-format/go-plist/debug"
	"github.com/signadot/plist-format/go-plist/encode"
	"github.com/signadot/plist-format/go-plist/ir"
	"github.com/signadot/plist-format/go-plist/token"

	"github.com/expr-lang/expr"
)

// Eval evaluates the expression src at node and returns the result as a
// new tree, which the caller owns.
func Eval(node *ir.Node, src string, env Env) (*ir.Node, error) {
	v, err := evalAny(node, src, env)
	if err != nil {
		return nil, err
	}
	res, err := convert.FromAny(v)
	if err != nil {
		return nil, fmt.Errorf("%w: result of %q: %w", ErrEval, src, err)
	}
	return res, nil
}

func evalAny(node *ir.Node, src string, env Env) (any, error) {
	doc, err := ToValue(node.Root())
	if err != nil {
		return nil, err
	}
	program, err := expr.Compile(src, exprOpts(node)...)
	if err != nil {
		return nil, fmt.Errorf("%w: compiling %q: %w", ErrEval, src, err)
	}
	v, err := expr.Run(program, map[string]any(env.with("doc", doc)))
	if err != nil {
		return nil, fmt.Errorf("%w: evaluating %q: %w", ErrEval, src, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q at %s gave %#v\n", src, node.Path(), v)
	}
	return v, nil
}

// ExpandEnv returns a copy of node with every string expanded.  The
// expressions see the original tree, so whereami and getpath refer to
// node and its root rather than to the copy.
//
// The caller owns the result.
func ExpandEnv(node *ir.Node, env Env) (*ir.Node, error) {
	res, err := node.Copy()
	if err != nil {
		return nil, err
	}
	var (
		src  []*ir.Node
		dst  []*ir.Node
		walk = func(into *[]*ir.Node) func(*ir.Node, bool) (bool, error) {
			return func(n *ir.Node, isPost bool) (bool, error) {
				if !isPost && n.Is(ir.StringKind) {
					*into = append(*into, n)
				}
				return true, nil
			}
		}
	)
	if err := node.Visit(walk(&src)); err != nil {
		res.Free()
		return nil, err
	}
	if err := res.Visit(walk(&dst)); err != nil {
		res.Free()
		return nil, err
	}
	for i, s := range src {
		repl, err := expandNode(s, env)
		if err != nil {
			res.Free()
			return nil, fmt.Errorf("expanding %s: %w", s.Path(), err)
		}
		if repl == nil {
			continue
		}
		next, err := replace(res, dst[i], repl)
		if err != nil {
			if repl.Parent() == nil {
				repl.Free()
			}
			res.Free()
			return nil, err
		}
		res = next
	}
	return res, nil
}

// expandNode returns the replacement for the string node s, or nil if s
// has nothing to expand.
func expandNode(s *ir.Node, env Env) (*ir.Node, error) {
	text := s.Text()
	if raw := GetRaw(text); raw != "" {
		return Eval(s, raw, env)
	}
	if !strings.Contains(text, "$[") {
		return nil, nil
	}
	v, err := expandString(s, text, env)
	if err != nil {
		return nil, err
	}
	return ir.NewString(v)
}

// replace puts repl where old is in the tree rooted at root and frees
// old.  It returns the new root, which is repl when old is root.
func replace(root, old, repl *ir.Node) (*ir.Node, error) {
	p := old.Parent()
	switch {
	case old == root:
		if err := old.Free(); err != nil {
			return nil, err
		}
		return repl, nil
	case p.Is(ir.KeyKind):
		return root, p.SetValue(repl)
	default:
		i := old.ParentIndex()
		if err := p.DeleteAt(i); err != nil {
			return nil, err
		}
		return root, p.Insert(i, repl)
	}
}

// GetRaw returns expr for a string of the form .[expr], or "".
func GetRaw(v string) string {
	if !isRawEnvRef(v) {
		return ""
	}
	return v[2 : len(v)-1]
}

func isRawEnvRef(s string) bool {
	return strings.HasPrefix(s, ".[") && strings.HasSuffix(s, "]")
}

// ExpandString replaces each $[expr] in v by the text of its value.  node
// is the tree the expressions see.
func ExpandString(node *ir.Node, v string, env Env) (string, error) {
	return expandString(node, v, env)
}

func expandString(node *ir.Node, v string, env Env) (string, error) {
	var (
		out strings.Builder
		key strings.Builder
	)
	for i := 0; i < len(v); i++ {
		if v[i] != '$' || i+1 == len(v) || v[i+1] != '[' {
			out.WriteByte(v[i])
			continue
		}
		key.Reset()
		j := i + 2
		closed := false
		for ; j < len(v); j++ {
			c := v[j]
			if c == '\\' && j+1 < len(v) {
				j++
				key.WriteByte(v[j])
				continue
			}
			if c == ']' {
				closed = true
				break
			}
			key.WriteByte(c)
		}
		if !closed {
			out.WriteString(v[i:])
			break
		}
		src := strings.TrimSpace(key.String())
		x, err := evalAny(node, src, env)
		if err != nil {
			return "", err
		}
		text, err := anyText(x)
		if err != nil {
			return "", fmt.Errorf("%w: result of %q: %w", ErrEval, src, err)
		}
		out.WriteString(text)
		i = j
	}
	return out.String(), nil
}

func anyText(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case time.Time:
		return token.FormatDate(x), nil
	}
	n, err := convert.FromAny(v)
	if err != nil {
		return "", err
	}
	defer n.Free()
	buf := &strings.Builder{}
	if err := encode.Encode(n, buf, encode.EncodeWire(true)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
