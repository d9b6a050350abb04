package libdiff

import (
	"fmt"
	"strconv"

	"github.com/signadot/plist-format/go-plist/debug"
	"github.com/signadot/plist-format/go-plist/ir"
	"github.com/signadot/plist-format/go-plist/token"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type pair struct {
	from, to         *ir.Node
	fromPath, toPath string
}

// Diff returns the changes taking from to to, or none when they are
// equal apart from dictionary entry order.  Changes to the entries of a
// container come before changes inside those entries.
func Diff(from, to *ir.Node) ([]Change, error) {
	if from == nil || to == nil || from.Freed() || to.Freed() {
		return nil, fmt.Errorf("%w: diff of nil or freed node", ir.ErrInvalidArgument)
	}
	var res []Change
	work := []pair{{from: from, to: to, fromPath: from.Path(), toPath: to.Path()}}
	for len(work) != 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]
		if debug.Diff() {
			debug.Logf("diff %s %s at %s\n", p.from.Kind(), p.to.Kind(), p.fromPath)
		}
		var kids []pair
		switch {
		case p.from.Kind() != p.to.Kind():
			res = append(res, Change{Op: Replace, Path: p.fromPath, From: p.from, To: p.to})
		case p.from.Is(ir.DictKind):
			res, kids = diffDict(res, p)
		case p.from.Is(ir.ArrayKind):
			res, kids = diffArray(res, p)
		case !ir.Equal(p.from, p.to):
			res = append(res, Change{Op: Replace, Path: p.fromPath, From: p.from, To: p.to})
		}
		for i := len(kids) - 1; i >= 0; i-- {
			work = append(work, kids[i])
		}
	}
	return res, nil
}

func diffDict(res []Change, p pair) ([]Change, []pair) {
	var kids []pair
	for k := range p.from.All() {
		path := p.fromPath + "." + ir.PathField(k.Name())
		if tv := p.to.Get(k.Name()); tv != nil {
			kids = append(kids, pair{
				from:     k.Value(),
				to:       tv,
				fromPath: path,
				toPath:   p.toPath + "." + ir.PathField(k.Name()),
			})
			continue
		}
		res = append(res, Change{Op: Delete, Path: path, From: k.Value()})
	}
	for k := range p.to.All() {
		if !p.from.HasKey(k.Name()) {
			res = append(res, Change{Op: Insert, Path: p.toPath + "." + ir.PathField(k.Name()), To: k.Value()})
		}
	}
	return res, kids
}

// diffArray aligns the elements of two arrays by diffing the sequences of
// their summaries, one rune per distinct summary.  Aligned elements are
// compared in turn; a deletion directly followed by an insertion is a
// replacement.
func diffArray(res []Change, p pair) ([]Change, []pair) {
	m := map[string]rune{}
	fromRunes := mapValues(m, p.from)
	toRunes := mapValues(m, p.to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	var kids []pair
	fi, ti := 0, 0
	pending := 0
	for i := range diffs {
		n := len([]rune(diffs[i].Text))
		switch diffs[i].Type {
		case diffpatch.DiffEqual:
			pending = 0
			for range n {
				kids = append(kids, pair{
					from:     p.from.At(fi),
					to:       p.to.At(ti),
					fromPath: indexPath(p.fromPath, fi),
					toPath:   indexPath(p.toPath, ti),
				})
				fi++
				ti++
			}
		case diffpatch.DiffDelete:
			for range n {
				res = append(res, Change{Op: Delete, Path: indexPath(p.fromPath, fi), From: p.from.At(fi)})
				fi++
			}
			pending = n
		case diffpatch.DiffInsert:
			for range n {
				if pending > 0 {
					// turn the earliest unmatched deletion into a replacement
					c := &res[len(res)-pending]
					c.Op = Replace
					c.To = p.to.At(ti)
					pending--
				} else {
					res = append(res, Change{Op: Insert, Path: indexPath(p.toPath, ti), To: p.to.At(ti)})
				}
				ti++
			}
			pending = 0
		}
	}
	return res, kids
}

func mapValues(m map[string]rune, a *ir.Node) []rune {
	rs := make([]rune, a.Len())
	for i := range rs {
		sum := summaryStr(a.At(i))
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

// summaryStr is equal for nodes which should be aligned.  Containers
// summarize to their kind, so any two dictionaries align and are then
// compared entry by entry.
func summaryStr(n *ir.Node) string {
	k := n.Kind().String()
	switch n.Kind() {
	case ir.DataKind:
		return k + "-" + string(n.Data())
	case ir.DateKind:
		return k + "-" + token.FormatDate(n.Date())
	case ir.StringKind:
		return k + "-" + n.Text()
	case ir.IntegerKind:
		return k + "-" + strconv.FormatInt(n.Int(), 10)
	case ir.RealKind:
		return k + "-" + strconv.FormatFloat(n.Real(), 'g', -1, 64)
	case ir.BooleanKind:
		return k + "-" + strconv.FormatBool(n.Bool())
	}
	return k
}

func indexPath(base string, i int) string {
	return base + "[" + strconv.Itoa(i) + "]"
}
