// Package plist holds operations over whole property list documents which
// combine the node model with the other packages.
package plist

import (
	"fmt"

	"github.com/signadot/plist-format/go-plist/debug"
	"github.com/signadot/plist-format/go-plist/ir"
)

// Match reports whether doc matches the pattern match.  A dictionary
// pattern matches a dictionary holding at least its keys, each of whose
// values matches.  An array pattern matches an array of the same length
// element by element.  Any other pattern matches an equal node.
func Match(doc, match *ir.Node) (bool, error) {
	if doc == nil || match == nil || doc.Freed() || match.Freed() {
		return false, fmt.Errorf("%w: match of nil or freed node", ir.ErrInvalidArgument)
	}
	type pair struct{ doc, match *ir.Node }
	work := []pair{{doc, match}}
	for len(work) != 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]
		if debug.Match() {
			debug.Logf("match %s at %s\n", p.match.Kind(), p.doc.Path())
		}
		if p.doc.Kind() != p.match.Kind() {
			return false, nil
		}
		switch p.match.Kind() {
		case ir.DictKind:
			for k := range p.match.All() {
				dv := p.doc.Get(k.Name())
				if dv == nil {
					return false, nil
				}
				work = append(work, pair{dv, k.Value()})
			}
		case ir.ArrayKind:
			if p.doc.Len() != p.match.Len() {
				return false, nil
			}
			for i := range p.match.Len() {
				work = append(work, pair{p.doc.At(i), p.match.At(i)})
			}
		default:
			if !ir.Equal(p.doc, p.match) {
				return false, nil
			}
		}
	}
	return true, nil
}

type trimItem struct {
	doc, match *ir.Node
	parent     *ir.Node
	name       string
}

// Trim returns a copy of doc cut down to what match mentions.  Entries of
// a dictionary whose names are not in the pattern are dropped.  For an
// array, each pattern element keeps the first element of doc it matches
// which no earlier pattern element kept.  Other nodes are copied whole.
//
// The caller owns the result.
func Trim(match, doc *ir.Node) (*ir.Node, error) {
	var root *ir.Node
	fail := func(n *ir.Node, err error) (*ir.Node, error) {
		if n != nil && n != root && n.Parent() == nil {
			n.Free()
		}
		if root != nil {
			root.Free()
		}
		return nil, err
	}
	work := []trimItem{{doc: doc, match: match}}
	for len(work) != 0 {
		it := work[len(work)-1]
		work = work[:len(work)-1]
		var (
			n    *ir.Node
			kids []trimItem
			err  error
		)
		switch {
		case it.match.Is(ir.DictKind) && it.doc.Is(ir.DictKind):
			if n, err = ir.NewDictionary(); err != nil {
				return fail(nil, err)
			}
			for k := range it.doc.All() {
				if mv := it.match.Get(k.Name()); mv != nil {
					kids = append(kids, trimItem{doc: k.Value(), match: mv, name: k.Name()})
				}
			}
		case it.match.Is(ir.ArrayKind) && it.doc.Is(ir.ArrayKind):
			if n, err = ir.NewArray(); err != nil {
				return fail(nil, err)
			}
			if kids, err = trimArray(it.match, it.doc); err != nil {
				return fail(n, err)
			}
		default:
			if n, err = it.doc.Copy(); err != nil {
				return fail(nil, err)
			}
		}
		switch {
		case it.parent == nil:
			root = n
		case it.parent.Is(ir.DictKind):
			err = it.parent.Set(it.name, n)
		default:
			err = it.parent.Append(n)
		}
		if err != nil {
			return fail(n, err)
		}
		for i := len(kids) - 1; i >= 0; i-- {
			kids[i].parent = n
			work = append(work, kids[i])
		}
	}
	return root, nil
}

func trimArray(match, doc *ir.Node) ([]trimItem, error) {
	var res []trimItem
	used := make([]bool, doc.Len())
	for me := range match.All() {
		for i := range doc.Len() {
			if used[i] {
				continue
			}
			ok, err := Match(doc.At(i), me)
			if err != nil {
				return nil, err
			}
			if ok {
				res = append(res, trimItem{doc: doc.At(i), match: me})
				used[i] = true
				break
			}
		}
	}
	return res, nil
}
