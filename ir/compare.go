package ir

import "bytes"

// Equal reports whether a and b are structurally identical: same kinds,
// payloads and key names, with entries in the same order.  Two nil nodes
// are equal.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	type pair struct{ a, b *Node }
	work := []pair{{a, b}}
	for len(work) != 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]
		if !shallowEqual(p.a, p.b) {
			return false
		}
		switch p.a.kind {
		case DictKind, ArrayKind:
			for i := range p.a.children {
				work = append(work, pair{p.a.children[i], p.b.children[i]})
			}
		case KeyKind:
			if p.a.value == nil || p.b.value == nil {
				if p.a.value != p.b.value {
					return false
				}
				continue
			}
			work = append(work, pair{p.a.value, p.b.value})
		}
	}
	return true
}

func shallowEqual(a, b *Node) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case DictKind, ArrayKind:
		return len(a.children) == len(b.children)
	case KeyKind:
		return a.name == b.name
	case DataKind:
		return bytes.Equal(a.data, b.data)
	case DateKind:
		return a.date.Equal(b.date)
	case StringKind:
		return a.str == b.str
	case IntegerKind:
		return a.integer == b.integer
	case RealKind:
		return a.real == b.real
	case BooleanKind:
		return a.boolean == b.boolean
	}
	return true
}
