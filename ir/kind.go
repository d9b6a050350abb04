package ir

import (
	"fmt"
	"strings"
)

// Kind is the variant tag of a Node.
type Kind int

const (
	DictKind Kind = iota
	KeyKind
	ArrayKind
	DataKind
	DateKind
	StringKind
	IntegerKind
	RealKind
	BooleanKind

	UnknownKind
)

var kindNames = []struct {
	name string
	kind Kind
}{
	{"dict", DictKind},
	{"key", KeyKind},
	{"array", ArrayKind},
	{"data", DataKind},
	{"date", DateKind},
	{"string", StringKind},
	{"integer", IntegerKind},
	{"real", RealKind},
	{"boolean", BooleanKind},
}

// ParseKind looks up a kind by name, ignoring case.  Unrecognized names
// yield UnknownKind.
func ParseKind(name string) Kind {
	for _, nk := range kindNames {
		if strings.EqualFold(name, nk.name) {
			return nk.kind
		}
	}
	return UnknownKind
}

func (k Kind) String() string {
	for _, nk := range kindNames {
		if nk.kind == k {
			return nk.name
		}
	}
	return "unknown"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk := ParseKind(string(d))
	if kk == UnknownKind {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		DictKind,
		KeyKind,
		ArrayKind,
		DataKind,
		DateKind,
		StringKind,
		IntegerKind,
		RealKind,
		BooleanKind,
	}
}

// IsContainer reports whether nodes of kind k own an ordered sequence of
// children.
func (k Kind) IsContainer() bool {
	return k == DictKind || k == ArrayKind
}

func (k Kind) IsLeaf() bool {
	switch k {
	case DictKind, KeyKind, ArrayKind:
		return false
	default:
		return true
	}
}
