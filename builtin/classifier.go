package builtin

import (
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/jmp-0x7C0/swift-bridge/core"
	"github.com/jmp-0x7C0/swift-bridge/model"
)

// Kind tells apart the two classifications
type Kind int

const (
	KindBuiltIn Kind = iota
	KindOpaque
)

// Classification is either BuiltIn (with the built-in it resolved to) or Opaque
type Classification struct {
	Kind    Kind
	BuiltIn Type
}

// BuiltIn classifies a type as crossing the boundary by value
func BuiltIn(t Type) Classification {
	return Classification{Kind: KindBuiltIn, BuiltIn: t}
}

// Opaque classifies a type as referenced through a handle
func Opaque() Classification {
	return Classification{Kind: KindOpaque}
}

// Classifier answers whether a type is built-in or opaque
type Classifier interface {
	Classify(t model.TypeRef) Classification
}

// Catalog classifies against the built-in catalog and a set of declared opaque types.
// It is total over valid signatures: a type that is neither is a defect upstream and
// Classify panics.
type Catalog struct {
	opaque *hashset.Set
}

// NewCatalog constructs a Catalog that knows about the given opaque types
func NewCatalog(opaqueTypes ...string) *Catalog {
	set := hashset.New()
	for _, name := range opaqueTypes {
		set.Add(name)
	}
	return &Catalog{opaque: set}
}

// Classify ignores reference qualifiers. Only the base identity decides.
func (c *Catalog) Classify(t model.TypeRef) Classification {
	if b, ok := WithName(t.Base()); ok {
		return BuiltIn(b)
	}
	if c.opaque.Contains(t.Base()) {
		return Opaque()
	}
	panic(core.NewPreconditionError("no classification for type %q", t))
}
