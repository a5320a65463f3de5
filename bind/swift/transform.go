// Package swift renders Rust signatures as Swift declarations and binds whole
// bridge modules to Swift source.
package swift

import (
	"fmt"

	"github.com/jmp-0x7C0/swift-bridge/builtin"
	"github.com/jmp-0x7C0/swift-bridge/core"
	"github.com/jmp-0x7C0/swift-bridge/model"
	"github.com/marstr/collection"
)

const (
	// ThisParamName binds the receiver handle in a declaration parameter list
	ThisParamName = "this"
	// HandleField is the field of a generated class holding its opaque pointer.
	// Inside a class method it also names the receiver's own handle.
	HandleField = "ptr"
	// anonLabel suppresses the external argument label at the call site
	anonLabel = "_ "
)

// slot is one normalized parameter: either the receiver or a classified named input
type slot struct {
	receiver bool
	named    model.Named
	class    builtin.Classification
}

// Transformer renders the Swift side of a signature. It holds no mutable state
// and is safe for concurrent use.
type Transformer struct {
	classifier builtin.Classifier
}

// NewTransformer constructs a Transformer that classifies types with c
func NewTransformer(c builtin.Classifier) *Transformer {
	return &Transformer{classifier: c}
}

// slots folds every receiver spelling into a single receiver slot, dropped entirely
// when includeReceiver is false. Classification happens here, on the caller's
// goroutine, so a precondition panic reaches the caller.
func (t *Transformer) slots(sig model.Signature, includeReceiver bool) collection.Enumerator {
	items := make([]interface{}, 0, len(sig.Params))
	seenReceiver := false
	for _, p := range sig.Params {
		if model.IsReceiver(p) {
			if includeReceiver && !seenReceiver {
				items = append(items, slot{receiver: true})
			}
			seenReceiver = true
			continue
		}
		named := p.(model.Named)
		items = append(items, slot{named: named, class: t.classify(named.Type)})
	}
	return collection.AsEnumerable(items...).Enumerate(nil)
}

// ParamList renders the parameters of a Swift declaration, e.g.
// `_ this: UnsafeMutableRawPointer, _ count: UInt32, _ other: Foo`.
func (t *Transformer) ParamList(sig model.Signature, includeReceiver bool) string {
	params := t.slots(sig, includeReceiver).Select(func(item interface{}) interface{} {
		s := item.(slot)
		if s.receiver {
			return anonLabel + ThisParamName + ": " + builtin.OpaqueSpelling(builtin.Swift)
		}
		return anonLabel + s.named.Name + ": " + paramType(s.named.Type, s.class)
	})
	return core.JoinEnumerator(params, ", ")
}

// CallArgs renders the arguments that forward a Swift call into Rust, e.g.
// `ptr, count, other.ptr`. Its Nth entry always matches the Nth entry of
// ParamList for the same includeReceiver.
func (t *Transformer) CallArgs(sig model.Signature, includeReceiver bool) string {
	args := t.slots(sig, includeReceiver).Select(func(item interface{}) interface{} {
		s := item.(slot)
		if s.receiver {
			return HandleField
		}
		switch s.class.Kind {
		case builtin.KindBuiltIn:
			return s.named.Name
		default:
			return s.named.Name + "." + HandleField
		}
	})
	return core.JoinEnumerator(args, ", ")
}

// ReturnClause renders ` -> T`, or nothing for unit returning functions. Opaque
// returns are always the raw pointer, whether Rust returns them by value or by
// reference.
func (t *Transformer) ReturnClause(sig model.Signature) string {
	if sig.Returns == nil {
		return ""
	}
	return " -> " + t.returnType(*sig.Returns)
}

func paramType(typ model.TypeRef, c builtin.Classification) string {
	switch c.Kind {
	case builtin.KindBuiltIn:
		return c.BuiltIn.Spelling(builtin.Swift)
	default:
		return typ.Base()
	}
}

func (t *Transformer) returnType(typ model.TypeRef) string {
	switch c := t.classify(typ); c.Kind {
	case builtin.KindBuiltIn:
		return c.BuiltIn.Spelling(builtin.Swift)
	default:
		return builtin.OpaqueSpelling(builtin.Swift)
	}
}

func (t *Transformer) classify(typ model.TypeRef) builtin.Classification {
	c := t.classifier.Classify(typ)
	switch c.Kind {
	case builtin.KindBuiltIn, builtin.KindOpaque:
		return c
	default:
		panic(core.NewPreconditionError("classification %d for %q", c.Kind, typ))
	}
}

// Render returns all three renderings for sig, formatted for diagnostics
func (t *Transformer) Render(sig model.Signature, includeReceiver bool) string {
	return fmt.Sprintf("(%s)%s [%s]",
		t.ParamList(sig, includeReceiver), t.ReturnClause(sig), t.CallArgs(sig, includeReceiver))
}
