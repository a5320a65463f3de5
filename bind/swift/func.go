package swift

import (
	"github.com/jmp-0x7C0/swift-bridge/model"
)

// Func is the template view of one bridged function
type Func struct {
	fun    model.Function
	Name   string
	Params string
	Return string
	Args   string
}

// NewFunc renders the Swift side of f. Methods forward their own handle as the
// first argument but never declare it, since it is the class's ptr field.
func (t *Transformer) NewFunc(f model.Function) *Func {
	sig := f.Signature
	return &Func{
		fun:    f,
		Name:   f.Name,
		Params: t.ParamList(sig, false),
		Return: t.ReturnClause(sig),
		Args:   t.CallArgs(sig, f.IsMethod()),
	}
}

// Call returns the expression invoking the Rust symbol
func (f Func) Call() string {
	return f.fun.LinkName() + "(" + f.Args + ")"
}

// IsStatic returns true for functions owned by a type that take no receiver
func (f Func) IsStatic() bool {
	return f.fun.IsMethod() && !f.fun.Signature.HasReceiver()
}

// Owner returns the type the function is bound to, or "" for free functions
func (f Func) Owner() string {
	return f.fun.Owner
}

// Extension groups the methods of one opaque type
type Extension struct {
	Owner   string
	Methods []*Func
}
