package model

// SelfIdent is the reserved receiver identifier
const SelfIdent = "self"

// Param is a single entry of a signature's parameter list. It is either a
// Receiver or a Named parameter.
type Param interface {
	isParam()
}

// Receiver is the implicit self parameter in one of its binding forms
type Receiver struct {
	Form Qualifier
}

// Named is an identifier with its declared type
type Named struct {
	Name string
	Type TypeRef
}

func (Receiver) isParam() {}
func (Named) isParam()    {}

// IsReceiver reports whether p stands for the receiver. A Named parameter
// spelled `self` counts regardless of its declared type, so `self: &mut Foo`
// and `&mut self` are the same thing from here on.
func IsReceiver(p Param) bool {
	switch param := p.(type) {
	case Receiver:
		return true
	case Named:
		return param.Name == SelfIdent
	default:
		return false
	}
}

// Signature is an ordered parameter list plus an optional return type
type Signature struct {
	Params  []Param
	Returns *TypeRef
}

// NewSignature constructs a unit returning Signature
func NewSignature(params ...Param) Signature {
	return Signature{Params: params}
}

// WithReturn returns a copy of the signature returning t
func (s Signature) WithReturn(t TypeRef) Signature {
	s.Returns = &t
	return s
}

// HasReceiver reports whether any parameter is the receiver
func (s Signature) HasReceiver() bool {
	for _, p := range s.Params {
		if IsReceiver(p) {
			return true
		}
	}
	return false
}

// Inputs returns the non receiver parameters in declaration order
func (s Signature) Inputs() []Named {
	inputs := make([]Named, 0, len(s.Params))
	for _, p := range s.Params {
		if IsReceiver(p) {
			continue
		}
		inputs = append(inputs, p.(Named))
	}
	return inputs
}

// Function is a bridged function and, for methods, the opaque type that owns it
type Function struct {
	Name      string
	Owner     string
	Signature Signature
}

// IsMethod returns true if the function is bound to an opaque type
func (f Function) IsMethod() bool {
	return f.Owner != ""
}

// LinkName returns the symbol the Rust side exports for the function
func (f Function) LinkName() string {
	if f.IsMethod() {
		return "__swift_bridge__$" + f.Owner + "$" + f.Name
	}
	return "__swift_bridge__$" + f.Name
}
