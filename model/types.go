package model

import (
	"fmt"
	"strings"
)

// Qualifier describes how a type is referenced in a signature position
type Qualifier int

const (
	// Value is a type passed or returned by value
	Value Qualifier = iota
	// Ref is an immutable reference (&T)
	Ref
	// RefMut is a mutable reference (&mut T)
	RefMut
)

func (q Qualifier) String() string {
	switch q {
	case Value:
		return "value"
	case Ref:
		return "ref"
	case RefMut:
		return "ref_mut"
	default:
		return "unknown"
	}
}

// ParseQualifier maps the YAML spelling of a qualifier back to a Qualifier
func ParseQualifier(s string) (Qualifier, error) {
	switch strings.TrimSpace(s) {
	case "", "value", "self":
		return Value, nil
	case "ref", "&self":
		return Ref, nil
	case "ref_mut", "&mut self":
		return RefMut, nil
	default:
		return Value, fmt.Errorf("unknown qualifier %q", s)
	}
}

// TypeRef is a type as written in a signature position
type TypeRef struct {
	Qualifier Qualifier
	Name      string
}

// NewTypeRef constructs a TypeRef with the given qualifier
func NewTypeRef(q Qualifier, name string) TypeRef {
	return TypeRef{Qualifier: q, Name: name}
}

// Base returns the base type identifier with reference and mutability qualifiers discarded
func (t TypeRef) Base() string {
	return t.Name
}

func (t TypeRef) String() string {
	switch t.Qualifier {
	case Ref:
		return "&" + t.Name
	case RefMut:
		return "&mut " + t.Name
	default:
		return t.Name
	}
}

// ParseTypeRef builds a TypeRef from its Rust spelling, e.g. "&mut Foo".
// Whitespace between tokens is not significant.
func ParseTypeRef(s string) (TypeRef, error) {
	rest := strings.TrimSpace(s)
	q := Value
	if strings.HasPrefix(rest, "&") {
		q = Ref
		rest = strings.TrimSpace(rest[1:])
		if fields := strings.Fields(rest); len(fields) > 1 && fields[0] == "mut" {
			q = RefMut
			rest = strings.TrimSpace(strings.TrimPrefix(rest, "mut"))
		}
	}

	if rest == "" || rest == "mut" || strings.ContainsAny(rest, " \t&") {
		return TypeRef{}, fmt.Errorf("malformed type %q", s)
	}
	return TypeRef{Qualifier: q, Name: rest}, nil
}
