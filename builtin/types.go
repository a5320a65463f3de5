// Package builtin holds the catalog of types that cross the boundary by value
// and the classifier that separates them from opaque, handle backed types.
package builtin

// Target is a language a spelling is produced for
type Target int

const (
	Swift Target = iota
	C
)

func (t Target) String() string {
	switch t {
	case Swift:
		return "swift"
	case C:
		return "c"
	default:
		return "unknown"
	}
}

// Type is a boundary native type
type Type struct {
	Rust  string
	swift string
	c     string
}

// Spelling returns the name of the type in the target language
func (b Type) Spelling(target Target) string {
	switch target {
	case C:
		return b.c
	default:
		return b.swift
	}
}

var catalog = map[string]Type{}

func register(rust, swift, c string) {
	catalog[rust] = Type{Rust: rust, swift: swift, c: c}
}

func init() {
	register("u8", "UInt8", "uint8_t")
	register("i8", "Int8", "int8_t")
	register("u16", "UInt16", "uint16_t")
	register("i16", "Int16", "int16_t")
	register("u32", "UInt32", "uint32_t")
	register("i32", "Int32", "int32_t")
	register("u64", "UInt64", "uint64_t")
	register("i64", "Int64", "int64_t")
	register("usize", "UInt", "uintptr_t")
	register("isize", "Int", "intptr_t")
	register("f32", "Float", "float")
	register("f64", "Double", "double")
	register("bool", "Bool", "bool")
}

// WithName looks up a built-in by its Rust identifier
func WithName(rust string) (Type, bool) {
	t, ok := catalog[rust]
	return t, ok
}

// OpaqueSpelling is how every opaque handle is spelled in the target language
func OpaqueSpelling(target Target) string {
	switch target {
	case C:
		return "void*"
	default:
		return "UnsafeMutableRawPointer"
	}
}
