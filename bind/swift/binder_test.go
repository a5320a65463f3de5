package swift

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmp-0x7C0/swift-bridge/builtin"
	"github.com/jmp-0x7C0/swift-bridge/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ffiModule = `
name: ffi
types: [Foo, Bar]
functions:
  - name: make
    returns: Foo
  - name: bump
    owner: Foo
    params:
      - receiver: ref_mut
      - name: by
        type: u32
      - name: other
        type: "&Bar"
    returns: u32
  - name: new
    owner: Foo
    params:
      - name: seed
        type: u64
    returns: Foo
  - name: consume
    owner: Bar
    params:
      - name: self
        type: Bar
`

func loadFFI(t *testing.T) *model.Module {
	mod, err := model.LoadModule(strings.NewReader(ffiModule))
	require.NoError(t, err)
	return mod
}

func TestGenerate(t *testing.T) {
	mod := loadFFI(t)
	subject := NewBinder(mod, builtin.NewCatalog(mod.Types...)).(*Binder)

	src, err := subject.Generate()
	require.NoError(t, err)
	out := string(src)

	assert.True(t, strings.HasPrefix(out, "// Code generated by swift-bridge. DO NOT EDIT.\n// Module: ffi\n// Opaque types: Bar, Foo\n"))
	assert.Contains(t, out, "public func make() -> UnsafeMutableRawPointer {\n    __swift_bridge__$make()\n}")
	assert.Contains(t, out, "extension Foo {\n    public func bump(_ by: UInt32, _ other: Bar) -> UInt32 {\n        __swift_bridge__$Foo$bump(ptr, by, other.ptr)\n    }")
	assert.Contains(t, out, "    public static func new(_ seed: UInt64) -> UnsafeMutableRawPointer {\n        __swift_bridge__$Foo$new(seed)\n    }")
	assert.Contains(t, out, "extension Bar {\n    public func consume() {\n        __swift_bridge__$Bar$consume(ptr)\n    }\n}")
	assert.Less(t, strings.Index(out, "extension Foo"), strings.Index(out, "extension Bar"))
}

func TestFuncsPreserveDeclarationOrder(t *testing.T) {
	mod := loadFFI(t)
	subject := NewBinder(mod, builtin.NewCatalog(mod.Types...)).(*Binder)

	funcs, err := subject.Funcs()
	require.NoError(t, err)
	require.Len(t, funcs, 4)

	var names []string
	for _, f := range funcs {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"make", "bump", "new", "consume"}, names)
	assert.False(t, funcs[1].IsStatic())
	assert.True(t, funcs[2].IsStatic())
}

func TestFuncsFailOnUnknownType(t *testing.T) {
	mod := loadFFI(t)
	mod.Functions = append(mod.Functions, model.Function{
		Name:      "lost",
		Signature: model.NewSignature(model.Named{Name: "baz", Type: model.NewTypeRef(model.Value, "Baz")}),
	})
	subject := NewBinder(mod, builtin.NewCatalog(mod.Types...)).(*Binder)

	_, err := subject.Funcs()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "__swift_bridge__$lost")
	assert.Contains(t, err.Error(), `no classification for type "Baz"`)
}

func TestFuncsFailOnBuiltInOwner(t *testing.T) {
	mod := &model.Module{
		Name: "ffi",
		Functions: []model.Function{
			{Name: "odd", Owner: "u8", Signature: model.NewSignature(model.Receiver{Form: model.Ref})},
		},
	}
	subject := NewBinder(mod, builtin.NewCatalog()).(*Binder)

	_, err := subject.Funcs()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "u8 is not an opaque type")
}

func TestBind(t *testing.T) {
	mod := loadFFI(t)
	outDir := t.TempDir()
	subject := NewBinder(mod, builtin.NewCatalog(mod.Types...))

	require.NoError(t, subject.Bind(outDir))

	written, err := os.ReadFile(filepath.Join(outDir, "ffi.swift"))
	require.NoError(t, err)
	assert.Contains(t, string(written), "__swift_bridge__$Foo$bump(ptr, by, other.ptr)")
}

func TestBindWritesNothingOnError(t *testing.T) {
	mod := loadFFI(t)
	outDir := t.TempDir()
	subject := NewBinder(mod, builtin.NewCatalog("Foo"))

	require.Error(t, subject.Bind(outDir))
	_, err := os.Stat(filepath.Join(outDir, "ffi.swift"))
	assert.True(t, os.IsNotExist(err))
}

func TestOpaqueTypes(t *testing.T) {
	mod := &model.Module{
		Name: "ffi",
		Functions: []model.Function{
			{Name: "a", Signature: model.NewSignature(model.Named{Name: "x", Type: model.NewTypeRef(model.RefMut, "Zed")})},
			{Name: "b", Signature: model.NewSignature().WithReturn(model.NewTypeRef(model.Ref, "Alpha"))},
			{Name: "c", Signature: model.NewSignature(model.Named{Name: "n", Type: model.NewTypeRef(model.Value, "i8")})},
			{Name: "d", Signature: model.NewSignature(model.Named{Name: "z", Type: model.NewTypeRef(model.Value, "Zed")})},
		},
	}
	subject := NewBinder(mod, builtin.NewCatalog("Zed", "Alpha", "Unused")).(*Binder)
	assert.Equal(t, []string{"Alpha", "Zed"}, subject.OpaqueTypes())
}
