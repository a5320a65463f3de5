package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsReceiver(t *testing.T) {
	assert.True(t, IsReceiver(Receiver{Form: Value}))
	assert.True(t, IsReceiver(Receiver{Form: RefMut}))
	assert.True(t, IsReceiver(Named{Name: "self", Type: NewTypeRef(Ref, "Foo")}))
	assert.True(t, IsReceiver(Named{Name: "self", Type: NewTypeRef(Value, "u8")}))
	assert.False(t, IsReceiver(Named{Name: "other", Type: NewTypeRef(Ref, "Foo")}))
	assert.False(t, IsReceiver(Named{Name: "this", Type: NewTypeRef(Ref, "Foo")}))
}

func TestInputs(t *testing.T) {
	sig := NewSignature(
		Named{Name: "self", Type: NewTypeRef(RefMut, "Foo")},
		Named{Name: "a", Type: NewTypeRef(Value, "u8")},
		Named{Name: "b", Type: NewTypeRef(Ref, "Foo")},
	)

	assert.True(t, sig.HasReceiver())
	inputs := sig.Inputs()
	if assert.Len(t, inputs, 2) {
		assert.Equal(t, "a", inputs[0].Name)
		assert.Equal(t, "b", inputs[1].Name)
	}
	assert.False(t, NewSignature(Named{Name: "a", Type: NewTypeRef(Value, "u8")}).HasReceiver())
}

func TestWithReturnCopies(t *testing.T) {
	base := NewSignature()
	withRet := base.WithReturn(NewTypeRef(Value, "u8"))

	assert.Nil(t, base.Returns)
	if assert.NotNil(t, withRet.Returns) {
		assert.Equal(t, "u8", withRet.Returns.Name)
	}
}

func TestLinkName(t *testing.T) {
	assert.Equal(t, "__swift_bridge__$make", Function{Name: "make"}.LinkName())
	assert.Equal(t, "__swift_bridge__$Foo$bump", Function{Name: "bump", Owner: "Foo"}.LinkName())
	assert.True(t, Function{Name: "bump", Owner: "Foo"}.IsMethod())
}
