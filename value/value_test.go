package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	tests := []struct {
		V       Value
		Truthy  bool
	}{
		{Nil, false},
		{Bool(false), false},
		{Bool(true), true},
		{Integer(0), false},
		{Integer(1), true},
		{Float(0), false},
		{Float(1.5), true},
		{String(""), false},
		{String("x"), true},
	}
	for _, test := range tests {
		assert.Equal(t, test.Truthy, test.V.Truthy())
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Nil.Equal(Nil))
	assert.True(t, Integer(3).Equal(Integer(3)))
	assert.False(t, Integer(3).Equal(Integer(4)))
	assert.False(t, Integer(3).Equal(Float(3)))
	assert.True(t, String("a").Equal(String("a")))
	assert.False(t, Nil.Equal(Bool(false)))
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "", Nil.Display())
	assert.Equal(t, "true", Bool(true).Display())
	assert.Equal(t, "42", Integer(42).Display())
	assert.Equal(t, "3.5", Float(3.5).Display())
	assert.Equal(t, "hi", String("hi").Display())
}
