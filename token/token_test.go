package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywords_CoverAllReservedWords(t *testing.T) {
	reserved := []string{
		"and", "class", "else", "false", "fun", "for", "if", "nil",
		"or", "print", "return", "super", "this", "true", "var", "while",
	}
	for _, word := range reserved {
		kind, ok := Keywords[word]
		assert.True(t, ok, "expected %q to be a keyword", word)
		assert.Equal(t, Kind(word), kind)
	}
}

func TestNewLiteral(t *testing.T) {
	tok := NewLiteral(Number, "42", int64(42), 3)
	assert.Equal(t, Number, tok.Kind)
	assert.Equal(t, "42", tok.Lexeme)
	assert.Equal(t, int64(42), tok.Literal)
	assert.Equal(t, 3, tok.Line)
}

func TestTokenString(t *testing.T) {
	tok := New(Plus, "+", 1)
	assert.Equal(t, "+ +", tok.String())
}
