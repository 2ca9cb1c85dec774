package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mprice/ownpy/token"
)

type tokenCase struct {
	Input  string
	Kinds  []token.Kind
	Lexeme []string
}

func TestScan_Punctuation(t *testing.T) {
	tests := []tokenCase{
		{
			Input:  `( ) { } , . - + ; / *`,
			Kinds:  []token.Kind{token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace, token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon, token.Slash, token.Star, token.EOF},
			Lexeme: []string{"(", ")", "{", "}", ",", ".", "-", "+", ";", "/", "*", ""},
		},
		{
			Input: `! != = == < <= > >= & |`,
			Kinds: []token.Kind{token.Bang, token.BangEqual, token.Equal, token.EqualEqual, token.Less, token.LessEqual, token.Greater, token.GreaterEqual, token.BitwiseAnd, token.BitwiseOr, token.EOF},
		},
	}

	for _, test := range tests {
		tokens, err := Scan(test.Input)
		assert.NoError(t, err)
		assert.Equal(t, len(test.Kinds), len(tokens))
		for i, kind := range test.Kinds {
			assert.Equal(t, kind, tokens[i].Kind)
		}
	}
}

func TestScan_Literals(t *testing.T) {
	tokens, err := Scan(`123 1.5 "hello" foo`)
	assert.NoError(t, err)
	assert.Equal(t, token.Number, tokens[0].Kind)
	assert.Equal(t, int64(123), tokens[0].Literal)
	assert.Equal(t, token.Number, tokens[1].Kind)
	assert.Equal(t, 1.5, tokens[1].Literal)
	assert.Equal(t, token.String, tokens[2].Kind)
	assert.Equal(t, "hello", tokens[2].Literal)
	assert.Equal(t, token.Identifier, tokens[3].Kind)
	assert.Equal(t, token.EOF, tokens[4].Kind)
}

func TestScan_Keywords(t *testing.T) {
	tokens, err := Scan(`var print nil true false`)
	assert.NoError(t, err)
	assert.Equal(t, token.Var, tokens[0].Kind)
	assert.Equal(t, token.Print, tokens[1].Kind)
	assert.Equal(t, token.Nil, tokens[2].Kind)
	assert.Equal(t, token.True, tokens[3].Kind)
	assert.Equal(t, token.False, tokens[4].Kind)
}

func TestScan_CommentsAndWhitespace(t *testing.T) {
	tokens, err := Scan("// a line comment\nvar /* a block\ncomment */ x;")
	assert.NoError(t, err)
	kinds := []token.Kind{token.Var, token.Identifier, token.Semicolon, token.EOF}
	assert.Equal(t, len(kinds), len(tokens))
	for i, k := range kinds {
		assert.Equal(t, k, tokens[i].Kind)
	}
	// The block comment spans a newline, so "x" should be on line 3.
	assert.Equal(t, 3, tokens[1].Line)
}

func TestScan_UnterminatedString(t *testing.T) {
	_, err := Scan(`"unterminated`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Unterminated string.")
}

func TestScan_UnterminatedComment(t *testing.T) {
	_, err := Scan(`/* never closed`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Unterminated comment.")
}

func TestScan_UnexpectedCharacter(t *testing.T) {
	_, err := Scan(`@`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Unexpected character")
}

func TestScan_IntegerOverflowFallsBackToFloat(t *testing.T) {
	tokens, err := Scan(`99999999999999999999999999999`)
	assert.NoError(t, err)
	assert.Equal(t, token.Number, tokens[0].Kind)
	_, isFloat := tokens[0].Literal.(float64)
	assert.True(t, isFloat)
}
