// Package token defines the preprocessing-token kinds and the Token
// value type produced by package pptoken.
package token

import "fmt"

// Kind identifies which of the eleven preprocessing-token productions
// (plus end-of-file) a Token belongs to.
type Kind int

const (
	Whitespace Kind = iota
	NewLine
	HeaderName
	Identifier
	PPNumber
	CharacterLiteral
	UserDefinedCharacterLiteral
	StringLiteral
	UserDefinedStringLiteral
	PreprocessingOpOrPunc
	NonWhitespaceCharacter
	EOF
)

func (k Kind) String() string {
	switch k {
	case Whitespace:
		return "Whitespace"
	case NewLine:
		return "NewLine"
	case HeaderName:
		return "HeaderName"
	case Identifier:
		return "Identifier"
	case PPNumber:
		return "PPNumber"
	case CharacterLiteral:
		return "CharacterLiteral"
	case UserDefinedCharacterLiteral:
		return "UserDefinedCharacterLiteral"
	case StringLiteral:
		return "StringLiteral"
	case UserDefinedStringLiteral:
		return "UserDefinedStringLiteral"
	case PreprocessingOpOrPunc:
		return "PreprocessingOpOrPunc"
	case NonWhitespaceCharacter:
		return "NonWhitespaceCharacter"
	case EOF:
		return "EOF"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// DriverName returns the lowercase, hyphenated name used by the
// reference driver's output format and by the grammar in the
// specification (e.g. "user-defined-string-literal").
func (k Kind) DriverName() string {
	switch k {
	case Whitespace:
		return "whitespace-sequence"
	case NewLine:
		return "new-line"
	case HeaderName:
		return "header-name"
	case Identifier:
		return "identifier"
	case PPNumber:
		return "pp-number"
	case CharacterLiteral:
		return "character-literal"
	case UserDefinedCharacterLiteral:
		return "user-defined-character-literal"
	case StringLiteral:
		return "string-literal"
	case UserDefinedStringLiteral:
		return "user-defined-string-literal"
	case PreprocessingOpOrPunc:
		return "preprocessing-op-or-punc"
	case NonWhitespaceCharacter:
		return "non-whitespace-character"
	case EOF:
		return "eof"
	}
	return fmt.Sprintf("kind-%d", int(k))
}

// Token is a single preprocessing token: a kind paired with its
// lexeme, the exact (UTF-8, post-transformation) source text that
// produced it. Whitespace, NewLine and EOF tokens carry an empty
// Lexeme: their extent is implied by their Kind alone, matching the
// reference driver, which prints only the kind name for these three
// kinds.
type Token struct {
	Kind   Kind
	Lexeme string
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q", t.Kind, t.Lexeme)
}
