package pptoken

import "fmt"

// ErrorKind classifies the fatal conditions a Tokenizer can report.
// Every value here corresponds to a failure mode named in the
// specification; lexing never recovers from one, and a Tokenizer that
// has returned an error must not be used again.
type ErrorKind int

const (
	InvalidUTF8 ErrorKind = iota
	InvalidTrigraph
	UnterminatedComment
	UnterminatedLiteral
	RawStringBadDelimiter
	NewlineInHeaderName
	ReadPastEnd
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidUTF8:
		return "invalid-utf8"
	case InvalidTrigraph:
		return "invalid-trigraph"
	case UnterminatedComment:
		return "unterminated-comment"
	case UnterminatedLiteral:
		return "unterminated-literal"
	case RawStringBadDelimiter:
		return "raw-string-bad-delimiter"
	case NewlineInHeaderName:
		return "newline-in-header-name"
	case ReadPastEnd:
		return "read-past-end"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// LexError is the error type returned for every fatal condition. It
// intentionally carries no source position: the character source
// does not track line/column, so callers that need
// a location must compute it themselves from the bytes consumed so
// far.
type LexError struct {
	Kind ErrorKind
	Msg  string
}

func newLexError(kind ErrorKind, msg string) *LexError {
	return &LexError{Kind: kind, Msg: msg}
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}
