package pptoken

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drainRunes(t *testing.T, s *charSource) []rune {
	t.Helper()
	var out []rune
	for !s.atEnd() {
		r, err := s.current()
		require.NoError(t, err)
		out = append(out, r)
		require.NoError(t, s.advance())
	}
	return out
}

func TestCharSourcePlainASCII(t *testing.T) {
	s := newCharSource([]byte("abc"))
	assert.Equal(t, []rune("abc"), drainRunes(t, s))
}

func TestCharSourceCommentBecomesSpace(t *testing.T) {
	s := newCharSource([]byte("a//b\nc"))
	assert.Equal(t, []rune{'a', ' ', '\n', 'c'}, drainRunes(t, s))
}

func TestCharSourceBlockCommentBecomesSpace(t *testing.T) {
	s := newCharSource([]byte("a/*x\ny*/b"))
	assert.Equal(t, []rune{'a', ' ', 'b'}, drainRunes(t, s))
}

func TestCharSourceTrigraphFolding(t *testing.T) {
	s := newCharSource([]byte("??="))
	assert.Equal(t, []rune{'#'}, drainRunes(t, s))
}

func TestCharSourceLineSplice(t *testing.T) {
	s := newCharSource([]byte("a\\\nb"))
	assert.Equal(t, []rune{'a', 'b'}, drainRunes(t, s))
}

func TestCharSourceUniversalCharacterName(t *testing.T) {
	s := newCharSource([]byte("\\u00C0"))
	assert.Equal(t, []rune{'À'}, drainRunes(t, s))
}

func TestCharSourceIncompleteUCNKeepsBackslash(t *testing.T) {
	s := newCharSource([]byte(`\u00`))
	assert.Equal(t, []rune{'\\', 'u', '0', '0'}, drainRunes(t, s))
}

func TestCharSourcePeekDoesNotConsume(t *testing.T) {
	s := newCharSource([]byte("ab"))
	r, err := s.peek(1)
	require.NoError(t, err)
	assert.Equal(t, 'b', r)
	r, err = s.current()
	require.NoError(t, err)
	assert.Equal(t, 'a', r)
}

func TestCharSourceSaveRestore(t *testing.T) {
	s := newCharSource([]byte("abc"))
	require.NoError(t, s.advance())
	s.save()
	require.NoError(t, s.advance())
	r, err := s.current()
	require.NoError(t, err)
	assert.Equal(t, 'c', r)
	s.restore()
	r, err = s.current()
	require.NoError(t, err)
	assert.Equal(t, 'b', r)
}

func TestCharSourceSuppressTransformsSkipsComments(t *testing.T) {
	s := newCharSource([]byte("//x"))
	s.suppressTransforms()
	assert.Equal(t, []rune{'/', '/', 'x'}, drainRunes(t, s))
}

func TestCharSourceUTF8Decoding(t *testing.T) {
	s := newCharSource([]byte("café"))
	assert.Equal(t, []rune("café"), drainRunes(t, s))
}

func TestCharSourceInvalidUTF8Errors(t *testing.T) {
	s := newCharSource([]byte{0xff, 0xfe})
	_, err := s.current()
	require.Error(t, err)
}
