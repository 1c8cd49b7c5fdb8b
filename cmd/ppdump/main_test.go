package main

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpWireFormat(t *testing.T) {
	var buf bytes.Buffer
	err := dump(&buf, []byte("a+b"), false)
	require.NoError(t, err)
	assert.Equal(t, "identifier 1 a\n"+
		"preprocessing-op-or-punc 1 +\n"+
		"identifier 1 b\n"+
		"new-line\n"+
		"eof\n", buf.String())
}

func TestDumpOmitsDataForTrivialKinds(t *testing.T) {
	var buf bytes.Buffer
	err := dump(&buf, []byte("a b\n"), false)
	require.NoError(t, err)
	assert.Equal(t, "identifier 1 a\n"+
		"whitespace-sequence\n"+
		"identifier 1 b\n"+
		"new-line\n"+
		"eof\n", buf.String())
}

func TestDumpPropagatesLexErrors(t *testing.T) {
	var buf bytes.Buffer
	err := dump(&buf, []byte("/* never closed"), false)
	assert.Error(t, err)
}

func TestRunBatchUsesInMemoryFilesystem(t *testing.T) {
	orig := fs
	defer func() { fs = orig }()
	fs = afero.NewMemMapFs()

	require.NoError(t, afero.WriteFile(fs, "/src/a.cpp", []byte("a;"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/src/b.cpp", []byte("b;"), 0644))

	err := runBatch("/src", false)
	require.NoError(t, err)
}
