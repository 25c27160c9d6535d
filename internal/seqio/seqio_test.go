package seqio

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadInts(t *testing.T) {
	s, err := Read(strings.NewReader("sequenceInt\n5\n1 4\n\t1\n3\n"))
	require.NoError(t, err)
	require.Equal(t, Ints, s.Kind)
	require.Equal(t, []uint32{5, 1, 4, 1, 3}, s.Ints)
	require.Equal(t, 5, s.Len())
}

func TestReadPairs(t *testing.T) {
	s, err := Read(strings.NewReader("sequenceIntPair\n2 0\n1 1\n2 2\n"))
	require.NoError(t, err)
	require.Equal(t, IntPairs, s.Kind)
	require.Equal(t, []Pair{{2, 0}, {1, 1}, {2, 2}}, s.Pairs)
	require.Equal(t, 3, s.Len())
}

func TestReadEmptySequence(t *testing.T) {
	s, err := Read(strings.NewReader("sequenceInt\n"))
	require.NoError(t, err)
	require.Equal(t, 0, s.Len())
}

func TestReadErrors(t *testing.T) {
	for name, input := range map[string]string{
		"empty":      "",
		"header":     "sequenceDouble\n1.5\n",
		"negative":   "sequenceInt\n1\n-2\n",
		"overflow":   "sequenceInt\n4294967296\n",
		"odd pairs":  "sequenceIntPair\n1 2\n3\n",
		"not number": "sequenceInt\nx\n",
	} {
		_, err := Read(strings.NewReader(input))
		require.Error(t, err, name)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	for _, s := range []*Sequence{
		{Kind: Ints, Ints: []uint32{0, 4294967295, 17}},
		{Kind: IntPairs, Pairs: []Pair{{3, 0}, {1, 1}}},
	} {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, s))
		require.True(t, strings.HasPrefix(buf.String(), s.Kind.String()+"\n"))
		r, err := Read(&buf)
		require.NoError(t, err)
		require.Equal(t, s.Kind, r.Kind)
		require.Equal(t, s.Len(), r.Len())
		if s.Kind == Ints {
			require.Equal(t, s.Ints, r.Ints)
		} else {
			require.Equal(t, s.Pairs, r.Pairs)
		}
	}
}

func TestFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	values := make([]uint32, 100000)
	for i := range values {
		values[i] = uint32(i * 7919 % 100000)
	}
	require.NoError(t, WriteFile(path, &Sequence{Kind: Ints, Ints: values}))
	s, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, values, s.Ints)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestKindString(t *testing.T) {
	require.Equal(t, "sequenceInt", Ints.String())
	require.Equal(t, "sequenceIntPair", IntPairs.String())
	require.Equal(t, "Kind(7)", Kind(7).String())
}
