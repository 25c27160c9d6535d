/*
Package seqio reads and writes sequence files.

A sequence file starts with a header word naming the element type, followed
by whitespace-separated unsigned decimal integers:

	sequenceInt
	17
	4
	...

In a sequenceIntPair file, every element is a pair of two integers, a key
followed by a value.
*/
package seqio

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/exascience/parradix/parallel"
)

// Kind is the element type of a sequence.
type Kind int

const (
	// Ints is a sequence of unsigned integers.
	Ints Kind = iota
	// IntPairs is a sequence of key/value pairs of unsigned integers.
	IntPairs
)

const (
	intHeader     = "sequenceInt"
	intPairHeader = "sequenceIntPair"
)

func (k Kind) String() string {
	switch k {
	case Ints:
		return intHeader
	case IntPairs:
		return intPairHeader
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// A Pair is an element of an IntPairs sequence. Pairs are sorted by Key.
type Pair struct {
	Key, Value uint32
}

// PairKey returns the key of p.
func PairKey(p Pair) uint32 { return p.Key }

// A Sequence holds the contents of a sequence file. Depending on Kind,
// either Ints or Pairs holds the elements.
type Sequence struct {
	Kind  Kind
	Ints  []uint32
	Pairs []Pair
}

// Len returns the number of elements of s.
func (s *Sequence) Len() int {
	if s.Kind == IntPairs {
		return len(s.Pairs)
	}
	return len(s.Ints)
}

func parseWords(words [][]byte, out []uint32) error {
	return parallel.RangeReduce(0, len(words), 0,
		func(low, high int) error {
			for i := low; i < high; i++ {
				v, err := strconv.ParseUint(string(words[i]), 10, 32)
				if err != nil {
					return errors.Wrapf(err, "invalid element %v", i)
				}
				out[i] = uint32(v)
			}
			return nil
		},
		func(x, y error) error {
			if x != nil {
				return x
			}
			return y
		},
	)
}

// Read parses a sequence from r.
func Read(r io.Reader) (*Sequence, error) {
	contents, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read sequence")
	}
	words := bytes.Fields(contents)
	if len(words) == 0 {
		return nil, errors.New("missing sequence header")
	}
	header, words := string(words[0]), words[1:]
	values := make([]uint32, len(words))
	if err := parseWords(words, values); err != nil {
		return nil, err
	}
	switch header {
	case intHeader:
		return &Sequence{Kind: Ints, Ints: values}, nil
	case intPairHeader:
		if len(values)%2 != 0 {
			return nil, errors.Errorf("odd number of integers in pair sequence: %v", len(values))
		}
		pairs := make([]Pair, len(values)/2)
		parallel.Range(0, len(pairs), 0, func(low, high int) {
			for i := low; i < high; i++ {
				pairs[i] = Pair{values[2*i], values[2*i+1]}
			}
		})
		return &Sequence{Kind: IntPairs, Pairs: pairs}, nil
	default:
		return nil, errors.Errorf("unknown sequence header %q", header)
	}
}

// ReadFile parses the sequence file at path.
func ReadFile(path string) (*Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %v", path)
	}
	defer f.Close()
	s, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %v", path)
	}
	return s, nil
}

// Write writes s to w, one element per line.
func Write(w io.Writer, s *Sequence) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(s.Kind.String() + "\n"); err != nil {
		return errors.Wrap(err, "failed to write sequence header")
	}
	var buf []byte
	switch s.Kind {
	case Ints:
		for _, v := range s.Ints {
			buf = strconv.AppendUint(buf[:0], uint64(v), 10)
			buf = append(buf, '\n')
			if _, err := bw.Write(buf); err != nil {
				return errors.Wrap(err, "failed to write sequence")
			}
		}
	case IntPairs:
		for _, p := range s.Pairs {
			buf = strconv.AppendUint(buf[:0], uint64(p.Key), 10)
			buf = append(buf, ' ')
			buf = strconv.AppendUint(buf, uint64(p.Value), 10)
			buf = append(buf, '\n')
			if _, err := bw.Write(buf); err != nil {
				return errors.Wrap(err, "failed to write sequence")
			}
		}
	default:
		return errors.Errorf("cannot write sequence of kind %v", s.Kind)
	}
	return errors.Wrap(bw.Flush(), "failed to write sequence")
}

// WriteFile writes s to a new file at path, replacing any existing file.
func WriteFile(path string, s *Sequence) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %v", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "failed to close %v", path)
		}
	}()
	return Write(f, s)
}
