// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"unicode"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// RawID names the single record produced from header-less input.
const RawID = "input_sequence"

// Record is one parsed sequence. Seq is upper-cased.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
}

// StreamCtx parses the FASTA file at path ("-" = stdin, gzip ok) and calls
// emit for each record in file order. Whitespace and digits inside sequence
// lines are dropped. Input with no '>' header line at all is read as one raw
// sequence named RawID.
// It stops early on ctx cancellation or when emit returns an error.
func StreamCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	return StreamReaderCtx(ctx, rc, emit)
}

// StreamReaderCtx is StreamCtx over an open reader. Text before the first
// header line is dropped, and records with no sequence are skipped.
func StreamReaderCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	br := bufio.NewReaderSize(r, 64<<10)
	header, prelude, err := seekHeader(br)
	if err != nil {
		return err
	}
	if header == nil {
		return emitRaw(prelude, emit)
	}

	in := io.MultiReader(bytes.NewReader(header), br)
	sc := seqio.NewScanner(biofasta.NewReader(in, linear.NewSeq("", nil, alphabet.DNAredundant)))
	for sc.Next() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return fmt.Errorf("fasta: unexpected sequence type %T", sc.Seq())
		}
		seq := cleanLetters(s.Seq)
		if len(seq) == 0 {
			continue
		}
		if err := emit(Record{ID: s.ID, Desc: s.Desc, Seq: seq}); err != nil {
			return err
		}
	}
	if err := sc.Error(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return nil
}

// seekHeader consumes lines up to the first one starting with '>' (leading
// blanks allowed) and returns it. If there is none, header is nil and
// prelude holds the whole input.
func seekHeader(br *bufio.Reader) (header, prelude []byte, err error) {
	for {
		line, err := br.ReadBytes('\n')
		if t := bytes.TrimLeft(line, " \t\r"); len(t) > 0 && t[0] == '>' {
			return t, nil, nil
		}
		prelude = append(prelude, line...)
		if err == io.EOF {
			return nil, prelude, nil
		}
		if err != nil {
			return nil, nil, fmt.Errorf("fasta read: %w", err)
		}
	}
}

func emitRaw(data []byte, emit func(Record) error) error {
	seq := clean(data)
	if len(seq) == 0 {
		return nil
	}
	return emit(Record{ID: RawID, Seq: seq})
}

// clean upper-cases b and drops ASCII whitespace and digits, so numbered
// GenBank-style lines keep their coordinates.
func clean(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if c < unicode.MaxASCII && (unicode.IsSpace(rune(c)) || unicode.IsDigit(rune(c))) {
			continue
		}
		out = append(out, upper(c))
	}
	return out
}

func cleanLetters(ls alphabet.Letters) []byte {
	b := make([]byte, len(ls))
	for i, l := range ls {
		b[i] = byte(l)
	}
	return clean(b)
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
