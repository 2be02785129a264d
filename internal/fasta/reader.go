// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrEmpty is returned when the input holds no FASTA records.
var ErrEmpty = errors.New("no FASTA records")

// Record is one parsed FASTA entry.
type Record struct {
	Name string // first whitespace-delimited token of the header
	Seq  []byte // upper-cased residues, line breaks removed
}

// ReadAll opens path (see Open) and parses every record in file order.
func ReadAll(ctx context.Context, path string) ([]Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	recs, err := Read(ctx, rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// Read parses FASTA from r. Blank lines are skipped and sequence text
// before the first header is ignored. Cancellation is checked per line.
func Read(ctx context.Context, r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		recs []Record
		cur  *Record
	)
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			recs = append(recs, Record{Name: parseHeaderID(line[1:])})
			cur = &recs[len(recs)-1]
			continue
		}
		if line[0] == ';' || cur == nil {
			continue
		}
		for _, b := range line {
			if 'a' <= b && b <= 'z' {
				b -= 'a' - 'A'
			}
			cur.Seq = append(cur.Seq, b)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	if len(recs) == 0 {
		return nil, ErrEmpty
	}
	return recs, nil
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
