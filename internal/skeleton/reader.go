package skeleton

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// Reader splits a path listing into entries.
type Reader struct {
	nul bool
}

// NewReader creates a Reader. With nul set, records are separated by NUL
// bytes (git ls-files -z) instead of newlines.
func NewReader(nul bool) *Reader {
	return &Reader{nul: nul}
}

// Read consumes r completely and returns the trimmed, non-empty entries in
// input order.
func (p *Reader) Read(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	// Generated trees can carry very long paths
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)
	if p.nul {
		scanner.Split(scanNUL)
	}

	var entries []string
	for scanner.Scan() {
		entry := strings.TrimSpace(scanner.Text())
		if entry == "" {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func scanNUL(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
