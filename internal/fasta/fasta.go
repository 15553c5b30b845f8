// Package fasta streams protein FASTA records.
package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"io"
	"os"
)

const bufSize = 4 << 20 // 4 MiB

// Record is one FASTA entry. Seq is upper-case with newlines removed.
type Record struct {
	ID  string
	Seq []byte
}

// Stream reads path ("-" for stdin, gzip detected by magic bytes) and sends
// each record down the chan. The chan is closed when the stream ends, on
// success or error; the first error is returned.
func Stream(path string, out chan<- Record) error {
	defer close(out)

	var f io.ReadCloser
	if path == "-" {
		f = io.NopCloser(os.Stdin)
	} else {
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		f = file
	}
	defer f.Close()

	r := bufio.NewReaderSize(f, bufSize)
	if magic, err := r.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		zr, err := gzip.NewReader(r)
		if err != nil {
			return err
		}
		defer zr.Close()
		r = bufio.NewReaderSize(zr, bufSize)
	}
	return stream(r, out)
}

func stream(r *bufio.Reader, out chan<- Record) error {
	var (
		id  []byte
		seq []byte
	)
	flush := func() {
		if id != nil {
			out <- Record{ID: string(id), Seq: bytes.ToUpper(seq)}
			id, seq = nil, nil
		}
	}
	for {
		line, err := r.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return err
		}
		line = bytes.TrimRight(line, "\r\n")
		if len(line) > 0 && line[0] == '>' {
			flush()
			id = []byte{} // headers with no name still delimit a record
			if fields := bytes.Fields(line[1:]); len(fields) > 0 {
				id = fields[0] // up to first space
			}
		} else {
			seq = append(seq, line...)
		}
		if err == io.EOF {
			flush()
			return nil
		}
	}
}
