// SPDX-License-Identifier: MIT
// Package: pollinet/canonical
//
// export.go - network → record stream, and the read-back verification.

package canonical

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/pollinet/network"
)

// Records converts net.Edges() into records, preserving order.
func Records(net *network.Network) []Record {
	edges := net.Edges()
	out := make([]Record, len(edges))
	for i, e := range edges {
		out[i] = Record{Patch: e.Patch, Plant: e.Plant, Insect: e.Insect, Weight: e.Weight}
	}

	return out
}

// Export writes one line per edge of net in canonical order and returns the
// number of records written. No header is emitted.
//
// Errors:
//   - ErrInvalidName if a taxon is empty or contains whitespace; nothing after the
//     offending record is written.
//   - Any error of w.
func Export(w io.Writer, net *network.Network) (int, error) {
	bw := bufio.NewWriter(w)
	n := 0
	for _, rec := range Records(net) {
		if !validName(rec.Plant) || !validName(rec.Insect) {
			_ = bw.Flush()
			return n, fmt.Errorf("%w: patch %d %q %q", ErrInvalidName, rec.Patch, rec.Plant, rec.Insect)
		}
		if _, err := bw.WriteString(FormatRecord(rec)); err != nil {
			return n, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}

	return n, bw.Flush()
}

// WriteFile exports net to path, replacing any existing file.
func WriteFile(path string, net *network.Network) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("canonical: create %s: %w", path, err)
	}
	n, err := Export(f, net)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("canonical: close %s: %w", path, cerr)
	}

	return n, err
}

// Verify re-reads an exported stream through Scan and checks it record by
// record against net. The first divergence, or a count mismatch, is reported
// as ErrOrderMismatch.
func Verify(net *network.Network, r io.Reader, opts ...Option) error {
	want := Records(net)
	i := 0
	err := Scan(r, func(lineNo int, got Record) error {
		if i >= len(want) {
			return fmt.Errorf("%w: line %d: unexpected extra record %q", ErrOrderMismatch, lineNo, FormatRecord(got))
		}
		if got != want[i] {
			return fmt.Errorf("%w: line %d: got %q, want %q",
				ErrOrderMismatch, lineNo, FormatRecord(got), FormatRecord(want[i]))
		}
		i++

		return nil
	}, opts...)
	if err != nil {
		return err
	}
	if i != len(want) {
		return fmt.Errorf("%w: read %d records, want %d", ErrOrderMismatch, i, len(want))
	}

	return nil
}

// VerifyFile opens path and Verifies it against net.
func VerifyFile(net *network.Network, path string, opts ...Option) error {
	f, err := Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return Verify(net, f, append([]Option{WithSource(path)}, opts...)...)
}
