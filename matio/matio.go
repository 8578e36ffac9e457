// SPDX-License-Identifier: MIT

// Package matio - text readers and writers for matrix pairs.
//
// Purpose:
//   - Parse blank-line-separated blocks of whitespace-separated numbers into
//     matrix.Dense values, and render a Dense back as plain text.
//   - Keep every format decision in this one file so the engine stays free
//     of I/O concerns.

package matio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/matreduce/matrix"
)

// pairBlockCount is the number of blocks ReadPair demands: one per operand.
const pairBlockCount = 2

// rowSep joins values within one written row.
const rowSep = " "

// block is one parsed matrix block plus the 1-based line each row came from
// (kept for error messages).
type block struct {
	rows  [][]float64
	lines []int
}

// ReadPair parses exactly two matrices from r.
// MAIN DESCRIPTION:
//   - The engine's external "matrix source" collaborator: two blocks
//     separated by a blank line, rows of whitespace-separated float64s.
//
// Implementation:
//   - Stage 1: scan lines into blocks, splitting on blank lines, parsing
//     each token as it arrives.
//   - Stage 2: demand exactly two blocks.
//   - Stage 3: hand each block to matrix.NewFromRows, which owns the shape
//     contract.
//
// Behavior highlights:
//   - Leading/trailing blank lines and runs of several blank lines between
//     blocks are tolerated; only non-empty blocks count.
//   - A ragged block fails with matrix.ErrBadShape (construction-time, never
//     later); format faults use this package's sentinels.
//
// Inputs:
//   - r: the text stream.
//
// Returns:
//   - (A, B, nil) on success, operands in multiplication order.
//
// Errors:
//   - ErrEmptyInput, ErrBlockCount (wrap names the count), ErrBadNumber
//     (wrap names line and token), matrix.ErrBadShape, or the reader's own
//     error.
//
// Complexity:
//   - Time O(total values), Space O(total values).
func ReadPair(r io.Reader) (*matrix.Dense, *matrix.Dense, error) {
	blocks, err := scanBlocks(r)
	if err != nil {
		return nil, nil, err
	}
	if len(blocks) == 0 {
		return nil, nil, ErrEmptyInput
	}
	if len(blocks) != pairBlockCount {
		return nil, nil, fmt.Errorf("got %d: %w", len(blocks), ErrBlockCount)
	}

	a, err := matrix.NewFromRows(blocks[0].rows)
	if err != nil {
		return nil, nil, fmt.Errorf("first block (line %d): %w", blocks[0].lines[0], err)
	}
	b, err := matrix.NewFromRows(blocks[1].rows)
	if err != nil {
		return nil, nil, fmt.Errorf("second block (line %d): %w", blocks[1].lines[0], err)
	}

	return a, b, nil
}

// ReadPairFile opens path and delegates to ReadPair.
// Complexity: O(file size).
func ReadPairFile(path string) (*matrix.Dense, *matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("matio: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadPair(f)
}

// scanBlocks splits the stream into parsed blocks on blank lines.
// Implementation:
//   - Stage 1: walk lines with bufio.Scanner, tracking the 1-based line no.
//   - Stage 2: a blank line closes the current block (if non-empty); any
//     other line parses into one row.
//   - Stage 3: flush the trailing block.
//
// Complexity:
//   - Time O(total values), Space O(total values).
func scanBlocks(r io.Reader) ([]block, error) {
	var blocks []block
	var cur block

	flush := func() {
		if len(cur.rows) > 0 {
			blocks = append(blocks, cur)
			cur = block{}
		}
	}

	sc := bufio.NewScanner(r)
	lineNo := 0
	var line string
	for sc.Scan() {
		lineNo++
		line = strings.TrimSpace(sc.Text())
		if line == "" {
			flush()

			continue
		}

		row, err := parseRow(line, lineNo)
		if err != nil {
			return nil, err
		}
		cur.rows = append(cur.rows, row)
		cur.lines = append(cur.lines, lineNo)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("matio: read: %w", err)
	}
	flush()

	return blocks, nil
}

// parseRow splits one non-empty line into float64 values.
// The wrap on failure names the 1-based line number and the bad token.
// Complexity: O(len(line)).
func parseRow(line string, lineNo int) ([]float64, error) {
	fields := strings.Fields(line)
	row := make([]float64, len(fields))
	var i int
	var tok string
	var err error
	for i, tok = range fields {
		if row[i], err = strconv.ParseFloat(tok, 64); err != nil {
			return nil, fmt.Errorf("line %d: %q: %w", lineNo, tok, ErrBadNumber)
		}
	}

	return row, nil
}

// Write renders m to w, one row per line, values space-separated with a
// trailing newline. Integral values render without a decimal part (7, not
// 7.000000), matching the format ReadPair accepts, so Write∘ReadPair round
// trips.
//
// Errors:
//   - ErrNilMatrix for a nil matrix; otherwise only the writer's own error.
//
// Complexity:
//   - Time O(r·c), Space O(row length).
func Write(w io.Writer, m *matrix.Dense) error {
	if m == nil {
		return ErrNilMatrix
	}

	bw := bufio.NewWriter(w)
	var i, j int
	var v float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if j > 0 {
				if _, err = bw.WriteString(rowSep); err != nil {
					return fmt.Errorf("matio: write: %w", err)
				}
			}
			v, _ = m.At(i, j) // in range by loop construction
			if _, err = bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
				return fmt.Errorf("matio: write: %w", err)
			}
		}
		if err = bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("matio: write: %w", err)
		}
	}

	if err = bw.Flush(); err != nil {
		return fmt.Errorf("matio: write: %w", err)
	}

	return nil
}

// WriteFile creates (or truncates) path and delegates to Write.
// Complexity: O(r·c).
func WriteFile(path string, m *matrix.Dense) error {
	if m == nil {
		return ErrNilMatrix
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("matio: create %s: %w", path, err)
	}

	if err = Write(f, m); err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}
