// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package render

import (
	"slices"
	"strings"
)

// Board is a grid of runes that grows as text is written to it. Unwritten
// cells are blank.
type Board struct {
	buf   []rune
	width int
}

// MakeBoard returns an empty Board with the given initial width.
func MakeBoard(width int) Board {
	return Board{width: max(width, 1)}
}

// Write writes s on row r starting at column c, growing the board as needed.
// Negative columns are clipped.
func (b *Board) Write(r, c int, s string) {
	runes := []rune(s)
	if c < 0 {
		if -c >= len(runes) {
			return
		}
		runes, c = runes[-c:], 0
	}
	if c+len(runes) > b.width {
		b.growWidth(c + len(runes))
	}
	copy(b.row(r)[c:], runes)
}

// Lines returns the number of rows on the board.
func (b *Board) Lines() int {
	return len(b.buf) / b.width
}

// String returns the Board as a string.
func (b *Board) String() string {
	return b.Render("")
}

// Render returns the Board as a string, with every line prefixed by indent
// and stripped of trailing blanks.
func (b *Board) Render(indent string) string {
	var buf strings.Builder
	for r := 0; r < b.Lines(); r++ {
		if r > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(strings.TrimRight(indent+string(b.row(r)), " "))
	}
	return buf.String()
}

func (b *Board) growBuf(n int) {
	b.buf = slices.Grow(b.buf, n)
	for range n {
		b.buf = append(b.buf, ' ')
	}
}

func (b *Board) growWidth(w int) {
	buf := make([]rune, w*b.Lines())
	for i := range buf {
		buf[i] = ' '
	}
	for i := range b.Lines() {
		copy(buf[i*w:(i+1)*w], b.buf[i*b.width:(i+1)*b.width])
	}
	b.buf = buf
	b.width = w
}

func (b *Board) row(r int) []rune {
	if sz := (r + 1) * b.width; sz > len(b.buf) {
		b.growBuf(sz - len(b.buf))
	}
	return b.buf[r*b.width : (r+1)*b.width]
}
