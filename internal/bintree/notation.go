// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bintree

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/avlquiz/internal/strparse"
)

// Parse parses a tree written in bracket notation:
//
//	tree := "_" | "null" | value | "[" value [ "," tree "," tree [ "," bf ] ] "]"
//
// A bare value is a leaf. The optional fourth element of a bracketed node
// initializes its recorded balance factor, so `[5,[3,null,null,0],[8,null,null,0]]`
// and `[5,3,8]` describe the same structure. An empty tree parses to nil.
func Parse(s string) (root *Node, err error) {
	defer func() {
		if err != nil {
			root = nil
		}
	}()
	defer strparse.Recover(&err)
	p := strparse.MakeParser("[],", s)
	root = parseTree(&p)
	p.ExpectDone()
	return root, nil
}

// MustParse is like Parse but panics on error. It is intended for tests.
func MustParse(s string) *Node {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

func parseTree(p *strparse.Parser) *Node {
	switch tok := p.Peek(); tok {
	case "":
		p.Errf("unexpected end of input")
	case "_", "null":
		p.Next()
		return nil
	case "[":
		p.Next()
		n := &Node{Value: p.Int()}
		if p.TryNext(",") {
			n.Left = parseTree(p)
			p.Expect(",")
			n.Right = parseTree(p)
			if p.TryNext(",") {
				n.BalanceFactor = p.Int()
			}
		}
		p.Expect("]")
		return n
	}
	return &Node{Value: p.Int()}
}

// String formats the structure of the tree rooted at n in the notation
// accepted by Parse. Leaves are written as bare values and balance factors
// are omitted.
func String(n *Node) string {
	var buf strings.Builder
	format(&buf, n, false)
	return buf.String()
}

// Annotated is like String but writes every node in full bracket form with
// its recorded balance factor.
func Annotated(n *Node) string {
	var buf strings.Builder
	format(&buf, n, true)
	return buf.String()
}

func format(buf *strings.Builder, n *Node, withBF bool) {
	if n == nil {
		buf.WriteString("_")
		return
	}
	if n.IsLeaf() && !withBF {
		buf.WriteString(strconv.Itoa(n.Value))
		return
	}
	buf.WriteByte('[')
	buf.WriteString(strconv.Itoa(n.Value))
	buf.WriteByte(',')
	format(buf, n.Left, withBF)
	buf.WriteByte(',')
	format(buf, n.Right, withBF)
	if withBF {
		buf.WriteByte(',')
		buf.WriteString(strconv.Itoa(n.BalanceFactor))
	}
	buf.WriteByte(']')
}

// Clone returns a deep copy of the tree rooted at n, including recorded
// balance factors and layout coordinates.
func Clone(n *Node) *Node {
	if n == nil {
		return nil
	}
	c := *n
	c.Left = Clone(n.Left)
	c.Right = Clone(n.Right)
	return &c
}

// Equal returns true if a and b have the same shape and values. Balance
// factors and layout coordinates are ignored.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Value == b.Value && Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
}
