package keypad

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes every word-holding node in pre-order, indented by depth,
// together with the key taken to reach each child. The trie is not modified.
func (t *Trie) Dump(w io.Writer) error {
	if t == nil || t.root == nil {
		return nil
	}
	return dumpNode(w, t.root, 0)
}

func dumpNode(w io.Writer, n *Node, level int) error {
	indent := strings.Repeat("\t", level)

	if n.word != "" {
		var sb strings.Builder
		sb.WriteString(indent)
		sb.WriteString("word = ")
		for cur := n; cur != nil; cur = cur.next {
			sb.WriteString(cur.word)
			sb.WriteString(" -> ")
		}
		sb.WriteString("NULL\n")
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}

	for i, child := range n.children {
		if child == nil {
			continue
		}
		g := Group(i)
		if _, err := fmt.Fprintf(w, "%skey=%c, index=%d, level=%d : \n", indent, g.Digit(), g.Index(), level); err != nil {
			return err
		}
		if err := dumpNode(w, child, level+1); err != nil {
			return err
		}
	}
	return nil
}
