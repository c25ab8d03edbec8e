package rbtree

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/rbtree/typeclass"
)

type nodeids[V any] struct {
	idTable map[*Node[V]]int
	max     int
}

func newtable[V any]() nodeids[V] {
	return nodeids[V]{
		idTable: make(map[*Node[V]]int),
		max:     1,
	}
}

func (ids *nodeids[V]) alloc(node *Node[V]) int {
	if id := ids.idTable[node]; id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Missing children are drawn as small black dots.
func (t *Tree[K, V]) Dot(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("strict digraph {\n")
	bw.WriteString("\tnode [fontname=Arial,fontsize=12,fontcolor=white];\n")
	ids := newtable[V]()
	var nodelist, edgelist strings.Builder
	nils := 0
	var walk func(x *Node[V])
	walk = func(x *Node[V]) {
		ID := ids.alloc(x)
		fmt.Fprintf(&nodelist, "\t\"%d\" [label=\"%s\" %s];\n", ID,
			dotEscape(formatLabel(t.key(x))), nodeDotStyles(x))
		for _, child := range [2]*Node[V]{x.left, x.right} {
			if child == nil {
				nils++
				nilid := fmt.Sprintf("nil%d", nils)
				fmt.Fprintf(&nodelist, "\t\"%s\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%s\";\n", ID, nilid)
				continue
			}
			fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			walk(child)
		}
	}
	if root := t.root(); root != nil {
		walk(root)
	}
	bw.WriteString(nodelist.String())
	bw.WriteString(edgelist.String())
	bw.WriteString("}\n")
	return bw.Flush()
}

func emptyNode() string {
	return "[label=\"\",color=black,style=filled,shape=point,width=.1]"
}

func nodeDotStyles[V any](node *Node[V]) string {
	s := "style=filled,shape=circle"
	if node.color == Red {
		s += ",color=\"#cc0000\",fillcolor=\"#ee2222\""
	} else {
		s += ",color=black,fillcolor=black"
	}
	return s
}

// formatLabel renders a key for diagnostic output.
func formatLabel[T any](v T) string {
	tr := typeclass.Of[T]()
	switch {
	case tr.Floating:
		return fmt.Sprintf("%.6g", any(v))
	case tr.Pointer:
		return fmt.Sprintf("%p", any(v))
	}
	return fmt.Sprintf("%v", any(v))
}

func dotEscape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
