package rbtree

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Fprint writes the tree sideways to w, root at the left margin and the
// maximum at the top. Red nodes are printed in angle brackets, and colored
// if w is a terminal.
func (t *Tree[K, V]) Fprint(w io.Writer) error {
	red := color.New(color.FgRed, color.Bold)
	if isTerminal(w) {
		red.EnableColor()
	} else {
		red.DisableColor()
	}
	bw := bufio.NewWriter(w)
	if t.root() == nil {
		bw.WriteString("(empty)\n")
		return bw.Flush()
	}
	t.fprintNode(bw, t.root(), "", red)
	return bw.Flush()
}

func (t *Tree[K, V]) fprintNode(w io.Writer, x *Node[V], indent string, red *color.Color) {
	if x == nil {
		return
	}
	t.fprintNode(w, x.right, indent+"    ", red)
	label := formatLabel(t.key(x))
	if x.color == Red {
		label = red.Sprintf("<%s>", label)
	}
	fmt.Fprintf(w, "%s%s\n", indent, label)
	t.fprintNode(w, x.left, indent+"    ", red)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
