package fibheap

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/histdb/heaps/arena"
)

// Dump writes a dot graph of the forest to w. Child edges are solid and ring
// edges to the right neighbour are dashed. Marked nodes are filled.
func (h *T[K]) Dump(w io.Writer) error {
	var buf bytes.Buffer
	buf.WriteString("digraph fibonacci {\n")

	var walk func(arena.P[node[K]])
	walk = func(start arena.P[node[K]]) {
		for x := start; ; {
			xn := h.at(x)

			style := ""
			if xn.mark {
				style = ", style=filled"
			}
			if x == h.min {
				style += ", shape=box"
			}

			label := strconv.Quote(fmt.Sprintf("%v (%d)", xn.key, xn.degree))
			fmt.Fprintf(&buf, "\tnode%d [label=%s%s];\n", x.Raw(), label, style)
			fmt.Fprintf(&buf, "\tnode%d -> node%d [style=dashed];\n", x.Raw(), xn.right.Raw())
			if !xn.child.Nil() {
				fmt.Fprintf(&buf, "\tnode%d -> node%d;\n", x.Raw(), xn.child.Raw())
				walk(xn.child)
			}

			if x = xn.right; x == start {
				return
			}
		}
	}
	if !h.min.Nil() {
		walk(h.min)
	}

	buf.WriteString("}\n")
	_, err := w.Write(buf.Bytes())
	return err
}
