package binomial

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/histdb/heaps/arena"
)

// Dump writes a dot graph of the forest to w. Child edges are solid and
// sibling edges dashed.
func (h *T[K]) Dump(w io.Writer) error {
	var buf bytes.Buffer
	buf.WriteString("digraph binomial {\n")

	var walk func(arena.P[node[K]])
	walk = func(x arena.P[node[K]]) {
		for ; !x.Nil(); x = h.at(x).sibling {
			xn := h.at(x)
			label := strconv.Quote(fmt.Sprintf("%v (%d)", xn.key, xn.degree))
			fmt.Fprintf(&buf, "\tnode%d [label=%s];\n", x.Raw(), label)
			if !xn.child.Nil() {
				fmt.Fprintf(&buf, "\tnode%d -> node%d;\n", x.Raw(), xn.child.Raw())
			}
			if !xn.sibling.Nil() {
				fmt.Fprintf(&buf, "\tnode%d -> node%d [style=dashed];\n", x.Raw(), xn.sibling.Raw())
			}
			walk(xn.child)
		}
	}
	walk(h.head)

	buf.WriteString("}\n")
	_, err := w.Write(buf.Bytes())
	return err
}
