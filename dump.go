package hashtable

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a human-readable snapshot of the table to w: a header with
// size and total, then one line per bucket showing its chain head to tail,
// with -| terminating every bucket line. Intended for debugging and tests.
func (t *Table) Dump(w io.Writer) {
	t.mustLive()
	fmt.Fprintf(w, "hash table size=%d total=%d\n", len(t.buckets), t.total)
	for i, head := range t.buckets {
		fmt.Fprintf(w, "bucket[%d]", i)
		for e := head; e != nil; e = e.next {
			fmt.Fprintf(w, "->(key=%s,value=%d)", e.key, e.value)
		}
		io.WriteString(w, "-|\n")
	}
}

// String returns the Dump output as a string.
func (t *Table) String() string {
	var sb strings.Builder
	t.Dump(&sb)
	return sb.String()
}
