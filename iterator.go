//go:build go1.23
// +build go1.23

package hashtable

import "iter"

// All yields every key/value pair in bucket order, each chain head to tail.
func (t *Table) All() iter.Seq2[string, int] {
	return func(yield func(key string, value int) bool) {
		t.mustLive()
		for _, head := range t.buckets {
			for e := head; e != nil; e = e.next {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// Keys yields every key in the same order as All.
func (t *Table) Keys() iter.Seq[string] {
	return func(yield func(key string) bool) {
		t.mustLive()
		for _, head := range t.buckets {
			for e := head; e != nil; e = e.next {
				if !yield(e.key) {
					return
				}
			}
		}
	}
}
