package hashtable

// entry is a single node in a bucket chain. Every entry exclusively owns
// the next one; chains are forward-only and never shared between buckets.
type entry struct {
	key   string
	value int
	next  *entry
}

// length returns the number of nodes reachable from e, including e itself.
func (e *entry) length() int {
	n := 0
	for ; e != nil; e = e.next {
		n++
	}
	return n
}

// find returns the first entry in traversal order whose key matches, or nil.
// With duplicate keys in a chain this is always the most recently inserted
// occurrence, since insertion is head-first.
func (e *entry) find(key string) *entry {
	for ; e != nil; e = e.next {
		if e.key == key {
			return e
		}
	}
	return nil
}
