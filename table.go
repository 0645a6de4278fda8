package hashtable

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// ErrInvalidSize is returned by New when the requested bucket count is not positive.
var ErrInvalidSize = errors.New("hashtable: size must be positive")

// HashFunc maps a key to a bucket index for a table of the given size.
// Implementations must be pure and deterministic and must return a value
// in [0, size) for every key; an out-of-range result is a broken contract
// and makes the calling operation panic.
type HashFunc func(size int, key string) int

// Table is a fixed-size separate-chaining hash table mapping string keys
// to integer values. The bucket count is set once by New and never
// changes; no resizing or rehashing happens regardless of load factor.
//
// The table is hash-function-agnostic: every keyed operation takes the
// HashFunc to use, so the same container works with any strategy as long
// as the caller applies it consistently. Mixing strategies on one table
// strands entries in buckets the other strategy will never probe.
//
// Add performs no duplicate-key check. Inserting an existing key creates
// a second entry that shadows the old one for Get and Remove until it is
// itself removed.
//
// A Table is not safe for concurrent use; callers needing shared access
// must serialize every operation externally.
type Table struct {
	buckets []*entry
	total   int
	log     *log.Entry
}

// New returns an empty table with the given number of buckets.
func New(size int) (*Table, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	return &Table{
		buckets: make([]*entry, size),
		log:     log.WithFields(log.Fields{"buckets": size}),
	}, nil
}

// SetLogger redirects the table's diagnostic output to the given logger.
func (t *Table) SetLogger(l *log.Logger) {
	t.log = l.WithFields(log.Fields{"buckets": len(t.buckets)})
}

// Destroy releases every entry and the bucket array itself. The table is
// unusable afterwards: any further operation, including a second Destroy,
// panics.
func (t *Table) Destroy() {
	t.mustLive()
	t.log.Debug("table destroyed")
	t.buckets = nil
	t.total = 0
	t.log = nil
}

// Reset removes every entry while keeping the bucket array, leaving an
// empty but fully usable table of the same size.
func (t *Table) Reset() {
	t.mustLive()
	for i := range t.buckets {
		t.buckets[i] = nil
	}
	t.total = 0
	t.log.Debug("table reset")
}

// Add inserts key with value at the head of the bucket chosen by hf.
// No duplicate-key check is made: adding an existing key shadows the
// older entry rather than replacing it.
func (t *Table) Add(hf HashFunc, key string, value int) {
	idx := t.bucketIndex(hf, key)
	t.buckets[idx] = &entry{key: key, value: value, next: t.buckets[idx]}
	t.total++
}

// Remove unlinks the first entry in the bucket chosen by hf whose key
// matches, reporting whether one was found. With duplicate keys only the
// most recently inserted occurrence is removed per call; the shadowed
// older entry becomes reachable again afterwards.
func (t *Table) Remove(hf HashFunc, key string) bool {
	idx := t.bucketIndex(hf, key)
	for pp := &t.buckets[idx]; *pp != nil; pp = &(*pp).next {
		if (*pp).key == key {
			*pp = (*pp).next
			t.total--
			t.log.WithField("key", key).Debug("entry removed")
			return true
		}
	}
	t.log.WithField("key", key).Debug("key not found")
	return false
}

// Get returns the value of the first entry in traversal order whose key
// matches, which with duplicates is the most recently inserted one.
func (t *Table) Get(hf HashFunc, key string) (int, bool) {
	idx := t.bucketIndex(hf, key)
	if e := t.buckets[idx].find(key); e != nil {
		return e.value, true
	}
	return 0, false
}

// Len returns the number of live entries.
func (t *Table) Len() int {
	t.mustLive()
	return t.total
}

// Size returns the bucket count.
func (t *Table) Size() int {
	t.mustLive()
	return len(t.buckets)
}

// Collisions counts the entries in excess of one per bucket: a chain of
// length n contributes max(n-1, 0). The sum is a standard proxy for hash
// quality at a fixed table size.
func (t *Table) Collisions() int {
	t.mustLive()
	c := 0
	for _, head := range t.buckets {
		if n := head.length(); n > 1 {
			c += n - 1
		}
	}
	return c
}

// LoadFactor returns live entries divided by bucket count. It is reported
// for diagnostics only; the table never acts on it.
func (t *Table) LoadFactor() float64 {
	t.mustLive()
	return float64(t.total) / float64(len(t.buckets))
}

// ForEach visits every key/value pair in bucket order, each chain head to
// tail. The lambda returns true to continue and false to stop.
func (t *Table) ForEach(lambda func(key string, value int) bool) {
	t.mustLive()
	for _, head := range t.buckets {
		for e := head; e != nil; e = e.next {
			if !lambda(e.key, e.value) {
				return
			}
		}
	}
}

// bucketIndex applies hf and validates its result against the table size.
func (t *Table) bucketIndex(hf HashFunc, key string) int {
	t.mustLive()
	idx := hf(len(t.buckets), key)
	if idx < 0 || idx >= len(t.buckets) {
		panic(fmt.Sprintf("hashtable: hash function returned index %d for table of size %d", idx, len(t.buckets)))
	}
	return idx
}

func (t *Table) mustLive() {
	if t.buckets == nil {
		panic("hashtable: use of destroyed table")
	}
}
