// Package assoc implements Map, a hash-keyed associative container with
// upsert operations and a configurable hashing policy.
//
// Keys and values are copied into the map. A key handed to Insert belongs to
// the map from then on: callers must not mutate memory the key refers to.
// Iteration order is unspecified and changes between calls.
//
// A Map is not safe for concurrent use.
package assoc

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/mesh-intelligence/hoard/pkg/types"
)

const (
	initialBuckets = 8
	// Grow when entries exceed 3/4 of the bucket count.
	loadNum, loadDen = 3, 4
)

type entry[K comparable, V any] struct {
	key  K
	hash uint64
	val  V
}

// Map is a separate-chaining hash table. Buckets hold entry pointers, so a
// *V returned by EntryOrInsert stays valid across rehashing until the key is
// removed or the map cleared. Create one with New; the zero value is not
// usable.
type Map[K comparable, V any] struct {
	buckets [][]*entry[K, V]
	n       int
	mods    uint64
	hasher  Hasher[K]
	drop    func(V)
}

// Option configures a Map.
type Option[K comparable, V any] func(*Map[K, V])

// WithHasher sets the hashing policy. The default is Seeded.
func WithHasher[K comparable, V any](h Hasher[K]) Option[K, V] {
	return func(m *Map[K, V]) {
		if h != nil {
			m.hasher = h
		}
	}
}

// WithDrop registers fn to receive values that Put overwrites and values
// that Clear discards.
func WithDrop[K comparable, V any](fn func(V)) Option[K, V] {
	return func(m *Map[K, V]) { m.drop = fn }
}

// New returns an empty map.
func New[K comparable, V any](opts ...Option[K, V]) *Map[K, V] {
	m := &Map[K, V]{
		buckets: make([][]*entry[K, V], initialBuckets),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.hasher == nil {
		m.hasher = Seeded[K]()
	}
	return m
}

// Collect builds a map from key/value pairs. Later pairs overwrite earlier
// ones with the same key.
func Collect[K comparable, V any](pairs iter.Seq2[K, V], opts ...Option[K, V]) *Map[K, V] {
	m := New(opts...)
	for k, v := range pairs {
		m.Insert(k, v)
	}
	return m
}

// Zip pairs keys[i] with values[i], stopping at the shorter slice.
func Zip[K, V any](keys []K, values []V) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		n := min(len(keys), len(values))
		for i := 0; i < n; i++ {
			if !yield(keys[i], values[i]) {
				return
			}
		}
	}
}

// Len returns the number of keys.
func (m *Map[K, V]) Len() int { return m.n }

// IsEmpty reports whether the map has no keys.
func (m *Map[K, V]) IsEmpty() bool { return m.n == 0 }

func (m *Map[K, V]) find(key K) (*entry[K, V], uint64) {
	h := m.hasher.Hash(key)
	for _, e := range m.buckets[m.slot(h)] {
		if e.hash == h && e.key == key {
			return e, h
		}
	}
	return nil, h
}

func (m *Map[K, V]) slot(h uint64) uint64 {
	return h & uint64(len(m.buckets)-1)
}

func (m *Map[K, V]) add(key K, h uint64, v V) *entry[K, V] {
	if (m.n+1)*loadDen > len(m.buckets)*loadNum {
		m.rehash(2 * len(m.buckets))
	}
	e := &entry[K, V]{key: key, hash: h, val: v}
	i := m.slot(h)
	m.buckets[i] = append(m.buckets[i], e)
	m.n++
	m.mods++
	return e
}

func (m *Map[K, V]) rehash(size int) {
	buckets := make([][]*entry[K, V], size)
	mask := uint64(size - 1)
	for _, b := range m.buckets {
		for _, e := range b {
			buckets[e.hash&mask] = append(buckets[e.hash&mask], e)
		}
	}
	m.buckets = buckets
}

// Insert associates v with key. If key was present it returns the previous
// value and true; ownership of that value passes back to the caller.
func (m *Map[K, V]) Insert(key K, v V) (V, bool) {
	e, h := m.find(key)
	if e != nil {
		prev := e.val
		e.val = v
		return prev, true
	}
	m.add(key, h, v)
	var zero V
	return zero, false
}

// Put associates v with key like Insert, but hands any displaced value to
// the WithDrop hook instead of returning it.
func (m *Map[K, V]) Put(key K, v V) {
	if prev, ok := m.Insert(key, v); ok && m.drop != nil {
		m.drop(prev)
	}
}

// Get returns the value for key and true, or the zero value and false.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if e, _ := m.find(key); e != nil {
		return e.val, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	e, _ := m.find(key)
	return e != nil
}

// EntryOrInsert returns a pointer to the value for key, inserting def first
// when the key is absent. An existing value is left unchanged.
func (m *Map[K, V]) EntryOrInsert(key K, def V) *V {
	e, h := m.find(key)
	if e == nil {
		e = m.add(key, h, def)
	}
	return &e.val
}

// EntryOrDefault is EntryOrInsert with the zero value of V as the default.
func (m *Map[K, V]) EntryOrDefault(key K) *V {
	var zero V
	return m.EntryOrInsert(key, zero)
}

// Remove deletes key and returns its value, or false when absent.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	h := m.hasher.Hash(key)
	i := m.slot(h)
	for j, e := range m.buckets[i] {
		if e.hash == h && e.key == key {
			m.buckets[i] = slices.Delete(m.buckets[i], j, j+1)
			m.n--
			m.mods++
			return e.val, true
		}
	}
	var zero V
	return zero, false
}

// Clear removes every key. Values go to the WithDrop hook when one is set.
func (m *Map[K, V]) Clear() {
	if m.drop != nil {
		for _, b := range m.buckets {
			for _, e := range b {
				m.drop(e.val)
			}
		}
	}
	m.buckets = make([][]*entry[K, V], initialBuckets)
	m.n = 0
	m.mods++
}

// All yields every key/value pair in unspecified order. The starting bucket
// is chosen at random on each call.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		mods := m.mods
		buckets := m.buckets
		start := rand.IntN(len(buckets))
		for off := range buckets {
			for _, e := range buckets[(start+off)%len(buckets)] {
				if !yield(e.key, e.val) {
					return
				}
				if m.mods != mods {
					panic(fmt.Errorf("map: %w", types.ErrConcurrentModification))
				}
			}
		}
	}
}

// Keys yields every key in unspecified order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values yields every value in unspecified order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// String formats the map as {k1: v1, k2: v2} with keys sorted by their
// formatted text, so output is stable.
func (m *Map[K, V]) String() string {
	pairs := make([]string, 0, m.n)
	for k, v := range m.All() {
		pairs = append(pairs, fmt.Sprintf("%v: %v", k, v))
	}
	slices.Sort(pairs)
	return "{" + strings.Join(pairs, ", ") + "}"
}
