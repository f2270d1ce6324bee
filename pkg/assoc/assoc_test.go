package assoc

import (
	"fmt"
	"maps"
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/hoard/pkg/types"
)

// hashers lists every policy the map tests run against. The constant hasher
// puts every key in one chain.
func hashers() map[string]Hasher[string] {
	return map[string]Hasher[string]{
		"seeded":   Seeded[string](),
		"xxhash":   XXHash[string](),
		"constant": HasherFunc[string](func(string) uint64 { return 42 }),
	}
}

func TestInsertAndGet(t *testing.T) {
	for name, h := range hashers() {
		t.Run(name, func(t *testing.T) {
			scores := New(WithHasher[string, int](h))

			prev, replaced := scores.Insert("Blue", 10)
			assert.False(t, replaced)
			assert.Zero(t, prev)
			scores.Insert("Yellow", 50)

			v, ok := scores.Get("Blue")
			require.True(t, ok)
			assert.Equal(t, 10, v)

			_, ok = scores.Get("Red")
			assert.False(t, ok)
			assert.Equal(t, 2, scores.Len())
		})
	}
}

func TestInsertOverwriteReturnsPrevious(t *testing.T) {
	for name, h := range hashers() {
		t.Run(name, func(t *testing.T) {
			scores := New(WithHasher[string, int](h))
			scores.Insert("Blue", 10)

			prev, replaced := scores.Insert("Blue", 25)
			assert.True(t, replaced)
			assert.Equal(t, 10, prev)

			v, _ := scores.Get("Blue")
			assert.Equal(t, 25, v)
			assert.Equal(t, 1, scores.Len())
		})
	}
}

func TestEntryOrInsertIdempotent(t *testing.T) {
	scores := New[string, int]()
	scores.Insert("Blue", 25)

	first := scores.EntryOrInsert("Yellow", 50)
	second := scores.EntryOrInsert("Yellow", 99)
	assert.Same(t, first, second)
	assert.Equal(t, 50, *second)

	blue := scores.EntryOrInsert("Blue", 50)
	assert.Equal(t, 25, *blue, "existing value must not change")
}

func TestEntryOrDefaultCounter(t *testing.T) {
	counts := New[string, int]()

	assert.Equal(t, 0, *counts.EntryOrDefault("Not exists"))
	count := counts.EntryOrInsert("Not exists", 0)
	*count++
	assert.Equal(t, 1, *counts.EntryOrDefault("Not exists"))
}

func TestWordCount(t *testing.T) {
	counts := New(WithHasher[string, int](XXHash[string]()))
	for _, w := range []string{"hello", "world", "wonderful", "world"} {
		*counts.EntryOrDefault(w)++
	}
	assert.Equal(t, map[string]int{"hello": 1, "world": 2, "wonderful": 1}, maps.Collect(counts.All()))
}

func TestEntryPointerSurvivesGrowth(t *testing.T) {
	m := New[int, string]()
	p := m.EntryOrInsert(0, "zero")
	for i := 1; i < 1000; i++ {
		m.Insert(i, fmt.Sprint(i))
	}
	*p = "still zero"

	v, ok := m.Get(0)
	require.True(t, ok)
	assert.Equal(t, "still zero", v)
}

func TestGrowthKeepsAllKeys(t *testing.T) {
	for name, h := range hashers() {
		t.Run(name, func(t *testing.T) {
			m := New(WithHasher[string, int](h))
			for i := range 200 {
				m.Insert(fmt.Sprintf("k%d", i), i)
			}
			require.Equal(t, 200, m.Len())
			for i := range 200 {
				v, ok := m.Get(fmt.Sprintf("k%d", i))
				require.True(t, ok, "k%d missing", i)
				assert.Equal(t, i, v)
			}
		})
	}
}

func TestRemove(t *testing.T) {
	m := New[string, int]()
	m.Insert("a", 1)
	m.Insert("b", 2)

	v, ok := m.Remove("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.False(t, m.Contains("a"))
	assert.True(t, m.Contains("b"))

	_, ok = m.Remove("a")
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())
}

func TestPutDropsDisplacedValue(t *testing.T) {
	var dropped []string
	m := New(WithDrop[string, string](func(v string) { dropped = append(dropped, v) }))

	m.Put("Favorite color", "Blue")
	m.Put("Favorite color", "Green")
	assert.Equal(t, []string{"Blue"}, dropped)

	m.Clear()
	assert.Equal(t, []string{"Blue", "Green"}, dropped)
	assert.True(t, m.IsEmpty())
}

func TestIterationVisitsEveryPair(t *testing.T) {
	m := Collect(Zip([]string{"Blue", "Yellow"}, []int{10, 50}))

	assert.Equal(t, map[string]int{"Blue": 10, "Yellow": 50}, maps.Collect(m.All()))

	keys := slices.Sorted(m.Keys())
	assert.Equal(t, []string{"Blue", "Yellow"}, keys)

	vals := slices.Sorted(m.Values())
	assert.Equal(t, []int{10, 50}, vals)
}

func TestZipStopsAtShorter(t *testing.T) {
	m := Collect(Zip([]string{"a", "b", "c"}, []int{1, 2}))
	assert.Equal(t, 2, m.Len())
	assert.False(t, m.Contains("c"))
}

func TestStructuralChangeDuringIterationPanics(t *testing.T) {
	m := Collect(Zip([]string{"a", "b", "c"}, []int{1, 2, 3}))

	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				err, _ = r.(error)
			}
		}()
		for k := range m.Keys() {
			m.Insert(k+k, 0)
		}
	}()
	assert.ErrorIs(t, err, types.ErrConcurrentModification)
}

func TestUpdateInPlaceDuringIteration(t *testing.T) {
	m := Collect(Zip([]string{"a", "b"}, []int{1, 2}))
	for k := range m.Keys() {
		*m.EntryOrDefault(k) *= 10
	}
	assert.Equal(t, map[string]int{"a": 10, "b": 20}, maps.Collect(m.All()))
}

func TestCopyableKeys(t *testing.T) {
	h := XXHashBytes(func(u uuid.UUID) []byte { return u[:] })
	m := New(WithHasher[uuid.UUID, string](h))

	id := uuid.New()
	m.Insert(id, "first")
	// id is a value type; the caller's copy stays usable after Insert.
	v, ok := m.Get(id)
	require.True(t, ok)
	assert.Equal(t, "first", v)

	other := uuid.New()
	_, ok = m.Get(other)
	assert.False(t, ok)
}

func TestString(t *testing.T) {
	m := Collect(Zip([]string{"Yellow", "Blue"}, []int{50, 25}))
	assert.Equal(t, "{Blue: 25, Yellow: 50}", m.String())
}

func TestSeededHashersDiffer(t *testing.T) {
	a, b := Seeded[string](), Seeded[string]()
	assert.Equal(t, a.Hash("key"), a.Hash("key"))
	// Distinct seeds collide on a single key with probability 2^-64.
	assert.NotEqual(t, a.Hash("key"), b.Hash("key"))
}
