package demo

import (
	"fmt"
	"maps"
	"slices"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/hoard/pkg/assoc"
	"github.com/mesh-intelligence/hoard/pkg/types"
)

// stringHasher returns the assoc hashing policy for a config hasher name.
func stringHasher(name string) (assoc.Hasher[string], error) {
	switch name {
	case types.HasherSeeded:
		return assoc.Seeded[string](), nil
	case types.HasherXXHash:
		return assoc.XXHash[string](), nil
	}
	return nil, fmt.Errorf("hasher %q: %w", name, types.ErrHasherUnknown)
}

// Map walks through inserting, building from zipped slices, key ownership,
// lookup, iteration, overwriting, and the upsert operations.
func (r *Runner) Map() (*Report, error) {
	rep := &Report{Section: types.SectionMap}

	h, err := stringHasher(r.hasher)
	if err != nil {
		return nil, err
	}
	rep.add("hasher", r.hasher)

	scores := assoc.New(assoc.WithHasher[string, int](h))
	scores.Insert("Blue", 10)
	scores.Insert("Yellow", 50)
	rep.add("scores", maps.Collect(scores.All()))

	teams := []string{"Blue", "Yellow"}
	initial := []int{10, 50}
	zipped := assoc.Collect(assoc.Zip(teams, initial), assoc.WithHasher[string, int](h))
	rep.add("zipped", maps.Collect(zipped.All()))

	fieldName, fieldValue := "Favorite color", "Blue"
	colors := assoc.New(assoc.WithHasher[string, string](h))
	colors.Insert(fieldName, fieldValue)
	// fieldName now belongs to colors; look it up with a fresh key.
	if got, ok := colors.Get("Favorite color"); ok {
		rep.add("favorite color", got)
	}

	var pairs []string
	for k, v := range scores.All() {
		pairs = append(pairs, fmt.Sprintf("%s: %d", k, v))
	}
	slices.Sort(pairs)
	rep.add("pairs", pairs)

	scores.Insert("Blue", 10)
	prev, _ := scores.Insert("Blue", 25)
	rep.add("overwritten Blue (previous)", prev)
	rep.add("after overwrite", maps.Collect(scores.All()))

	scores.EntryOrInsert("Yellow", 50)
	scores.EntryOrInsert("Blue", 50)
	rep.add("Yellow or default", *scores.EntryOrDefault("Yellow"))
	rep.add("Not exists or default", *scores.EntryOrDefault("Not exists"))

	count := scores.EntryOrInsert("Not exists", 0)
	*count++
	rep.add("Not exists after increment", *scores.EntryOrDefault("Not exists"))

	ids := assoc.New(assoc.WithHasher[uuid.UUID, string](
		assoc.XXHashBytes(func(u uuid.UUID) []byte { return u[:] }),
	))
	id := uuid.New()
	ids.Insert(id, "copyable key")
	// uuid.UUID is an array, so id is still usable after Insert.
	if got, ok := ids.Get(id); ok {
		rep.add("uuid key lookup", got)
	}

	return rep, nil
}
