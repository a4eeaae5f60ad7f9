package store

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kainan/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestLoadCreatesMissingCollection(t *testing.T) {
	s := newTestStore(t)

	var users []model.User
	require.NoError(t, s.Load("users", &users))
	assert.Empty(t, users)

	data, err := os.ReadFile(filepath.Join(s.dir, "users.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestLoadDegradesToEmptyOnCorruptFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.dir, "ulams.json"), []byte("{not json"), 0o644))

	var ulams []model.Ulam
	require.NoError(t, s.Load("ulams", &ulams))
	assert.Empty(t, ulams)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	in := []model.Ulam{{
		ID:          7,
		Name:        "Chicken Adobo",
		Stall:       1,
		Image:       "/images/adobo.png",
		Description: "Chicken braised in soy sauce, vinegar and garlic.",
		Ingredients: []string{"chicken", "soy sauce", "vinegar", "garlic"},
		Allergens:   []string{"soy"},
	}}
	require.NoError(t, s.Save("ulams", in))

	var out []model.Ulam
	require.NoError(t, s.Load("ulams", &out))
	require.Len(t, out, 1)
	assert.Equal(t, in[0], out[0])
	// array field ordering survives the round trip
	assert.Equal(t, []string{"chicken", "soy sauce", "vinegar", "garlic"}, out[0].Ingredients)
}

func TestUpdateAbortsWriteOnMutateError(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Save("users", []model.User{{ID: 1, Email: "a@cvsu.edu.ph"}}))

	var users []model.User
	err := s.Update("users", &users, func() error {
		users = nil
		return assert.AnError
	})
	require.Error(t, err)

	var after []model.User
	require.NoError(t, s.Load("users", &after))
	assert.Len(t, after, 1)
}

func TestUpdateSerializesConcurrentAppends(t *testing.T) {
	s := newTestStore(t)

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			var users []model.User
			_ = s.Update("users", &users, func() error {
				users = append(users, model.User{ID: id})
				return nil
			})
		}(int64(i))
	}
	wg.Wait()

	var users []model.User
	require.NoError(t, s.Load("users", &users))
	assert.Len(t, users, writers, "no append may be lost to a racing overwrite")
}
