package idx_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/wizardchad/forum/pkg/idx"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("produces valid parseable IDs", func(t *testing.T) {
		id := idx.New()
		require.False(t, id.IsZero())

		parsed, err := idx.Parse(id.String())
		require.NoError(t, err)
		require.Equal(t, id, parsed)
	})

	t.Run("IDs generated in sequence sort ascending", func(t *testing.T) {
		a := idx.New()
		b := idx.New()
		require.Less(t, a.String(), b.String())
	})

	t.Run("concurrent generation yields unique IDs", func(t *testing.T) {
		const n = 200

		var (
			mu  sync.Mutex
			wg  sync.WaitGroup
			ids = make(map[idx.ID]struct{}, n)
		)

		for range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				id := idx.New()

				mu.Lock()
				ids[id] = struct{}{}
				mu.Unlock()
			}()
		}
		wg.Wait()

		require.Len(t, ids, n)
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty string", func(t *testing.T) {
		_, err := idx.Parse("")
		require.ErrorIs(t, err, idx.ErrInvalid)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := idx.Parse("not-a-ulid")
		require.ErrorIs(t, err, idx.ErrInvalid)
	})

	t.Run("trims whitespace", func(t *testing.T) {
		id := idx.New()
		parsed, err := idx.Parse("  " + id.String() + "\n")
		require.NoError(t, err)
		require.Equal(t, id, parsed)
	})
}

func TestTime(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	id := idx.NewAt(at)
	require.Equal(t, at, id.Time())

	require.True(t, idx.Zero.Time().IsZero())
}
