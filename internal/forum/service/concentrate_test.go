package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConcentrateServiceCount(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := &ConcentrateService{Store: newTestStore(t)}

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(0), count)
}

func TestConcentrateServicePress(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := &ConcentrateService{Store: newTestStore(t)}

	for want := int64(1); want <= 3; want++ {
		count, err := svc.Press(ctx)
		require.NoError(t, err)
		require.Equal(t, want, count)
	}

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), count)
}

func TestConcentrateServicePressConcurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := &ConcentrateService{Store: newTestStore(t)}

	const presses = 50

	var wg sync.WaitGroup
	errs := make(chan error, presses)

	for range presses {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Press(ctx); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(presses), count)
}
