package witness

import (
	"context"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"golang.org/x/sync/errgroup"
)

// WarmRoots computes n primitive 27th roots of unity concurrently, each with
// its own sampler, and returns them; the first error from any goroutine is
// returned instead. The roots are not cached: later Find27thRoot calls
// still sample afresh.
func WarmRoots(ctx context.Context, n int, newSampler func() Sampler) ([]bn254.GT, error) {
	roots := make([]bn254.GT, n)
	g, _ := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			w, err := Find27thRoot(newSampler())
			if err != nil {
				return err
			}
			roots[i] = w
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return roots, nil
}
