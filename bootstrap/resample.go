package bootstrap

import (
	"math/rand"

	"github.com/katalvlaran/bootstat/dataset"
)

// Resample draws one bootstrap resample: N row indices chosen independently
// and uniformly with replacement from the N source rows, gathered in the
// order drawn. The output always has exactly as many rows as the source,
// and the source is never modified.
//
// A given source row may appear zero, one, or many times in one resample;
// for large N the expected fraction of rows absent from a resample is
// (1−1/N)^N ≈ 1/e.
//
// The caller owns rng. For independent draws across calls, keep feeding the
// same generator; for parallel use, give every goroutine its own generator —
// never share one *rand.Rand unsynchronized.
//
// Errors:
//   - ErrNilDataset — ds is nil.
//   - ErrNoRows     — ds has no observations.
//   - ErrNilRand    — rng is nil.
func Resample(ds *dataset.Dataset, rng *rand.Rand) (*dataset.Dataset, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	n := ds.NumRows()
	if n == 0 {
		return nil, ErrNoRows
	}
	indices := make([]int, n)
	for i := range indices {
		indices[i] = rng.Intn(n)
	}
	return ds.Select(indices)
}
