package embedding

import (
	"context"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultBatchSize   = 32
	DefaultConcurrency = 4
)

// EncodeBatched splits texts into chunks of batchSize and encodes up to
// concurrency chunks at once. Output order matches input order.
// The first failing chunk cancels the rest.
func EncodeBatched(ctx context.Context, enc Encoder, texts []string, batchSize, concurrency int) ([]Vector, error) {
	if len(texts) == 0 {
		return nil, ErrNoTexts
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	out := make([]Vector, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for start := 0; start < len(texts); start += batchSize {
		end := min(start+batchSize, len(texts))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			vecs, err := enc.Encode(gctx, texts[start:end])
			if err != nil {
				return err
			}
			if len(vecs) != end-start {
				return ErrResultMismatch
			}
			copy(out[start:end], vecs)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
