package ribbon

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BuildAllOption configures BuildAll.
type BuildAllOption func(*buildAllOptions)

type buildAllOptions struct {
	concurrency int
}

// WithConcurrency limits the number of chains built at the same time.
// Values <= 0 select runtime.GOMAXPROCS(0).
func WithConcurrency(n int) BuildAllOption {
	return func(o *buildAllOptions) {
		o.concurrency = n
	}
}

// BuildAll builds the curves of independent chains concurrently.
//
// The result is index-aligned with chains. A chain with too few usable
// residues yields a nil entry rather than an error, so one short peptide does
// not prevent the rest of a structure from being drawn. The only error
// returned is ctx.Err() when ctx is done before all chains were built.
func BuildAll(ctx context.Context, chains []Chain, opts ...BuildAllOption) ([]*Curve, error) {
	o := buildAllOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.concurrency <= 0 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}

	curves := make([]*Curve, len(chains))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i := range chains {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := Build(chains[i])
			if errors.Is(err, ErrInsufficientResidues) {
				Logger().Warn("ribbon: chain skipped", "chain", chains[i].ID, "err", err)
				return nil
			}
			if err != nil {
				return err
			}
			curves[i] = c
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return curves, nil
}
