package validator

import (
	"context"

	ac "github.com/cordialsys/addrcheck"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds ValidateAll when no limit is given.
const DefaultConcurrency = 8

type Request struct {
	Address ac.Address `json:"address" yaml:"address"`
	// Detected from the address when empty
	Chain ac.ChainType `json:"chain,omitempty" yaml:"chain,omitempty"`
}

// ValidateAll validates requests in parallel, keeping their order in the returned slice.
// It stops starting new validations once ctx is done and returns ctx's error.
func (v *Validator) ValidateAll(ctx context.Context, requests []Request, concurrency int) ([]*ac.ValidationResult, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	results := make([]*ac.ValidationResult, len(requests))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)
	for i, req := range requests {
		i, req := i, req
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			chain := req.Chain
			if chain == "" {
				chain = v.DetectChain(req.Address)
			}
			results[i] = v.ValidateAddress(req.Address, chain)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
