package krakenspot

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// restLimiter mirrors Kraken's REST call counter: each call adds its cost to
// the counter, the counter decays by one every decay interval for the
// account's verification tier, and calls wait while the counter is full.
type restLimiter struct {
	limiter *rate.Limiter
}

func newRESTLimiter(verificationTier uint8) (*restLimiter, error) {
	decay, ok := decayRateMap[verificationTier]
	if !ok {
		return nil, fmt.Errorf("%w; invalid verification tier, check enum and inputs and try again", ErrInvalidArg)
	}
	return &restLimiter{
		limiter: rate.NewLimiter(rate.Every(decay), maxCounterMap[verificationTier]),
	}, nil
}

// wait blocks until 'endpoint' fits under the counter cap or ctx is done.
func (rl *restLimiter) wait(ctx context.Context, endpoint string) error {
	if rl == nil {
		return nil
	}
	cost, ok := endpointCostMap[endpoint]
	if !ok {
		cost = 1
	}
	if cost == 0 {
		return nil
	}
	if err := rl.limiter.WaitN(ctx, cost); err != nil {
		// rate reports a wait that would outlast the deadline before the
		// context itself expires
		if _, ok := ctx.Deadline(); ok && ctx.Err() == nil {
			return fmt.Errorf("%w | %w", context.DeadlineExceeded, err)
		}
		return err
	}
	return nil
}
