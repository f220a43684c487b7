package dice

import (
	"context"

	"go.uber.org/atomic"
)

// contextKey is a value for use with context.WithValue, mirroring the
// teacher project's own contextKey pattern.
type contextKey string

const contextKeyRollBudget = contextKey("dice roll budget")

func (k contextKey) String() string {
	return "github.com/mapdice/dicecore context value " + string(k)
}

// rollBudget tracks how many individual randomness requests a single
// CompoundRoll.Evaluate call has issued. It's attached to the context handed
// to concurrently-running sub-rolls so they share one counter, the same way
// the teacher project bounds MaxRequestRolls per request context.
type rollBudget struct {
	count *atomic.Uint64
	max   uint64
}

// MaxRollsPerEvaluate bounds the number of randomness requests a single
// CompoundRoll.Evaluate call may issue across all of its sub-rolls combined,
// guarding against pathological explode/open chains.
var MaxRollsPerEvaluate uint64 = 100000

// withRollBudget attaches a fresh rollBudget to ctx.
func withRollBudget(ctx context.Context) context.Context {
	return context.WithValue(ctx, contextKeyRollBudget, &rollBudget{
		count: atomic.NewUint64(0),
		max:   MaxRollsPerEvaluate,
	})
}

// chargeRoll increments the shared roll counter and reports whether the
// roll is still within budget (true when no budget is attached to ctx).
func chargeRoll(ctx context.Context) bool {
	b, ok := ctx.Value(contextKeyRollBudget).(*rollBudget)
	if !ok {
		return true
	}
	return b.count.Inc() <= b.max
}
