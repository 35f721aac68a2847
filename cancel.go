package equihash

import "context"

// checkCancel is the cooperative cancellation check both solvers run at
// round boundaries and between partial-solution expansions (§5). It never
// rolls anything back; callers get back whatever solutions were already
// finalized.
func checkCancel(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return context.Cause(ctx)
	default:
		return nil
	}
}
