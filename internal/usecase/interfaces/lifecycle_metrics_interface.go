package interfaces

import "time"

// ILifecycleMetrics records report lifecycle activity.
type ILifecycleMetrics interface {
	ObserveTransition(operation string, from, to string, outcome string)
	ObserveValuation(tier string, assets int, elapsed time.Duration, err error)
	RefundSignaled(tier string)
}
