package service

// Token refresh outcomes
const (
	RefreshOutcomeSuccess     = "success"
	RefreshOutcomeRejected    = "rejected"
	RefreshOutcomeUnavailable = "unavailable"
	RefreshOutcomeRaced       = "raced"
)

// SyncMetrics records the activity sync counters.
type SyncMetrics interface {
	ObserveTokenRefresh(outcome string)
	ObserveFetch(activities int, truncated bool)
	ObserveImport()
	ObserveDelete()
}
