package usecase

import "time"

const (
	// scoreCacheTTL is deliberately short so that rule-set edits and new
	// payments propagate to dashboards within a minute even when an
	// invalidation is missed.
	scoreCacheTTL = time.Minute

	// scoreHistoryLimit caps how many debt records a single score replay
	// loads. A friend-group ledger stays far below this.
	scoreHistoryLimit = 1000
)

func scoreCacheKey(userID string) string {
	return "score:" + userID
}
