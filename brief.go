package tradepulse

// RecommendationRecord is the morning research brief. The store keeps a
// single slot, each new brief replaces the previous one, while the history
// log keeps every brief ever generated.
type RecommendationRecord struct {
	// GeneratedAt is the Eastern-time stamp of the generation, for display.
	GeneratedAt string
	// Content is the markdown brief as returned by the analyst.
	Content string
}

// IsZero reports whether no brief has been recorded yet.
func (r RecommendationRecord) IsZero() bool { return r == RecommendationRecord{} }
