// Package dates resolves free-text and legacy structured date ranges into
// comparable ordinals and orders entries by recency.
package dates

// Range is a date range in one of the shapes entries carry. The set of
// implementations is closed: TextRange and StructuredRange.
type Range interface {
	isRange()
}

// TextRange is a free-text range as it appears on a résumé, e.g. "Jan 2019 - Present"
type TextRange string

// StructuredRange is the legacy {start, end, is_present} shape
type StructuredRange struct {
	Start     string
	End       string
	IsPresent bool
}

func (TextRange) isRange()       {}
func (StructuredRange) isRange() {}
