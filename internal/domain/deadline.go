package domain

import (
	"math"
	"time"
)

// DeadlineBucket is a coarse urgency classification of a deadline.
type DeadlineBucket string

const (
	// BucketUrgent matches deadlines 1-7 days away.
	BucketUrgent DeadlineBucket = "urgent"
	// BucketSoon matches deadlines 1-30 days away.
	// The buckets are independently selectable, not hierarchical.
	BucketSoon DeadlineBucket = "soon"
)

// DaysUntil returns the number of days remaining before deadline,
// rounded up. Zero or negative means the deadline has passed.
func DaysUntil(deadline, now time.Time) int {
	return int(math.Ceil(deadline.Sub(now).Hours() / 24))
}

// InBucket reports whether a deadline falls inside the given urgency
// bucket. A nil deadline matches no bucket; a passed deadline matches
// neither bucket.
func InBucket(deadline *time.Time, now time.Time, bucket DeadlineBucket) bool {
	if deadline == nil {
		return false
	}
	days := DaysUntil(*deadline, now)
	switch bucket {
	case BucketUrgent:
		return days >= 1 && days <= 7
	case BucketSoon:
		return days >= 1 && days <= 30
	default:
		return false
	}
}

// IsClosed reports whether a deadline has passed. Entities without a
// deadline never close.
func IsClosed(deadline *time.Time, now time.Time) bool {
	return deadline != nil && DaysUntil(*deadline, now) <= 0
}
