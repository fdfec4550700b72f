package entities

import "time"

// DueBucket is the coarse classification of a due timestamp relative to a
// reference instant, used for both display badges and list filtering.

type DueBucket string

const (
	DueBucketOverdue DueBucket = "overdue"
	DueBucketToday   DueBucket = "today"
	DueBucketWeek    DueBucket = "week"
	DueBucketMonth   DueBucket = "month"
	DueBucketNone    DueBucket = "none"
)

func (b DueBucket) Valid() bool {
	switch b {
	case DueBucketOverdue, DueBucketToday, DueBucketWeek, DueBucketMonth, DueBucketNone:
		return true
	}
	return false
}

// DueClassification is the result of classifying a due date.
type DueClassification struct {
	Overdue bool      `json:"overdue"`
	Bucket  DueBucket `json:"bucket"`
}

// ClassifyDue derives the overdue flag and due bucket for a nullable due
// timestamp. The reference instant is always passed in; there is no
// ambient clock, so the function is deterministic and safe to call on
// every re-render.
//
// Buckets are mutually exclusive and evaluated in order: overdue (strictly
// before now), today (same calendar day), week (same ISO week), month
// (same calendar month), none. A nil due date is bucket none and never
// overdue.
func ClassifyDue(dueAt *time.Time, now time.Time) DueClassification {
	if dueAt == nil {
		return DueClassification{Overdue: false, Bucket: DueBucketNone}
	}

	due := dueAt.In(now.Location())
	if due.Before(now) {
		return DueClassification{Overdue: true, Bucket: DueBucketOverdue}
	}

	ny, nm, nd := now.Date()
	dy, dm, dd := due.Date()
	if ny == dy && nm == dm && nd == dd {
		return DueClassification{Bucket: DueBucketToday}
	}

	nwy, nw := now.ISOWeek()
	dwy, dw := due.ISOWeek()
	if nwy == dwy && nw == dw {
		return DueClassification{Bucket: DueBucketWeek}
	}

	if ny == dy && nm == dm {
		return DueClassification{Bucket: DueBucketMonth}
	}

	return DueClassification{Bucket: DueBucketNone}
}
