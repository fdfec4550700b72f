package entities

import (
	"strconv"
	"strings"
	"time"
)

// FilterAll is the sentinel that disables a filter dimension.
const FilterAll = "all"

// ListQuery combines free-text search, a status filter and a due-date
// bucket into one predicate. Dimensions compose with logical AND; an
// empty query matches everything.
//
// Now is the reference instant for bucket classification and must be set
// by the caller whenever DueBucket is in play.
type ListQuery struct {
	Text      string
	Status    string
	DueBucket DueBucket
	Now       time.Time
}

func (q ListQuery) statusActive() bool {
	return q.Status != "" && q.Status != FilterAll
}

func (q ListQuery) bucketActive() bool {
	return q.DueBucket != "" && q.DueBucket != DueBucket(FilterAll)
}

func (q ListQuery) text() string {
	return strings.ToLower(strings.TrimSpace(q.Text))
}

// Empty reports whether the query filters nothing.
func (q ListQuery) Empty() bool {
	return q.text() == "" && !q.statusActive() && !q.bucketActive()
}

// FilterOrders applies the query to a list of service orders. The input
// slice is never mutated; an empty query returns it unchanged, order
// preserved. Orders carry no due date, so the bucket dimension is ignored.
func FilterOrders(orders []ServiceOrder, q ListQuery) []ServiceOrder {
	if q.text() == "" && !q.statusActive() {
		return orders
	}

	out := make([]ServiceOrder, 0, len(orders))
	for _, o := range orders {
		if q.statusActive() && string(o.Status) != q.Status {
			continue
		}
		if needle := q.text(); needle != "" && !matchText(needle,
			strconv.FormatInt(o.ID, 10),
			o.Description,
			strconv.FormatInt(o.ClientID, 10),
			strconv.FormatInt(o.VehicleID, 10),
		) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// FilterTasks applies the query to a list of tasks, classifying due dates
// against q.Now when the bucket dimension is active.
func FilterTasks(tasks []Task, q ListQuery) []Task {
	if q.Empty() {
		return tasks
	}

	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if q.statusActive() && string(t.Status) != q.Status {
			continue
		}
		if q.bucketActive() && ClassifyDue(t.DueAt, q.Now).Bucket != q.DueBucket {
			continue
		}
		if needle := q.text(); needle != "" {
			fields := []string{
				strconv.FormatInt(t.ID, 10),
				t.Title,
				t.Description,
			}
			if t.RelatedOrderID != nil {
				fields = append(fields, strconv.FormatInt(*t.RelatedOrderID, 10))
			}
			if t.RelatedClientID != nil {
				fields = append(fields, strconv.FormatInt(*t.RelatedClientID, 10))
			}
			if !matchText(needle, fields...) {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// matchText reports whether the lowercase needle is a substring of any of
// the candidate fields. Matching is OR across fields.
func matchText(needle string, fields ...string) bool {
	for _, f := range fields {
		if f == "" {
			continue
		}
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
