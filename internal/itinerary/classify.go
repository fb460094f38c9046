package itinerary

import (
	"strings"

	"github.com/lcollard/tripweaver/internal/domain"
)

// IsDining reports whether a candidate counts as a meal for scheduling
// purposes. A candidate is dining when its category is "Dining"
// (case-insensitive) or its title mentions "restaurant" or "dinner".
// The title check is a heuristic carried over from the content generator,
// which sometimes tags restaurant visits as generic experiences.
func IsDining(c domain.Candidate) bool {
	if strings.EqualFold(c.Category, domain.CategoryDining) {
		return true
	}
	title := strings.ToLower(c.Title)
	return strings.Contains(title, "restaurant") || strings.Contains(title, "dinner")
}

// Classify partitions candidates into a dining queue and an activity queue,
// each preserving the relative order of the input. The input slice is never
// mutated; the scheduler consumes its own copies.
func Classify(items []domain.Candidate) (dining, activity []domain.Candidate) {
	for _, c := range items {
		if IsDining(c) {
			dining = append(dining, c)
		} else {
			activity = append(activity, c)
		}
	}
	return dining, activity
}

// queue is a FIFO cursor over an immutable candidate slice. Popping advances
// the cursor instead of mutating the backing slice, so callers' data is
// never touched.
type queue struct {
	items []domain.Candidate
	next  int
}

func newQueue(items []domain.Candidate) *queue {
	return &queue{items: items}
}

func (q *queue) empty() bool {
	return q.next >= len(q.items)
}

// pop returns the front candidate and advances. Callers must check empty first.
func (q *queue) pop() domain.Candidate {
	c := q.items[q.next]
	q.next++
	return c
}
