package domain

import (
	"sort"
	"time"
)

// statusRank orders status classes for display: pending work first, then
// completed, then discarded. Unknown statuses sink to the bottom.
func statusRank(s TaskStatus) int {
	switch s {
	case TaskStatusPending:
		return 0
	case TaskStatusCompleted:
		return 1
	case TaskStatusDiscarded:
		return 2
	default:
		return 3
	}
}

// priorityRank orders priorities most-urgent first. Unknown priorities sort
// after low.
func priorityRank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// SortForDisplay sorts tasks in place into the canonical display order:
// status class, then overdue before not overdue, then priority, then due date
// ascending. The sort is stable, so tasks equal on all keys keep their
// storage order. Overdue-ness is evaluated against the single now instant for
// the whole call, never re-read per comparison.
func SortForDisplay(tasks []*Task, now time.Time) {
	overdue := make([]bool, len(tasks))
	for i, t := range tasks {
		overdue[i] = t.DueDate != nil && t.DueDate.Before(now)
	}

	// Sort index positions so the precomputed overdue flags stay aligned
	// with their tasks.
	idx := make([]int, len(tasks))
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(a, b int) bool {
		ta, tb := tasks[idx[a]], tasks[idx[b]]

		if ra, rb := statusRank(ta.Status), statusRank(tb.Status); ra != rb {
			return ra < rb
		}
		if overdue[idx[a]] != overdue[idx[b]] {
			return overdue[idx[a]]
		}
		if ra, rb := priorityRank(ta.Priority), priorityRank(tb.Priority); ra != rb {
			return ra < rb
		}
		switch {
		case ta.DueDate == nil && tb.DueDate == nil:
			return false
		case ta.DueDate == nil:
			return false
		case tb.DueDate == nil:
			return true
		default:
			return ta.DueDate.Before(*tb.DueDate)
		}
	})

	sorted := make([]*Task, len(tasks))
	for i, j := range idx {
		sorted[i] = tasks[j]
	}
	copy(tasks, sorted)
}
