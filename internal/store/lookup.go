package store

import (
	"iter"

	"taskcli/internal/service"
)

// FindByReference returns the first task, in stored order, whose id equals
// the reference or, for a ByPosition reference, whose 1-based position
// equals it.
func FindByReference(tasks []service.Task, ref service.Reference) (service.Task, bool) {
	i := indexOf(tasks, ref)
	if i < 0 {
		return service.Task{}, false
	}
	return tasks[i], true
}

func indexOf(tasks []service.Task, ref service.Reference) int {
	for i, t := range tasks {
		if t.ID == ref.Raw || (ref.Kind == service.ByPosition && ref.Position == i+1) {
			return i
		}
	}
	return -1
}

// ListAll yields (position, task) pairs in stored order.
func ListAll(tasks []service.Task) iter.Seq2[int, service.Task] {
	return func(yield func(int, service.Task) bool) {
		for i, t := range tasks {
			if !yield(i+1, t) {
				return
			}
		}
	}
}

// ListByStatus is ListAll restricted to one status. Positions are those of
// the full collection, so they stay valid as references.
func ListByStatus(tasks []service.Task, status service.Status) iter.Seq2[int, service.Task] {
	return func(yield func(int, service.Task) bool) {
		for pos, t := range ListAll(tasks) {
			if t.Status != status {
				continue
			}
			if !yield(pos, t) {
				return
			}
		}
	}
}
