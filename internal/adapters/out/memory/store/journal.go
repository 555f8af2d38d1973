// Package store provides the generic keyed tables the in-memory repositories
// are built on, and the journal that lets a unit of work undo their changes.
//
// Tables are not safe for concurrent use. Callers serialize access through the
// lock held by a unit of work.
package store

// Journal collects undo steps for every table sharing it while a transaction is open.
type Journal struct {
	active bool
	undo   []func()
}

func NewJournal() *Journal {
	return &Journal{}
}

// Begin starts recording. Steps recorded by a previous transaction are dropped.
func (j *Journal) Begin() {
	j.active = true
	j.undo = j.undo[:0]
}

// Commit stops recording and keeps every change.
func (j *Journal) Commit() {
	j.active = false
	j.undo = j.undo[:0]
}

// Rollback undoes the recorded changes in reverse order.
func (j *Journal) Rollback() {
	for i := len(j.undo) - 1; i >= 0; i-- {
		j.undo[i]()
	}
	j.active = false
	j.undo = j.undo[:0]
}

// Active reports whether a transaction is open.
func (j *Journal) Active() bool {
	return j.active
}

func (j *Journal) record(step func()) {
	if j == nil || !j.active {
		return
	}
	j.undo = append(j.undo, step)
}
