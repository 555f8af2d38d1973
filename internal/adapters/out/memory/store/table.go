package store

import (
	"slices"

	"ecommerce/internal/pkg/errs"

	"github.com/samber/lo"
)

// Row is a value stored in a Table. Key returns zero for a row that was never saved.
type Row[T any] interface {
	Key() int64
	WithKey(key int64) T
}

// Table is a keyed collection of rows of one entity type. Keys come from a
// sequence owned by the table, starting at 1. A key is never handed out twice,
// not even after its row was deleted or its insertion undone.
type Table[T Row[T]] struct {
	name    string
	rows    map[int64]T
	seq     int64
	journal *Journal
}

// NewTable creates an empty table. name appears in not found errors.
// journal may be nil when no undo support is needed.
func NewTable[T Row[T]](name string, journal *Journal) *Table[T] {
	return &Table[T]{
		name:    name,
		rows:    make(map[int64]T),
		journal: journal,
	}
}

// Save stores row and returns it with its key. A row without a key gets the
// next one from the sequence. A row with a key is inserted or replaced.
func (t *Table[T]) Save(row T) T {
	key := row.Key()
	if key == 0 {
		t.seq++
		key = t.seq
		row = row.WithKey(key)
	} else if key > t.seq {
		t.seq = key
	}

	t.put(key, row)
	return row
}

// Update replaces an existing row.
func (t *Table[T]) Update(row T) error {
	key := row.Key()
	if _, ok := t.rows[key]; !ok {
		return errs.NewObjectNotFoundError(t.name, key)
	}

	t.put(key, row)
	return nil
}

// Delete removes the row with the given key.
func (t *Table[T]) Delete(key int64) error {
	previous, ok := t.rows[key]
	if !ok {
		return errs.NewObjectNotFoundError(t.name, key)
	}

	delete(t.rows, key)
	t.journal.record(func() { t.rows[key] = previous })
	return nil
}

func (t *Table[T]) FindByID(key int64) (T, bool) {
	row, ok := t.rows[key]
	return row, ok
}

// FindAll returns every row ordered by key.
func (t *Table[T]) FindAll() []T {
	keys := lo.Keys(t.rows)
	slices.Sort(keys)

	return lo.Map(keys, func(key int64, _ int) T {
		return t.rows[key]
	})
}

// FindBy returns the rows matching predicate, ordered by key.
func (t *Table[T]) FindBy(predicate func(T) bool) []T {
	return lo.Filter(t.FindAll(), func(row T, _ int) bool {
		return predicate(row)
	})
}

func (t *Table[T]) Count() int {
	return len(t.rows)
}

func (t *Table[T]) put(key int64, row T) {
	previous, existed := t.rows[key]
	t.rows[key] = row

	t.journal.record(func() {
		if existed {
			t.rows[key] = previous
			return
		}
		delete(t.rows, key)
	})
}
