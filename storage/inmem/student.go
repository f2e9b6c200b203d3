// Package inmemdb is an in-memory student.Store for tests and local dev.
package inmemdb

import (
	"context"
	"sort"
	"sync"

	"github.com/impulsa/seguimiento/core/student"
)

type StudentStore struct {
	mutex sync.RWMutex
	table map[int]student.Student
}

var _ student.Store = (*StudentStore)(nil)

func NewStudentStore(seed ...student.Student) *StudentStore {
	st := &StudentStore{table: make(map[int]student.Student, len(seed))}
	for _, s := range seed {
		st.table[s.ID] = s.Clone()
	}
	return st
}

func (st *StudentStore) FetchAll(_ context.Context) ([]student.Student, error) {
	st.mutex.RLock()
	defer st.mutex.RUnlock()

	out := make([]student.Student, 0, len(st.table))
	for _, s := range st.table {
		out = append(out, s.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (st *StudentStore) SaveAll(_ context.Context, students []student.Student) error {
	st.mutex.Lock()
	defer st.mutex.Unlock()

	st.table = make(map[int]student.Student, len(students))
	for _, s := range students {
		st.table[s.ID] = s.Clone()
	}
	return nil
}

// Put upserts a single record outside the batch protocol; tests use it to
// simulate a concurrent remote edit.
func (st *StudentStore) Put(s student.Student) {
	st.mutex.Lock()
	defer st.mutex.Unlock()
	st.table[s.ID] = s.Clone()
}
