// Package memory provides an in-process implementation of storage.Storage.
// It keeps records in insertion order and supports snapshot transactions:
// Begin copies the current state and the transaction records its writes;
// Commit replays them on the parent's current state. A commit whose replay
// fails (a country name taken in the meantime) leaves the parent unchanged.
package memory

import (
	"context"
	"directory/pkg/domain"
	"directory/pkg/storage"
	"fmt"
	"slices"
	"sync"
)

type state struct {
	countries []domain.Country
	persons   []domain.Person
}

// write is a mutation that can be applied to any state.
type write func(s *state) error

func (s state) clone() state {
	return state{
		countries: slices.Clone(s.countries),
		persons:   slices.Clone(s.persons),
	}
}

// Memory is an in-memory storage.Storage. The zero value is not usable; use New.
type Memory struct {
	mu    sync.RWMutex
	state state

	// parent and writes are set on transactional handles only.
	parent *Memory
	writes []write
	done   bool
}

var _ storage.Storage = (*Memory)(nil)

// New returns an empty in-memory storage.
func New() *Memory {
	return &Memory{}
}

// Close is a no-op kept for interface compatibility.
func (m *Memory) Close() error { return nil }

// Begin snapshots the current state into a transactional handle.
func (m *Memory) Begin(_ context.Context) (storage.TxStorage, error) {
	if m.parent != nil {
		return nil, storage.ErrAlreadyInTx
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return &Memory{state: m.state.clone(), parent: m}, nil
}

// Commit replays the transaction's writes on the parent's current state.
func (m *Memory) Commit() error {
	if m.parent == nil {
		return storage.ErrNotInTx
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.done {
		return fmt.Errorf("could not commit tx: %w", storage.ErrNotInTx)
	}
	m.done = true

	m.parent.mu.Lock()
	defer m.parent.mu.Unlock()

	next := m.parent.state.clone()
	for _, w := range m.writes {
		if err := w(&next); err != nil {
			return fmt.Errorf("could not commit tx: %w", err)
		}
	}
	m.parent.state = next

	return nil
}

// apply runs w on the handle's state and, inside a transaction, records it
// for Commit. The caller holds m.mu.
func (m *Memory) apply(w write) error {
	if err := w(&m.state); err != nil {
		return err
	}
	if m.parent != nil {
		m.writes = append(m.writes, w)
	}

	return nil
}

// Rollback discards the transaction's state.
func (m *Memory) Rollback() error {
	if m.parent == nil {
		return storage.ErrNotInTx
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.done {
		return fmt.Errorf("could not rollback tx: %w", storage.ErrNotInTx)
	}
	m.done = true

	return nil
}

// WithTx runs cb inside a transaction, committing on success.
func (m *Memory) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}
