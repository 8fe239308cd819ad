// Package repomanager hands out the repositories of the development backend,
// backed either by process memory or by PostgreSQL.
package repomanager

import (
	"github.com/dmitrijs2005/around/internal/server/repositories/cards"
	"github.com/dmitrijs2005/around/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Cards() cards.Repository
	Close() error
}

// MemoryRepositoryManager keeps everything in memory; data is lost on exit.
type MemoryRepositoryManager struct {
	users *users.MemoryRepository
	cards *cards.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{users: users.NewMemoryRepository(), cards: cards.NewMemoryRepository()}
}

func (m *MemoryRepositoryManager) Users() users.Repository { return m.users }
func (m *MemoryRepositoryManager) Cards() cards.Repository { return m.cards }
func (m *MemoryRepositoryManager) Close() error            { return nil }
