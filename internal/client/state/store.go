// Package state holds the in-memory mirror of the server: the current
// profile, the ordered card list and the pending-operation flags.
//
// Every accessor returns a copy. Responses that arrive out of order are
// filtered with generation tokens: a handler takes a token before it sends
// its request and commits through a method that refuses the result when a
// newer request for the same entity has already committed. A request that
// fails never commits, so it does not shadow older requests still in flight.
package state

import (
	"slices"
	"sync"

	"github.com/dmitrijs2005/around/internal/client/models"
)

// Flag names one of the pending-operation indicators.
type Flag int

const (
	ProfileSaving Flag = iota
	AvatarSaving
	CardAdding
	CardDeleting
)

func (f Flag) String() string {
	switch f {
	case ProfileSaving:
		return "saving profile"
	case AvatarSaving:
		return "saving avatar"
	case CardAdding:
		return "adding card"
	case CardDeleting:
		return "deleting card"
	default:
		return "unknown"
	}
}

// Pending is a snapshot of the four flags.
type Pending struct {
	ProfileSaving bool
	AvatarSaving  bool
	CardAdding    bool
	CardDeleting  bool
}

// Active lists the flags that are set, in declaration order.
func (p Pending) Active() []Flag {
	var out []Flag
	if p.ProfileSaving {
		out = append(out, ProfileSaving)
	}
	if p.AvatarSaving {
		out = append(out, AvatarSaving)
	}
	if p.CardAdding {
		out = append(out, CardAdding)
	}
	if p.CardDeleting {
		out = append(out, CardDeleting)
	}
	return out
}

// Generation identifies one in-flight request for an entity.
type Generation uint64

type Store struct {
	mu sync.RWMutex

	profile    models.Profile
	hasProfile bool
	cards      []models.Card
	pending    Pending

	// seq is the last generation issued. floor invalidates everything issued
	// before the last Clear.
	seq         Generation
	floor       Generation
	profileDone Generation
	cardDone    map[string]Generation
}

func New() *Store {
	return &Store{cardDone: make(map[string]Generation)}
}

func (s *Store) SetPending(f Flag, on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch f {
	case ProfileSaving:
		s.pending.ProfileSaving = on
	case AvatarSaving:
		s.pending.AvatarSaving = on
	case CardAdding:
		s.pending.CardAdding = on
	case CardDeleting:
		s.pending.CardDeleting = on
	}
}

func (s *Store) Pending() Pending {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending
}

// Profile returns ok=false until a profile has been loaded.
func (s *Store) Profile() (models.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile, s.hasProfile
}

// SetProfile replaces the profile unconditionally.
func (s *Store) SetProfile(p models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile, s.hasProfile = p, true
}

// BeginProfile issues a generation for a profile or avatar update.
func (s *Store) BeginProfile() Generation {
	return s.next()
}

// CommitProfile replaces the profile unless a newer profile generation has
// already committed, and reports whether it did.
func (s *Store) CommitProfile(gen Generation, p models.Profile) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen <= max(s.floor, s.profileDone) {
		return false
	}
	s.profileDone = gen
	s.profile, s.hasProfile = p, true
	return true
}

// Cards returns the ordered card list.
func (s *Store) Cards() []models.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Card, len(s.cards))
	for i, c := range s.cards {
		out[i] = c.Clone()
	}
	return out
}

func (s *Store) Card(id string) (models.Card, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.cards[i].Clone(), true
	}
	return models.Card{}, false
}

// SetCards replaces the list, keeping server order. A repeated id keeps its
// first position.
func (s *Store) SetCards(cards []models.Card) {
	seen := make(map[string]struct{}, len(cards))
	list := make([]models.Card, 0, len(cards))
	for _, c := range cards {
		if _, dup := seen[c.ID]; dup {
			continue
		}
		seen[c.ID] = struct{}{}
		list = append(list, c.Clone())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards = list
}

// PrependCard puts c at position 0. An existing card with the same id is
// dropped from its old position.
func (s *Store) PrependCard(c models.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(c.ID); i >= 0 {
		s.cards = slices.Delete(s.cards, i, i+1)
	}
	s.cards = slices.Insert(s.cards, 0, c.Clone())
}

// RemoveCard deletes the card with the given id and reports whether it was
// present.
func (s *Store) RemoveCard(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.cards = slices.Delete(s.cards, i, i+1)
	s.cardDone[id] = s.seq
	return true
}

// BeginCard issues a generation for a request that mutates card id.
func (s *Store) BeginCard(id string) Generation {
	return s.next()
}

// UpdateCard replaces card id in place with fn(card) unless a newer
// generation for that card has already committed. It reports false when the
// response is stale or the card is gone.
func (s *Store) UpdateCard(id string, gen Generation, fn func(models.Card) models.Card) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen <= max(s.floor, s.cardDone[id]) {
		return false
	}
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	updated := fn(s.cards[i].Clone())
	updated.ID = id
	s.cards[i] = updated
	s.cardDone[id] = gen
	return true
}

func (s *Store) next() Generation {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// Clear drops all profile and card state. Outstanding generations become
// stale.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile, s.hasProfile = models.Profile{}, false
	s.cards = nil
	s.pending = Pending{}
	s.floor = s.seq
	s.profileDone = 0
	clear(s.cardDone)
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.cards, func(c models.Card) bool { return c.ID == id })
}
