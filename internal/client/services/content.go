package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/around/internal/client/client"
	"github.com/dmitrijs2005/around/internal/client/models"
	"github.com/dmitrijs2005/around/internal/client/state"
	"github.com/dmitrijs2005/around/internal/logging"
)

// DefaultMinLatency keeps the pending indicators visible against a fast
// backend.
const DefaultMinLatency = time.Second

var (
	ErrUnknownCard   = errors.New("card is not in the list")
	ErrNoUploader    = errors.New("avatar upload is not configured")
	ErrStaleResponse = errors.New("response superseded by a newer request")
)

type ContentOption func(*ContentService)

// WithMinLatency sets the minimum duration of the four pending-flag
// mutations. Zero disables the delay.
func WithMinLatency(d time.Duration) ContentOption {
	return func(s *ContentService) { s.minLatency = d }
}

func WithUploader(u AvatarUploader) ContentOption {
	return func(s *ContentService) { s.uploader = u }
}

// ContentService runs the profile and card handlers against the content
// backend and mirrors the results into the state store.
type ContentService struct {
	content    client.Content
	store      *state.Store
	uploader   AvatarUploader
	log        logging.Logger
	minLatency time.Duration

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

func NewContentService(content client.Content, store *state.Store, log logging.Logger, opts ...ContentOption) *ContentService {
	s := &ContentService{
		content:    content,
		store:      store,
		log:        log,
		minLatency: DefaultMinLatency,
		now:        time.Now,
		sleep:      sleepCtx,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// LoadInitialData fetches the profile and the card list concurrently. Each
// result is applied on its own; the first failure is returned after both
// requests finish.
func (s *ContentService) LoadInitialData(ctx context.Context) error {
	if err := s.requireToken(); err != nil {
		return err
	}

	var (
		g     errgroup.Group
		cards []models.Card
	)

	g.Go(func() error {
		p, err := s.content.GetProfile(ctx)
		if err != nil {
			s.log.Error(ctx, "load profile failed", "error", err)
			return fmt.Errorf("load profile: %w", err)
		}
		s.store.SetProfile(p)
		return nil
	})

	var cardsErr error
	g.Go(func() error {
		cards, cardsErr = s.content.GetCards(ctx)
		if cardsErr != nil {
			s.log.Error(ctx, "load cards failed", "error", cardsErr)
			return fmt.Errorf("load cards: %w", cardsErr)
		}
		return nil
	})

	err := g.Wait()

	if cardsErr == nil {
		uid := s.userID()
		for i := range cards {
			cards[i] = cards[i].Resolve(uid)
		}
		s.store.SetCards(cards)
		s.log.Debug(ctx, "cards loaded", "count", len(cards))
	}

	return err
}

// UpdateProfile sends the new name and about text, then replaces the
// profile with the server's copy.
func (s *ContentService) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (models.Profile, error) {
	return s.commitProfile(ctx, state.ProfileSaving, "update profile", func(ctx context.Context) (models.Profile, error) {
		return s.content.UpdateProfile(ctx, upd)
	})
}

// UpdateAvatar points the profile avatar to a URL.
func (s *ContentService) UpdateAvatar(ctx context.Context, upd models.AvatarUpdate) (models.Profile, error) {
	return s.commitProfile(ctx, state.AvatarSaving, "update avatar", func(ctx context.Context) (models.Profile, error) {
		return s.content.UpdateAvatar(ctx, upd)
	})
}

// UpdateAvatarFromFile uploads a local image and then sets it as the
// avatar. The avatar-saving flag covers both steps.
func (s *ContentService) UpdateAvatarFromFile(ctx context.Context, path string) (models.Profile, error) {
	if s.uploader == nil {
		return models.Profile{}, ErrNoUploader
	}
	return s.commitProfile(ctx, state.AvatarSaving, "update avatar", func(ctx context.Context) (models.Profile, error) {
		url, err := s.uploader.Upload(ctx, path)
		if err != nil {
			return models.Profile{}, fmt.Errorf("upload avatar: %w", err)
		}
		s.log.Debug(ctx, "avatar uploaded", "url", url)
		return s.content.UpdateAvatar(ctx, models.AvatarUpdate{AvatarURL: url})
	})
}

func (s *ContentService) commitProfile(ctx context.Context, flag state.Flag, op string, call func(context.Context) (models.Profile, error)) (models.Profile, error) {
	if err := s.requireToken(); err != nil {
		return models.Profile{}, err
	}

	gen := s.store.BeginProfile()

	var p models.Profile
	err := s.pending(ctx, flag, func(ctx context.Context) (err error) {
		p, err = call(ctx)
		return err
	})
	if err != nil {
		s.log.Error(ctx, op+" failed", "error", err)
		return models.Profile{}, err
	}

	if !s.store.CommitProfile(gen, p) {
		s.log.Debug(ctx, op+" response discarded", "reason", "stale")
		return p, ErrStaleResponse
	}
	return p, nil
}

// AddCard creates a card and puts it first in the list.
func (s *ContentService) AddCard(ctx context.Context, nc models.NewCard) (models.Card, error) {
	if err := s.requireToken(); err != nil {
		return models.Card{}, err
	}

	var card models.Card
	err := s.pending(ctx, state.CardAdding, func(ctx context.Context) (err error) {
		card, err = s.content.AddCard(ctx, nc)
		return err
	})
	if err != nil {
		s.log.Error(ctx, "add card failed", "error", err)
		return models.Card{}, err
	}

	card = card.Resolve(s.userID())
	s.store.PrependCard(card)
	s.log.Info(ctx, "card added", "card_id", card.ID)
	return card, nil
}

// DeleteCard removes the card after the backend confirms. An id the list
// does not contain leaves the list as is.
func (s *ContentService) DeleteCard(ctx context.Context, cardID string) error {
	if err := s.requireToken(); err != nil {
		return err
	}

	err := s.pending(ctx, state.CardDeleting, func(ctx context.Context) error {
		return s.content.DeleteCard(ctx, cardID)
	})
	if err != nil {
		s.log.Error(ctx, "delete card failed", "card_id", cardID, "error", err)
		return err
	}

	if !s.store.RemoveCard(cardID) {
		s.log.Debug(ctx, "deleted card was not in the list", "card_id", cardID)
	}
	return nil
}

// ToggleLike inverts the liked state of a card. Only the like fields of the
// local card change and its position is kept. When several toggles of the
// same card overlap, only the latest response is applied.
func (s *ContentService) ToggleLike(ctx context.Context, cardID string) (models.Card, error) {
	if err := s.requireToken(); err != nil {
		return models.Card{}, err
	}

	card, ok := s.store.Card(cardID)
	if !ok {
		return models.Card{}, ErrUnknownCard
	}
	liked := !card.IsLiked

	gen := s.store.BeginCard(cardID)
	ls, err := s.content.SetCardLike(ctx, cardID, liked)
	if err != nil {
		s.log.Error(ctx, "like failed", "card_id", cardID, "liked", liked, "error", err)
		return models.Card{}, err
	}

	var updated models.Card
	applied := s.store.UpdateCard(cardID, gen, func(c models.Card) models.Card {
		updated = ls.Apply(c, liked)
		return updated
	})
	if !applied {
		s.log.Debug(ctx, "like response discarded", "card_id", cardID)
		current, _ := s.store.Card(cardID)
		return current, ErrStaleResponse
	}
	return updated.Clone(), nil
}

// pending runs call with flag set and holds the flag for at least the
// minimum latency. The delay applies only to successful calls.
func (s *ContentService) pending(ctx context.Context, flag state.Flag, call func(context.Context) error) error {
	s.store.SetPending(flag, true)
	defer s.store.SetPending(flag, false)

	start := s.now()
	if err := call(ctx); err != nil {
		return err
	}

	if wait := s.minLatency - s.now().Sub(start); wait > 0 {
		if err := s.sleep(ctx, wait); err != nil {
			return err
		}
	}
	return nil
}

func (s *ContentService) requireToken() error {
	if s.content.Token() == "" {
		return client.ErrNotLoggedIn
	}
	return nil
}

func (s *ContentService) userID() string {
	p, _ := s.store.Profile()
	return p.ID
}
