package models

import (
	"encoding/json"
	"slices"
	"time"
)

// NewCard is the body of POST /cards.
type NewCard struct {
	Title    string `json:"name" validate:"required,min=2,max=30"`
	ImageURL string `json:"link" validate:"required,url"`
}

// Card is a photo entry. IsLiked is derived: the backend may report it
// directly, otherwise it follows from the current user's membership in
// LikedBy (see Resolve).
type Card struct {
	ID        string    `json:"_id"`
	Title     string    `json:"name"`
	ImageURL  string    `json:"link"`
	OwnerID   string    `json:"owner"`
	LikedBy   []string  `json:"likes"`
	IsLiked   bool      `json:"isLiked"`
	CreatedAt time.Time `json:"createdAt,omitzero"`

	likedReported bool
}

// wireCard accepts both shapes the backends use for owner and likes: bare
// ids or embedded user objects.
type wireCard struct {
	ID        string            `json:"_id"`
	Title     string            `json:"name"`
	ImageURL  string            `json:"link"`
	Owner     json.RawMessage   `json:"owner"`
	Likes     []json.RawMessage `json:"likes"`
	IsLiked   *bool             `json:"isLiked"`
	CreatedAt time.Time         `json:"createdAt"`
}

func (c *Card) UnmarshalJSON(b []byte) error {
	var w wireCard
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	*c = Card{
		ID:        w.ID,
		Title:     w.Title,
		ImageURL:  w.ImageURL,
		OwnerID:   userRef(w.Owner),
		LikedBy:   userRefs(w.Likes),
		CreatedAt: w.CreatedAt,
	}
	if w.IsLiked != nil {
		c.IsLiked = *w.IsLiked
		c.likedReported = true
	}
	return nil
}

// Resolve fills in the derived fields for the given current user: a missing
// likes list becomes empty and IsLiked is computed from LikedBy unless the
// backend reported it.
func (c Card) Resolve(userID string) Card {
	if c.LikedBy == nil {
		c.LikedBy = []string{}
	}
	if !c.likedReported && userID != "" {
		c.IsLiked = slices.Contains(c.LikedBy, userID)
	}
	return c
}

// Clone returns a copy that shares no slices with c.
func (c Card) Clone() Card {
	if c.LikedBy != nil {
		c.LikedBy = slices.Clone(c.LikedBy)
	}
	return c
}

// LikeState is the like-related part of a PUT/DELETE /cards/{id}/likes
// response. Fields the backend did not send are left unset and are not
// merged.
type LikeState struct {
	LikedBy []string
	IsLiked *bool

	hasLikes bool
}

func (l *LikeState) UnmarshalJSON(b []byte) error {
	var w struct {
		Likes   *[]json.RawMessage `json:"likes"`
		IsLiked *bool              `json:"isLiked"`
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	*l = LikeState{IsLiked: w.IsLiked}
	if w.Likes != nil {
		l.LikedBy = userRefs(*w.Likes)
		l.hasLikes = true
	}
	return nil
}

// Apply merges the like state into c and sets the liked flag to liked, the
// state that was requested. Every other field of c is preserved.
func (l LikeState) Apply(c Card, liked bool) Card {
	if l.hasLikes {
		c.LikedBy = slices.Clone(l.LikedBy)
	}
	if c.LikedBy == nil {
		c.LikedBy = []string{}
	}
	c.IsLiked = liked
	c.likedReported = true
	return c
}

func userRef(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var id string
	if err := json.Unmarshal(raw, &id); err == nil {
		return id
	}

	var obj struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.ID
	}
	return ""
}

func userRefs(raw []json.RawMessage) []string {
	if raw == nil {
		return nil
	}
	ids := make([]string, 0, len(raw))
	for _, r := range raw {
		if id := userRef(r); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
