package models

import (
	"slices"
	"time"
)

type Card struct {
	ID        string
	Name      string
	Link      string
	OwnerID   string
	Likes     []string
	CreatedAt time.Time
}

// CardView is the content API view of a card for one viewer.
type CardView struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	Owner     string    `json:"owner"`
	Likes     []string  `json:"likes"`
	IsLiked   bool      `json:"isLiked"`
	CreatedAt time.Time `json:"createdAt"`
}

// View renders c as seen by viewerID.
func (c *Card) View(viewerID string) CardView {
	likes := slices.Clone(c.Likes)
	if likes == nil {
		likes = []string{}
	}
	return CardView{
		ID:        c.ID,
		Name:      c.Name,
		Link:      c.Link,
		Owner:     c.OwnerID,
		Likes:     likes,
		IsLiked:   slices.Contains(c.Likes, viewerID),
		CreatedAt: c.CreatedAt,
	}
}
