// Package models holds the records stored by the development backend and
// their JSON representations.
package models

import "time"

const (
	DefaultName   = "Jacques Cousteau"
	DefaultAbout  = "Explorer"
	DefaultAvatar = "https://practicum-content.s3.us-west-1.amazonaws.com/resources/avatar_1604080799.jpg"
)

type User struct {
	ID           string
	Email        string
	PasswordHash []byte
	Name         string
	About        string
	Avatar       string
	CreatedAt    time.Time
}

// Profile is the content API view of a user.
type Profile struct {
	ID     string `json:"_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	About  string `json:"about"`
	Avatar string `json:"avatar"`
}

func (u *User) Profile() Profile {
	return Profile{ID: u.ID, Email: u.Email, Name: u.Name, About: u.About, Avatar: u.Avatar}
}

// Identity is the auth API view of a user, sent inside a "data" envelope.
type Identity struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
}

func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Email: u.Email}
}
