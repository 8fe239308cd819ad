// Package services holds the handlers behind every user action: the auth
// flow (startup token check, login, register, sign out) and the profile and
// card mutations. Handlers talk to the backends through internal/client/client,
// keep the session and the in-memory state current, and report to the
// terminal UI through the Notifier and Navigator ports.
package services

import (
	"context"

	"github.com/dmitrijs2005/around/internal/client/models"
	"github.com/dmitrijs2005/around/internal/client/repositories/metadata"
)

// Notifier shows a transient notification to the user.
type Notifier interface {
	Notify(n models.Notification)
}

// Navigator switches the active view.
type Navigator interface {
	Navigate(v models.View)
}

// TokenStore persists the session token between runs.
type TokenStore interface {
	Load(ctx context.Context) (metadata.Token, bool, error)
	Save(ctx context.Context, t metadata.Token) error
	Remove(ctx context.Context) error
}

// AvatarUploader turns a local image into a public URL.
type AvatarUploader interface {
	Upload(ctx context.Context, path string) (string, error)
}

// InitialLoader fetches profile and cards after the session becomes
// LoggedIn.
type InitialLoader interface {
	LoadInitialData(ctx context.Context) error
}

var (
	_ TokenStore    = (*metadata.TokenStore)(nil)
	_ InitialLoader = (*ContentService)(nil)
)
