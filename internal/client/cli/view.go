package cli

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrijs2005/around/internal/client/i18n"
	"github.com/dmitrijs2005/around/internal/client/models"
	"github.com/dmitrijs2005/around/internal/client/state"
	"github.com/dmitrijs2005/around/internal/client/validation"
)

// Notify prints a notification as a framed message.
func (a *App) Notify(n models.Notification) {
	mark := "✗"
	if n.Success {
		mark = "✓"
	}
	a.printf("\n  %s %s\n\n", mark, n.Message)
}

// Navigate switches the view and hints at what the user can do there.
func (a *App) Navigate(v models.View) {
	a.mu.Lock()
	changed := a.view != v
	a.view = v
	a.mu.Unlock()

	if !changed {
		return
	}
	switch v {
	case models.ViewLogin:
		a.printf("Type 'login' to sign in or 'register' to create an account.\n")
	case models.ViewMain:
		a.printf("Type 'list' to see the cards or 'help' for all commands.\n")
	}
}

func pendingLabel(p state.Pending, tr *i18n.Translator) string {
	var labels []string
	for _, f := range p.Active() {
		switch f {
		case state.ProfileSaving, state.AvatarSaving:
			labels = append(labels, tr.T(i18n.Saving))
		case state.CardAdding:
			labels = append(labels, tr.T(i18n.Creating))
		case state.CardDeleting:
			labels = append(labels, tr.T(i18n.Deleting))
		}
	}
	return strings.Join(slices.Compact(labels), " ")
}

func formatProfile(p models.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", p.Name)
	fmt.Fprintf(&b, "  %s\n", p.About)
	if p.AvatarURL != "" {
		fmt.Fprintf(&b, "  avatar: %s\n", p.AvatarURL)
	}
	if p.Email != "" {
		fmt.Fprintf(&b, "  email:  %s\n", p.Email)
	}
	return b.String()
}

func formatCard(n int, c models.Card, me string) string {
	heart := "♡"
	if c.IsLiked {
		heart = "♥"
	}
	owner := ""
	if me != "" && c.OwnerID == me {
		owner = " (yours)"
	}
	return fmt.Sprintf("%3d. %-30s %s %d%s\n     %s  [%s]\n", n, c.Title, heart, len(c.LikedBy), owner, c.ImageURL, c.ID)
}

func formatValidation(ve *validation.Error) string {
	var b strings.Builder
	for _, k := range slices.Sorted(maps.Keys(ve.Fields)) {
		fmt.Fprintf(&b, "  %s %s\n", k, ve.Fields[k])
	}
	return b.String()
}
