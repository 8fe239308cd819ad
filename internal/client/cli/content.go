package cli

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/around/internal/client/i18n"
	"github.com/dmitrijs2005/around/internal/client/models"
	"github.com/dmitrijs2005/around/internal/client/services"
)

var errNotYours = errors.New("card belongs to another user")

// Profile prints the current profile.
func (a *App) Profile(ctx context.Context) error {
	p, ok := a.store.Profile()
	if !ok {
		a.printf("Profile is not loaded.\n")
		return nil
	}
	a.printf("%s", formatProfile(p))
	return nil
}

// Edit prompts for a new name and about text.
func (a *App) Edit(ctx context.Context) error {
	cur, _ := a.store.Profile()

	name, err := getSimpleText(a.reader, "Name ["+cur.Name+"]", a.out)
	if err != nil {
		return err
	}
	about, err := getSimpleText(a.reader, "About ["+cur.About+"]", a.out)
	if err != nil {
		return err
	}

	upd := models.ProfileUpdate{Name: orDefault(name, cur.Name), About: orDefault(about, cur.About)}
	if err := a.validate(upd); err != nil {
		return err
	}

	p, err := a.content.UpdateProfile(ctx, upd)
	if err = a.report(ctx, err); err != nil {
		return err
	}
	a.printf("%s", formatProfile(p))
	return nil
}

// Avatar accepts either an image URL or a path to a local image, which is
// uploaded first.
func (a *App) Avatar(ctx context.Context) error {
	src, err := getSimpleText(a.reader, "Avatar image URL or local file", a.out)
	if err != nil {
		return err
	}

	var p models.Profile
	if isURL(src) {
		upd := models.AvatarUpdate{AvatarURL: src}
		if err := a.validate(upd); err != nil {
			return err
		}
		p, err = a.content.UpdateAvatar(ctx, upd)
	} else {
		p, err = a.content.UpdateAvatarFromFile(ctx, src)
	}
	if err = a.report(ctx, err); err != nil {
		return err
	}
	a.printf("avatar: %s\n", p.AvatarURL)
	return nil
}

// List prints the cards in their current order.
func (a *App) List(ctx context.Context) error {
	cards := a.store.Cards()
	me, _ := a.store.Profile()

	a.printf("%s\n", a.tr.T(i18n.CardCount, len(cards)))
	for i, c := range cards {
		a.printf("%s", formatCard(i+1, c, me.ID))
	}
	return nil
}

// Add prompts for a title and an image URL and creates a card.
func (a *App) Add(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	link, err := getSimpleText(a.reader, "Image URL", a.out)
	if err != nil {
		return err
	}

	nc := models.NewCard{Title: title, ImageURL: link}
	if err := a.validate(nc); err != nil {
		return err
	}

	card, err := a.content.AddCard(ctx, nc)
	if err = a.report(ctx, err); err != nil {
		return err
	}
	me, _ := a.store.Profile()
	a.printf("%s", formatCard(1, card, me.ID))
	return nil
}

// Like toggles the like on the referenced card.
func (a *App) Like(ctx context.Context, ref string) error {
	card, err := a.resolveCard(ref)
	if err != nil {
		a.printf("%v\n", err)
		return err
	}

	updated, err := a.content.ToggleLike(ctx, card.ID)
	if err = a.report(ctx, err); err != nil {
		return err
	}
	if updated.ID != "" {
		me, _ := a.store.Profile()
		a.printf("%s", formatCard(a.position(updated.ID), updated, me.ID))
	}
	return nil
}

// Delete removes one of the user's own cards after confirmation.
func (a *App) Delete(ctx context.Context, ref string) error {
	card, err := a.resolveCard(ref)
	if err != nil {
		a.printf("%v\n", err)
		return err
	}

	me, _ := a.store.Profile()
	if card.OwnerID != "" && me.ID != "" && card.OwnerID != me.ID {
		a.printf("You can only delete your own cards.\n")
		return errNotYours
	}

	ok, err := confirm(a.reader, "Delete \""+card.Title+"\"?", a.out)
	if err != nil || !ok {
		return err
	}

	return a.report(ctx, a.content.DeleteCard(ctx, card.ID))
}

// resolveCard accepts a 1-based position or an id.
func (a *App) resolveCard(ref string) (models.Card, error) {
	cards := a.store.Cards()
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(cards) {
		return cards[n-1], nil
	}
	if c, ok := a.store.Card(ref); ok {
		return c, nil
	}
	return models.Card{}, services.ErrUnknownCard
}

func (a *App) position(id string) int {
	for i, c := range a.store.Cards() {
		if c.ID == id {
			return i + 1
		}
	}
	return 0
}

// validate prints field errors and returns them.
func (a *App) validate(form any) error {
	err := a.validator.Validate(form)
	a.reportForm(err)
	return err
}

// report prints the generic failure message for a failed mutation. A
// response superseded by a newer request is not a failure.
func (a *App) report(ctx context.Context, err error) error {
	if err == nil || errors.Is(err, services.ErrStaleResponse) {
		return nil
	}
	a.log.Debug(ctx, "command failed", "error", err)
	a.Notify(models.Notification{Success: false, Message: a.tr.T(i18n.GenericFailure)})
	return err
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
