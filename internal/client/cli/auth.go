package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/around/internal/client/i18n"
	"github.com/dmitrijs2005/around/internal/client/models"
	"github.com/dmitrijs2005/around/internal/client/validation"
	"github.com/dmitrijs2005/around/internal/common"
)

// Register prompts for email, password and its confirmation. A mismatch is
// reported without contacting the backend; the outcome of the request
// itself is reported by the auth service as a notification.
func (a *App) Register(ctx context.Context) error {
	a.Navigate(models.ViewRegister)

	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirmation, err := getPassword("Repeat password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirmation)

	err = a.auth.Register(ctx, models.Registration{
		Email:    email,
		Password: string(password),
		Confirm:  string(confirmation),
	})
	a.reportForm(err)
	return err
}

// Login prompts for credentials and signs in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	err = a.auth.Login(ctx, models.Credentials{Email: email, Password: string(password)})
	if err != nil {
		a.reportForm(err)
		return err
	}

	a.printf("%s\n", a.tr.T(i18n.Welcome, email))
	return nil
}

// Logout ends the session.
func (a *App) Logout(ctx context.Context) error {
	err := a.auth.SignOut(ctx)
	if err != nil {
		a.log.Error(ctx, "sign out", "error", err)
	}
	a.printf("%s\n", a.tr.T(i18n.SignedOut))
	return err
}

// WhoAmI prints the session state.
func (a *App) WhoAmI(ctx context.Context) error {
	a.printf("%s\n", a.auth.Session())
	return nil
}

// reportForm prints field errors of a rejected form. Other errors were
// already shown as notifications.
func (a *App) reportForm(err error) {
	var ve *validation.Error
	if !errors.As(err, &ve) {
		return
	}
	if msg := ve.Field("confirmPassword"); msg != "" && len(ve.Fields) == 1 {
		a.printf("%s\n", a.tr.T(i18n.PasswordMismatch))
		return
	}
	a.printf("%s", formatValidation(ve))
}
