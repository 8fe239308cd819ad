// Package i18n holds the user-facing notification texts in English and
// Spanish and picks the closest match for a requested language.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. The English text doubles as the key.
const (
	Registered       = "Success! You are now registered."
	GenericFailure   = "Oops, something went wrong! Please try again."
	BadCredentials   = "Incorrect email or password."
	SignInFailed     = "Oops, something went wrong while signing in. Please try again."
	PasswordMismatch = "Passwords do not match."
	SignedOut        = "You have been signed out."
	Saving           = "Saving..."
	Creating         = "Creating..."
	Deleting         = "Deleting..."
	Welcome          = "Signed in as %s."
	CardCount        = "%d cards"
)

var supported = []language.Tag{language.English, language.Spanish}

var spanish = map[string]string{
	Registered:       "¡Correcto! Ya estás registrado.",
	GenericFailure:   "Uy, algo salió mal. Por favor, inténtalo de nuevo.",
	BadCredentials:   "Correo o contraseña incorrectos.",
	SignInFailed:     "Uy, algo salió mal al iniciar sesión. Inténtalo de nuevo.",
	PasswordMismatch: "Las contraseñas no coinciden.",
	SignedOut:        "Has cerrado sesión.",
	Saving:           "Guardando...",
	Creating:         "Creando...",
	Deleting:         "Eliminando...",
	Welcome:          "Sesión iniciada como %s.",
	CardCount:        "%d tarjetas",
}

var (
	cat     = build()
	matcher = language.NewMatcher(supported)
)

func build() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, es := range spanish {
		mustSet(b, language.English, key, key)
		mustSet(b, language.Spanish, key, es)
	}
	return b
}

func mustSet(b *catalog.Builder, tag language.Tag, key, msg string) {
	if err := b.SetString(tag, key, msg); err != nil {
		panic(fmt.Sprintf("i18n: %s/%q: %v", tag, key, err))
	}
}

// Translator renders message keys in one language.
type Translator struct {
	tag language.Tag
	p   *message.Printer
}

// New returns a Translator for the best supported match of lang, which may
// be a BCP 47 tag or an Accept-Language style list ("es-MX,en;q=0.5").
// Unknown or empty input falls back to English.
func New(lang string) *Translator {
	tag, _ := language.MatchStrings(matcher, lang)
	base, _ := tag.Base()
	tag = language.Make(base.String())
	return &Translator{tag: tag, p: message.NewPrinter(tag, message.Catalog(cat))}
}

// Language is the selected language tag.
func (t *Translator) Language() language.Tag {
	return t.tag
}

// T renders key with optional format arguments.
func (t *Translator) T(key string, args ...any) string {
	return t.p.Sprintf(key, args...)
}
