package intl

import (
	"context"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/crewdeck/crewdeck/pkg/constants"
)

type SupportedLanguage struct {
	Code        string
	VerboseName string
	Tag         language.Tag
}

var (
	// allSupportedLanguages is the master list of languages the service ships
	// locale files for.
	allSupportedLanguages = []SupportedLanguage{
		{
			Code:        "en",
			VerboseName: "English",
			Tag:         language.English,
		},
		{
			Code:        "de",
			VerboseName: "Deutsch",
			Tag:         language.German,
		},
	}

	SupportedLanguages = allSupportedLanguages
)

// GetSupportedLanguages returns a filtered list of supported languages based
// on the whitelist. A nil or empty whitelist returns all languages.
func GetSupportedLanguages(whitelist []string) []SupportedLanguage {
	if len(whitelist) == 0 {
		return allSupportedLanguages
	}

	whitelistMap := make(map[string]bool)
	for _, code := range whitelist {
		whitelistMap[code] = true
	}

	filtered := make([]SupportedLanguage, 0, len(whitelist))
	for _, lang := range allSupportedLanguages {
		if whitelistMap[lang.Code] {
			filtered = append(filtered, lang)
		}
	}

	return filtered
}

func WithLocalizer(ctx context.Context, localizer *i18n.Localizer) context.Context {
	return context.WithValue(ctx, constants.LocalizerKey, localizer)
}

func UseLocalizer(ctx context.Context) (*i18n.Localizer, bool) {
	localizer, ok := ctx.Value(constants.LocalizerKey).(*i18n.Localizer)
	return localizer, ok
}

// MustT localizes a message ID, panicking when no localizer is present.
// Reserved for request paths where ProvideLocalizer is guaranteed to run.
func MustT(ctx context.Context, messageID string) string {
	localizer, ok := UseLocalizer(ctx)
	if !ok {
		panic("localizer not found in context")
	}
	return localizer.MustLocalize(&i18n.LocalizeConfig{MessageID: messageID})
}

// T localizes a message ID, falling back to the ID itself when the localizer
// is absent or the message is unknown.
func T(ctx context.Context, messageID string) string {
	localizer, ok := UseLocalizer(ctx)
	if !ok {
		return messageID
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return msg
}
