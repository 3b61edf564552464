package units

import (
	"golang.org/x/text/message"

	"mediameta/internal/locale"
)

const (
	hertzSymbol = "Hz"
	// Russian-region users see the Cyrillic symbol. No other locale is special-cased.
	russianHertzSymbol = "Гц"
	russianLocaleID    = "ru_RU"
)

// FormatHertz renders a frequency such as a sample rate as
// "<grouped number> <symbol>" for the provider's current locale.
// A nil provider uses locale.Default.
func FormatHertz(value int64, provider locale.Provider) string {
	current := locale.Default
	if provider != nil {
		current = provider.Current()
	}
	symbol := hertzSymbol
	if current.Identifier() == russianLocaleID {
		symbol = russianHertzSymbol
	}
	return message.NewPrinter(current.Tag()).Sprintf("%d", value) + " " + symbol
}
