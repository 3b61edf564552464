package locale

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
)

// ErrUnset reports an empty, "C" or "POSIX" locale value.
var ErrUnset = errors.New("locale not set")

// Locale is a user locale.
type Locale struct {
	tag language.Tag
}

// Default is used whenever no usable locale is configured.
var Default = New(language.AmericanEnglish)

// New wraps a language tag.
func New(tag language.Tag) Locale {
	return Locale{tag: tag}
}

// Parse accepts POSIX values ("ru_RU.UTF-8", "de_DE@euro") as well as BCP 47
// tags ("pt-BR"). The codeset and modifier parts are ignored.
func Parse(value string) (Locale, error) {
	trimmed := strings.TrimSpace(value)
	if cut, _, found := strings.Cut(trimmed, "."); found {
		trimmed = cut
	}
	if cut, _, found := strings.Cut(trimmed, "@"); found {
		trimmed = cut
	}
	switch trimmed {
	case "", "C", "POSIX":
		return Locale{}, ErrUnset
	}
	tag, err := language.Parse(strings.ReplaceAll(trimmed, "_", "-"))
	if err != nil {
		return Locale{}, fmt.Errorf("parse locale %q: %w", value, err)
	}
	return New(tag), nil
}

// Tag returns the underlying language tag.
func (l Locale) Tag() language.Tag {
	return l.tag
}

// Identifier renders the locale in POSIX form using only explicitly present
// subtags: "ru_RU", "zh_Hant_TW", "fr". Inferred regions are not included,
// so "ru" stays "ru".
func (l Locale) Identifier() string {
	base, _ := l.tag.Base()
	parts := []string{base.String()}
	if script, conf := l.tag.Script(); conf == language.Exact {
		parts = append(parts, script.String())
	}
	if region, conf := l.tag.Region(); conf == language.Exact {
		parts = append(parts, region.String())
	}
	return strings.Join(parts, "_")
}

func (l Locale) String() string {
	return l.Identifier()
}

// Provider reports the locale in effect at call time.
type Provider interface {
	Current() Locale
}

// Static always reports the same locale.
type Static Locale

// Current implements Provider.
func (s Static) Current() Locale {
	return Locale(s)
}

// envKeys follow POSIX precedence for message formatting.
var envKeys = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// Environment reads the locale from LC_ALL, LC_MESSAGES and LANG, taking the
// first non-empty one. Unset or unparsable values yield Default.
type Environment struct {
	// LookupEnv defaults to os.LookupEnv.
	LookupEnv func(key string) (string, bool)
}

// Current implements Provider.
func (e Environment) Current() Locale {
	lookup := e.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	for _, key := range envKeys {
		value, ok := lookup(key)
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		parsed, err := Parse(value)
		if err != nil {
			return Default
		}
		return parsed
	}
	return Default
}

// FromConfig returns a Static provider for a configured override, or
// Environment when override is empty.
func FromConfig(override string) (Provider, error) {
	if strings.TrimSpace(override) == "" {
		return Environment{}, nil
	}
	parsed, err := Parse(override)
	if err != nil {
		return nil, err
	}
	return Static(parsed), nil
}
