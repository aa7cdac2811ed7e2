// Package iso3166 validates and formats ISO 3166-1 alpha-2 country codes.
//
// It is the lookup table behind every country-scoped value in this library,
// built on the region data shipped with golang.org/x/text. Callers only ever
// see CountryCode values that passed validation.
package iso3166

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/adspec-go/adspec/errortypes"
)

// CountryCode is a validated ISO 3166-1 alpha-2 country code. The zero value
// is not a valid code; obtain one through ParseCountryCode.
type CountryCode struct {
	region language.Region
}

// ParseCountryCode validates text as an ISO 3166-1 alpha-2 country code.
// Matching is case-insensitive and ignores surrounding whitespace; anything
// but two ASCII letters naming a recognized country fails. Deprecated aliases
// are canonicalized the way the registry does (for example "UK" parses to
// "GB").
func ParseCountryCode(text string) (CountryCode, error) {
	trimmed := strings.TrimSpace(text)
	if !isAlpha2(trimmed) {
		return CountryCode{}, invalidCountryCode(text)
	}

	region, err := language.ParseRegion(trimmed)
	if err != nil {
		return CountryCode{}, invalidCountryCode(text)
	}

	// ParseRegion accepts deprecated codes as-is; Canonicalize maps them to
	// their replacements (UK to GB, ZR to CD).
	region = region.Canonicalize()
	if !region.IsCountry() || region.IsPrivateUse() {
		return CountryCode{}, invalidCountryCode(text)
	}

	return CountryCode{region: region}, nil
}

func invalidCountryCode(text string) error {
	return &errortypes.InvalidValue{
		Value:    errortypes.Preview(text),
		Expected: "an ISO 3166-1 alpha-2 country code",
	}
}

func isAlpha2(s string) bool {
	if len(s) != 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

// String returns the canonical uppercase alpha-2 form.
func (c CountryCode) String() string {
	return c.region.String()
}

// MarshalText implements encoding.TextMarshaler.
func (c CountryCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CountryCode) UnmarshalText(text []byte) error {
	parsed, err := ParseCountryCode(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
