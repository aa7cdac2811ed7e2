package adstxt

import (
	"strings"

	"github.com/adspec-go/adspec/errortypes"
	"github.com/adspec-go/adspec/iso3166"
)

// ManagerDomain is one MANAGERDOMAIN declaration of an ads.txt 1.1 file: the
// root domain of an exclusive management system, optionally scoped to a
// single country. A nil CountryCode means the declaration applies globally.
type ManagerDomain struct {
	Domain      string
	CountryCode *iso3166.CountryCode
}

// ParseManagerDomain converts the value of a managerdomain variable. The
// optional country code follows the domain after a comma; a trailing comma
// with nothing behind it is rejected, not swallowed.
func ParseManagerDomain(text string) (ManagerDomain, error) {
	domain, code, hasCode := strings.Cut(text, ",")
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return ManagerDomain{}, &errortypes.InvalidValue{
			Value:    errortypes.Preview(strings.TrimSpace(text)),
			Expected: "a domain, optionally followed by a comma and a country code",
		}
	}
	if !hasCode {
		return ManagerDomain{Domain: domain}, nil
	}

	country, err := iso3166.ParseCountryCode(code)
	if err != nil {
		return ManagerDomain{}, err
	}
	return ManagerDomain{Domain: domain, CountryCode: &country}, nil
}

// String renders the declaration the way it appears after a managerdomain=
// prefix. Country codes render in their canonical uppercase form.
func (m ManagerDomain) String() string {
	if m.CountryCode == nil {
		return m.Domain
	}
	return m.Domain + "," + m.CountryCode.String()
}
