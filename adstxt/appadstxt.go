package adstxt

import (
	"slices"
	"strings"

	"github.com/adspec-go/adspec/errortypes"
)

// AppAdsTxt is a parsed app-ads.txt 1.0 document. The 1.0 grammar shares the
// seller record syntax with ads.txt but allows only three variables; the 1.1
// ownership directives are rejected outright rather than ignored.
type AppAdsTxt struct {
	Contact                string
	Subdomain              string
	InventoryPartnerDomain string
	Records                []Record
}

// ParseApp converts the full text of an app-ads.txt 1.0 file into an
// AppAdsTxt. Like Parse it is all or nothing, and repeated variables follow
// last-wins merging.
func ParseApp(content string) (*AppAdsTxt, error) {
	parsed := &AppAdsTxt{}
	err := parseLines(content, parsed.setVariable, func(r Record) {
		parsed.Records = append(parsed.Records, r)
	})
	if err != nil {
		return nil, err
	}
	return parsed, nil
}

func (a *AppAdsTxt) setVariable(key, value, line string) error {
	switch key {
	case keyContact:
		a.Contact = value
	case keySubdomain:
		a.Subdomain = value
	case keyInventoryPartnerDomain:
		a.InventoryPartnerDomain = value
	case keyOwnerDomain, keyManagerDomain:
		return &errortypes.UnsupportedDirective{Directive: strings.ToUpper(key)}
	default:
		return &errortypes.UnknownField{
			Key:     key,
			Line:    errortypes.Preview(line),
			Allowed: appAdsTxtKeys,
		}
	}
	return nil
}

// String serializes the document with the same fixed variable order and
// joining rules as AdsTxt.String.
func (a *AppAdsTxt) String() string {
	var lines []string
	if a.Contact != "" {
		lines = append(lines, keyContact+"="+a.Contact)
	}
	if a.Subdomain != "" {
		lines = append(lines, keySubdomain+"="+a.Subdomain)
	}
	if a.InventoryPartnerDomain != "" {
		lines = append(lines, keyInventoryPartnerDomain+"="+a.InventoryPartnerDomain)
	}
	for _, record := range a.Records {
		lines = append(lines, record.String())
	}
	return strings.Join(lines, "\n")
}

// ToAdsTxt upgrades the document to ads.txt 1.1. The upgrade always
// succeeds: every 1.0 document is a 1.1 document with no ownership
// directives.
func (a *AppAdsTxt) ToAdsTxt() *AdsTxt {
	return &AdsTxt{
		Contact:                a.Contact,
		Subdomain:              a.Subdomain,
		InventoryPartnerDomain: a.InventoryPartnerDomain,
		Records:                slices.Clone(a.Records),
	}
}
