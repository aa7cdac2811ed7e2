package adstxt

import (
	"slices"
	"strings"

	"github.com/adspec-go/adspec/errortypes"
)

// AdsTxt is a parsed ads.txt 1.1 document. The scalar variables hold their
// cleaned values, with the empty string meaning the variable never appeared.
// ManagerDomains and Records keep their source order.
type AdsTxt struct {
	Contact                string
	Subdomain              string
	InventoryPartnerDomain string
	OwnerDomain            string
	ManagerDomains         []ManagerDomain
	Records                []Record
}

// Parse converts the full text of an ads.txt 1.1 file into an AdsTxt.
// Parsing is all or nothing: the first invalid line aborts and no partial
// document is returned. An empty input parses to an empty document.
//
// Repeated scalar variables follow the file format's merge rules: the last
// contact, subdomain and inventorypartnerdomain win, the first ownerdomain
// wins, and every managerdomain accumulates.
func Parse(content string) (*AdsTxt, error) {
	parsed := &AdsTxt{}
	err := parseLines(content, parsed.setVariable, func(r Record) {
		parsed.Records = append(parsed.Records, r)
	})
	if err != nil {
		return nil, err
	}
	return parsed, nil
}

func (a *AdsTxt) setVariable(key, value, line string) error {
	switch key {
	case keyContact:
		a.Contact = value
	case keySubdomain:
		a.Subdomain = value
	case keyInventoryPartnerDomain:
		a.InventoryPartnerDomain = value
	case keyOwnerDomain:
		if a.OwnerDomain == "" {
			a.OwnerDomain = value
		}
	case keyManagerDomain:
		manager, err := ParseManagerDomain(value)
		if err != nil {
			return err
		}
		a.ManagerDomains = append(a.ManagerDomains, manager)
	default:
		return &errortypes.UnknownField{
			Key:     key,
			Line:    errortypes.Preview(line),
			Allowed: adsTxtKeys,
		}
	}
	return nil
}

// String serializes the document: scalar variables in a fixed order, then
// one managerdomain line per entry, then the seller records, both in source
// order. Unset variables produce no line and the result has no trailing
// newline, so an empty document renders as "".
func (a *AdsTxt) String() string {
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
	if a.OwnerDomain != "" {
		lines = append(lines, keyOwnerDomain+"="+a.OwnerDomain)
	}
	for _, manager := range a.ManagerDomains {
		lines = append(lines, keyManagerDomain+"="+manager.String())
	}
	for _, record := range a.Records {
		lines = append(lines, record.String())
	}
	return strings.Join(lines, "\n")
}

// ToAppAdsTxt downgrades the document to app-ads.txt 1.0. The conversion
// fails if an ads.txt 1.1-only directive is populated, because dropping it
// silently would change what the document authorizes.
func (a *AdsTxt) ToAppAdsTxt() (*AppAdsTxt, error) {
	if a.OwnerDomain != "" {
		return nil, &errortypes.ConversionRejected{Field: keyOwnerDomain}
	}
	if len(a.ManagerDomains) > 0 {
		return nil, &errortypes.ConversionRejected{Field: keyManagerDomain}
	}
	return &AppAdsTxt{
		Contact:                a.Contact,
		Subdomain:              a.Subdomain,
		InventoryPartnerDomain: a.InventoryPartnerDomain,
		Records:                slices.Clone(a.Records),
	}, nil
}
