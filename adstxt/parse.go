package adstxt

import (
	"strings"

	"github.com/adspec-go/adspec/errortypes"
)

// Variable keys, in the order the serializers emit them.
const (
	keyContact                = "contact"
	keySubdomain              = "subdomain"
	keyInventoryPartnerDomain = "inventorypartnerdomain"
	keyOwnerDomain            = "ownerdomain"
	keyManagerDomain          = "managerdomain"
)

var (
	adsTxtKeys    = []string{keyContact, keySubdomain, keyInventoryPartnerDomain, keyOwnerDomain, keyManagerDomain}
	appAdsTxtKeys = []string{keyContact, keySubdomain, keyInventoryPartnerDomain}
)

// parseLines drives the line classifier shared by both file versions. Blank
// lines and comment lines are skipped, lines containing '=' are variables,
// everything else is a seller record. The first error stops the walk.
func parseLines(content string, variable func(key, value, line string) error, record func(Record)) error {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.Contains(line, "=") {
			key, value, err := splitVariable(line)
			if err != nil {
				return err
			}
			if err := variable(key, value, line); err != nil {
				return err
			}
			continue
		}

		parsed, err := ParseRecord(line)
		if err != nil {
			return err
		}
		record(parsed)
	}
	return nil
}

// splitVariable splits a variable line on its first '=' into a lowercased
// key and a cleaned value. The value loses any inline comment and is trimmed
// and lowercased; nothing left over is an error, since no variable accepts
// an empty value.
func splitVariable(line string) (key, value string, err error) {
	rawKey, rawValue, _ := strings.Cut(line, "=")
	key = strings.ToLower(strings.TrimSpace(rawKey))

	if comment := strings.IndexByte(rawValue, '#'); comment >= 0 {
		rawValue = rawValue[:comment]
	}
	value = strings.ToLower(strings.TrimSpace(rawValue))
	if value == "" {
		return "", "", &errortypes.MissingField{Field: "value", Line: errortypes.Preview(line)}
	}
	return key, value, nil
}
