package adstxt

import (
	"fmt"

	validator "github.com/asaskevich/govalidator"

	"github.com/adspec-go/adspec/errortypes"
)

// Validate lints the document without mutating it. Every finding is a
// *errortypes.Warning: the grammar places no constraints on field syntax, so
// Parse accepts documents these checks complain about. A nil result means no
// findings.
func (a *AdsTxt) Validate() []error {
	var warnings []error
	warnings = appendContactWarning(warnings, a.Contact)
	warnings = appendDomainWarning(warnings, keySubdomain, a.Subdomain)
	warnings = appendDomainWarning(warnings, keyInventoryPartnerDomain, a.InventoryPartnerDomain)
	warnings = appendDomainWarning(warnings, keyOwnerDomain, a.OwnerDomain)
	for _, manager := range a.ManagerDomains {
		warnings = appendDomainWarning(warnings, keyManagerDomain, manager.Domain)
	}
	return appendRecordWarnings(warnings, a.Records)
}

// Validate lints the document without mutating it, applying the same checks
// as AdsTxt.Validate to the fields app-ads.txt 1.0 carries.
func (a *AppAdsTxt) Validate() []error {
	var warnings []error
	warnings = appendContactWarning(warnings, a.Contact)
	warnings = appendDomainWarning(warnings, keySubdomain, a.Subdomain)
	warnings = appendDomainWarning(warnings, keyInventoryPartnerDomain, a.InventoryPartnerDomain)
	return appendRecordWarnings(warnings, a.Records)
}

func appendDomainWarning(warnings []error, field, domain string) []error {
	if domain == "" || validator.IsDNSName(domain) {
		return warnings
	}
	return append(warnings, &errortypes.Warning{
		Message:     fmt.Sprintf("%s %q is not a valid domain name", field, domain),
		WarningCode: errortypes.InvalidDomainWarningCode,
	})
}

// appendContactWarning flags contact values that are neither an email
// address nor a URL. The file format allows free text here, so this is the
// softest of the checks.
func appendContactWarning(warnings []error, contact string) []error {
	if contact == "" || validator.IsEmail(contact) || validator.IsURL(contact) {
		return warnings
	}
	return append(warnings, &errortypes.Warning{
		Message:     fmt.Sprintf("contact %q is neither an email address nor a URL", contact),
		WarningCode: errortypes.InvalidContactWarningCode,
	})
}

// appendRecordWarnings checks every record's system domain and reports
// records that repeat an earlier (domain, publisher id, relation) triple.
// Certification ids and comments do not distinguish records.
func appendRecordWarnings(warnings []error, records []Record) []error {
	type recordKey struct {
		domain      string
		publisherID string
		relation    Relation
	}

	seen := make(map[recordKey]bool, len(records))
	for _, record := range records {
		warnings = appendDomainWarning(warnings, "advertising system domain", record.Domain)

		key := recordKey{record.Domain, record.PublisherID, record.Relation}
		if seen[key] {
			warnings = append(warnings, &errortypes.Warning{
				Message:     fmt.Sprintf("duplicate record %s,%s,%s", record.Domain, record.PublisherID, record.Relation),
				WarningCode: errortypes.DuplicateRecordWarningCode,
			})
			continue
		}
		seen[key] = true
	}
	return warnings
}
