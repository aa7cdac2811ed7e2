package adstxt

import (
	"strings"

	"github.com/adspec-go/adspec/errortypes"
)

// Record is one seller line of an ads.txt or app-ads.txt file: the
// advertising system's domain, the publisher's account id on that system,
// the account relationship, and an optional certification authority id. A
// trailing comment survives parsing so the document re-serializes
// faithfully. An empty CertID or Comment means the segment was absent.
type Record struct {
	Domain      string
	PublisherID string
	Relation    Relation
	CertID      string
	Comment     string
}

// ParseRecord converts one data line into a Record. Everything after the
// first '#' is the comment; the rest of the line holds three or four
// comma-separated fields. The domain and publisher id are lowercased, the
// certification authority id and the comment are kept as written. A fourth
// field absorbs any further commas, so an overlong line still round-trips.
func ParseRecord(line string) (Record, error) {
	data, comment, _ := strings.Cut(line, "#")

	fields := strings.SplitN(data, ",", 4)
	for len(fields) < 3 {
		fields = append(fields, "")
	}

	record := Record{
		Domain:      strings.ToLower(strings.TrimSpace(fields[0])),
		PublisherID: strings.ToLower(strings.TrimSpace(fields[1])),
		Comment:     strings.TrimSpace(comment),
	}
	if record.Domain == "" {
		return Record{}, &errortypes.MissingField{Field: "domain", Line: errortypes.Preview(line)}
	}
	if record.PublisherID == "" {
		return Record{}, &errortypes.MissingField{Field: "publisher id", Line: errortypes.Preview(line)}
	}
	if strings.TrimSpace(fields[2]) == "" {
		return Record{}, &errortypes.MissingField{Field: "relation", Line: errortypes.Preview(line)}
	}

	relation, err := ParseRelation(fields[2])
	if err != nil {
		return Record{}, err
	}
	record.Relation = relation

	if len(fields) == 4 {
		record.CertID = strings.TrimSpace(fields[3])
	}
	return record, nil
}

// String renders the record as a single data line.
func (r Record) String() string {
	line := r.Domain + "," + r.PublisherID + "," + r.Relation.String()
	if r.CertID != "" {
		line += "," + r.CertID
	}
	if r.Comment != "" {
		line += " # " + r.Comment
	}
	return line
}
