package adstxt

import (
	"strings"

	"github.com/adspec-go/adspec/errortypes"
)

// Relation is the publisher's account relationship with an advertising
// system, the third field of every seller record.
type Relation string

const (
	// RelationDirect means the publisher controls the account directly.
	RelationDirect Relation = "direct"

	// RelationReseller means the publisher has authorized another entity to
	// sell its inventory through the account.
	RelationReseller Relation = "reseller"
)

// ParseRelation converts the relation field of a seller record. Matching is
// case-insensitive and ignores surrounding whitespace; the canonical
// lowercase form is returned.
func ParseRelation(text string) (Relation, error) {
	switch Relation(strings.ToLower(strings.TrimSpace(text))) {
	case RelationDirect:
		return RelationDirect, nil
	case RelationReseller:
		return RelationReseller, nil
	}
	// TODO: correct the hint to name 'reseller'. Kept as-is for now because
	// downstream consumers match on the message text.
	return "", &errortypes.InvalidValue{
		Value:    errortypes.Preview(strings.TrimSpace(text)),
		Expected: "'direct' or 'indirect'",
	}
}

func (r Relation) String() string {
	return string(r)
}
