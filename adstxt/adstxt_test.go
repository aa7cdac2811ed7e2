package adstxt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adspec-go/adspec/errortypes"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		giveContent string
		want        *AdsTxt
		wantErrCode int
	}{
		{
			name:        "empty_input",
			giveContent: "",
			want:        &AdsTxt{},
		},
		{
			name:        "blank_and_comment_lines_only",
			giveContent: "\n   \n# nothing to see\n\t\n# here either",
			want:        &AdsTxt{},
		},
		{
			name:        "single_record",
			giveContent: "greenadexchange.com, XF7342, DIRECT, 5jyxf8k54",
			want: &AdsTxt{
				Records: []Record{
					{Domain: "greenadexchange.com", PublisherID: "xf7342", Relation: RelationDirect, CertID: "5jyxf8k54"},
				},
			},
		},
		{
			name: "full_document",
			giveContent: strings.Join([]string{
				"# example.com seller declarations",
				"CONTACT=AdOps@Example.com",
				"subdomain=UK.example.com",
				"inventorypartnerdomain=partner.example.com",
				"",
				"ownerdomain=example.com # corporate root",
				"OWNERDOMAIN=other.example.com",
				"managerdomain=manager.example.com",
				"managerdomain=Sales-House.example.fr, FR",
				"",
				"greenadexchange.com, XF7342, DIRECT, 5jyxf8k54",
				"silverssp.com, 9675, RESELLER # EMEA",
			}, "\n"),
			want: &AdsTxt{
				Contact:                "adops@example.com",
				Subdomain:              "uk.example.com",
				InventoryPartnerDomain: "partner.example.com",
				OwnerDomain:            "example.com",
				ManagerDomains: []ManagerDomain{
					{Domain: "manager.example.com"},
					{Domain: "sales-house.example.fr", CountryCode: mustCountryCode("fr")},
				},
				Records: []Record{
					{Domain: "greenadexchange.com", PublisherID: "xf7342", Relation: RelationDirect, CertID: "5jyxf8k54"},
					{Domain: "silverssp.com", PublisherID: "9675", Relation: RelationReseller, Comment: "EMEA"},
				},
			},
		},
		{
			name:        "crlf_line_endings",
			giveContent: "contact=ads@example.com\r\nexample.com,1,direct\r\n",
			want: &AdsTxt{
				Contact: "ads@example.com",
				Records: []Record{
					{Domain: "example.com", PublisherID: "1", Relation: RelationDirect},
				},
			},
		},
		{
			name:        "keys_and_values_lowercased",
			giveContent: "ConTact=Ads@Example.COM",
			want:        &AdsTxt{Contact: "ads@example.com"},
		},
		{
			name:        "last_contact_wins",
			giveContent: "contact=first@example.com\ncontact=second@example.com",
			want:        &AdsTxt{Contact: "second@example.com"},
		},
		{
			name:        "first_ownerdomain_wins",
			giveContent: "ownerdomain=example.com\nownerdomain=other.example.com",
			want:        &AdsTxt{OwnerDomain: "example.com"},
		},
		{
			name: "records_keep_source_order",
			giveContent: strings.Join([]string{
				"# systems",
				"first.com,1,direct",
				"",
				"# more systems",
				"second.com,2,reseller",
				"",
				"third.com,3,direct",
				"# done",
			}, "\n"),
			want: &AdsTxt{
				Records: []Record{
					{Domain: "first.com", PublisherID: "1", Relation: RelationDirect},
					{Domain: "second.com", PublisherID: "2", Relation: RelationReseller},
					{Domain: "third.com", PublisherID: "3", Relation: RelationDirect},
				},
			},
		},
		{
			name:        "unknown_variable",
			giveContent: "pagecat=IAB1",
			wantErrCode: errortypes.UnknownFieldErrorCode,
		},
		{
			name:        "empty_variable_value",
			giveContent: "contact=",
			wantErrCode: errortypes.MissingFieldErrorCode,
		},
		{
			name:        "comment_only_variable_value",
			giveContent: "contact= # to be filled in",
			wantErrCode: errortypes.MissingFieldErrorCode,
		},
		{
			name:        "managerdomain_trailing_comma",
			giveContent: "managerdomain=manager.example.com,",
			wantErrCode: errortypes.InvalidValueErrorCode,
		},
		{
			name:        "record_with_unknown_relation",
			giveContent: "example.com,1,indirect",
			wantErrCode: errortypes.InvalidValueErrorCode,
		},
		{
			name:        "record_missing_relation",
			giveContent: "example.com,1",
			wantErrCode: errortypes.MissingFieldErrorCode,
		},
		{
			name:        "record_with_equals_in_comment_is_a_variable",
			giveContent: "a.com,1,direct # flight=2026",
			wantErrCode: errortypes.UnknownFieldErrorCode,
		},
		{
			name:        "aborts_on_first_invalid_line",
			giveContent: "bogus=1\ncontact=ads@example.com",
			wantErrCode: errortypes.UnknownFieldErrorCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := Parse(tt.giveContent)
			if tt.wantErrCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantErrCode, errortypes.ReadCode(err))
				assert.Nil(t, parsed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, parsed)
		})
	}
}

func TestParseUnknownVariableDetails(t *testing.T) {
	_, err := Parse("pagecat=IAB1")

	var unknown *errortypes.UnknownField
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "pagecat", unknown.Key)
	assert.Equal(t, []string{"contact", "subdomain", "inventorypartnerdomain", "ownerdomain", "managerdomain"}, unknown.Allowed)
}

func TestAdsTxtString(t *testing.T) {
	tests := []struct {
		name string
		give *AdsTxt
		want string
	}{
		{
			name: "empty_document",
			give: &AdsTxt{},
			want: "",
		},
		{
			name: "variables_render_in_fixed_order",
			give: &AdsTxt{
				OwnerDomain:            "example.com",
				Contact:                "ads@example.com",
				InventoryPartnerDomain: "partner.example.com",
				Subdomain:              "uk.example.com",
			},
			want: strings.Join([]string{
				"contact=ads@example.com",
				"subdomain=uk.example.com",
				"inventorypartnerdomain=partner.example.com",
				"ownerdomain=example.com",
			}, "\n"),
		},
		{
			name: "full_document",
			give: &AdsTxt{
				Contact:     "ads@example.com",
				OwnerDomain: "example.com",
				ManagerDomains: []ManagerDomain{
					{Domain: "manager.example.com", CountryCode: mustCountryCode("us")},
					{Domain: "global-manager.example.com"},
				},
				Records: []Record{
					{Domain: "a.com", PublisherID: "1", Relation: RelationDirect, CertID: "c1"},
					{Domain: "b.com", PublisherID: "2", Relation: RelationReseller, Comment: "EMEA"},
				},
			},
			want: strings.Join([]string{
				"contact=ads@example.com",
				"ownerdomain=example.com",
				"managerdomain=manager.example.com,US",
				"managerdomain=global-manager.example.com",
				"a.com,1,direct,c1",
				"b.com,2,reseller # EMEA",
			}, "\n"),
		},
		{
			name: "records_only",
			give: &AdsTxt{
				Records: []Record{{Domain: "a.com", PublisherID: "1", Relation: RelationDirect}},
			},
			want: "a.com,1,direct",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.give.String())
		})
	}
}

func TestParseStringRoundTrip(t *testing.T) {
	content := strings.Join([]string{
		"# maintained by ad ops",
		"CONTACT=AdOps@Example.com",
		"subdomain=divisions.example.com",
		"OWNERDOMAIN=example.com",
		"managerdomain=manager.example.com, US",
		"",
		"greenadexchange.com, XF7342, DIRECT, 5jyxf8k54 # banner",
		"silverssp.com, 9675, RESELLER",
	}, "\n")

	parsed, err := Parse(content)
	require.NoError(t, err)

	reparsed, err := Parse(parsed.String())
	require.NoError(t, err)
	assert.Equal(t, parsed, reparsed)
}

func TestAdsTxtToAppAdsTxt(t *testing.T) {
	tests := []struct {
		name      string
		give      *AdsTxt
		want      *AppAdsTxt
		wantField string
	}{
		{
			name: "shared_fields_copied",
			give: &AdsTxt{
				Contact:                "ads@example.com",
				Subdomain:              "uk.example.com",
				InventoryPartnerDomain: "partner.example.com",
				Records: []Record{
					{Domain: "a.com", PublisherID: "1", Relation: RelationDirect},
				},
			},
			want: &AppAdsTxt{
				Contact:                "ads@example.com",
				Subdomain:              "uk.example.com",
				InventoryPartnerDomain: "partner.example.com",
				Records: []Record{
					{Domain: "a.com", PublisherID: "1", Relation: RelationDirect},
				},
			},
		},
		{
			name:      "ownerdomain_blocks_conversion",
			give:      &AdsTxt{OwnerDomain: "example.com"},
			wantField: "ownerdomain",
		},
		{
			name:      "managerdomain_blocks_conversion",
			give:      &AdsTxt{ManagerDomains: []ManagerDomain{{Domain: "manager.example.com"}}},
			wantField: "managerdomain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			converted, err := tt.give.ToAppAdsTxt()
			if tt.wantField != "" {
				var rejected *errortypes.ConversionRejected
				require.ErrorAs(t, err, &rejected)
				assert.Equal(t, tt.wantField, rejected.Field)
				assert.Nil(t, converted)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, converted)
		})
	}
}

func TestToAppAdsTxtCopiesRecords(t *testing.T) {
	original := &AdsTxt{
		Records: []Record{{Domain: "a.com", PublisherID: "1", Relation: RelationDirect}},
	}

	converted, err := original.ToAppAdsTxt()
	require.NoError(t, err)

	converted.Records[0].Domain = "changed.com"
	assert.Equal(t, "a.com", original.Records[0].Domain)
}

func TestConversionRoundTrip(t *testing.T) {
	original, err := Parse("contact=ads@example.com\nexample.com,1,direct")
	require.NoError(t, err)

	converted, err := original.ToAppAdsTxt()
	require.NoError(t, err)
	assert.Equal(t, original, converted.ToAdsTxt())
}
