package adstxt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adspec-go/adspec/errortypes"
)

func TestParseRelation(t *testing.T) {
	tests := []struct {
		name    string
		give    string
		want    Relation
		wantErr bool
	}{
		{
			name: "direct",
			give: "direct",
			want: RelationDirect,
		},
		{
			name: "reseller",
			give: "reseller",
			want: RelationReseller,
		},
		{
			name: "uppercase",
			give: "DIRECT",
			want: RelationDirect,
		},
		{
			name: "mixed_case_padded",
			give: "  Reseller\t",
			want: RelationReseller,
		},
		{
			name:    "indirect_is_not_a_keyword",
			give:    "indirect",
			wantErr: true,
		},
		{
			name:    "empty",
			give:    "",
			wantErr: true,
		},
		{
			name:    "unknown_keyword",
			give:    "owner",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			relation, err := ParseRelation(tt.give)
			if tt.wantErr {
				var invalid *errortypes.InvalidValue
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, "'direct' or 'indirect'", invalid.Expected)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, relation)
		})
	}
}

func TestRelationString(t *testing.T) {
	assert.Equal(t, "direct", RelationDirect.String())
	assert.Equal(t, "reseller", RelationReseller.String())
}
