package bestbuy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryClause(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		q     Query
		field string
		want  string
	}{
		{
			name:  "single SKU",
			q:     Single(6354884),
			field: "sku",
			want:  "sku in(6354884)",
		},
		{
			name:  "list preserves order without dedup",
			q:     List(8880044, 2088495, 8880044),
			field: "sku",
			want:  "sku in(8880044,2088495,8880044)",
		},
		{
			name:  "single store",
			q:     Single(611),
			field: "storeId",
			want:  "storeId in(611)",
		},
		{
			name:  "digit string counts as single ID",
			q:     Filter("6354884"),
			field: "sku",
			want:  "sku in(6354884)",
		},
		{
			name:  "filter expression passes through verbatim",
			q:     Filter("salePrice<20"),
			field: "sku",
			want:  "salePrice<20",
		},
		{
			name:  "all renders empty",
			q:     All(),
			field: "sku",
			want:  "",
		},
		{
			name:  "empty filter equals all",
			q:     Filter(""),
			field: "sku",
			want:  "",
		},
		{
			name:  "empty list equals all",
			q:     List(),
			field: "sku",
			want:  "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.q.clause(tt.field))
		})
	}
}

func TestResourcePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		endpoint  string
		q         Query
		listField string
		want      string
		wantErr   bool
	}{
		{
			name:     "numeric ID is a direct lookup",
			endpoint: "products",
			q:        Single(4312001),
			want:     "/products/4312001.json",
		},
		{
			name:     "digit string is a direct lookup",
			endpoint: "products",
			q:        Filter("4312001"),
			want:     "/products/4312001.json",
		},
		{
			name:     "cat code is a direct lookup",
			endpoint: "categories",
			q:        Filter("cat00000"),
			want:     "/categories/cat00000.json",
		},
		{
			name:     "pcmcat code is a direct lookup",
			endpoint: "categories",
			q:        Filter("pcmcat209400050001"),
			want:     "/categories/pcmcat209400050001.json",
		},
		{
			name:     "abcat code is a direct lookup",
			endpoint: "categories",
			q:        Filter("abcat0101000"),
			want:     "/categories/abcat0101000.json",
		},
		{
			name:     "filter expression is parenthesized",
			endpoint: "categories",
			q:        Filter("name=Home*"),
			want:     "/categories(name=Home*)",
		},
		{
			name:     "category prefix without digits is a filter",
			endpoint: "categories",
			q:        Filter("catalog"),
			want:     "/categories(catalog)",
		},
		{
			name:     "all yields the bare collection",
			endpoint: "stores",
			q:        All(),
			want:     "/stores",
		},
		{
			name:      "list renders over the list field",
			endpoint:  "products",
			q:         List(1, 2, 3),
			listField: "sku",
			want:      "/products(sku in(1,2,3))",
		},
		{
			name:     "list rejected without a list field",
			endpoint: "categories",
			q:        List(1, 2),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resourcePath(tt.endpoint, tt.q, tt.listField)

			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
