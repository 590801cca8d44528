package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type priced struct {
	Name  string          `validate:"required"`
	Price decimal.Decimal `validate:"decimal_gte0"`
	Kind  string          `validate:"catalog_kind"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		in        priced
		wantField string
		wantTag   string
	}{
		{
			name: "valid",
			in:   priced{Name: "Tee", Price: decimal.RequireFromString("9.99"), Kind: "type"},
		},
		{
			name:      "zero price allowed, missing name",
			in:        priced{Price: decimal.Zero, Kind: "platform"},
			wantField: "priced.Name",
			wantTag:   "required",
		},
		{
			name:      "negative price",
			in:        priced{Name: "Tee", Price: decimal.NewFromInt(-1), Kind: "supplier"},
			wantField: "priced.Price",
			wantTag:   "decimal_gte0",
		},
		{
			name:      "unknown catalog kind",
			in:        priced{Name: "Tee", Kind: "colour"},
			wantField: "priced.Kind",
			wantTag:   "catalog_kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(&tt.in)
			if tt.wantTag == "" {
				assert.Empty(t, errs)
				return
			}
			require.NotEmpty(t, errs)
			assert.Equal(t, tt.wantField, errs[0].FailedField)
			assert.Equal(t, tt.wantTag, errs[0].Tag)
		})
	}
}

func TestFirstError(t *testing.T) {
	assert.NoError(t, FirstError(&priced{Name: "Tee", Kind: "type"}))

	err := FirstError(&priced{Kind: "type"})
	assert.EqualError(t, err, "Validation failed: Field 'priced.Name' failed on tag 'required'")

	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "required", verr.Tag)
}
