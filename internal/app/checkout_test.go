package app

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutForm_Validate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*CheckoutForm)
		field string
	}{
		{name: "valid", edit: func(*CheckoutForm) {}},
		{name: "missing name", edit: func(f *CheckoutForm) { f.Name = "" }, field: FieldName},
		{name: "missing phone", edit: func(f *CheckoutForm) { f.Phone = "" }, field: FieldPhone},
		{name: "long phone", edit: func(f *CheckoutForm) { f.Phone = "017123456789" }, field: FieldPhone},
		{name: "missing district", edit: func(f *CheckoutForm) { f.District = "" }, field: FieldDistrict},
		{name: "unknown district", edit: func(f *CheckoutForm) { f.District = "Dhaka" }, field: FieldDistrict},
		{name: "missing address", edit: func(f *CheckoutForm) { f.Address = "" }, field: FieldAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.edit(&f)
			err := f.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestCheckoutForm_Normalize(t *testing.T) {
	f := CheckoutForm{Name: "  Karim ", Phone: " 01800000000", District: "সিলেট ", Address: "\tZindabazar\n"}.Normalize()
	assert.Equal(t, CheckoutForm{Name: "Karim", Phone: "01800000000", District: "সিলেট", Address: "Zindabazar"}, f)
	assert.NoError(t, f.Validate())
}

func TestDistricts(t *testing.T) {
	assert.Len(t, Districts, 64)
	assert.True(t, slices.IsSorted(Districts))
	assert.True(t, IsDistrict("চট্টগ্রাম"))
	assert.False(t, IsDistrict("Chittagong"))
}

func TestTotal(t *testing.T) {
	assert.Equal(t, 1210, Total(1100, 110))
}
