package entity

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductID_UnmarshalNumberOrString(t *testing.T) {
	var ids []ProductID
	require.NoError(t, json.Unmarshal([]byte(`[7, "7", "sku-1"]`), &ids))

	assert.Equal(t, []ProductID{"7", "7", "sku-1"}, ids)
}

func TestProductID_Compare(t *testing.T) {
	assert.Equal(t, -1, ProductID("2").Compare("10"))
	assert.Equal(t, 1, ProductID("10").Compare("2"))
	assert.Equal(t, 0, ProductID("4").Compare("4"))
	assert.Equal(t, -1, ProductID("10").Compare("a"))
}

func TestCart_UpdateQuantityClampsAtOne(t *testing.T) {
	cart := Cart{}
	cart.Add(Product{ID: "1", BasePrice: decimal.NewFromInt(20)}, "S")

	line, ok := cart.UpdateQuantity("1", "S", -5)
	require.True(t, ok)
	assert.Equal(t, MinLineQuantity, line.Quantity)

	_, ok = cart.UpdateQuantity("1", "M", 1)
	assert.False(t, ok)
}

func TestCart_SameProductDifferentSizeIsSeparateLine(t *testing.T) {
	cart := Cart{}
	product := Product{ID: "1", BasePrice: decimal.NewFromInt(20)}
	cart.Add(product, "S")
	cart.Add(product, "M")
	cart.Add(product, "S")

	require.Len(t, cart.Lines, 2)
	assert.Equal(t, "1-S", cart.Lines[0].Key())
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, 3, cart.Count())
	assert.True(t, decimal.NewFromInt(60).Equal(cart.Total()))
}

func TestCurrencyState_MergeRatesKeepsBaseAtOne(t *testing.T) {
	state := NewCurrencyState("EUR", "USD", RateTable{"USD": decimal.RequireFromString("1.09")})

	state.MergeRates(RateTable{
		"EUR": decimal.RequireFromString("0.5"),
		"GBP": decimal.RequireFromString("0.86"),
	})

	assert.True(t, decimal.NewFromInt(1).Equal(state.Rates.Rate("EUR")))
	assert.True(t, decimal.RequireFromString("1.09").Equal(state.Rates.Rate("USD")))
	assert.True(t, decimal.RequireFromString("0.86").Equal(state.Rates.Rate("GBP")))
	assert.True(t, decimal.NewFromInt(1).Equal(state.Rates.Rate("XXX")))
}

func TestSession_ApplyPatchRequiresUser(t *testing.T) {
	session := Session{}
	email := "a@b.co"

	assert.False(t, session.ApplyPatch(UserPatch{Email: &email}))
	assert.Nil(t, session.User)
}

func TestAddress_UnmarshalAcceptsZipCode(t *testing.T) {
	var addr Address
	require.NoError(t, json.Unmarshal([]byte(`{"street":"1 Rue Rose","zipCode":"75001"}`), &addr))
	assert.Equal(t, "75001", addr.PostalCode)

	require.NoError(t, json.Unmarshal([]byte(`{"postalCode":"10115","zipCode":"75001"}`), &addr))
	assert.Equal(t, "10115", addr.PostalCode)
}

func TestValidPostalCode(t *testing.T) {
	assert.True(t, ValidPostalCode("75001"))
	assert.True(t, ValidPostalCode("SW1A 1AA"))
	assert.True(t, ValidPostalCode("123-45"))
	assert.False(t, ValidPostalCode("12"))
	assert.False(t, ValidPostalCode("12345678901"))
	assert.False(t, ValidPostalCode("75001!"))
}
