package domain

import (
	"encoding/json"
	"testing"

	"github.com/alimikegami/point-of-sales/product-form-service/pkg/errs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDJSON(t *testing.T) {
	var unset ID
	b, err := json.Marshal(unset)
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
	assert.False(t, unset.IsSet())

	var id ID
	require.NoError(t, json.Unmarshal([]byte(`42`), &id))
	assert.True(t, id.IsSet())
	b, err = json.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, "42", string(b))

	require.NoError(t, json.Unmarshal([]byte(`null`), &id))
	assert.False(t, id.IsSet())

	uuidID, err := AssignedID(json.RawMessage(`"0d2f3c1e"`))
	require.NoError(t, err)
	assert.Equal(t, `"0d2f3c1e"`, uuidID.String())

	_, err = AssignedID(json.RawMessage(`{nope`))
	assert.ErrorIs(t, err, errs.ErrInvalidFieldValue)
}

func TestProductWith(t *testing.T) {
	p, err := NewProduct().With(FieldProductName, "Organic Carrot")
	require.NoError(t, err)
	assert.Equal(t, "Organic Carrot", p.ProductName)

	_, err = p.With(FieldProductID, "7")
	assert.ErrorIs(t, err, errs.ErrReadOnlyField)

	same, err := p.With("colour", "orange")
	assert.ErrorIs(t, err, errs.ErrUnknownField)
	assert.Equal(t, p, same)
}

func TestPackWithCoercesValues(t *testing.T) {
	p := NewPack()

	p, err := p.With(FieldProductQuantity, json.Number("150"))
	require.NoError(t, err)
	assert.Equal(t, uint64(150), p.ProductQuantity)

	p, err = p.With(FieldPricePerPack, json.Number("80.50"))
	require.NoError(t, err)
	require.True(t, p.PricePerPack.Valid)
	assert.True(t, p.PricePerPack.Decimal.Equal(decimal.RequireFromString("80.5")))

	p, err = p.With(FieldPricePerPack, nil)
	require.NoError(t, err)
	assert.False(t, p.PricePerPack.Valid)

	_, err = p.With(FieldProductQuantity, -3)
	assert.ErrorIs(t, err, errs.ErrInvalidFieldValue)

	_, err = p.With(FieldPricePerPack, "eighty")
	assert.ErrorIs(t, err, errs.ErrInvalidFieldValue)

	_, err = p.With(FieldProductPackID, 1)
	assert.ErrorIs(t, err, errs.ErrReadOnlyField)
}

func TestPackWithNested(t *testing.T) {
	p := NewPack()

	p, err := p.WithNested(NestedStockInfo, FieldProductStatus, "false")
	require.NoError(t, err)
	assert.False(t, p.StockInfo.ProductStatus)

	p, err = p.WithNested(NestedDiscounts, FieldDiscountPercentage, "")
	require.NoError(t, err)
	assert.True(t, p.Discounts.DiscountPercentage.IsZero())

	p, err = p.WithNested(NestedManufactureInfo, FieldManufactureInfo, "batch 7")
	require.NoError(t, err)
	require.NotNil(t, p.ManufactureInfo.ManufactureInfo)
	assert.Equal(t, "batch 7", *p.ManufactureInfo.ManufactureInfo)

	_, err = p.WithNested("warranty", FieldRemarks, "x")
	assert.ErrorIs(t, err, errs.ErrUnknownField)

	_, err = p.WithNested(NestedPrices, FieldPriceID, "x")
	assert.ErrorIs(t, err, errs.ErrReadOnlyField)
}

func TestNewPackDefaultsMarshal(t *testing.T) {
	b, err := json.Marshal(NewPack())
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))

	assert.Nil(t, m["productPackId"])
	assert.Nil(t, m["pricePerPack"])
	assert.Equal(t, float64(0), m["productQuantity"])

	discounts := m["discounts"].(map[string]any)
	assert.Equal(t, float64(0), discounts["discountPercentage"])
	assert.Nil(t, discounts["remarks"])

	photos := m["photos"].([]any)
	require.Len(t, photos, 1)
	assert.Equal(t, []any{""}, photos[0].(map[string]any)["photoUrls"])

	assert.Equal(t, true, m["stockInfo"].(map[string]any)["productStatus"])
}

func TestPackCloneDoesNotAlias(t *testing.T) {
	p := NewPack()
	c := p.Clone()
	c.Photos[0].PhotoURLs[0] = "https://a"

	assert.Equal(t, "", p.Photos[0].PhotoURLs[0])
}
