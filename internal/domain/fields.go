package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alimikegami/point-of-sales/product-form-service/pkg/errs"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Field names a scalar field by its wire name.
type Field string

const (
	FieldRemarks Field = "remarks"

	FieldProductID          Field = "productId"
	FieldProductName        Field = "productName"
	FieldProductDescription Field = "productDescription"
	FieldProductIngredients Field = "productIngredients"
	FieldAboutProduct       Field = "aboutProduct"
	FieldMoreInfo           Field = "moreInfo"

	FieldProductPackID   Field = "productPackId"
	FieldPackSize        Field = "packSize"
	FieldProductQuantity Field = "productQuantity"
	FieldPricePerPack    Field = "pricePerPack"

	FieldManufactureID       Field = "manufactureId"
	FieldManufactureDate     Field = "manufactureDate"
	FieldManufacturerDetails Field = "manufacturerDetails"
	FieldManufactureName     Field = "manufactureName"
	FieldManufactureInfo     Field = "manufactureInfo"

	FieldExpiryID   Field = "expiryId"
	FieldExpiryDate Field = "expiryDate"

	FieldPhotoID      Field = "photoId"
	FieldPhotoURLs    Field = "photoUrls"
	FieldPhotoAltText Field = "photoAltText"

	FieldPriceID Field = "priceId"
	FieldPrice   Field = "price"

	FieldDiscountID         Field = "discountId"
	FieldDiscountPercentage Field = "discountPercentage"
	FieldDiscountStartDate  Field = "discountStartDate"
	FieldDiscountEndDate    Field = "discountEndDate"

	FieldStockID       Field = "stockId"
	FieldProductStatus Field = "productStatus"
)

// NestedKey names one of the fixed sub-records every pack owns.
type NestedKey string

const (
	NestedManufactureInfo NestedKey = "manufactureInfo"
	NestedExpiryInfo      NestedKey = "expiryInfo"
	NestedPrices          NestedKey = "prices"
	NestedDiscounts       NestedKey = "discounts"
	NestedStockInfo       NestedKey = "stockInfo"
)

func NestedKeys() []NestedKey {
	return []NestedKey{NestedManufactureInfo, NestedExpiryInfo, NestedPrices, NestedDiscounts, NestedStockInfo}
}

func unknownField(record string, field Field) error {
	return fmt.Errorf("%w: %s has no field %q", errs.ErrUnknownField, record, field)
}

func readOnlyField(record string, field Field) error {
	return fmt.Errorf("%w: %s.%s", errs.ErrReadOnlyField, record, field)
}

func invalidValue(field Field, value any, err error) error {
	return fmt.Errorf("%w: %s cannot hold %v (%T): %v", errs.ErrInvalidFieldValue, field, value, value, err)
}

func toString(field Field, value any) (string, error) {
	if n, ok := value.(json.Number); ok {
		return n.String(), nil
	}

	s, err := cast.ToStringE(value)
	if err != nil {
		return "", invalidValue(field, value, err)
	}

	return s, nil
}

// toOptionalString maps nil to an absent value, everything else to a string.
func toOptionalString(field Field, value any) (*string, error) {
	if value == nil {
		return nil, nil
	}

	s, err := toString(field, value)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func toQuantity(field Field, value any) (uint64, error) {
	if value == nil {
		return 0, nil
	}

	if n, ok := value.(json.Number); ok {
		value = n.String()
	}

	if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
		return 0, nil
	}

	q, err := cast.ToUint64E(value)
	if err != nil {
		return 0, invalidValue(field, value, err)
	}

	return q, nil
}

func toBool(field Field, value any) (bool, error) {
	if n, ok := value.(json.Number); ok {
		value = n.String()
	}

	b, err := cast.ToBoolE(value)
	if err != nil {
		return false, invalidValue(field, value, err)
	}

	return b, nil
}

func toDecimal(field Field, value any) (decimal.Decimal, error) {
	switch v := value.(type) {
	case bool:
		return decimal.Decimal{}, invalidValue(field, value, fmt.Errorf("not a number"))
	case decimal.Decimal:
		return v, nil
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Decimal{}, invalidValue(field, value, err)
		}
		return d, nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Decimal{}, invalidValue(field, value, err)
		}
		return d, nil
	case float32, float64:
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return decimal.Decimal{}, invalidValue(field, value, err)
		}
		return decimal.NewFromFloat(f), nil
	}

	i, err := cast.ToInt64E(value)
	if err != nil {
		return decimal.Decimal{}, invalidValue(field, value, err)
	}

	return decimal.NewFromInt(i), nil
}

// toOptionalDecimal follows the form's number inputs: nil or a blank string
// clears the value.
func toOptionalDecimal(field Field, value any) (decimal.NullDecimal, error) {
	if value == nil {
		return decimal.NullDecimal{}, nil
	}

	if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
		return decimal.NullDecimal{}, nil
	}

	d, err := toDecimal(field, value)
	if err != nil {
		return decimal.NullDecimal{}, err
	}

	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}

// toPercentage defaults blank input to zero like the discount input does.
func toPercentage(field Field, value any) (decimal.Decimal, error) {
	if value == nil {
		return decimal.Zero, nil
	}

	if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
		return decimal.Zero, nil
	}

	return toDecimal(field, value)
}
