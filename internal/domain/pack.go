package domain

import (
	"fmt"

	"github.com/alimikegami/point-of-sales/product-form-service/pkg/errs"
	"github.com/shopspring/decimal"
)

// Pack is one purchasable variant of a product. It always owns exactly one of
// each sub-record and at least one photo.
type Pack struct {
	ProductPackID   ID                  `json:"productPackId"`
	ProductID       ID                  `json:"productId"`
	PackSize        string              `json:"packSize"`
	ProductQuantity uint64              `json:"productQuantity"`
	PricePerPack    decimal.NullDecimal `json:"pricePerPack"`
	Remarks         string              `json:"remarks"`
	ManufactureInfo ManufactureInfo     `json:"manufactureInfo"`
	ExpiryInfo      ExpiryInfo          `json:"expiryInfo"`
	Photos          []Photo             `json:"photos"`
	Prices          Price               `json:"prices"`
	Discounts       Discount            `json:"discounts"`
	StockInfo       StockInfo           `json:"stockInfo"`
}

type ManufactureInfo struct {
	ManufactureID       ID      `json:"manufactureId"`
	ProductPackID       ID      `json:"productPackId"`
	ManufactureDate     string  `json:"manufactureDate"`
	ManufacturerDetails string  `json:"manufacturerDetails"`
	ManufactureName     string  `json:"manufactureName"`
	ManufactureInfo     *string `json:"manufactureInfo"`
	Remarks             *string `json:"remarks"`
}

type ExpiryInfo struct {
	ExpiryID      ID     `json:"expiryId"`
	ProductPackID ID     `json:"productPackId"`
	ExpiryDate    string `json:"expiryDate"`
	Remarks       string `json:"remarks"`
}

type Price struct {
	PriceID       ID                  `json:"priceId"`
	ProductPackID ID                  `json:"productPackId"`
	Price         decimal.NullDecimal `json:"price"`
	Remarks       string              `json:"remarks"`
}

type Discount struct {
	DiscountID         ID              `json:"discountId"`
	ProductPackID      ID              `json:"productPackId"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	DiscountStartDate  string          `json:"discountStartDate"`
	DiscountEndDate    string          `json:"discountEndDate"`
	Remarks            *string         `json:"remarks"`
}

type StockInfo struct {
	StockID       ID     `json:"stockId"`
	ProductPackID ID     `json:"productPackId"`
	ProductID     ID     `json:"productId"`
	ProductName   string `json:"productName"`
	ProductStatus bool   `json:"productStatus"`
	Remarks       string `json:"remarks"`
}

// NewPack returns a pack with every sub-record present and one empty photo.
func NewPack() Pack {
	return Pack{
		Photos:    []Photo{NewPhoto()},
		Discounts: Discount{DiscountPercentage: decimal.Zero},
		StockInfo: StockInfo{ProductStatus: true},
	}
}

// Clone deep-copies the photo and URL lists; sub-records are plain values.
func (p Pack) Clone() Pack {
	c := p
	c.Photos = make([]Photo, len(p.Photos))
	for i, ph := range p.Photos {
		c.Photos[i] = ph.Clone()
	}

	return c
}

// With sets one scalar pack field. Sub-records and photos have their own
// setters.
func (p Pack) With(field Field, value any) (Pack, error) {
	next := p
	var err error

	switch field {
	case FieldPackSize:
		next.PackSize, err = toString(field, value)
	case FieldProductQuantity:
		next.ProductQuantity, err = toQuantity(field, value)
	case FieldPricePerPack:
		next.PricePerPack, err = toOptionalDecimal(field, value)
	case FieldRemarks:
		next.Remarks, err = toString(field, value)
	case FieldProductPackID, FieldProductID:
		err = readOnlyField("pack", field)
	default:
		err = unknownField("pack", field)
	}

	if err != nil {
		return p, err
	}

	return next, nil
}

// WithNested sets field on the sub-record named by key.
func (p Pack) WithNested(key NestedKey, field Field, value any) (Pack, error) {
	next := p
	var err error

	switch key {
	case NestedManufactureInfo:
		next.ManufactureInfo, err = p.ManufactureInfo.With(field, value)
	case NestedExpiryInfo:
		next.ExpiryInfo, err = p.ExpiryInfo.With(field, value)
	case NestedPrices:
		next.Prices, err = p.Prices.With(field, value)
	case NestedDiscounts:
		next.Discounts, err = p.Discounts.With(field, value)
	case NestedStockInfo:
		next.StockInfo, err = p.StockInfo.With(field, value)
	default:
		err = fmt.Errorf("%w: pack has no sub-record %q", errs.ErrUnknownField, key)
	}

	if err != nil {
		return p, err
	}

	return next, nil
}

func (m ManufactureInfo) With(field Field, value any) (ManufactureInfo, error) {
	next := m
	var err error

	switch field {
	case FieldManufactureDate:
		next.ManufactureDate, err = toString(field, value)
	case FieldManufacturerDetails:
		next.ManufacturerDetails, err = toString(field, value)
	case FieldManufactureName:
		next.ManufactureName, err = toString(field, value)
	case FieldManufactureInfo:
		next.ManufactureInfo, err = toOptionalString(field, value)
	case FieldRemarks:
		next.Remarks, err = toOptionalString(field, value)
	case FieldManufactureID, FieldProductPackID:
		err = readOnlyField(string(NestedManufactureInfo), field)
	default:
		err = unknownField(string(NestedManufactureInfo), field)
	}

	if err != nil {
		return m, err
	}

	return next, nil
}

func (e ExpiryInfo) With(field Field, value any) (ExpiryInfo, error) {
	next := e
	var err error

	switch field {
	case FieldExpiryDate:
		next.ExpiryDate, err = toString(field, value)
	case FieldRemarks:
		next.Remarks, err = toString(field, value)
	case FieldExpiryID, FieldProductPackID:
		err = readOnlyField(string(NestedExpiryInfo), field)
	default:
		err = unknownField(string(NestedExpiryInfo), field)
	}

	if err != nil {
		return e, err
	}

	return next, nil
}

func (p Price) With(field Field, value any) (Price, error) {
	next := p
	var err error

	switch field {
	case FieldPrice:
		next.Price, err = toOptionalDecimal(field, value)
	case FieldRemarks:
		next.Remarks, err = toString(field, value)
	case FieldPriceID, FieldProductPackID:
		err = readOnlyField(string(NestedPrices), field)
	default:
		err = unknownField(string(NestedPrices), field)
	}

	if err != nil {
		return p, err
	}

	return next, nil
}

func (d Discount) With(field Field, value any) (Discount, error) {
	next := d
	var err error

	switch field {
	case FieldDiscountPercentage:
		next.DiscountPercentage, err = toPercentage(field, value)
	case FieldDiscountStartDate:
		next.DiscountStartDate, err = toString(field, value)
	case FieldDiscountEndDate:
		next.DiscountEndDate, err = toString(field, value)
	case FieldRemarks:
		next.Remarks, err = toOptionalString(field, value)
	case FieldDiscountID, FieldProductPackID:
		err = readOnlyField(string(NestedDiscounts), field)
	default:
		err = unknownField(string(NestedDiscounts), field)
	}

	if err != nil {
		return d, err
	}

	return next, nil
}

func (s StockInfo) With(field Field, value any) (StockInfo, error) {
	next := s
	var err error

	switch field {
	case FieldProductName:
		next.ProductName, err = toString(field, value)
	case FieldProductStatus:
		next.ProductStatus, err = toBool(field, value)
	case FieldRemarks:
		next.Remarks, err = toString(field, value)
	case FieldStockID, FieldProductPackID, FieldProductID:
		err = readOnlyField(string(NestedStockInfo), field)
	default:
		err = unknownField(string(NestedStockInfo), field)
	}

	if err != nil {
		return s, err
	}

	return next, nil
}
