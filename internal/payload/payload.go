// Package payload projects a form tree into the body accepted by the
// aggregate creation endpoint.
package payload

import (
	"github.com/alimikegami/point-of-sales/product-form-service/internal/domain"
	"github.com/shopspring/decimal"
)

type SubmissionPayload struct {
	Product      Product `json:"product"`
	ProductPacks []Pack  `json:"productPacks"`
}

type Product struct {
	ProductID          domain.ID `json:"productId"`
	ProductName        string    `json:"productName"`
	ProductDescription string    `json:"productDescription"`
	ProductIngredients string    `json:"productIngredients"`
	AboutProduct       string    `json:"aboutProduct"`
	MoreInfo           string    `json:"moreInfo"`
	Remarks            string    `json:"remarks"`
}

type Pack struct {
	ProductPackID   domain.ID           `json:"productPackId"`
	ProductID       domain.ID           `json:"productId"`
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
	ManufactureID       domain.ID `json:"manufactureId"`
	ProductPackID       domain.ID `json:"productPackId"`
	ManufactureDate     string    `json:"manufactureDate"`
	ManufacturerDetails string    `json:"manufacturerDetails"`
	ManufactureName     string    `json:"manufactureName"`
	ManufactureInfo     *string   `json:"manufactureInfo"`
	Remarks             *string   `json:"remarks"`
}

type ExpiryInfo struct {
	ExpiryID      domain.ID `json:"expiryId"`
	ProductPackID domain.ID `json:"productPackId"`
	ExpiryDate    string    `json:"expiryDate"`
	Remarks       string    `json:"remarks"`
}

type Photo struct {
	PhotoID       domain.ID `json:"photoId"`
	ProductPackID domain.ID `json:"productPackId"`
	ProductID     domain.ID `json:"productId"`
	PhotoURLs     []string  `json:"photoUrls"`
	PhotoAltText  string    `json:"photoAltText"`
	Remarks       string    `json:"remarks"`
}

type Price struct {
	PriceID       domain.ID           `json:"priceId"`
	ProductPackID domain.ID           `json:"productPackId"`
	Price         decimal.NullDecimal `json:"price"`
	Remarks       string              `json:"remarks"`
}

type Discount struct {
	DiscountID         domain.ID       `json:"discountId"`
	ProductPackID      domain.ID       `json:"productPackId"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	DiscountStartDate  string          `json:"discountStartDate"`
	DiscountEndDate    string          `json:"discountEndDate"`
	Remarks            *string         `json:"remarks"`
}

type StockInfo struct {
	StockID       domain.ID `json:"stockId"`
	ProductPackID domain.ID `json:"productPackId"`
	ProductID     domain.ID `json:"productId"`
	ProductName   string    `json:"productName"`
	ProductStatus bool      `json:"productStatus"`
	Remarks       string    `json:"remarks"`
}
