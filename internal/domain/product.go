package domain

import "github.com/shopspring/decimal"

func init() {
	// The aggregate service reads prices and percentages as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ProductID          ID     `json:"productId"`
	ProductName        string `json:"productName"`
	ProductDescription string `json:"productDescription"`
	ProductIngredients string `json:"productIngredients"`
	AboutProduct       string `json:"aboutProduct"`
	MoreInfo           string `json:"moreInfo"`
	Remarks            string `json:"remarks"`
}

func NewProduct() Product {
	return Product{}
}

// With returns a copy of p with field set to value.
func (p Product) With(field Field, value any) (Product, error) {
	next := p
	var err error

	switch field {
	case FieldProductName:
		next.ProductName, err = toString(field, value)
	case FieldProductDescription:
		next.ProductDescription, err = toString(field, value)
	case FieldProductIngredients:
		next.ProductIngredients, err = toString(field, value)
	case FieldAboutProduct:
		next.AboutProduct, err = toString(field, value)
	case FieldMoreInfo:
		next.MoreInfo, err = toString(field, value)
	case FieldRemarks:
		next.Remarks, err = toString(field, value)
	case FieldProductID:
		err = readOnlyField("product", field)
	default:
		err = unknownField("product", field)
	}

	if err != nil {
		return p, err
	}

	return next, nil
}
