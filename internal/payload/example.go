package payload

import "github.com/shopspring/decimal"

// Example returns the sample aggregate used to seed demo sessions.
func Example() SubmissionPayload {
	easterOffer := "Easter offer"

	return SubmissionPayload{
		Product: Product{
			ProductName:        "Organic Carrot",
			ProductDescription: "Crunchy organic carrots",
			ProductIngredients: "Carrot",
			AboutProduct:       "Locally farmed",
			MoreInfo:           "Wash before use",
			Remarks:            "Root vegetable",
		},
		ProductPacks: []Pack{
			{
				PackSize:        "250g",
				ProductQuantity: 150,
				PricePerPack:    decimal.NewNullDecimal(decimal.NewFromFloat(80.0)),
				Remarks:         "snack size",
				ManufactureInfo: ManufactureInfo{
					ManufactureDate:     "2026-01-20",
					ManufacturerDetails: "Growers Co-op",
					ManufactureName:     "Growers Co-op",
				},
				ExpiryInfo: ExpiryInfo{
					ExpiryDate: "2026-07-30",
					Remarks:    "best before",
				},
				Photos: []Photo{
					{
						PhotoURLs:    []string{"https://example.com/photos/carrot1.jpg"},
						PhotoAltText: "Bag of organic carrots",
						Remarks:      "front",
					},
				},
				Prices: Price{
					Price:   decimal.NewNullDecimal(decimal.NewFromFloat(79.0)),
					Remarks: "MRP",
				},
				Discounts: Discount{
					DiscountPercentage: decimal.NewFromFloat(15.0),
					DiscountStartDate:  "2026-04-01",
					DiscountEndDate:    "2026-04-07",
					Remarks:            &easterOffer,
				},
				StockInfo: StockInfo{
					ProductName:   "Organic Carrot",
					ProductStatus: true,
					Remarks:       "Cold storage",
				},
			},
		},
	}
}
