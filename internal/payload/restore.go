package payload

import (
	"slices"

	"github.com/alimikegami/point-of-sales/product-form-service/internal/domain"
	"github.com/alimikegami/point-of-sales/product-form-service/internal/store"
)

// Restore turns a payload, such as the example payload or a body echoed back
// by the aggregate service, into an editable tree. Identifiers are kept and
// empty photo or URL lists get their placeholder back.
func Restore(sp SubmissionPayload) *store.Tree {
	p := sp.Product
	product := domain.Product{
		ProductID:          p.ProductID,
		ProductName:        p.ProductName,
		ProductDescription: p.ProductDescription,
		ProductIngredients: p.ProductIngredients,
		AboutProduct:       p.AboutProduct,
		MoreInfo:           p.MoreInfo,
		Remarks:            p.Remarks,
	}

	packs := make([]domain.Pack, 0, len(sp.ProductPacks))
	for _, pk := range sp.ProductPacks {
		packs = append(packs, restorePack(pk))
	}

	return store.NewTree(product, packs)
}

func restorePack(pk Pack) domain.Pack {
	photos := make([]domain.Photo, 0, len(pk.Photos))
	for _, ph := range pk.Photos {
		photos = append(photos, domain.Photo{
			PhotoID:       ph.PhotoID,
			ProductPackID: ph.ProductPackID,
			ProductID:     ph.ProductID,
			PhotoURLs:     slices.Clone(ph.PhotoURLs),
			PhotoAltText:  ph.PhotoAltText,
			Remarks:       ph.Remarks,
		})
	}

	return domain.Pack{
		ProductPackID:   pk.ProductPackID,
		ProductID:       pk.ProductID,
		PackSize:        pk.PackSize,
		ProductQuantity: pk.ProductQuantity,
		PricePerPack:    pk.PricePerPack,
		Remarks:         pk.Remarks,
		ManufactureInfo: domain.ManufactureInfo{
			ManufactureID:       pk.ManufactureInfo.ManufactureID,
			ProductPackID:       pk.ManufactureInfo.ProductPackID,
			ManufactureDate:     pk.ManufactureInfo.ManufactureDate,
			ManufacturerDetails: pk.ManufactureInfo.ManufacturerDetails,
			ManufactureName:     pk.ManufactureInfo.ManufactureName,
			ManufactureInfo:     cloneString(pk.ManufactureInfo.ManufactureInfo),
			Remarks:             cloneString(pk.ManufactureInfo.Remarks),
		},
		ExpiryInfo: domain.ExpiryInfo{
			ExpiryID:      pk.ExpiryInfo.ExpiryID,
			ProductPackID: pk.ExpiryInfo.ProductPackID,
			ExpiryDate:    pk.ExpiryInfo.ExpiryDate,
			Remarks:       pk.ExpiryInfo.Remarks,
		},
		Photos: photos,
		Prices: domain.Price{
			PriceID:       pk.Prices.PriceID,
			ProductPackID: pk.Prices.ProductPackID,
			Price:         pk.Prices.Price,
			Remarks:       pk.Prices.Remarks,
		},
		Discounts: domain.Discount{
			DiscountID:         pk.Discounts.DiscountID,
			ProductPackID:      pk.Discounts.ProductPackID,
			DiscountPercentage: pk.Discounts.DiscountPercentage,
			DiscountStartDate:  pk.Discounts.DiscountStartDate,
			DiscountEndDate:    pk.Discounts.DiscountEndDate,
			Remarks:            cloneString(pk.Discounts.Remarks),
		},
		StockInfo: domain.StockInfo{
			StockID:       pk.StockInfo.StockID,
			ProductPackID: pk.StockInfo.ProductPackID,
			ProductID:     pk.StockInfo.ProductID,
			ProductName:   pk.StockInfo.ProductName,
			ProductStatus: pk.StockInfo.ProductStatus,
			Remarks:       pk.StockInfo.Remarks,
		},
	}
}
