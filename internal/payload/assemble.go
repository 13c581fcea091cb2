package payload

import (
	"strings"

	"github.com/alimikegami/point-of-sales/product-form-service/internal/domain"
	"github.com/alimikegami/point-of-sales/product-form-service/internal/store"
)

// Assemble validates tree and projects it into a SubmissionPayload. Pack,
// photo and URL order follow the tree. Identifiers are copied as they are, so
// unset ones stay null for the backend to assign. Blank URL slots are
// dropped; a photo left without URLs is still sent with an empty list.
func Assemble(tree *store.Tree) (SubmissionPayload, error) {
	if err := Validate(tree); err != nil {
		return SubmissionPayload{}, err
	}

	packs := tree.Packs()
	sp := SubmissionPayload{
		Product:      productPayload(tree.Product()),
		ProductPacks: make([]Pack, 0, len(packs)),
	}

	for _, p := range packs {
		sp.ProductPacks = append(sp.ProductPacks, packPayload(p))
	}

	return sp, nil
}

func productPayload(p domain.Product) Product {
	return Product{
		ProductID:          p.ProductID,
		ProductName:        p.ProductName,
		ProductDescription: p.ProductDescription,
		ProductIngredients: p.ProductIngredients,
		AboutProduct:       p.AboutProduct,
		MoreInfo:           p.MoreInfo,
		Remarks:            p.Remarks,
	}
}

func packPayload(p domain.Pack) Pack {
	photos := make([]Photo, 0, len(p.Photos))
	for _, ph := range p.Photos {
		photos = append(photos, photoPayload(ph))
	}

	return Pack{
		ProductPackID:   p.ProductPackID,
		ProductID:       p.ProductID,
		PackSize:        p.PackSize,
		ProductQuantity: p.ProductQuantity,
		PricePerPack:    p.PricePerPack,
		Remarks:         p.Remarks,
		ManufactureInfo: ManufactureInfo{
			ManufactureID:       p.ManufactureInfo.ManufactureID,
			ProductPackID:       p.ManufactureInfo.ProductPackID,
			ManufactureDate:     p.ManufactureInfo.ManufactureDate,
			ManufacturerDetails: p.ManufactureInfo.ManufacturerDetails,
			ManufactureName:     p.ManufactureInfo.ManufactureName,
			ManufactureInfo:     cloneString(p.ManufactureInfo.ManufactureInfo),
			Remarks:             cloneString(p.ManufactureInfo.Remarks),
		},
		ExpiryInfo: ExpiryInfo{
			ExpiryID:      p.ExpiryInfo.ExpiryID,
			ProductPackID: p.ExpiryInfo.ProductPackID,
			ExpiryDate:    p.ExpiryInfo.ExpiryDate,
			Remarks:       p.ExpiryInfo.Remarks,
		},
		Photos: photos,
		Prices: Price{
			PriceID:       p.Prices.PriceID,
			ProductPackID: p.Prices.ProductPackID,
			Price:         p.Prices.Price,
			Remarks:       p.Prices.Remarks,
		},
		Discounts: Discount{
			DiscountID:         p.Discounts.DiscountID,
			ProductPackID:      p.Discounts.ProductPackID,
			DiscountPercentage: p.Discounts.DiscountPercentage,
			DiscountStartDate:  p.Discounts.DiscountStartDate,
			DiscountEndDate:    p.Discounts.DiscountEndDate,
			Remarks:            cloneString(p.Discounts.Remarks),
		},
		StockInfo: StockInfo{
			StockID:       p.StockInfo.StockID,
			ProductPackID: p.StockInfo.ProductPackID,
			ProductID:     p.StockInfo.ProductID,
			ProductName:   p.StockInfo.ProductName,
			ProductStatus: p.StockInfo.ProductStatus,
			Remarks:       p.StockInfo.Remarks,
		},
	}
}

func photoPayload(ph domain.Photo) Photo {
	return Photo{
		PhotoID:       ph.PhotoID,
		ProductPackID: ph.ProductPackID,
		ProductID:     ph.ProductID,
		PhotoURLs:     nonBlank(ph.PhotoURLs),
		PhotoAltText:  ph.PhotoAltText,
		Remarks:       ph.Remarks,
	}
}

// nonBlank keeps URLs that are not empty or whitespace, in order. The result
// is never nil so it encodes as [].
func nonBlank(urls []string) []string {
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if strings.TrimSpace(u) != "" {
			out = append(out, u)
		}
	}

	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}

	c := *s
	return &c
}
