package domain

import "slices"

type Photo struct {
	PhotoID       ID       `json:"photoId"`
	ProductPackID ID       `json:"productPackId"`
	ProductID     ID       `json:"productId"`
	PhotoURLs     []string `json:"photoUrls"`
	PhotoAltText  string   `json:"photoAltText"`
	Remarks       string   `json:"remarks"`
}

// NewPhoto returns a photo holding a single empty URL slot.
func NewPhoto() Photo {
	return Photo{PhotoURLs: []string{""}}
}

func (p Photo) Clone() Photo {
	c := p
	c.PhotoURLs = slices.Clone(p.PhotoURLs)
	if c.PhotoURLs == nil {
		c.PhotoURLs = []string{}
	}

	return c
}

// With sets a scalar photo field. URLs are edited slot by slot through the
// store.
func (p Photo) With(field Field, value any) (Photo, error) {
	next := p
	var err error

	switch field {
	case FieldPhotoAltText:
		next.PhotoAltText, err = toString(field, value)
	case FieldRemarks:
		next.Remarks, err = toString(field, value)
	case FieldPhotoID, FieldProductPackID, FieldProductID:
		err = readOnlyField("photo", field)
	default:
		err = unknownField("photo", field)
	}

	if err != nil {
		return p, err
	}

	return next, nil
}
