package service

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/alimikegami/point-of-sales/product-form-service/internal/domain"
	"github.com/alimikegami/point-of-sales/product-form-service/internal/dto"
	"github.com/alimikegami/point-of-sales/product-form-service/internal/store"
	"github.com/alimikegami/point-of-sales/product-form-service/pkg/errs"
)

// applyEdit runs one edit event against st. Add ops return the index of the
// new element.
func applyEdit(st *store.Store, req dto.EditRequest) (*int, error) {
	switch req.Op {
	case dto.OpReset:
		st.Reset()
		return nil, nil
	case dto.OpAddPack:
		index := st.AddPack()
		return &index, nil
	case dto.OpSetProductField:
		value, err := decodeValue(req.Value)
		if err != nil {
			return nil, err
		}

		return nil, st.SetProductField(domain.Field(req.Field), value)
	}

	pack, err := requireIndex(req.Op, "packIndex", req.PackIndex)
	if err != nil {
		return nil, err
	}

	switch req.Op {
	case dto.OpSetPackField:
		value, err := decodeValue(req.Value)
		if err != nil {
			return nil, err
		}

		return nil, st.SetPackField(pack, domain.Field(req.Field), value)
	case dto.OpSetNestedField:
		value, err := decodeValue(req.Value)
		if err != nil {
			return nil, err
		}

		return nil, st.SetNestedField(pack, domain.NestedKey(req.NestedKey), domain.Field(req.Field), value)
	case dto.OpRemovePack:
		return nil, st.RemovePack(pack)
	case dto.OpAddPhoto:
		index, err := st.AddPhoto(pack)
		if err != nil {
			return nil, err
		}

		return &index, nil
	}

	photo, err := requireIndex(req.Op, "photoIndex", req.PhotoIndex)
	if err != nil {
		return nil, err
	}

	switch req.Op {
	case dto.OpRemovePhoto:
		return nil, st.RemovePhoto(pack, photo)
	case dto.OpSetPhotoField:
		value, err := decodeValue(req.Value)
		if err != nil {
			return nil, err
		}

		return nil, st.SetPhotoField(pack, photo, domain.Field(req.Field), value)
	case dto.OpAddPhotoURL:
		index, err := st.AddPhotoURL(pack, photo)
		if err != nil {
			return nil, err
		}

		return &index, nil
	}

	url, err := requireIndex(req.Op, "urlIndex", req.URLIndex)
	if err != nil {
		return nil, err
	}

	switch req.Op {
	case dto.OpRemovePhotoURL:
		return nil, st.RemovePhotoURL(pack, photo, url)
	case dto.OpSetPhotoURL:
		value, err := decodeURL(req.Value)
		if err != nil {
			return nil, err
		}

		return nil, st.SetPhotoURL(pack, photo, url, value)
	}

	return nil, fmt.Errorf("%w: %q", errs.ErrUnknownEditOperation, req.Op)
}

func knownOp(op string) bool {
	switch op {
	case dto.OpSetProductField, dto.OpSetPackField, dto.OpSetNestedField, dto.OpAddPack, dto.OpRemovePack,
		dto.OpAddPhoto, dto.OpRemovePhoto, dto.OpSetPhotoField, dto.OpAddPhotoURL, dto.OpRemovePhotoURL,
		dto.OpSetPhotoURL, dto.OpReset:
		return true
	}

	return false
}

func requireIndex(op, name string, index *int) (int, error) {
	if !knownOp(op) {
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownEditOperation, op)
	}

	if index == nil {
		return 0, fmt.Errorf("%w: %s requires %s", errs.ErrClient, op, name)
	}

	return *index, nil
}

// decodeValue decodes an edit value keeping numbers as json.Number. An
// absent value is nil.
func decodeValue(raw json.RawMessage) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidFieldValue, err)
	}

	return value, nil
}

func decodeURL(raw json.RawMessage) (string, error) {
	value, err := decodeValue(raw)
	if err != nil {
		return "", err
	}

	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	}

	return "", fmt.Errorf("%w: photo URL must be a string, got %s", errs.ErrInvalidFieldValue, raw)
}
