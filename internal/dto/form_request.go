package dto

import "encoding/json"

const (
	OpSetProductField = "setProductField"
	OpSetPackField    = "setPackField"
	OpSetNestedField  = "setNestedField"
	OpAddPack         = "addPack"
	OpRemovePack      = "removePack"
	OpAddPhoto        = "addPhoto"
	OpRemovePhoto     = "removePhoto"
	OpSetPhotoField   = "setPhotoField"
	OpAddPhotoURL     = "addPhotoUrl"
	OpRemovePhotoURL  = "removePhotoUrl"
	OpSetPhotoURL     = "setPhotoUrl"
	OpReset           = "reset"
)

const SeedExample = "example"

type CreateFormRequest struct {
	Seed string `json:"seed"`
}

// EditRequest is one edit event. Which of the optional members are required
// depends on Op.
type EditRequest struct {
	Op         string          `json:"op"`
	PackIndex  *int            `json:"packIndex,omitempty"`
	PhotoIndex *int            `json:"photoIndex,omitempty"`
	URLIndex   *int            `json:"urlIndex,omitempty"`
	NestedKey  string          `json:"nestedKey,omitempty"`
	Field      string          `json:"field,omitempty"`
	Value      json.RawMessage `json:"value,omitempty"`
}
