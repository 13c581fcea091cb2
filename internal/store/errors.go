package store

import (
	"fmt"

	"github.com/alimikegami/point-of-sales/product-form-service/pkg/errs"
)

type Level string

const (
	LevelPack  Level = "pack"
	LevelPhoto Level = "photo"
	LevelURL   Level = "photoUrl"
)

// IndexError reports an operation that referenced a pack, photo or URL slot
// that does not exist. It matches errs.ErrStructuralIndex.
type IndexError struct {
	Level Level `json:"level"`
	Index int   `json:"index"`
	Len   int   `json:"len"`
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range (have %d)", e.Level, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return errs.ErrStructuralIndex
}

func checkIndex(level Level, index, length int) error {
	if index < 0 || index >= length {
		return &IndexError{Level: level, Index: index, Len: length}
	}

	return nil
}
