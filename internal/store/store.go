// Package store holds the editable product tree of one form session.
package store

import (
	"sync"

	"github.com/alimikegami/point-of-sales/product-form-service/internal/domain"
)

// Store owns the current Tree of one form. Operations run one at a time and
// either apply completely or leave the tree untouched. Readers take a
// Snapshot and never observe a half-applied edit.
type Store struct {
	mu      sync.RWMutex
	tree    *Tree
	version uint64
}

func New() *Store {
	return NewWithTree(DefaultTree())
}

func NewWithTree(tree *Tree) *Store {
	if tree == nil {
		tree = DefaultTree()
	}

	return &Store{tree: tree}
}

func (s *Store) Snapshot() *Tree {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tree
}

// State returns the current tree together with its version.
func (s *Store) State() (*Tree, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.tree, s.version
}

// Version counts applied edits.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.version
}

// Reset discards the current tree and starts over from the default form.
func (s *Store) Reset() {
	s.commit(DefaultTree())
}

func (s *Store) SetProductField(field domain.Field, value any) error {
	return s.apply(func(t *Tree) (*Tree, error) {
		product, err := t.product.With(field, value)
		if err != nil {
			return nil, err
		}

		return t.withProduct(product), nil
	})
}

func (s *Store) SetPackField(index int, field domain.Field, value any) error {
	return s.apply(func(t *Tree) (*Tree, error) {
		return t.updatePack(index, func(p domain.Pack) (domain.Pack, error) {
			return p.With(field, value)
		})
	})
}

func (s *Store) SetNestedField(index int, key domain.NestedKey, field domain.Field, value any) error {
	return s.apply(func(t *Tree) (*Tree, error) {
		return t.updatePack(index, func(p domain.Pack) (domain.Pack, error) {
			return p.WithNested(key, field, value)
		})
	})
}

// AddPack appends a default pack and returns its index. Existing indices do
// not change.
func (s *Store) AddPack() int {
	var index int
	_ = s.apply(func(t *Tree) (*Tree, error) {
		index = len(t.packs)
		return t.withPacks(appended(t.packs, domain.NewPack())), nil
	})

	return index
}

// RemovePack deletes the pack at index; later packs move down by one. The
// last pack can be removed too, submit-time validation rejects an empty form.
func (s *Store) RemovePack(index int) error {
	return s.apply(func(t *Tree) (*Tree, error) {
		if err := checkIndex(LevelPack, index, len(t.packs)); err != nil {
			return nil, err
		}

		return t.withPacks(removed(t.packs, index)), nil
	})
}

// AddPhoto appends an empty photo to a pack and returns its index.
func (s *Store) AddPhoto(packIndex int) (int, error) {
	var index int
	err := s.apply(func(t *Tree) (*Tree, error) {
		return t.updatePack(packIndex, func(p domain.Pack) (domain.Pack, error) {
			index = len(p.Photos)
			p.Photos = appended(p.Photos, domain.NewPhoto())
			return p, nil
		})
	})

	return index, err
}

// RemovePhoto deletes a photo. Removing the only photo leaves one empty photo
// in its place.
func (s *Store) RemovePhoto(packIndex, photoIndex int) error {
	return s.apply(func(t *Tree) (*Tree, error) {
		return t.updatePack(packIndex, func(p domain.Pack) (domain.Pack, error) {
			if err := checkIndex(LevelPhoto, photoIndex, len(p.Photos)); err != nil {
				return p, err
			}

			p.Photos = removed(p.Photos, photoIndex)
			if len(p.Photos) == 0 {
				p.Photos = []domain.Photo{domain.NewPhoto()}
			}

			return p, nil
		})
	})
}

func (s *Store) SetPhotoField(packIndex, photoIndex int, field domain.Field, value any) error {
	return s.apply(func(t *Tree) (*Tree, error) {
		return t.updatePack(packIndex, func(p domain.Pack) (domain.Pack, error) {
			return updatePhoto(p, photoIndex, func(ph domain.Photo) (domain.Photo, error) {
				return ph.With(field, value)
			})
		})
	})
}

// AddPhotoURL appends an empty URL slot and returns its index.
func (s *Store) AddPhotoURL(packIndex, photoIndex int) (int, error) {
	var index int
	err := s.updateURLs(packIndex, photoIndex, func(urls []string) ([]string, error) {
		index = len(urls)
		return appended(urls, ""), nil
	})

	return index, err
}

// RemovePhotoURL deletes a URL slot. Removing the only slot leaves one empty
// slot in its place.
func (s *Store) RemovePhotoURL(packIndex, photoIndex, urlIndex int) error {
	return s.updateURLs(packIndex, photoIndex, func(urls []string) ([]string, error) {
		if err := checkIndex(LevelURL, urlIndex, len(urls)); err != nil {
			return nil, err
		}

		urls = removed(urls, urlIndex)
		if len(urls) == 0 {
			urls = []string{""}
		}

		return urls, nil
	})
}

func (s *Store) SetPhotoURL(packIndex, photoIndex, urlIndex int, value string) error {
	return s.updateURLs(packIndex, photoIndex, func(urls []string) ([]string, error) {
		if err := checkIndex(LevelURL, urlIndex, len(urls)); err != nil {
			return nil, err
		}

		return replaced(urls, urlIndex, value), nil
	})
}

func (s *Store) updateURLs(packIndex, photoIndex int, fn func([]string) ([]string, error)) error {
	return s.apply(func(t *Tree) (*Tree, error) {
		return t.updatePack(packIndex, func(p domain.Pack) (domain.Pack, error) {
			return updatePhoto(p, photoIndex, func(ph domain.Photo) (domain.Photo, error) {
				urls, err := fn(ph.PhotoURLs)
				if err != nil {
					return ph, err
				}

				ph.PhotoURLs = urls
				return ph, nil
			})
		})
	})
}

func (s *Store) apply(fn func(*Tree) (*Tree, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.tree)
	if err != nil {
		return err
	}

	s.tree = next
	s.version++
	return nil
}

func (s *Store) commit(tree *Tree) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tree = tree
	s.version++
}
