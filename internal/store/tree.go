package store

import (
	"encoding/json"

	"github.com/alimikegami/point-of-sales/product-form-service/internal/domain"
)

// Tree is an immutable snapshot of one product form. Every edit produces a
// new Tree that shares the untouched branches with its predecessor, so a Tree
// must never be modified in place. Accessors hand out deep copies.
type Tree struct {
	product domain.Product
	packs   []domain.Pack
}

// DefaultTree is the state of a fresh form: an empty product with one
// default pack.
func DefaultTree() *Tree {
	return &Tree{
		product: domain.NewProduct(),
		packs:   []domain.Pack{domain.NewPack()},
	}
}

// NewTree builds a tree from existing records. Packs without photos get one
// default photo and photos without URLs get one empty slot.
func NewTree(product domain.Product, packs []domain.Pack) *Tree {
	t := &Tree{product: product, packs: make([]domain.Pack, len(packs))}

	for i, p := range packs {
		p = p.Clone()
		if len(p.Photos) == 0 {
			p.Photos = []domain.Photo{domain.NewPhoto()}
		}
		for j := range p.Photos {
			if len(p.Photos[j].PhotoURLs) == 0 {
				p.Photos[j].PhotoURLs = []string{""}
			}
		}
		t.packs[i] = p
	}

	return t
}

func (t *Tree) Product() domain.Product {
	return t.product
}

func (t *Tree) PackCount() int {
	return len(t.packs)
}

func (t *Tree) Pack(index int) (domain.Pack, error) {
	if err := checkIndex(LevelPack, index, len(t.packs)); err != nil {
		return domain.Pack{}, err
	}

	return t.packs[index].Clone(), nil
}

// Packs returns a deep copy of the pack list in order.
func (t *Tree) Packs() []domain.Pack {
	packs := make([]domain.Pack, len(t.packs))
	for i, p := range t.packs {
		packs[i] = p.Clone()
	}

	return packs
}

func (t *Tree) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Product      domain.Product `json:"product"`
		ProductPacks []domain.Pack  `json:"productPacks"`
	}{
		Product:      t.product,
		ProductPacks: t.packs,
	})
}

func (t *Tree) withProduct(product domain.Product) *Tree {
	return &Tree{product: product, packs: t.packs}
}

func (t *Tree) withPacks(packs []domain.Pack) *Tree {
	return &Tree{product: t.product, packs: packs}
}

// updatePack replaces pack index with fn's result, copying only the pack
// slice header and the touched pack.
func (t *Tree) updatePack(index int, fn func(domain.Pack) (domain.Pack, error)) (*Tree, error) {
	if err := checkIndex(LevelPack, index, len(t.packs)); err != nil {
		return nil, err
	}

	next, err := fn(t.packs[index])
	if err != nil {
		return nil, err
	}

	return t.withPacks(replaced(t.packs, index, next)), nil
}

func updatePhoto(pack domain.Pack, index int, fn func(domain.Photo) (domain.Photo, error)) (domain.Pack, error) {
	if err := checkIndex(LevelPhoto, index, len(pack.Photos)); err != nil {
		return pack, err
	}

	next, err := fn(pack.Photos[index])
	if err != nil {
		return pack, err
	}

	pack.Photos = replaced(pack.Photos, index, next)
	return pack, nil
}

// The slice helpers below always allocate: a slice reachable from an older
// tree is never written to or appended in place.

func replaced[T any](s []T, index int, v T) []T {
	out := make([]T, len(s))
	copy(out, s)
	out[index] = v
	return out
}

func appended[T any](s []T, v T) []T {
	out := make([]T, len(s), len(s)+1)
	copy(out, s)
	return append(out, v)
}

func removed[T any](s []T, index int) []T {
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:index]...)
	return append(out, s[index+1:]...)
}
