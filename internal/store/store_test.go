package store

import (
	"sync"
	"testing"

	"github.com/alimikegami/point-of-sales/product-form-service/internal/domain"
	"github.com/alimikegami/point-of-sales/product-form-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func packSizes(t *testing.T, tree *Tree) []string {
	t.Helper()

	var sizes []string
	for _, p := range tree.Packs() {
		sizes = append(sizes, p.PackSize)
	}
	return sizes
}

func TestNewStoreHasOneDefaultPack(t *testing.T) {
	s := New()
	tree := s.Snapshot()

	require.Equal(t, 1, tree.PackCount())
	pack, err := tree.Pack(0)
	require.NoError(t, err)
	require.Len(t, pack.Photos, 1)
	assert.Equal(t, []string{""}, pack.Photos[0].PhotoURLs)
	assert.True(t, pack.StockInfo.ProductStatus)
	assert.Equal(t, uint64(0), s.Version())
}

func TestRemoveLastPackLeavesZeroPacks(t *testing.T) {
	s := New()

	require.NoError(t, s.RemovePack(0))
	assert.Equal(t, 0, s.Snapshot().PackCount())

	err := s.RemovePack(0)
	var indexErr *IndexError
	require.ErrorAs(t, err, &indexErr)
	assert.Equal(t, LevelPack, indexErr.Level)
	assert.ErrorIs(t, err, errs.ErrStructuralIndex)
}

func TestPackOrderIsPreserved(t *testing.T) {
	s := New()
	require.NoError(t, s.RemovePack(0))

	for _, size := range []string{"P1", "P2", "P3"} {
		i := s.AddPack()
		require.NoError(t, s.SetPackField(i, domain.FieldPackSize, size))
	}
	assert.Equal(t, []string{"P1", "P2", "P3"}, packSizes(t, s.Snapshot()))

	require.NoError(t, s.RemovePack(1))
	assert.Equal(t, []string{"P1", "P3"}, packSizes(t, s.Snapshot()))
}

func TestAddPackKeepsEarlierIndices(t *testing.T) {
	s := New()
	require.NoError(t, s.SetPackField(0, domain.FieldPackSize, "250g"))

	assert.Equal(t, 1, s.AddPack())
	pack, err := s.Snapshot().Pack(0)
	require.NoError(t, err)
	assert.Equal(t, "250g", pack.PackSize)
}

func TestRemovePhotoReinstatesDefault(t *testing.T) {
	s := New()
	i, err := s.AddPhoto(0)
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	require.NoError(t, s.SetPhotoURL(0, 0, 0, "https://a"))

	require.NoError(t, s.RemovePhoto(0, 0))
	require.NoError(t, s.RemovePhoto(0, 0))

	pack, err := s.Snapshot().Pack(0)
	require.NoError(t, err)
	require.Len(t, pack.Photos, 1)
	assert.Equal(t, domain.NewPhoto(), pack.Photos[0])
	assert.Len(t, pack.Photos[0].PhotoURLs, 1)
}

func TestRemovePhotoURLReinstatesEmptySlot(t *testing.T) {
	s := New()
	_, err := s.AddPhotoURL(0, 0)
	require.NoError(t, err)
	require.NoError(t, s.SetPhotoURL(0, 0, 0, "https://a"))
	require.NoError(t, s.SetPhotoURL(0, 0, 1, "https://b"))

	require.NoError(t, s.RemovePhotoURL(0, 0, 0))
	pack, _ := s.Snapshot().Pack(0)
	assert.Equal(t, []string{"https://b"}, pack.Photos[0].PhotoURLs)

	require.NoError(t, s.RemovePhotoURL(0, 0, 0))
	pack, _ = s.Snapshot().Pack(0)
	assert.Equal(t, []string{""}, pack.Photos[0].PhotoURLs)
}

func TestSnapshotsAreIsolatedFromLaterEdits(t *testing.T) {
	s := New()
	s.AddPack()
	require.NoError(t, s.SetPhotoURL(0, 0, 0, "https://before"))
	before := s.Snapshot()

	require.NoError(t, s.SetPhotoURL(0, 0, 0, "https://after"))
	_, err := s.AddPhotoURL(1, 0)
	require.NoError(t, err)
	require.NoError(t, s.SetNestedField(0, domain.NestedPrices, domain.FieldPrice, "79"))
	require.NoError(t, s.SetProductField(domain.FieldProductName, "Carrot"))

	old, _ := before.Pack(0)
	assert.Equal(t, []string{"https://before"}, old.Photos[0].PhotoURLs)
	assert.False(t, old.Prices.Price.Valid)
	oldSecond, _ := before.Pack(1)
	assert.Equal(t, []string{""}, oldSecond.Photos[0].PhotoURLs)
	assert.Equal(t, "", before.Product().ProductName)

	current, _ := s.Snapshot().Pack(0)
	assert.Equal(t, []string{"https://after"}, current.Photos[0].PhotoURLs)
}

func TestEditingOnePackDoesNotTouchSiblings(t *testing.T) {
	s := New()
	s.AddPack()
	before := s.Snapshot()

	require.NoError(t, s.SetNestedField(1, domain.NestedExpiryInfo, domain.FieldExpiryDate, "2026-07-30"))
	_, err := s.AddPhoto(1)
	require.NoError(t, err)

	after := s.Snapshot()
	first, _ := after.Pack(0)
	second, _ := after.Pack(1)
	assert.Equal(t, "", first.ExpiryInfo.ExpiryDate)
	assert.Len(t, first.Photos, 1)
	assert.Equal(t, "2026-07-30", second.ExpiryInfo.ExpiryDate)
	assert.Len(t, second.Photos, 2)

	// the untouched pack is shared between snapshots, not copied
	assert.Same(t, &before.packs[0].Photos[0], &after.packs[0].Photos[0])
}

func TestSnapshotAccessorsReturnCopies(t *testing.T) {
	s := New()
	tree := s.Snapshot()

	packs := tree.Packs()
	packs[0].Photos[0].PhotoURLs[0] = "https://mutated"

	pack, _ := tree.Pack(0)
	assert.Equal(t, "", pack.Photos[0].PhotoURLs[0])
}

func TestFailedEditLeavesTreeUnchanged(t *testing.T) {
	s := New()
	before := s.Snapshot()

	testCases := []struct {
		Name string
		Edit func() error
		Err  error
	}{
		{Name: "pack index", Edit: func() error { return s.SetPackField(3, domain.FieldPackSize, "x") }, Err: errs.ErrStructuralIndex},
		{Name: "photo index", Edit: func() error { return s.RemovePhoto(0, 4) }, Err: errs.ErrStructuralIndex},
		{Name: "url index", Edit: func() error { return s.SetPhotoURL(0, 0, 2, "x") }, Err: errs.ErrStructuralIndex},
		{Name: "negative url index", Edit: func() error { return s.RemovePhotoURL(0, 0, -1) }, Err: errs.ErrStructuralIndex},
		{Name: "unknown field", Edit: func() error { return s.SetPackField(0, "colour", "x") }, Err: errs.ErrUnknownField},
		{Name: "read-only id", Edit: func() error { return s.SetPhotoField(0, 0, domain.FieldPhotoID, 1) }, Err: errs.ErrReadOnlyField},
		{Name: "bad value", Edit: func() error { return s.SetPackField(0, domain.FieldProductQuantity, "lots") }, Err: errs.ErrInvalidFieldValue},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.ErrorIs(t, tc.Edit(), tc.Err)
			assert.Same(t, before, s.Snapshot())
			assert.Equal(t, uint64(0), s.Version())
		})
	}
}

func TestSetPhotoField(t *testing.T) {
	s := New()
	require.NoError(t, s.SetPhotoField(0, 0, domain.FieldPhotoAltText, "Bag of carrots"))
	require.NoError(t, s.SetPhotoField(0, 0, domain.FieldRemarks, "front"))

	pack, _ := s.Snapshot().Pack(0)
	assert.Equal(t, "Bag of carrots", pack.Photos[0].PhotoAltText)
	assert.Equal(t, "front", pack.Photos[0].Remarks)
	assert.Equal(t, uint64(2), s.Version())
}

func TestReset(t *testing.T) {
	s := New()
	require.NoError(t, s.SetProductField(domain.FieldProductName, "Carrot"))
	require.NoError(t, s.RemovePack(0))

	s.Reset()
	tree := s.Snapshot()
	assert.Equal(t, "", tree.Product().ProductName)
	assert.Equal(t, 1, tree.PackCount())
}

func TestNewTreeNormalizesInvariants(t *testing.T) {
	pack := domain.NewPack()
	pack.Photos = nil
	other := domain.NewPack()
	other.Photos = []domain.Photo{{PhotoAltText: "side"}}

	tree := NewTree(domain.NewProduct(), []domain.Pack{pack, other})

	first, _ := tree.Pack(0)
	require.Len(t, first.Photos, 1)
	assert.Equal(t, []string{""}, first.Photos[0].PhotoURLs)
	second, _ := tree.Pack(1)
	assert.Equal(t, "side", second.Photos[0].PhotoAltText)
	assert.Equal(t, []string{""}, second.Photos[0].PhotoURLs)
}

func TestConcurrentEditsAreSerialized(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.AddPhotoURL(0, 0)
			assert.NoError(t, err)
			_ = s.Snapshot().Packs()
		}()
	}
	wg.Wait()

	pack, _ := s.Snapshot().Pack(0)
	assert.Len(t, pack.Photos[0].PhotoURLs, 51)
	assert.Equal(t, uint64(50), s.Version())
}
