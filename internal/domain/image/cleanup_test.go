package image

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boolbnb/internal/domain"
	"boolbnb/internal/testutil"
)

func TestRemoveOrphans(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	cover := "cover.png"
	p := testutil.SeedProperty(t, db, "loft", func(p *domain.Property) { p.Image = &cover })
	require.NoError(t, db.Create(&domain.PropertyImage{PropertyID: p.ID, ImgName: "second.jpg"}).Error)

	store := testutil.NewMemoryStore()
	for _, n := range []string{"cover.png", "second.jpg", "stale.png"} {
		store.Objects[n] = []byte("x")
	}
	stored := []string{"cover.png", "second.jpg", "stale.png"}
	repo := NewRepository(db)

	res, err := RemoveOrphans(ctx, repo, store, stored, true)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Scanned)
	assert.Equal(t, []string{"stale.png"}, res.Removed)
	assert.Equal(t, 3, store.Len(), "dry run keeps files")

	res, err = RemoveOrphans(ctx, repo, store, stored, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"stale.png"}, res.Removed)
	assert.Equal(t, 2, store.Len())
	assert.NotContains(t, store.Objects, "stale.png")
}
