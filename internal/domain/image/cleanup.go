package image

import (
	"context"
	"fmt"

	"boolbnb/internal/domain"
	"boolbnb/internal/storage"
)

// Referenced returns every stored file name still pointed to by a listing,
// either as its cover or as a secondary image.
func (r *Repository) Referenced(ctx context.Context) (map[string]bool, error) {
	db := r.db.WithContext(ctx)

	var covers, secondary []string
	if err := db.Model(&domain.Property{}).Where("image IS NOT NULL").Pluck("image", &covers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.PropertyImage{}).Pluck("img_name", &secondary).Error; err != nil {
		return nil, err
	}

	out := make(map[string]bool, len(covers)+len(secondary))
	for _, n := range covers {
		out[n] = true
	}
	for _, n := range secondary {
		out[n] = true
	}
	return out, nil
}

type CleanupResult struct {
	Scanned int
	Removed []string
}

// RemoveOrphans deletes stored files no listing references. With dryRun the
// candidates are reported but left in place.
func RemoveOrphans(ctx context.Context, r *Repository, store storage.Store, stored []string, dryRun bool) (*CleanupResult, error) {
	refs, err := r.Referenced(ctx)
	if err != nil {
		return nil, fmt.Errorf("list referenced images: %w", err)
	}

	res := &CleanupResult{Scanned: len(stored)}
	for _, name := range stored {
		if refs[name] {
			continue
		}
		if !dryRun {
			if err := store.Delete(ctx, name); err != nil {
				return res, fmt.Errorf("delete %s: %w", name, err)
			}
		}
		res.Removed = append(res.Removed, name)
	}
	return res, nil
}
