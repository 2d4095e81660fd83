package catalog

import "storeradar/internal/domain/entity"

// DedupBy keeps the first item for every key, preserving order.
func DedupBy[T any, K comparable](items []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))

	for _, item := range items {
		k := key(item)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}

	return out
}

// DedupByToken keeps the first row for each store token.
func DedupByToken(rows []entity.AssignmentRow) []entity.AssignmentRow {
	return DedupBy(rows, func(r entity.AssignmentRow) string { return r.Assignment.StoreToken })
}

type positionKey struct {
	lat, lng float64
	name     string
}

// DedupByPosition collapses stores that share latitude, longitude and name.
// Stores without coordinates are dropped.
func DedupByPosition(stores []*entity.Store) []*entity.Store {
	located := make([]*entity.Store, 0, len(stores))
	for _, s := range stores {
		if s != nil && s.Lat != nil && s.Lng != nil {
			located = append(located, s)
		}
	}

	return DedupBy(located, func(s *entity.Store) positionKey {
		return positionKey{lat: *s.Lat, lng: *s.Lng, name: deref(s.Name)}
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
