package state

import "sort"

// Favorites is the set of favorited item IDs
type Favorites struct {
	ids map[string]struct{}
}

// NewFavorites creates an empty favorite set
func NewFavorites() *Favorites {
	return &Favorites{ids: make(map[string]struct{})}
}

// Contains reports whether id is a favorite
func (f *Favorites) Contains(id string) bool {
	_, ok := f.ids[id]
	return ok
}

// Toggle flips the membership of id and returns the new membership
func (f *Favorites) Toggle(id string) bool {
	if f.Contains(id) {
		delete(f.ids, id)
		return false
	}
	f.ids[id] = struct{}{}
	return true
}

// Len returns the number of favorites
func (f *Favorites) Len() int {
	return len(f.ids)
}

// IDs returns the favorite IDs sorted
func (f *Favorites) IDs() []string {
	ids := make([]string, 0, len(f.ids))
	for id := range f.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
