package state

// Store combines the quantity and favorite cells behind the four
// interaction operations. It is owned by the UI goroutine and is not
// safe for concurrent use.
type Store struct {
	quantities *Quantities
	favorites  *Favorites

	onChange func(id string)
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		quantities: NewQuantities(),
		favorites:  NewFavorites(),
	}
}

// SetChangeCallback sets the callback invoked with the affected item ID
func (s *Store) SetChangeCallback(callback func(id string)) {
	s.onChange = callback
}

// IncrementQuantity adds one to the quantity of id
func (s *Store) IncrementQuantity(id string) int {
	n := s.quantities.Increment(id)
	s.notify(id)
	return n
}

// DecrementQuantity subtracts one from the quantity of id, clamped at zero
func (s *Store) DecrementQuantity(id string) int {
	n := s.quantities.Decrement(id)
	s.notify(id)
	return n
}

// ToggleFavorite flips favorite membership of id
func (s *Store) ToggleFavorite(id string) bool {
	fav := s.favorites.Toggle(id)
	s.notify(id)
	return fav
}

// Quantity returns the quantity of id
func (s *Store) Quantity(id string) int {
	return s.quantities.Get(id)
}

// IsFavorite reports whether id is a favorite
func (s *Store) IsFavorite(id string) bool {
	return s.favorites.Contains(id)
}

// Quantities returns the quantity cell
func (s *Store) Quantities() *Quantities {
	return s.quantities
}

// Favorites returns the favorite cell
func (s *Store) Favorites() *Favorites {
	return s.favorites
}

func (s *Store) notify(id string) {
	if s.onChange != nil {
		s.onChange(id)
	}
}
