package entity

// State is everything the commerce engine owns for one shopper.
type State struct {
	Cart     Cart
	Wishlist Wishlist
	Session  Session
	Currency CurrencyState
}

// Clone returns a deep copy of the state.
func (s *State) Clone() State {
	return State{
		Cart:     s.Cart.Clone(),
		Wishlist: s.Wishlist.Clone(),
		Session:  s.Session.Clone(),
		Currency: s.Currency.Clone(),
	}
}

// Snapshot is the persisted subset of State. The rate table is not persisted;
// it is re-seeded and refreshed on every start.
type Snapshot struct {
	Cart            Cart
	Wishlist        Wishlist
	IsAuthenticated bool
	User            *UserProfile
	Currency        CurrencyCode
}

// Snapshot extracts the persisted subset.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Cart:            s.Cart.Clone(),
		Wishlist:        s.Wishlist.Clone(),
		IsAuthenticated: s.Session.IsAuthenticated,
		User:            s.Session.User.Clone(),
		Currency:        s.Currency.Selected,
	}
}

// Restore applies a loaded snapshot, keeping the current rate table.
func (s *State) Restore(snap Snapshot) {
	s.Cart = snap.Cart.Clone()
	s.Wishlist = snap.Wishlist.Clone()
	s.Session = Session{
		IsAuthenticated: snap.IsAuthenticated,
		User:            snap.User.Clone(),
	}
	s.Currency.Selected = snap.Currency
}
