package entity

import (
	"encoding/json"
	"regexp"
)

// postalCodePattern accepts 3 to 10 letters, digits, spaces or hyphens.
var postalCodePattern = regexp.MustCompile(`^[A-Za-z0-9\s-]{3,10}$`)

// ValidPostalCode reports whether code looks like a postal code.
func ValidPostalCode(code string) bool {
	return postalCodePattern.MatchString(code)
}

// Address is a shopper's shipping address.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// UnmarshalJSON also accepts the older zipCode field name for PostalCode.
func (a *Address) UnmarshalJSON(data []byte) error {
	type plain Address
	var aux struct {
		plain
		ZipCode string `json:"zipCode"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*a = Address(aux.plain)
	if a.PostalCode == "" {
		a.PostalCode = aux.ZipCode
	}

	return nil
}

// UserProfile is the identity of a signed-in shopper.
type UserProfile struct {
	Email     string   `json:"email"`
	FirstName string   `json:"firstName,omitempty"`
	LastName  string   `json:"lastName,omitempty"`
	Address   *Address `json:"address,omitempty"`
}

// Clone returns a deep copy of the profile.
func (u *UserProfile) Clone() *UserProfile {
	if u == nil {
		return nil
	}
	cloned := *u
	if u.Address != nil {
		addr := *u.Address
		cloned.Address = &addr
	}

	return &cloned
}

// UserPatch is a partial profile. Nil fields are left untouched; a non-nil Address
// replaces the whole address.
type UserPatch struct {
	Email     *string  `json:"email,omitempty"`
	FirstName *string  `json:"firstName,omitempty"`
	LastName  *string  `json:"lastName,omitempty"`
	Address   *Address `json:"address,omitempty"`
}

// Session is the shopper's authentication state.
// Anonymous: IsAuthenticated false and User nil.
type Session struct {
	IsAuthenticated bool         `json:"isAuthenticated"`
	User            *UserProfile `json:"user"`
}

// Login moves the session to the authenticated state with profile.
func (s *Session) Login(profile UserProfile) {
	s.IsAuthenticated = true
	s.User = profile.Clone()
}

// Logout moves the session back to anonymous.
func (s *Session) Logout() {
	s.IsAuthenticated = false
	s.User = nil
}

// ApplyPatch shallow-merges patch into the profile. It is a no-op, returning false,
// when nobody is signed in.
func (s *Session) ApplyPatch(patch UserPatch) bool {
	if s.User == nil {
		return false
	}
	if patch.Email != nil {
		s.User.Email = *patch.Email
	}
	if patch.FirstName != nil {
		s.User.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		s.User.LastName = *patch.LastName
	}
	if patch.Address != nil {
		addr := *patch.Address
		s.User.Address = &addr
	}

	return true
}

// Clone returns a deep copy of the session.
func (s *Session) Clone() Session {
	return Session{
		IsAuthenticated: s.IsAuthenticated,
		User:            s.User.Clone(),
	}
}
