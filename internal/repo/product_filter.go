package repo

// ProductFilter narrows a per-user product search. Nil pointers mean the
// dimension is unconstrained.
type ProductFilter struct {
	UserID     string
	Name       string
	CategoryID string
	// ExpiringWithinDays keeps products whose expiry date falls on or before
	// today+N (expired products included).
	ExpiringWithinDays *int
	Offset             *int
	Limit              *int
}
