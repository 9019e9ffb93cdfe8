package models

// CartItem is one line of a session cart: a full copy of the dish at the
// time it was added, plus a quantity. Quantity is always >= 1; a line that
// would drop to zero is removed instead. Cart lines live in the session
// blob store, never in the database.
type CartItem struct {
	Dish     Dish `json:"dish"`
	Quantity int  `json:"quantity"`
}
