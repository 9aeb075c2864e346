package models

// CartLine is one product/quantity pair in the cart. A line never exists
// with a quantity below 1: any transition that would produce one removes
// the line instead.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CartState holds the cart lines plus the sidebar visibility flag.
// Lines are unique by product ID and keep their first-added order across
// quantity updates. The zero value is a valid empty, closed cart.
type CartState struct {
	Lines  []CartLine `json:"items"`
	IsOpen bool       `json:"isOpen"`
}

// CartAction is one variant of the cart transition union. Implementations
// are the only way to derive a new CartState from an existing one.
type CartAction interface {
	apply(CartState) CartState
}

// AddItem appends a quantity-1 line for the product, or increments the
// existing line by exactly 1. Callers wanting "add N" dispatch N times.
type AddItem struct {
	Product Product
}

// RemoveItem deletes the line for ProductID. Removing an absent product
// is a no-op.
type RemoveItem struct {
	ProductID string
}

// UpdateQuantity sets the line's quantity. A result of zero or less
// removes the line in the same transition.
type UpdateQuantity struct {
	ProductID string
	Quantity  int
}

// ClearCart empties the line list. The visibility flag is untouched.
type ClearCart struct{}

// ToggleCart flips the visibility flag. OpenCart and CloseCart set it.
type ToggleCart struct{}
type OpenCart struct{}
type CloseCart struct{}

// Apply runs one action against the state and returns the resulting state.
// The receiver is never mutated: every transition copies the line list, so
// previously returned snapshots stay consistent. A nil action returns the
// state unchanged.
func (s CartState) Apply(action CartAction) CartState {
	if action == nil {
		return s
	}
	return action.apply(s)
}

// TotalItems is the sum of all line quantities, recomputed on every call.
func (s CartState) TotalItems() int {
	total := 0
	for _, line := range s.Lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice is the sum of price times quantity over all lines, recomputed
// on every call.
func (s CartState) TotalPrice() float64 {
	total := 0.0
	for _, line := range s.Lines {
		total += line.Product.Price * float64(line.Quantity)
	}
	return total
}

func (a AddItem) apply(s CartState) CartState {
	lines := make([]CartLine, len(s.Lines))
	copy(lines, s.Lines)

	for i, line := range lines {
		if line.Product.ID == a.Product.ID {
			lines[i].Quantity++
			return CartState{Lines: lines, IsOpen: s.IsOpen}
		}
	}
	lines = append(lines, CartLine{Product: a.Product, Quantity: 1})
	return CartState{Lines: lines, IsOpen: s.IsOpen}
}

func (a RemoveItem) apply(s CartState) CartState {
	lines := make([]CartLine, 0, len(s.Lines))
	for _, line := range s.Lines {
		if line.Product.ID != a.ProductID {
			lines = append(lines, line)
		}
	}
	return CartState{Lines: lines, IsOpen: s.IsOpen}
}

func (a UpdateQuantity) apply(s CartState) CartState {
	lines := make([]CartLine, 0, len(s.Lines))
	for _, line := range s.Lines {
		if line.Product.ID == a.ProductID {
			if a.Quantity <= 0 {
				continue // dropping to zero or below removes the line
			}
			line.Quantity = a.Quantity
		}
		lines = append(lines, line)
	}
	return CartState{Lines: lines, IsOpen: s.IsOpen}
}

func (ClearCart) apply(s CartState) CartState {
	return CartState{Lines: []CartLine{}, IsOpen: s.IsOpen}
}

func (ToggleCart) apply(s CartState) CartState {
	return CartState{Lines: s.Lines, IsOpen: !s.IsOpen}
}

func (OpenCart) apply(s CartState) CartState {
	return CartState{Lines: s.Lines, IsOpen: true}
}

func (CloseCart) apply(s CartState) CartState {
	return CartState{Lines: s.Lines, IsOpen: false}
}
