package models

// Item belongs to exactly one Product. Product is the owning row loaded by a
// join; it is read-only context and never written back.
type Item struct {
	ID        int64
	ProductID int64
	ItemName  ItemName
	Quantity  int
	Product   *Product
}

// OwnerName returns the owning product's name, or "" when the relation was
// not loaded.
func (i *Item) OwnerName() string {
	if i.Product == nil {
		return ""
	}
	return i.Product.ProductName.String()
}
