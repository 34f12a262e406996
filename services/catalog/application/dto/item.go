package dto

// ItemDTO is the read view of an item. ProductName is taken from the owning
// product at read time.
type ItemDTO struct {
	ID          int64  `json:"id"           example:"10"`
	ProductID   int64  `json:"product_id"   example:"1"`
	ProductName string `json:"product_name" example:"Garden Hose"`
	ItemName    string `json:"item_name"    example:"Nozzle"`
	Quantity    int    `json:"quantity"     example:"4"`
} // @name Item

// CreateItemDTO is the request body for POST /item.
type CreateItemDTO struct {
	ProductID int64  `json:"product_id" validate:"required,gt=0"                       example:"1"`
	ItemName  string `json:"item_name"  validate:"required,notblank,nocontrol,max=255" example:"Nozzle"`
	Quantity  int    `json:"quantity"   validate:"gte=0,lte=2147483647"                example:"4"`
} // @name CreateItem

// UpdateItemDTO is the request body for PUT /item/{id}. Omitted or null
// fields leave the stored value untouched.
type UpdateItemDTO struct {
	ProductID *int64  `json:"product_id" validate:"omitempty,gt=0"                       example:"2"`
	ItemName  *string `json:"item_name"  validate:"omitempty,notblank,nocontrol,max=255" example:"Spray Nozzle"`
	Quantity  *int    `json:"quantity"   validate:"omitempty,gte=0,lte=2147483647"       example:"6"`
} // @name UpdateItem
