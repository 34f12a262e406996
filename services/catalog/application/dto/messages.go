package dto

import pkgvalidator "github.com/ghuser/productcatalog/pkg/validator"

func init() {
	pkgvalidator.RegisterMessages(map[string]string{
		"product_name.required":  "Product name is required.",
		"product_name.notblank":  "Product name is required.",
		"product_name.max":       "Product name must be less than 255 characters.",
		"item_name.required":     "Item name is required.",
		"item_name.notblank":     "Item name is required.",
		"item_name.max":          "Item name must be less than 255 characters.",
		"product_id.required":    "Product id is required.",
		"product_id.gt":          "Product id must be a positive number.",
		"product_name.nocontrol": "Product name must not contain control characters.",
		"item_name.nocontrol":    "Item name must not contain control characters.",
		"quantity.gte":           "Quantity must not be negative.",
		"quantity.lte":           "Quantity must not exceed 2147483647.",
	})
}
