// Package models - model sản phẩm và combo thuộc domain catalog.
package models

// ComboItem một dòng hàng trong combo, tham chiếu tới sản phẩm kho.
type ComboItem struct {
	InventoryProductID   string `json:"inventoryProductId,omitempty"`
	InventoryProductName string `json:"inventoryProductName,omitempty"`
	Quantity             int64  `json:"quantity"`
	IsGift               bool   `json:"isGift"`
}

// Combo gói bán thuộc sản phẩm, gồm các sản phẩm kho với giá cố định
// hoặc giá khuyến mãi. Giá khuyến mãi chỉ có hiệu lực trong khung
// khuyến mãi [PromotionStart, PromotionEnd].
type Combo struct {
	ID               string      `json:"id,omitempty"`
	Name             string      `json:"name"`
	Price            float64     `json:"price"`
	PromotionalPrice *float64    `json:"promotionalPrice,omitempty"`
	PromotionStart   string      `json:"promotionStart,omitempty"`
	PromotionEnd     string      `json:"promotionEnd,omitempty"`
	Active           bool        `json:"isActive"`
	Items            []ComboItem `json:"items"`
}

// Product sản phẩm trên admin API.
type Product struct {
	ID           string  `json:"id,omitempty"`
	Name         string  `json:"name"`
	Describe     string  `json:"describe,omitempty"`
	Price        float64 `json:"price"`
	ImageURL     string  `json:"imageUrl,omitempty"`
	CategoryID   string  `json:"categoryId,omitempty"`
	CategoryName string  `json:"categoryName,omitempty"`
	Active       bool    `json:"active"`
	Combos       []Combo `json:"combos,omitempty"`
	CreatedAt    string  `json:"createdAt,omitempty"`
	UpdatedAt    string  `json:"updatedAt,omitempty"`
}
