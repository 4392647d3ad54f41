// Package models - model danh mục sản phẩm thuộc domain catalog.
package models

import "encoding/json"

// Category danh mục sản phẩm trên admin API.
// Ba danh sách tên dẫn xuất (sản phẩm kho, sản phẩm bán, combo đang liên kết)
// luôn là [] thay vì null để màn hình danh sách render trực tiếp.
type Category struct {
	ID                    string   `json:"id,omitempty"`
	Name                  string   `json:"name"`
	Describe              string   `json:"describe,omitempty"`
	ProductCount          int64    `json:"productCount,omitempty"`
	InventoryProductNames []string `json:"inventoryProductNames"`
	ProductNames          []string `json:"productNames"`
	ComboNames            []string `json:"comboNames"`
	CreatedAt             string   `json:"createdAt,omitempty"`
	UpdatedAt             string   `json:"updatedAt,omitempty"`
}

// UnmarshalJSON đổ dữ liệu upstream vào Category, thay danh sách tên null
// hoặc thiếu bằng danh sách rỗng
func (c *Category) UnmarshalJSON(data []byte) error {
	type alias Category
	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	if decoded.InventoryProductNames == nil {
		decoded.InventoryProductNames = []string{}
	}
	if decoded.ProductNames == nil {
		decoded.ProductNames = []string{}
	}
	if decoded.ComboNames == nil {
		decoded.ComboNames = []string{}
	}
	*c = Category(decoded)
	return nil
}
