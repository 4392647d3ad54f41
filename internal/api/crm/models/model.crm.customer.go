// Package models - model khách hàng thuộc domain crm.
package models

// Customer khách hàng trên admin API.
type Customer struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	AvatarURL  string `json:"avatarUrl,omitempty"`
	Point      int64  `json:"point"`
	ZaloID     string `json:"zaloId,omitempty"`
	OrderCount int64  `json:"orderCount,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
	UpdatedAt  string `json:"updatedAt,omitempty"`
}
