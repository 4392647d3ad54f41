// Package models - model voucher thuộc domain voucher.
package models

import "sweet_admin/internal/utility"

// Các loại voucher.
const (
	VoucherTypeFixed   = "FIXED"   // Giảm số tiền cố định
	VoucherTypePercent = "PERCENT" // Giảm theo phần trăm, có trần
)

// AllVoucherTypes tập đóng các loại voucher, dùng cho dropdown trên form
var AllVoucherTypes = []string{VoucherTypeFixed, VoucherTypePercent}

// Voucher phiếu giảm giá trên admin API.
// Type quyết định field giá trị nào có hiệu lực: FIXED dùng Price,
// PERCENT dùng Percent và MaxPrice.
type Voucher struct {
	ID             string  `json:"id,omitempty"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	Price          float64 `json:"price,omitempty"`
	Percent        float64 `json:"percent,omitempty"`
	MaxPrice       float64 `json:"maxPrice,omitempty"`
	MinApply       float64 `json:"minApply,omitempty"`
	Quantity       int64   `json:"quantity"`
	PointsRequired int64   `json:"pointsRequired,omitempty"`
	IsRedeemable   bool    `json:"isRedeemable"`
	IsActive       bool    `json:"isActive"`
	CreatedAt      string  `json:"createdAt,omitempty"`
	UpdatedAt      string  `json:"updatedAt,omitempty"`
}

// IsValidVoucherType kiểm tra loại voucher có hợp lệ không
func IsValidVoucherType(voucherType string) bool {
	return utility.Contains(AllVoucherTypes, voucherType)
}
