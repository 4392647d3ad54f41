package voucherdto

// VoucherCreateInput đầu vào tạo voucher.
// Tùy Type mà Price hoặc Percent/MaxPrice là bắt buộc; service kiểm tra
// và chỉ gửi lên admin API các field thuộc loại đang chọn.
type VoucherCreateInput struct {
	Name           string  `json:"name" validate:"required" maxLength:"200"`
	Type           string  `json:"type" validate:"required,oneof=FIXED PERCENT"`
	Price          float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Percent        float64 `json:"percent,omitempty" validate:"omitempty,gt=0,lte=100"`
	MaxPrice       float64 `json:"maxPrice,omitempty" validate:"omitempty,gte=0"`
	MinApply       float64 `json:"minApply,omitempty" validate:"omitempty,gte=0"`
	Quantity       int64   `json:"quantity" validate:"required,min=1"`
	PointsRequired int64   `json:"pointsRequired,omitempty" validate:"omitempty,gte=0"`
	IsRedeemable   bool    `json:"isRedeemable"`
}

// VoucherUpdateInput đầu vào cập nhật voucher.
type VoucherUpdateInput struct {
	Name           string   `json:"name,omitempty" maxLength:"200"`
	Type           string   `json:"type,omitempty" validate:"omitempty,oneof=FIXED PERCENT"`
	Price          *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Percent        *float64 `json:"percent,omitempty" validate:"omitempty,gt=0,lte=100"`
	MaxPrice       *float64 `json:"maxPrice,omitempty" validate:"omitempty,gte=0"`
	MinApply       *float64 `json:"minApply,omitempty" validate:"omitempty,gte=0"`
	Quantity       *int64   `json:"quantity,omitempty" validate:"omitempty,min=0"`
	PointsRequired *int64   `json:"pointsRequired,omitempty" validate:"omitempty,gte=0"`
	IsRedeemable   *bool    `json:"isRedeemable,omitempty"`
	IsActive       *bool    `json:"isActive,omitempty"`
}
