package catalogdto

// CategoryCreateInput đầu vào tạo danh mục.
type CategoryCreateInput struct {
	Name     string `json:"name" validate:"required,no_xss" maxLength:"100"`
	Describe string `json:"describe,omitempty" validate:"omitempty,no_xss"`
}

// CategoryUpdateInput đầu vào cập nhật danh mục.
type CategoryUpdateInput struct {
	Name     string `json:"name,omitempty" validate:"omitempty,no_xss" maxLength:"100"`
	Describe string `json:"describe,omitempty" validate:"omitempty,no_xss"`
}

// ComboItemInput một dòng hàng trong combo.
type ComboItemInput struct {
	InventoryProductID string `json:"inventoryProductId" validate:"required"`
	Quantity           int64  `json:"quantity" validate:"required,min=1"`
	IsGift             bool   `json:"isGift"`
}

// ComboInput đầu vào combo của sản phẩm. Giá khuyến mãi kèm khung thời gian
// là tùy chọn; khung chỉ có nghĩa khi có giá khuyến mãi.
type ComboInput struct {
	Name             string           `json:"name" validate:"required,no_xss" maxLength:"200"`
	Price            float64          `json:"price" validate:"min=0"`
	PromotionalPrice *float64         `json:"promotionalPrice,omitempty" validate:"omitempty,gt=0"`
	PromotionStart   string           `json:"promotionStart,omitempty"`
	PromotionEnd     string           `json:"promotionEnd,omitempty"`
	Active           bool             `json:"isActive"`
	Items            []ComboItemInput `json:"items" validate:"omitempty,dive"`
}

// ProductCreateInput đầu vào tạo sản phẩm.
// Combos để trống thì service tự thêm combo giữ chỗ (tên sản phẩm, giá 0,
// không có dòng hàng) vì admin API yêu cầu mọi sản phẩm có ít nhất một combo.
type ProductCreateInput struct {
	Name       string       `json:"name" validate:"required,no_xss" maxLength:"200"`
	Describe   string       `json:"describe,omitempty" validate:"omitempty,no_xss"`
	Price      float64      `json:"price" validate:"required,gt=0"`
	ImageURL   string       `json:"imageUrl,omitempty"`
	CategoryID string       `json:"categoryId" validate:"required"`
	Combos     []ComboInput `json:"combos,omitempty" validate:"omitempty,dive"`
}

// ProductUpdateInput đầu vào cập nhật sản phẩm.
type ProductUpdateInput struct {
	Name       string       `json:"name,omitempty" validate:"omitempty,no_xss" maxLength:"200"`
	Describe   string       `json:"describe,omitempty" validate:"omitempty,no_xss"`
	Price      *float64     `json:"price,omitempty" validate:"omitempty,gt=0"`
	ImageURL   string       `json:"imageUrl,omitempty"`
	CategoryID string       `json:"categoryId,omitempty"`
	Active     *bool        `json:"active,omitempty"`
	Combos     []ComboInput `json:"combos,omitempty" validate:"omitempty,dive"`
}
