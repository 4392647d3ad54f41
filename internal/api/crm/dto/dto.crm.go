package crmdto

// CustomerCreateInput đầu vào tạo khách hàng.
type CustomerCreateInput struct {
	Name    string `json:"name" validate:"required" maxLength:"100"`
	Phone   string `json:"phone" validate:"required,vn_phone"`
	Address string `json:"address,omitempty" maxLength:"300"`
	ZaloID  string `json:"zaloId,omitempty"`
}

// CustomerUpdateInput đầu vào cập nhật khách hàng.
type CustomerUpdateInput struct {
	Name    string `json:"name,omitempty" maxLength:"100"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,vn_phone"`
	Address string `json:"address,omitempty" maxLength:"300"`
	ZaloID  string `json:"zaloId,omitempty"`
}

// OrderUpdateInput đầu vào cập nhật đơn hàng (chỉ trạng thái).
type OrderUpdateInput struct {
	Status string `json:"status" validate:"required"`
}
