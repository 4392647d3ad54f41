package inventorydto

import (
	inventorysvc "sweet_admin/internal/api/inventory/service"
)

// Các loại sự kiện của form nhập kho.
const (
	EventTypeSearch   = "type_search" // Gõ vào ô tìm kiếm
	EventSelect       = "select"      // Chọn sản phẩm từ dropdown
	EventOpenDropdown = "open"        // Mở dropdown của một dòng
	EventCloseAll     = "close_all"   // Click ra ngoài, đóng mọi dropdown
	EventAddRow       = "add_row"     // Thêm dòng mới
	EventRemoveRow    = "remove_row"  // Xóa một dòng
)

// ImportFormEventInput đầu vào áp một sự kiện lên trạng thái form nhập kho.
// Form là snapshot do client gửi lên, engine trả về snapshot mới.
type ImportFormEventInput struct {
	Form      inventorysvc.ImportForm `json:"form" validate:"required"`
	Event     string                  `json:"event" validate:"required"`
	Row       int                     `json:"row"`
	Text      string                  `json:"text,omitempty"`
	ProductID string                  `json:"productId,omitempty"`
}

// ImportValidateInput đầu vào kiểm tra form trước khi mở dialog xác nhận.
type ImportValidateInput struct {
	Form inventorysvc.ImportForm `json:"form" validate:"required"`
}

// ImportConfirmInput đầu vào xác nhận nhập kho (bước hai của two-phase confirm).
type ImportConfirmInput struct {
	Form        inventorysvc.ImportForm `json:"form" validate:"required"`
	Description string                  `json:"description"`
}
