// Package inventorysvc - nghiệp vụ kho hàng của dashboard.
// File này chứa engine của form nhập kho: máy trạng thái của ô chọn sản phẩm,
// lọc catalog, kiểm tra dữ liệu từng dòng và dựng payload nhập kho.
package inventorysvc

import (
	"fmt"
	"strings"
	"time"

	"sweet_admin/internal/api/inventory/models"
	"sweet_admin/internal/common"
)

// RowState trạng thái của ô chọn sản phẩm trên một dòng nhập kho.
// Máy trạng thái là tập đóng với ba trạng thái và các chuyển tiếp tường minh.
type RowState string

const (
	RowEmpty     RowState = "EMPTY"     // Chưa chọn sản phẩm
	RowSearching RowState = "SEARCHING" // Đang gõ tìm kiếm, dropdown mở
	RowSelected  RowState = "SELECTED"  // Đã chọn sản phẩm, dropdown đóng
)

// ImportRow một dòng trong form nhập kho.
// ProductName và CategoryName là snapshot tại thời điểm chọn, để việc chuyển
// trang catalog sau đó không làm mất chữ hiển thị trên dòng.
type ImportRow struct {
	State         RowState `json:"state"`
	SearchText    string   `json:"searchText"`
	ProductID     string   `json:"productId,omitempty"`
	ProductName   string   `json:"productName,omitempty"`
	CategoryName  string   `json:"categoryName,omitempty"`
	HasExpiryDate bool     `json:"hasExpiryDate"`
	Quantity      int64    `json:"quantity"`
	ExpiryDate    string   `json:"expiryDate,omitempty"` // YYYY-MM-DD
	Notes         string   `json:"notes,omitempty"`
}

// ImportForm trạng thái toàn bộ form nhập kho.
// OpenDropdown là index của dòng đang mở dropdown, -1 nghĩa là không dòng nào mở.
type ImportForm struct {
	Rows         []ImportRow `json:"rows"`
	OpenDropdown int         `json:"openDropdown"`
}

// NewImportForm tạo form mới với một dòng trống
func NewImportForm() *ImportForm {
	return &ImportForm{
		Rows:         []ImportRow{{State: RowEmpty}},
		OpenDropdown: -1,
	}
}

// AddRow thêm một dòng trống vào cuối form
func (f *ImportForm) AddRow() {
	f.Rows = append(f.Rows, ImportRow{State: RowEmpty})
}

// RemoveRow xóa một dòng, form luôn giữ ít nhất một dòng
func (f *ImportForm) RemoveRow(index int) error {
	if index < 0 || index >= len(f.Rows) {
		return common.ErrInvalidOperation
	}
	if len(f.Rows) == 1 {
		return common.NewError(common.ErrCodeBusinessOperation, "Form phải có ít nhất một dòng", common.StatusBadRequest, nil)
	}
	f.Rows = append(f.Rows[:index], f.Rows[index+1:]...)
	if f.OpenDropdown == index {
		f.OpenDropdown = -1
	} else if f.OpenDropdown > index {
		f.OpenDropdown--
	}
	return nil
}

// TypeSearch xử lý người dùng gõ vào ô tìm kiếm của một dòng.
// Gõ khi đang ở trạng thái SELECTED KHÔNG xóa ngay sản phẩm đã chọn (cho phép
// sửa chữ nhỏ trong lúc xem); sản phẩm chỉ bị gỡ khi ô bị xóa trống.
// Mở dropdown của dòng này đồng thời đóng dropdown của mọi dòng khác.
func (f *ImportForm) TypeSearch(index int, text string) error {
	if index < 0 || index >= len(f.Rows) {
		return common.ErrInvalidOperation
	}

	row := &f.Rows[index]
	row.SearchText = text

	if text == "" {
		// Ô bị xóa trống: gỡ sản phẩm và về trạng thái rỗng
		row.State = RowEmpty
		row.ProductID = ""
		row.ProductName = ""
		row.CategoryName = ""
		row.HasExpiryDate = false
		f.OpenDropdown = -1
		return nil
	}

	// Đang có chữ: mở dropdown tìm kiếm, giữ nguyên sản phẩm đã chọn nếu có
	if row.State != RowSelected {
		row.State = RowSearching
	}
	f.OpenDropdown = index
	return nil
}

// SelectProduct chọn một sản phẩm từ dropdown cho một dòng.
// Ghi snapshot tên sản phẩm và tên danh mục lên dòng ngay lúc chọn.
func (f *ImportForm) SelectProduct(index int, product *models.InventoryProduct) error {
	if index < 0 || index >= len(f.Rows) {
		return common.ErrInvalidOperation
	}
	if product == nil || product.ID == "" {
		return common.ErrRequiredField
	}

	row := &f.Rows[index]
	row.State = RowSelected
	row.SearchText = product.Name
	row.ProductID = product.ID
	row.ProductName = product.Name
	row.CategoryName = product.CategoryName
	row.HasExpiryDate = product.HasExpiryDate
	if !product.HasExpiryDate {
		row.ExpiryDate = ""
	}
	f.OpenDropdown = -1
	return nil
}

// OpenRowDropdown mở dropdown của một dòng, đóng mọi dropdown khác
func (f *ImportForm) OpenRowDropdown(index int) error {
	if index < 0 || index >= len(f.Rows) {
		return common.ErrInvalidOperation
	}
	f.OpenDropdown = index
	return nil
}

// CloseDropdowns đóng tất cả dropdown (tương đương click ra ngoài)
func (f *ImportForm) CloseDropdowns() {
	f.OpenDropdown = -1
}

// ExpiryInputDisabled cho biết ô nhập hạn sử dụng của một dòng có bị khóa không,
// kèm lý do để hiển thị tooltip.
func (f *ImportForm) ExpiryInputDisabled(index int) (bool, string) {
	if index < 0 || index >= len(f.Rows) {
		return true, "Dòng không tồn tại"
	}
	row := &f.Rows[index]
	if row.ProductID == "" {
		return true, "Chọn sản phẩm trước khi nhập hạn sử dụng"
	}
	if !row.HasExpiryDate {
		return true, "Sản phẩm này không theo dõi hạn sử dụng"
	}
	return false, ""
}

// RowExpiryView trạng thái ô nhập hạn sử dụng của một dòng trên form
type RowExpiryView struct {
	Disabled bool   `json:"disabled"`
	Reason   string `json:"reason,omitempty"` // Tooltip giải thích vì sao ô bị khóa
}

// ViewModel snapshot trả về cho client sau mỗi sự kiện: trạng thái form kèm
// trạng thái khóa (và lý do) của ô hạn sử dụng từng dòng
func (f *ImportForm) ViewModel() map[string]interface{} {
	expiryInputs := make([]RowExpiryView, len(f.Rows))
	for i := range f.Rows {
		disabled, reason := f.ExpiryInputDisabled(i)
		expiryInputs[i] = RowExpiryView{Disabled: disabled, Reason: reason}
	}
	return map[string]interface{}{
		"rows":         f.Rows,
		"openDropdown": f.OpenDropdown,
		"expiryInputs": expiryInputs,
	}
}

// FilterCatalog lọc danh sách sản phẩm tồn kho theo từ khóa.
// So khớp substring không phân biệt hoa thường trên tên, loại sản phẩm ngừng hoạt động.
func FilterCatalog(catalog []models.InventoryProduct, query string) []models.InventoryProduct {
	query = strings.ToLower(strings.TrimSpace(query))
	result := make([]models.InventoryProduct, 0, len(catalog))
	for _, product := range catalog {
		if !product.Active {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(product.Name), query) {
			continue
		}
		result = append(result, product)
	}
	return result
}

// RowError lỗi kiểm tra của một dòng trong form
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// Error implement error interface
func (e *RowError) Error() string {
	return fmt.Sprintf("dòng %d: %s", e.Row+1, e.Message)
}

// Validate kiểm tra toàn bộ các dòng trước khi xác nhận.
// Tất cả dòng đều được kiểm tra nhưng chỉ lỗi đầu tiên được trả về và chặn submit.
// So sánh hạn sử dụng theo ngày (cắt giờ về nửa đêm); hạn bằng hôm nay được chấp nhận.
func (f *ImportForm) Validate(today time.Time) *RowError {
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	for i := range f.Rows {
		row := &f.Rows[i]

		if row.ProductID == "" {
			return &RowError{Row: i, Message: "Chưa chọn sản phẩm"}
		}
		if row.Quantity <= 0 {
			return &RowError{Row: i, Message: "Số lượng phải là số nguyên dương"}
		}
		if row.HasExpiryDate {
			if row.ExpiryDate == "" {
				return &RowError{Row: i, Message: "Sản phẩm này bắt buộc nhập hạn sử dụng"}
			}
			expiry, err := time.ParseInLocation("2006-01-02", row.ExpiryDate, today.Location())
			if err != nil {
				return &RowError{Row: i, Message: "Hạn sử dụng không đúng định dạng YYYY-MM-DD"}
			}
			if expiry.Before(todayDate) {
				return &RowError{Row: i, Message: "Hạn sử dụng không được trước ngày hôm nay"}
			}
		}
	}
	return nil
}

// ImportPayloadItem một lô hàng trong payload nhập kho gửi lên admin API
type ImportPayloadItem struct {
	ProductID  string `json:"productId"`
	Quantity   int64  `json:"quantity"`
	ExpiryDate string `json:"expiryDate,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// ImportPayload payload của một phiên nhập kho, gửi lên trong MỘT request duy nhất
type ImportPayload struct {
	Description string              `json:"description"`
	Items       []ImportPayloadItem `json:"items"`
}

// BuildPayload dựng payload nhập kho từ form đã qua kiểm tra.
// Toàn bộ các dòng được gộp vào một request, không gửi từng dòng.
// Description để trống thì gửi chuỗi rỗng.
func (f *ImportForm) BuildPayload(description string) *ImportPayload {
	items := make([]ImportPayloadItem, 0, len(f.Rows))
	for i := range f.Rows {
		row := &f.Rows[i]
		item := ImportPayloadItem{
			ProductID: row.ProductID,
			Quantity:  row.Quantity,
			Notes:     row.Notes,
		}
		if row.HasExpiryDate {
			item.ExpiryDate = row.ExpiryDate
		}
		items = append(items, item)
	}
	return &ImportPayload{
		Description: description,
		Items:       items,
	}
}
