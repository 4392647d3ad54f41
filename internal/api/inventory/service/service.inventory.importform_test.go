// Package inventorysvc - Test máy trạng thái ô chọn sản phẩm và kiểm tra form nhập kho.
package inventorysvc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sweet_admin/internal/api/inventory/models"
)

func sampleProduct() *models.InventoryProduct {
	return &models.InventoryProduct{
		ID:            "p1",
		Name:          "Bánh su kem",
		CategoryName:  "Bánh ngọt",
		HasExpiryDate: true,
		Active:        true,
	}
}

func TestImportForm_NewForm(t *testing.T) {
	form := NewImportForm()
	require.Len(t, form.Rows, 1, "form mới phải có đúng một dòng trống")
	assert.Equal(t, RowEmpty, form.Rows[0].State)
	assert.Equal(t, -1, form.OpenDropdown, "form mới không có dropdown nào mở")
}

func TestImportForm_TypeSearchOpensDropdown(t *testing.T) {
	form := NewImportForm()

	require.NoError(t, form.TypeSearch(0, "su kem"))
	assert.Equal(t, RowSearching, form.Rows[0].State)
	assert.Equal(t, 0, form.OpenDropdown)
}

func TestImportForm_SelectProductSnapshotsNames(t *testing.T) {
	form := NewImportForm()
	require.NoError(t, form.TypeSearch(0, "su"))

	require.NoError(t, form.SelectProduct(0, sampleProduct()))

	row := form.Rows[0]
	assert.Equal(t, RowSelected, row.State)
	assert.Equal(t, "p1", row.ProductID)
	assert.Equal(t, "Bánh su kem", row.ProductName, "tên sản phẩm phải được snapshot lúc chọn")
	assert.Equal(t, "Bánh ngọt", row.CategoryName, "tên danh mục phải được snapshot lúc chọn")
	assert.Equal(t, "Bánh su kem", row.SearchText)
	assert.Equal(t, -1, form.OpenDropdown, "chọn xong phải đóng dropdown")
}

func TestImportForm_TypingWhileSelectedKeepsSelection(t *testing.T) {
	form := NewImportForm()
	require.NoError(t, form.SelectProduct(0, sampleProduct()))

	// Gõ thêm chữ khi đã chọn: KHÔNG gỡ sản phẩm
	require.NoError(t, form.TypeSearch(0, "Bánh su kem đặc biệt"))
	assert.Equal(t, RowSelected, form.Rows[0].State)
	assert.Equal(t, "p1", form.Rows[0].ProductID, "gõ khi đã chọn không được xóa sản phẩm")
	assert.Equal(t, 0, form.OpenDropdown, "gõ phải mở lại dropdown")

	// Xóa trống ô: gỡ sản phẩm, về trạng thái rỗng
	require.NoError(t, form.TypeSearch(0, ""))
	assert.Equal(t, RowEmpty, form.Rows[0].State)
	assert.Empty(t, form.Rows[0].ProductID, "xóa trống ô mới gỡ sản phẩm")
	assert.Equal(t, -1, form.OpenDropdown)
}

func TestImportForm_OnlyOneDropdownOpen(t *testing.T) {
	form := NewImportForm()
	form.AddRow()
	form.AddRow()

	require.NoError(t, form.TypeSearch(0, "kem"))
	assert.Equal(t, 0, form.OpenDropdown)

	// Gõ ở dòng khác: dropdown dòng cũ phải đóng
	require.NoError(t, form.TypeSearch(2, "mì"))
	assert.Equal(t, 2, form.OpenDropdown, "chỉ một dropdown được mở tại một thời điểm")

	form.CloseDropdowns()
	assert.Equal(t, -1, form.OpenDropdown)
}

func TestImportForm_RemoveRowKeepsAtLeastOne(t *testing.T) {
	form := NewImportForm()

	err := form.RemoveRow(0)
	assert.Error(t, err, "form phải giữ ít nhất một dòng")

	form.AddRow()
	require.NoError(t, form.RemoveRow(0))
	assert.Len(t, form.Rows, 1)
}

func TestImportForm_RemoveRowAdjustsOpenDropdown(t *testing.T) {
	form := NewImportForm()
	form.AddRow()
	form.AddRow()

	require.NoError(t, form.TypeSearch(2, "kem"))
	require.Equal(t, 2, form.OpenDropdown)

	require.NoError(t, form.RemoveRow(0))
	assert.Equal(t, 1, form.OpenDropdown, "xóa dòng phía trên phải dời index dropdown đang mở")

	require.NoError(t, form.RemoveRow(1))
	assert.Equal(t, -1, form.OpenDropdown, "xóa chính dòng đang mở phải đóng dropdown")
}

func TestImportForm_SelectProductWithoutExpiryClearsDate(t *testing.T) {
	form := NewImportForm()
	form.Rows[0].ExpiryDate = "2026-12-31"

	product := sampleProduct()
	product.HasExpiryDate = false
	require.NoError(t, form.SelectProduct(0, product))

	assert.Empty(t, form.Rows[0].ExpiryDate, "sản phẩm không theo dõi hạn thì phải xóa hạn đã nhập")

	disabled, reason := form.ExpiryInputDisabled(0)
	assert.True(t, disabled)
	assert.NotEmpty(t, reason, "ô hạn bị khóa phải có lý do cho tooltip")
}

func TestImportForm_ExpiryInputDisabledBeforeSelect(t *testing.T) {
	form := NewImportForm()
	disabled, reason := form.ExpiryInputDisabled(0)
	assert.True(t, disabled, "chưa chọn sản phẩm thì ô hạn bị khóa")
	assert.NotEmpty(t, reason)
}

func TestImportForm_ViewModelSurfacesExpiryState(t *testing.T) {
	form := NewImportForm()
	form.AddRow()

	product := sampleProduct()
	product.HasExpiryDate = false
	require.NoError(t, form.SelectProduct(0, product))

	vm := form.ViewModel()
	expiryInputs, ok := vm["expiryInputs"].([]RowExpiryView)
	require.True(t, ok, "snapshot trả về client phải có trạng thái ô hạn sử dụng từng dòng")
	require.Len(t, expiryInputs, 2)

	assert.True(t, expiryInputs[0].Disabled, "sản phẩm không theo dõi hạn thì ô hạn bị khóa")
	assert.NotEmpty(t, expiryInputs[0].Reason, "ô bị khóa phải kèm lý do cho tooltip")
	assert.True(t, expiryInputs[1].Disabled, "dòng chưa chọn sản phẩm cũng bị khóa")

	rows, ok := vm["rows"].([]ImportRow)
	require.True(t, ok)
	assert.Len(t, rows, 2, "snapshot vẫn phải mang đầy đủ các dòng của form")
}

func TestFilterCatalog(t *testing.T) {
	catalog := []models.InventoryProduct{
		{ID: "1", Name: "Bánh su kem", Active: true},
		{ID: "2", Name: "Bánh mì", Active: true},
		{ID: "3", Name: "Su kem lạnh", Active: false},
	}

	result := FilterCatalog(catalog, "su kem")
	require.Len(t, result, 1, "sản phẩm ngừng hoạt động không được xuất hiện")
	assert.Equal(t, "1", result[0].ID)

	result = FilterCatalog(catalog, "BÁNH")
	assert.Len(t, result, 2, "lọc không phân biệt hoa thường")

	result = FilterCatalog(catalog, "")
	assert.Len(t, result, 2, "từ khóa rỗng trả về toàn bộ sản phẩm đang hoạt động")
}

func TestImportForm_Validate(t *testing.T) {
	today := time.Date(2026, 9, 1, 14, 30, 0, 0, time.Local)

	t.Run("dòng chưa chọn sản phẩm", func(t *testing.T) {
		form := NewImportForm()
		rowErr := form.Validate(today)
		require.NotNil(t, rowErr)
		assert.Equal(t, 0, rowErr.Row)
	})

	t.Run("số lượng không dương", func(t *testing.T) {
		form := NewImportForm()
		require.NoError(t, form.SelectProduct(0, sampleProduct()))
		form.Rows[0].Quantity = 0
		form.Rows[0].ExpiryDate = "2026-12-31"

		rowErr := form.Validate(today)
		require.NotNil(t, rowErr)
		assert.Contains(t, rowErr.Message, "Số lượng")
	})

	t.Run("thiếu hạn sử dụng khi bắt buộc", func(t *testing.T) {
		form := NewImportForm()
		require.NoError(t, form.SelectProduct(0, sampleProduct()))
		form.Rows[0].Quantity = 5

		rowErr := form.Validate(today)
		require.NotNil(t, rowErr)
		assert.Contains(t, rowErr.Message, "hạn sử dụng")
	})

	t.Run("hạn trước hôm nay bị từ chối", func(t *testing.T) {
		form := NewImportForm()
		require.NoError(t, form.SelectProduct(0, sampleProduct()))
		form.Rows[0].Quantity = 5
		form.Rows[0].ExpiryDate = "2026-08-31"

		rowErr := form.Validate(today)
		require.NotNil(t, rowErr)
		assert.Contains(t, rowErr.Message, "không được trước")
	})

	t.Run("hạn bằng hôm nay được chấp nhận", func(t *testing.T) {
		form := NewImportForm()
		require.NoError(t, form.SelectProduct(0, sampleProduct()))
		form.Rows[0].Quantity = 5
		form.Rows[0].ExpiryDate = "2026-09-01"

		assert.Nil(t, form.Validate(today), "so sánh theo ngày, hạn hôm nay hợp lệ")
	})

	t.Run("lỗi đầu tiên được trả về khi nhiều dòng sai", func(t *testing.T) {
		form := NewImportForm()
		require.NoError(t, form.SelectProduct(0, sampleProduct()))
		form.Rows[0].Quantity = 5
		form.Rows[0].ExpiryDate = "2026-12-31"
		form.AddRow()

		rowErr := form.Validate(today)
		require.NotNil(t, rowErr)
		assert.Equal(t, 1, rowErr.Row, "lỗi trả về phải thuộc dòng sai đầu tiên")
	})
}

func TestImportForm_BuildPayload(t *testing.T) {
	form := NewImportForm()
	require.NoError(t, form.SelectProduct(0, sampleProduct()))
	form.Rows[0].Quantity = 10
	form.Rows[0].ExpiryDate = "2026-12-31"
	form.Rows[0].Notes = "lô sáng"

	form.AddRow()
	noExpiry := sampleProduct()
	noExpiry.ID = "p2"
	noExpiry.Name = "Bánh quy bơ"
	noExpiry.HasExpiryDate = false
	require.NoError(t, form.SelectProduct(1, noExpiry))
	form.Rows[1].Quantity = 3
	form.Rows[1].ExpiryDate = "2026-12-31" // SelectProduct đã xóa, set lại để chắc chắn bị loại

	payload := form.BuildPayload("Nhập hàng đầu tuần")

	assert.Equal(t, "Nhập hàng đầu tuần", payload.Description)
	require.Len(t, payload.Items, 2, "toàn bộ dòng phải gộp vào MỘT payload")
	assert.Equal(t, "2026-12-31", payload.Items[0].ExpiryDate)
	assert.Empty(t, payload.Items[1].ExpiryDate, "sản phẩm không theo dõi hạn thì payload không có expiryDate")
}
