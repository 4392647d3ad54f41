// Package catalogsvc - Test payload tạo sản phẩm, giá combo theo khung khuyến mãi
// và danh sách tên danh mục.
package catalogsvc

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdto "sweet_admin/internal/api/catalog/dto"
	"sweet_admin/internal/api/catalog/models"
)

func TestBuildCreatePayload_ComboGiuCho(t *testing.T) {
	service := NewProductService()

	payload := service.BuildCreatePayload(&catalogdto.ProductCreateInput{
		Name:       "Bánh su kem",
		Price:      15000,
		CategoryID: "c1",
	})

	combos, ok := payload["combos"].([]map[string]interface{})
	require.True(t, ok)
	require.Len(t, combos, 1, "không nhập combo thì phải tự thêm combo giữ chỗ")
	assert.Equal(t, "Bánh su kem", combos[0]["name"], "combo giữ chỗ lấy tên sản phẩm")
	assert.Equal(t, float64(0), combos[0]["price"], "combo giữ chỗ có giá 0")
	items, ok := combos[0]["items"].([]map[string]interface{})
	require.True(t, ok)
	assert.Empty(t, items, "combo giữ chỗ không có dòng hàng")
	assert.NotContains(t, combos[0], "promotionalPrice")
}

func TestBuildCreatePayload_GiuComboNguoiNhap(t *testing.T) {
	service := NewProductService()
	promoPrice := float64(40000)

	payload := service.BuildCreatePayload(&catalogdto.ProductCreateInput{
		Name:       "Bánh mì",
		Price:      10000,
		CategoryID: "c1",
		Combos: []catalogdto.ComboInput{
			{
				Name:             "Combo sáng",
				Price:            45000,
				PromotionalPrice: &promoPrice,
				PromotionStart:   "2026-09-01T00:00:00Z",
				PromotionEnd:     "2026-09-30T23:59:59Z",
				Active:           true,
				Items: []catalogdto.ComboItemInput{
					{InventoryProductID: "ip1", Quantity: 2},
					{InventoryProductID: "ip2", Quantity: 1, IsGift: true},
				},
			},
			{Name: "Combo thường", Price: 30000, Active: true},
		},
	})

	combos, ok := payload["combos"].([]map[string]interface{})
	require.True(t, ok)
	require.Len(t, combos, 2, "combo người dùng nhập phải được giữ nguyên")

	assert.Equal(t, float64(40000), combos[0]["promotionalPrice"])
	assert.Equal(t, "2026-09-01T00:00:00Z", combos[0]["promotionStart"])
	assert.Equal(t, "2026-09-30T23:59:59Z", combos[0]["promotionEnd"])
	items, ok := combos[0]["items"].([]map[string]interface{})
	require.True(t, ok)
	require.Len(t, items, 2)
	assert.Equal(t, true, items[1]["isGift"], "dòng hàng quà tặng phải giữ cờ isGift")

	assert.NotContains(t, combos[1], "promotionalPrice", "combo không khuyến mãi không gửi trường khuyến mãi")
	assert.NotContains(t, combos[1], "promotionStart")
}

func TestEffectivePrice(t *testing.T) {
	service := NewProductService()
	promoPrice := float64(75000)

	combo := func(start, end string) *models.Combo {
		return &models.Combo{
			Name:             "Combo trà chiều",
			Price:            90000,
			PromotionalPrice: &promoPrice,
			PromotionStart:   start,
			PromotionEnd:     end,
			Active:           true,
		}
	}

	within := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	before := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	after := time.Date(2026, 10, 2, 10, 0, 0, 0, time.UTC)

	t.Run("trong khung khuyến mãi dùng giá khuyến mãi", func(t *testing.T) {
		c := combo("2026-09-01T00:00:00Z", "2026-09-30T23:59:59Z")
		assert.Equal(t, float64(75000), service.EffectivePrice(c, within))
	})

	t.Run("trước khung dùng giá gốc", func(t *testing.T) {
		c := combo("2026-09-01T00:00:00Z", "2026-09-30T23:59:59Z")
		assert.Equal(t, float64(90000), service.EffectivePrice(c, before))
	})

	t.Run("sau khung dùng giá gốc", func(t *testing.T) {
		c := combo("2026-09-01T00:00:00Z", "2026-09-30T23:59:59Z")
		assert.Equal(t, float64(90000), service.EffectivePrice(c, after))
	})

	t.Run("không có giá khuyến mãi dùng giá gốc", func(t *testing.T) {
		c := &models.Combo{Name: "Combo thường", Price: 50000}
		assert.Equal(t, float64(50000), service.EffectivePrice(c, within))
	})

	t.Run("thiếu mốc bắt đầu chỉ chặn theo mốc kết thúc", func(t *testing.T) {
		c := combo("", "2026-09-30T23:59:59Z")
		assert.Equal(t, float64(75000), service.EffectivePrice(c, before))
		assert.Equal(t, float64(90000), service.EffectivePrice(c, after))
	})

	t.Run("không có khung thì giá khuyến mãi luôn áp dụng", func(t *testing.T) {
		c := combo("", "")
		assert.Equal(t, float64(75000), service.EffectivePrice(c, after))
	})

	t.Run("mốc sai định dạng coi như ngoài khung", func(t *testing.T) {
		c := combo("30/09/2026", "")
		assert.Equal(t, float64(90000), service.EffectivePrice(c, within))
	})
}

func TestComboDocDayDuTuUpstream(t *testing.T) {
	raw := `{
		"id": "cb1",
		"name": "Combo sinh nhật",
		"price": 90000,
		"promotionalPrice": 75000,
		"promotionStart": "2026-09-01T00:00:00Z",
		"promotionEnd": "2026-09-30T23:59:59Z",
		"isActive": true,
		"items": [
			{"inventoryProductId": "ip1", "quantity": 2, "isGift": false},
			{"inventoryProductId": "ip2", "quantity": 1, "isGift": true}
		]
	}`

	var combo models.Combo
	require.NoError(t, json.Unmarshal([]byte(raw), &combo))

	assert.Equal(t, "Combo sinh nhật", combo.Name)
	assert.Equal(t, float64(90000), combo.Price)
	require.NotNil(t, combo.PromotionalPrice, "giá khuyến mãi từ upstream không được rơi mất")
	assert.Equal(t, float64(75000), *combo.PromotionalPrice)
	assert.Equal(t, "2026-09-01T00:00:00Z", combo.PromotionStart)
	assert.Equal(t, "2026-09-30T23:59:59Z", combo.PromotionEnd)
	assert.True(t, combo.Active)
	require.Len(t, combo.Items, 2, "dòng hàng combo từ upstream không được rơi mất")
	assert.Equal(t, "ip2", combo.Items[1].InventoryProductID)
	assert.True(t, combo.Items[1].IsGift)

	// Ghi ngược lại vẫn phải còn đủ các trường khuyến mãi
	encoded, err := json.Marshal(combo)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), "promotionalPrice")
	assert.Contains(t, string(encoded), "items")
}

func TestCategoryGiuDanhSachTenDanXuat(t *testing.T) {
	raw := `{
		"id": "1",
		"name": "Bánh ngọt",
		"inventoryProductNames": ["Bột mì", "Đường"],
		"productNames": ["Bánh su kem"],
		"comboNames": []
	}`

	var category models.Category
	require.NoError(t, json.Unmarshal([]byte(raw), &category))
	assert.Equal(t, []string{"Bột mì", "Đường"}, category.InventoryProductNames, "danh sách tên từ upstream không được rơi mất")
	assert.Equal(t, []string{"Bánh su kem"}, category.ProductNames)
	assert.Equal(t, []string{}, category.ComboNames)

	// Upstream không trả các danh sách thì mặc định []
	var bare models.Category
	require.NoError(t, json.Unmarshal([]byte(`{"id":"2","name":"Bánh mì"}`), &bare))
	assert.NotNil(t, bare.InventoryProductNames)
	assert.Empty(t, bare.InventoryProductNames)
	assert.NotNil(t, bare.ProductNames)
	assert.NotNil(t, bare.ComboNames)
}

func TestDeriveNames(t *testing.T) {
	service := NewCategoryService()

	names := service.DeriveNames([]models.Category{
		{ID: "1", Name: "Bánh ngọt"},
		{ID: "2", Name: "Bánh mì"},
		{ID: "3", Name: "Bánh ngọt"}, // Trùng tên
		{ID: "4", Name: ""},          // Tên rỗng
	})

	assert.Equal(t, []string{"Bánh ngọt", "Bánh mì"}, names, "tên trùng và rỗng phải bị loại, giữ thứ tự xuất hiện")
}
