// Package catalogsvc - nghiệp vụ danh mục và sản phẩm của dashboard.
package catalogsvc

import (
	"time"

	catalogdto "sweet_admin/internal/api/catalog/dto"
	"sweet_admin/internal/api/catalog/models"
)

// ProductService xử lý nghiệp vụ sản phẩm phía dashboard.
type ProductService struct{}

// NewProductService tạo product service mới
func NewProductService() *ProductService {
	return &ProductService{}
}

// BuildCreatePayload dựng payload tạo sản phẩm gửi lên admin API.
// Admin API yêu cầu mọi sản phẩm có ít nhất một combo nên khi form không
// nhập combo nào, service tự thêm combo giữ chỗ: tên trùng tên sản phẩm,
// giá 0, danh sách dòng hàng rỗng.
func (s *ProductService) BuildCreatePayload(input *catalogdto.ProductCreateInput) map[string]interface{} {
	combos := make([]map[string]interface{}, 0, len(input.Combos)+1)
	for i := range input.Combos {
		combos = append(combos, buildComboEntry(&input.Combos[i]))
	}
	if len(combos) == 0 {
		combos = append(combos, map[string]interface{}{
			"name":     input.Name,
			"price":    float64(0),
			"isActive": true,
			"items":    []map[string]interface{}{},
		})
	}

	payload := map[string]interface{}{
		"name":       input.Name,
		"price":      input.Price,
		"categoryId": input.CategoryID,
		"combos":     combos,
	}
	if input.Describe != "" {
		payload["describe"] = input.Describe
	}
	if input.ImageURL != "" {
		payload["imageUrl"] = input.ImageURL
	}
	return payload
}

// buildComboEntry dựng một combo trong payload, chỉ gửi các trường khuyến mãi
// khi combo thật sự có giá khuyến mãi
func buildComboEntry(combo *catalogdto.ComboInput) map[string]interface{} {
	items := make([]map[string]interface{}, 0, len(combo.Items))
	for _, item := range combo.Items {
		items = append(items, map[string]interface{}{
			"inventoryProductId": item.InventoryProductID,
			"quantity":           item.Quantity,
			"isGift":             item.IsGift,
		})
	}

	entry := map[string]interface{}{
		"name":     combo.Name,
		"price":    combo.Price,
		"isActive": combo.Active,
		"items":    items,
	}
	if combo.PromotionalPrice != nil {
		entry["promotionalPrice"] = *combo.PromotionalPrice
		if combo.PromotionStart != "" {
			entry["promotionStart"] = combo.PromotionStart
		}
		if combo.PromotionEnd != "" {
			entry["promotionEnd"] = combo.PromotionEnd
		}
	}
	return entry
}

// EffectivePrice giá đang áp dụng của combo tại thời điểm now.
// Giá khuyến mãi chỉ có hiệu lực trong khung khuyến mãi; ngoài khung,
// không có giá khuyến mãi, hoặc mốc thời gian sai định dạng thì dùng giá gốc.
func (s *ProductService) EffectivePrice(combo *models.Combo, now time.Time) float64 {
	if combo.PromotionalPrice == nil {
		return combo.Price
	}
	if !inPromotionWindow(combo, now) {
		return combo.Price
	}
	return *combo.PromotionalPrice
}

// inPromotionWindow kiểm tra now nằm trong khung khuyến mãi của combo.
// Mốc thiếu thì không chặn ở phía đó; mốc không parse được coi như ngoài khung.
func inPromotionWindow(combo *models.Combo, now time.Time) bool {
	if combo.PromotionStart != "" {
		start, err := time.Parse(time.RFC3339, combo.PromotionStart)
		if err != nil || now.Before(start) {
			return false
		}
	}
	if combo.PromotionEnd != "" {
		end, err := time.Parse(time.RFC3339, combo.PromotionEnd)
		if err != nil || now.After(end) {
			return false
		}
	}
	return true
}
