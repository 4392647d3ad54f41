package catalogsvc

import (
	"sweet_admin/internal/api/catalog/models"
)

// CategoryService xử lý nghiệp vụ danh mục phía dashboard.
type CategoryService struct{}

// NewCategoryService tạo category service mới
func NewCategoryService() *CategoryService {
	return &CategoryService{}
}

// DeriveNames trích danh sách tên danh mục từ danh sách danh mục.
// Dùng cho các dropdown chọn danh mục trên form sản phẩm và form nhập kho.
func (s *CategoryService) DeriveNames(categories []models.Category) []string {
	names := make([]string, 0, len(categories))
	seen := make(map[string]bool, len(categories))
	for _, category := range categories {
		if category.Name == "" || seen[category.Name] {
			continue
		}
		seen[category.Name] = true
		names = append(names, category.Name)
	}
	return names
}
