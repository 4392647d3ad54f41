// Package shellsvc - menu điều hướng tĩnh của dashboard.
package shellsvc

import "strings"

// MenuItem một mục trên sidebar.
type MenuItem struct {
	Label  string `json:"label"`
	Path   string `json:"path"`
	Icon   string `json:"icon"`
	Active bool   `json:"active"`
}

// MenuSection một nhóm mục trên sidebar.
type MenuSection struct {
	Title string     `json:"title"`
	Items []MenuItem `json:"items"`
}

// MenuService dựng menu điều hướng. Menu là tĩnh, chỉ cờ active thay đổi
// theo route hiện tại của frontend.
type MenuService struct{}

// NewMenuService tạo menu service mới
func NewMenuService() *MenuService {
	return &MenuService{}
}

// menuSections bố cục sidebar cố định của dashboard
var menuSections = []MenuSection{
	{
		Title: "Bán hàng",
		Items: []MenuItem{
			{Label: "Đơn hàng", Path: "/dashboard/orders", Icon: "shopping-cart"},
			{Label: "Khách hàng", Path: "/dashboard/customers", Icon: "users"},
			{Label: "Voucher", Path: "/dashboard/vouchers", Icon: "ticket"},
		},
	},
	{
		Title: "Sản phẩm",
		Items: []MenuItem{
			{Label: "Danh mục", Path: "/dashboard/categories", Icon: "folder"},
			{Label: "Sản phẩm", Path: "/dashboard/products", Icon: "cake"},
		},
	},
	{
		Title: "Kho hàng",
		Items: []MenuItem{
			{Label: "Tồn kho", Path: "/dashboard/inventory-products", Icon: "archive"},
			{Label: "Nhập kho", Path: "/dashboard/inventory-import", Icon: "download"},
			{Label: "Phiên nhập", Path: "/dashboard/inventory", Icon: "clipboard"},
			{Label: "Lịch sử xuất nhập", Path: "/dashboard/inventory-transactions", Icon: "history"},
		},
	},
	{
		Title: "Hệ thống",
		Items: []MenuItem{
			{Label: "Nhân viên", Path: "/dashboard/staff", Icon: "id-badge"},
			{Label: "Vai trò", Path: "/dashboard/roles", Icon: "shield"},
		},
	},
}

// Build trả về menu với cờ active đặt theo route hiện tại.
// Mục active là mục có path là prefix dài nhất của currentPath, để
// "/dashboard/inventory-products" không làm sáng cả "/dashboard/inventory".
func (s *MenuService) Build(currentPath string) []MenuSection {
	activePath := s.resolveActivePath(currentPath)

	sections := make([]MenuSection, 0, len(menuSections))
	for _, section := range menuSections {
		items := make([]MenuItem, 0, len(section.Items))
		for _, item := range section.Items {
			item.Active = item.Path == activePath
			items = append(items, item)
		}
		sections = append(sections, MenuSection{Title: section.Title, Items: items})
	}
	return sections
}

// resolveActivePath tìm path menu khớp prefix dài nhất với route hiện tại
func (s *MenuService) resolveActivePath(currentPath string) string {
	currentPath = strings.TrimRight(currentPath, "/")
	if currentPath == "" {
		return ""
	}

	best := ""
	for _, section := range menuSections {
		for _, item := range section.Items {
			if !matchesPrefix(currentPath, item.Path) {
				continue
			}
			if len(item.Path) > len(best) {
				best = item.Path
			}
		}
	}
	return best
}

// matchesPrefix kiểm tra path khớp nguyên segment, không khớp giữa chừng
// ("/dashboard/inventory-import" không phải con của "/dashboard/inventory")
func matchesPrefix(currentPath, menuPath string) bool {
	if currentPath == menuPath {
		return true
	}
	return strings.HasPrefix(currentPath, menuPath+"/")
}
