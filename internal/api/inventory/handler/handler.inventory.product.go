package inventoryhdl

import (
	"fmt"

	basehdl "sweet_admin/internal/api/base/handler"
	"sweet_admin/internal/api/inventory/models"
	inventorysvc "sweet_admin/internal/api/inventory/service"
	"sweet_admin/internal/apiclient"
	"sweet_admin/internal/global"

	"github.com/gofiber/fiber/v3"
)

// InventoryProductHandler xử lý màn hình sản phẩm tồn kho
type InventoryProductHandler struct {
	*basehdl.BaseHandler[models.InventoryProduct, struct{}, struct{}]
}

// NewInventoryProductHandler tạo instance mới của InventoryProductHandler
func NewInventoryProductHandler() (*InventoryProductHandler, error) {
	resource, err := apiclient.NewResourceClient[models.InventoryProduct](global.APIClient, "inventory-products", global.ResourcePaths.InventoryProducts)
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory products resource client: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.InventoryProduct, struct{}, struct{}](resource, global.QueryCache)
	return &InventoryProductHandler{
		BaseHandler: baseHandler,
	}, nil
}

// HandleCatalogSearch tìm sản phẩm cho ô chọn của form nhập kho.
// So khớp substring không phân biệt hoa thường trên tên, loại sản phẩm ngừng hoạt động.
func (h *InventoryProductHandler) HandleCatalogSearch(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		// Lấy trọn catalog qua cache rồi lọc tại chỗ, giống dropdown phía client
		opts := apiclient.ListOptions{Page: 1, PageSize: 500}
		result, err := h.FetchList(c, opts)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		filtered := inventorysvc.FilterCatalog(result.Items, c.Query("search", ""))
		h.HandleResponse(c, fiber.Map{"items": filtered}, nil)
		return nil
	})
}
