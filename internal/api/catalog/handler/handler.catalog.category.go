package cataloghdl

import (
	"fmt"

	basehdl "sweet_admin/internal/api/base/handler"
	catalogdto "sweet_admin/internal/api/catalog/dto"
	"sweet_admin/internal/api/catalog/models"
	catalogsvc "sweet_admin/internal/api/catalog/service"
	"sweet_admin/internal/apiclient"
	"sweet_admin/internal/global"

	"github.com/gofiber/fiber/v3"
)

// CategoryHandler xử lý CRUD danh mục sản phẩm
type CategoryHandler struct {
	*basehdl.BaseHandler[models.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput]
	categoryService *catalogsvc.CategoryService
}

// NewCategoryHandler tạo instance mới của CategoryHandler
func NewCategoryHandler() (*CategoryHandler, error) {
	resource, err := apiclient.NewResourceClient[models.Category](global.APIClient, "categories", global.ResourcePaths.Categories)
	if err != nil {
		return nil, fmt.Errorf("failed to create categories resource client: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput](resource, global.QueryCache)
	return &CategoryHandler{
		BaseHandler:     baseHandler,
		categoryService: catalogsvc.NewCategoryService(),
	}, nil
}

// HandleNames trả về danh sách tên danh mục cho các dropdown.
// Lấy toàn bộ danh mục (pageSize lớn) rồi trích tên, bỏ trùng.
func (h *CategoryHandler) HandleNames(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		opts := apiclient.ListOptions{Page: 1, PageSize: 500}
		result, err := h.FetchList(c, opts)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		names := h.categoryService.DeriveNames(result.Items)
		h.HandleResponse(c, fiber.Map{"names": names}, nil)
		return nil
	})
}
