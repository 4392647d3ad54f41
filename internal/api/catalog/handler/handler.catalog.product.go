package cataloghdl

import (
	"fmt"
	"time"

	basehdl "sweet_admin/internal/api/base/handler"
	catalogdto "sweet_admin/internal/api/catalog/dto"
	"sweet_admin/internal/api/catalog/models"
	catalogsvc "sweet_admin/internal/api/catalog/service"
	"sweet_admin/internal/apiclient"
	"sweet_admin/internal/common"
	"sweet_admin/internal/global"

	"github.com/gofiber/fiber/v3"
)

// ProductHandler xử lý CRUD sản phẩm
type ProductHandler struct {
	*basehdl.BaseHandler[models.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput]
	productService *catalogsvc.ProductService
}

// NewProductHandler tạo instance mới của ProductHandler
func NewProductHandler() (*ProductHandler, error) {
	resource, err := apiclient.NewResourceClient[models.Product](global.APIClient, "products", global.ResourcePaths.Products)
	if err != nil {
		return nil, fmt.Errorf("failed to create products resource client: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput](resource, global.QueryCache)
	return &ProductHandler{
		BaseHandler:    baseHandler,
		productService: catalogsvc.NewProductService(),
	}, nil
}

// InsertOne tạo sản phẩm mới, tự thêm combo mặc định khi form không nhập combo.
// Override InsertOne của BaseHandler vì payload gửi lên admin API được service dựng lại.
func (h *ProductHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input catalogdto.ProductCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		payload := h.productService.BuildCreatePayload(&input)
		data, err := h.Resource.Create(c.Context(), h.GetSessionToken(c), payload)
		if err == nil {
			h.InvalidateCache()
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleEffectivePrice trả về giá đang áp dụng của từng combo thuộc sản phẩm.
// Combo đang trong khung khuyến mãi dùng giá khuyến mãi, ngoài khung dùng giá gốc.
func (h *ProductHandler) HandleEffectivePrice(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if id == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		product, err := h.Resource.GetByID(c.Context(), h.GetSessionToken(c), id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		now := time.Now()
		combos := make([]fiber.Map, 0, len(product.Combos))
		for i := range product.Combos {
			combo := &product.Combos[i]
			combos = append(combos, fiber.Map{
				"comboId":        combo.ID,
				"name":           combo.Name,
				"price":          combo.Price,
				"effectivePrice": h.productService.EffectivePrice(combo, now),
			})
		}

		h.HandleResponse(c, fiber.Map{
			"productId": id,
			"combos":    combos,
		}, nil)
		return nil
	})
}
