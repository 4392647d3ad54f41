package crmhdl

import (
	"fmt"

	basehdl "sweet_admin/internal/api/base/handler"
	crmdto "sweet_admin/internal/api/crm/dto"
	"sweet_admin/internal/api/crm/models"
	"sweet_admin/internal/apiclient"
	"sweet_admin/internal/common"
	"sweet_admin/internal/global"
	"sweet_admin/internal/utility"

	"github.com/gofiber/fiber/v3"
)

// OrderHandler xử lý màn hình đơn hàng
type OrderHandler struct {
	*basehdl.BaseHandler[models.Order, struct{}, crmdto.OrderUpdateInput]
}

// NewOrderHandler tạo instance mới của OrderHandler
func NewOrderHandler() (*OrderHandler, error) {
	resource, err := apiclient.NewResourceClient[models.Order](global.APIClient, "orders", global.ResourcePaths.Orders)
	if err != nil {
		return nil, fmt.Errorf("failed to create orders resource client: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Order, struct{}, crmdto.OrderUpdateInput](resource, global.QueryCache)
	return &OrderHandler{
		BaseHandler: baseHandler,
	}, nil
}

// HandleStatuses trả về tập trạng thái đơn hàng kèm nhãn hiển thị
func (h *OrderHandler) HandleStatuses(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		statuses := utility.Map(models.AllOrderStatuses, func(status string) fiber.Map {
			return fiber.Map{
				"value": status,
				"label": models.OrderStatusLabels[status],
			}
		})
		h.HandleResponse(c, fiber.Map{"statuses": statuses}, nil)
		return nil
	})
}

// UpdateById cập nhật trạng thái đơn hàng, chỉ chấp nhận trạng thái thuộc tập đóng.
// Override UpdateById của BaseHandler để kiểm tra trạng thái trước khi gửi lên.
func (h *OrderHandler) UpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if id == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		var input crmdto.OrderUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if !models.IsValidOrderStatus(input.Status) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Trạng thái '%s' không hợp lệ", input.Status),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		data, err := h.Resource.UpdateByID(c.Context(), h.GetSessionToken(c), id, input)
		if err == nil {
			h.InvalidateCache()
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}
