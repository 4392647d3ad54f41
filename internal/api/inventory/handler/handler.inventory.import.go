package inventoryhdl

import (
	"fmt"
	"time"

	basehdl "sweet_admin/internal/api/base/handler"
	inventorydto "sweet_admin/internal/api/inventory/dto"
	"sweet_admin/internal/api/inventory/models"
	inventorysvc "sweet_admin/internal/api/inventory/service"
	"sweet_admin/internal/apiclient"
	"sweet_admin/internal/common"
	"sweet_admin/internal/global"
	"sweet_admin/internal/logger"

	"github.com/gofiber/fiber/v3"
)

// ImportHandler xử lý form nhập kho: máy trạng thái, kiểm tra và xác nhận.
type ImportHandler struct {
	*basehdl.BaseHandler[models.InventorySession, struct{}, struct{}]
	productResource *apiclient.ResourceClient[models.InventoryProduct]
}

// NewImportHandler tạo instance mới của ImportHandler
func NewImportHandler() (*ImportHandler, error) {
	sessionResource, err := apiclient.NewResourceClient[models.InventorySession](global.APIClient, "inventory-sessions", global.ResourcePaths.InventorySessions)
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory sessions resource client: %v", err)
	}
	productResource, err := apiclient.NewResourceClient[models.InventoryProduct](global.APIClient, "inventory-products", global.ResourcePaths.InventoryProducts)
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory products resource client: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.InventorySession, struct{}, struct{}](sessionResource, global.QueryCache)
	return &ImportHandler{
		BaseHandler:     baseHandler,
		productResource: productResource,
	}, nil
}

// HandleFormEvent áp một sự kiện lên snapshot form và trả về snapshot mới.
// Mọi chuyển trạng thái của ô chọn sản phẩm đều đi qua engine này.
func (h *ImportHandler) HandleFormEvent(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input inventorydto.ImportFormEventInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		form := input.Form
		if len(form.Rows) == 0 {
			form = *inventorysvc.NewImportForm()
		}

		var err error
		switch input.Event {
		case inventorydto.EventTypeSearch:
			err = form.TypeSearch(input.Row, input.Text)
		case inventorydto.EventSelect:
			var product models.InventoryProduct
			product, err = h.productResource.GetByID(c.Context(), h.GetSessionToken(c), input.ProductID)
			if err == nil {
				err = form.SelectProduct(input.Row, &product)
			}
		case inventorydto.EventOpenDropdown:
			err = form.OpenRowDropdown(input.Row)
		case inventorydto.EventCloseAll:
			form.CloseDropdowns()
		case inventorydto.EventAddRow:
			form.AddRow()
		case inventorydto.EventRemoveRow:
			err = form.RemoveRow(input.Row)
		default:
			err = common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Sự kiện '%s' không hợp lệ", input.Event),
				common.StatusBadRequest,
				nil,
			)
		}

		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, form.ViewModel(), nil)
		return nil
	})
}

// HandleValidate kiểm tra toàn bộ các dòng của form (bước một của two-phase confirm).
// Hợp lệ thì trả về bản tóm tắt để hiển thị trong dialog xác nhận read-only.
func (h *ImportHandler) HandleValidate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input inventorydto.ImportValidateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if rowErr := input.Form.Validate(time.Now()); rowErr != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				rowErr.Message,
				common.StatusBadRequest,
				fiber.Map{"row": rowErr.Row},
			))
			return nil
		}

		h.HandleResponse(c, fiber.Map{
			"valid":   true,
			"summary": input.Form.BuildPayload("").Items,
		}, nil)
		return nil
	})
}

// HandleConfirm xác nhận nhập kho (bước hai của two-phase confirm).
// Kiểm tra lại toàn bộ rồi gửi MỘT request gộp tất cả các dòng lên admin API.
func (h *ImportHandler) HandleConfirm(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input inventorydto.ImportConfirmInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if rowErr := input.Form.Validate(time.Now()); rowErr != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				rowErr.Message,
				common.StatusBadRequest,
				fiber.Map{"row": rowErr.Row},
			))
			return nil
		}

		payload := input.Form.BuildPayload(input.Description)
		data, err := h.Resource.Create(c.Context(), h.GetSessionToken(c), payload)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Nhập kho làm thay đổi tồn và giao dịch, vô hiệu hóa cache liên quan
		if global.QueryCache != nil {
			global.QueryCache.Invalidate("inventory-sessions")
			global.QueryCache.Invalidate("inventory-products")
			global.QueryCache.Invalidate("inventory-transactions")
		}

		logger.WithModule("inventory").WithField("items", len(payload.Items)).Info("✅ [INVENTORY] Import session created")
		h.HandleResponse(c, data, nil)
		return nil
	})
}
