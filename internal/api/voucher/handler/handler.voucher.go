package voucherhdl

import (
	"fmt"
	"strconv"

	basehdl "sweet_admin/internal/api/base/handler"
	voucherdto "sweet_admin/internal/api/voucher/dto"
	"sweet_admin/internal/api/voucher/models"
	vouchersvc "sweet_admin/internal/api/voucher/service"
	"sweet_admin/internal/apiclient"
	"sweet_admin/internal/common"
	"sweet_admin/internal/global"

	"github.com/gofiber/fiber/v3"
)

// VoucherHandler xử lý CRUD voucher
type VoucherHandler struct {
	*basehdl.BaseHandler[models.Voucher, voucherdto.VoucherCreateInput, voucherdto.VoucherUpdateInput]
	voucherService *vouchersvc.VoucherService
}

// NewVoucherHandler tạo instance mới của VoucherHandler
func NewVoucherHandler() (*VoucherHandler, error) {
	resource, err := apiclient.NewResourceClient[models.Voucher](global.APIClient, "vouchers", global.ResourcePaths.Vouchers)
	if err != nil {
		return nil, fmt.Errorf("failed to create vouchers resource client: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Voucher, voucherdto.VoucherCreateInput, voucherdto.VoucherUpdateInput](resource, global.QueryCache)
	return &VoucherHandler{
		BaseHandler:    baseHandler,
		voucherService: vouchersvc.NewVoucherService(),
	}, nil
}

// InsertOne tạo voucher mới. Override InsertOne của BaseHandler vì payload
// gửi lên admin API được service dựng lại theo loại voucher đang chọn.
func (h *VoucherHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input voucherdto.VoucherCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		payload, err := h.voucherService.BuildCreatePayload(&input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.Resource.Create(c.Context(), h.GetSessionToken(c), payload)
		if err == nil {
			h.InvalidateCache()
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// UpdateById cập nhật voucher theo ID. Đổi loại voucher thì field của loại
// cũ bị loại khỏi payload trước khi gửi lên admin API.
func (h *VoucherHandler) UpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if id == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"ID không được để trống trong URL params",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		var input voucherdto.VoucherUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		payload, err := h.voucherService.BuildUpdatePayload(&input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.Resource.UpdateByID(c.Context(), h.GetSessionToken(c), id, payload)
		if err == nil {
			h.InvalidateCache()
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandlePreviewDiscount tính thử số tiền giảm của voucher trên một giá trị đơn.
// Query: total (bắt buộc, > 0).
func (h *VoucherHandler) HandlePreviewDiscount(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if id == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		total, err := strconv.ParseFloat(c.Query("total", "0"), 64)
		if err != nil || total <= 0 {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Giá trị đơn hàng phải là số dương",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		voucher, err := h.Resource.GetByID(c.Context(), h.GetSessionToken(c), id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		discount := h.voucherService.PreviewDiscount(&voucher, total)
		h.HandleResponse(c, fiber.Map{
			"voucherId": id,
			"total":     total,
			"discount":  discount,
		}, nil)
		return nil
	})
}
