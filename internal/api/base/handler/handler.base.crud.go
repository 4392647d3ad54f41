package basehdl

// Package basehdl - base CRUD handlers.
// Các handler này chuyển tiếp thao tác CRUD của màn hình dashboard lên admin API,
// đọc qua query cache và vô hiệu hóa cache sau mỗi thao tác ghi.

import (
	"fmt"

	"sweet_admin/internal/common"

	"github.com/gofiber/fiber/v3"
)

// List lấy danh sách bản ghi của resource với phân trang và tìm kiếm.
// Tham số: page, pageSize, search và các filter key đã khai báo.
//
// Parameters:
// - c: Fiber context
//
// Returns:
// - error: Lỗi nếu có
func (h *BaseHandler[T, CreateInput, UpdateInput]) List(filterKeys ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		return h.SafeHandler(c, func() error {
			opts := h.ParseListOptions(c, filterKeys...)
			data, err := h.FetchList(c, opts)
			h.HandleResponse(c, data, err)
			return nil
		})
	}
}

// FindOneById tìm một bản ghi theo ID từ URL params.
//
// Parameters:
// - c: Fiber context
//
// Returns:
// - error: Lỗi nếu có
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOneById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if id == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"ID không được để trống trong URL params",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		data, err := h.Resource.GetByID(c.Context(), h.GetSessionToken(c), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// InsertOne tạo mới một bản ghi trên admin API.
// Dữ liệu được parse từ request body (DTO CreateInput) và validate trước khi gửi lên.
//
// Parameters:
// - c: Fiber context
//
// Returns:
// - error: Lỗi nếu có
func (h *BaseHandler[T, CreateInput, UpdateInput]) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		// Parse request body thành DTO (CreateInput)
		var input CreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		data, err := h.Resource.Create(c.Context(), h.GetSessionToken(c), input)
		if err == nil {
			h.InvalidateCache()
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// UpdateById cập nhật một bản ghi theo ID.
// Dữ liệu được parse từ request body (DTO UpdateInput) và validate trước khi gửi lên.
//
// Parameters:
// - c: Fiber context
//
// Returns:
// - error: Lỗi nếu có
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if id == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"ID không được để trống trong URL params",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		var input UpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
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

// DeleteById xóa một bản ghi theo ID.
//
// Parameters:
// - c: Fiber context
//
// Returns:
// - error: Lỗi nếu có
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if id == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"ID không được để trống trong URL params",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		err := h.Resource.DeleteByID(c.Context(), h.GetSessionToken(c), id)
		if err == nil {
			h.InvalidateCache()
		}
		h.HandleResponse(c, fiber.Map{"id": id}, err)
		return nil
	})
}
