package basehdl

// Package basehdl chứa handler cơ sở cho các màn hình dashboard.
// Handler cơ sở cung cấp các thao tác CRUD chung lên một resource của admin API
// cùng các tiện ích parse/validate request và chuẩn hóa response.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"sweet_admin/internal/apiclient"
	"sweet_admin/internal/common"
	"sweet_admin/internal/global"
	"sweet_admin/internal/logger"
	"sweet_admin/internal/querycache"

	"github.com/gofiber/fiber/v3"
)

// BaseHandler xử lý các request CRUD cơ bản lên một resource của admin API.
// Type parameters:
//   - T: Kiểu model của resource
//   - CreateInput: Kiểu DTO cho thao tác tạo mới
//   - UpdateInput: Kiểu DTO cho thao tác cập nhật
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	Resource *apiclient.ResourceClient[T] // Client truy cập resource trên admin API
	Cache    *querycache.Cache            // Query cache dùng chung, có thể nil
}

// NewBaseHandler tạo base handler mới cho một resource
func NewBaseHandler[T any, CreateInput any, UpdateInput any](resource *apiclient.ResourceClient[T], cache *querycache.Cache) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{
		Resource: resource,
		Cache:    cache,
	}
}

// GetSessionToken lấy bearer token của phiên từ context.
// Token được middleware session lưu vào Locals sau khi xác thực JWT.
func (h *BaseHandler[T, CreateInput, UpdateInput]) GetSessionToken(c fiber.Ctx) string {
	if token, ok := c.Locals("upstream_token").(string); ok {
		return token
	}
	return ""
}

// validateInput thực hiện validate chi tiết dữ liệu đầu vào
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateInput(input interface{}) error {
	// Validate với validator từ global
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}

	// Kiểm tra các trường đặc biệt
	val := reflect.ValueOf(input)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	// Chỉ xử lý nếu input là struct
	if val.Kind() != reflect.Struct {
		return nil
	}

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		// Kiểm tra các trường string
		if field.Kind() == reflect.String {
			// Kiểm tra độ dài tối đa (nếu có tag maxLength)
			if maxTag := fieldType.Tag.Get("maxLength"); maxTag != "" {
				maxLen, err := strconv.Atoi(maxTag)
				if err == nil && len(field.String()) > maxLen {
					return common.NewError(
						common.ErrCodeValidationInput,
						fmt.Sprintf("Trường %s vượt quá độ dài cho phép (%d ký tự)", fieldType.Name, maxLen),
						common.StatusBadRequest,
						nil,
					)
				}
			}
		}

		// Kiểm tra các trường số
		if field.Kind() == reflect.Int || field.Kind() == reflect.Int64 {
			// Kiểm tra giá trị tối thiểu (nếu có tag min)
			if minTag := fieldType.Tag.Get("min"); minTag != "" {
				min, err := strconv.ParseInt(minTag, 10, 64)
				if err == nil && field.Int() < min {
					return common.NewError(
						common.ErrCodeValidationInput,
						fmt.Sprintf("Trường %s phải lớn hơn hoặc bằng %d", fieldType.Name, min),
						common.StatusBadRequest,
						nil,
					)
				}
			}

			// Kiểm tra giá trị tối đa (nếu có tag max)
			if maxTag := fieldType.Tag.Get("max"); maxTag != "" {
				max, err := strconv.ParseInt(maxTag, 10, 64)
				if err == nil && field.Int() > max {
					return common.NewError(
						common.ErrCodeValidationInput,
						fmt.Sprintf("Trường %s phải nhỏ hơn hoặc bằng %d", fieldType.Name, max),
						common.StatusBadRequest,
						nil,
					)
				}
			}
		}
	}

	return nil
}

// ParseRequestBody parse và validate dữ liệu từ request body.
// Sử dụng json.Decoder với UseNumber() để xử lý chính xác các số.
//
// Parameters:
// - c: Fiber context
// - input: Con trỏ tới struct sẽ chứa dữ liệu được parse
//
// Returns:
// - error: Lỗi nếu có trong quá trình parse hoặc validate
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	if err := ParseBody(c, input); err != nil {
		return err
	}

	// Validate chi tiết input
	if err := h.validateInput(input); err != nil {
		return err
	}

	return nil
}

// ParseBody là phiên bản standalone dùng bởi các handler không embed BaseHandler,
// chỉ decode JSON, không chạy validate chi tiết theo tag.
func ParseBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	reader := bytes.NewReader(body)
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}
	return nil
}

// ParseRequestParams parse và validate các tham số từ URI.
// Sử dụng Fiber's URI binding để parse các tham số.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestParams(c fiber.Ctx, input interface{}) error {
	// Parse URI params
	if err := c.Bind().URI(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}

	// Validate struct
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}

	return nil
}

// ParsePagination lấy thông tin phân trang từ query string.
// page mặc định 1, pageSize mặc định 10.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParsePagination(c fiber.Ctx) (int64, int64) {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page <= 0 {
		page = 1
	}

	pageSize, err := strconv.ParseInt(c.Query("pageSize", "10"), 10, 64)
	if err != nil || pageSize <= 0 {
		pageSize = 10
	}

	return page, pageSize
}

// ParseListOptions lấy toàn bộ tham số danh sách từ query string
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseListOptions(c fiber.Ctx, filterKeys ...string) apiclient.ListOptions {
	page, pageSize := h.ParsePagination(c)
	opts := apiclient.ListOptions{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search", ""),
	}
	for _, key := range filterKeys {
		if value := c.Query(key, ""); value != "" {
			if opts.Filters == nil {
				opts.Filters = make(map[string]string)
			}
			opts.Filters[key] = value
		}
	}
	return opts
}

// GetIDFromContext lấy ID từ URI params của request
func (h *BaseHandler[T, CreateInput, UpdateInput]) GetIDFromContext(c fiber.Ctx) string {
	return c.Params("id")
}

// cacheKey tạo cache key cho một truy vấn danh sách
func (h *BaseHandler[T, CreateInput, UpdateInput]) cacheKey(opts apiclient.ListOptions) string {
	params := map[string]string{
		"page":     strconv.FormatInt(opts.Page, 10),
		"pageSize": strconv.FormatInt(opts.PageSize, 10),
		"search":   opts.Search,
	}
	for k, v := range opts.Filters {
		params[k] = v
	}
	return querycache.BuildKey(h.Resource.Resource(), params)
}

// FetchList lấy danh sách qua cache, các request trùng tham số dùng chung kết quả
func (h *BaseHandler[T, CreateInput, UpdateInput]) FetchList(c fiber.Ctx, opts apiclient.ListOptions) (apiclient.ListResult[T], error) {
	token := h.GetSessionToken(c)

	if h.Cache == nil {
		return h.Resource.List(c.Context(), token, opts)
	}

	value, err := h.Cache.GetOrFetch(c.Context(), h.Resource.Resource(), h.cacheKey(opts), func(ctx context.Context) (interface{}, error) {
		return h.Resource.List(ctx, token, opts)
	})
	if err != nil {
		return apiclient.ListResult[T]{Items: []T{}}, err
	}

	result, ok := value.(apiclient.ListResult[T])
	if !ok {
		return apiclient.ListResult[T]{Items: []T{}}, common.ErrInvalidFormat
	}
	return result, nil
}

// InvalidateCache vô hiệu hóa cache của resource sau thao tác ghi
func (h *BaseHandler[T, CreateInput, UpdateInput]) InvalidateCache() {
	if h.Cache != nil {
		h.Cache.Invalidate(h.Resource.Resource())
		logger.WithResource(h.Resource.Resource()).Debug("Cache invalidated sau thao tác ghi")
	}
}
