package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"sweet_admin/internal/common"
)

// ListOptions là tham số truy vấn danh sách gửi lên admin API
type ListOptions struct {
	Page     int64             // Trang cần lấy (bắt đầu từ 1)
	PageSize int64             // Số bản ghi mỗi trang
	Search   string            // Từ khóa tìm kiếm
	Filters  map[string]string // Các tham số lọc bổ sung
}

// toQuery chuyển options thành query string
func (o ListOptions) toQuery() url.Values {
	query := url.Values{}
	if o.Page > 0 {
		query.Set("page", strconv.FormatInt(o.Page, 10))
	}
	if o.PageSize > 0 {
		query.Set("pageSize", strconv.FormatInt(o.PageSize, 10))
	}
	if o.Search != "" {
		query.Set("search", o.Search)
	}
	for key, value := range o.Filters {
		if key != "" && value != "" {
			query.Set(key, value)
		}
	}
	return query
}

// ResourceClient là client truy cập một resource REST trên admin API.
// Type parameter T là kiểu model của resource (Product, Category, ...).
// Mọi thao tác đều nhận token của phiên hiện tại và context để hủy request.
type ResourceClient[T any] struct {
	client   *Client // Client HTTP cơ sở dùng chung
	resource string  // Tên resource, dùng cho log và cache key
	basePath string  // Đường dẫn resource sau /api/v1, ví dụ "/products"
}

// NewResourceClient tạo resource client mới.
// basePath phải bắt đầu bằng "/" (ví dụ "/products").
func NewResourceClient[T any](client *Client, resource string, basePath string) (*ResourceClient[T], error) {
	if client == nil {
		return nil, fmt.Errorf("client is nil: %w", common.ErrRequiredField)
	}
	if resource == "" || basePath == "" {
		return nil, fmt.Errorf("resource and basePath cannot be empty: %w", common.ErrRequiredField)
	}
	return &ResourceClient[T]{
		client:   client,
		resource: resource,
		basePath: basePath,
	}, nil
}

// Resource trả về tên resource
func (r *ResourceClient[T]) Resource() string {
	return r.resource
}

// List lấy danh sách bản ghi, response được chuẩn hóa về ListResult
func (r *ResourceClient[T]) List(ctx context.Context, token string, opts ListOptions) (ListResult[T], error) {
	var raw json.RawMessage
	if err := r.client.Get(ctx, r.basePath, opts.toQuery(), token, &raw); err != nil {
		return ListResult[T]{Items: []T{}}, common.ConvertUpstreamError(err)
	}
	return NormalizeList[T](raw)
}

// GetByID lấy một bản ghi theo ID
func (r *ResourceClient[T]) GetByID(ctx context.Context, token string, id string) (T, error) {
	var zero T
	if id == "" {
		return zero, common.ErrRequiredField
	}

	var raw json.RawMessage
	if err := r.client.Get(ctx, r.basePath+"/"+url.PathEscape(id), nil, token, &raw); err != nil {
		return zero, common.ConvertUpstreamError(err)
	}
	return decodeOne[T](raw)
}

// Create tạo bản ghi mới với payload tùy ý
func (r *ResourceClient[T]) Create(ctx context.Context, token string, input interface{}) (T, error) {
	var zero T
	var raw json.RawMessage
	if err := r.client.Post(ctx, r.basePath, token, input, &raw); err != nil {
		return zero, common.ConvertUpstreamError(err)
	}
	return decodeOne[T](raw)
}

// UpdateByID cập nhật bản ghi theo ID
func (r *ResourceClient[T]) UpdateByID(ctx context.Context, token string, id string, input interface{}) (T, error) {
	var zero T
	if id == "" {
		return zero, common.ErrRequiredField
	}

	var raw json.RawMessage
	if err := r.client.Put(ctx, r.basePath+"/"+url.PathEscape(id), token, input, &raw); err != nil {
		return zero, common.ConvertUpstreamError(err)
	}
	return decodeOne[T](raw)
}

// DeleteByID xóa bản ghi theo ID
func (r *ResourceClient[T]) DeleteByID(ctx context.Context, token string, id string) error {
	if id == "" {
		return common.ErrRequiredField
	}
	if err := r.client.Delete(ctx, r.basePath+"/"+url.PathEscape(id), token, nil); err != nil {
		return common.ConvertUpstreamError(err)
	}
	return nil
}

// decodeOne giải mã một bản ghi đơn, chấp nhận cả dạng bọc {"data": {...}}
func decodeOne[T any](raw json.RawMessage) (T, error) {
	var zero T
	if len(raw) == 0 {
		return zero, nil
	}

	var item T
	if err := json.Unmarshal(raw, &item); err == nil {
		// Một số endpoint bọc bản ghi trong "data", thử dạng đó trước khi kết luận
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if jsonErr := json.Unmarshal(raw, &envelope); jsonErr == nil && len(envelope.Data) > 0 {
			var wrapped T
			if err := json.Unmarshal(envelope.Data, &wrapped); err == nil {
				return wrapped, nil
			}
		}
		return item, nil
	}

	return zero, common.ErrInvalidFormat
}
