package apiclient

import (
	"encoding/json"

	"sweet_admin/internal/utility"
)

// Meta chứa thông tin phân trang từ admin API
type Meta struct {
	Page       int64 `json:"page"`       // Trang hiện tại (bắt đầu từ 1)
	PageSize   int64 `json:"pageSize"`   // Số bản ghi mỗi trang
	Total      int64 `json:"total"`      // Tổng số bản ghi
	TotalPages int64 `json:"totalPages"` // Tổng số trang
}

// ListResult là kết quả danh sách đã chuẩn hóa từ admin API.
// Meta chỉ khác nil khi upstream trả về dạng { "data": [...], "meta": {...} };
// hai dạng còn lại không có thông tin phân trang nên Meta để nil để màn hình
// phân biệt được danh sách có phân trang và không phân trang.
type ListResult[T any] struct {
	Items []T   `json:"items"`          // Danh sách bản ghi, không bao giờ nil
	Meta  *Meta `json:"meta,omitempty"` // Thông tin phân trang, nil nếu upstream không trả
}

// NormalizeList chuẩn hóa response danh sách từ admin API về một dạng duy nhất.
// Admin API trả về danh sách theo ba dạng tùy endpoint:
//   - mảng trần:            [ {...}, {...} ]          → Items, Meta nil
//   - object có meta:       { "data": [...], "meta": {...} } → Items + Meta
//   - object không meta:    { "data": [...] }         → Items, Meta nil
//
// Dạng nào không khớp cả ba thì trả về danh sách rỗng thay vì lỗi.
func NormalizeList[T any](raw json.RawMessage) (ListResult[T], error) {
	result := ListResult[T]{Items: []T{}}
	if len(raw) == 0 {
		return result, nil
	}

	// Dạng 1: mảng trần
	var items []T
	if err := json.Unmarshal(raw, &items); err == nil {
		if items != nil {
			result.Items = items
		}
		return result, nil
	}

	// Dạng 2 và 3: object bọc ngoài
	var envelope struct {
		Data json.RawMessage        `json:"data"`
		Meta map[string]interface{} `json:"meta"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return result, nil
	}
	if len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, &items); err == nil && items != nil {
			result.Items = items
		}
	}

	if envelope.Meta != nil {
		meta := parseMeta(envelope.Meta)
		result.Meta = &meta
	}

	return result, nil
}

// parseMeta đọc meta phân trang, chấp nhận số dạng number hoặc string
func parseMeta(m map[string]interface{}) Meta {
	meta := Meta{}
	if v, ok := utility.ToInt64(m["page"]); ok {
		meta.Page = v
	}
	if v, ok := utility.ToInt64(m["pageSize"]); ok {
		meta.PageSize = v
	} else if v, ok := utility.ToInt64(m["limit"]); ok {
		meta.PageSize = v
	}
	if v, ok := utility.ToInt64(m["total"]); ok {
		meta.Total = v
	}
	if v, ok := utility.ToInt64(m["totalPages"]); ok {
		meta.TotalPages = v
	}

	// Suy ra totalPages khi upstream không trả
	if meta.TotalPages == 0 && meta.PageSize > 0 {
		meta.TotalPages = (meta.Total + meta.PageSize - 1) / meta.PageSize
	}
	if meta.Page == 0 {
		meta.Page = 1
	}
	return meta
}
