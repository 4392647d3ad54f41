// Package apiclient - Test chuẩn hóa các dạng response danh sách từ admin API.
package apiclient

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestNormalizeList_BareArray(t *testing.T) {
	raw := json.RawMessage(`[{"id":"1","name":"Bánh su kem"},{"id":"2","name":"Bánh mì"}]`)

	result, err := NormalizeList[testItem](raw)
	require.NoError(t, err)

	assert.Len(t, result.Items, 2, "mảng trần phải giữ nguyên số phần tử")
	assert.Equal(t, "Bánh su kem", result.Items[0].Name)
	assert.Nil(t, result.Meta, "mảng trần không có thông tin phân trang nên meta phải nil")
}

func TestNormalizeList_EnvelopeWithMeta(t *testing.T) {
	raw := json.RawMessage(`{
		"data": [{"id":"1","name":"Bánh kem"}],
		"meta": {"page": 2, "pageSize": 10, "total": 35, "totalPages": 4}
	}`)

	result, err := NormalizeList[testItem](raw)
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	require.NotNil(t, result.Meta, "dạng {data, meta} phải có meta")
	assert.Equal(t, int64(2), result.Meta.Page)
	assert.Equal(t, int64(10), result.Meta.PageSize)
	assert.Equal(t, int64(35), result.Meta.Total)
	assert.Equal(t, int64(4), result.Meta.TotalPages)
}

func TestNormalizeList_EnvelopeWithoutMeta(t *testing.T) {
	raw := json.RawMessage(`{"data": [{"id":"1","name":"Bánh quy"}]}`)

	result, err := NormalizeList[testItem](raw)
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	assert.Nil(t, result.Meta, "thiếu meta thì không được bịa ra thông tin phân trang")
}

func TestNormalizeList_MetaLimitAlias(t *testing.T) {
	raw := json.RawMessage(`{
		"data": [{"id":"1","name":"Bánh bông lan"}],
		"meta": {"page": 1, "limit": 20, "total": 60}
	}`)

	result, err := NormalizeList[testItem](raw)
	require.NoError(t, err)

	require.NotNil(t, result.Meta)
	assert.Equal(t, int64(20), result.Meta.PageSize, "meta.limit phải được hiểu là pageSize")
	assert.Equal(t, int64(3), result.Meta.TotalPages, "totalPages suy ra từ total/pageSize")
}

func TestNormalizeList_UnknownShape(t *testing.T) {
	raw := json.RawMessage(`{"message": "no content"}`)

	result, err := NormalizeList[testItem](raw)
	require.NoError(t, err)

	assert.NotNil(t, result.Items, "Items không bao giờ là nil")
	assert.Empty(t, result.Items, "shape lạ phải trả về danh sách rỗng")
	assert.Nil(t, result.Meta)
}

func TestNormalizeList_NullData(t *testing.T) {
	raw := json.RawMessage(`{"data": null}`)

	result, err := NormalizeList[testItem](raw)
	require.NoError(t, err)

	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
	assert.Nil(t, result.Meta)
}
