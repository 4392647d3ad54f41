package registry

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_RegisterVaGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("products", "/products")
	assert.NoError(t, err, "Đăng ký lần đầu không được lỗi")
	assert.True(t, isNew, "Lần đăng ký đầu phải là item mới")

	isNew, err = r.Register("products", "/api/v1/products")
	assert.NoError(t, err)
	assert.False(t, isNew, "Đăng ký trùng tên phải là ghi đè, không phải item mới")

	path, exists := r.Get("products")
	assert.True(t, exists)
	assert.Equal(t, "/api/v1/products", path, "Get phải trả về giá trị mới nhất sau khi ghi đè")

	_, exists = r.Get("orders")
	assert.False(t, exists, "Tên chưa đăng ký thì Get phải trả về exists=false")
}

func TestRegistry_TenRongBiTuChoi(t *testing.T) {
	r := NewRegistry[string]()

	_, err := r.Register("", "/x")
	assert.Error(t, err, "Register với tên rỗng phải bị từ chối")

	_, err = r.GetOrCreate("", func() (string, error) { return "/x", nil })
	assert.Error(t, err, "GetOrCreate với tên rỗng phải bị từ chối")

	_, err = r.Clear("", nil)
	assert.Error(t, err, "Clear với tên rỗng phải bị từ chối")
}

func TestRegistry_GetOrCreateChiTaoMotLan(t *testing.T) {
	r := NewRegistry[int]()
	calls := 0
	creator := func() (int, error) {
		calls++
		return 42, nil
	}

	v, err := r.GetOrCreate("counter", creator)
	assert.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = r.GetOrCreate("counter", creator)
	assert.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, calls, "Creator chỉ được gọi một lần cho cùng một tên")

	_, err = r.GetOrCreate("broken", func() (int, error) { return 0, errors.New("boom") })
	assert.Error(t, err, "Creator lỗi thì GetOrCreate phải trả lỗi")
	_, exists := r.Get("broken")
	assert.False(t, exists, "Creator lỗi thì không được lưu item")
}

func TestRegistry_NamesVaClear(t *testing.T) {
	r := NewRegistry[string]()
	r.Register("products", "/products")
	r.Register("orders", "/orders")
	r.Register("clients", "/clients")

	names := r.Names()
	sort.Strings(names)
	assert.Equal(t, []string{"clients", "orders", "products"}, names)

	cleaned := []string{}
	deleted, err := r.Clear("orders", func(path string) error {
		cleaned = append(cleaned, path)
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, []string{"/orders"}, cleaned, "Cleanup phải được gọi trước khi xóa")

	deleted, err = r.Clear("orders", nil)
	assert.NoError(t, err)
	assert.False(t, deleted, "Xóa item không tồn tại trả về deleted=false, không lỗi")

	count, err := r.ClearAll(nil)
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Empty(t, r.Names())
}

func TestRegistry_ClearCleanupLoiThiGiuNguyen(t *testing.T) {
	r := NewRegistry[string]()
	r.Register("products", "/products")

	_, err := r.Clear("products", func(string) error { return errors.New("đang được sử dụng") })
	assert.Error(t, err)

	_, exists := r.Get("products")
	assert.True(t, exists, "Cleanup lỗi thì item phải còn nguyên trong registry")
}
