// Package querycache - Test TTL, in-flight dedup và vô hiệu hóa theo resource.
package querycache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildKey_SortedAndStable(t *testing.T) {
	key1 := BuildKey("products", map[string]string{"page": "1", "search": "kem"})
	key2 := BuildKey("products", map[string]string{"search": "kem", "page": "1"})
	assert.Equal(t, key1, key2, "cùng bộ tham số phải cho cùng key bất kể thứ tự")

	key3 := BuildKey("products", map[string]string{"page": "1", "search": ""})
	key4 := BuildKey("products", map[string]string{"page": "1"})
	assert.Equal(t, key3, key4, "tham số rỗng phải bị bỏ qua khi dựng key")

	assert.Equal(t, "products", BuildKey("products", nil))
}

func TestCache_GetOrFetch_CachesResult(t *testing.T) {
	cache := NewCache(time.Minute, time.Minute)
	defer cache.Stop()

	var calls int32
	fetch := func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		return "result", nil
	}

	for i := 0; i < 3; i++ {
		value, err := cache.GetOrFetch(context.Background(), "products", "page=1", fetch)
		require.NoError(t, err)
		assert.Equal(t, "result", value)
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "các lần gọi sau phải trúng cache")
}

func TestCache_GetOrFetch_DedupInflight(t *testing.T) {
	cache := NewCache(time.Minute, time.Minute)
	defer cache.Stop()

	var calls int32
	started := make(chan struct{})
	release := make(chan struct{})
	fetch := func(ctx context.Context) (interface{}, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(started)
			<-release
		}
		return "shared", nil
	}

	var wg sync.WaitGroup
	results := make([]interface{}, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			if idx == 0 {
				value, _ := cache.GetOrFetch(context.Background(), "orders", "page=1", fetch)
				results[idx] = value
				return
			}
			<-started
			value, _ := cache.GetOrFetch(context.Background(), "orders", "page=1", fetch)
			results[idx] = value
		}(i)
	}

	// Chờ fetch đầu tiên bắt đầu rồi thả cho nó hoàn thành
	<-started
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "các caller trùng key phải dùng chung một fetch")
	for _, value := range results {
		assert.Equal(t, "shared", value)
	}
}

func TestCache_Invalidate_DiscardsInflightResult(t *testing.T) {
	cache := NewCache(time.Minute, time.Minute)
	defer cache.Stop()

	fetchStarted := make(chan struct{})
	release := make(chan struct{})
	fetch := func(ctx context.Context) (interface{}, error) {
		close(fetchStarted)
		<-release
		return "stale", nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		value, err := cache.GetOrFetch(context.Background(), "products", "page=1", fetch)
		// Caller vẫn nhận được kết quả của fetch đang bay
		assert.NoError(t, err)
		assert.Equal(t, "stale", value)
	}()

	// Invalidate trong lúc fetch đang chạy
	<-fetchStarted
	cache.Invalidate("products")
	close(release)
	<-done

	// Kết quả fetch cũ không được lưu lại vào cache
	_, found := cache.Get("products", "page=1")
	assert.False(t, found, "kết quả hoàn thành sau invalidate phải bị loại bỏ")
}

func TestCache_Invalidate_OnlyTargetResource(t *testing.T) {
	cache := NewCache(time.Minute, time.Minute)
	defer cache.Stop()

	cache.Set("products", "page=1", "p")
	cache.Set("orders", "page=1", "o")

	cache.Invalidate("products")

	_, found := cache.Get("products", "page=1")
	assert.False(t, found)

	value, found := cache.Get("orders", "page=1")
	assert.True(t, found, "invalidate một resource không được ảnh hưởng resource khác")
	assert.Equal(t, "o", value)
}

func TestCache_InvalidateAll(t *testing.T) {
	cache := NewCache(time.Minute, time.Minute)
	defer cache.Stop()

	cache.Set("products", "page=1", "p")
	cache.Set("orders", "page=1", "o")
	require.Equal(t, 2, cache.Len())

	cache.InvalidateAll()
	assert.Equal(t, 0, cache.Len())
}

func TestCache_InvalidateAll_DiscardsInflightResult(t *testing.T) {
	cache := NewCache(time.Minute, time.Minute)
	defer cache.Stop()

	fetchStarted := make(chan struct{})
	release := make(chan struct{})
	fetch := func(ctx context.Context) (interface{}, error) {
		close(fetchStarted)
		<-release
		return "du-lieu-phien-cu", nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		// Resource "orders" chưa từng bị Invalidate riêng lẻ trước đó
		_, err := cache.GetOrFetch(context.Background(), "orders", "page=1", fetch)
		assert.NoError(t, err)
	}()

	// Đăng xuất (InvalidateAll) trong lúc fetch của phiên cũ đang chạy
	<-fetchStarted
	cache.InvalidateAll()
	close(release)
	<-done

	_, found := cache.Get("orders", "page=1")
	assert.False(t, found, "kết quả của phiên cũ không được lọt vào cache sau InvalidateAll")
}

func TestCache_TTLExpiry(t *testing.T) {
	cache := NewCache(30*time.Millisecond, time.Minute)
	defer cache.Stop()

	cache.Set("products", "page=1", "p")

	_, found := cache.Get("products", "page=1")
	require.True(t, found)

	time.Sleep(50 * time.Millisecond)
	_, found = cache.Get("products", "page=1")
	assert.False(t, found, "entry quá TTL không được trả về")
}
