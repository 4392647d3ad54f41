// Package querycache cung cấp cache kết quả truy vấn từ admin API.
// Cache được đánh key theo resource + tham số truy vấn, có TTL, gộp các
// request trùng nhau đang bay (in-flight dedup) và hỗ trợ vô hiệu hóa
// theo resource sau mỗi thao tác ghi.
package querycache

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// entry là một giá trị trong cache kèm hạn sử dụng
type entry struct {
	value     interface{}
	expiresAt time.Time
}

// inflight đại diện cho một lần fetch đang chạy; các caller trùng key chờ chung
type inflight struct {
	done  chan struct{}
	value interface{}
	err   error
}

// Cache là query cache theo resource với TTL và in-flight dedup
type Cache struct {
	items       map[string]entry
	inflights   map[string]*inflight
	generations map[string]uint64 // Thế hệ hiện tại của từng resource, tăng khi invalidate
	epoch       uint64            // Thế hệ toàn cục, tăng khi InvalidateAll
	mu          sync.Mutex
	ttl         time.Duration
	cleanup     time.Duration
	stopChan    chan struct{}
	stopOnce    sync.Once
}

// NewCache tạo cache mới và chạy vòng dọn dẹp định kỳ
func NewCache(ttl, cleanup time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	if cleanup <= 0 {
		cleanup = time.Minute
	}
	cache := &Cache{
		items:       make(map[string]entry),
		inflights:   make(map[string]*inflight),
		generations: make(map[string]uint64),
		ttl:         ttl,
		cleanup:     cleanup,
		stopChan:    make(chan struct{}),
	}
	go cache.cleanupLoop()
	return cache
}

// BuildKey tạo cache key từ resource và tham số truy vấn.
// Tham số được sắp xếp theo tên để cùng bộ tham số luôn cho cùng key.
func BuildKey(resource string, params map[string]string) string {
	if len(params) == 0 {
		return resource
	}
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(resource)
	for _, k := range keys {
		sb.WriteString("|")
		sb.WriteString(k)
		sb.WriteString("=")
		sb.WriteString(params[k])
	}
	return sb.String()
}

// GetOrFetch lấy giá trị từ cache, nếu chưa có thì gọi fetch và lưu lại.
// Các caller cùng key đang chờ một fetch sẽ dùng chung kết quả thay vì
// gọi upstream nhiều lần. Kết quả fetch bị loại bỏ (không lưu cache) nếu
// resource đã bị invalidate trong lúc fetch đang chạy.
func (c *Cache) GetOrFetch(ctx context.Context, resource string, key string, fetch func(ctx context.Context) (interface{}, error)) (interface{}, error) {
	fullKey := resource + "::" + key

	c.mu.Lock()
	if item, exists := c.items[fullKey]; exists && time.Now().Before(item.expiresAt) {
		c.mu.Unlock()
		return item.value, nil
	}

	if fl, exists := c.inflights[fullKey]; exists {
		c.mu.Unlock()
		select {
		case <-fl.done:
			return fl.value, fl.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	fl := &inflight{done: make(chan struct{})}
	c.inflights[fullKey] = fl
	generation := c.generations[resource]
	epoch := c.epoch
	c.mu.Unlock()

	value, err := fetch(ctx)
	fl.value = value
	fl.err = err
	close(fl.done)

	c.mu.Lock()
	delete(c.inflights, fullKey)
	// Chỉ lưu khi resource chưa bị invalidate (riêng lẻ hoặc toàn bộ) trong lúc fetch
	if err == nil && c.generations[resource] == generation && c.epoch == epoch {
		c.items[fullKey] = entry{
			value:     value,
			expiresAt: time.Now().Add(c.ttl),
		}
	}
	c.mu.Unlock()

	return value, err
}

// Get lấy giá trị từ cache nếu còn hạn
func (c *Cache) Get(resource string, key string) (interface{}, bool) {
	fullKey := resource + "::" + key
	c.mu.Lock()
	defer c.mu.Unlock()
	item, exists := c.items[fullKey]
	if !exists || time.Now().After(item.expiresAt) {
		return nil, false
	}
	return item.value, true
}

// Set lưu giá trị vào cache với TTL mặc định
func (c *Cache) Set(resource string, key string, value interface{}) {
	fullKey := resource + "::" + key
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[fullKey] = entry{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Invalidate vô hiệu hóa toàn bộ cache của một resource.
// Gọi sau mỗi thao tác ghi (create/update/delete) lên resource đó.
func (c *Cache) Invalidate(resource string) {
	prefix := resource + "::"
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[resource]++
	for key := range c.items {
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
		}
	}
}

// InvalidateAll xóa toàn bộ cache, dùng khi đăng xuất hoặc đổi phiên.
// Tăng epoch toàn cục nên mọi fetch đang chạy, kể cả của resource chưa từng
// bị invalidate riêng lẻ, đều bị loại bỏ khi hoàn tất.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	c.items = make(map[string]entry)
}

// Len trả về số entry hiện có (kể cả entry đã hết hạn chưa bị dọn)
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Stop dừng vòng dọn dẹp
func (c *Cache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopChan)
	})
}

// cleanupLoop dọn các entry hết hạn định kỳ
func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(c.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for key, item := range c.items {
				if now.After(item.expiresAt) {
					delete(c.items, key)
				}
			}
			c.mu.Unlock()
		case <-c.stopChan:
			return
		}
	}
}

// String mô tả ngắn trạng thái cache, phục vụ debug log
func (c *Cache) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return fmt.Sprintf("querycache{items=%d, inflight=%d, ttl=%s}", len(c.items), len(c.inflights), c.ttl)
}
