package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatuses_ClosedSet(t *testing.T) {
	assert.Len(t, AllOrderStatuses, 10, "tập trạng thái đơn hàng phải có đúng 10 giá trị")

	for _, status := range AllOrderStatuses {
		assert.True(t, IsValidOrderStatus(status), "trạng thái %s phải hợp lệ", status)
		assert.NotEmpty(t, OrderStatusLabels[status], "trạng thái %s phải có nhãn tiếng Việt", status)
	}

	assert.False(t, IsValidOrderStatus("SHIPPED"), "trạng thái ngoài tập đóng phải bị từ chối")
	assert.False(t, IsValidOrderStatus("pending"), "trạng thái phân biệt hoa thường")
	assert.False(t, IsValidOrderStatus(""))
}
