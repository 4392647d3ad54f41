// Package models - model đơn hàng thuộc domain crm.
package models

// Các trạng thái đơn hàng. Tập trạng thái là tập đóng, dashboard chỉ hiển thị
// và lọc theo các giá trị này, không tự chuyển trạng thái.
const (
	OrderStatusPending   = "PENDING"   // Chờ xác nhận
	OrderStatusConfirmed = "CONFIRMED" // Đã xác nhận
	OrderStatusPreparing = "PREPARING" // Đang chuẩn bị hàng
	OrderStatusShipping  = "SHIPPING"  // Đang giao
	OrderStatusDelivered = "DELIVERED" // Đã giao
	OrderStatusCompleted = "COMPLETED" // Hoàn tất
	OrderStatusCancelled = "CANCELLED" // Đã hủy
	OrderStatusReturned  = "RETURNED"  // Đã trả hàng
	OrderStatusRefunded  = "REFUNDED"  // Đã hoàn tiền
	OrderStatusFailed    = "FAILED"    // Giao thất bại
)

// AllOrderStatuses danh sách đầy đủ trạng thái đơn hàng, dùng cho dropdown lọc
var AllOrderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusShipping,
	OrderStatusDelivered,
	OrderStatusCompleted,
	OrderStatusCancelled,
	OrderStatusReturned,
	OrderStatusRefunded,
	OrderStatusFailed,
}

// OrderStatusLabels nhãn tiếng Việt hiển thị cho từng trạng thái
var OrderStatusLabels = map[string]string{
	OrderStatusPending:   "Chờ xác nhận",
	OrderStatusConfirmed: "Đã xác nhận",
	OrderStatusPreparing: "Đang chuẩn bị",
	OrderStatusShipping:  "Đang giao",
	OrderStatusDelivered: "Đã giao",
	OrderStatusCompleted: "Hoàn tất",
	OrderStatusCancelled: "Đã hủy",
	OrderStatusReturned:  "Đã trả hàng",
	OrderStatusRefunded:  "Đã hoàn tiền",
	OrderStatusFailed:    "Giao thất bại",
}

// OrderItem một dòng hàng trong đơn.
type OrderItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName,omitempty"`
	Quantity    int64   `json:"quantity"`
	Price       float64 `json:"price"`
}

// Order đơn hàng trên admin API.
type Order struct {
	ID         string      `json:"id,omitempty"`
	ClientID   string      `json:"clientId"`
	ClientName string      `json:"clientName,omitempty"`
	Items      []OrderItem `json:"items,omitempty"`
	TotalPrice float64     `json:"totalPrice"`
	Status     string      `json:"status"`
	CreatedAt  string      `json:"createdAt,omitempty"`
	UpdatedAt  string      `json:"updatedAt,omitempty"`
}

// IsValidOrderStatus kiểm tra một trạng thái có thuộc tập đóng không
func IsValidOrderStatus(status string) bool {
	_, ok := OrderStatusLabels[status]
	return ok
}
