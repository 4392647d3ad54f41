// Package models - các model kho hàng thuộc domain inventory.
package models

// Các loại giao dịch kho.
const (
	TransactionTypeImport = "IMPORT" // Nhập kho
	TransactionTypeExport = "EXPORT" // Xuất kho
)

// InventoryItem một lô hàng của sản phẩm tồn kho, tạo ra từ một phiên nhập.
type InventoryItem struct {
	ID          string `json:"id,omitempty"`
	Quantity    int64  `json:"quantity"`
	ExpiryDate  string `json:"expiryDate,omitempty"` // Định dạng YYYY-MM-DD, rỗng nếu sản phẩm không theo dõi hạn
	SessionCode string `json:"sessionCode,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// InventoryProduct sản phẩm tồn kho trên admin API.
// ValidItems và ExpiredItems do upstream phân loại theo hạn sử dụng.
type InventoryProduct struct {
	ID            string          `json:"id,omitempty"`
	Name          string          `json:"name"`
	CategoryID    string          `json:"categoryId,omitempty"`
	CategoryName  string          `json:"categoryName,omitempty"`
	Active        bool            `json:"active"`
	HasExpiryDate bool            `json:"hasExpiryDate"`
	ValidItems    []InventoryItem `json:"validItems,omitempty"`
	ExpiredItems  []InventoryItem `json:"expiredItems,omitempty"`
	CreatedAt     string          `json:"createdAt,omitempty"`
	UpdatedAt     string          `json:"updatedAt,omitempty"`
}

// InventorySession một phiên nhập kho, chứa các lô hàng được nhập cùng lúc.
type InventorySession struct {
	ID          string          `json:"id,omitempty"`
	Code        string          `json:"code,omitempty"`
	Description string          `json:"description"`
	Items       []InventoryItem `json:"items,omitempty"`
	CreatedBy   string          `json:"createdBy,omitempty"`
	CreatedAt   string          `json:"createdAt,omitempty"`
}

// InventoryTransaction một giao dịch nhập hoặc xuất kho.
type InventoryTransaction struct {
	ID          string `json:"id,omitempty"`
	Type        string `json:"type"` // IMPORT hoặc EXPORT
	ProductID   string `json:"productId"`
	ProductName string `json:"productName,omitempty"`
	Quantity    int64  `json:"quantity"`
	SessionCode string `json:"sessionCode,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}
