package inventoryhdl

import (
	"fmt"

	basehdl "sweet_admin/internal/api/base/handler"
	"sweet_admin/internal/api/inventory/models"
	"sweet_admin/internal/apiclient"
	"sweet_admin/internal/global"
)

// InventoryTransactionHandler xử lý màn hình giao dịch kho (chỉ đọc)
type InventoryTransactionHandler struct {
	*basehdl.BaseHandler[models.InventoryTransaction, struct{}, struct{}]
}

// NewInventoryTransactionHandler tạo instance mới của InventoryTransactionHandler
func NewInventoryTransactionHandler() (*InventoryTransactionHandler, error) {
	resource, err := apiclient.NewResourceClient[models.InventoryTransaction](global.APIClient, "inventory-transactions", global.ResourcePaths.InventoryTransactions)
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory transactions resource client: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.InventoryTransaction, struct{}, struct{}](resource, global.QueryCache)
	return &InventoryTransactionHandler{
		BaseHandler: baseHandler,
	}, nil
}

// InventorySessionHandler xử lý màn hình phiên kiểm/nhập kho (chỉ đọc)
type InventorySessionHandler struct {
	*basehdl.BaseHandler[models.InventorySession, struct{}, struct{}]
}

// NewInventorySessionHandler tạo instance mới của InventorySessionHandler
func NewInventorySessionHandler() (*InventorySessionHandler, error) {
	resource, err := apiclient.NewResourceClient[models.InventorySession](global.APIClient, "inventory-sessions", global.ResourcePaths.InventorySessions)
	if err != nil {
		return nil, fmt.Errorf("failed to create inventory sessions resource client: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.InventorySession, struct{}, struct{}](resource, global.QueryCache)
	return &InventorySessionHandler{
		BaseHandler: baseHandler,
	}, nil
}
