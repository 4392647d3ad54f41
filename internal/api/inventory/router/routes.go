// Package router đăng ký các route thuộc domain inventory: tồn kho, nhập kho, giao dịch.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	inventoryhdl "sweet_admin/internal/api/inventory/handler"
	"sweet_admin/internal/api/middleware"
	apirouter "sweet_admin/internal/api/router"
)

// Register đăng ký tất cả route inventory lên dashboard.
func Register(dashboard fiber.Router, auth fiber.Router, r *apirouter.Router) error {
	if err := registerInventoryProductRoutes(dashboard, r); err != nil {
		return err
	}
	if err := registerImportRoutes(dashboard); err != nil {
		return err
	}
	if err := registerTransactionRoutes(dashboard, r); err != nil {
		return err
	}
	return nil
}

func registerInventoryProductRoutes(dashboard fiber.Router, r *apirouter.Router) error {
	productHandler, err := inventoryhdl.NewInventoryProductHandler()
	if err != nil {
		return fmt.Errorf("failed to create inventory product handler: %w", err)
	}
	sessionMiddleware := middleware.SessionMiddleware()
	apirouter.RegisterRouteWithMiddleware(dashboard, "/inventory-products", "GET", "/catalog", []fiber.Handler{sessionMiddleware}, productHandler.HandleCatalogSearch)
	config := apirouter.ReadOnlyConfig
	config.ListFilters = []string{"categoryId", "active"}
	r.RegisterCRUDRoutes(dashboard, "/inventory-products", productHandler, config)
	return nil
}

func registerImportRoutes(dashboard fiber.Router) error {
	importHandler, err := inventoryhdl.NewImportHandler()
	if err != nil {
		return fmt.Errorf("failed to create import handler: %w", err)
	}
	sessionMiddleware := middleware.SessionMiddleware()
	apirouter.RegisterRouteWithMiddleware(dashboard, "/inventory-import", "POST", "/event", []fiber.Handler{sessionMiddleware}, importHandler.HandleFormEvent)
	apirouter.RegisterRouteWithMiddleware(dashboard, "/inventory-import", "POST", "/validate", []fiber.Handler{sessionMiddleware}, importHandler.HandleValidate)
	apirouter.RegisterRouteWithMiddleware(dashboard, "/inventory-import", "POST", "/confirm", []fiber.Handler{sessionMiddleware}, importHandler.HandleConfirm)
	return nil
}

func registerTransactionRoutes(dashboard fiber.Router, r *apirouter.Router) error {
	transactionHandler, err := inventoryhdl.NewInventoryTransactionHandler()
	if err != nil {
		return fmt.Errorf("failed to create inventory transaction handler: %w", err)
	}
	config := apirouter.ReadOnlyConfig
	config.ListFilters = []string{"type", "productId"}
	r.RegisterCRUDRoutes(dashboard, "/inventory-transactions", transactionHandler, config)

	sessionHandler, err := inventoryhdl.NewInventorySessionHandler()
	if err != nil {
		return fmt.Errorf("failed to create inventory session handler: %w", err)
	}
	r.RegisterCRUDRoutes(dashboard, "/inventory", sessionHandler, apirouter.ReadOnlyConfig)
	return nil
}
