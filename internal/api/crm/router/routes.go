// Package router đăng ký các route thuộc domain crm: khách hàng, đơn hàng.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	crmhdl "sweet_admin/internal/api/crm/handler"
	"sweet_admin/internal/api/middleware"
	apirouter "sweet_admin/internal/api/router"
)

// Register đăng ký tất cả route crm lên dashboard.
func Register(dashboard fiber.Router, auth fiber.Router, r *apirouter.Router) error {
	customerHandler, err := crmhdl.NewCustomerHandler()
	if err != nil {
		return fmt.Errorf("failed to create customer handler: %w", err)
	}
	r.RegisterCRUDRoutes(dashboard, "/customers", customerHandler, apirouter.ReadWriteConfig)

	orderHandler, err := crmhdl.NewOrderHandler()
	if err != nil {
		return fmt.Errorf("failed to create order handler: %w", err)
	}
	sessionMiddleware := middleware.SessionMiddleware()
	apirouter.RegisterRouteWithMiddleware(dashboard, "/orders", "GET", "/statuses", []fiber.Handler{sessionMiddleware}, orderHandler.HandleStatuses)
	config := apirouter.CRUDConfig{
		List: true, FindById: true,
		UpdById:     true,
		ListFilters: []string{"status", "clientId"},
	}
	r.RegisterCRUDRoutes(dashboard, "/orders", orderHandler, config)
	return nil
}
