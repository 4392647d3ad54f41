// Package router đăng ký các route thuộc domain voucher.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"sweet_admin/internal/api/middleware"
	apirouter "sweet_admin/internal/api/router"
	voucherhdl "sweet_admin/internal/api/voucher/handler"
)

// Register đăng ký tất cả route voucher lên dashboard.
func Register(dashboard fiber.Router, auth fiber.Router, r *apirouter.Router) error {
	voucherHandler, err := voucherhdl.NewVoucherHandler()
	if err != nil {
		return fmt.Errorf("failed to create voucher handler: %w", err)
	}
	sessionMiddleware := middleware.SessionMiddleware()
	apirouter.RegisterRouteWithMiddleware(dashboard, "/vouchers", "GET", "/:id/preview-discount", []fiber.Handler{sessionMiddleware}, voucherHandler.HandlePreviewDiscount)
	config := apirouter.ReadWriteConfig
	config.ListFilters = []string{"type", "isActive"}
	r.RegisterCRUDRoutes(dashboard, "/vouchers", voucherHandler, config)
	return nil
}
