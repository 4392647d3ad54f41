// Package router đăng ký các route thuộc domain catalog: danh mục, sản phẩm.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "sweet_admin/internal/api/catalog/handler"
	"sweet_admin/internal/api/middleware"
	apirouter "sweet_admin/internal/api/router"
)

// Register đăng ký tất cả route catalog lên dashboard.
func Register(dashboard fiber.Router, auth fiber.Router, r *apirouter.Router) error {
	if err := registerCategoryRoutes(dashboard, r); err != nil {
		return err
	}
	if err := registerProductRoutes(dashboard, r); err != nil {
		return err
	}
	return nil
}

func registerCategoryRoutes(dashboard fiber.Router, r *apirouter.Router) error {
	categoryHandler, err := cataloghdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("failed to create category handler: %w", err)
	}
	sessionMiddleware := middleware.SessionMiddleware()
	apirouter.RegisterRouteWithMiddleware(dashboard, "/categories", "GET", "/names", []fiber.Handler{sessionMiddleware}, categoryHandler.HandleNames)
	r.RegisterCRUDRoutes(dashboard, "/categories", categoryHandler, apirouter.ReadWriteConfig)
	return nil
}

func registerProductRoutes(dashboard fiber.Router, r *apirouter.Router) error {
	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("failed to create product handler: %w", err)
	}
	sessionMiddleware := middleware.SessionMiddleware()
	apirouter.RegisterRouteWithMiddleware(dashboard, "/products", "GET", "/:id/effective-price", []fiber.Handler{sessionMiddleware}, productHandler.HandleEffectivePrice)
	config := apirouter.ReadWriteConfig
	config.ListFilters = []string{"categoryId", "active"}
	r.RegisterCRUDRoutes(dashboard, "/products", productHandler, config)
	return nil
}
