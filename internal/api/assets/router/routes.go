// Package router đăng ký các route upload ảnh.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	assetshdl "sweet_admin/internal/api/assets/handler"
	"sweet_admin/internal/api/middleware"
	apirouter "sweet_admin/internal/api/router"
)

// Register đăng ký route assets lên dashboard.
func Register(dashboard fiber.Router, auth fiber.Router, r *apirouter.Router) error {
	assetHandler, err := assetshdl.NewAssetHandler()
	if err != nil {
		return fmt.Errorf("failed to create asset handler: %w", err)
	}
	sessionMiddleware := middleware.SessionMiddleware()
	apirouter.RegisterRouteWithMiddleware(dashboard, "/assets", "POST", "/upload", []fiber.Handler{sessionMiddleware}, assetHandler.HandleUpload)
	apirouter.RegisterRouteWithMiddleware(dashboard, "/assets", "DELETE", "/", []fiber.Handler{sessionMiddleware}, assetHandler.HandleDelete)
	return nil
}
