// Package router đăng ký route khung dashboard.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"sweet_admin/internal/api/middleware"
	apirouter "sweet_admin/internal/api/router"
	shellhdl "sweet_admin/internal/api/shell/handler"
)

// Register đăng ký route shell lên dashboard.
func Register(dashboard fiber.Router, auth fiber.Router, r *apirouter.Router) error {
	shellHandler, err := shellhdl.NewShellHandler()
	if err != nil {
		return fmt.Errorf("failed to create shell handler: %w", err)
	}
	sessionMiddleware := middleware.SessionMiddleware()
	apirouter.RegisterRouteWithMiddleware(dashboard, "/menu", "GET", "/", []fiber.Handler{sessionMiddleware}, shellHandler.HandleMenu)
	return nil
}
