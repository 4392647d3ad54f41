// Package router đăng ký các route thuộc domain auth: đăng nhập, phiên, nhân viên, vai trò.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "sweet_admin/internal/api/auth/handler"
	"sweet_admin/internal/api/middleware"
	apirouter "sweet_admin/internal/api/router"
)

// Register đăng ký tất cả route auth (đăng nhập, profile, nhân viên, vai trò).
func Register(dashboard fiber.Router, auth fiber.Router, r *apirouter.Router) error {
	if err := registerAuthRoutes(auth); err != nil {
		return err
	}
	if err := registerStaffRoutes(dashboard, r); err != nil {
		return err
	}
	return nil
}

func registerAuthRoutes(auth fiber.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}
	auth.Post("/login", userHandler.HandleLogin)
	auth.Post("/logout", userHandler.HandleLogout)
	sessionMiddleware := middleware.SessionMiddleware()
	apirouter.RegisterRouteWithMiddleware(auth, "/profile", "GET", "/", []fiber.Handler{sessionMiddleware}, userHandler.HandleGetProfile)
	return nil
}

func registerStaffRoutes(dashboard fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}
	r.RegisterCRUDRoutes(dashboard, "/staff", userHandler, apirouter.ReadWriteConfig)

	roleHandler, err := authhdl.NewRoleHandler()
	if err != nil {
		return fmt.Errorf("failed to create role handler: %w", err)
	}
	r.RegisterCRUDRoutes(dashboard, "/roles", roleHandler, apirouter.ReadWriteConfig)
	return nil
}
