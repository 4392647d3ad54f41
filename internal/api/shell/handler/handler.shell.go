package shellhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "sweet_admin/internal/api/base/handler"
	shellsvc "sweet_admin/internal/api/shell/service"
)

// ShellHandler trả về dữ liệu khung dashboard: menu điều hướng và thông tin
// nhân viên đang đăng nhập để hiển thị trên header.
type ShellHandler struct {
	menuService *shellsvc.MenuService
}

// NewShellHandler tạo instance mới của ShellHandler
func NewShellHandler() (*ShellHandler, error) {
	return &ShellHandler{menuService: shellsvc.NewMenuService()}, nil
}

// HandleMenu trả về menu sidebar với cờ active theo route hiện tại.
// Query: path (route hiện tại của frontend, optional).
func (h *ShellHandler) HandleMenu(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		sections := h.menuService.Build(c.Query("path", ""))

		staff := fiber.Map{}
		if staffID, ok := c.Locals("staff_id").(string); ok && staffID != "" {
			staff["id"] = staffID
			staff["name"], _ = c.Locals("staff_name").(string)
			staff["phone"], _ = c.Locals("staff_phone").(string)
			staff["roleName"], _ = c.Locals("staff_role").(string)
		}

		basehdl.HandleResponse(c, fiber.Map{
			"sections": sections,
			"staff":    staff,
		}, nil)
		return nil
	})
}
