package authhdl

import (
	"fmt"

	authdto "sweet_admin/internal/api/auth/dto"
	models "sweet_admin/internal/api/auth/models"
	basehdl "sweet_admin/internal/api/base/handler"
	"sweet_admin/internal/apiclient"
	"sweet_admin/internal/global"
)

// RoleHandler xử lý CRUD vai trò nhân viên
type RoleHandler struct {
	*basehdl.BaseHandler[models.Role, authdto.RoleCreateInput, authdto.RoleUpdateInput]
}

// NewRoleHandler tạo instance mới của RoleHandler
func NewRoleHandler() (*RoleHandler, error) {
	resource, err := apiclient.NewResourceClient[models.Role](global.APIClient, "roles", global.ResourcePaths.Roles)
	if err != nil {
		return nil, fmt.Errorf("failed to create roles resource client: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Role, authdto.RoleCreateInput, authdto.RoleUpdateInput](resource, global.QueryCache)
	return &RoleHandler{
		BaseHandler: baseHandler,
	}, nil
}
