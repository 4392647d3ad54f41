package crmhdl

import (
	"fmt"

	basehdl "sweet_admin/internal/api/base/handler"
	crmdto "sweet_admin/internal/api/crm/dto"
	"sweet_admin/internal/api/crm/models"
	"sweet_admin/internal/apiclient"
	"sweet_admin/internal/global"
)

// CustomerHandler xử lý CRUD khách hàng
type CustomerHandler struct {
	*basehdl.BaseHandler[models.Customer, crmdto.CustomerCreateInput, crmdto.CustomerUpdateInput]
}

// NewCustomerHandler tạo instance mới của CustomerHandler
func NewCustomerHandler() (*CustomerHandler, error) {
	resource, err := apiclient.NewResourceClient[models.Customer](global.APIClient, "clients", global.ResourcePaths.Clients)
	if err != nil {
		return nil, fmt.Errorf("failed to create clients resource client: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Customer, crmdto.CustomerCreateInput, crmdto.CustomerUpdateInput](resource, global.QueryCache)
	return &CustomerHandler{
		BaseHandler: baseHandler,
	}, nil
}
