package global

import (
	"sweet_admin/config"
	"sweet_admin/internal/apiclient"
	"sweet_admin/internal/querycache"
	"sweet_admin/internal/registry"

	"github.com/go-playground/validator/v10"
)

// UpstreamResourcePaths chứa đường dẫn các resource trên admin API
type UpstreamResourcePaths struct {
	Categories            string // Đường dẫn cho danh mục sản phẩm
	Products              string // Đường dẫn cho sản phẩm
	Clients               string // Đường dẫn cho khách hàng
	Orders                string // Đường dẫn cho đơn hàng
	InventorySessions     string // Đường dẫn cho phiếu kiểm kho
	InventoryProducts     string // Đường dẫn cho sản phẩm tồn kho
	InventoryTransactions string // Đường dẫn cho giao dịch kho
	Roles                 string // Đường dẫn cho vai trò
	Users                 string // Đường dẫn cho nhân viên
	Vouchers              string // Đường dẫn cho voucher
	Login                 string // Đường dẫn đăng nhập
}

// Các biến toàn cục
var Validate *validator.Validate       // Biến để xác thực dữ liệu
var ServerConfig *config.Configuration // Cấu hình của server
var APIClient *apiclient.Client        // Client dùng chung gọi tới admin API
var QueryCache *querycache.Cache       // Query cache dùng chung cho các màn hình danh sách
var ResourcePaths = UpstreamResourcePaths{
	Categories:            "/categories",
	Products:              "/products",
	Clients:               "/clients",
	Orders:                "/orders",
	InventorySessions:     "/inventory-sessions",
	InventoryProducts:     "/inventory-products",
	InventoryTransactions: "/inventory-transactions",
	Roles:                 "/roles",
	Users:                 "/users",
	Vouchers:              "/vouchers",
	Login:                 "/auth/login",
}

// Các Registry
var RegistryResourcePaths = registry.NewRegistry[string]() // Registry chứa đường dẫn resource theo tên
