package router

import (
	"github.com/gofiber/fiber/v3"

	"sweet_admin/internal/api/middleware"
)

// ============================================================================
// ⚠️ QUAN TRỌNG: BUG FIBER V3 - CÁCH ĐĂNG KÝ MIDDLEWARE
// ============================================================================
//
// Fiber v3 có bug với cách đăng ký middleware trực tiếp trong route:
//
// ❌ CÁCH SAI (KHÔNG HOẠT ĐỘNG):
//    router.Get("/path", middleware.SessionMiddleware(), handler)
//    → Middleware sẽ KHÔNG được gọi, request sẽ bỏ qua middleware!
//
// ✅ CÁCH ĐÚNG (PHẢI DÙNG):
//    sessionMiddleware := middleware.SessionMiddleware()
//    RegisterRouteWithMiddleware(router, "/prefix", "GET", "/path", []fiber.Handler{sessionMiddleware}, handler)
//    → Middleware sẽ được gọi đúng cách thông qua .Use() method
//
// ============================================================================

// CRUDHandler định nghĩa interface cho các handler CRUD của một resource
type CRUDHandler interface {
	// Read
	List(filterKeys ...string) fiber.Handler
	FindOneById(c fiber.Ctx) error

	// Create
	InsertOne(c fiber.Ctx) error

	// Update
	UpdateById(c fiber.Ctx) error

	// Delete
	DeleteById(c fiber.Ctx) error
}

// Router quản lý việc định tuyến cho dashboard
type Router struct {
	app *fiber.App
}

// CRUDConfig cấu hình các operation được phép cho mỗi resource
type CRUDConfig struct {
	// Read
	List     bool // Danh sách có phân trang và tìm kiếm
	FindById bool // Chi tiết theo ID

	// Create
	InsOne bool // Tạo mới

	// Update
	UpdById bool // Cập nhật theo ID

	// Delete
	DelById bool // Xóa theo ID

	// ListFilters là các query key được phép chuyển tiếp lên admin API khi lấy danh sách
	ListFilters []string
}

// Config cho từng resource. Các domain dùng chung: ReadOnlyConfig, ReadWriteConfig.
var (
	// ReadOnlyConfig chỉ cho phép đọc (danh sách và chi tiết).
	ReadOnlyConfig = CRUDConfig{
		List: true, FindById: true,
		InsOne: false, UpdById: false, DelById: false,
	}

	// ReadWriteConfig cho phép đầy đủ CRUD.
	ReadWriteConfig = CRUDConfig{
		List: true, FindById: true,
		InsOne: true, UpdById: true, DelById: true,
	}
)

// RoutePrefix chứa các prefix cơ bản cho dashboard
type RoutePrefix struct {
	Dashboard string // Prefix cho các màn hình dashboard (/dashboard)
	Auth      string // Prefix cho các route xác thực (/auth)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	return RoutePrefix{
		Dashboard: "/dashboard",
		Auth:      "/auth",
	}
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app: app,
	}
}

// RegisterRouteWithMiddleware đăng ký route với middleware sử dụng .Use() method (cách đúng theo Fiber v3).
// Dùng từ domain router, xem comment ở đầu file.
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	// Tạo group với prefix, middleware sẽ chỉ áp dụng cho routes trong group này
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	// Đăng ký route với path tương đối (không có prefix vì đã có trong group)
	switch method {
	case "GET":
		routeGroup.Get(path, handler)
	case "POST":
		routeGroup.Post(path, handler)
	case "PUT":
		routeGroup.Put(path, handler)
	case "DELETE":
		routeGroup.Delete(path, handler)
	}
}

// RegisterCRUDRoutes đăng ký các route CRUD cho một resource. Dùng từ domain router.
// Tất cả route CRUD đều yêu cầu phiên đăng nhập hợp lệ.
func (r *Router) RegisterCRUDRoutes(router fiber.Router, prefix string, h CRUDHandler, config CRUDConfig) {
	sessionMiddleware := middleware.SessionMiddleware()

	// Read operations
	if config.List {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/", []fiber.Handler{sessionMiddleware}, h.List(config.ListFilters...))
	}
	if config.FindById {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/:id", []fiber.Handler{sessionMiddleware}, h.FindOneById)
	}

	// Create operations
	if config.InsOne {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/", []fiber.Handler{sessionMiddleware}, h.InsertOne)
	}

	// Update operations
	if config.UpdById {
		RegisterRouteWithMiddleware(router, prefix, "PUT", "/:id", []fiber.Handler{sessionMiddleware}, h.UpdateById)
	}

	// Delete operations
	if config.DelById {
		RegisterRouteWithMiddleware(router, prefix, "DELETE", "/:id", []fiber.Handler{sessionMiddleware}, h.DeleteById)
	}
}

// RegisterFunc là hàm đăng ký route của một domain (do domain/router export).
type RegisterFunc func(dashboard fiber.Router, auth fiber.Router, r *Router) error

// SetupRoutes thiết lập tất cả các route cho ứng dụng.
// Caller truyền lần lượt Register của từng domain để tránh import cycle.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	dashboard := app.Group(prefix.Dashboard)
	auth := app.Group(prefix.Auth)
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(dashboard, auth, r); err != nil {
			return err
		}
	}
	return nil
}
