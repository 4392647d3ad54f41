package middleware

import (
	"strings"
	"sync"

	"sweet_admin/internal/api/auth/service"
	"sweet_admin/internal/common"
	"sweet_admin/internal/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// SessionCookieName là tên cookie chứa JWT session của dashboard
const SessionCookieName = "sweet_session"

// LoginPath là đường dẫn màn hình đăng nhập
const LoginPath = "/auth/login"

var (
	sessionServiceInstance *authsvc.SessionService
	sessionServiceOnce     sync.Once
)

// getSessionService trả về instance duy nhất của SessionService (singleton pattern)
func getSessionService() *authsvc.SessionService {
	sessionServiceOnce.Do(func() {
		var err error
		sessionServiceInstance, err = authsvc.NewSessionService()
		if err != nil {
			panic(err)
		}
	})
	return sessionServiceInstance
}

// SessionMiddleware middleware xác thực phiên cho các route dashboard.
// Session lấy từ cookie hoặc header Authorization. Khi chưa đăng nhập hoặc
// session hết hạn: request HTML bị chuyển hướng 302 về màn hình đăng nhập,
// request JSON nhận 401 kèm đường dẫn chuyển hướng để client tự xử lý.
func SessionMiddleware() fiber.Handler {
	sessionService := getSessionService()

	return func(c fiber.Ctx) error {
		tokenStr := extractSessionToken(c)
		if tokenStr == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [SESSION] Missing session token")
			return redirectToLogin(c, common.ErrTokenMissing)
		}

		claims, err := sessionService.ParseSession(tokenStr)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [SESSION] Invalid or expired session")
			return redirectToLogin(c, err)
		}

		// Lưu thông tin phiên vào context
		c.Locals("upstream_token", claims.UpstreamToken)
		c.Locals("staff_id", claims.StaffID)
		c.Locals("staff_name", claims.StaffName)
		c.Locals("staff_phone", claims.Phone)
		c.Locals("staff_role", claims.RoleName)

		return c.Next()
	}
}

// extractSessionToken lấy session token từ cookie hoặc header Authorization
func extractSessionToken(c fiber.Ctx) string {
	if cookie := c.Cookies(SessionCookieName); cookie != "" {
		return cookie
	}

	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// redirectToLogin trả về chuyển hướng hoặc lỗi 401 tùy loại request.
// Request từ trình duyệt (Accept: text/html) nhận 302, còn lại nhận JSON 401
// kèm field "redirect" để client chuyển hướng.
func redirectToLogin(c fiber.Ctx, err error) error {
	if strings.Contains(c.Get("Accept"), "text/html") {
		return c.Redirect().To(LoginPath)
	}

	var customErr *common.Error
	statusCode := common.StatusUnauthorized
	message := common.MsgUnauthorized
	code := common.ErrCodeAuthSession.Code
	if e, ok := err.(*common.Error); ok {
		customErr = e
		statusCode = customErr.StatusCode
		message = customErr.Message
		code = customErr.Code.Code
	}

	return JSONResponse(c, statusCode, fiber.Map{
		"code":     code,
		"message":  message,
		"redirect": LoginPath,
		"status":   "error",
	})
}
