package logger

import (
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// WithRequest tạo log entry với thông tin từ HTTP request
func WithRequest(c fiber.Ctx) *logrus.Entry {
	requestID := ""
	if id, ok := c.Locals("requestid").(string); ok {
		requestID = id
	}
	if requestID == "" {
		requestID = c.Get("X-Request-ID")
	}

	return GetAppLogger().WithFields(logrus.Fields{
		"request_id": requestID,
		"method":     c.Method(),
		"path":       c.Path(),
		"ip":         c.IP(),
	})
}

// WithModule tạo log entry với module name (auth, catalog, inventory, ...)
func WithModule(module string) *logrus.Entry {
	return GetAppLogger().WithField("module", module)
}

// WithResource tạo log entry gắn với một resource upstream (products, clients, ...)
func WithResource(resource string) *logrus.Entry {
	return GetAppLogger().WithField("resource", resource)
}
