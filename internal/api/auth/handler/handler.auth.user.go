package authhdl

import (
	"fmt"
	"time"

	authdto "sweet_admin/internal/api/auth/dto"
	models "sweet_admin/internal/api/auth/models"
	authsvc "sweet_admin/internal/api/auth/service"
	basehdl "sweet_admin/internal/api/base/handler"
	"sweet_admin/internal/api/middleware"
	"sweet_admin/internal/apiclient"
	"sweet_admin/internal/common"
	"sweet_admin/internal/global"
	"sweet_admin/internal/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// UserHandler xử lý đăng nhập và quản lý nhân viên
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput]
	userService    *authsvc.UserService
	sessionService *authsvc.SessionService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	sessionService, err := authsvc.NewSessionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create session service: %v", err)
	}
	resource, err := apiclient.NewResourceClient[models.User](global.APIClient, "users", global.ResourcePaths.Users)
	if err != nil {
		return nil, fmt.Errorf("failed to create users resource client: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput](resource, global.QueryCache)
	return &UserHandler{
		BaseHandler:    baseHandler,
		userService:    userService,
		sessionService: sessionService,
	}, nil
}

// HandleLogin xử lý đăng nhập bằng số điện thoại và mật khẩu.
// Đăng nhập thành công sẽ tạo JWT session chứa bearer token của admin API
// và set cookie cho trình duyệt.
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.LoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.userService.Login(c.Context(), input.Phone, input.Password)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"phone": input.Phone,
				"error": err.Error(),
			}).Warn("❌ [AUTH] Login failed")
			h.HandleResponse(c, nil, err)
			return nil
		}

		session, err := h.sessionService.CreateSession(
			result.Token,
			result.User.ID,
			result.User.Name,
			result.User.Phone,
			result.User.RoleName,
		)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeAuthSession,
				"Không thể tạo phiên đăng nhập",
				common.StatusInternalServerError,
				err,
			))
			return nil
		}

		expireHours := global.ServerConfig.SessionExpireHours
		if expireHours <= 0 {
			expireHours = 24
		}
		c.Cookie(&fiber.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    session,
			Expires:  time.Now().Add(time.Duration(expireHours) * time.Hour),
			HTTPOnly: true,
			SameSite: "Lax",
			Path:     "/",
		})

		logger.WithModule("auth").WithField("staff_id", result.User.ID).Info("✅ [AUTH] Login success")
		h.HandleResponse(c, fiber.Map{
			"session": session,
			"user":    result.User,
		}, nil)
		return nil
	})
}

// HandleLogout xử lý đăng xuất: xóa cookie session và toàn bộ query cache
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		c.Cookie(&fiber.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    "",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			SameSite: "Lax",
			Path:     "/",
		})

		if global.QueryCache != nil {
			global.QueryCache.InvalidateAll()
		}

		h.HandleResponse(c, fiber.Map{"redirect": "/auth/login"}, nil)
		return nil
	})
}

// HandleGetProfile lấy thông tin nhân viên đang đăng nhập từ session
func (h *UserHandler) HandleGetProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		staffID, _ := c.Locals("staff_id").(string)
		if staffID == "" {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, nil))
			return nil
		}

		// Lấy thông tin mới nhất từ admin API, lỗi thì trả snapshot trong session
		user, err := h.Resource.GetByID(c.Context(), h.GetSessionToken(c), staffID)
		if err != nil {
			name, _ := c.Locals("staff_name").(string)
			phone, _ := c.Locals("staff_phone").(string)
			role, _ := c.Locals("staff_role").(string)
			h.HandleResponse(c, models.User{
				ID:       staffID,
				Name:     name,
				Phone:    phone,
				RoleName: role,
			}, nil)
			return nil
		}

		h.HandleResponse(c, user, nil)
		return nil
	})
}
