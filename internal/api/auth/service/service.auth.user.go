package authsvc

import (
	"context"
	"errors"
	"strings"

	"sweet_admin/internal/api/auth/models"
	"sweet_admin/internal/common"
	"sweet_admin/internal/global"
	"sweet_admin/internal/logger"
)

// UserService xử lý đăng nhập và truy vấn nhân viên trên admin API.
type UserService struct{}

// NewUserService tạo user service mới
func NewUserService() (*UserService, error) {
	if global.APIClient == nil {
		return nil, common.ErrUpstreamDown
	}
	return &UserService{}, nil
}

// Login đăng nhập bằng số điện thoại và mật khẩu lên admin API.
// Lỗi từ upstream được dịch sang thông báo tiếng Việt dựa theo nội dung message.
func (s *UserService) Login(ctx context.Context, phone string, password string) (*models.LoginResult, error) {
	if err := global.ValidatePhone(phone); err != nil {
		return nil, err
	}

	payload := map[string]string{
		"phone":    phone,
		"password": password,
	}

	var result models.LoginResult
	err := global.APIClient.Post(ctx, global.ResourcePaths.Login, "", payload, &result)
	if err != nil {
		return nil, s.translateLoginError(err)
	}

	if result.Token == "" {
		logger.WithModule("auth").Warn("Upstream trả về đăng nhập thành công nhưng thiếu token")
		return nil, common.ErrInvalidCredentials
	}

	return &result, nil
}

// translateLoginError dịch lỗi đăng nhập từ upstream sang thông báo tiếng Việt.
// Admin API không trả mã lỗi chi tiết nên phải so khớp theo nội dung message.
func (s *UserService) translateLoginError(err error) error {
	var upsErr *common.UpstreamError
	if !errors.As(err, &upsErr) {
		return common.ConvertUpstreamError(err)
	}

	message := strings.ToLower(upsErr.Message)
	switch {
	case strings.Contains(message, "password") || strings.Contains(message, "mật khẩu"):
		return common.NewError(common.ErrCodeAuthCredentials, "Mật khẩu không chính xác", common.StatusUnauthorized, nil)
	case strings.Contains(message, "not found") || strings.Contains(message, "not exist") || strings.Contains(message, "không tồn tại"):
		return common.NewError(common.ErrCodeAuthCredentials, "Số điện thoại chưa được đăng ký", common.StatusUnauthorized, nil)
	case strings.Contains(message, "lock") || strings.Contains(message, "block") || strings.Contains(message, "khóa"):
		return common.ErrAccountLocked
	default:
		if upsErr.StatusCode == common.StatusUnauthorized || upsErr.StatusCode == common.StatusBadRequest {
			return common.ErrInvalidCredentials
		}
		return common.ConvertUpstreamError(err)
	}
}
