// Package authsvc - service quản lý phiên đăng nhập của dashboard.
package authsvc

import (
	"fmt"
	"time"

	"sweet_admin/internal/api/auth/models"
	"sweet_admin/internal/common"
	"sweet_admin/internal/global"

	"github.com/dgrijalva/jwt-go"
)

// SessionService quản lý JWT session của dashboard.
// Session nhúng bearer token của admin API cùng snapshot thông tin nhân viên.
type SessionService struct {
	secret []byte        // Khóa ký JWT
	expire time.Duration // Thời gian sống của session
}

// NewSessionService tạo session service từ cấu hình server
func NewSessionService() (*SessionService, error) {
	if global.ServerConfig == nil || global.ServerConfig.JwtSecret == "" {
		return nil, fmt.Errorf("jwt secret is not configured: %w", common.ErrRequiredField)
	}

	expireHours := global.ServerConfig.SessionExpireHours
	if expireHours <= 0 {
		expireHours = 24
	}

	return &SessionService{
		secret: []byte(global.ServerConfig.JwtSecret),
		expire: time.Duration(expireHours) * time.Hour,
	}, nil
}

// CreateSession tạo JWT session mới cho nhân viên vừa đăng nhập
func (s *SessionService) CreateSession(upstreamToken string, staffID string, staffName string, phone string, roleName string) (string, error) {
	if upstreamToken == "" {
		return "", fmt.Errorf("upstream token is empty: %w", common.ErrRequiredField)
	}

	now := time.Now()
	claims := models.SessionClaims{
		UpstreamToken: upstreamToken,
		StaffID:       staffID,
		StaffName:     staffName,
		Phone:         phone,
		RoleName:      roleName,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.expire).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// ParseSession giải mã và kiểm tra JWT session.
// Trả về ErrSessionExpired nếu session hết hạn, ErrTokenInvalid nếu token sai.
func (s *SessionService) ParseSession(tokenStr string) (*models.SessionClaims, error) {
	if tokenStr == "" {
		return nil, common.ErrTokenMissing
	}

	claims := &models.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if validationErr, ok := err.(*jwt.ValidationError); ok {
			if validationErr.Errors&jwt.ValidationErrorExpired != 0 {
				return nil, common.ErrSessionExpired
			}
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, common.ErrTokenInvalid
	}

	return claims, nil
}
