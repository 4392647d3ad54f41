// Package assetssvc - upload ảnh lên object store cho ảnh sản phẩm/avatar.
package assetssvc

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"sweet_admin/internal/common"
	"sweet_admin/internal/global"
	"sweet_admin/internal/utility"
)

// MaxImageSize giới hạn kích thước ảnh upload (5MB)
const MaxImageSize = 5 * 1024 * 1024

// AssetService upload và xóa ảnh trên object store.
// Store chỉ nhận PUT với Bearer token; mọi metadata nghiệp vụ (ảnh thuộc
// sản phẩm nào) nằm ở admin API, service này chỉ quản lý binary.
type AssetService struct {
	origin     string
	token      string
	httpClient *http.Client
}

// NewAssetService tạo asset service từ cấu hình server.
func NewAssetService() (*AssetService, error) {
	if global.ServerConfig == nil {
		return nil, fmt.Errorf("server config chưa được khởi tạo")
	}
	origin := strings.TrimRight(global.ServerConfig.AssetStoreOrigin, "/")
	if origin == "" {
		return nil, fmt.Errorf("ASSET_STORE_ORIGIN chưa được cấu hình")
	}
	return &AssetService{
		origin: origin,
		token:  global.ServerConfig.AssetStoreToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// ValidateImage kiểm tra MIME và kích thước trước khi upload.
func (s *AssetService) ValidateImage(contentType string, size int64) error {
	if !strings.HasPrefix(contentType, "image/") {
		return common.ErrAssetNotImage
	}
	if size > MaxImageSize {
		return common.ErrAssetTooLarge
	}
	return nil
}

// BuildObjectKey tạo key duy nhất cho object mới, giữ lại extension gốc
// để store phục vụ đúng content type.
func (s *AssetService) BuildObjectKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	name := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	name = sanitizeObjectName(name)
	if name == "" {
		name = "image"
	}
	return fmt.Sprintf("uploads/%s-%s%s", name, uuid.NewString(), ext)
}

// sanitizeObjectName giữ lại chữ, số, gạch nối; các ký tự khác thay bằng gạch nối
func sanitizeObjectName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}

// BuildPreview tạo data URL base64 để frontend hiển thị ảnh ngay khi chọn file,
// trước khi upload hoàn tất.
func (s *AssetService) BuildPreview(contentType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))
}

// Upload đẩy binary lên object store và trả về URL công khai của object.
func (s *AssetService) Upload(ctx context.Context, key string, contentType string, data []byte) (string, error) {
	objectURL := s.origin + "/" + key

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, objectURL, bytes.NewReader(data))
	if err != nil {
		return "", common.NewError(common.ErrCodeAssetUpload, "Không tạo được yêu cầu upload", common.StatusInternalServerError, err)
	}
	req.Header.Set("Content-Type", contentType)
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", common.NewError(common.ErrCodeAssetUpload, "Không thể kết nối đến kho ảnh", common.StatusServiceUnavailable, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", common.NewError(common.ErrCodeAssetUpload,
			fmt.Sprintf("Kho ảnh trả về lỗi (HTTP %d)", resp.StatusCode),
			common.StatusBadGateway, nil)
	}

	return objectURL, nil
}

// Delete xóa một object theo URL. Chỉ xóa object thuộc store của mình,
// URL ngoài store (ảnh cũ từ nguồn khác) được bỏ qua.
func (s *AssetService) Delete(ctx context.Context, objectURL string) error {
	if objectURL == "" {
		return nil
	}
	if !strings.HasPrefix(objectURL, s.origin+"/") {
		return nil
	}
	if _, err := url.Parse(objectURL); err != nil {
		return common.ErrInvalidInput
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, objectURL, nil)
	if err != nil {
		return common.NewError(common.ErrCodeAssetUpload, "Không tạo được yêu cầu xóa ảnh", common.StatusInternalServerError, err)
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return common.NewError(common.ErrCodeAssetUpload, "Không thể kết nối đến kho ảnh", common.StatusServiceUnavailable, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusNotFound && (resp.StatusCode < 200 || resp.StatusCode >= 300) {
		return common.NewError(common.ErrCodeAssetUpload,
			fmt.Sprintf("Kho ảnh trả lỗi khi xóa (HTTP %d)", resp.StatusCode),
			common.StatusBadGateway, nil)
	}

	return nil
}

// ReplaceImage upload ảnh mới rồi mới xóa ảnh cũ. Thứ tự này đảm bảo
// không bao giờ mất ảnh: xóa thất bại chỉ để lại object mồ côi, được
// log lại chứ không báo lỗi cho người dùng.
func (s *AssetService) ReplaceImage(ctx context.Context, key string, contentType string, data []byte, previousURL string) (string, error) {
	newURL, err := s.Upload(ctx, key, contentType, data)
	if err != nil {
		return "", err
	}

	if previousURL != "" {
		if err := s.Delete(ctx, previousURL); err != nil {
			utility.LogWarning("⚠️ [ASSETS] Không xóa được ảnh cũ sau khi thay thế", "error", err.Error(), "url", previousURL)
		}
	}

	return newURL, nil
}
