package assetshdl

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v3"

	assetssvc "sweet_admin/internal/api/assets/service"
	basehdl "sweet_admin/internal/api/base/handler"
	"sweet_admin/internal/common"
	"sweet_admin/internal/logger"
	"sweet_admin/internal/utility"
)

// AssetHandler xử lý upload/xóa ảnh trên object store.
// Không có resource CRUD tương ứng trên admin API nên không embed BaseHandler,
// chỉ dùng lại helper response.
type AssetHandler struct {
	assetService *assetssvc.AssetService
}

// NewAssetHandler tạo instance mới của AssetHandler
func NewAssetHandler() (*AssetHandler, error) {
	assetService, err := assetssvc.NewAssetService()
	if err != nil {
		return nil, fmt.Errorf("failed to create asset service: %v", err)
	}
	return &AssetHandler{assetService: assetService}, nil
}

// HandleUpload nhận ảnh multipart, kiểm tra MIME và kích thước, upload lên
// object store rồi mới xóa ảnh cũ (nếu form gửi kèm previousUrl).
// Response: {url, preview}.
func (h *AssetHandler) HandleUpload(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu file ảnh trong form data (field 'file')",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		contentType := fileHeader.Header.Get("Content-Type")
		if err := h.assetService.ValidateImage(contentType, fileHeader.Size); err != nil {
			logger.WithRequest(c).WithFields(map[string]interface{}{
				"filename": fileHeader.Filename,
				"size":     utility.FormatBytes(uint64(fileHeader.Size)),
				"mime":     contentType,
			}).Warn("❌ [ASSETS] File upload bị từ chối")
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		file, err := fileHeader.Open()
		if err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeAssetUpload,
				"Không đọc được file upload",
				common.StatusBadRequest,
				err,
			))
			return nil
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, assetssvc.MaxImageSize+1))
		if err != nil {
			basehdl.HandleResponse(c, nil, common.NewError(
				common.ErrCodeAssetUpload,
				"Không đọc được file upload",
				common.StatusBadRequest,
				err,
			))
			return nil
		}
		if int64(len(data)) > assetssvc.MaxImageSize {
			basehdl.HandleResponse(c, nil, common.ErrAssetTooLarge)
			return nil
		}

		key := h.assetService.BuildObjectKey(fileHeader.Filename)
		previousURL := c.FormValue("previousUrl")

		url, err := h.assetService.ReplaceImage(c.Context(), key, contentType, data, previousURL)
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		logger.WithRequest(c).WithFields(map[string]interface{}{
			"key":  key,
			"size": utility.FormatBytes(uint64(len(data))),
		}).Info("✅ [ASSETS] Upload ảnh thành công")

		basehdl.HandleResponse(c, fiber.Map{
			"url":     url,
			"preview": h.assetService.BuildPreview(contentType, data),
		}, nil)
		return nil
	})
}

// HandleDelete xóa một ảnh theo URL. Body: {url}.
func (h *AssetHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		var input struct {
			URL string `json:"url" validate:"required"`
		}
		if err := basehdl.ParseBody(c, &input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}
		if input.URL == "" {
			basehdl.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		if err := h.assetService.Delete(c.Context(), input.URL); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		basehdl.HandleResponse(c, fiber.Map{"url": input.URL}, nil)
		return nil
	})
}
