// Package vouchersvc - nghiệp vụ voucher của dashboard.
package vouchersvc

import (
	voucherdto "sweet_admin/internal/api/voucher/dto"
	"sweet_admin/internal/api/voucher/models"
	"sweet_admin/internal/common"

	"github.com/shopspring/decimal"
)

// VoucherService xử lý nghiệp vụ voucher phía dashboard.
type VoucherService struct{}

// NewVoucherService tạo voucher service mới
func NewVoucherService() *VoucherService {
	return &VoucherService{}
}

// BuildCreatePayload dựng payload tạo voucher gửi lên admin API.
// Chỉ các field thuộc loại đang chọn được gửi lên: FIXED gửi price,
// PERCENT gửi percent và maxPrice. Loại kia bị loại khỏi payload để
// upstream không nhận giá trị mồ côi khi người dùng đổi loại trên form.
func (s *VoucherService) BuildCreatePayload(input *voucherdto.VoucherCreateInput) (map[string]interface{}, error) {
	if !models.IsValidVoucherType(input.Type) {
		return nil, common.NewError(common.ErrCodeValidationInput, "Loại voucher không hợp lệ", common.StatusBadRequest, nil)
	}

	payload := map[string]interface{}{
		"name":         input.Name,
		"type":         input.Type,
		"quantity":     input.Quantity,
		"isRedeemable": input.IsRedeemable,
	}
	if input.MinApply > 0 {
		payload["minApply"] = input.MinApply
	}
	if input.PointsRequired > 0 {
		payload["pointsRequired"] = input.PointsRequired
	}

	switch input.Type {
	case models.VoucherTypeFixed:
		if input.Price <= 0 {
			return nil, common.NewError(common.ErrCodeValidationInput, "Voucher giảm tiền phải có số tiền giảm", common.StatusBadRequest, nil)
		}
		payload["price"] = input.Price
	case models.VoucherTypePercent:
		if input.Percent <= 0 {
			return nil, common.NewError(common.ErrCodeValidationInput, "Voucher giảm phần trăm phải có phần trăm giảm", common.StatusBadRequest, nil)
		}
		payload["percent"] = input.Percent
		if input.MaxPrice > 0 {
			payload["maxPrice"] = input.MaxPrice
		}
	}

	return payload, nil
}

// BuildUpdatePayload dựng payload cập nhật voucher. Chỉ field người dùng
// thay đổi mới được gửi lên. Khi đổi loại voucher, field của loại cũ bị
// loại khỏi payload giống như khi tạo mới.
func (s *VoucherService) BuildUpdatePayload(input *voucherdto.VoucherUpdateInput) (map[string]interface{}, error) {
	payload := map[string]interface{}{}

	if input.Name != "" {
		payload["name"] = input.Name
	}
	if input.MinApply != nil {
		payload["minApply"] = *input.MinApply
	}
	if input.Quantity != nil {
		payload["quantity"] = *input.Quantity
	}
	if input.PointsRequired != nil {
		payload["pointsRequired"] = *input.PointsRequired
	}
	if input.IsRedeemable != nil {
		payload["isRedeemable"] = *input.IsRedeemable
	}
	if input.IsActive != nil {
		payload["isActive"] = *input.IsActive
	}

	if input.Type != "" {
		if !models.IsValidVoucherType(input.Type) {
			return nil, common.NewError(common.ErrCodeValidationInput, "Loại voucher không hợp lệ", common.StatusBadRequest, nil)
		}
		payload["type"] = input.Type

		switch input.Type {
		case models.VoucherTypeFixed:
			if input.Price == nil || *input.Price <= 0 {
				return nil, common.NewError(common.ErrCodeValidationInput, "Voucher giảm tiền phải có số tiền giảm", common.StatusBadRequest, nil)
			}
			payload["price"] = *input.Price
		case models.VoucherTypePercent:
			if input.Percent == nil || *input.Percent <= 0 {
				return nil, common.NewError(common.ErrCodeValidationInput, "Voucher giảm phần trăm phải có phần trăm giảm", common.StatusBadRequest, nil)
			}
			payload["percent"] = *input.Percent
			if input.MaxPrice != nil {
				payload["maxPrice"] = *input.MaxPrice
			}
		}
		return payload, nil
	}

	// Không đổi loại thì cập nhật field giảm giá riêng lẻ nếu có
	if input.Price != nil {
		payload["price"] = *input.Price
	}
	if input.Percent != nil {
		payload["percent"] = *input.Percent
	}
	if input.MaxPrice != nil {
		payload["maxPrice"] = *input.MaxPrice
	}

	if len(payload) == 0 {
		return nil, common.ErrRequiredField
	}

	return payload, nil
}

// PreviewDiscount tính thử số tiền giảm của voucher trên một giá trị đơn hàng.
// Dùng decimal để tránh sai số float khi tính phần trăm.
// Đơn chưa đạt MinApply thì không giảm.
func (s *VoucherService) PreviewDiscount(voucher *models.Voucher, orderTotal float64) float64 {
	if orderTotal <= 0 {
		return 0
	}
	if voucher.MinApply > 0 && orderTotal < voucher.MinApply {
		return 0
	}

	total := decimal.NewFromFloat(orderTotal)
	var discount decimal.Decimal

	switch voucher.Type {
	case models.VoucherTypeFixed:
		discount = decimal.NewFromFloat(voucher.Price)
	case models.VoucherTypePercent:
		percent := decimal.NewFromFloat(voucher.Percent).Div(decimal.NewFromInt(100))
		discount = total.Mul(percent)
		if voucher.MaxPrice > 0 {
			maxPrice := decimal.NewFromFloat(voucher.MaxPrice)
			if discount.GreaterThan(maxPrice) {
				discount = maxPrice
			}
		}
	default:
		return 0
	}

	// Không giảm quá giá trị đơn
	if discount.GreaterThan(total) {
		discount = total
	}

	result, _ := discount.Float64()
	return result
}
