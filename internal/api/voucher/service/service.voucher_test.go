// Package vouchersvc - Test dựng payload voucher theo loại và tính thử giảm giá.
package vouchersvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	voucherdto "sweet_admin/internal/api/voucher/dto"
	"sweet_admin/internal/api/voucher/models"
)

func TestBuildCreatePayload_FixedOnlySendsPrice(t *testing.T) {
	service := NewVoucherService()

	payload, err := service.BuildCreatePayload(&voucherdto.VoucherCreateInput{
		Name:     "Giảm 20k",
		Type:     models.VoucherTypeFixed,
		Price:    20000,
		Percent:  10, // Giá trị sót lại từ form khi người dùng đổi loại
		MaxPrice: 50000,
		Quantity: 100,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(20000), payload["price"])
	assert.NotContains(t, payload, "percent", "voucher FIXED không được gửi percent")
	assert.NotContains(t, payload, "maxPrice", "voucher FIXED không được gửi maxPrice")
}

func TestBuildCreatePayload_PercentOnlySendsPercentFields(t *testing.T) {
	service := NewVoucherService()

	payload, err := service.BuildCreatePayload(&voucherdto.VoucherCreateInput{
		Name:     "Giảm 10%",
		Type:     models.VoucherTypePercent,
		Price:    20000, // Giá trị sót lại từ form khi người dùng đổi loại
		Percent:  10,
		MaxPrice: 50000,
		Quantity: 100,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(10), payload["percent"])
	assert.Equal(t, float64(50000), payload["maxPrice"])
	assert.NotContains(t, payload, "price", "voucher PERCENT không được gửi price")
}

func TestBuildCreatePayload_MissingTypeRelevantField(t *testing.T) {
	service := NewVoucherService()

	_, err := service.BuildCreatePayload(&voucherdto.VoucherCreateInput{
		Name:     "Giảm tiền",
		Type:     models.VoucherTypeFixed,
		Quantity: 100,
	})
	assert.Error(t, err, "FIXED thiếu price phải báo lỗi")

	_, err = service.BuildCreatePayload(&voucherdto.VoucherCreateInput{
		Name:     "Giảm phần trăm",
		Type:     models.VoucherTypePercent,
		Quantity: 100,
	})
	assert.Error(t, err, "PERCENT thiếu percent phải báo lỗi")
}

func TestBuildCreatePayload_InvalidType(t *testing.T) {
	service := NewVoucherService()

	_, err := service.BuildCreatePayload(&voucherdto.VoucherCreateInput{
		Name:     "Voucher lạ",
		Type:     "BOGO",
		Quantity: 1,
	})
	assert.Error(t, err, "loại voucher ngoài tập đóng phải bị từ chối")
}

func TestBuildUpdatePayload_TypeChangeDropsOldFields(t *testing.T) {
	service := NewVoucherService()
	percent := float64(15)
	maxPrice := float64(30000)
	price := float64(20000)

	payload, err := service.BuildUpdatePayload(&voucherdto.VoucherUpdateInput{
		Type:     models.VoucherTypePercent,
		Price:    &price, // Sót lại từ loại cũ
		Percent:  &percent,
		MaxPrice: &maxPrice,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(15), payload["percent"])
	assert.Equal(t, float64(30000), payload["maxPrice"])
	assert.NotContains(t, payload, "price", "đổi sang PERCENT thì price của loại cũ phải bị loại")
}

func TestBuildUpdatePayload_EmptyInput(t *testing.T) {
	service := NewVoucherService()

	_, err := service.BuildUpdatePayload(&voucherdto.VoucherUpdateInput{})
	assert.Error(t, err, "payload cập nhật rỗng phải báo lỗi")
}

func TestBuildUpdatePayload_PartialUpdate(t *testing.T) {
	service := NewVoucherService()
	active := false

	payload, err := service.BuildUpdatePayload(&voucherdto.VoucherUpdateInput{
		Name:     "Tên mới",
		IsActive: &active,
	})
	require.NoError(t, err)

	assert.Equal(t, "Tên mới", payload["name"])
	assert.Equal(t, false, payload["isActive"])
	assert.NotContains(t, payload, "type")
	assert.NotContains(t, payload, "quantity")
}

func TestPreviewDiscount(t *testing.T) {
	service := NewVoucherService()

	t.Run("FIXED giảm thẳng số tiền", func(t *testing.T) {
		voucher := &models.Voucher{Type: models.VoucherTypeFixed, Price: 20000}
		assert.Equal(t, float64(20000), service.PreviewDiscount(voucher, 100000))
	})

	t.Run("FIXED không giảm quá giá trị đơn", func(t *testing.T) {
		voucher := &models.Voucher{Type: models.VoucherTypeFixed, Price: 20000}
		assert.Equal(t, float64(15000), service.PreviewDiscount(voucher, 15000))
	})

	t.Run("PERCENT tính theo phần trăm", func(t *testing.T) {
		voucher := &models.Voucher{Type: models.VoucherTypePercent, Percent: 10}
		assert.Equal(t, float64(10000), service.PreviewDiscount(voucher, 100000))
	})

	t.Run("PERCENT bị chặn bởi maxPrice", func(t *testing.T) {
		voucher := &models.Voucher{Type: models.VoucherTypePercent, Percent: 50, MaxPrice: 30000}
		assert.Equal(t, float64(30000), service.PreviewDiscount(voucher, 100000))
	})

	t.Run("đơn chưa đạt minApply không được giảm", func(t *testing.T) {
		voucher := &models.Voucher{Type: models.VoucherTypeFixed, Price: 20000, MinApply: 50000}
		assert.Equal(t, float64(0), service.PreviewDiscount(voucher, 40000))
	})

	t.Run("phần trăm lẻ không bị sai số float", func(t *testing.T) {
		voucher := &models.Voucher{Type: models.VoucherTypePercent, Percent: 15}
		assert.Equal(t, float64(14999.85), service.PreviewDiscount(voucher, 99999))
	})
}
