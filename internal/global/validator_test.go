// Package global - Test các custom validator.
package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateVnPhone(t *testing.T) {
	InitValidator()

	valid := []string{
		"0399999999",
		"0351234567",
		"0781234567",
		"0881234567",
		"0911234567",
	}
	for _, phone := range valid {
		assert.NoError(t, Validate.Var(phone, "vn_phone"), "số %s phải hợp lệ", phone)
	}

	invalid := []string{
		"0199999999", // Đầu số 01 không còn tồn tại
		"0299999999", // Đầu số 02 là số cố định
		"039999999",  // Thiếu một chữ số
		"03999999999", // Thừa một chữ số
		"0399 999 99", // Có khoảng trắng
		"+84399999999", // Định dạng quốc tế không được nhận
		"abcdefghij",
		"",
	}
	for _, phone := range invalid {
		assert.Error(t, Validate.Var(phone, "vn_phone"), "số %q phải bị từ chối", phone)
	}
}

func TestValidateNoXSS(t *testing.T) {
	InitValidator()

	assert.NoError(t, Validate.Var("Bánh su kem vị vani", "no_xss"))
	assert.Error(t, Validate.Var("<script>alert(1)</script>", "no_xss"))
	assert.Error(t, Validate.Var("javascript:void(0)", "no_xss"))
	assert.Error(t, Validate.Var(`<img onerror="x">`, "no_xss"))
}

func TestValidateStrongPassword(t *testing.T) {
	InitValidator()

	assert.NoError(t, Validate.Var("Matkhau9!", "strong_password"))
	assert.Error(t, Validate.Var("matkhau9!", "strong_password"), "thiếu chữ hoa")
	assert.Error(t, Validate.Var("MATKHAU9!", "strong_password"), "thiếu chữ thường")
	assert.Error(t, Validate.Var("Matkhauaz!", "strong_password"), "thiếu chữ số")
	assert.Error(t, Validate.Var("Matkhau99", "strong_password"), "thiếu ký tự đặc biệt")
	assert.Error(t, Validate.Var("Mk9!", "strong_password"), "quá ngắn")
}
