package global

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"sweet_admin/internal/common"
)

// Số điện thoại di động Việt Nam: 10 chữ số, đầu số 03/05/07/08/09
var vnPhonePattern = regexp.MustCompile(`^(03|05|07|08|09)[0-9]{8}$`)

// ValidatePhone kiểm tra định dạng số điện thoại di động Việt Nam
func ValidatePhone(phone string) error {
	if Validate == nil || Validate.Var(phone, "required,vn_phone") != nil {
		return common.ErrInvalidPhone
	}
	return nil
}

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	// Khởi tạo validator
	Validate = validator.New()

	// Đăng ký các custom validator
	_ = Validate.RegisterValidation("vn_phone", validateVnPhone)
	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("strong_password", validateStrongPassword)
}

// validateVnPhone kiểm tra số điện thoại di động Việt Nam
func validateVnPhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return vnPhonePattern.MatchString(value)
}

// validateNoXSS kiểm tra XSS
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"onmouseover=",
		"eval(",
		"document.cookie",
		"document.write",
		"innerHTML",
		"fromCharCode",
		"window.location",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateStrongPassword kiểm tra mật khẩu mạnh
func validateStrongPassword(fl validator.FieldLevel) bool {
	value := fl.Field().String()

	// Kiểm tra độ dài tối thiểu
	if len(value) < 8 {
		return false
	}

	var (
		hasUpper   bool
		hasLower   bool
		hasNumber  bool
		hasSpecial bool
	)

	for _, char := range value {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	return hasUpper && hasLower && hasNumber && hasSpecial
}
