package common

import (
	"errors"
)

// HTTP Status Code Constants
const (
	// Success Codes (2xx)
	StatusOK        = 200 // Thành công
	StatusCreated   = 201 // Tạo mới thành công
	StatusAccepted  = 202 // Yêu cầu được chấp nhận
	StatusNoContent = 204 // Thành công nhưng không có nội dung trả về

	// Client Error Codes (4xx)
	StatusBadRequest         = 400 // Yêu cầu không hợp lệ
	StatusUnauthorized       = 401 // Chưa xác thực
	StatusForbidden          = 403 // Không có quyền truy cập
	StatusNotFound           = 404 // Không tìm thấy tài nguyên
	StatusMethodNotAllowed   = 405 // Phương thức HTTP không được hỗ trợ
	StatusConflict           = 409 // Xung đột dữ liệu
	StatusGone               = 410 // Tài nguyên không còn tồn tại
	StatusPreconditionFailed = 412 // Điều kiện tiên quyết không thỏa mãn
	StatusPayloadTooLarge    = 413 // Dữ liệu gửi lên quá lớn
	StatusTooManyRequests    = 429 // Quá nhiều yêu cầu

	// Server Error Codes (5xx)
	StatusInternalServerError = 500 // Lỗi server
	StatusNotImplemented      = 501 // Chức năng chưa được triển khai
	StatusBadGateway          = 502 // Gateway không hợp lệ
	StatusServiceUnavailable  = 503 // Dịch vụ không khả dụng
	StatusGatewayTimeout      = 504 // Gateway timeout
)

// Response Messages
const (
	// Success Messages
	MsgSuccess   = "Thao tác thành công"
	MsgCreated   = "Tạo mới thành công"
	MsgAccepted  = "Yêu cầu được chấp nhận"
	MsgNoContent = "Không có nội dung trả về"

	// Error Messages
	MsgBadRequest         = "Yêu cầu không hợp lệ"
	MsgUnauthorized       = "Vui lòng đăng nhập"
	MsgForbidden          = "Không có quyền truy cập"
	MsgNotFound           = "Không tìm thấy tài nguyên"
	MsgMethodNotAllowed   = "Phương thức không được hỗ trợ"
	MsgConflict           = "Xung đột dữ liệu"
	MsgTooManyRequests    = "Quá nhiều yêu cầu"
	MsgInternalError      = "Lỗi hệ thống"
	MsgBadGateway         = "Gateway không hợp lệ"
	MsgServiceUnavailable = "Dịch vụ không khả dụng"
	MsgGatewayTimeout     = "Gateway timeout"

	// Token Messages
	MsgTokenMissing = "Thiếu token xác thực"
	MsgTokenInvalid = "Token không hợp lệ"
	MsgTokenExpired = "Token đã hết hạn"

	// Validation Messages
	MsgValidationError = "Dữ liệu không hợp lệ"
	MsgUpstreamError   = "Lỗi tương tác với máy chủ"
	MsgInvalidFormat   = "Định dạng dữ liệu không hợp lệ"
)

// ErrorCode định nghĩa mã lỗi chi tiết
type ErrorCode struct {
	Code        string // Mã lỗi (ví dụ: AUTH_001)
	Category    string // Phân loại lỗi (ví dụ: Authentication)
	SubCategory string // Phân loại con (ví dụ: Token)
	Description string // Mô tả chi tiết
}

// Định nghĩa các mã lỗi theo hệ thống phân cấp
var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Lỗi hệ thống nội bộ",
	}

	// Authentication Errors (AUTH_xxx)
	ErrCodeAuth = ErrorCode{
		Code:        "AUTH",
		Category:    "Authentication",
		SubCategory: "General",
		Description: "Lỗi xác thực chung",
	}

	ErrCodeAuthToken = ErrorCode{
		Code:        "AUTH_001",
		Category:    "Authentication",
		SubCategory: "Token",
		Description: "Lỗi liên quan đến token",
	}

	ErrCodeAuthCredentials = ErrorCode{
		Code:        "AUTH_002",
		Category:    "Authentication",
		SubCategory: "Credentials",
		Description: "Lỗi thông tin đăng nhập",
	}

	ErrCodeAuthSession = ErrorCode{
		Code:        "AUTH_003",
		Category:    "Authentication",
		SubCategory: "Session",
		Description: "Lỗi liên quan đến phiên làm việc",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidation = ErrorCode{
		Code:        "VAL",
		Category:    "Validation",
		SubCategory: "General",
		Description: "Lỗi xác thực dữ liệu chung",
	}

	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Lỗi dữ liệu đầu vào",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Lỗi định dạng dữ liệu",
	}

	// Upstream API Errors (UPS_xxx)
	ErrCodeUpstream = ErrorCode{
		Code:        "UPS",
		Category:    "Upstream",
		SubCategory: "General",
		Description: "Lỗi API quản trị chung",
	}

	ErrCodeUpstreamConnection = ErrorCode{
		Code:        "UPS_001",
		Category:    "Upstream",
		SubCategory: "Connection",
		Description: "Lỗi kết nối đến API quản trị",
	}

	ErrCodeUpstreamResponse = ErrorCode{
		Code:        "UPS_002",
		Category:    "Upstream",
		SubCategory: "Response",
		Description: "API quản trị trả về lỗi",
	}

	// Business Logic Errors (BIZ_xxx)
	ErrCodeBusiness = ErrorCode{
		Code:        "BIZ",
		Category:    "Business",
		SubCategory: "General",
		Description: "Lỗi logic nghiệp vụ chung",
	}

	ErrCodeBusinessState = ErrorCode{
		Code:        "BIZ_001",
		Category:    "Business",
		SubCategory: "State",
		Description: "Lỗi trạng thái nghiệp vụ",
	}

	ErrCodeBusinessOperation = ErrorCode{
		Code:        "BIZ_002",
		Category:    "Business",
		SubCategory: "Operation",
		Description: "Lỗi thao tác nghiệp vụ",
	}

	// Asset Store Errors (AST_xxx)
	ErrCodeAsset = ErrorCode{
		Code:        "AST",
		Category:    "Asset",
		SubCategory: "General",
		Description: "Lỗi object store chung",
	}

	ErrCodeAssetUpload = ErrorCode{
		Code:        "AST_001",
		Category:    "Asset",
		SubCategory: "Upload",
		Description: "Lỗi upload file lên object store",
	}

	ErrCodeAssetDelete = ErrorCode{
		Code:        "AST_002",
		Category:    "Asset",
		SubCategory: "Delete",
		Description: "Lỗi xóa file khỏi object store",
	}
)

// Error định nghĩa cấu trúc lỗi chi tiết
type Error struct {
	Code       ErrorCode // Mã lỗi chi tiết
	Message    string    // Thông báo lỗi
	StatusCode int       // HTTP status code
	Details    any       // Thông tin chi tiết thêm về lỗi
}

// Error trả về message của lỗi
func (e *Error) Error() string {
	return e.Message
}

// Is kiểm tra xem error có phải là target error không (hỗ trợ errors.Is)
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	// So sánh với các custom error khác theo code + message
	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}

	return false
}

// NewError tạo một error mới với đầy đủ thông tin
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Custom errors
var (
	// Authentication Errors
	ErrInvalidCredentials = NewError(ErrCodeAuthCredentials, "Thông tin đăng nhập không chính xác", StatusUnauthorized, nil)
	ErrSessionExpired     = NewError(ErrCodeAuthSession, "Phiên đăng nhập đã hết hạn", StatusUnauthorized, nil)
	ErrTokenInvalid       = NewError(ErrCodeAuthToken, "Token không hợp lệ", StatusUnauthorized, nil)
	ErrTokenMissing       = NewError(ErrCodeAuthToken, "Thiếu token xác thực", StatusUnauthorized, nil)
	ErrAccountLocked      = NewError(ErrCodeAuthCredentials, "Tài khoản đã bị khóa", StatusForbidden, nil)

	// Validation Errors
	ErrInvalidInput  = NewError(ErrCodeValidationInput, "Dữ liệu đầu vào không hợp lệ", StatusBadRequest, nil)
	ErrInvalidPhone  = NewError(ErrCodeValidationInput, "Số điện thoại không đúng định dạng", StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, "Định dạng dữ liệu không hợp lệ", StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Thiếu thông tin bắt buộc", StatusBadRequest, nil)

	// Upstream Errors
	ErrNotFound        = NewError(ErrCodeUpstreamResponse, "Không tìm thấy dữ liệu", StatusNotFound, nil)
	ErrDuplicate       = NewError(ErrCodeUpstreamResponse, "Dữ liệu đã tồn tại", StatusConflict, nil)
	ErrUpstreamAuth    = NewError(ErrCodeUpstreamResponse, "Phiên đăng nhập đã hết hạn", StatusUnauthorized, nil)
	ErrUpstreamDown    = NewError(ErrCodeUpstreamConnection, "Không thể kết nối đến máy chủ", StatusServiceUnavailable, nil)
	ErrUpstreamTimeout = NewError(ErrCodeUpstreamConnection, "Máy chủ phản hồi quá chậm", StatusGatewayTimeout, nil)

	// Business Logic Errors
	ErrInvalidState     = NewError(ErrCodeBusinessState, "Trạng thái không hợp lệ", StatusBadRequest, nil)
	ErrInvalidOperation = NewError(ErrCodeBusinessOperation, "Thao tác không hợp lệ", StatusBadRequest, nil)

	// Asset Store Errors
	ErrAssetNotImage = NewError(ErrCodeAssetUpload, "File phải là hình ảnh", StatusBadRequest, nil)
	ErrAssetTooLarge = NewError(ErrCodeAssetUpload, "Kích thước ảnh không được vượt quá 5MB", StatusPayloadTooLarge, nil)
)

// UpstreamError giữ nguyên thông tin lỗi mà API quản trị trả về.
// Message luôn ưu tiên trường message trong body (quy ước response.data.message),
// fallback về message mặc định theo status code nếu body không parse được.
type UpstreamError struct {
	StatusCode int    // HTTP status code từ upstream
	Message    string // Message lấy từ body upstream (nếu có)
	Body       []byte // Body thô để debug
}

// Error trả về message của lỗi upstream
func (e *UpstreamError) Error() string {
	return e.Message
}

// ConvertUpstreamError chuyển đổi lỗi khi gọi API quản trị sang lỗi hệ thống.
// Giữ nguyên message từ upstream để UI hiển thị trực tiếp cho người dùng.
func ConvertUpstreamError(err error) error {
	if err == nil {
		return nil
	}

	// Các lỗi đã được convert thì giữ nguyên
	var customErr *Error
	if errors.As(err, &customErr) {
		return err
	}

	// Lỗi có status code từ upstream
	var upsErr *UpstreamError
	if errors.As(err, &upsErr) {
		message := upsErr.Message
		if message == "" {
			message = MsgUpstreamError
		}
		switch {
		case upsErr.StatusCode == StatusUnauthorized:
			// 401 từ upstream: session hết hạn, UI phải chuyển về màn hình login
			return ErrUpstreamAuth
		case upsErr.StatusCode == StatusNotFound:
			return NewError(ErrCodeUpstreamResponse, message, StatusNotFound, nil)
		case upsErr.StatusCode == StatusConflict:
			return NewError(ErrCodeUpstreamResponse, message, StatusConflict, nil)
		case upsErr.StatusCode >= 400 && upsErr.StatusCode < 500:
			return NewError(ErrCodeUpstreamResponse, message, upsErr.StatusCode, nil)
		default:
			return NewError(ErrCodeUpstreamResponse, message, StatusBadGateway, nil)
		}
	}

	// Lỗi transport (không có response): connection refused, timeout, DNS...
	return NewError(ErrCodeUpstreamConnection, ErrUpstreamDown.Error(), StatusServiceUnavailable, err)
}
