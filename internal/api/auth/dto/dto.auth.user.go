package authdto

// LoginInput đầu vào đăng nhập bằng số điện thoại và mật khẩu.
type LoginInput struct {
	Phone    string `json:"phone" validate:"required,vn_phone"`
	Password string `json:"password" validate:"required"`
}

// UserCreateInput đầu vào tạo nhân viên (CRUD).
type UserCreateInput struct {
	Name     string `json:"name" validate:"required,no_xss" maxLength:"100"`
	Phone    string `json:"phone" validate:"required,vn_phone"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,strong_password"`
	RoleID   string `json:"roleId" validate:"required"`
}

// UserUpdateInput đầu vào cập nhật thông tin nhân viên.
type UserUpdateInput struct {
	Name   string `json:"name,omitempty" maxLength:"100"`
	Email  string `json:"email,omitempty" validate:"omitempty,email"`
	RoleID string `json:"roleId,omitempty"`
	Active *bool  `json:"active,omitempty"`
}

// RoleCreateInput đầu vào tạo vai trò.
type RoleCreateInput struct {
	Name        string   `json:"name" validate:"required,no_xss" maxLength:"100"`
	Describe    string   `json:"describe,omitempty" validate:"omitempty,no_xss"`
	Permissions []string `json:"permissions,omitempty"`
}

// RoleUpdateInput đầu vào cập nhật vai trò.
type RoleUpdateInput struct {
	Name        string   `json:"name,omitempty" validate:"omitempty,no_xss" maxLength:"100"`
	Describe    string   `json:"describe,omitempty" validate:"omitempty,no_xss"`
	Permissions []string `json:"permissions,omitempty"`
}
