// Package models - model nhân viên (User) thuộc domain auth.
package models

// User định nghĩa mô hình nhân viên trên admin API.
// Password không bao giờ được trả về cho client của dashboard.
type User struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	RoleID    string `json:"roleId,omitempty"`
	RoleName  string `json:"roleName,omitempty"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// LoginResult kết quả đăng nhập từ admin API: bearer token kèm thông tin nhân viên
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
