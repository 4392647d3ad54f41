// Package models - Session token thuộc domain auth.
package models

import "github.com/dgrijalva/jwt-go"

// SessionClaims chứa data được mã hóa trong JWT session của dashboard.
// Bearer token của admin API được nhúng trong session để mỗi request
// tới upstream đều gắn đúng token của nhân viên đang đăng nhập.
type SessionClaims struct {
	UpstreamToken string `json:"upstreamToken"` // Bearer token của admin API
	StaffID       string `json:"staffId"`       // ID nhân viên trên admin API
	StaffName     string `json:"staffName"`     // Tên nhân viên
	Phone         string `json:"phone"`         // Số điện thoại đăng nhập
	RoleName      string `json:"roleName"`      // Tên vai trò
	jwt.StandardClaims
}
