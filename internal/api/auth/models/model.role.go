// Package models - Role thuộc domain auth.
package models

// Role vai trò của nhân viên trên admin API.
type Role struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Describe    string   `json:"describe,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}
