// Package authdto - Test các quy tắc validate trên đầu vào nhân viên và vai trò.
package authdto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sweet_admin/internal/global"
)

func TestUserCreateInput_MatKhauPhaiManh(t *testing.T) {
	global.InitValidator()

	input := UserCreateInput{
		Name:     "Nguyễn Văn A",
		Phone:    "0399999999",
		Password: "Matkhau9!",
		RoleID:   "r1",
	}
	assert.NoError(t, global.Validate.Struct(input))

	input.Password = "matkhau"
	assert.Error(t, global.Validate.Struct(input), "mật khẩu yếu phải bị từ chối ngay từ DTO")
}

func TestRoleCreateInput_ChanXSSTrongTruongVanBan(t *testing.T) {
	global.InitValidator()

	input := RoleCreateInput{
		Name:     "Thu ngân",
		Describe: "Vai trò thu ngân ca sáng",
	}
	assert.NoError(t, global.Validate.Struct(input))

	input.Name = "<script>alert(1)</script>"
	assert.Error(t, global.Validate.Struct(input), "tên chứa mã script phải bị từ chối")

	input.Name = "Thu ngân"
	input.Describe = `<img onerror="x">`
	assert.Error(t, global.Validate.Struct(input), "mô tả chứa mã script phải bị từ chối")
}
