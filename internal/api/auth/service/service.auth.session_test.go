// Package authsvc - Test vòng đời JWT session của dashboard.
package authsvc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sweet_admin/internal/common"
)

func newTestSessionService(expire time.Duration) *SessionService {
	return &SessionService{
		secret: []byte("test-secret"),
		expire: expire,
	}
}

func TestSession_CreateAndParse(t *testing.T) {
	service := newTestSessionService(time.Hour)

	token, err := service.CreateSession("upstream-bearer", "u1", "Nguyễn Văn A", "0399999999", "Quản lý")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ParseSession(token)
	require.NoError(t, err)

	assert.Equal(t, "upstream-bearer", claims.UpstreamToken, "session phải nhúng bearer token của admin API")
	assert.Equal(t, "u1", claims.StaffID)
	assert.Equal(t, "Nguyễn Văn A", claims.StaffName)
	assert.Equal(t, "0399999999", claims.Phone)
	assert.Equal(t, "Quản lý", claims.RoleName)
}

func TestSession_CreateRequiresUpstreamToken(t *testing.T) {
	service := newTestSessionService(time.Hour)

	_, err := service.CreateSession("", "u1", "A", "0399999999", "Quản lý")
	assert.Error(t, err, "không có token upstream thì không tạo được session")
}

func TestSession_ParseExpired(t *testing.T) {
	service := newTestSessionService(-time.Minute)

	token, err := service.CreateSession("upstream-bearer", "u1", "A", "0399999999", "Quản lý")
	require.NoError(t, err)

	_, err = service.ParseSession(token)
	assert.ErrorIs(t, err, common.ErrSessionExpired)
}

func TestSession_ParseInvalid(t *testing.T) {
	service := newTestSessionService(time.Hour)

	_, err := service.ParseSession("not-a-jwt")
	assert.ErrorIs(t, err, common.ErrTokenInvalid)

	_, err = service.ParseSession("")
	assert.ErrorIs(t, err, common.ErrTokenMissing)
}

func TestSession_ParseWrongSecret(t *testing.T) {
	service := newTestSessionService(time.Hour)
	token, err := service.CreateSession("upstream-bearer", "u1", "A", "0399999999", "Quản lý")
	require.NoError(t, err)

	other := &SessionService{secret: []byte("different-secret"), expire: time.Hour}
	_, err = other.ParseSession(token)
	assert.ErrorIs(t, err, common.ErrTokenInvalid, "token ký bằng secret khác phải bị từ chối")
}
