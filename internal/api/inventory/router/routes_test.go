// Package router - Test route nhập kho qua gateway: snapshot trả về sau mỗi
// sự kiện phải mang trạng thái ô hạn sử dụng từng dòng.
package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sweet_admin/config"
	authsvc "sweet_admin/internal/api/auth/service"
	"sweet_admin/internal/api/middleware"
	apirouter "sweet_admin/internal/api/router"
	"sweet_admin/internal/apiclient"
	"sweet_admin/internal/global"
	"sweet_admin/internal/querycache"
)

// fakeInventoryAPI admin API giả lập, chỉ cần xác thực token vì các sự kiện
// thao tác dòng không gọi upstream
func fakeInventoryAPI() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer upstream-token" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message": "unauthorized"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": []}`))
	})
}

func setupInventoryGateway(t *testing.T, upstreamURL string) (*fiber.App, string) {
	t.Helper()

	global.InitValidator()
	global.ServerConfig = &config.Configuration{
		JwtSecret:          "test-secret",
		SessionExpireHours: 1,
	}

	client, err := apiclient.NewClient(upstreamURL, 5*time.Second)
	require.NoError(t, err)
	global.APIClient = client

	global.QueryCache = querycache.NewCache(time.Minute, time.Minute)
	t.Cleanup(global.QueryCache.Stop)

	app := fiber.New()
	dashboard := app.Group("/dashboard")
	auth := app.Group("/auth")
	r := apirouter.NewRouter(app)
	require.NoError(t, Register(dashboard, auth, r))

	sessionService, err := authsvc.NewSessionService()
	require.NoError(t, err)
	session, err := sessionService.CreateSession("upstream-token", "u1", "Nguyễn Văn A", "0399999999", "Quản lý")
	require.NoError(t, err)

	return app, session
}

func TestImportFormEvent_SnapshotCarriesExpiryState(t *testing.T) {
	server := httptest.NewServer(fakeInventoryAPI())
	defer server.Close()

	app, session := setupInventoryGateway(t, server.URL)

	payload, err := json.Marshal(map[string]interface{}{
		"form": map[string]interface{}{
			"rows":         []interface{}{},
			"openDropdown": -1,
		},
		"event": "add_row",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/dashboard/inventory-import/event", bytes.NewReader(payload))
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: session})

	resp, err := app.Test(req, fiber.TestConfig{Timeout: 5 * time.Second})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Equal(t, "success", envelope["status"])

	data, ok := envelope["data"].(map[string]interface{})
	require.True(t, ok)

	rows, ok := data["rows"].([]interface{})
	require.True(t, ok)
	require.Len(t, rows, 2, "form rỗng được khởi tạo một dòng, add_row thêm dòng thứ hai")

	expiryInputs, ok := data["expiryInputs"].([]interface{})
	require.True(t, ok, "snapshot phải mang trạng thái ô hạn sử dụng từng dòng")
	require.Len(t, expiryInputs, 2, "mỗi dòng có một trạng thái ô hạn sử dụng")

	for i, raw := range expiryInputs {
		input, ok := raw.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, true, input["disabled"], "dòng %d chưa chọn sản phẩm nên ô hạn bị khóa", i)
		reason, _ := input["reason"].(string)
		assert.NotEmpty(t, reason, "ô bị khóa phải kèm lý do cho tooltip")
	}
}
