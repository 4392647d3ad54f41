// Package router - Test route vai trò cho phép đầy đủ CRUD qua gateway,
// chạy trên admin API giả lập.
package router

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
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

// fakeRolesAPI là admin API giả lập giữ vai trò trong bộ nhớ
type fakeRolesAPI struct {
	mu     sync.Mutex
	roles  []map[string]interface{}
	nextID int
}

func (f *fakeRolesAPI) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer upstream-token" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message": "unauthorized"}`))
			return
		}

		f.mu.Lock()
		defer f.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/roles":
			json.NewEncoder(w).Encode(map[string]interface{}{"data": f.roles})
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/roles":
			body, _ := io.ReadAll(r.Body)
			var input map[string]interface{}
			json.Unmarshal(body, &input)

			f.nextID++
			input["id"] = strconv.Itoa(f.nextID)
			f.roles = append(f.roles, input)
			json.NewEncoder(w).Encode(map[string]interface{}{"data": input})
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message": "not found"}`))
		}
	})
}

func setupAuthGateway(t *testing.T, upstreamURL string) (*fiber.App, string) {
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

func TestRoleRoutes_CreateThenList(t *testing.T) {
	upstream := &fakeRolesAPI{}
	server := httptest.NewServer(upstream.handler())
	defer server.Close()

	app, session := setupAuthGateway(t, server.URL)

	// Tạo vai trò mới qua gateway: route ghi phải được đăng ký
	payload, err := json.Marshal(map[string]interface{}{
		"name":        "Thu ngân",
		"describe":    "Vai trò thu ngân ca sáng",
		"permissions": []string{"orders.read"},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/dashboard/roles/", bytes.NewReader(payload))
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: session})

	resp, err := app.Test(req, fiber.TestConfig{Timeout: 5 * time.Second})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, "POST /dashboard/roles phải được phục vụ, không phải 404/405")

	var result map[string]interface{}
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, "success", result["status"])

	// Vai trò vừa tạo phải xuất hiện trong danh sách
	listReq := httptest.NewRequest(http.MethodGet, "/dashboard/roles/", nil)
	listReq.Header.Set("Accept", "application/json")
	listReq.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: session})

	listResp, err := app.Test(listReq, fiber.TestConfig{Timeout: 5 * time.Second})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	var listResult map[string]interface{}
	listBody, _ := io.ReadAll(listResp.Body)
	require.NoError(t, json.Unmarshal(listBody, &listResult))

	data, ok := listResult["data"].(map[string]interface{})
	require.True(t, ok)
	items, ok := data["items"].([]interface{})
	require.True(t, ok)
	require.Len(t, items, 1)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "Thu ngân", first["name"], "vai trò vừa tạo phải xuất hiện trong danh sách")
}
