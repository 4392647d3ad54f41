// Package apiclient cung cấp HTTP client gọi tới admin API phía trên (upstream).
// Mọi truy cập dữ liệu của dashboard đều đi qua package này: client cơ sở lo
// chuẩn hóa base URL, gắn bearer token, mã hóa/giải mã JSON và chuyển lỗi HTTP
// thành lỗi có mã của hệ thống.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sweet_admin/internal/common"
	"sweet_admin/internal/logger"
)

// apiPrefix là tiền tố bắt buộc của mọi endpoint trên admin API
const apiPrefix = "/api/v1"

// Client là HTTP client cơ sở gọi tới admin API
type Client struct {
	baseURL    string       // Base URL đã chuẩn hóa, luôn kết thúc bằng /api/v1
	httpClient *http.Client // HTTP client dùng chung, có timeout
}

// NewClient tạo client mới từ origin của admin API.
// Origin có thể có hoặc không có sẵn hậu tố /api/v1, client tự chuẩn hóa.
func NewClient(origin string, timeout time.Duration) (*Client, error) {
	baseURL, err := NormalizeBaseURL(origin)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// NormalizeBaseURL chuẩn hóa origin thành base URL kết thúc bằng /api/v1.
// Chấp nhận origin trần ("http://host:5000"), origin có sẵn hậu tố
// ("http://host:5000/api/v1") hoặc có dấu "/" thừa ở cuối.
func NormalizeBaseURL(origin string) (string, error) {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		return "", fmt.Errorf("upstream origin is empty: %w", common.ErrRequiredField)
	}

	parsed, err := url.Parse(origin)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("invalid upstream origin %q: %w", origin, common.ErrInvalidFormat)
	}

	trimmed := strings.TrimRight(origin, "/")
	if strings.HasSuffix(trimmed, apiPrefix) {
		return trimmed, nil
	}
	return trimmed + apiPrefix, nil
}

// BaseURL trả về base URL đã chuẩn hóa
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do thực hiện một request tới admin API.
// path là đường dẫn tương đối sau /api/v1 (ví dụ "/products").
// token rỗng thì không gắn header Authorization.
// body khác nil sẽ được mã hóa JSON; out khác nil sẽ nhận JSON response body.
func (c *Client) Do(ctx context.Context, method string, path string, query url.Values, token string, body interface{}, out interface{}) error {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.WithModule("apiclient").WithError(err).Warnf("Request %s %s thất bại", method, path)
		if errors.Is(err, context.DeadlineExceeded) {
			return common.ErrUpstreamTimeout
		}
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return common.ErrUpstreamTimeout
		}
		return common.ErrUpstreamDown
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &common.UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    extractUpstreamMessage(respBody),
			Body:       respBody,
		}
	}

	if out != nil && len(respBody) > 0 {
		decoder := json.NewDecoder(bytes.NewReader(respBody))
		decoder.UseNumber()
		if err := decoder.Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", common.NewError(common.ErrCodeUpstreamResponse, "Dữ liệu trả về không hợp lệ", http.StatusBadGateway, err.Error()))
		}
	}

	return nil
}

// Get thực hiện GET request
func (c *Client) Get(ctx context.Context, path string, query url.Values, token string, out interface{}) error {
	return c.Do(ctx, http.MethodGet, path, query, token, nil, out)
}

// Post thực hiện POST request
func (c *Client) Post(ctx context.Context, path string, token string, body interface{}, out interface{}) error {
	return c.Do(ctx, http.MethodPost, path, nil, token, body, out)
}

// Put thực hiện PUT request
func (c *Client) Put(ctx context.Context, path string, token string, body interface{}, out interface{}) error {
	return c.Do(ctx, http.MethodPut, path, nil, token, body, out)
}

// Delete thực hiện DELETE request
func (c *Client) Delete(ctx context.Context, path string, token string, out interface{}) error {
	return c.Do(ctx, http.MethodDelete, path, nil, token, nil, out)
}

// extractUpstreamMessage lấy message từ body lỗi của admin API.
// Body lỗi có thể là {"message": "..."} hoặc {"error": "..."} hoặc không phải JSON.
func extractUpstreamMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	trimmed := strings.TrimSpace(string(body))
	if len(trimmed) > 200 {
		trimmed = trimmed[:200]
	}
	return trimmed
}
