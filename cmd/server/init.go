package main

import (
	"time"

	"github.com/sirupsen/logrus"

	"sweet_admin/config"
	"sweet_admin/internal/apiclient"
	"sweet_admin/internal/global"
	"sweet_admin/internal/querycache"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initValidator()  // Khởi tạo validator
	initConfig()     // Khởi tạo cấu hình server
	initAPIClient()  // Khởi tạo client gọi admin API
	initQueryCache() // Khởi tạo query cache
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: vn_phone, no_xss, strong_password)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo client gọi tới admin API
// Origin được chuẩn hóa để luôn kết thúc bằng /api/v1
func initAPIClient() {
	cfg := global.ServerConfig
	timeout := time.Duration(cfg.UpstreamTimeoutSec) * time.Second

	client, err := apiclient.NewClient(cfg.UpstreamAPIOrigin, timeout)
	if err != nil {
		logrus.Fatalf("Failed to create API client: %v", err)
	}
	global.APIClient = client

	logrus.WithFields(logrus.Fields{
		"baseURL": client.BaseURL(),
		"timeout": timeout.String(),
	}).Info("Initialized upstream API client")
}

// Hàm khởi tạo query cache dùng chung cho các màn hình danh sách
func initQueryCache() {
	cfg := global.ServerConfig
	ttl := time.Duration(cfg.CacheTTLSec) * time.Second
	cleanup := time.Duration(cfg.CacheCleanupSec) * time.Second

	global.QueryCache = querycache.NewCache(ttl, cleanup)

	logrus.WithFields(logrus.Fields{
		"ttl":     ttl.String(),
		"cleanup": cleanup.String(),
	}).Info("Initialized query cache")
}
