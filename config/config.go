package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng
// Toàn bộ state nghiệp vụ nằm ở API quản trị phía server; gateway chỉ giữ
// cache tạm thời và session token, nên cấu hình không có thông tin database.
type Configuration struct {
	Address   string `env:"ADDRESS" envDefault:":8080"` // Địa chỉ server
	JwtSecret string `env:"JWT_SECRET,required"`        // Bí mật ký session JWT

	// Upstream API (API quản trị từ xa - nơi giữ toàn bộ business logic)
	UpstreamAPIOrigin     string `env:"UPSTREAM_API_ORIGIN,required"`        // Origin của API, sẽ được chuẩn hóa để luôn kết thúc bằng /api/v1
	UpstreamTimeoutSec    int    `env:"UPSTREAM_TIMEOUT" envDefault:"30"`    // Timeout gọi upstream (giây)
	CacheTTLSec           int    `env:"CACHE_TTL" envDefault:"60"`           // Thời gian sống của query cache (giây)
	CacheCleanupSec       int    `env:"CACHE_CLEANUP" envDefault:"120"`      // Chu kỳ dọn dẹp cache (giây)
	SessionExpireHours    int    `env:"SESSION_EXPIRE_HOURS" envDefault:"24"` // Thời gian sống của session JWT (giờ)

	// Asset store (object storage cho ảnh sản phẩm/avatar)
	AssetStoreOrigin string `env:"ASSET_STORE_ORIGIN,required"` // Origin của object store
	AssetStoreToken  string `env:"ASSET_STORE_TOKEN"`           // Token upload (optional, tùy store)

	// CORS
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials

	// Rate limit
	RateLimit_Max     int  `env:"RATE_LIMIT_MAX" envDefault:"100"`      // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window  int  `env:"RATE_LIMIT_WINDOW" envDefault:"60"`    // Thời gian window (giây)
	RateLimit_Enabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"` // Bật/tắt rate limiting

	// Frontend URL (màn hình login khi redirect)
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"` // URL frontend

	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Bật HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Đường dẫn đến file certificate (.crt hoặc .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Đường dẫn đến file private key (.key)
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Tìm thư mục config
	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			// Tìm thấy thư mục config/env
			envPath := filepath.Join(envDir, fmt.Sprintf("%s.env", env))
			return envPath
		}

		// Đi lên thư mục cha
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig sẽ đọc dữ liệu cấu hình từ file env được cung cấp
func NewConfig(files ...string) *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không tìm thấy thư mục config/env\n")
		return nil
	}

	err := godotenv.Load(envPath)
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	err = env.Parse(&cfg)
	if err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
