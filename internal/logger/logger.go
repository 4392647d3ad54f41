package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	appLogger   *logrus.Logger
	errorLogger *logrus.Logger
	appHook     *AsyncHook
	errorHook   *AsyncHook
	initOnce    sync.Once
)

// Init khởi tạo hệ thống logging cho toàn bộ ứng dụng.
// Nếu cfg là nil, cấu hình sẽ được đọc từ environment variables (DefaultConfig).
// Gọi nhiều lần chỉ khởi tạo một lần.
func Init(cfg *LogConfig) error {
	var initErr error
	initOnce.Do(func() {
		if cfg == nil {
			cfg = DefaultConfig()
		}
		initErr = setup(cfg)
	})
	return initErr
}

// setup dựng các logger theo cấu hình
func setup(cfg *LogConfig) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}

	appLogger = logrus.New()
	appLogger.SetLevel(level)
	appLogger.SetFormatter(newFormatter(cfg.Format))
	// Output chính ghi qua AsyncHook, discard output mặc định để tránh ghi đôi
	appLogger.SetOutput(io.Discard)

	errorLogger = logrus.New()
	errorLogger.SetLevel(logrus.ErrorLevel)
	errorLogger.SetFormatter(newFormatter(cfg.Format))
	errorLogger.SetOutput(io.Discard)

	// Writers cho app log theo cấu hình output
	appWriters, err := buildWriters(cfg, cfg.AppFile)
	if err != nil {
		return err
	}
	errorWriters, err := buildWriters(cfg, cfg.ErrorFile)
	if err != nil {
		return err
	}

	// Filter hook chạy trước để đánh dấu entry bị lọc
	filterHook := NewFilterHook(cfg)
	appLogger.AddHook(filterHook)

	// Async hook ghi log không blocking request handling
	appHook = NewAsyncHookWithWriters(appWriters, 1000)
	appLogger.AddHook(appHook)

	errorHook = NewAsyncHookWithWriters(errorWriters, 1000)
	errorLogger.AddHook(errorHook)

	return nil
}

// newFormatter trả về formatter theo định dạng cấu hình
func newFormatter(format string) logrus.Formatter {
	if format == "json" {
		return &logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		}
	}
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	}
}

// buildWriters dựng danh sách writers (stdout, file, both) cho một file log
func buildWriters(cfg *LogConfig, fileName string) ([]io.Writer, error) {
	var writers []io.Writer

	if cfg.Output == "stdout" || cfg.Output == "both" {
		writers = append(writers, os.Stdout)
	}

	if cfg.Output == "file" || cfg.Output == "both" {
		if err := os.MkdirAll(cfg.LogPath, 0o755); err != nil {
			return nil, fmt.Errorf("không thể tạo thư mục log %s: %w", cfg.LogPath, err)
		}
		fileWriter := &lumberjack.Logger{
			Filename:   filepath.Join(cfg.LogPath, fileName),
			MaxSize:    cfg.MaxSize,    // MB
			MaxBackups: cfg.MaxBackups, // Số file cũ giữ lại
			Compress:   cfg.Compress,   // Nén file cũ
		}
		writers = append(writers, fileWriter)
	}

	if len(writers) == 0 {
		writers = append(writers, os.Stdout)
	}

	return writers, nil
}

// GetAppLogger trả về logger chính của ứng dụng.
// Nếu chưa Init, trả về một logger mặc định ghi ra stdout (dùng trong tests).
func GetAppLogger() *logrus.Logger {
	if appLogger == nil {
		fallback := logrus.New()
		fallback.SetOutput(os.Stdout)
		return fallback
	}
	return appLogger
}

// GetErrorLogger trả về logger riêng cho error (ghi vào error.log)
func GetErrorLogger() *logrus.Logger {
	if errorLogger == nil {
		return GetAppLogger()
	}
	return errorLogger
}

// Close đóng các async hook, flush hết log còn trong buffer.
// Gọi khi shutdown server.
func Close() {
	if appHook != nil {
		appHook.Close()
	}
	if errorHook != nil {
		errorHook.Close()
	}
}
