package log

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// FileLogger ghi log vào file thay vì console
type FileLogger struct {
	logger *log.Logger
	file   *os.File
	mu     sync.Mutex
}

func NewFileLogger(path string) (*FileLogger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	return &FileLogger{
		logger: log.New(file, "", log.LstdFlags),
		file:   file,
	}, nil
}

func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

func (l *FileLogger) write(level string, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.Printf(level+" "+format, args...)
}

func (l *FileLogger) Info(ctx context.Context, format string, args ...interface{}) {
	l.write("[INFO]", format, args...)
}

func (l *FileLogger) Alert(ctx context.Context, format string, args ...interface{}) {
	l.write("[ALERT]", format, args...)
}

func (l *FileLogger) Error(ctx context.Context, format string, args ...interface{}) {
	l.write("[ERROR]", format, args...)
}

func (l *FileLogger) Warn(ctx context.Context, format string, args ...interface{}) {
	l.write("[WARN]", format, args...)
}

func (l *FileLogger) Debug(ctx context.Context, format string, args ...interface{}) {
	l.write("[DEBUG]", format, args...)
}

func (l *FileLogger) Critical(ctx context.Context, format string, args ...interface{}) {
	l.write("[CRITICAL]", format, args...)
}

func (l *FileLogger) Emergency(ctx context.Context, format string, args ...interface{}) {
	l.write("[EMERGENCY]", format, args...)
}

func (l *FileLogger) Notice(ctx context.Context, format string, args ...interface{}) {
	l.write("[NOTICE]", format, args...)
}
