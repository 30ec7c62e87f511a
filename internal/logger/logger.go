package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

type AppLogger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) AppLogger
}

type appLogger struct {
	logger *slog.Logger
}

func NewAppLogger(logger *slog.Logger) AppLogger {
	return &appLogger{
		logger: logger,
	}
}

// NewTextAppLoggerは、指定レベル以上を出力するテキスト形式のロガーを生成します。
func NewTextAppLogger(w io.Writer, level string) (AppLogger, error) {
	lv, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lv})
	return NewAppLogger(slog.New(handler)), nil
}

// NewNopLoggerは、何も出力しないロガーを返します。
func NewNopLogger() AppLogger {
	return NewAppLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("未知のログレベルです: %s", level)
	}
}

func (l *appLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *appLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *appLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *appLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

func (l *appLogger) With(args ...any) AppLogger {
	return &appLogger{logger: l.logger.With(args...)}
}
