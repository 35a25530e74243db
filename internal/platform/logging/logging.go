// Package logging はアプリケーション全体のslogロガーを設定します。
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// ParseLevel はLOG_LEVELの値をslog.Levelに変換します。不明な値はInfoになります。
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup はJSON形式のロガーを生成し、デフォルトロガーとして設定します。
func Setup(w io.Writer, level string) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
	slog.SetDefault(logger)
	return logger
}
