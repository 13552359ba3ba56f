package logger

import (
	"log/slog"
	"os"
)

var base = slog.New(slog.NewJSONHandler(os.Stdout, nil))

func Init() {
	slog.SetDefault(base)
	base.Info("logger initialized")
}

func Info(msg string, fields map[string]any) {
	base.Info(msg, args(fields)...)
}

func Warn(msg string, fields map[string]any) {
	base.Warn(msg, args(fields)...)
}

func Error(msg string, fields map[string]any) {
	base.Error(msg, args(fields)...)
}

func Fatal(msg string, fields map[string]any) {
	base.Error(msg, args(fields)...)
	os.Exit(1)
}

func args(fields map[string]any) []any {
	out := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		out = append(out, k, v)
	}
	return out
}
