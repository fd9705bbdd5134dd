package logger

import (
	"log/slog"
	"os"
	"strings"
)

type Log struct {
	*slog.LevelVar
	*slog.Logger
}

// Logger 全局日志实例, 输出到 stderr, 不跟生成结果的回显混在一起
var Logger *Log

func init() {
	logLevel := &slog.LevelVar{}
	opts := &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "time" {
				return slog.Attr{Key: "timestamp", Value: slog.TimeValue(a.Value.Time())}
			}
			return a
		},
	}
	Logger = &Log{
		LevelVar: logLevel,
		Logger:   slog.New(slog.NewTextHandler(os.Stderr, opts)),
	}
	Logger.SetLogLevel("info")
}

func (l *Log) SetLogLevel(level string) {
	level = strings.ToLower(level)
	switch level {
	case "debug":
		l.Set(slog.LevelDebug)
	case "info":
		l.Set(slog.LevelInfo)
	case "warn":
		l.Set(slog.LevelWarn)
	case "error":
		l.Set(slog.LevelError)
	}
}

func (l *Log) Fatal(msg string, args ...any) {
	l.Error(msg, args...)
	os.Exit(1)
}
