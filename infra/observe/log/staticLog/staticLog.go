// Package staticLog 进程级日志, 基于 logrus, 可选 lumberjack 滚动文件输出.
package staticLog

import (
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Level      string `yaml:"level"`
	JSON       bool   `yaml:"json"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"maxSizeMB"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
	Compress   bool   `yaml:"compress"`
	// Stderr 文件输出时是否同时写 stderr
	Stderr bool `yaml:"stderr"`
}

var current atomic.Pointer[logrus.Logger]

func init() {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	current.Store(l)
}

// Init replaces the process logger. Unknown levels fall back to info.
func Init(cfg Config) *logrus.Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(strings.TrimSpace(cfg.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if cfg.JSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	l.SetOutput(output(cfg))
	current.Store(l)
	return l
}

func output(cfg Config) io.Writer {
	if cfg.File == "" {
		return os.Stderr
	}
	rotate := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    orDefault(cfg.MaxSizeMB, 100),
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	if cfg.Stderr {
		return io.MultiWriter(rotate, os.Stderr)
	}
	return rotate
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func SetOutput(w io.Writer) { Logger().SetOutput(w) }

func Logger() *logrus.Logger { return current.Load() }

func WithFields(fields logrus.Fields) *logrus.Entry { return Logger().WithFields(fields) }

func Debugf(format string, args ...any) { Logger().Debugf(format, args...) }
func Infof(format string, args ...any)  { Logger().Infof(format, args...) }
func Warnf(format string, args ...any)  { Logger().Warnf(format, args...) }
func Errorf(format string, args ...any) { Logger().Errorf(format, args...) }
