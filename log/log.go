/*
package log
log.go
// Copyright 2025 马晓璐 <15940995655@13..com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.
基于 zap 的日志门面：全局日志器由 Init 按 Options 构建，包级函数直接转发。
普通日志（Error 以下）写 OutputPaths，错误日志写 ErrorOutputPaths。
*/
package log

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	logger *zap.Logger
	sugar  *zap.SugaredLogger
)

// nolint: gochecknoinits // need to init a default logger
func init() {
	Init(NewOptions())
}

// Init 按配置重建全局日志器。配置无效时 panic，调用方应先执行 Validate。
func Init(opts *Options) {
	l := New(opts)

	mu.Lock()
	logger = l
	sugar = l.Sugar()
	mu.Unlock()
}

// New 按配置构建一个独立的 zap.Logger
func New(opts *Options) *zap.Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stack",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     timeEncoder,
		EncodeDuration: milliSecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(opts.Level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	var encoder zapcore.Encoder
	switch strings.ToLower(opts.Format) {
	case consoleFormat:
		if opts.EnableColor {
			encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case jsonFormat:
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		panic(fmt.Sprintf("unsupported log format: %s (console or json)", opts.Format))
	}

	out, _, err := zap.Open(opts.OutputPaths...)
	if err != nil {
		panic(fmt.Sprintf("open log output paths: %v", err))
	}
	errOut, _, err := zap.Open(opts.ErrorOutputPaths...)
	if err != nil {
		panic(fmt.Sprintf("open log error output paths: %v", err))
	}

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, out, zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return lvl < zapcore.ErrorLevel && lvl >= zapLevel
		})),
		zapcore.NewCore(encoder, errOut, zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return lvl >= zapcore.ErrorLevel && lvl >= zapLevel
		})),
	)

	zopts := []zap.Option{zap.AddStacktrace(zapcore.PanicLevel), zap.AddCallerSkip(1)}
	if opts.EnableCaller {
		zopts = append(zopts, zap.AddCaller())
	}
	return zap.New(core, zopts...)
}

func current() (*zap.Logger, *zap.SugaredLogger) {
	mu.RLock()
	defer mu.RUnlock()
	return logger, sugar
}

// ZapLogger 返回全局 zap.Logger
func ZapLogger() *zap.Logger {
	l, _ := current()
	return l
}

// WithName 返回带名称的子日志器
func WithName(name string) *zap.SugaredLogger {
	_, s := current()
	return s.Named(name)
}

// Enabled 判断指定级别是否会输出
func Enabled(lvl Level) bool {
	l, _ := current()
	return l.Core().Enabled(lvl)
}

// Flush 刷新缓冲，程序退出前调用
func Flush() {
	l, _ := current()
	_ = l.Sync()
}

func Debug(msg string, fields ...Field) {
	l, _ := current()
	l.Debug(msg, fields...)
}

func Debugf(format string, v ...interface{}) {
	_, s := current()
	s.Debugf(format, v...)
}

func Debugw(msg string, keysAndValues ...interface{}) {
	_, s := current()
	s.Debugw(msg, keysAndValues...)
}

func Info(msg string, fields ...Field) {
	l, _ := current()
	l.Info(msg, fields...)
}

func Infof(format string, v ...interface{}) {
	_, s := current()
	s.Infof(format, v...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	_, s := current()
	s.Infow(msg, keysAndValues...)
}

func Warn(msg string, fields ...Field) {
	l, _ := current()
	l.Warn(msg, fields...)
}

func Warnf(format string, v ...interface{}) {
	_, s := current()
	s.Warnf(format, v...)
}

func Warnw(msg string, keysAndValues ...interface{}) {
	_, s := current()
	s.Warnw(msg, keysAndValues...)
}

func Error(msg string, fields ...Field) {
	l, _ := current()
	l.Error(msg, fields...)
}

func Errorf(format string, v ...interface{}) {
	_, s := current()
	s.Errorf(format, v...)
}

func Errorw(msg string, keysAndValues ...interface{}) {
	_, s := current()
	s.Errorw(msg, keysAndValues...)
}

func Fatalf(format string, v ...interface{}) {
	_, s := current()
	s.Fatalf(format, v...)
}
