// Copyright 2020 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package logger

import (
	"os"

	"github.com/juju/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// InitGlobalLogger initializes zap global logger. Logs go to stderr and,
// when file is not empty, to a rotated log file as well.
func InitGlobalLogger(level, file string) (*zap.Logger, error) {
	logger, err := New(level, file)
	if err != nil {
		return nil, errors.Trace(err)
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

// New builds a logger without touching the global one
func New(level, file string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Annotatef(err, "log level %q", level)
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), lvl),
	}
	if file != "" {
		cores = append(cores, zapcore.NewCore(encoder, getLogWriter(file), lvl))
	}
	return zap.New(zapcore.NewTee(cores...)), nil
}

func getLogWriter(file string) zapcore.WriteSyncer {
	lumberJackLogger := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    100,
		MaxBackups: 3,
	}
	return zapcore.AddSync(lumberJackLogger)
}
