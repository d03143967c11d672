// Copyright 2025 go-cpulab Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the shared logger. It writes text to stderr at info level until
// Configure is called.
var Logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// Configure sets the level ("debug", "info", "warn", "error") and the format
// ("text" or "json"). Unknown levels fall back to info.
func Configure(level, format string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Logger.SetLevel(lvl)

	if format == "json" {
		Logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// SetOutput redirects the logger.
func SetOutput(w io.Writer) {
	Logger.SetOutput(w)
}

// WithFields creates a new entry with the given fields.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return Logger.WithFields(fields)
}

// WithField creates a new entry with a single field.
func WithField(key string, value any) *logrus.Entry {
	return Logger.WithField(key, value)
}

// WithError creates a new entry with an error field.
func WithError(err error) *logrus.Entry {
	return Logger.WithError(err)
}

// Debugf logs at debug level. It replaces the lab's compile-time debug print
// switch: raise the level to silence it.
func Debugf(format string, args ...any) {
	Logger.Debugf(format, args...)
}
