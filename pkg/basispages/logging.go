// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package basispages

import "go.uber.org/zap"

var logger = zap.NewNop().Sugar()

// SetLogger routes package logging to l. A nil logger silences it.
func SetLogger(l *zap.Logger) {
	if l == nil {
		logger = zap.NewNop().Sugar()
		return
	}
	logger = l.Sugar()
}

// logf writes a debug trace line.
func logf(format string, args ...any) {
	logger.Debugf(format, args...)
}
