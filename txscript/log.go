// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2018 The Lyokocoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"io"

	"github.com/sirupsen/logrus"
)

// log is the script engine logger.  Nothing is logged until UseLogger is
// called; the engine only writes at trace level.
var log *logrus.Entry

func init() {
	DisableLog()
}

// DisableLog discards all script engine log output.
func DisableLog() {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	log = logger.WithField("", "")
}

// UseLogger routes script engine log output to logger.
func UseLogger(logger *logrus.Entry) {
	log = logger
}

// logClosure defers building an expensive trace message until the entry is
// formatted, which does not happen below trace level.
type logClosure func() string

func (c logClosure) String() string {
	return c()
}

func newLogClosure(c func() string) logClosure {
	return logClosure(c)
}
