// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sat20-labs/lyokocore/blockchain"
	"github.com/sat20-labs/lyokocore/chaincfg"
	"github.com/sat20-labs/lyokocore/consensus"
	"github.com/sat20-labs/lyokocore/txscript"
	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)
	log.SetFormatter(&customTextFormatter{})
	return log
}

// getLoggerEntry returns a logger tagged with the subsystem name.
func getLoggerEntry(module string) *logrus.Entry {
	return logger.WithField("module", module)
}

// customTextFormatter writes one line per entry with the time, level and
// subsystem.
type customTextFormatter struct{}

func (f *customTextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer

	timestamp := entry.Time.Format("2006-01-02 15:04:05")
	b.WriteString(fmt.Sprintf("%s ", timestamp))
	b.WriteString(fmt.Sprintf("[%s] ", entry.Level.String()))
	moduleName, ok := entry.Data["module"].(string)
	if !ok {
		moduleName = "default"
	}
	b.WriteString(fmt.Sprintf("%s: ", moduleName))
	b.WriteString(entry.Message)
	b.WriteByte('\n')

	return b.Bytes(), nil
}

// Loggers per subsystem.  A single backend logger is created and all subsystem
// loggers created from it will write to the backend.  When adding new
// subsystems, add the subsystem logger variable here and to the
// subsystemLoggers map.
//
// Output goes to standard output only until initLogRotator is called with a
// log file.
var (
	cfgLog  = getLoggerEntry("CFG")
	chanLog = getLoggerEntry("CHAN")
	consLog = getLoggerEntry("CONS")
	minrLog = getLoggerEntry("MINR")
	scrpLog = getLoggerEntry("SCRP")
)

// Initialize package-global logger variables.
func init() {
	chaincfg.UseLogger(cfgLog)
	blockchain.UseLogger(chanLog)
	consensus.UseLogger(consLog)
	txscript.UseLogger(scrpLog)
}

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]*logrus.Entry{
	"CFG":  cfgLog,
	"CHAN": chanLog,
	"CONS": consLog,
	"MINR": minrLog,
	"SCRP": scrpLog,
}

// initLogRotator initializes the logging rotater to write logs to logFile and
// create roll files in the same directory.  It must be called before the
// package-global log rotater variables are used.
func initLogRotator(logFile string) error {
	logDir, file := filepath.Split(logFile)
	err := os.MkdirAll(logDir, 0700)
	if err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	fileHook, err := rotatelogs.New(
		filepath.Join(logDir, file+".%Y%m%d%H%M.log"),
		rotatelogs.WithLinkName(filepath.Join(logDir, file+".log")),
		rotatelogs.WithMaxAge(30*24*time.Hour),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %w", err)
	}
	logger.SetOutput(io.MultiWriter(os.Stdout, fileHook))
	return nil
}

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	_, err := logrus.ParseLevel(logLevel)
	return err == nil
}

// setLogLevels sets the log level of the backend, which all subsystem
// loggers share, to the passed level.
func setLogLevels(logLevel string) {
	// Defaults to info if the log level is invalid.
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
}

// supportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func supportedSubsystems() []string {
	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsysID := range subsystemLoggers {
		subsystems = append(subsystems, subsysID)
	}
	sort.Strings(subsystems)
	return subsystems
}
