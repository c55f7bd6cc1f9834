// Copyright (c) 2025 The txtobf Authors
// released under the MIT license

package logger

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents the level to log messages at.
type Level int

const (
	// LogDebug represents debug messages.
	LogDebug Level = iota
	// LogInfo represents informational messages.
	LogInfo
	// LogWarning represents warnings.
	LogWarning
	// LogError represents errors.
	LogError
)

// LogLevelNames takes a config name and gives the real log level.
var LogLevelNames = map[string]Level{
	"debug":    LogDebug,
	"info":     LogInfo,
	"warn":     LogWarning,
	"warning":  LogWarning,
	"warnings": LogWarning,
	"error":    LogError,
	"errors":   LogError,
}

func (level Level) String() string {
	switch level {
	case LogDebug:
		return "debug"
	case LogInfo:
		return "info"
	case LogWarning:
		return "warn"
	case LogError:
		return "error"
	}
	return "unknown"
}

// Log categories in use.
const (
	TypeCLI      = "cli"
	TypeLedger   = "ledger"
	TypePipeline = "pipeline"
	TypeTables   = "tables"
)

// LoggingConfig represents the configuration of a single logger.
type LoggingConfig struct {
	Method        string
	MethodStdout  bool
	MethodStderr  bool
	MethodFile    bool
	Filename      string
	TypeString    string   `yaml:"type"`
	Types         []string `yaml:"real-types"`
	ExcludedTypes []string `yaml:"real-excluded-types"`
	LevelString   string   `yaml:"level"`
	Level         Level    `yaml:"level-real"`
}

// output is one configured destination: which streams it writes to and
// which messages it accepts.
type output struct {
	stdout   bool
	stderr   bool
	file     *os.File
	buffered *bufio.Writer
	level    Level
	types    map[string]bool
	excluded map[string]bool
}

func (o *output) accepts(level Level, logType string) bool {
	if level < o.level {
		return false
	}
	if o.excluded["*"] || o.excluded[logType] {
		return false
	}
	return o.types["*"] || o.types[logType]
}

func (o *output) close() (err error) {
	if o.file == nil {
		return nil
	}
	err = o.buffered.Flush()
	if closeErr := o.file.Close(); err == nil {
		err = closeErr
	}
	return
}

func toSet(names []string) map[string]bool {
	result := make(map[string]bool, len(names))
	for _, name := range names {
		result[name] = true
	}
	return result
}

// Manager is the main interface used to log debug/info/error messages.
type Manager struct {
	configMutex sync.RWMutex
	writeLock   sync.Mutex // shared by every stream
	outputs     []output
	stdout      io.Writer
	stderr      io.Writer
}

// NewManager returns a new log manager writing to the process's stdout and
// stderr.
func NewManager(config []LoggingConfig) (*Manager, error) {
	return NewManagerWithWriters(config, os.Stdout, os.Stderr)
}

// NewManagerWithWriters is like NewManager, but the "stdout" and "stderr"
// methods write to the given writers instead.
func NewManagerWithWriters(config []LoggingConfig, stdout, stderr io.Writer) (*Manager, error) {
	manager := &Manager{
		stdout: stdout,
		stderr: stderr,
	}
	if err := manager.ApplyConfig(config); err != nil {
		return nil, err
	}
	return manager, nil
}

// ApplyConfig replaces the manager's outputs, closing any log files opened
// by the previous config. A file that can't be opened is skipped and
// reported after the rest of the config is applied.
func (manager *Manager) ApplyConfig(config []LoggingConfig) (err error) {
	manager.configMutex.Lock()
	defer manager.configMutex.Unlock()

	manager.closeOutputs()
	for _, logConfig := range config {
		out := output{
			stdout:   logConfig.MethodStdout,
			stderr:   logConfig.MethodStderr,
			level:    logConfig.Level,
			types:    toSet(logConfig.Types),
			excluded: toSet(logConfig.ExcludedTypes),
		}
		if logConfig.MethodFile {
			file, openErr := os.OpenFile(logConfig.Filename, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)
			if openErr != nil {
				err = fmt.Errorf("Could not open log file %s [%s]", logConfig.Filename, openErr.Error())
			} else {
				out.file = file
				out.buffered = bufio.NewWriter(file)
			}
		}
		manager.outputs = append(manager.outputs, out)
	}
	return
}

func (manager *Manager) closeOutputs() (err error) {
	for i := range manager.outputs {
		if closeErr := manager.outputs[i].close(); closeErr != nil {
			err = closeErr
		}
	}
	manager.outputs = nil
	return
}

// Close flushes and closes any log files.
func (manager *Manager) Close() error {
	manager.configMutex.Lock()
	defer manager.configMutex.Unlock()
	return manager.closeOutputs()
}

// Log logs the given message with the given details.
func (manager *Manager) Log(level Level, logType string, messageParts ...string) {
	manager.configMutex.RLock()
	defer manager.configMutex.RUnlock()

	var line []byte
	for i := range manager.outputs {
		out := &manager.outputs[i]
		if !out.accepts(level, logType) {
			continue
		}
		if line == nil {
			line = formatLine(level, logType, messageParts)
		}

		manager.writeLock.Lock()
		if out.stdout {
			manager.stdout.Write(line)
		}
		if out.stderr {
			manager.stderr.Write(line)
		}
		if out.file != nil {
			out.buffered.Write(line)
			out.buffered.Flush()
		}
		manager.writeLock.Unlock()
	}
}

func formatLine(level Level, logType string, messageParts []string) []byte {
	var buf bytes.Buffer
	// 8 is len("pipeline"), the longest category name
	fmt.Fprintf(&buf, "%s : %-5s : %-8s : ", time.Now().UTC().Format("2006-01-02T15:04:05.000Z"), level, logType)
	buf.WriteString(strings.Join(messageParts, " : "))
	buf.WriteByte('\n')
	return buf.Bytes()
}

// Debug logs the given message as a debug message.
func (manager *Manager) Debug(logType string, messageParts ...string) {
	manager.Log(LogDebug, logType, messageParts...)
}

// Info logs the given message as an info message.
func (manager *Manager) Info(logType string, messageParts ...string) {
	manager.Log(LogInfo, logType, messageParts...)
}

// Warning logs the given message as a warning message.
func (manager *Manager) Warning(logType string, messageParts ...string) {
	manager.Log(LogWarning, logType, messageParts...)
}

// Error logs the given message as an error message.
func (manager *Manager) Error(logType string, messageParts ...string) {
	manager.Log(LogError, logType, messageParts...)
}
