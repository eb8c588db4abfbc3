// Package log provides the minimal logging facade used throughout the
// engine. Components never write to stdout/stderr directly; they hold a
// Logger and call it, so the orchestrator can silence or redirect all
// engine output by swapping the implementation at construction time.
package log

import "fmt"

// Logger is the logging interface every engine component is given at
// construction. It deliberately has no Fatal/Panic method: the engine
// never aborts the process on its own.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type stdLogger struct{}

// New returns a Logger that writes to stdout with a level prefix.
func New() Logger {
	return stdLogger{}
}

func (stdLogger) Infof(format string, args ...interface{}) {
	fmt.Printf("[INFO]\t"+format+"\n", args...)
}

func (stdLogger) Warnf(format string, args ...interface{}) {
	fmt.Printf("[WARN]\t"+format+"\n", args...)
}

func (stdLogger) Errorf(format string, args ...interface{}) {
	fmt.Printf("[ERROR]\t"+format+"\n", args...)
}

type nullLogger struct{}

// NewNull returns a Logger that discards everything, used by default in
// tests and library embeddings that don't want console output.
func NewNull() Logger {
	return nullLogger{}
}

func (nullLogger) Infof(string, ...interface{})  {}
func (nullLogger) Warnf(string, ...interface{})  {}
func (nullLogger) Errorf(string, ...interface{}) {}
