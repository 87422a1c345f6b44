package protoschema

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
)

type Severity string

const (
	SeverityError   Severity = "Error"
	SeverityWarning Severity = "Warning"
)

// Diagnostic is a problem found while compiling a schema.
type Diagnostic struct {
	Severity Severity
	File     string
	Line     int
	Column   int
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s@%d,%d: %s", d.Severity, d.File, d.Line, d.Column, d.Message)
}

// DiagnosticSink receives the errors and warnings reported during a load.
// Both sides of a comparison may be loaded at once, so implementations must
// be safe for concurrent use.
type DiagnosticSink interface {
	AddError(d Diagnostic)
	AddWarning(d Diagnostic)
}

// StderrSink prints every diagnostic on its own line and logs it at debug level.
type StderrSink struct {
	logger *zap.Logger
	mu     sync.Mutex
	out    io.Writer
}

func NewStderrSink(logger *zap.Logger, out io.Writer) *StderrSink {
	return &StderrSink{logger: logger, out: out}
}

func (s *StderrSink) AddError(d Diagnostic) {
	s.write(d)
}

func (s *StderrSink) AddWarning(d Diagnostic) {
	s.write(d)
}

func (s *StderrSink) write(d Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger.Debug("schema diagnostic", zap.String("severity", string(d.Severity)),
		zap.String("file", d.File), zap.Int("line", d.Line), zap.Int("column", d.Column))
	fmt.Fprintln(s.out, d.String())
}

// Collector keeps diagnostics in memory.
type Collector struct {
	mu          sync.Mutex
	Diagnostics []Diagnostic
}

func (c *Collector) AddError(d Diagnostic) {
	c.add(d)
}

func (c *Collector) AddWarning(d Diagnostic) {
	c.add(d)
}

func (c *Collector) add(d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Diagnostics = append(c.Diagnostics, d)
}

// Errors returns the collected diagnostics of error severity.
func (c *Collector) Errors() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	var errs []Diagnostic
	for _, d := range c.Diagnostics {
		if d.Severity == SeverityError {
			errs = append(errs, d)
		}
	}
	return errs
}
