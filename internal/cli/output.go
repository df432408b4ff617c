package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/katalvlaran/phinet/internal/printer"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Validation failure
	ExitCommandError = 2 // Command error (unreadable file, bad flags, bad config)
)

// Error codes reported in JSON output.
const (
	ErrCodeValidation = "E001" // network or subsystem failed validation
	ErrCodeRead       = "E002" // file missing or not decodable
	ErrCodeArgument   = "E003" // flag value rejected
)

// ExitError carries the process exit code for an error.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *ExitError) Unwrap() error { return e.Err }

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}

// codedError tags a failure with its JSON error code before it is reported.
type codedError struct {
	code string
	err  error
}

func (e *codedError) Error() string { return e.err.Error() }
func (e *codedError) Unwrap() error { return e.err }

// Response is the JSON envelope of every command.
type Response struct {
	Status string         `json:"status"`         // "ok" or "error"
	Data   any            `json:"data,omitempty"` // success payload
	Error  *ResponseError `json:"error,omitempty"`
}

// ResponseError is the error part of a Response.
type ResponseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format  string
	Writer  io.Writer
	Printer *printer.Printer
}

// newFormatter colors text output only when the config allows it and the
// process output supports it (NO_COLOR unset, terminal attached).
func newFormatter(opts *RootOptions, w io.Writer, colored bool) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: w, Printer: printer.New(w, colored && !color.NoColor)}
}

// JSON reports whether output is JSON.
func (f *OutputFormatter) JSON() bool { return f.Format == "json" }

// Success writes data in the JSON envelope. Text callers print themselves.
func (f *OutputFormatter) Success(data any) error {
	if !f.JSON() {
		return nil
	}

	return f.encode(Response{Status: "ok", Data: data})
}

// Fail reports err and returns the matching ExitError.
func (f *OutputFormatter) Fail(title string, err error) error {
	code, exit := ErrCodeRead, ExitCommandError
	var coded *codedError
	if errors.As(err, &coded) {
		code = coded.code
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		exit = exitErr.Code
	}
	if code == ErrCodeValidation {
		exit = ExitFailure
	}

	if f.JSON() {
		if encErr := f.encode(Response{Status: "error", Error: &ResponseError{Code: code, Message: err.Error()}}); encErr != nil {
			return encErr
		}
	} else {
		f.Printer.Error(title, err.Error())
	}

	return WrapExitError(exit, title, err)
}

func (f *OutputFormatter) encode(v any) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
