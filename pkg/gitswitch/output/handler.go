package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// Warning is a problem that does not fail the command. Username and KeyPath
// name the identity it is about, if there is one.
type Warning struct {
	Code     Code   `json:"code"`
	Message  string `json:"message"`
	Username string `json:"username,omitempty"`
	KeyPath  string `json:"key_path,omitempty"`
}

// Handler prints what a command reports. In text mode lines go to stdout and
// warnings to stderr as they happen. In JSON mode lines are dropped and
// warnings are held back for WriteJSON.
type Handler struct {
	stdout   io.Writer
	stderr   io.Writer
	silent   bool
	json     bool
	warnings []Warning
}

// NewHandler returns a text mode Handler. silent hides warnings from stderr;
// they are still recorded.
func NewHandler(stdout, stderr io.Writer, silent bool) *Handler {
	return &Handler{stdout: stdout, stderr: stderr, silent: silent}
}

// SetJSON switches between text and JSON mode.
func (h *Handler) SetJSON(enabled bool) {
	h.json = enabled
}

// JSON reports whether the handler is in JSON mode.
func (h *Handler) JSON() bool {
	return h.json
}

// Linef prints one line of text output.
func (h *Handler) Linef(format string, args ...interface{}) {
	if h.json {
		return
	}
	_, _ = fmt.Fprintln(h.stdout, fmt.Sprintf(format, args...))
}

// Warn records w.
func (h *Handler) Warn(w Warning) {
	h.warnings = append(h.warnings, w)
	if !h.json && !h.silent {
		_, _ = fmt.Fprintf(h.stderr, "warning: %s\n", w.Message)
	}
}

// Warnf records a warning that is not about a particular identity.
func (h *Handler) Warnf(code Code, format string, args ...interface{}) {
	h.Warn(Warning{Code: code, Message: fmt.Sprintf(format, args...)})
}

// Warnings returns every warning recorded so far.
func (h *Handler) Warnings() []Warning {
	return h.warnings
}

// Stderr is where prompts are written.
func (h *Handler) Stderr() io.Writer {
	return h.stderr
}

// WriteJSON writes data, the recorded warnings and failure (if not nil) to
// stdout as one indented JSON document.
func (h *Handler) WriteJSON(data interface{}, failure *Error) error {
	doc := struct {
		Data     interface{} `json:"data"`
		Warnings []Warning   `json:"warnings,omitempty"`
		Error    *Error      `json:"error,omitempty"`
	}{
		Data:     data,
		Warnings: h.warnings,
		Error:    failure,
	}

	enc := json.NewEncoder(h.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
