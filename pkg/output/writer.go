package output

import (
	"encoding/json"
	"fmt"
	"io"
)

type JSONWriter struct{}

// Write encodes data as JSON indented with two spaces, followed by a newline.
// HTML characters are written literally.
func (j *JSONWriter) Write(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}

type TextWriter struct{}

// Write prints text as is, followed by a newline.
func (t *TextWriter) Write(w io.Writer, text string) error {
	if _, err := fmt.Fprintln(w, text); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}
