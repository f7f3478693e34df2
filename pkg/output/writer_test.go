package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	w := JSONWriter{}

	err := w.Write(&buf, struct {
		Name  string   `json:"name"`
		Class []string `json:"class"`
	}{Name: "Thorin", Class: []string{"warrior"}})
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"name\": \"Thorin\",\n  \"class\": [\n    \"warrior\"\n  ]\n}\n", buf.String())
}

func TestJSONWriterKeepsHTMLCharacters(t *testing.T) {
	var buf bytes.Buffer
	w := JSONWriter{}

	err := w.Write(&buf, map[string]string{"name": "Bo & Jo", "class": "<mage>"})
	require.NoError(t, err)

	assert.Equal(t, "{\n  \"class\": \"<mage>\",\n  \"name\": \"Bo & Jo\"\n}\n", buf.String())
}

func TestJSONWriterErrors(t *testing.T) {
	w := JSONWriter{}

	var buf bytes.Buffer
	assert.ErrorContains(t, w.Write(&buf, make(chan int)), "writing result")
	assert.Empty(t, buf.String())

	assert.ErrorContains(t, w.Write(failingWriter{}, "x"), "closed pipe")
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	w := TextWriter{}

	require.NoError(t, w.Write(&buf, "A cat holds a comic book."))
	assert.Equal(t, "A cat holds a comic book.\n", buf.String())

	assert.ErrorContains(t, w.Write(failingWriter{}, "x"), "closed pipe")
}
