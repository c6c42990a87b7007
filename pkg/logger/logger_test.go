//go:build unit

package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterLogger_Logf(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, "[test] ")

	l.Logf("GET %s", "https://example.org")
	l.Logf("status %d", 200)

	assert.Equal(t, "[test] GET https://example.org\n[test] status 200\n", buf.String())
}

func TestOrNoop(t *testing.T) {
	assert.NotNil(t, OrNoop(nil))

	l := NewNoopLogger()
	assert.Equal(t, l, OrNoop(l))
}
