package tracing

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracingFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "span_test.txt")

	require.NoError(t, Init("fluxreg", "0.0.1", fname))

	ctx, parent := StartSpan(context.Background(), "fluxreg.reload", "INTERNAL")
	_, child := StartSpan(ctx, "fluxreg.validate", "INTERNAL")
	child.WithAttributes(map[string]string{"accepted": "1"})
	EndSpan(child, errors.New("rejected"))
	EndSpan(parent, nil)

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fluxreg.validate")
	assert.Contains(t, string(data), "parent.span_id")
}

func TestNilSpan(t *testing.T) {
	var span *Span
	assert.NotPanics(t, func() {
		span.WithAttributes(map[string]string{"k": "v"})
		span.SetStatus(nil)
		EndSpan(span, nil)
	})
}
