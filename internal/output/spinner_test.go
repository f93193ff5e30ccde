package output_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"minimado/internal/output"
)

// syncBuffer is a bytes.Buffer safe for use by the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerStatic(t *testing.T) {
	var buf bytes.Buffer
	s := output.NewSpinner(&buf, "Adding task...", false)
	s.Start()
	s.Success("Task added")
	assert.Equal(t, "✓ Task added\n", buf.String())

	buf.Reset()
	s = output.NewSpinner(&buf, "Adding task...", false)
	s.Start()
	s.Fail("Failed to add task")
	assert.Equal(t, "✗ Failed to add task\n", buf.String())

	buf.Reset()
	s = output.NewSpinner(&buf, "Fetching tasks...", false)
	s.Start()
	s.Stop()
	assert.Equal(t, "", buf.String())
}

func TestSpinnerAnimated(t *testing.T) {
	var buf syncBuffer
	s := output.NewSpinner(&buf, "Fetching tasks...", true)
	s.Start()
	time.Sleep(150 * time.Millisecond)
	s.Stop()

	out := buf.String()
	assert.Contains(t, out, "Fetching tasks...")
	assert.True(t, strings.HasSuffix(out, "\r\033[K"))

	// Nothing is drawn after Stop returns.
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, out, buf.String())
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	s := output.NewSpinner(&buf, "x", false)
	s.Success("done")
	assert.Equal(t, "✓ done\n", buf.String())
}
