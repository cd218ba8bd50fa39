package exec

import (
	"bytes"
	"io"
	"sync"
)

// multiWriter fans a write out to several writers. io.MultiWriter is not
// used because the captures below must be readable while the child runs.
type multiWriter struct {
	writers []io.Writer
	mu      sync.Mutex
}

func newMultiWriter(writers ...io.Writer) *multiWriter {
	return &multiWriter{writers: writers}
}

// Write writes data to all underlying writers.
func (mw *multiWriter) Write(p []byte) (n int, err error) {
	mw.mu.Lock()
	defer mw.mu.Unlock()

	for _, w := range mw.writers {
		n, err = w.Write(p)
		if err != nil {
			return
		}
		if n != len(p) {
			err = io.ErrShortWrite
			return
		}
	}
	return len(p), nil
}

// outputCapture captures output while optionally streaming it to another writer.
type outputCapture struct {
	buffer      *lockedBuffer
	passthrough io.Writer
}

// newOutputCapture creates a new output capture.
// If passthrough is non-nil, output is written to it in addition to being captured.
func newOutputCapture(passthrough io.Writer) *outputCapture {
	return &outputCapture{
		buffer:      &lockedBuffer{},
		passthrough: passthrough,
	}
}

// Writer returns an io.Writer that captures output.
func (oc *outputCapture) Writer() io.Writer {
	if oc.passthrough != nil {
		return newMultiWriter(oc.buffer, oc.passthrough)
	}
	return oc.buffer
}

// String returns the captured output.
func (oc *outputCapture) String() string {
	return oc.buffer.String()
}

// newCombinedWriter creates the buffer holding stdout and stderr interleaved
// in write order.
func newCombinedWriter() *lockedBuffer {
	return &lockedBuffer{}
}

// lockedBuffer is a bytes.Buffer safe for concurrent use.
type lockedBuffer struct {
	buffer bytes.Buffer
	mu     sync.Mutex
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buffer.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buffer.String()
}
