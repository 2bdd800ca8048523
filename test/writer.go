package test

import "bytes"

// Writer is an io.Writer that accumulates everything written to it, for
// comparison against an expected string in tests that exercise logging or
// report output.
type Writer struct {
	buf bytes.Buffer
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

// Compare reports whether everything written so far equals s.
func (w *Writer) Compare(s string) bool {
	return w.buf.String() == s
}

// Clear empties the accumulated buffer.
func (w *Writer) Clear() {
	w.buf.Reset()
}

// String returns everything written so far.
func (w *Writer) String() string {
	return w.buf.String()
}
