// Package pathbuf provides fixed-capacity path buffers. Writes past the
// capacity are truncated, never grown.
package pathbuf

// PathMax mirrors PATH_MAX on linux.
const PathMax = 4096

// Buffer holds at most PathMax bytes.
type Buffer struct {
	b [PathMax + 1]byte
	n int
}

// Set replaces the content with s, truncated to PathMax bytes.
func (p *Buffer) Set(s string) *Buffer {
	p.n = 0
	return p.Append(s)
}

// Append adds s to the end, dropping whatever does not fit.
func (p *Buffer) Append(s string) *Buffer {
	p.n += copy(p.b[p.n:PathMax], s)
	return p
}

func (p *Buffer) Len() int {
	return p.n
}

func (p *Buffer) String() string {
	return string(p.b[:p.n])
}

// Truncated reports whether the buffer is full, i.e. a write may have been cut.
func (p *Buffer) Truncated() bool {
	return p.n == PathMax
}

// Reset zeroes the used part of the buffer.
func (p *Buffer) Reset() {
	clear(p.b[:p.n])
	p.n = 0
}

// LinkBuffer receives readlink(2) output.
type LinkBuffer struct {
	b [PathMax + 1]byte
	n int
}

// Bytes returns the writable area handed to readlink. Like plog, at most
// PathMax-1 bytes are read.
func (l *LinkBuffer) Bytes() []byte {
	return l.b[:PathMax-1]
}

// SetLen records how many bytes readlink wrote. Out of range values leave
// the buffer empty.
func (l *LinkBuffer) SetLen(n int) {
	if n < 0 || n > PathMax-1 {
		n = 0
	}
	l.n = n
}

func (l *LinkBuffer) String() string {
	return string(l.b[:l.n])
}

func (l *LinkBuffer) Reset() {
	clear(l.b[:l.n])
	l.n = 0
}
