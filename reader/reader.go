// Package reader memory-maps an input file read-only and exposes a cursor
// over the mapping: absolute and relative seeks, POD reads, a scoped
// temp-seek helper, and a C-string view reader. The DWARF parser reads
// through a *Reader; the Mach-O/fat/archive readers work on byte slices
// taken from the mapping with Slice. Reads check the cursor against the
// mapped region and return io.EOF past its end; Seek itself does not
// validate the new position.
package reader

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"

	"github.com/adobe-type-tools/orc/curated"
)

// ReadExactlyMismatch is the curated error pattern ReadExactly raises when
// fewer bytes are available than requested — fatal to the task reading that
// structure, since it signals encoder/decoder drift rather than ordinary
// end-of-input.
const ReadExactlyMismatch = "reader: read_exactly wanted %d bytes, got %d"

// Reader is a read-only memory-mapped cursor over a single file.
type Reader struct {
	path string
	data []byte
	pos  int64
}

// New memory-maps path read-only and returns a cursor positioned at offset 0.
func New(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reader: open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("reader: stat %s: %w", path, err)
	}

	size := info.Size()
	if size == 0 {
		// mmap of a zero-length file fails on every platform; treat it as
		// a validly empty mapping instead.
		return &Reader{path: path, data: []byte{}}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("reader: mmap %s: %w", path, err)
	}

	return &Reader{path: path, data: data}, nil
}

// NewFromBytes wraps an in-memory byte slice as a Reader, used for fat and
// archive members sliced out of an already-mapped container and for tests
// that don't want to touch the filesystem.
func NewFromBytes(data []byte) *Reader {
	return &Reader{data: data}
}

// Close unmaps the underlying file, if one was mapped. Safe to call on a
// Reader built from NewFromBytes (a no-op in that case).
func (r *Reader) Close() error {
	if r.path == "" || len(r.data) == 0 {
		return nil
	}
	return unix.Munmap(r.data)
}

// IsValid reports whether the mapping succeeded and the cursor currently
// sits within [0, size].
func (r *Reader) IsValid() bool {
	return r.pos >= 0 && r.pos <= int64(len(r.data))
}

// Size returns the total length of the mapped region.
func (r *Reader) Size() int64 {
	return int64(len(r.data))
}

// Tell returns the current cursor position.
func (r *Reader) Tell() int64 {
	return r.pos
}

// Seek repositions the cursor per io.Seeker semantics (io.SeekStart,
// io.SeekCurrent, io.SeekEnd).
func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = r.pos + offset
	case io.SeekEnd:
		abs = int64(len(r.data)) + offset
	default:
		return 0, fmt.Errorf("reader: invalid whence %d", whence)
	}
	r.pos = abs
	return abs, nil
}

// Read copies into dst starting at the cursor, advancing the cursor by the
// number of bytes copied, and implements io.Reader.
func (r *Reader) Read(dst []byte) (int, error) {
	if r.pos >= int64(len(r.data)) {
		return 0, io.EOF
	}
	n := copy(dst, r.data[r.pos:])
	r.pos += int64(n)
	return n, nil
}

// ReadExactly reads exactly len(dst) bytes, returning an error if fewer are
// available — the "read_exactly length mismatch" fatal condition of
// spec.md section 7, which exists to catch encoder/decoder drift.
func (r *Reader) ReadExactly(dst []byte) error {
	n, err := r.Read(dst)
	if err != nil {
		return err
	}
	if n != len(dst) {
		return curated.Errorf(ReadExactlyMismatch, len(dst), n)
	}
	return nil
}

// ReadByte reads a single byte and implements io.ByteReader, so a *Reader
// can be passed directly to leb128.ReadULEB128/ReadSLEB128.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= int64(len(r.data)) {
		return 0, io.EOF
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// Get is a synonym for ReadByte matching the original cursor's get().
func (r *Reader) Get() (byte, error) {
	return r.ReadByte()
}

func (r *Reader) readN(n int) ([]byte, error) {
	if r.pos+int64(n) > int64(len(r.data)) {
		return nil, io.EOF
	}
	b := r.data[r.pos : r.pos+int64(n)]
	r.pos += int64(n)
	return b, nil
}

// ReadUint8 through ReadUint64 read unsigned integers of the named width in
// the given byte order, advancing the cursor.
func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.ReadByte()
	return b, err
}

func (r *Reader) ReadUint16(order binary.ByteOrder) (uint16, error) {
	b, err := r.readN(2)
	if err != nil {
		return 0, err
	}
	return order.Uint16(b), nil
}

func (r *Reader) ReadUint32(order binary.ByteOrder) (uint32, error) {
	b, err := r.readN(4)
	if err != nil {
		return 0, err
	}
	return order.Uint32(b), nil
}

func (r *Reader) ReadUint64(order binary.ByteOrder) (uint64, error) {
	b, err := r.readN(8)
	if err != nil {
		return 0, err
	}
	return order.Uint64(b), nil
}

// ReadCString reads bytes up to (and past) the next NUL terminator,
// returning the string without the terminator. The cursor ends positioned
// immediately after the NUL.
func (r *Reader) ReadCString() (string, error) {
	start := r.pos
	for {
		b, err := r.ReadByte()
		if err != nil {
			return "", fmt.Errorf("reader: unterminated string at offset %d: %w", start, err)
		}
		if b == 0 {
			return string(r.data[start : r.pos-1]), nil
		}
	}
}

// TempSeek saves the current cursor position, seeks to offset, runs fn, and
// restores the saved position — even if fn returns an error or the seek
// itself fails partway through fn. This is how the DWARF parser peeks
// ahead (e.g. resolving a deferred debug_str offset) without disturbing the
// caller's place in the stream.
func (r *Reader) TempSeek(offset int64, whence int, fn func() error) error {
	saved := r.pos
	defer func() { r.pos = saved }()

	if _, err := r.Seek(offset, whence); err != nil {
		return err
	}
	return fn()
}

// Peek returns a view of n bytes at the cursor without advancing it. The
// returned slice aliases the mapping and must not be retained past the
// Reader's lifetime.
func (r *Reader) Peek(n int) ([]byte, error) {
	if r.pos+int64(n) > int64(len(r.data)) {
		return nil, io.EOF
	}
	return r.data[r.pos : r.pos+int64(n)], nil
}

// Slice returns a view of the mapping between [start, end), independent of
// the cursor. Used to hand a contained Mach-O/fat slice or archive member
// off to a nested reader.
func (r *Reader) Slice(start, end int64) ([]byte, error) {
	if start < 0 || end > int64(len(r.data)) || start > end {
		return nil, fmt.Errorf("reader: invalid slice [%d, %d) of %d bytes", start, end, len(r.data))
	}
	return r.data[start:end], nil
}
