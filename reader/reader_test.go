package reader_test

import (
	"encoding/binary"
	"io"
	"testing"

	"github.com/adobe-type-tools/orc/reader"
	"github.com/adobe-type-tools/orc/test"
)

func TestSeekAndTell(t *testing.T) {
	r := reader.NewFromBytes([]byte("hello world"))

	test.Equate(t, r.Tell(), int64(0))

	pos, err := r.Seek(6, io.SeekStart)
	test.Equate(t, err, nil)
	test.Equate(t, pos, int64(6))
	test.Equate(t, r.Tell(), int64(6))

	b, err := r.ReadByte()
	test.Equate(t, err, nil)
	test.Equate(t, b, byte('w'))
}

func TestReadCString(t *testing.T) {
	r := reader.NewFromBytes([]byte("foo\x00bar\x00"))

	s, err := r.ReadCString()
	test.Equate(t, err, nil)
	test.Equate(t, s, "foo")
	test.Equate(t, r.Tell(), int64(4))

	s, err = r.ReadCString()
	test.Equate(t, err, nil)
	test.Equate(t, s, "bar")
}

func TestReadCStringUnterminated(t *testing.T) {
	r := reader.NewFromBytes([]byte("nonul"))
	_, err := r.ReadCString()
	test.ExpectFailure(t, err)
}

func TestTempSeekRestoresOnSuccess(t *testing.T) {
	r := reader.NewFromBytes([]byte("0123456789"))
	r.Seek(3, io.SeekStart)

	var peeked byte
	err := r.TempSeek(8, io.SeekStart, func() error {
		var e error
		peeked, e = r.ReadByte()
		return e
	})

	test.Equate(t, err, nil)
	test.Equate(t, peeked, byte('8'))
	test.Equate(t, r.Tell(), int64(3))
}

func TestTempSeekRestoresOnFailure(t *testing.T) {
	r := reader.NewFromBytes([]byte("0123456789"))
	r.Seek(3, io.SeekStart)

	err := r.TempSeek(8, io.SeekStart, func() error {
		return io.ErrUnexpectedEOF
	})

	test.ExpectFailure(t, err)
	test.Equate(t, r.Tell(), int64(3))
}

func TestReadUint32(t *testing.T) {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, 0xdeadbeef)
	r := reader.NewFromBytes(buf)

	v, err := r.ReadUint32(binary.LittleEndian)
	test.Equate(t, err, nil)
	test.Equate(t, v, uint32(0xdeadbeef))
}

func TestReadExactlyMismatch(t *testing.T) {
	r := reader.NewFromBytes([]byte{1, 2})
	dst := make([]byte, 4)
	err := r.ReadExactly(dst)
	test.ExpectFailure(t, err)
}

func TestIsValid(t *testing.T) {
	r := reader.NewFromBytes([]byte{1, 2, 3})
	test.Equate(t, r.IsValid(), true)
	r.Seek(3, io.SeekStart)
	test.Equate(t, r.IsValid(), true)
	r.Seek(4, io.SeekStart)
	test.Equate(t, r.IsValid(), false)
}
