package txcodec

import (
	"encoding/binary"
	"errors"
)

// ErrTruncated indicates the buffer being decoded ended before the
// expected number of bytes could be read.
var ErrTruncated = errors.New("txcodec: truncated transaction data")

// reader is a forward-only cursor over a byte buffer, used by the decoder
// to walk a serialized transaction.
type reader struct {
	buf []byte
	off int
}

func newReader(buf []byte) *reader {
	return &reader{buf: buf}
}

func (r *reader) remaining() int {
	return len(r.buf) - r.off
}

// readSlice returns the next n bytes as a view into the underlying buffer
// and advances the cursor. It fails if fewer than n bytes remain.
func (r *reader) readSlice(n int) ([]byte, error) {
	if n < 0 || r.remaining() < n {
		return nil, ErrTruncated
	}
	v := r.buf[r.off : r.off+n]
	r.off += n
	return v, nil
}

func (r *reader) readU8() (byte, error) {
	v, err := r.readSlice(1)
	if err != nil {
		return 0, err
	}
	return v[0], nil
}

func (r *reader) readU32LE() (uint32, error) {
	v, err := r.readSlice(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(v), nil
}

func (r *reader) readI32LE() (int32, error) {
	v, err := r.readU32LE()
	return int32(v), err
}

func (r *reader) readU64LE() (uint64, error) {
	v, err := r.readSlice(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(v), nil
}

// readVarint decodes a compact-size integer and advances the cursor by the
// number of bytes it occupied.
func (r *reader) readVarint() (VarInt, error) {
	v, n, err := decodeVarInt(r.buf, r.off)
	if err != nil {
		return 0, err
	}
	r.off += n
	return v, nil
}

// readVarSlice reads a varint length L followed by L bytes.
func (r *reader) readVarSlice() ([]byte, error) {
	l, err := r.readVarint()
	if err != nil {
		return nil, err
	}
	return r.readSlice(int(l))
}

// readVector reads a varint count K followed by K varslices.
func (r *reader) readVector() ([][]byte, error) {
	k, err := r.readVarint()
	if err != nil {
		return nil, err
	}
	out := make([][]byte, k)
	for i := range out {
		v, err := r.readVarSlice()
		if err != nil {
			return nil, err
		}
		out[i] = append([]byte(nil), v...)
	}
	return out, nil
}

// peek returns the next n bytes without advancing the cursor. It returns
// ok=false if fewer than n bytes remain.
func (r *reader) peek(n int) (v []byte, ok bool) {
	if r.remaining() < n {
		return nil, false
	}
	return r.buf[r.off : r.off+n], true
}
