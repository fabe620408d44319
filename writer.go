package txcodec

import "encoding/binary"

// writer writes into a pre-allocated buffer starting at a given offset,
// advancing the offset as it goes. Buffers are always pre-sized by a
// caller that already knows the exact encoded length (see size.go), so
// writer never grows or allocates.
type writer struct {
	buf []byte
	off int
}

func newWriter(buf []byte, off int) *writer {
	return &writer{buf: buf, off: off}
}

func (w *writer) writeSlice(v []byte) {
	w.off += copy(w.buf[w.off:], v)
}

func (w *writer) writeU8(v byte) {
	w.buf[w.off] = v
	w.off++
}

func (w *writer) writeU32LE(v uint32) {
	binary.LittleEndian.PutUint32(w.buf[w.off:w.off+4], v)
	w.off += 4
}

func (w *writer) writeI32LE(v int32) {
	w.writeU32LE(uint32(v))
}

func (w *writer) writeU64LE(v uint64) {
	binary.LittleEndian.PutUint64(w.buf[w.off:w.off+8], v)
	w.off += 8
}

func (w *writer) writeVarint(v VarInt) {
	w.writeSlice(v.Bytes())
}

func (w *writer) writeVarSlice(v []byte) {
	w.writeVarint(VarInt(len(v)))
	w.writeSlice(v)
}

func (w *writer) writeVector(v [][]byte) {
	w.writeVarint(VarInt(len(v)))
	for _, item := range v {
		w.writeVarSlice(item)
	}
}
