package txcodec

import (
	"encoding/binary"
	"errors"
)

// VarInt is a Bitcoin compact-size integer as used throughout the wire
// format for input/output/witness counts and script lengths. Values 0-0xfc
// are stored as a single byte; larger values use a prefix byte (0xfd, 0xfe,
// or 0xff) followed by 2, 4, or 8 little-endian bytes respectively.
type VarInt uint64

// Bytes returns the minimal compact-size encoding of v.
func (v VarInt) Bytes() []byte {
	switch {
	case v <= 0xfc:
		return []byte{byte(v)}
	case v <= 0xffff:
		return binary.LittleEndian.AppendUint16([]byte{0xfd}, uint16(v))
	case v <= 0xffffffff:
		return binary.LittleEndian.AppendUint32([]byte{0xfe}, uint32(v))
	default:
		return binary.LittleEndian.AppendUint64([]byte{0xff}, uint64(v))
	}
}

// Len reports how many bytes the minimal encoding of v would occupy,
// without allocating.
func (v VarInt) Len() int {
	switch {
	case v <= 0xfc:
		return 1
	case v <= 0xffff:
		return 3
	case v <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

// errVarIntTruncated is returned by decodeVarInt when fewer bytes remain
// than the prefix byte promises.
var errVarIntTruncated = errors.New("txcodec: truncated varint")

// decodeVarInt reads a compact-size integer from buf starting at off,
// returning the value and the number of bytes consumed.
func decodeVarInt(buf []byte, off int) (VarInt, int, error) {
	if off >= len(buf) {
		return 0, 0, errVarIntTruncated
	}
	prefix := buf[off]
	switch {
	case prefix < 0xfd:
		return VarInt(prefix), 1, nil
	case prefix == 0xfd:
		if off+3 > len(buf) {
			return 0, 0, errVarIntTruncated
		}
		return VarInt(binary.LittleEndian.Uint16(buf[off+1 : off+3])), 3, nil
	case prefix == 0xfe:
		if off+5 > len(buf) {
			return 0, 0, errVarIntTruncated
		}
		return VarInt(binary.LittleEndian.Uint32(buf[off+1 : off+5])), 5, nil
	default: // 0xff
		if off+9 > len(buf) {
			return 0, 0, errVarIntTruncated
		}
		return VarInt(binary.LittleEndian.Uint64(buf[off+1 : off+9])), 9, nil
	}
}
