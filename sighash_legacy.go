package txcodec

import "encoding/binary"

// ONE is the legacy-sighash error sentinel: a 32-byte little-endian
// encoding of 1. SignHashLegacy returns it in place of raising an error
// when the supplied input index is out of range, or when SIGHASH_SINGLE
// is used with an input index that has no matching output — preserving a
// historical Bitcoin quirk that downstream validators must also
// reproduce, not "fixing" it.
var ONE = [32]byte{0x01}

// SignHashLegacy computes the pre-BIP143 ("legacy") signature hash for
// spending tx's input at inIndex, where prevScript is the previous
// output's scriptPubKey and hashType selects SIGHASH_ALL/NONE/SINGLE
// optionally combined with SIGHASH_ANYONECANPAY.
func SignHashLegacy(tx *Tx, inIndex int, prevScript []byte, hashType uint32) [32]byte {
	if inIndex < 0 || inIndex >= len(tx.In) {
		return ONE
	}

	ourScript := stripCodeSeparator(prevScript)
	work := tx.Copy()

	baseMode := hashType & 0x1f
	anyoneCanPay := hashType&SighashAnyoneCanPay != 0

	switch baseMode {
	case SighashNone:
		work.Out = nil
		zeroOtherSequences(work, inIndex)
	case SighashSingle:
		if inIndex >= len(work.Out) {
			return ONE
		}
		for i := 0; i < inIndex; i++ {
			work.Out[i] = &TxOut{Value: blankedValue}
		}
		work.Out = work.Out[:inIndex+1]
		zeroOtherSequences(work, inIndex)
	default: // SIGHASH_ALL and any unrecognized mode
	}

	if anyoneCanPay {
		in := work.In[inIndex]
		in.Script = ourScript
		work.In = []*TxIn{in}
	} else {
		for i, in := range work.In {
			if i == inIndex {
				in.Script = ourScript
			} else {
				in.Script = nil
			}
		}
	}

	sz := Size(work, false)
	buf := make([]byte, sz+4)
	EncodeInto(work, buf, 0, false)
	binary.LittleEndian.PutUint32(buf[sz:], hashType)

	return Hash256(buf)
}

// zeroOtherSequences sets the sequence of every input other than keep to
// 0, as required by the NONE and SINGLE output rules.
func zeroOtherSequences(tx *Tx, keep int) {
	for i, in := range tx.In {
		if i != keep {
			in.Sequence = 0
		}
	}
}
