package txcodec

// SignHashWitnessV0 computes the BIP143 witness v0 signature hash for
// spending tx's input at inIndex, where prevScript is the previous
// output's scriptPubKey, value is that output's amount in satoshis, and
// hashType selects SIGHASH_ALL/NONE/SINGLE optionally combined with
// SIGHASH_ANYONECANPAY.
func SignHashWitnessV0(tx *Tx, inIndex int, prevScript []byte, value uint64, hashType uint32) [32]byte {
	baseMode := hashType & 0x1f
	anyoneCanPay := hashType&SighashAnyoneCanPay != 0

	var hashPrevouts, hashSequence, hashOutputs [32]byte

	if !anyoneCanPay {
		buf := make([]byte, 0, len(tx.In)*36)
		for _, in := range tx.In {
			buf = append(buf, in.PrevHash[:]...)
			buf = appendU32LE(buf, in.PrevIndex)
		}
		hashPrevouts = Hash256(buf)
	}

	if !anyoneCanPay && baseMode != SighashSingle && baseMode != SighashNone {
		buf := make([]byte, 0, len(tx.In)*4)
		for _, in := range tx.In {
			buf = appendU32LE(buf, in.Sequence)
		}
		hashSequence = Hash256(buf)
	}

	switch {
	case baseMode != SighashSingle && baseMode != SighashNone:
		var buf []byte
		for _, out := range tx.Out {
			v := out.Value.Bytes()
			buf = append(buf, v[:]...)
			buf = appendVarSlice(buf, out.Script)
		}
		hashOutputs = Hash256(buf)
	case baseMode == SighashSingle && inIndex < len(tx.Out):
		out := tx.Out[inIndex]
		v := out.Value.Bytes()
		buf := append(append([]byte(nil), v[:]...), appendVarSlice(nil, out.Script)...)
		hashOutputs = Hash256(buf)
	}

	in := tx.In[inIndex]
	scriptSize := VarInt(len(prevScript)).Len() + len(prevScript)
	buf := make([]byte, 0, 156+scriptSize)
	buf = appendI32LE(buf, tx.Version)
	buf = append(buf, hashPrevouts[:]...)
	buf = append(buf, hashSequence[:]...)
	buf = append(buf, in.PrevHash[:]...)
	buf = appendU32LE(buf, in.PrevIndex)
	buf = appendVarSlice(buf, prevScript)
	buf = appendU64LE(buf, value)
	buf = appendU32LE(buf, in.Sequence)
	buf = append(buf, hashOutputs[:]...)
	buf = appendU32LE(buf, tx.LockTime)
	buf = appendU32LE(buf, hashType)

	return Hash256(buf)
}

func appendU32LE(buf []byte, v uint32) []byte {
	return append(buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

func appendI32LE(buf []byte, v int32) []byte {
	return appendU32LE(buf, uint32(v))
}

func appendU64LE(buf []byte, v uint64) []byte {
	return append(buf,
		byte(v), byte(v>>8), byte(v>>16), byte(v>>24),
		byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56))
}

func appendVarSlice(buf, v []byte) []byte {
	buf = append(buf, VarInt(len(v)).Bytes()...)
	return append(buf, v...)
}
