package txcodec

import "errors"

// ErrSuperfluousWitness is returned by Decode when the witness marker and
// flag are present but every input ended up with an empty witness: the
// extension was present but redundant.
var ErrSuperfluousWitness = errors.New("txcodec: superfluous witness data")

// ErrUnexpectedData is returned by Decode in strict mode when bytes remain
// after a complete transaction has been parsed.
var ErrUnexpectedData = errors.New("txcodec: unexpected trailing data")

// Encode serializes tx into a freshly allocated, exactly-sized buffer.
// When allowWitness is true and tx carries at least one non-empty
// witness, the BIP144 marker+flag extension and witness data are
// included; otherwise the legacy (non-witness) encoding is produced.
func Encode(tx *Tx, allowWitness bool) []byte {
	buf := make([]byte, Size(tx, allowWitness))
	written, _ := EncodeInto(tx, buf, 0, allowWitness)
	return written
}

// EncodeInto serializes tx into buf starting at offset and returns the
// sub-slice of buf that was written, buf[offset:offset+n]. buf must have
// at least Size(tx, allowWitness) bytes available from offset onward.
func EncodeInto(tx *Tx, buf []byte, offset int, allowWitness bool) ([]byte, error) {
	need := Size(tx, allowWitness)
	if len(buf)-offset < need {
		return nil, errors.New("txcodec: destination buffer too small")
	}

	hasWitness := allowWitness && tx.HasWitness()

	w := newWriter(buf, offset)
	w.writeI32LE(tx.Version)

	if hasWitness {
		w.writeU8(AdvancedTransactionMarker)
		w.writeU8(AdvancedTransactionFlag)
	}

	w.writeVarint(VarInt(len(tx.In)))
	for _, in := range tx.In {
		w.writeSlice(in.PrevHash[:])
		w.writeU32LE(in.PrevIndex)
		w.writeVarSlice(in.Script)
		w.writeU32LE(in.Sequence)
	}

	w.writeVarint(VarInt(len(tx.Out)))
	for _, out := range tx.Out {
		v := out.Value.Bytes()
		w.writeSlice(v[:])
		w.writeVarSlice(out.Script)
	}

	if hasWitness {
		for _, in := range tx.In {
			w.writeVector(in.Witness)
		}
	}

	w.writeU32LE(tx.LockTime)

	return buf[offset:w.off], nil
}

// Decode parses buf into a transaction. When noStrict is false (the
// default), any bytes remaining after the locktime field is read is an
// error; when true, trailing bytes are ignored.
//
// A transaction serialized with zero inputs starts its input section with
// the byte 0x00, the same byte as the BIP144 marker. This decoder follows
// deployed consensus-compatible behavior and always interprets (0x00, 0x01)
// right after the version as marker+flag: a zero-input transaction with
// exactly one output (input count 0x00 followed by output count 0x01) is
// therefore misread and cannot be decoded as written. Zero-input
// transactions with any other output count, such as the empty
// transaction, decode normally.
func Decode(buf []byte, noStrict bool) (*Tx, error) {
	r := newReader(buf)

	version, err := r.readI32LE()
	if err != nil {
		return nil, err
	}

	hasWitness := false
	if marker, ok := r.peek(2); ok && marker[0] == AdvancedTransactionMarker && marker[1] == AdvancedTransactionFlag {
		hasWitness = true
		r.off += 2
	}

	vinLen, err := r.readVarint()
	if err != nil {
		return nil, err
	}
	ins := make([]*TxIn, vinLen)
	for i := range ins {
		in := &TxIn{}
		if err := decodeTxIn(r, in); err != nil {
			return nil, err
		}
		ins[i] = in
	}

	voutLen, err := r.readVarint()
	if err != nil {
		return nil, err
	}
	outs := make([]*TxOut, voutLen)
	for i := range outs {
		out := &TxOut{}
		if err := decodeTxOut(r, out); err != nil {
			return nil, err
		}
		outs[i] = out
	}

	if hasWitness {
		anyWitness := false
		for _, in := range ins {
			wit, err := r.readVector()
			if err != nil {
				return nil, err
			}
			in.Witness = wit
			if len(wit) > 0 {
				anyWitness = true
			}
		}
		if !anyWitness {
			return nil, ErrSuperfluousWitness
		}
	}

	lockTime, err := r.readU32LE()
	if err != nil {
		return nil, err
	}

	if !noStrict && r.remaining() > 0 {
		return nil, ErrUnexpectedData
	}

	return &Tx{
		Version:  version,
		LockTime: lockTime,
		In:       ins,
		Out:      outs,
	}, nil
}

func decodeTxIn(r *reader, in *TxIn) error {
	hash, err := r.readSlice(32)
	if err != nil {
		return err
	}
	copy(in.PrevHash[:], hash)

	prevIndex, err := r.readU32LE()
	if err != nil {
		return err
	}
	in.PrevIndex = prevIndex

	script, err := r.readVarSlice()
	if err != nil {
		return err
	}
	in.Script = append([]byte(nil), script...)

	sequence, err := r.readU32LE()
	if err != nil {
		return err
	}
	in.Sequence = sequence

	return nil
}

func decodeTxOut(r *reader, out *TxOut) error {
	value, err := r.readU64LE()
	if err != nil {
		return err
	}
	out.Value = Amount(value)

	script, err := r.readVarSlice()
	if err != nil {
		return err
	}
	out.Script = append([]byte(nil), script...)

	return nil
}
