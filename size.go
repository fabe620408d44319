package txcodec

// Size returns the exact number of bytes tx would serialize to under
// allowWitness. See BaseSize/TotalSize/Weight/VSize for the derived
// fee-accounting quantities built on top of this.
func Size(tx *Tx, allowWitness bool) int {
	hasWitness := allowWitness && tx.HasWitness()

	n := 8 // version (4) + locktime (4)
	if hasWitness {
		n += 2 // marker + flag
	}

	n += VarInt(len(tx.In)).Len()
	n += VarInt(len(tx.Out)).Len()

	for _, in := range tx.In {
		n += in.size()
	}
	for _, out := range tx.Out {
		n += out.size()
	}

	if hasWitness {
		for _, in := range tx.In {
			n += in.witnessSize()
		}
	}

	return n
}

func (in *TxIn) size() int {
	// prev_hash(32) + prev_index(4) + varslice(script) + sequence(4)
	return 32 + 4 + VarInt(len(in.Script)).Len() + len(in.Script) + 4
}

func (in *TxIn) witnessSize() int {
	n := VarInt(len(in.Witness)).Len()
	for _, item := range in.Witness {
		n += VarInt(len(item)).Len() + len(item)
	}
	return n
}

func (out *TxOut) size() int {
	// value(8) + varslice(script)
	return 8 + VarInt(len(out.Script)).Len() + len(out.Script)
}

// BaseSize is the serialized length excluding witness data.
func (tx *Tx) BaseSize() int {
	return Size(tx, false)
}

// TotalSize is the serialized length including witness data when present.
func (tx *Tx) TotalSize() int {
	return Size(tx, true)
}

// Weight is the Bitcoin fee-accounting weight: 3*base + total.
func (tx *Tx) Weight() int {
	return tx.BaseSize()*3 + tx.TotalSize()
}

// VSize is the virtual size: ceil(weight/4).
func (tx *Tx) VSize() int {
	w := tx.Weight()
	return (w + 3) / 4
}
