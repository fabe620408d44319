package txcodec

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"slices"
)

// Default sequence number used for newly added inputs, matching
// DEFAULT_SEQUENCE from the Bitcoin protocol.
const DefaultSequence uint32 = 0xffffffff

// Signature hash modes and the ANYONECANPAY flag.
const (
	SighashAll          uint32 = 0x01
	SighashNone         uint32 = 0x02
	SighashSingle       uint32 = 0x03
	SighashAnyoneCanPay uint32 = 0x80
)

// Witness-extension marker and flag bytes (BIP144).
const (
	AdvancedTransactionMarker byte = 0x00
	AdvancedTransactionFlag   byte = 0x01
)

// Tx is the in-memory model of a Bitcoin transaction: a version, a
// locktime, and ordered sequences of inputs and outputs.
type Tx struct {
	Version  int32
	LockTime uint32
	In       []*TxIn
	Out      []*TxOut
}

// TxIn is a single transaction input.
type TxIn struct {
	PrevHash  [32]byte
	PrevIndex uint32
	Script    []byte
	Sequence  uint32
	Witness   [][]byte
}

// TxOut is a single transaction output.
type TxOut struct {
	Value  TxOutValue
	Script []byte
}

// TxOutValue is the output amount, ordinarily a satoshi count but
// occasionally a pre-encoded 8-byte placeholder (see RawValue).
//
// The placeholder variant exists solely to carry the all-ones sentinel
// 0xFFFFFFFFFFFFFFFF used by SIGHASH_SINGLE blanked outputs, which is not
// representable as a satoshi amount without risking confusion with a real
// value. The decoder only ever produces the Amount variant.
type TxOutValue struct {
	amount uint64
	raw    [8]byte
	isRaw  bool
}

// Amount returns a TxOutValue holding a satoshi count.
func Amount(v uint64) TxOutValue {
	return TxOutValue{amount: v}
}

// RawValue returns a TxOutValue that serializes as the given 8 bytes
// verbatim, regardless of what they decode to as an integer.
func RawValue(b [8]byte) TxOutValue {
	return TxOutValue{raw: b, isRaw: true}
}

var blankedValue = RawValue([8]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff})

// Bytes returns the 8-byte little-endian wire encoding of the value.
func (v TxOutValue) Bytes() [8]byte {
	if v.isRaw {
		return v.raw
	}
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v.amount)
	return b
}

// Uint64 returns the value as a satoshi count, interpreting a raw
// placeholder as its little-endian integer value.
func (v TxOutValue) Uint64() uint64 {
	if !v.isRaw {
		return v.amount
	}
	return binary.LittleEndian.Uint64(v.raw[:])
}

// New returns an empty transaction: version 1, locktime 0, no inputs or
// outputs.
func New() *Tx {
	return &Tx{Version: 1, LockTime: 0}
}

// AddInput appends a new input referencing (prevHash, prevIndex) and
// returns its zero-based index. sequence defaults to DefaultSequence and
// script defaults to empty when not given via SetScript afterwards.
func (tx *Tx) AddInput(prevHash [32]byte, prevIndex uint32) int {
	tx.In = append(tx.In, &TxIn{
		PrevHash:  prevHash,
		PrevIndex: prevIndex,
		Sequence:  DefaultSequence,
	})
	return len(tx.In) - 1
}

// AddOutput appends a new output and returns its zero-based index.
func (tx *Tx) AddOutput(script []byte, value uint64) int {
	tx.Out = append(tx.Out, &TxOut{
		Value:  Amount(value),
		Script: script,
	})
	return len(tx.Out) - 1
}

// errIndexRange is returned by SetScript/SetWitness when index is out of
// range; callers are responsible for only using indexes returned by
// AddInput/AddOutput, but bounds are still checked rather than trusting
// the caller with a silent out-of-bounds write.
var errIndexRange = errors.New("txcodec: index out of range")

// SetScript replaces the scriptSig of the input at index.
func (tx *Tx) SetScript(index int, script []byte) error {
	if index < 0 || index >= len(tx.In) {
		return errIndexRange
	}
	tx.In[index].Script = script
	return nil
}

// SetWitness replaces the witness stack of the input at index.
func (tx *Tx) SetWitness(index int, witness [][]byte) error {
	if index < 0 || index >= len(tx.In) {
		return errIndexRange
	}
	tx.In[index].Witness = witness
	return nil
}

// HasWitness reports whether any input carries a non-empty witness.
func (tx *Tx) HasWitness() bool {
	for _, in := range tx.In {
		if len(in.Witness) > 0 {
			return true
		}
	}
	return false
}

// IsCoinbase reports whether tx is a coinbase transaction: exactly one
// input whose PrevHash is 32 zero bytes. PrevIndex is conventionally
// 0xffffffff for a coinbase but is not checked here, matching deployed
// behavior this module preserves rather than "fixes".
func (tx *Tx) IsCoinbase() bool {
	if len(tx.In) != 1 {
		return false
	}
	return tx.In[0].PrevHash == [32]byte{}
}

// Copy returns a shallow clone of tx: inputs and outputs are independent
// records, but script and witness byte slices may alias the original's
// storage. This is the clone used by SignHashLegacy, which mutates
// structure (which outputs/inputs exist, sequences, scripts) but never
// the interior of a script or witness item.
func (tx *Tx) Copy() *Tx {
	out := &Tx{
		Version:  tx.Version,
		LockTime: tx.LockTime,
		In:       make([]*TxIn, len(tx.In)),
		Out:      make([]*TxOut, len(tx.Out)),
	}
	for i, in := range tx.In {
		c := *in
		out.In[i] = &c
	}
	for i, o := range tx.Out {
		c := *o
		out.Out[i] = &c
	}
	return out
}

// Hash returns the raw, internal-byte-order double-SHA256 of the
// non-witness serialization of tx.
func (tx *Tx) Hash() [32]byte {
	return Hash256(Encode(tx, false))
}

// ID returns the transaction id: the reverse-byte-order, hex-encoded
// double-SHA256 of the non-witness serialization, as displayed by block
// explorers and RPCs.
func (tx *Tx) ID() string {
	h := tx.Hash()
	rev := slices.Clone(h[:])
	slices.Reverse(rev)
	return hex.EncodeToString(rev)
}
