// Package txcodec implements a bit-exact Bitcoin transaction codec and the
// two signature-preimage constructions ("sighash") used to produce the
// message a signer commits to for a given input: the legacy construction
// and the BIP143 witness v0 construction.
//
// The package only covers the wire format, size/weight accounting, and
// sighash math. It does not execute or validate scripts, verify
// signatures, check UTXO sanity, encode addresses, or manage keys — those
// are the responsibility of callers.
package txcodec
