package txcodec_test

import (
	"testing"

	"github.com/ModChain/txcodec"
)

func TestSizeMatchesEncodedLength(t *testing.T) {
	tx := txcodec.New()
	tx.AddInput([32]byte{1}, 0)
	tx.AddInput([32]byte{2}, 1)
	tx.SetScript(0, []byte{0x51, 0x52, 0x53})
	tx.AddOutput([]byte{0x51}, 1000)
	tx.AddOutput(make([]byte, 200), 2000)

	for _, allowWitness := range []bool{false, true} {
		got := len(txcodec.Encode(tx, allowWitness))
		want := txcodec.Size(tx, allowWitness)
		if got != want {
			t.Errorf("allowWitness=%v: Size()=%d, encoded length=%d", allowWitness, want, got)
		}
	}
}

func TestSizeWitnessAccounting(t *testing.T) {
	tx := txcodec.New()
	tx.AddInput([32]byte{1}, 0)
	tx.SetWitness(0, [][]byte{{0x01, 0x02}, make([]byte, 71)})
	tx.AddOutput([]byte{0x51}, 1000)

	base := tx.BaseSize()
	total := tx.TotalSize()
	if total <= base {
		t.Fatalf("TotalSize() (%d) should exceed BaseSize() (%d) once a witness is present", total, base)
	}
	if tx.Weight() != base*3+total {
		t.Errorf("Weight() = %d, want %d", tx.Weight(), base*3+total)
	}
	if tx.VSize() != (tx.Weight()+3)/4 {
		t.Errorf("VSize() = %d, want ceil(weight/4)", tx.VSize())
	}
}

func TestSizeIgnoresWitnessWhenDisallowed(t *testing.T) {
	tx := txcodec.New()
	tx.AddInput([32]byte{1}, 0)
	tx.SetWitness(0, [][]byte{{0x01}})
	tx.AddOutput([]byte{0x51}, 1000)

	withWitnessAllowed := txcodec.Size(tx, true)
	withoutWitness := txcodec.Size(tx, false)
	if withWitnessAllowed == withoutWitness {
		t.Fatalf("expected allowWitness=true to add the marker+flag and witness bytes")
	}
}
