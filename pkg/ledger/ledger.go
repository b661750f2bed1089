// Package ledger provides the minimal ledger types consumed by the coin
// selection core: an unsigned coin amount, transaction outpoints and outputs,
// and the pairing of the two that represents a spendable UTXO.
package ledger

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
)

// Coin is an indivisible amount of the ledger's native asset. The unsigned
// representation guarantees non-negativity; no upper bound is enforced beyond
// the uint64 range.
type Coin uint64

// Uint64 returns the numeric projection of the amount.
func (c Coin) Uint64() uint64 {
	return uint64(c)
}

func (c Coin) String() string {
	return fmt.Sprintf("%d", uint64(c))
}

// TxIn is the outpoint of an unspent transaction output, composed by the hex
// txid and the output index.
type TxIn struct {
	TxID string
	VOut uint32
}

// Hash returns a compact unique identifier of the outpoint. Callers combining
// selections built from overlapping sources can use it to deduplicate their
// utxo sets upfront.
func (in TxIn) Hash() string {
	buf, _ := hex.DecodeString(in.TxID)
	buf = append(buf, byte(in.VOut))
	return hex.EncodeToString(btcutil.Hash160(buf))
}

func (in TxIn) String() string {
	return fmt.Sprintf("{%s: %d}", in.TxID, in.VOut)
}

// TxOut is a transaction output paying a certain amount to an address. The
// address is treated as an opaque string, the coin selection core only ever
// reads the amount.
type TxOut struct {
	Address string
	Value   Coin
}

// Coin returns the amount carried by the output.
func (out TxOut) Coin() Coin {
	return out.Value
}

func (out TxOut) String() string {
	return fmt.Sprintf("{%s: %d}", out.Address, out.Value)
}

// Utxo pairs an outpoint with the output it refers to. It serves both as an
// entry of the spendable set given to a selection algorithm and as an input
// of the resulting selection.
type Utxo struct {
	TxIn  TxIn
	TxOut TxOut
}

// Value returns the amount funded by the utxo.
func (u Utxo) Value() Coin {
	return u.TxOut.Value
}

func (u Utxo) String() string {
	return fmt.Sprintf("%s (~ %s)", u.TxIn, u.TxOut)
}
