// Package coinselection defines the result type of a UTXO selection - the
// inputs consumed, the outputs created and the change returned by a
// transaction-building process - together with the balance arithmetic used to
// verify that a selection balances and the closed set of errors a selection
// attempt can fail with.
//
// The package does not implement any selection strategy: an external
// algorithm builds partial Selection values, merges them with Combine, bounds
// its search with Options.MaxInputCount and finally computes the balances and
// calls Options.VerifySelection to get backend sign-off.
//
// All values are immutable once constructed and all functions are pure, so
// independent selection attempts can run concurrently without coordination.
package coinselection

import (
	"fmt"
	"strings"

	"github.com/vulpemventures/go-coinselect/pkg/ledger"
)

// Selection is the outcome of one selection attempt: the utxos consumed to
// fund the transaction, the payment outputs and the change amounts returned
// to the payer. The three lists preserve insertion order and may contain
// duplicates - Combine does not deduplicate, callers merging selections built
// from overlapping utxo sets must deduplicate upfront (ledger.TxIn.Hash gives
// a stable key for that).
type Selection struct {
	Inputs  []ledger.Utxo
	Outputs []ledger.TxOut
	Change  []ledger.Coin
}

// Empty returns the neutral element of Combine: a selection with no inputs,
// no outputs and no change.
func Empty() Selection {
	return Selection{}
}

// Combine merges two selections by concatenating their lists positionally,
// all elements of a preceding those of b. The operands are never mutated nor
// aliased, the result owns freshly allocated lists. Combine is associative
// and has Empty as two-sided identity, so partial selections can be merged
// incrementally in any grouping.
func Combine(a, b Selection) Selection {
	var merged Selection
	if tot := len(a.Inputs) + len(b.Inputs); tot > 0 {
		merged.Inputs = make([]ledger.Utxo, 0, tot)
		merged.Inputs = append(merged.Inputs, a.Inputs...)
		merged.Inputs = append(merged.Inputs, b.Inputs...)
	}
	if tot := len(a.Outputs) + len(b.Outputs); tot > 0 {
		merged.Outputs = make([]ledger.TxOut, 0, tot)
		merged.Outputs = append(merged.Outputs, a.Outputs...)
		merged.Outputs = append(merged.Outputs, b.Outputs...)
	}
	if tot := len(a.Change) + len(b.Change); tot > 0 {
		merged.Change = make([]ledger.Coin, 0, tot)
		merged.Change = append(merged.Change, a.Change...)
		merged.Change = append(merged.Change, b.Change...)
	}
	return merged
}

// String returns a human-readable rendering of the selection for logging and
// debugging. The format is not meant to be parsed and comes with no
// compatibility guarantee.
func (s Selection) String() string {
	b := strings.Builder{}
	b.WriteString("inputs:\n")
	for _, in := range s.Inputs {
		fmt.Fprintf(&b, "  %s\n", in)
	}
	b.WriteString("outputs:\n")
	for _, out := range s.Outputs {
		fmt.Fprintf(&b, "  %s\n", out)
	}
	b.WriteString("change:\n")
	for _, c := range s.Change {
		fmt.Fprintf(&b, "  %s\n", c)
	}
	return b.String()
}
