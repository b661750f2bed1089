package coinselection_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	coinselection "github.com/vulpemventures/go-coinselect/pkg/coin-selection"
	"github.com/vulpemventures/go-coinselect/pkg/ledger"
)

func TestCombine(t *testing.T) {
	t.Parallel()

	t.Run("empty is a two-sided identity", func(t *testing.T) {
		sel := randomSelection(2, 3, 1)

		left := coinselection.Combine(coinselection.Empty(), sel)
		right := coinselection.Combine(sel, coinselection.Empty())
		require.Equal(t, sel, left)
		require.Equal(t, sel, right)

		empty := coinselection.Combine(coinselection.Empty(), coinselection.Empty())
		require.Equal(t, coinselection.Empty(), empty)
	})

	t.Run("associative", func(t *testing.T) {
		a := randomSelection(1, 2, 0)
		b := randomSelection(3, 0, 2)
		c := randomSelection(2, 1, 1)

		leftFirst := coinselection.Combine(coinselection.Combine(a, b), c)
		rightFirst := coinselection.Combine(a, coinselection.Combine(b, c))
		require.Equal(t, leftFirst, rightFirst)
	})

	t.Run("concatenates positionally preserving order", func(t *testing.T) {
		a := randomSelection(1, 1, 1)
		b := randomSelection(2, 1, 0)

		merged := coinselection.Combine(a, b)
		require.Len(t, merged.Inputs, 3)
		require.Len(t, merged.Outputs, 2)
		require.Len(t, merged.Change, 1)
		require.Equal(t, append(append([]ledger.Utxo{}, a.Inputs...), b.Inputs...), merged.Inputs)
		require.Equal(t, append(append([]ledger.TxOut{}, a.Outputs...), b.Outputs...), merged.Outputs)
		require.Equal(t, a.Change, merged.Change)
	})

	t.Run("does not deduplicate", func(t *testing.T) {
		sel := randomSelection(2, 1, 1)

		merged := coinselection.Combine(sel, sel)
		require.Len(t, merged.Inputs, 4)
		require.Equal(t, merged.Inputs[:2], merged.Inputs[2:])
	})

	t.Run("does not mutate nor alias its operands", func(t *testing.T) {
		a := randomSelection(2, 2, 1)
		b := randomSelection(1, 1, 1)
		wantFirst := a.Inputs[0]

		merged := coinselection.Combine(a, b)
		merged.Inputs[0] = ledger.Utxo{}
		merged.Change[0] = 0
		require.Equal(t, wantFirst, a.Inputs[0])
		require.Len(t, a.Inputs, 2)
		require.Len(t, b.Inputs, 1)
	})
}

func TestSelectionString(t *testing.T) {
	t.Parallel()

	sel := coinselection.Selection{
		Inputs: []ledger.Utxo{
			{
				TxIn:  ledger.TxIn{TxID: "0101", VOut: 1},
				TxOut: ledger.TxOut{Address: "addrA", Value: 100},
			},
		},
		Outputs: []ledger.TxOut{{Address: "addrB", Value: 60}},
		Change:  []ledger.Coin{30},
	}

	dump := sel.String()
	require.Contains(t, dump, "inputs:")
	require.Contains(t, dump, "{0101: 1} (~ {addrA: 100})")
	require.Contains(t, dump, "outputs:")
	require.Contains(t, dump, "{addrB: 60}")
	require.Contains(t, dump, "change:")
	require.Contains(t, dump, "30")

	inputsAt := strings.Index(dump, "inputs:")
	outputsAt := strings.Index(dump, "outputs:")
	changeAt := strings.Index(dump, "change:")
	require.True(t, inputsAt < outputsAt && outputsAt < changeAt)
}
