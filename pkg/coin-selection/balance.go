package coinselection

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrBalanceOverflow is returned by the balance functions when the summed
// amounts exceed the uint64 range. Coin amounts come from external chain data
// so the total must be rejectable by the caller instead of wrapping around
// silently.
var ErrBalanceOverflow = errors.New("total coin amount overflows the uint64 range")

// InputBalance returns the total value funded by the selection inputs.
func (s Selection) InputBalance() (uint64, error) {
	total := uint64(0)
	for _, in := range s.Inputs {
		sum, err := checkedAdd(total, in.TxOut.Coin().Uint64())
		if err != nil {
			return 0, err
		}
		total = sum
	}
	return total, nil
}

// OutputBalance returns the total value paid to the selection outputs.
func (s Selection) OutputBalance() (uint64, error) {
	total := uint64(0)
	for _, out := range s.Outputs {
		sum, err := checkedAdd(total, out.Coin().Uint64())
		if err != nil {
			return 0, err
		}
		total = sum
	}
	return total, nil
}

// ChangeBalance returns the total value returned to the payer as change.
func (s Selection) ChangeBalance() (uint64, error) {
	total := uint64(0)
	for _, c := range s.Change {
		sum, err := checkedAdd(total, c.Uint64())
		if err != nil {
			return 0, err
		}
		total = sum
	}
	return total, nil
}

// FeeBalance returns the implicit fee of the selection, ie. the input balance
// minus output and change balances.
//
// The selection must have already passed the balance-sufficiency checks of
// the algorithm that built it: if outputs plus change exceed the inputs the
// subtraction would underflow, which is a violation of that contract and
// makes FeeBalance panic instead of returning a wrapped huge amount.
func (s Selection) FeeBalance() (uint64, error) {
	inTotal, err := s.InputBalance()
	if err != nil {
		return 0, err
	}
	outTotal, err := s.OutputBalance()
	if err != nil {
		return 0, err
	}
	changeTotal, err := s.ChangeBalance()
	if err != nil {
		return 0, err
	}
	spentTotal, err := checkedAdd(outTotal, changeTotal)
	if err != nil {
		return 0, err
	}
	if spentTotal > inTotal {
		panic(fmt.Sprintf(
			"coinselection: fee underflow: outputs and change (%d) exceed "+
				"inputs (%d), the selection never passed balance validation",
			spentTotal, inTotal,
		))
	}
	return inTotal - spentTotal, nil
}

func checkedAdd(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrBalanceOverflow
	}
	return sum, nil
}
