package coinselection

import "fmt"

// SelectionError is the closed set of reasons a selection attempt can fail
// with before a valid transaction is assembled. Every failure is a terminal
// result for one attempt - never retried automatically - and carries the
// quantities needed to surface an actionable message to the caller, who
// decides whether to retry with different options or to abort.
//
// The set is sealed: only the error types of this package implement it.
type SelectionError interface {
	error
	selectionFailure()
}

var (
	_ SelectionError = UtxoBalanceInsufficientError{}
	_ SelectionError = UtxoNotFragmentedEnoughError{}
	_ SelectionError = UtxoFullyDepletedError{}
	_ SelectionError = MaxInputCountExceededError{}
	_ SelectionError = InvalidSelectionError{}
)

// UtxoBalanceInsufficientError reports that the total spendable value is
// below the requested payment total, so the attempt cannot proceed no matter
// how the utxo set is fragmented.
type UtxoBalanceInsufficientError struct {
	Available uint64
	Required  uint64
}

func (e UtxoBalanceInsufficientError) Error() string {
	return fmt.Sprintf(
		"utxo balance insufficient: %d available to cover %d requested",
		e.Available, e.Required,
	)
}

func (UtxoBalanceInsufficientError) selectionFailure() {}

// UtxoNotFragmentedEnoughError reports that enough total value exists but the
// utxo set counts fewer entries than the number of requested outputs.
type UtxoNotFragmentedEnoughError struct {
	UtxoCount   uint64
	OutputCount uint64
}

func (e UtxoNotFragmentedEnoughError) Error() string {
	return fmt.Sprintf(
		"utxo set not fragmented enough: %d utxos to cover %d requested outputs",
		e.UtxoCount, e.OutputCount,
	)
}

func (UtxoNotFragmentedEnoughError) selectionFailure() {}

// UtxoFullyDepletedError reports that the utxo set was exhausted during the
// incremental selection before all requested outputs could be funded. Unlike
// the two balance errors above this is a value-distribution problem that can
// only be discovered while the algorithm runs, not upfront.
type UtxoFullyDepletedError struct{}

func (UtxoFullyDepletedError) Error() string {
	return "utxo set fully depleted before covering all requested outputs"
}

func (UtxoFullyDepletedError) selectionFailure() {}

// MaxInputCountExceededError reports that funding the requested outputs needs
// more inputs than the bound returned by Options.MaxInputCount. InputCount is
// the number of inputs that was required.
type MaxInputCountExceededError struct {
	InputCount uint64
}

func (e MaxInputCountExceededError) Error() string {
	return fmt.Sprintf(
		"maximum input count exceeded: selection requires %d inputs",
		e.InputCount,
	)
}

func (MaxInputCountExceededError) selectionFailure() {}

// InvalidSelectionError reports that the backend Validate hook rejected an
// otherwise balance-correct and size-correct selection. The backend error is
// exposed via Unwrap so callers keep errors.Is/As access to their own types.
type InvalidSelectionError struct {
	Err error
}

func (e InvalidSelectionError) Error() string {
	return fmt.Sprintf("selection rejected by backend validation: %v", e.Err)
}

func (e InvalidSelectionError) Unwrap() error {
	return e.Err
}

func (InvalidSelectionError) selectionFailure() {}
