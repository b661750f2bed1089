package coinselection

// Options bundles the two hooks a caller injects into a selection run. Both
// hooks must be pure and side-effect free: the surrounding algorithm may
// parallelize its search and invoke them concurrently.
type Options struct {
	// MaxInputCount maps the number of requested outputs to the maximum
	// number of inputs the backend accepts in a single transaction. It must
	// be total over the uint8 domain, implementations should saturate
	// instead of wrapping for output counts near 255. A nil function means
	// no bound.
	MaxInputCount func(outputCount uint8) uint8

	// Validate is the backend sign-off on a completed selection, invoked
	// after the balance checks. It can enforce whatever the backend needs -
	// fee minimums, output count limits, min-utxo-value rules - and any
	// error it returns is surfaced wrapped into InvalidSelectionError. A nil
	// function accepts every selection.
	Validate func(Selection) error
}

// VerifySelection runs the backend Validate hook on the given selection and
// wraps any rejection into an InvalidSelectionError.
func (o Options) VerifySelection(s Selection) error {
	if o.Validate == nil {
		return nil
	}
	if err := o.Validate(s); err != nil {
		return InvalidSelectionError{Err: err}
	}
	return nil
}
