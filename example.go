package main

import (
	"errors"
	"sort"

	log "github.com/sirupsen/logrus"
	coinselection "github.com/vulpemventures/go-coinselect/pkg/coin-selection"
	"github.com/vulpemventures/go-coinselect/pkg/ledger"
)

// Runnable demo of the contract between the library and an external selection
// algorithm: a naive largest-first accumulation over a fixture utxo set,
// bound by Options.MaxInputCount and finished off with the balance
// projections and the backend validation hook. The strategy below is a demo
// consumer, not part of the library API.

// demoFee is a flat amount set aside for the network fee. Real backends
// derive it from the serialized tx size, which is out of scope here.
const demoFee uint64 = 200000

func selectForPayment(
	utxos []ledger.Utxo, payments []ledger.TxOut, opts coinselection.Options,
) (coinselection.Selection, error) {
	available, err := (coinselection.Selection{Inputs: utxos}).InputBalance()
	if err != nil {
		return coinselection.Empty(), err
	}
	required, err := (coinselection.Selection{Outputs: payments}).OutputBalance()
	if err != nil {
		return coinselection.Empty(), err
	}
	if available < required {
		return coinselection.Empty(), coinselection.UtxoBalanceInsufficientError{
			Available: available, Required: required,
		}
	}
	if len(utxos) < len(payments) {
		return coinselection.Empty(), coinselection.UtxoNotFragmentedEnoughError{
			UtxoCount: uint64(len(utxos)), OutputCount: uint64(len(payments)),
		}
	}

	maxInputs := len(utxos)
	if opts.MaxInputCount != nil {
		maxInputs = int(opts.MaxInputCount(uint8(len(payments))))
	}

	sorted := make([]ledger.Utxo, len(utxos))
	copy(sorted, utxos)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Value() > sorted[j].Value()
	})

	target := required + demoFee
	sel := coinselection.Selection{Outputs: payments}
	funded := uint64(0)
	for _, utxo := range sorted {
		if funded >= target {
			break
		}
		if len(sel.Inputs)+1 > maxInputs {
			return coinselection.Empty(), coinselection.MaxInputCountExceededError{
				InputCount: uint64(len(sel.Inputs) + 1),
			}
		}
		sel = coinselection.Combine(sel, coinselection.Selection{
			Inputs: []ledger.Utxo{utxo},
		})
		funded += utxo.Value().Uint64()
		log.WithFields(log.Fields{
			"utxo":   utxo.String(),
			"funded": funded,
			"target": target,
		}).Debug("added input to selection")
	}
	if funded < target {
		return coinselection.Empty(), coinselection.UtxoFullyDepletedError{}
	}

	if change := funded - target; change > 0 {
		sel = coinselection.Combine(sel, coinselection.Selection{
			Change: []ledger.Coin{ledger.Coin(change)},
		})
	}

	if err := opts.VerifySelection(sel); err != nil {
		return coinselection.Empty(), err
	}
	return sel, nil
}

func main() {
	log.SetLevel(log.DebugLevel)

	utxos := []ledger.Utxo{
		{
			TxIn: ledger.TxIn{
				TxID: "7f2e1c0b6a5d4e3f2a1b0c9d8e7f6a5b4c3d2e1f0a9b8c7d6e5f4a3b2c1d0e9f",
				VOut: 0,
			},
			TxOut: ledger.TxOut{Address: "addr1qxck6ezhwsrfm7h2sz9z78rzlqzvqxpv2", Value: 1000000},
		},
		{
			TxIn: ledger.TxIn{
				TxID: "3b9d8c7e6f5a4b3c2d1e0f9a8b7c6d5e4f3a2b1c0d9e8f7a6b5c4d3e2f1a0b9c",
				VOut: 1,
			},
			TxOut: ledger.TxOut{Address: "addr1q9wlvz5hd53q2me0mcsdhpwe2jc2jkvkt5", Value: 600000},
		},
		{
			TxIn: ledger.TxIn{
				TxID: "c4d5e6f708192a3b4c5d6e7f8091a2b3c4d5e6f708192a3b4c5d6e7f8091a2b3",
				VOut: 0,
			},
			TxOut: ledger.TxOut{Address: "addr1qy352euf40x77qfrg4znr5zn4qjw5zjjqr", Value: 400000},
		},
		{
			TxIn: ledger.TxIn{
				TxID: "9a8b7c6d5e4f3a2b1c0d9e8f7a6b5c4d3e2f1a0b9c8d7e6f5a4b3c2d1e0f9a8b",
				VOut: 2,
			},
			TxOut: ledger.TxOut{Address: "addr1qxck6ezhwsrfm7h2sz9z78rzlqzvqxpv2", Value: 250000},
		},
	}
	payments := []ledger.TxOut{
		{Address: "addr1qful7q2mylcz9nfspr8jqph6t8zwgdm7f9", Value: 700000},
		{Address: "addr1qat27tk7llyxkzugnytmjeq3cta9kp2snq", Value: 500000},
	}

	opts := coinselection.Options{
		MaxInputCount: func(outputCount uint8) uint8 {
			if outputCount > 25 {
				return 255
			}
			return 10 * outputCount
		},
		Validate: func(s coinselection.Selection) error {
			if len(s.Outputs) > 16 {
				return errors.New("too many outputs")
			}
			fee, err := s.FeeBalance()
			if err != nil {
				return err
			}
			if fee < 100000 {
				return errors.New("fee below minimum")
			}
			return nil
		},
	}

	sel, err := selectForPayment(utxos, payments, opts)
	if err != nil {
		log.WithError(err).Fatal("coin selection failed")
	}

	fee, err := sel.FeeBalance()
	if err != nil {
		log.WithError(err).Fatal("failed to compute fee")
	}

	log.WithFields(log.Fields{
		"num_inputs":  len(sel.Inputs),
		"num_outputs": len(sel.Outputs),
		"num_change":  len(sel.Change),
		"fee":         fee,
	}).Info("coin selection completed")
	log.Debug("\n" + sel.String())
}
