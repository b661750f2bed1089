package coinselection_test

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"

	coinselection "github.com/vulpemventures/go-coinselect/pkg/coin-selection"
	"github.com/vulpemventures/go-coinselect/pkg/ledger"
)

var testAddresses = []string{
	"addr1qxck6ezhwsrfm7h2sz9z78rzlqzvqxpv29f3xwc0v2tq6av0v3",
	"addr1q9wlvz5hd53q2me0mcsdhpwe2jc2jkvkt5jdf6y9r6tggu94hw",
	"addr1qy352euf40x77qfrg4znr5zn4qjw5zjjqrjwle5r3mgkyqvpgc",
}

func randomSelection(numIns, numOuts, numChange int) coinselection.Selection {
	return coinselection.Selection{
		Inputs:  randomUtxos(numIns),
		Outputs: randomOutputs(numOuts),
		Change:  randomChange(numChange),
	}
}

func randomUtxos(num int) []ledger.Utxo {
	utxos := make([]ledger.Utxo, 0, num)
	for i := 0; i < num; i++ {
		utxos = append(utxos, ledger.Utxo{
			TxIn: ledger.TxIn{
				TxID: randomHex(32),
				VOut: randomVout(),
			},
			TxOut: ledger.TxOut{
				Address: testAddresses[i%3],
				Value:   ledger.Coin(randomValue()),
			},
		})
	}
	return utxos
}

func randomOutputs(num int) []ledger.TxOut {
	outs := make([]ledger.TxOut, 0, num)
	for i := 0; i < num; i++ {
		outs = append(outs, ledger.TxOut{
			Address: testAddresses[i%3],
			Value:   ledger.Coin(randomValue()),
		})
	}
	return outs
}

func randomChange(num int) []ledger.Coin {
	change := make([]ledger.Coin, 0, num)
	for i := 0; i < num; i++ {
		change = append(change, ledger.Coin(randomValue()))
	}
	return change
}

func randomHex(len int) string {
	return hex.EncodeToString(randomBytes(len))
}

func randomVout() uint32 {
	return uint32(randomIntInRange(0, 15))
}

func randomValue() uint64 {
	return uint64(randomIntInRange(1000000, 10000000000))
}

func randomBytes(len int) []byte {
	b := make([]byte, len)
	rand.Read(b)
	return b
}

func randomIntInRange(min, max int) int {
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(max)))
	return int(int(n.Int64())) + min
}
