// market/instruments.go
package market

// InstrumentMeta describes a tradable contract. Multiplier converts a
// per-unit price move into currency.
type InstrumentMeta struct {
	Name        string
	Description string
	Currency    string
	Multiplier  float64
	TickSize    float64
}

var Instruments = map[string]InstrumentMeta{
	"nk225": {
		Name:        "nk225",
		Description: "Nikkei 225 futures (large)",
		Currency:    "JPY",
		Multiplier:  1000,
		TickSize:    10,
	},
	"nk225m": {
		Name:        "nk225m",
		Description: "Nikkei 225 mini futures",
		Currency:    "JPY",
		Multiplier:  100,
		TickSize:    5,
	},
	"nk225mc": {
		Name:        "nk225mc",
		Description: "Nikkei 225 micro futures",
		Currency:    "JPY",
		Multiplier:  10,
		TickSize:    5,
	},
}

// Multiplier returns the contract multiplier for symbol. Unknown symbols
// trade at face value.
func Multiplier(symbol string) float64 {
	if meta, ok := Instruments[symbol]; ok {
		return meta.Multiplier
	}
	return 1
}
