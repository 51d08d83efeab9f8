// internal/pagamento/valor.go
package pagamento

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ValorFlexivel é um float64 que aceita, no JSON, número, número entre aspas
// ou null. O backend serializa totalPago/saldoRestante ora como número, ora
// como string; valor não interpretável vira 0.
type ValorFlexivel float64

func (v *ValorFlexivel) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*v = 0
		return nil
	}
	s := string(data)
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(data, &s); err != nil {
			*v = 0
			return nil
		}
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		*v = 0
		return nil
	}
	*v = ValorFlexivel(f)
	return nil
}

// Float devolve o valor como float64 simples.
func (v ValorFlexivel) Float() float64 { return float64(v) }
