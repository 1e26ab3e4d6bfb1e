package domain

import (
	"github.com/shopspring/decimal"
)

// Ratio é um valor numérico que pode estar indefinido (denominador zero).
// Quando Valid é falso, Value não deve ser lido.
type Ratio struct {
	Value decimal.Decimal
	Valid bool
}

// NewRatio cria um Ratio definido
func NewRatio(v decimal.Decimal) Ratio {
	return Ratio{Value: v, Valid: true}
}

// UndefinedRatio representa uma razão com denominador zero
func UndefinedRatio() Ratio {
	return Ratio{}
}

// MarshalJSON serializa razões indefinidas como null
func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return []byte("null"), nil
	}
	return r.Value.MarshalJSON()
}

// UnmarshalJSON aceita null ou um decimal
func (r *Ratio) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Ratio{}
		return nil
	}
	if err := r.Value.UnmarshalJSON(data); err != nil {
		return err
	}
	r.Valid = true
	return nil
}

func (r Ratio) String() string {
	if !r.Valid {
		return "undefined"
	}
	return r.Value.String()
}
