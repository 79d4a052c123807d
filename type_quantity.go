package tradepulse

import "github.com/shopspring/decimal"

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Quantity represents a number of shares. Fractional shares are the norm in
// this ledger, so the value is kept as an exact decimal.
type Quantity struct {
	value decimal.Decimal
}

func Q[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

func (q Quantity) Equal(p Quantity) bool    { return q.value.Equal(p.value) }
func (q Quantity) LessThan(p Quantity) bool { return q.value.LessThan(p.value) }
func (q Quantity) Add(p Quantity) Quantity  { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Sub(p Quantity) Quantity  { return Quantity{value: q.value.Sub(p.value)} }
func (q Quantity) IsPositive() bool         { return q.value.IsPositive() }
func (q Quantity) IsZero() bool             { return q.value.IsZero() }
func (q Quantity) String() string           { return q.value.String() }

// StringFixed renders the quantity with a fixed number of decimal places,
// the way share counts are displayed in reports ("1.506").
func (q Quantity) StringFixed(places int32) string { return q.value.StringFixed(places) }

func (q Quantity) MarshalJSON() ([]byte, error) {
	return q.value.MarshalJSON()
}

func (q *Quantity) UnmarshalJSON(decimalBytes []byte) error {
	return q.value.UnmarshalJSON(decimalBytes)
}
