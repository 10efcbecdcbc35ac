// Package ledger holds the money and period primitives shared by the auction,
// accrual and payout code. Amounts are integer minor units so that sums and
// differences are exact; only percentage application rounds.
package ledger

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money is an amount in minor units (cents).
type Money int64

const DefaultCurrency = "USD"

var ErrInvalidAmount = errors.New("invalid money amount")

// FromMajor converts whole units (e.g. 175.5) to Money rounding to the nearest cent.
func FromMajor(v float64) Money {
	return Money(math.Round(v * 100))
}

// ParseMoney parses a decimal string with at most two fractional digits.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}

	negative := false
	if s[0] == '-' || s[0] == '+' {
		negative = s[0] == '-'
		s = s[1:]
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" && (!hasFrac || frac == "") {
		return 0, ErrInvalidAmount
	}
	if !digitsOnly(whole) || !digitsOnly(frac) {
		return 0, fmt.Errorf("%w: %q is not a decimal amount", ErrInvalidAmount, s)
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("%w: more than two decimal places in %q", ErrInvalidAmount, s)
	}
	for len(frac) < 2 {
		frac += "0"
	}
	if whole == "" {
		whole = "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil || cents < 0 {
		return 0, fmt.Errorf("%w: bad fraction in %q", ErrInvalidAmount, s)
	}
	if units > math.MaxInt64/100-1 {
		return 0, fmt.Errorf("%w: %q overflows", ErrInvalidAmount, s)
	}

	v := Money(units*100 + cents)
	if negative {
		v = -v
	}

	return v, nil
}

func (m Money) Minor() int64 {
	return int64(m)
}

func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}

	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON renders the amount as a JSON number with two decimals.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts either a JSON number or a quoted decimal string.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = 0
		return nil
	}
	s := string(bytes.Trim(data, `"`))
	if strings.ContainsAny(s, "eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidAmount, err)
		}
		*m = FromMajor(f)
		return nil
	}

	v, err := ParseMoney(s)
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// UnmarshalText lets config files carry amounts as decimal strings ("0.50").
func (m *Money) UnmarshalText(text []byte) error {
	v, err := ParseMoney(string(text))
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// ApplyPercent returns percent% of m rounded half away from zero to one minor unit.
func ApplyPercent(m Money, percent float64) Money {
	return Money(math.Round(float64(m) * percent / 100))
}

func Sum(amounts ...Money) Money {
	var total Money
	for _, a := range amounts {
		total += a
	}

	return total
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
