package ledger

// FeeSchedule is the payout fee for one payout method: a percentage of the
// payout total plus a flat amount.
type FeeSchedule struct {
	Percent float64 `toml:"percent" json:"percent"`
	Flat    Money   `toml:"flat" json:"flat"`
}

// Fee never exceeds total and is never negative.
func (f FeeSchedule) Fee(total Money) Money {
	if total <= 0 {
		return 0
	}

	fee := ApplyPercent(total, f.Percent) + f.Flat
	if fee < 0 {
		return 0
	}
	if fee > total {
		return total
	}

	return fee
}
