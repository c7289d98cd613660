package calculator

import "math"

// MatchTolerance is how far two bill totals may differ and still be treated as equal.
const MatchTolerance = 0.1

// Summary describes the bill as a whole.
type Summary struct {
	TotalOrdered float64 `json:"totalOrdered"`
	TotalBill    float64 `json:"totalBill"` // Ordered items plus all shared fees
	TotalPaid    float64 `json:"totalPaid"`

	// Shortfall is TotalBill - TotalPaid. A positive value means the group
	// has not collected enough to cover the bill; settlements cannot fix that.
	Shortfall float64 `json:"shortfall"`

	PaidMatched   bool     `json:"paidMatched"`
	TargetTotal   *float64 `json:"targetTotal,omitempty"` // Total printed on the receipt, if known
	TargetMatched bool     `json:"targetMatched"`
}

// Underfunded reports whether the group paid less than the bill, beyond MatchTolerance.
func (s Summary) Underfunded() bool {
	return s.Shortfall >= MatchTolerance
}

// Summarize totals the bill and checks it against what was paid and,
// when targetTotal is non-nil, against the receipt total.
func Summarize(participants []Participant, bill BillDetails, targetTotal *float64) Summary {
	var s Summary
	for _, p := range participants {
		s.TotalOrdered += p.OrderedAmount
		s.TotalPaid += p.PaidAmount
	}
	s.TotalBill = s.TotalOrdered + bill.Delivery + bill.Tax + bill.Service
	s.Shortfall = s.TotalBill - s.TotalPaid
	s.PaidMatched = math.Abs(s.TotalPaid-s.TotalBill) < MatchTolerance

	if targetTotal != nil {
		target := *targetTotal
		s.TargetTotal = &target
		s.TargetMatched = math.Abs(target-s.TotalBill) < MatchTolerance
	}
	return s
}
