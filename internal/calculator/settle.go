package calculator

import (
	"cmp"
	"math"
	"slices"
)

// SettledTolerance is the balance magnitude below which a participant is
// considered settled. It is used both to classify debtors and creditors and
// to decide when the matching loop moves on.
const SettledTolerance = 0.01

// Settlement is a single recommended transfer from a debtor to a creditor.
type Settlement struct {
	From   string  `json:"from"` // Debtor name
	To     string  `json:"to"`   // Creditor name
	Amount float64 `json:"amount"`
}

// balance is a working copy of one participant's remaining net balance.
type balance struct {
	name   string
	amount float64
}

// CalculateSettlements produces a list of transfers that settles all balances.
//
// Algorithm:
//   - Debtors have NetBalance < -SettledTolerance, creditors > SettledTolerance
//   - Debtors are sorted most negative first, creditors largest first
//   - Greedy matching: each step moves min(credit, |debt|) from the current
//     debtor to the current creditor, then advances whichever side is settled
//
// The number of settlements is at most debtors+creditors-1. Equal balances keep
// their input order. If the group as a whole is short of funds the remaining
// debt is left unmatched; no settlement is invented to cover it.
func CalculateSettlements(results []ParticipantResult) []Settlement {
	var debtors, creditors []balance
	for _, r := range results {
		switch {
		case r.NetBalance < -SettledTolerance:
			debtors = append(debtors, balance{name: r.Name, amount: r.NetBalance})
		case r.NetBalance > SettledTolerance:
			creditors = append(creditors, balance{name: r.Name, amount: r.NetBalance})
		}
	}

	slices.SortStableFunc(debtors, func(a, b balance) int {
		return cmp.Compare(a.amount, b.amount)
	})
	slices.SortStableFunc(creditors, func(a, b balance) int {
		return cmp.Compare(b.amount, a.amount)
	})

	settlements := []Settlement{}
	i, j := 0, 0 // creditor, debtor
	for i < len(creditors) && j < len(debtors) {
		creditor := &creditors[i]
		debtor := &debtors[j]

		amount := math.Min(creditor.amount, math.Abs(debtor.amount))
		if amount > 0 {
			settlements = append(settlements, Settlement{
				From:   debtor.name,
				To:     creditor.name,
				Amount: RoundCents(amount),
			})
		}

		creditor.amount -= amount
		debtor.amount += amount

		if creditor.amount < SettledTolerance {
			i++
		}
		if debtor.amount > -SettledTolerance {
			j++
		}
	}

	return settlements
}
