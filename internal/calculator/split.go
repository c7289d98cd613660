// Package calculator implements the bill split and settlement engine.
// Every function here is pure: inputs are never mutated and no state is
// kept between calls, so callers may run calculations concurrently.
package calculator

// Participant is one person sharing the bill.
type Participant struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	OrderedAmount float64 `json:"orderedAmount"` // Cost of items attributed to this person
	PaidAmount    float64 `json:"paidAmount"`    // What this person actually put toward the bill
	IsDefault     bool    `json:"isDefault,omitempty"`
}

// BillDetails holds the shared fees that are not tied to any single order.
type BillDetails struct {
	Delivery float64 `json:"delivery"`
	Tax      float64 `json:"tax"`
	Service  float64 `json:"service"`
}

// ParticipantResult is a participant together with their computed share of the bill.
type ParticipantResult struct {
	Participant

	SubtotalShare float64 `json:"subtotalShare"`
	TaxShare      float64 `json:"taxShare"`
	ServiceShare  float64 `json:"serviceShare"`
	DeliveryShare float64 `json:"deliveryShare"`
	TotalOwed     float64 `json:"totalOwed"`  // What they should have paid
	NetBalance    float64 `json:"netBalance"` // Positive = gets money back, Negative = owes money
}

// CalculateSplits computes each participant's share of the bill.
//
// Tax and service are split proportionally to each participant's share of the
// total ordered amount. Delivery is a per-trip cost and is split equally.
// If nobody ordered anything the proportional ratio is 0 for everyone.
//
// Results are returned in input order. An empty participant list yields an
// empty result.
func CalculateSplits(participants []Participant, bill BillDetails) []ParticipantResult {
	count := len(participants)
	if count == 0 {
		return []ParticipantResult{}
	}

	var totalOrdered float64
	for _, p := range participants {
		totalOrdered += p.OrderedAmount
	}

	deliveryShare := bill.Delivery / float64(count)

	results := make([]ParticipantResult, count)
	for i, p := range participants {
		var shareRatio float64
		if totalOrdered > 0 {
			shareRatio = p.OrderedAmount / totalOrdered
		}

		taxShare := bill.Tax * shareRatio
		serviceShare := bill.Service * shareRatio
		totalOwed := p.OrderedAmount + taxShare + serviceShare + deliveryShare

		results[i] = ParticipantResult{
			Participant:   p,
			SubtotalShare: p.OrderedAmount,
			TaxShare:      taxShare,
			ServiceShare:  serviceShare,
			DeliveryShare: deliveryShare,
			TotalOwed:     totalOwed,
			NetBalance:    p.PaidAmount - totalOwed,
		}
	}

	return results
}
