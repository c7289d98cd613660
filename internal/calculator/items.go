package calculator

// Item represents a single line item on the bill
type Item struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Amount      float64  `json:"amount"`
	AssignedTo  []string `json:"assignedTo"` // Participant IDs sharing this item
}

// AssignItems derives ordered amounts from item assignments.
// Each item is split equally among everyone it is assigned to. A participant
// with a non-zero item share has their OrderedAmount replaced by it; everyone
// else keeps the amount they entered by hand.
//
// Every listed assignee counts toward the divisor, including unknown IDs and
// repeats, but a participant receives at most one share of each item. The
// remainder is left unassigned.
func AssignItems(participants []Participant, items []Item) []Participant {
	shared := make(map[string]float64, len(participants))
	for _, item := range items {
		if len(item.AssignedTo) == 0 {
			continue
		}
		perPerson := item.Amount / float64(len(item.AssignedTo))
		seen := make(map[string]bool, len(item.AssignedTo))
		for _, id := range item.AssignedTo {
			if seen[id] {
				continue
			}
			seen[id] = true
			shared[id] += perPerson
		}
	}

	out := make([]Participant, len(participants))
	for i, p := range participants {
		if total := shared[p.ID]; total > 0 {
			p.OrderedAmount = total
		}
		out[i] = p
	}
	return out
}
