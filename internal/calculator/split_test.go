package calculator

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestCalculateSplits(t *testing.T) {
	tests := []struct {
		name         string
		participants []Participant
		bill         BillDetails
		validateFunc func(t *testing.T, results []ParticipantResult)
	}{
		{
			name: "two people, no fees",
			participants: []Participant{
				{ID: "a", Name: "A", OrderedAmount: 30, PaidAmount: 0},
				{ID: "b", Name: "B", OrderedAmount: 10, PaidAmount: 40},
			},
			bill: BillDetails{},
			validateFunc: func(t *testing.T, results []ParticipantResult) {
				if results[0].TotalOwed != 30 {
					t.Errorf("A totalOwed = %v, want 30", results[0].TotalOwed)
				}
				if results[1].TotalOwed != 10 {
					t.Errorf("B totalOwed = %v, want 10", results[1].TotalOwed)
				}
				if results[0].NetBalance != -30 {
					t.Errorf("A netBalance = %v, want -30", results[0].NetBalance)
				}
				if results[1].NetBalance != 30 {
					t.Errorf("B netBalance = %v, want 30", results[1].NetBalance)
				}
			},
		},
		{
			name: "three equal orders with fees",
			participants: []Participant{
				{ID: "a", Name: "A", OrderedAmount: 10, PaidAmount: 10},
				{ID: "b", Name: "B", OrderedAmount: 10, PaidAmount: 10},
				{ID: "c", Name: "C", OrderedAmount: 10, PaidAmount: 10},
			},
			bill: BillDetails{Delivery: 3, Tax: 3, Service: 3},
			validateFunc: func(t *testing.T, results []ParticipantResult) {
				// Each: ratio 1/3, tax 1, service 1, delivery 1, owed 13, net -3
				for _, r := range results {
					if math.Abs(r.TaxShare-1) > 1e-9 {
						t.Errorf("%s taxShare = %v, want 1", r.Name, r.TaxShare)
					}
					if math.Abs(r.ServiceShare-1) > 1e-9 {
						t.Errorf("%s serviceShare = %v, want 1", r.Name, r.ServiceShare)
					}
					if r.DeliveryShare != 1 {
						t.Errorf("%s deliveryShare = %v, want 1", r.Name, r.DeliveryShare)
					}
					if math.Abs(r.TotalOwed-13) > 1e-9 {
						t.Errorf("%s totalOwed = %v, want 13", r.Name, r.TotalOwed)
					}
					if math.Abs(r.NetBalance+3) > 1e-9 {
						t.Errorf("%s netBalance = %v, want -3", r.Name, r.NetBalance)
					}
				}
			},
		},
		{
			name: "proportional tax and service",
			participants: []Participant{
				{ID: "alice", Name: "Alice", OrderedAmount: 20, PaidAmount: 33},
				{ID: "bob", Name: "Bob", OrderedAmount: 10},
			},
			bill: BillDetails{Tax: 3, Service: 1.5},
			validateFunc: func(t *testing.T, results []ParticipantResult) {
				// Alice: 2/3 of fees, Bob: 1/3
				alice, bob := results[0], results[1]
				if math.Abs(alice.TaxShare-2) > 0.01 {
					t.Errorf("Alice tax = %v, want 2", alice.TaxShare)
				}
				if math.Abs(alice.ServiceShare-1) > 0.01 {
					t.Errorf("Alice service = %v, want 1", alice.ServiceShare)
				}
				if math.Abs(bob.TaxShare-1) > 0.01 {
					t.Errorf("Bob tax = %v, want 1", bob.TaxShare)
				}
				if math.Abs(bob.TotalOwed-11.5) > 0.01 {
					t.Errorf("Bob total = %v, want 11.5", bob.TotalOwed)
				}
				if math.Abs(alice.NetBalance-10) > 0.01 {
					t.Errorf("Alice net = %v, want 10", alice.NetBalance)
				}
			},
		},
		{
			name: "zero total ordered gives zero proportional shares",
			participants: []Participant{
				{ID: "a", Name: "A", PaidAmount: 5},
				{ID: "b", Name: "B"},
			},
			bill: BillDetails{Delivery: 4, Tax: 10, Service: 2},
			validateFunc: func(t *testing.T, results []ParticipantResult) {
				for _, r := range results {
					if r.TaxShare != 0 || r.ServiceShare != 0 {
						t.Errorf("%s tax/service = %v/%v, want 0/0", r.Name, r.TaxShare, r.ServiceShare)
					}
					if r.DeliveryShare != 2 {
						t.Errorf("%s deliveryShare = %v, want 2", r.Name, r.DeliveryShare)
					}
				}
				if results[0].NetBalance != 3 {
					t.Errorf("A netBalance = %v, want 3", results[0].NetBalance)
				}
			},
		},
		{
			name:         "all zero",
			participants: []Participant{{ID: "a", Name: "A"}},
			bill:         BillDetails{},
			validateFunc: func(t *testing.T, results []ParticipantResult) {
				r := results[0]
				if r.TotalOwed != 0 || r.NetBalance != 0 || r.TaxShare != 0 || r.DeliveryShare != 0 {
					t.Errorf("expected all-zero result, got %+v", r)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := CalculateSplits(tt.participants, tt.bill)
			if len(results) != len(tt.participants) {
				t.Fatalf("got %d results, want %d", len(results), len(tt.participants))
			}
			for i, r := range results {
				if r.Participant != tt.participants[i] {
					t.Errorf("result %d participant = %+v, want %+v", i, r.Participant, tt.participants[i])
				}
				if r.SubtotalShare != r.OrderedAmount {
					t.Errorf("result %d subtotalShare = %v, want %v", i, r.SubtotalShare, r.OrderedAmount)
				}
			}
			tt.validateFunc(t, results)
		})
	}
}

func TestCalculateSplits_Empty(t *testing.T) {
	results := CalculateSplits(nil, BillDetails{Delivery: 5, Tax: 2})
	if results == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestCalculateSplits_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))

	for round := 0; round < 200; round++ {
		participants := randomParticipants(rng, 1+rng.IntN(8))
		bill := BillDetails{
			Delivery: cents(rng, 20),
			Tax:      cents(rng, 30),
			Service:  cents(rng, 30),
		}
		// Force a duplicate order so proportionality has something to check
		if len(participants) > 1 {
			participants[1].OrderedAmount = participants[0].OrderedAmount
		}
		original := slices.Clone(participants)

		results := CalculateSplits(participants, bill)

		if !slices.Equal(participants, original) {
			t.Fatalf("round %d: input participants were mutated", round)
		}

		var totalPaid, totalOrdered, totalNet float64
		for _, p := range participants {
			totalPaid += p.PaidAmount
			totalOrdered += p.OrderedAmount
		}
		for _, r := range results {
			totalNet += r.NetBalance
			if r.DeliveryShare != bill.Delivery/float64(len(participants)) {
				t.Errorf("round %d: %s deliveryShare = %v, want %v", round, r.Name, r.DeliveryShare, bill.Delivery/float64(len(participants)))
			}
		}

		want := totalPaid - totalOrdered - bill.Delivery - bill.Tax - bill.Service
		if math.Abs(totalNet-want) > 1e-6 {
			t.Errorf("round %d: sum(netBalance) = %v, want %v", round, totalNet, want)
		}

		if len(results) > 1 {
			if results[0].TaxShare != results[1].TaxShare || results[0].ServiceShare != results[1].ServiceShare {
				t.Errorf("round %d: equal orders got different shares: %+v vs %+v", round, results[0], results[1])
			}
		}

		again := CalculateSplits(participants, bill)
		if !slices.Equal(results, again) {
			t.Errorf("round %d: repeated call returned different results", round)
		}
	}
}

func randomParticipants(rng *rand.Rand, n int) []Participant {
	participants := make([]Participant, n)
	for i := range participants {
		name := string(rune('A' + i))
		participants[i] = Participant{
			ID:            name,
			Name:          name,
			OrderedAmount: cents(rng, 80),
			PaidAmount:    cents(rng, 120),
		}
	}
	return participants
}

// cents returns a random amount in [0, limit) with two decimal places.
func cents(rng *rand.Rand, limit int) float64 {
	return float64(rng.IntN(limit*100)) / 100
}
