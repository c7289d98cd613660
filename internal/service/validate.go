package service

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/mmynk/tabsplit/internal/calculator"
)

var (
	ErrNegativeAmount       = errors.New("amounts cannot be negative")
	ErrNonFiniteAmount      = errors.New("amounts must be finite numbers")
	ErrDuplicateParticipant = errors.New("participant IDs must be unique")
	ErrEmptyName            = errors.New("name is required")
)

// validateAmount rejects values the calculator is not defined for.
func validateAmount(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s: %w", field, ErrNonFiniteAmount)
	}
	if value < 0 {
		return fmt.Errorf("%s: %w", field, ErrNegativeAmount)
	}
	return nil
}

// validateCalculation checks participants, fees, items and the optional
// receipt total before they reach the calculator.
func validateCalculation(participants []calculator.Participant, bill calculator.BillDetails, items []calculator.Item, targetTotal *float64) error {
	seen := make(map[string]bool, len(participants))
	for i, p := range participants {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("participant %d: %w", i+1, ErrEmptyName)
		}
		if seen[p.ID] {
			return fmt.Errorf("participant %q: %w", p.ID, ErrDuplicateParticipant)
		}
		seen[p.ID] = true

		if err := validateAmount(fmt.Sprintf("%s ordered amount", p.Name), p.OrderedAmount); err != nil {
			return err
		}
		if err := validateAmount(fmt.Sprintf("%s paid amount", p.Name), p.PaidAmount); err != nil {
			return err
		}
	}

	fees := []struct {
		field string
		value float64
	}{
		{"delivery", bill.Delivery},
		{"tax", bill.Tax},
		{"service", bill.Service},
	}
	for _, fee := range fees {
		if err := validateAmount(fee.field, fee.value); err != nil {
			return err
		}
	}

	for i, item := range items {
		if err := validateAmount(fmt.Sprintf("item %d amount", i+1), item.Amount); err != nil {
			return err
		}
	}

	if targetTotal != nil {
		if err := validateAmount("target total", *targetTotal); err != nil {
			return err
		}
	}
	return nil
}
