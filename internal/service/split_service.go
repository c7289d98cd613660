package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mmynk/tabsplit/internal/api"
	"github.com/mmynk/tabsplit/internal/calculator"
	"github.com/mmynk/tabsplit/internal/metrics"
	"github.com/mmynk/tabsplit/internal/storage"
)

var _ api.SplitServiceHandler = (*SplitService)(nil)

// SplitService implements the Connect SplitService
type SplitService struct {
	friends storage.FriendStore
	metrics *metrics.Metrics
}

// NewSplitService creates a new SplitService backed by the given friends roster.
func NewSplitService(friends storage.FriendStore, m *metrics.Metrics) *SplitService {
	return &SplitService{friends: friends, metrics: m}
}

// withIDs copies participants, giving a fresh UUID to any without an ID.
func withIDs(participants []calculator.Participant) []calculator.Participant {
	out := make([]calculator.Participant, len(participants))
	for i, p := range participants {
		if p.ID == "" {
			p.ID = uuid.New().String()
		}
		p.Name = strings.TrimSpace(p.Name)
		out[i] = p
	}
	return out
}

// addDefaultFriends appends saved friends who are not already on the bill.
// Matching is by ID or by case-insensitive name.
func (s *SplitService) addDefaultFriends(ctx context.Context, participants []calculator.Participant) ([]calculator.Participant, error) {
	friends, err := s.friends.ListFriends(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load friends: %w", err)
	}

	ids := make(map[string]bool, len(participants))
	names := make(map[string]bool, len(participants))
	for _, p := range participants {
		ids[p.ID] = true
		names[strings.ToLower(p.Name)] = true
	}

	for _, f := range friends {
		if ids[f.ID] || names[strings.ToLower(f.Name)] {
			continue
		}
		participants = append(participants, calculator.Participant{
			ID:        f.ID,
			Name:      f.Name,
			IsDefault: true,
		})
	}
	return participants, nil
}

// Calculate splits a bill and returns each participant's share plus the
// transfers needed to settle up.
func (s *SplitService) Calculate(ctx context.Context, req *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error) {
	slog.Info("Calculate request received",
		"participants_count", len(req.Msg.Participants),
		"items_count", len(req.Msg.Items),
		"include_friends", req.Msg.IncludeFriends,
	)

	participants := withIDs(req.Msg.Participants)
	if req.Msg.IncludeFriends {
		var err error
		participants, err = s.addDefaultFriends(ctx, participants)
		if err != nil {
			slog.Error("Calculate failed to add default friends", "error", err)
			return nil, connect.NewError(connect.CodeInternal, err)
		}
	}

	bill := req.Msg.Bill
	if err := validateCalculation(participants, bill, req.Msg.Items, req.Msg.TargetTotal); err != nil {
		slog.Warn("Calculate validation failed", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if len(req.Msg.Items) > 0 {
		participants = calculator.AssignItems(participants, req.Msg.Items)
	}

	results := calculator.CalculateSplits(participants, bill)
	settlements := calculator.CalculateSettlements(results)
	summary := calculator.Summarize(participants, bill, req.Msg.TargetTotal)

	for _, r := range results {
		slog.Debug("Participant split",
			"participant", r.Name,
			"subtotal", r.SubtotalShare,
			"tax", r.TaxShare,
			"service", r.ServiceShare,
			"delivery", r.DeliveryShare,
			"total_owed", r.TotalOwed,
			"net_balance", r.NetBalance,
		)
	}

	// Settlements only move money between participants; they cannot cover
	// money the group never collected.
	if summary.Underfunded() {
		slog.Warn("Bill underfunded, outstanding debt has no creditor",
			"total_bill", summary.TotalBill,
			"total_paid", summary.TotalPaid,
			"shortfall", summary.Shortfall,
		)
	}
	if summary.TargetTotal != nil && !summary.TargetMatched {
		slog.Info("Bill total differs from receipt",
			"total_bill", summary.TotalBill,
			"target_total", *summary.TargetTotal,
		)
	}

	s.metrics.ObserveCalculation(len(results), len(settlements), summary.Underfunded())

	return connect.NewResponse(&api.CalculateResponse{
		Results:     results,
		Settlements: settlements,
		Summary:     summary,
	}), nil
}
