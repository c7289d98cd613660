package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/tabsplit/internal/calculator"
)

func TestJSONCodec_CalculateResponse(t *testing.T) {
	results := calculator.CalculateSplits([]calculator.Participant{
		{ID: "a", Name: "A", OrderedAmount: 30},
		{ID: "b", Name: "B", OrderedAmount: 10, PaidAmount: 40},
	}, calculator.BillDetails{})
	in := &CalculateResponse{
		Results:     results,
		Settlements: calculator.CalculateSettlements(results),
	}

	var codec jsonCodec
	data, err := codec.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	// Embedded participant fields are flattened into each result
	for _, key := range []string{`"orderedAmount":30`, `"netBalance":-30`, `"from":"A"`, `"subtotalShare":10`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("encoded response missing %s: %s", key, data)
		}
	}

	var out CalculateResponse
	if err := codec.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(out.Results) != 2 || out.Results[1] != in.Results[1] {
		t.Errorf("round trip changed results: %+v", out.Results)
	}
	if len(out.Settlements) != 1 || out.Settlements[0] != in.Settlements[0] {
		t.Errorf("round trip changed settlements: %+v", out.Settlements)
	}
}

func TestJSONCodec_RejectsMalformed(t *testing.T) {
	var req CalculateRequest
	if err := (jsonCodec{}).Unmarshal([]byte(`{"participants":"nope"}`), &req); err == nil {
		t.Error("expected error for malformed participants")
	}
}

// engineHandler runs the calculator directly, with no validation or friends.
type engineHandler struct{}

func (engineHandler) Calculate(_ context.Context, req *connect.Request[CalculateRequest]) (*connect.Response[CalculateResponse], error) {
	results := calculator.CalculateSplits(req.Msg.Participants, req.Msg.Bill)
	return connect.NewResponse(&CalculateResponse{
		Results:     results,
		Settlements: calculator.CalculateSettlements(results),
	}), nil
}

func TestSplitServiceHandler_JSONContentTypes(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle(NewSplitServiceHandler(engineHandler{}))
	server := httptest.NewServer(mux)
	defer server.Close()

	body := `{"participants":[` +
		`{"id":"a","name":"A","orderedAmount":30,"paidAmount":0},` +
		`{"id":"b","name":"B","orderedAmount":10,"paidAmount":40}]}`

	for _, contentType := range []string{"application/json", "application/json; charset=utf-8"} {
		t.Run(contentType, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, server.URL+SplitServiceCalculateProcedure, strings.NewReader(body))
			if err != nil {
				t.Fatalf("NewRequest failed: %v", err)
			}
			req.Header.Set("Content-Type", contentType)

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("POST failed: %v", err)
			}
			defer resp.Body.Close()

			data, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatalf("failed to read body: %v", err)
			}
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, body = %s", resp.StatusCode, data)
			}

			var out CalculateResponse
			if err := json.Unmarshal(data, &out); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			want := calculator.Settlement{From: "A", To: "B", Amount: 30}
			if len(out.Settlements) != 1 || out.Settlements[0] != want {
				t.Errorf("settlements = %+v, want [%+v]", out.Settlements, want)
			}
		})
	}
}
