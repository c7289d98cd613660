package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/tabsplit/internal/calculator"
)

const (
	// SplitServiceName is the fully-qualified name of the SplitService.
	SplitServiceName = "tabsplit.v1.SplitService"

	// SplitServiceCalculateProcedure is the path of the SplitService.Calculate RPC.
	SplitServiceCalculateProcedure = "/tabsplit.v1.SplitService/Calculate"
)

// CalculateRequest carries everything needed to split one bill.
type CalculateRequest struct {
	Participants []calculator.Participant `json:"participants"`
	Bill         calculator.BillDetails   `json:"bill"`

	// Items, when present, override OrderedAmount for every participant
	// they are assigned to.
	Items []calculator.Item `json:"items,omitempty"`

	// TargetTotal is the total printed on the receipt, if known.
	TargetTotal *float64 `json:"targetTotal,omitempty"`

	// IncludeFriends adds saved friends missing from Participants.
	IncludeFriends bool `json:"includeFriends,omitempty"`
}

// CalculateResponse is the per-participant breakdown and the settlement plan.
type CalculateResponse struct {
	Results     []calculator.ParticipantResult `json:"results"`
	Settlements []calculator.Settlement        `json:"settlements"`
	Summary     calculator.Summary             `json:"summary"`
}

// SplitServiceHandler is implemented by the server side of SplitService.
type SplitServiceHandler interface {
	Calculate(context.Context, *connect.Request[CalculateRequest]) (*connect.Response[CalculateResponse], error)
}

// NewSplitServiceHandler builds an HTTP handler for SplitService.
// It returns the path on which to mount the handler and the handler itself.
func NewSplitServiceHandler(svc SplitServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerCodecs(opts)
	calculate := connect.NewUnaryHandler(
		SplitServiceCalculateProcedure,
		svc.Calculate,
		opts...,
	)
	return "/" + SplitServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case SplitServiceCalculateProcedure:
			calculate.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// SplitServiceClient is a client for SplitService.
type SplitServiceClient interface {
	Calculate(context.Context, *connect.Request[CalculateRequest]) (*connect.Response[CalculateResponse], error)
}

type splitServiceClient struct {
	calculate *connect.Client[CalculateRequest, CalculateResponse]
}

// NewSplitServiceClient constructs a client for SplitService at baseURL.
func NewSplitServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SplitServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)
	return &splitServiceClient{
		calculate: connect.NewClient[CalculateRequest, CalculateResponse](
			httpClient,
			baseURL+SplitServiceCalculateProcedure,
			opts...,
		),
	}
}

// Calculate calls tabsplit.v1.SplitService.Calculate.
func (c *splitServiceClient) Calculate(ctx context.Context, req *connect.Request[CalculateRequest]) (*connect.Response[CalculateResponse], error) {
	return c.calculate.CallUnary(ctx, req)
}
