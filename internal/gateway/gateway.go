package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pb "github.com/godilite/ticket-scoring/api/v1"
)

const defaultRequestTimeout = 15 * time.Second

// Gateway exposes the scoring RPCs over HTTP. It is a thin translation
// layer: query parameters in, JSON out, with gRPC status codes mapped to
// their HTTP equivalents.
type Gateway struct {
	client       pb.TicketScoringClient
	logger       *zap.Logger
	apiKey       string
	apiKeyHeader string
}

// New creates a Gateway backed by the given scoring client.
func New(client pb.TicketScoringClient, logger *zap.Logger, apiKeyHeader, apiKey string) *Gateway {
	if client == nil {
		panic("nil TicketScoringClient provided to gateway.New")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{
		client:       client,
		logger:       logger.Named("gateway"),
		apiKey:       apiKey,
		apiKeyHeader: apiKeyHeader,
	}
}

// Router builds the HTTP route tree.
func (g *Gateway) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(g.requireAPIKey)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/scores/aggregated", g.handleAggregatedScores)
		r.Get("/tickets/category-scores", g.handleTicketCategoryScores)
		r.Get("/tickets/weighted-scores", g.handleWeightedScores)
	})

	return r
}

// requireAPIKey rejects requests without the configured key. An empty
// configured key disables the check.
func (g *Gateway) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if g.apiKey != "" && r.Header.Get(g.apiKeyHeader) != g.apiKey {
			respondError(w, http.StatusUnauthorized, "Invalid or missing API key.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (g *Gateway) handleAggregatedScores(w http.ResponseWriter, r *http.Request) {
	req, ok := g.periodRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := g.outgoing(r)
	defer cancel()

	resp, err := g.client.GetAggregatedCategoryScores(ctx, req)
	if err != nil {
		g.respondGRPCError(w, "GetAggregatedCategoryScores", err)
		return
	}

	respondJSON(w, http.StatusOK, resp.GetCategoryRatingResults())
}

func (g *Gateway) handleTicketCategoryScores(w http.ResponseWriter, r *http.Request) {
	req, ok := g.periodRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := g.outgoing(r)
	defer cancel()

	resp, err := g.client.GetTicketCategoryScores(ctx, req)
	if err != nil {
		g.respondGRPCError(w, "GetTicketCategoryScores", err)
		return
	}

	respondJSON(w, http.StatusOK, resp.GetTicketCategoryScores())
}

func (g *Gateway) handleWeightedScores(w http.ResponseWriter, r *http.Request) {
	req, ok := g.periodRequest(w, r)
	if !ok {
		return
	}
	req.IncludePreviousPeriod = r.URL.Query().Get("includePreviousPeriod") == "true"

	ctx, cancel := g.outgoing(r)
	defer cancel()

	resp, err := g.client.GetWeightedScores(ctx, req)
	if err != nil {
		g.respondGRPCError(w, "GetWeightedScores", err)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

func (g *Gateway) periodRequest(w http.ResponseWriter, r *http.Request) (*pb.TimePeriodRequest, bool) {
	start := r.URL.Query().Get("startDate")
	end := r.URL.Query().Get("endDate")
	if start == "" || end == "" {
		respondError(w, http.StatusBadRequest, "startDate and endDate are required.")
		return nil, false
	}
	return &pb.TimePeriodRequest{StartDate: start, EndDate: end}, true
}

// outgoing derives the upstream context, forwarding the API key so the
// server-side interceptor accepts the call.
func (g *Gateway) outgoing(r *http.Request) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	if g.apiKey != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, g.apiKeyHeader, g.apiKey)
	}
	return ctx, cancel
}

func (g *Gateway) respondGRPCError(w http.ResponseWriter, op string, err error) {
	st, _ := status.FromError(err)

	g.logger.Warn("upstream call failed",
		zap.String("op", op),
		zap.String("code", st.Code().String()),
		zap.String("message", st.Message()))

	switch st.Code() {
	case codes.InvalidArgument:
		respondError(w, http.StatusBadRequest, st.Message())
	case codes.NotFound:
		respondError(w, http.StatusNotFound, st.Message())
	case codes.Unauthenticated, codes.PermissionDenied:
		respondError(w, http.StatusUnauthorized, st.Message())
	case codes.DeadlineExceeded, codes.Canceled:
		respondError(w, http.StatusGatewayTimeout, "Upstream request timed out.")
	default:
		respondError(w, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}

func respondJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, map[string]string{"error": message})
}
