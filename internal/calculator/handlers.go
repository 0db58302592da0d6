package calculator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go-chi-calculator/internal/handlers"
	"go-chi-calculator/internal/observability"
	"go-chi-calculator/internal/programmer"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Handler exposes a Service over HTTP.
type Handler struct {
	svc *Service
}

// NewHandler returns HTTP handlers backed by svc.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	if errors.Is(err, ErrUnknownOperation) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

// fail answers a request with err, recording it on the request span.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, opName, msg string, err error, status int) {
	ctx := r.Context()
	observability.RecordError(ctx, trace.SpanFromContext(ctx), observability.LoggerWithTrace(ctx),
		requestErrorCounter, opName, msg, err, status, w)
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding request body: %w", err)
	}
	return nil
}

// Operations handles GET /calculator/operations.
func (h *Handler) Operations(w http.ResponseWriter, r *http.Request) {
	ops := Operations("")
	out := make([]OperationInfo, 0, len(ops)+len(intRegistry))
	for _, op := range ops {
		out = append(out, OperationInfo{
			Name:     op.Name,
			Label:    op.Label,
			Mode:     op.Mode,
			Params:   op.Params,
			Variadic: op.Variadic,
			Integer:  op.Integer,
		})
	}
	for _, op := range IntOperations() {
		out = append(out, OperationInfo{
			Name:    op.Name,
			Label:   op.Label,
			Mode:    ModeProgrammer,
			Params:  op.Params,
			Integer: true,
		})
	}
	handlers.WriteJSON(w, http.StatusOK, out)
}

// Calculate handles POST /calculator/{op}.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "op")
	trace.SpanFromContext(r.Context()).SetAttributes(attribute.String("calculator.operation", name))

	var req CalcRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, name, "invalid request body", err, http.StatusBadRequest)
		return
	}

	args := req.Operands()
	out, err := h.svc.Evaluate(r.Context(), name, args)
	if err != nil {
		h.fail(w, r, name, err.Error(), err, statusFor(err))
		return
	}

	handlers.WriteJSON(w, http.StatusOK, NewCalcResponse(name, args, out))
}

// Four handles POST /calculator/four.
func (h *Handler) Four(w http.ResponseWriter, r *http.Request) {
	var req FourRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, "four", "invalid request body", err, http.StatusBadRequest)
		return
	}

	out := h.svc.FourOperations(r.Context(), float64(req.A), float64(req.B))
	handlers.WriteJSON(w, http.StatusOK, FourResponse{
		A:              req.A,
		B:              req.B,
		Addition:       NewResultView(out.Addition),
		Subtraction:    NewResultView(out.Subtraction),
		Multiplication: NewResultView(out.Multiplication),
		Division:       NewResultView(out.Division),
		History:        out.History,
	})
}

// Chain handles POST /calculator/chain. It runs a sequence of binary
// operations on a running total, with a child span for every step.
func (h *Handler) Chain(w http.ResponseWriter, r *http.Request) {
	var req ChainRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, "chain", "invalid request body", err, http.StatusBadRequest)
		return
	}

	out, err := h.svc.Chain(r.Context(), req.Initial, req.Steps)
	if err != nil {
		h.fail(w, r, "chain", err.Error(), err, http.StatusBadRequest)
		return
	}

	steps := make([]ChainResult, len(out.Steps))
	for i, s := range out.Steps {
		steps[i] = ChainResult{
			Op:      s.Op,
			Value:   Number(s.Value),
			Result:  Number(s.Outcome.Value),
			Display: s.Outcome.Display,
		}
	}
	handlers.WriteJSON(w, http.StatusOK, ChainResponse{
		Initial: Number(out.Initial),
		Steps:   steps,
		Result:  Number(out.Result.Value),
		Display: out.Result.Display,
		History: out.History,
	})
}

// Programmer handles POST /programmer/{op}.
func (h *Handler) Programmer(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "op")

	var req IntRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, name, "invalid request body", err, http.StatusBadRequest)
		return
	}

	out, err := h.svc.EvaluateInt(r.Context(), name, req.Args)
	if err != nil {
		h.fail(w, r, name, err.Error(), err, statusFor(err))
		return
	}

	handlers.WriteJSON(w, http.StatusOK, IntResponse{
		Operation:       out.Operation,
		Args:            out.Args,
		Result:          out.Value,
		Representations: out.Representations,
		History:         out.History,
	})
}

// Convert handles POST /programmer/convert.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if err := decode(r, &req); err != nil {
		h.fail(w, r, "convert", "invalid request body", err, http.StatusBadRequest)
		return
	}

	from, err := programmer.ParseBase(req.From)
	if err != nil {
		h.fail(w, r, "convert", err.Error(), err, http.StatusBadRequest)
		return
	}
	to, err := programmer.ParseBase(req.To)
	if err != nil {
		h.fail(w, r, "convert", err.Error(), err, http.StatusBadRequest)
		return
	}

	out, err := h.svc.Convert(r.Context(), from, to, req.Value)
	if err != nil {
		h.fail(w, r, "convert", err.Error(), err, http.StatusBadRequest)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, ConvertResponse{
		From:            out.From.String(),
		To:              out.To.String(),
		Input:           out.Input,
		Output:          out.Output,
		Decimal:         out.Value,
		Representations: out.Representations,
		History:         out.History,
	})
}

func (h *Handler) historyResponse() HistoryResponse {
	store := h.svc.History()
	entries := store.Entries()
	return HistoryResponse{
		Entries:  entries,
		Count:    len(entries),
		Location: store.Location(),
	}
}

// ListHistory handles GET /history.
func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, h.historyResponse())
}

// ClearHistory handles DELETE /history.
func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	h.svc.ClearHistory(r.Context())
	handlers.WriteJSON(w, http.StatusOK, h.historyResponse())
}

// SaveHistory handles POST /history/save.
func (h *Handler) SaveHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.SaveHistory(r.Context()); err != nil {
		h.fail(w, r, "history.save", "saving history failed", err, http.StatusInternalServerError)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, h.historyResponse())
}

// LoadHistory handles POST /history/load.
func (h *Handler) LoadHistory(w http.ResponseWriter, r *http.Request) {
	found, err := h.svc.LoadHistory(r.Context())
	if err != nil {
		h.fail(w, r, "history.load", "loading history failed", err, http.StatusInternalServerError)
		return
	}
	resp := h.historyResponse()
	resp.Found = &found
	handlers.WriteJSON(w, http.StatusOK, resp)
}
