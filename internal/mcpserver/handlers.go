package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"go-chi-calculator/internal/calculator"
	"go-chi-calculator/internal/programmer"

	"github.com/mark3labs/mcp-go/mcp"
)

// parseNumbers decodes a JSON array argument of numbers.
func parseNumbers(request mcp.CallToolRequest, name string) ([]float64, error) {
	raw, err := request.RequireString(name)
	if err != nil {
		return nil, err
	}
	var values []calculator.Number
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, fmt.Errorf("%s must be a JSON array of numbers: %w", name, err)
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out, nil
}

func (s *Server) handleCalculate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("operation")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	args, err := parseNumbers(request, "args")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, err := s.svc.Evaluate(ctx, name, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(calculator.NewCalcResponse(name, args, out))
}

func (s *Server) handleMean(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	values, err := parseNumbers(request, "values")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, err := s.svc.Evaluate(ctx, "mean", values)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(calculator.NewCalcResponse("mean", values, out))
}

func (s *Server) handleFourOperations(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, err := request.RequireFloat("a")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	b, err := request.RequireFloat("b")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out := s.svc.FourOperations(ctx, a, b)
	return jsonResult(calculator.FourResponse{
		A:              calculator.Number(a),
		B:              calculator.Number(b),
		Addition:       calculator.NewResultView(out.Addition),
		Subtraction:    calculator.NewResultView(out.Subtraction),
		Multiplication: calculator.NewResultView(out.Multiplication),
		Division:       calculator.NewResultView(out.Division),
		History:        out.History,
	})
}

func (s *Server) handleProgrammer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("operation")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	raw, err := request.RequireString("args")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var args []int64
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("args must be a JSON array of integers: %v", err)), nil
	}

	out, err := s.svc.EvaluateInt(ctx, name, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(calculator.IntResponse{
		Operation:       out.Operation,
		Args:            out.Args,
		Result:          out.Value,
		Representations: out.Representations,
		History:         out.History,
	})
}

func (s *Server) handleConvertBase(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fromStr, err := request.RequireString("from")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	toStr, err := request.RequireString("to")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	value, err := request.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	from, err := programmer.ParseBase(fromStr)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	to, err := programmer.ParseBase(toStr)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, err := s.svc.Convert(ctx, from, to, value)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(calculator.ConvertResponse{
		From:            out.From.String(),
		To:              out.To.String(),
		Input:           out.Input,
		Output:          out.Output,
		Decimal:         out.Value,
		Representations: out.Representations,
		History:         out.History,
	})
}

func (s *Server) history() calculator.HistoryResponse {
	store := s.svc.History()
	entries := store.Entries()
	return calculator.HistoryResponse{
		Entries:  entries,
		Count:    len(entries),
		Location: store.Location(),
	}
}

func (s *Server) handleHistoryList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.history())
}

func (s *Server) handleHistoryClear(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.svc.ClearHistory(ctx)
	return jsonResult(s.history())
}

func (s *Server) handleHistorySave(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.svc.SaveHistory(ctx); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to save history: %v", err)), nil
	}
	return jsonResult(s.history())
}

func (s *Server) handleHistoryLoad(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	found, err := s.svc.LoadHistory(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load history: %v", err)), nil
	}
	resp := s.history()
	resp.Found = &found
	return jsonResult(resp)
}

// jsonResult marshals data into a text tool result.
func jsonResult(data any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
