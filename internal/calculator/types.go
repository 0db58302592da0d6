package calculator

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"go-chi-calculator/internal/programmer"
	"go-chi-calculator/internal/result"
)

// Number is a float64 that survives JSON: NaN and the infinities are
// written as the strings "NaN", "+Inf" and "-Inf" and read back from them.
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	v := float64(n)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}
	return json.Marshal(v)
}

func (n *Number) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch s {
		case "NaN":
			*n = Number(math.NaN())
		case "+Inf", "Inf", "Infinity":
			*n = Number(math.Inf(1))
		case "-Inf", "-Infinity":
			*n = Number(math.Inf(-1))
		default:
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return fmt.Errorf("invalid number %q", s)
			}
			*n = Number(v)
		}
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Number(v)
	return nil
}

func floats(ns []Number) []float64 {
	out := make([]float64, len(ns))
	for i, n := range ns {
		out[i] = float64(n)
	}
	return out
}

func numbers(fs []float64) []Number {
	out := make([]Number, len(fs))
	for i, f := range fs {
		out[i] = Number(f)
	}
	return out
}

// CalcRequest is the JSON body for POST /calculator/{op}. Binary operations
// may pass their operands as a and b instead of args.
type CalcRequest struct {
	Args []Number `json:"args"`
	A    *Number  `json:"a,omitempty"`
	B    *Number  `json:"b,omitempty"`
}

// Operands returns the arguments in call order.
func (r CalcRequest) Operands() []float64 {
	if len(r.Args) > 0 || r.A == nil {
		return floats(r.Args)
	}
	args := []float64{float64(*r.A)}
	if r.B != nil {
		args = append(args, float64(*r.B))
	}
	return args
}

// CalcResponse is the JSON response for floating-point operations.
type CalcResponse struct {
	Operation string   `json:"operation"`
	Args      []Number `json:"args"`
	Result    Number   `json:"result"`
	Class     string   `json:"class"`
	Display   string   `json:"display"`
	History   string   `json:"history"`
}

// NewCalcResponse renders an evaluated operation for the wire.
func NewCalcResponse(name string, args []float64, out result.Outcome) CalcResponse {
	return CalcResponse{
		Operation: name,
		Args:      numbers(args),
		Result:    Number(out.Value),
		Class:     out.Class.String(),
		Display:   out.Display,
		History:   out.History,
	}
}

// ResultView is one classified value inside a composite response.
type ResultView struct {
	Result  Number `json:"result"`
	Class   string `json:"class"`
	Display string `json:"display"`
}

// NewResultView renders out for the wire.
func NewResultView(out result.Outcome) ResultView {
	return ResultView{Result: Number(out.Value), Class: out.Class.String(), Display: out.Display}
}

// FourRequest is the JSON body for POST /calculator/four.
type FourRequest struct {
	A Number `json:"a"`
	B Number `json:"b"`
}

// FourResponse is the JSON response for POST /calculator/four.
type FourResponse struct {
	A              Number     `json:"a"`
	B              Number     `json:"b"`
	Addition       ResultView `json:"addition"`
	Subtraction    ResultView `json:"subtraction"`
	Multiplication ResultView `json:"multiplication"`
	Division       ResultView `json:"division"`
	History        string     `json:"history"`
}

// ChainStep describes a single step in a chained calculation.
type ChainStep struct {
	Op    string  `json:"op"`    // any binary operation: "add", "divide", "power", ...
	Value float64 `json:"value"` // the operand applied with the running total
}

// ChainRequest is the JSON body for POST /calculator/chain.
type ChainRequest struct {
	Initial float64     `json:"initial"` // starting value
	Steps   []ChainStep `json:"steps"`
}

// ChainResponse is the JSON response for POST /calculator/chain.
type ChainResponse struct {
	Initial Number        `json:"initial"`
	Steps   []ChainResult `json:"steps"`
	Result  Number        `json:"result"`
	Display string        `json:"display"`
	History string        `json:"history"`
}

// ChainResult records one executed step.
type ChainResult struct {
	Op      string `json:"op"`
	Value   Number `json:"value"`
	Result  Number `json:"result"`
	Display string `json:"display"`
}

// IntRequest is the JSON body for POST /programmer/{op}.
type IntRequest struct {
	Args []int64 `json:"args"`
}

// IntResponse is the JSON response for programmer operations.
type IntResponse struct {
	Operation       string                     `json:"operation"`
	Args            []int64                    `json:"args"`
	Result          int64                      `json:"result"`
	Representations programmer.Representations `json:"representations"`
	History         string                     `json:"history"`
}

// ConvertRequest is the JSON body for POST /programmer/convert. From and
// To name a base: binary, octal, decimal or hexadecimal.
type ConvertRequest struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Value string `json:"value"`
}

// ConvertResponse is the JSON response for POST /programmer/convert.
type ConvertResponse struct {
	From            string                     `json:"from"`
	To              string                     `json:"to"`
	Input           string                     `json:"input"`
	Output          string                     `json:"output"`
	Decimal         int64                      `json:"decimal"`
	Representations programmer.Representations `json:"representations"`
	History         string                     `json:"history"`
}

// OperationInfo describes one entry of GET /calculator/operations.
type OperationInfo struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Mode     Mode     `json:"mode"`
	Params   []string `json:"params,omitempty"`
	Variadic bool     `json:"variadic,omitempty"`
	Integer  bool     `json:"integer,omitempty"`
}

// HistoryResponse is the JSON response for the /history endpoints.
type HistoryResponse struct {
	Entries  []string `json:"entries"`
	Count    int      `json:"count"`
	Location string   `json:"location,omitempty"`
	Found    *bool    `json:"found,omitempty"`
}
