package result

import "strings"

// Outcome is a classified result together with its rendered texts.
type Outcome struct {
	Value   float64
	Class   Class
	Cause   Cause
	Display string
	History string
}

// Describe fills a template such as "{a} + {b}" with the formatted
// arguments, pairing params and args by position. Extra args are ignored.
func Describe(template string, params []string, args []float64) string {
	pairs := make([]string, 0, 2*len(params))
	for i, p := range params {
		if i >= len(args) {
			break
		}
		pairs = append(pairs, "{"+p+"}", FormatNumber(args[i]))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// Format classifies value and builds the display and history texts for an
// operation called label applied as description, e.g. "Addition: 2 + 3 = 5".
func Format(label, description string, value float64, cause Cause) Outcome {
	display := Display(value, cause)
	return Outcome{
		Value:   value,
		Class:   Classify(value),
		Cause:   cause,
		Display: display,
		History: label + ": " + description + " = " + display,
	}
}

// List renders values as a comma-separated list, for variadic templates.
func List(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatNumber(v)
	}
	return strings.Join(parts, ", ")
}
