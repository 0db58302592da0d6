package console

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// errInputClosed ends the session when input runs out.
var errInputClosed = errors.New("input closed")

// readLine prints prompt and returns the next input line.
func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, c.styles.prompt.Render(prompt))
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		fmt.Fprintln(c.out)
		return "", errInputClosed
	}
	return c.in.Text(), nil
}

// parseNumber validates a floating-point operand.
func parseNumber(input string) (float64, string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, "Input cannot be empty. Please enter a valid number."
	}

	v, err := strconv.ParseFloat(input, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, "Invalid input. Please enter a valid number (e.g., 123, -45.67, 3.14)."
	}
	switch {
	case math.IsInf(v, 0):
		return 0, "The number is too large. Please enter a smaller number."
	case math.IsNaN(v):
		return 0, "Invalid number format. Please enter a valid number."
	}
	return v, ""
}

// parseInteger validates a whole-number operand.
func parseInteger(input string) (int64, string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, "Input cannot be empty. Please enter a valid integer."
	}
	v, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return 0, "Invalid input. Please enter a valid integer."
	}
	return v, ""
}

// parseChoice validates a menu selection in [min, max].
func parseChoice(input string, min, max int) (int, string) {
	v, msg := parseInteger(input)
	if msg != "" {
		return 0, msg
	}
	if v < int64(min) || v > int64(max) {
		return 0, fmt.Sprintf("Please enter a number between %d and %d.", min, max)
	}
	return int(v), ""
}

// readNumber prompts until a valid floating-point number is entered.
func (c *Console) readNumber(prompt string) (float64, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, msg := parseNumber(line)
		if msg == "" {
			return v, nil
		}
		c.warn(msg)
	}
}

// readInteger prompts until a valid 64-bit integer is entered.
func (c *Console) readInteger(prompt string) (int64, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, msg := parseInteger(line)
		if msg == "" {
			return v, nil
		}
		c.warn(msg)
	}
}

// readChoice prompts until a selection in [1, max] is entered.
func (c *Console) readChoice(max int) (int, error) {
	for {
		line, err := c.readLine("\nYour choice: ")
		if err != nil {
			return 0, err
		}
		v, msg := parseChoice(line, 1, max)
		if msg == "" {
			return v, nil
		}
		c.warn(msg)
	}
}
