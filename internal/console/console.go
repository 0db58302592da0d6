// Package console implements the interactive, menu-driven calculator.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go-chi-calculator/internal/calculator"
	"go-chi-calculator/internal/observability"
	"go-chi-calculator/internal/programmer"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const banner = "===================================="

// Console reads menu selections and operands line by line from in and
// writes prompts and results to out.
type Console struct {
	svc    *calculator.Service
	in     *bufio.Scanner
	out    io.Writer
	styles styles
}

// New returns a console driving svc.
func New(svc *calculator.Service, in io.Reader, out io.Writer) *Console {
	return &Console{
		svc:    svc,
		in:     bufio.NewScanner(in),
		out:    out,
		styles: newStyles(lipgloss.NewRenderer(out)),
	}
}

// menuItem is one numbered entry; run returns true to leave the menu.
type menuItem struct {
	label string
	run   func(ctx context.Context) (bool, error)
}

// Run shows the mode selection until the user exits or input ends.
func (c *Console) Run(ctx context.Context) error {
	modes := []menuItem{
		{"Basic Mode", c.submenu("BASIC CALCULATOR", c.basicItems)},
		{"Scientific Mode", c.submenu("SCIENTIFIC CALCULATOR", c.scientificItems)},
		{"Programmer Mode", c.submenu("PROGRAMMER CALCULATOR", c.programmerItems)},
		{"Exit", func(context.Context) (bool, error) {
			fmt.Fprintln(c.out, c.styles.result.Render("Thank you for using my calculator application!"))
			return true, nil
		}},
	}

	err := c.loop(ctx, "CALCULATOR APP", "Please select a calculator mode:", modes)
	if errors.Is(err, errInputClosed) {
		observability.Logger.Debug("console input closed")
		return nil
	}
	return err
}

// loop shows a menu until an item asks to leave it.
func (c *Console) loop(ctx context.Context, title, intro string, items []menuItem) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.header(title)
		fmt.Fprintln(c.out, intro)
		fmt.Fprintln(c.out)
		for i, item := range items {
			fmt.Fprintln(c.out, c.styles.item.Render(fmt.Sprintf("%2d. %s", i+1, item.label)))
		}

		choice, err := c.readChoice(len(items))
		if err != nil {
			return err
		}

		done, err := items[choice-1].run(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out)
		if done {
			return nil
		}
	}
}

func (c *Console) header(title string) {
	fmt.Fprintln(c.out, banner)
	fmt.Fprintln(c.out, c.styles.title.Render(centered(title, len(banner))))
	fmt.Fprintln(c.out, banner)
	fmt.Fprintln(c.out)
}

func centered(s string, width int) string {
	if pad := (width - len(s)) / 2; pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}

func (c *Console) submenu(title string, items func() []menuItem) func(context.Context) (bool, error) {
	return func(ctx context.Context) (bool, error) {
		return false, c.loop(ctx, title, "Please choose an operation:", items())
	}
}

func back(label string) menuItem {
	return menuItem{label, func(context.Context) (bool, error) { return true, nil }}
}

func (c *Console) basicItems() []menuItem {
	var items []menuItem
	for _, op := range calculator.Operations(calculator.ModeBasic) {
		items = append(items, c.operationItem(op))
		if op.Name == "divide" {
			items = append(items, menuItem{"Apply all four operations", c.four})
		}
	}
	items = append(items, c.historyItems()...)
	return append(items, back("Back to Mode Selection"))
}

func (c *Console) scientificItems() []menuItem {
	var items []menuItem
	for _, op := range calculator.Operations(calculator.ModeScientific) {
		items = append(items, c.operationItem(op))
	}
	items = append(items, c.historyItems()...)
	return append(items, back("Back to Mode Selection"))
}

func (c *Console) programmerItems() []menuItem {
	items := []menuItem{
		c.conversionItem(programmer.Decimal, programmer.Binary),
		c.conversionItem(programmer.Decimal, programmer.Hexadecimal),
		c.conversionItem(programmer.Decimal, programmer.Octal),
		c.conversionItem(programmer.Binary, programmer.Decimal),
		c.conversionItem(programmer.Hexadecimal, programmer.Decimal),
		c.conversionItem(programmer.Octal, programmer.Decimal),
	}
	for _, op := range calculator.IntOperations() {
		items = append(items, c.intOperationItem(op))
	}
	items = append(items, c.historyItems()...)
	return append(items, back("Back to Mode Selection"))
}

func (c *Console) historyItems() []menuItem {
	return []menuItem{
		{"View history", c.viewHistory},
		{"Save history", c.saveHistory},
		{"Load history", c.loadHistory},
		{"Clear history", c.clearHistory},
	}
}

var ordinals = []string{"first", "second", "third"}

// promptFor builds the operand prompt for parameter i of params.
func promptFor(params []string, i int) string {
	switch params[i] {
	case "base":
		return "Enter the base number: "
	case "exponent":
		return "Enter the exponent: "
	case "positions":
		return "Enter the number of positions: "
	}
	if len(params) == 1 {
		return "Enter a number: "
	}
	if i < len(ordinals) {
		return "Enter the " + ordinals[i] + " number: "
	}
	return fmt.Sprintf("Enter number %d: ", i+1)
}

// integerPrompt rewords a number prompt for whole-number input.
func integerPrompt(p string) string {
	if p == "Enter a number: " {
		return "Enter an integer: "
	}
	if head, ok := strings.CutSuffix(p, " number: "); ok {
		return head + " integer: "
	}
	return p
}

func (c *Console) operationItem(op calculator.Operation) menuItem {
	return menuItem{op.Label, func(ctx context.Context) (bool, error) {
		var args []float64
		if op.Variadic {
			n, err := c.readCount()
			if err != nil {
				return false, err
			}
			for i := 0; i < n; i++ {
				v, err := c.readNumber(fmt.Sprintf("Enter number %d: ", i+1))
				if err != nil {
					return false, err
				}
				args = append(args, v)
			}
		} else {
			for i := range op.Params {
				v, err := c.readNumber(promptFor(op.Params, i))
				if err != nil {
					return false, err
				}
				args = append(args, v)
			}
		}

		out, err := c.svc.Evaluate(ctx, op.Name, args)
		if err != nil {
			c.warn(err.Error())
			return false, nil
		}
		c.show("Result", out.Display)
		return false, nil
	}}
}

// readCount asks how many values a variadic operation should take.
func (c *Console) readCount() (int, error) {
	for {
		line, err := c.readLine("How many numbers? ")
		if err != nil {
			return 0, err
		}
		n, msg := parseChoice(line, 1, 100)
		if msg == "" {
			return n, nil
		}
		c.warn(msg)
	}
}

func (c *Console) four(ctx context.Context) (bool, error) {
	a, err := c.readNumber(promptFor([]string{"a", "b"}, 0))
	if err != nil {
		return false, err
	}
	b, err := c.readNumber(promptFor([]string{"a", "b"}, 1))
	if err != nil {
		return false, err
	}

	out := c.svc.FourOperations(ctx, a, b)
	c.show("Addition", out.Addition.Display)
	c.show("Subtraction", out.Subtraction.Display)
	c.show("Multiplication", out.Multiplication.Display)
	c.show("Division", out.Division.Display)
	return false, nil
}

func (c *Console) conversionItem(from, to programmer.Base) menuItem {
	label := from.String() + " to " + to.String()
	return menuItem{strings.ToUpper(label[:1]) + label[1:], func(ctx context.Context) (bool, error) {
		article := "a "
		if from == programmer.Octal {
			article = "an "
		}
		input, err := c.readLine("Enter " + article + from.String() + " number: ")
		if err != nil {
			return false, err
		}

		out, err := c.svc.Convert(ctx, from, to, input)
		if err != nil {
			c.warn(err.Error())
			return false, nil
		}
		c.show("Result", out.Output)
		return false, nil
	}}
}

func (c *Console) intOperationItem(op calculator.IntOperation) menuItem {
	return menuItem{op.Label, func(ctx context.Context) (bool, error) {
		args := make([]int64, 0, len(op.Params))
		for i := range op.Params {
			v, err := c.readInteger(integerPrompt(promptFor(op.Params, i)))
			if err != nil {
				return false, err
			}
			args = append(args, v)
		}

		out, err := c.svc.EvaluateInt(ctx, op.Name, args)
		if err != nil {
			c.warn(err.Error())
			return false, nil
		}
		c.show("Result", fmt.Sprintf("%d%s", out.Value, op.Suffix))
		fmt.Fprintln(c.out, c.styles.muted.Render(fmt.Sprintf("Binary: %s  Octal: %s  Hex: %s",
			out.Representations.Binary, out.Representations.Octal, out.Representations.Hexadecimal)))
		return false, nil
	}}
}

func (c *Console) viewHistory(ctx context.Context) (bool, error) {
	fmt.Fprintln(c.out, c.styles.title.Render("======= Calculation History ======="))
	entries := c.svc.History().Entries()
	if len(entries) == 0 {
		fmt.Fprintln(c.out, c.styles.muted.Render("No calculations yet."))
	}
	for _, e := range entries {
		fmt.Fprintln(c.out, e)
	}
	fmt.Fprintln(c.out, c.styles.title.Render("==================================="))
	return false, nil
}

func (c *Console) saveHistory(ctx context.Context) (bool, error) {
	if err := c.svc.SaveHistory(ctx); err != nil {
		c.warn("Error saving history: " + err.Error())
		return false, nil
	}
	fmt.Fprintf(c.out, "History saved to %s.\n", c.svc.History().Location())
	return false, nil
}

func (c *Console) loadHistory(ctx context.Context) (bool, error) {
	found, err := c.svc.LoadHistory(ctx)
	switch {
	case err != nil:
		c.warn("Error loading history: " + err.Error())
	case !found:
		fmt.Fprintf(c.out, "No history file found at %s.\n", c.svc.History().Location())
	default:
		fmt.Fprintf(c.out, "History loaded from %s.\n", c.svc.History().Location())
	}
	return false, nil
}

func (c *Console) clearHistory(ctx context.Context) (bool, error) {
	c.svc.ClearHistory(ctx)
	fmt.Fprintln(c.out, "History cleared.")
	return false, nil
}

func (c *Console) show(label, value string) {
	fmt.Fprintln(c.out, label+": "+c.styles.result.Render(value))
}

func (c *Console) warn(msg string) {
	fmt.Fprintln(c.out, c.styles.err.Render(msg))
	observability.Logger.Debug("console input rejected", zap.String("message", msg))
}
