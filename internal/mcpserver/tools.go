package mcpserver

import (
	"strings"

	"go-chi-calculator/internal/calculator"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerTools() {
	s.registerCalculate()
	s.registerMean()
	s.registerFourOperations()
	s.registerProgrammer()
	s.registerConvertBase()

	s.registerHistoryList()
	s.registerHistoryClear()
	s.registerHistorySave()
	s.registerHistoryLoad()
}

func (s *Server) registerCalculate() {
	tool := mcp.NewTool("calculate",
		mcp.WithDescription("Run a calculator operation. Results that are undefined or overflow come back as NaN or Infinity with an explanation instead of an error."),
		mcp.WithString("operation",
			mcp.Required(),
			mcp.Description("Operation name: "+strings.Join(floatOperationNames(), ", ")),
		),
		mcp.WithString("args",
			mcp.Required(),
			mcp.Description(`JSON array of operands in order, e.g. [2, 3]. "NaN", "+Inf" and "-Inf" are accepted as strings.`),
		),
	)
	s.mcpServer.AddTool(tool, s.handleCalculate)
}

func (s *Server) registerMean() {
	tool := mcp.NewTool("mean",
		mcp.WithDescription("Arithmetic mean of any number of values. The mean of no values is 0."),
		mcp.WithString("values",
			mcp.Required(),
			mcp.Description("JSON array of numbers, e.g. [1, 2, 3.5]"),
		),
	)
	s.mcpServer.AddTool(tool, s.handleMean)
}

func (s *Server) registerFourOperations() {
	tool := mcp.NewTool("four_operations",
		mcp.WithDescription("Apply addition, subtraction, multiplication and division to two numbers at once."),
		mcp.WithNumber("a",
			mcp.Required(),
			mcp.Description("First operand"),
		),
		mcp.WithNumber("b",
			mcp.Required(),
			mcp.Description("Second operand"),
		),
	)
	s.mcpServer.AddTool(tool, s.handleFourOperations)
}

func (s *Server) registerProgrammer() {
	tool := mcp.NewTool("programmer",
		mcp.WithDescription("Run a 64-bit integer operation and return the result in every base."),
		mcp.WithString("operation",
			mcp.Required(),
			mcp.Description("Operation name: "+strings.Join(intOperationNames(), ", ")),
		),
		mcp.WithString("args",
			mcp.Required(),
			mcp.Description("JSON array of integers, e.g. [12, 10]. Shift counts must be between 0 and 63."),
		),
	)
	s.mcpServer.AddTool(tool, s.handleProgrammer)
}

func (s *Server) registerConvertBase() {
	tool := mcp.NewTool("convert_base",
		mcp.WithDescription("Convert an integer between binary, octal, decimal and hexadecimal. Negative values use the 64-bit two's-complement pattern."),
		mcp.WithString("from",
			mcp.Required(),
			mcp.Description("Base of value: binary, octal, decimal or hexadecimal"),
		),
		mcp.WithString("to",
			mcp.Required(),
			mcp.Description("Base to convert to: binary, octal, decimal or hexadecimal"),
		),
		mcp.WithString("value",
			mcp.Required(),
			mcp.Description("The number to convert, written in the from base"),
		),
	)
	s.mcpServer.AddTool(tool, s.handleConvertBase)
}

func (s *Server) registerHistoryList() {
	tool := mcp.NewTool("history_list",
		mcp.WithDescription("List the calculation history, oldest first."),
	)
	s.mcpServer.AddTool(tool, s.handleHistoryList)
}

func (s *Server) registerHistoryClear() {
	tool := mcp.NewTool("history_clear",
		mcp.WithDescription("Remove every entry from the calculation history."),
	)
	s.mcpServer.AddTool(tool, s.handleHistoryClear)
}

func (s *Server) registerHistorySave() {
	tool := mcp.NewTool("history_save",
		mcp.WithDescription("Persist the calculation history."),
	)
	s.mcpServer.AddTool(tool, s.handleHistorySave)
}

func (s *Server) registerHistoryLoad() {
	tool := mcp.NewTool("history_load",
		mcp.WithDescription("Replace the calculation history with the persisted one. Reports found=false when nothing was saved yet."),
	)
	s.mcpServer.AddTool(tool, s.handleHistoryLoad)
}

func floatOperationNames() []string {
	ops := calculator.Operations("")
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.Name
	}
	return names
}

func intOperationNames() []string {
	ops := calculator.IntOperations()
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.Name
	}
	return names
}
