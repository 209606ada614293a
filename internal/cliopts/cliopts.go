// Package cliopts parses the command-line surface shared by the demo
// binaries: long options accepted with one or two leading dashes, short
// aliases, '=' or following-token arguments, unambiguous prefix matching,
// and diagnostics that echo the option token as the user typed it.
package cliopts

import (
	"fmt"
	"strings"

	"distio/domain/core"
)

// MaxPathChars caps the input and output file path lengths.
const MaxPathChars = 1024

// Option describes one command-line option. Name is the long spelling,
// Alias the single-character one. FoundOpt, when bound, is set if the
// option appears; FoundArg receives the argument of a HasArg option.
type Option struct {
	Name     string
	Alias    string
	HasArg   bool
	FoundOpt *bool
	FoundArg *string
}

// Arguments is the parsed common command-line state. The zero value is
// not valid; NewArguments applies the defaults.
type Arguments struct {
	InputFilePath        string
	OutputFilePath       string
	InputFromFile        bool
	WriteToFile          bool
	TimingEnabled        bool
	MonteCarloIterations int
	OutputSelect         int
	OutputSelected       bool
	Verbose              bool
	JSONMode             bool
	HelpEnabled          bool
	Benchmarking         bool
	MonteCarloMode       bool
	SingleShot           bool
}

// NewArguments returns the default argument state: single shot, one
// iteration, output 0.
func NewArguments() *Arguments {
	return &Arguments{
		MonteCarloIterations: 1,
		SingleShot:           true,
	}
}

// Parse scans args (without the program name) against the demo-specific
// options concatenated with the common set. Demo options take precedence
// when names collide with a prefix.
func Parse(args []string, demoOptions []Option) (*Arguments, error) {
	arguments := NewArguments()

	var (
		inputArg, outputArg, outputSelectArg, multipleArg     string
		inputSeen, outputSeen, outputSelectSeen, multipleSeen bool
	)

	commonOptions := []Option{
		{Name: "input", Alias: "i", HasArg: true, FoundOpt: &inputSeen, FoundArg: &inputArg},
		{Name: "output", Alias: "o", HasArg: true, FoundOpt: &outputSeen, FoundArg: &outputArg},
		{Name: "select-output", Alias: "S", HasArg: true, FoundOpt: &outputSelectSeen, FoundArg: &outputSelectArg},
		{Name: "time", Alias: "T", FoundOpt: &arguments.TimingEnabled},
		{Name: "multiple-executions", Alias: "M", HasArg: true, FoundOpt: &multipleSeen, FoundArg: &multipleArg},
		{Name: "verbose", Alias: "v", FoundOpt: &arguments.Verbose},
		{Name: "json", Alias: "j", FoundOpt: &arguments.JSONMode},
		{Name: "help", Alias: "h", FoundOpt: &arguments.HelpEnabled},
		{Name: "benchmarking", Alias: "b", FoundOpt: &arguments.Benchmarking},
	}

	options := make([]Option, 0, len(demoOptions)+len(commonOptions))
	options = append(options, demoOptions...)
	options = append(options, commonOptions...)

	if err := parseCore(args, options); err != nil {
		return nil, err
	}

	if inputSeen {
		if len(inputArg) >= MaxPathChars {
			return nil, core.NewArgumentError("Could not read input file path from command-line arguments.")
		}
		arguments.InputFilePath = inputArg
		arguments.InputFromFile = true
	}

	if outputSeen {
		if len(outputArg) >= MaxPathChars {
			return nil, core.NewArgumentError("Could not read output file path from command-line arguments.")
		}
		arguments.OutputFilePath = outputArg
		arguments.WriteToFile = true
	}

	if outputSelectSeen {
		outputSelect, err := core.ParseLeadingInt(outputSelectArg)
		if err != nil {
			return nil, core.NewArgumentError("The output selected must be an integer.")
		}
		if outputSelect < 0 {
			return nil, core.NewArgumentError("The output selected must be non-negative.")
		}
		arguments.OutputSelect = outputSelect
		arguments.OutputSelected = true
	}

	if multipleSeen {
		iterations, err := core.ParseLeadingInt(multipleArg)
		if err != nil {
			return nil, core.NewArgumentError("The number of multiple executions must be an integer.")
		}
		if iterations <= 0 {
			return nil, core.NewArgumentError("The number of multiple executions must be positive.")
		}
		arguments.MonteCarloIterations = iterations
		arguments.MonteCarloMode = true
		arguments.TimingEnabled = true
		arguments.SingleShot = false
	}

	if arguments.JSONMode && arguments.Benchmarking {
		return nil, core.NewArgumentError("Output JSON mode and benchmarking mode are not compatible. Please choose only one.")
	}

	return arguments, nil
}

// parseCore walks the raw tokens. Non-option operands are remembered and
// reported only after option parsing completes, so options after an
// operand still take effect first.
func parseCore(args []string, options []Option) error {
	for i := range options {
		if options[i].FoundOpt != nil {
			*options[i].FoundOpt = false
		}
		if options[i].FoundArg != nil {
			*options[i].FoundArg = ""
		}
	}
	if err := checkDuplicates(options); err != nil {
		return err
	}

	firstOperand := ""
	haveOperand := false

	i := 0
	for i < len(args) {
		token := args[i]

		if token == "--" {
			for _, rest := range args[i+1:] {
				if !haveOperand {
					firstOperand = rest
					haveOperand = true
				}
			}
			break
		}

		if len(token) < 2 || token[0] != '-' {
			if !haveOperand {
				firstOperand = token
				haveOperand = true
			}
			i++
			continue
		}

		text := strings.TrimPrefix(strings.TrimPrefix(token, "-"), "-")
		name, inline, hasInline := strings.Cut(text, "=")

		option := match(options, name)
		if option == nil {
			return core.NewArgumentError(fmt.Sprintf("Invalid option: '%s' provided.", token))
		}

		if option.FoundOpt != nil {
			*option.FoundOpt = true
		}

		if option.HasArg {
			arg := inline
			if !hasInline {
				if i+1 >= len(args) {
					return core.NewArgumentError(fmt.Sprintf("Option '%s' is missing mandatory argument.", token))
				}
				i++
				arg = args[i]
			}
			if option.FoundArg != nil {
				*option.FoundArg = arg
			}
		} else if hasInline {
			// A flag does not take an argument.
			return core.NewArgumentError(fmt.Sprintf("Invalid option: '%s' provided.", token))
		}

		i++
	}

	if haveOperand {
		return core.NewArgumentError(fmt.Sprintf("Unexpected argument '%s'", firstOperand))
	}
	return nil
}

// match returns the option for an exact name or alias, or an unambiguous
// prefix of one.
func match(options []Option, name string) *Option {
	if name == "" {
		return nil
	}

	for i := range options {
		if options[i].Name == name || options[i].Alias == name {
			return &options[i]
		}
	}

	var found *Option
	count := 0
	for i := range options {
		if options[i].Name != "" && strings.HasPrefix(options[i].Name, name) {
			found = &options[i]
			count++
		}
	}
	if count == 1 {
		return found
	}
	return nil
}

func checkDuplicates(options []Option) error {
	seen := make(map[string]bool, len(options)*2)
	for _, option := range options {
		for _, name := range []string{option.Name, option.Alias} {
			if name == "" {
				continue
			}
			if seen[name] {
				return fmt.Errorf("Internal Error: Duplicate option '%s'", name)
			}
			seen[name] = true
		}
	}
	return nil
}
