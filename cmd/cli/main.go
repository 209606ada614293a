package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"distio/adapters/csvio"
	"distio/adapters/dataout"
	"distio/adapters/plotjson"
	"distio/adapters/samplefit"
	"distio/app"
	"distio/domain/core"
	"distio/domain/dist"
	"distio/domain/plot"
	"distio/domain/stats"
	"distio/internal/cliopts"
	"distio/ports"

	"github.com/spf13/cobra"
)

const (
	defaultSchema   = "x, y"
	defaultSeed     = 42
	jsonDescription = "Demo kernel output."
)

// demoUsage extends the common usage block with this demo's own options.
const demoUsage = "\t[-s, --schema <Comma-separated column names : str>] (Schema of the input CSV file, by default 'x, y'.)\n" +
	"\t[--seed <Random seed : int (Default: 42)>] (Seed for repeated-execution input draws.)\n"

func main() {
	rootCmd := &cobra.Command{
		Use:           "distio-cli",
		Short:         "Distio CLI for evaluating demo kernels over uncertain inputs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newSummarizeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [options]",
		Short: "Evaluate the demo kernel against CSV input distributions",
		Long: `Evaluate the demo kernel over distributions read from a CSV file.

The option surface matches the demo binaries: -i and -o select files, -S
selects the output, -M enables repeated execution, -j and -b switch the
output format. Run with -h for the full list.`,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runDemo(cmd.Context(), args, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				if errors.Is(err, core.ErrBadArgument) {
					printUsage(os.Stderr)
				}
				return err
			}
			return nil
		},
	}
}

func runDemo(ctx context.Context, args []string, stdout io.Writer) error {
	var (
		schemaSeen, seedSeen bool
		schemaArg, seedArg   string
	)

	demoOptions := []cliopts.Option{
		{Name: "schema", Alias: "s", HasArg: true, FoundOpt: &schemaSeen, FoundArg: &schemaArg},
		{Name: "seed", HasArg: true, FoundOpt: &seedSeen, FoundArg: &seedArg},
	}

	arguments, err := cliopts.Parse(args, demoOptions)
	if err != nil {
		return err
	}

	if arguments.HelpEnabled {
		printUsage(os.Stderr)
		return nil
	}

	seed := int64(defaultSeed)
	if seedSeen {
		parsed, err := core.ParseLeadingInt(seedArg)
		if err != nil {
			return core.NewArgumentError("The random seed must be an integer.")
		}
		seed = int64(parsed)
	}

	if !schemaSeen {
		schemaArg = defaultSchema
	}
	schema := parseSchemaList(schemaArg)

	fitter := samplefit.NewFitter[float64]()

	inputs, err := readInputs(schema, arguments, fitter)
	if err != nil {
		return err
	}

	outputs := demoOutputs()
	if arguments.OutputSelect >= len(outputs) {
		return core.NewArgumentError(fmt.Sprintf("The selected output must be less than %d.", len(outputs)))
	}
	output := outputs[arguments.OutputSelect]

	if arguments.Verbose {
		fmt.Fprintf(stdout, "Evaluating output '%s' over %d input distributions.\n", output.name, len(inputs))
		for i, name := range schema.Names() {
			fmt.Fprintf(stdout, "Input %s: representative %e from %d samples.\n",
				name, inputs[i].Representative(), inputs[i].SampleCount())
		}
	}

	if arguments.SingleShot {
		return runSingleShot(arguments, output, inputs, fitter, stdout)
	}
	return runRepeated(ctx, arguments, output, inputs, seed, fitter, stdout)
}

// demoOutput pairs an output name with the kernel that computes it.
type demoOutput struct {
	name   string
	kernel app.Kernel[float64]
}

func demoOutputs() []demoOutput {
	return []demoOutput{
		{name: "sum", kernel: sumKernel},
		{name: "product", kernel: productKernel},
	}
}

func sumKernel(inputs []float64) float64 {
	total := 0.0
	for _, v := range inputs {
		total += v
	}
	return total
}

func productKernel(inputs []float64) float64 {
	product := 1.0
	for _, v := range inputs {
		product *= v
	}
	return product
}

func readInputs(schema dist.Schema, arguments *cliopts.Arguments, fitter ports.Fitter[float64]) ([]dist.Value[float64], error) {
	if arguments.InputFromFile {
		return csvio.NewReader(arguments.InputFilePath, schema, fitter).Read()
	}
	return builtinInputs(schema, fitter), nil
}

// builtinInputs stands in for file input when -i is not given: column i
// gets a small sample population centered on i+1.
func builtinInputs(schema dist.Schema, fitter ports.Fitter[float64]) []dist.Value[float64] {
	values := make([]dist.Value[float64], schema.Len())
	for i := range values {
		center := float64(i + 1)
		values[i] = fitter.DistFromSamples([]float64{
			center - 0.2, center - 0.1, center, center + 0.1, center + 0.2,
		})
	}
	return values
}

func runSingleShot(
	arguments *cliopts.Arguments,
	output demoOutput,
	inputs []dist.Value[float64],
	fitter ports.Fitter[float64],
	stdout io.Writer,
) error {
	representatives := make([]float64, len(inputs))
	for i, v := range inputs {
		representatives[i] = v.Representative()
	}

	start := time.Now()
	result := output.kernel(representatives)
	elapsed := core.NewElapsed(time.Since(start))

	switch {
	case arguments.JSONMode:
		variable := plot.NewVariable(output.name, jsonDescription,
			plot.DoubleValues{dist.NewFittedValue(result, nil)})
		writer := plotjson.NewWriter(stdout, samplefit.NewFitter[float32](), fitter)
		if err := writer.WritePlots([]plot.Variable{variable}, jsonDescription); err != nil {
			return err
		}
	case arguments.Benchmarking:
		fmt.Fprintf(stdout, "%e %d\n", result, elapsed.Microseconds())
		return nil
	default:
		path := csvio.StdoutPath
		if arguments.WriteToFile {
			path = arguments.OutputFilePath
		}
		if err := csvio.NewWriter[float64](path).Write([]string{output.name}, []float64{result}); err != nil {
			return err
		}
	}

	if arguments.TimingEnabled {
		fmt.Fprintf(stdout, "Kernel evaluation took %d microseconds.\n", elapsed.Microseconds())
	}
	return nil
}

func runRepeated(
	ctx context.Context,
	arguments *cliopts.Arguments,
	output demoOutput,
	inputs []dist.Value[float64],
	seed int64,
	fitter ports.Fitter[float64],
	stdout io.Writer,
) error {
	runner := app.NewMonteCarloRunner[float64](arguments.MonteCarloIterations, int64(runtime.NumCPU()), seed)
	result, err := runner.Run(ctx, inputs, output.kernel)
	if err != nil {
		return err
	}

	if err := dataout.NewWriter[float64]().Save(result.Samples, result.Elapsed); err != nil {
		return err
	}

	summary := result.Summary()

	switch {
	case arguments.JSONMode:
		variable := plot.NewVariable(output.name, jsonDescription, plot.DoubleParticles(result.Samples))
		writer := plotjson.NewWriter(stdout, samplefit.NewFitter[float32](), fitter)
		return writer.WritePlots([]plot.Variable{variable}, jsonDescription)
	case arguments.Benchmarking:
		fmt.Fprintf(stdout, "%e %d\n", summary.Mean, result.Elapsed.Microseconds())
		return nil
	default:
		if arguments.WriteToFile {
			err := csvio.NewWriter[float64](arguments.OutputFilePath).
				Write([]string{output.name}, []float64{summary.Mean})
			if err != nil {
				return err
			}
		}
		fmt.Fprintf(stdout, "Monte Carlo mean of '%s': %e\n", output.name, summary.Mean)
		fmt.Fprintf(stdout, "Monte Carlo variance of '%s': %e\n", output.name, summary.Variance)
		fmt.Fprintf(stdout, "%d iterations took %d microseconds.\n",
			arguments.MonteCarloIterations, result.Elapsed.Microseconds())
		return nil
	}
}

func newSummarizeCmd() *cobra.Command {
	var inputPath string
	var quantile float64

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Summarize a repeated-execution result file",
		Long: `Summarize the samples stored in a repeated-execution result file.

Prints the sample count, kernel time, mean, variance and the requested
quantile of the stored samples.

Example: distio-cli summarize --input data.out --quantile 0.9`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runSummarize(inputPath, quantile, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", dataout.FileName, "Repeated-execution result file to read")
	cmd.Flags().Float64Var(&quantile, "quantile", 0.5, "Quantile to report, in [0, 1)")

	return cmd
}

func runSummarize(path string, quantile float64, stdout io.Writer) error {
	elapsed, samples, err := dataout.NewReaderAt(path).Load()
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no samples in %s", path)
	}

	summary := stats.MeanAndVariance(samples)
	q, err := stats.Quantile(samples, quantile)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Loaded %d samples (kernel time %d microseconds).\n", len(samples), elapsed.Microseconds())
	fmt.Fprintf(stdout, "mean: %e\n", summary.Mean)
	fmt.Fprintf(stdout, "variance: %e\n", summary.Variance)
	fmt.Fprintf(stdout, "quantile(%.2f): %e\n", quantile, q)
	return nil
}

func parseSchemaList(raw string) dist.Schema {
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return dist.NewSchema(names...)
}

func printUsage(w io.Writer) {
	cliopts.PrintUsage(w)
	fmt.Fprint(w, demoUsage)
}
