package cliopts

import (
	"fmt"
	"io"
)

// CommonUsage is the help text for the shared option set.
const CommonUsage = "Usage: Valid command-line arguments are:\n" +
	"\t[-i, --input <Path to input CSV file : str>] (Read inputs from file.)\n" +
	"\t[-o, --output <Path to output CSV file : str>] (Specify the output file.)\n" +
	"\t[-S, --select-output <output : int>] (Compute 0-indexed output, by default 0.)\n" +
	"\t[-M, --multiple-executions <Number of executions : int (Default: 1)>] (Repeated execute kernel for benchmarking.)\n" +
	"\t[-T, --time] (Timing mode: Times and prints the timing of the kernel execution.)\n" +
	"\t[-v, --verbose] (Verbose mode: Prints extra information about demo execution.)\n" +
	"\t[-b, --benchmarking] (Benchmarking mode: Generate outputs in format for benchmarking.)\n" +
	"\t[-j, --json] (Print output in JSON format.)\n" +
	"\t[-h, --help] (Display this help message.)\n"

// PrintUsage writes the common usage block, typically to stderr.
func PrintUsage(w io.Writer) {
	fmt.Fprint(w, CommonUsage)
}
