package dist

// Ingestion limits shared by every input source.
const (
	// MaxInputSamples is the largest number of data rows one ingestion
	// accepts per column.
	MaxInputSamples = 10000

	// MaxLineLength is the largest accepted length of a single input
	// line, in bytes.
	MaxLineLength = 1024 * 1024
)
