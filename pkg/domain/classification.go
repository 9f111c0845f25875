package domain

// Classification is the classifier's verdict for a single tool invocation.
// ErrorMessage is set iff IsError. ExitCode is set only when the verdict came
// from a non-zero exit signal; a keyword-derived verdict carries no exit code.
type Classification struct {
	IsError      bool
	ErrorMessage string
	ExitCode     *int
}

// ErrorTypeUnknown is the sentinel tag for failure text that matches no entry
// in the error-type catalog.
const ErrorTypeUnknown = "unknown"

// ErrorFeatures is the structured feature set derived from failure text.
type ErrorFeatures struct {
	// ErrorType is one of the catalog tags or ErrorTypeUnknown.
	ErrorType string `json:"error_type"`

	// Keywords are the qualifying all-caps tokens in order of first
	// appearance. Extraction does not dedupe and does not fold case.
	Keywords []string `json:"keywords"`

	// FilePath is the first absolute-path-looking substring, verbatim,
	// or empty when none was found.
	FilePath string `json:"file_path,omitempty"`
}
