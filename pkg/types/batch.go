// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConversionStatus is the outcome of converting a single file.
type ConversionStatus string

const (
	// ConversionDone means the output file was produced.
	ConversionDone ConversionStatus = "converted"

	// ConversionUnsupported means no converter is registered for the
	// requested (source, target) extension pair. The file is skipped.
	ConversionUnsupported ConversionStatus = "unsupported"

	// ConversionFailed means a converter was found but reading or writing
	// the document failed. The batch continues with the next file.
	ConversionFailed ConversionStatus = "failed"

	// ConversionSkipped means the batch never reached the converter,
	// e.g. the run was cut short by an overlapping invocation.
	ConversionSkipped ConversionStatus = "skipped"
)

// FileOutcome records the result of one file in a batch. Failures carry a
// human-readable reason instead of propagating as errors, so one bad file
// never aborts the rest of the batch.
type FileOutcome struct {
	// Path is the source file.
	Path string `json:"path" yaml:"path"`

	// Output is the produced file path, empty unless Status is ConversionDone.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Status classifies the outcome.
	Status ConversionStatus `json:"status" yaml:"status"`

	// Reason explains unsupported, failed, or skipped outcomes.
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// BatchReport aggregates the outcomes of one batch run in scan order.
type BatchReport struct {
	Outcomes []FileOutcome `json:"outcomes" yaml:"outcomes"`
}

// Add appends an outcome to the report.
func (r *BatchReport) Add(o FileOutcome) {
	r.Outcomes = append(r.Outcomes, o)
}

func (r *BatchReport) count(s ConversionStatus) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == s {
			n++
		}
	}
	return n
}

// Converted returns the number of files that produced output.
func (r *BatchReport) Converted() int { return r.count(ConversionDone) }

// Unsupported returns the number of files with no registered converter.
func (r *BatchReport) Unsupported() int { return r.count(ConversionUnsupported) }

// Failed returns the number of files whose conversion errored.
func (r *BatchReport) Failed() int { return r.count(ConversionFailed) }

// Total returns the total number of files processed.
func (r *BatchReport) Total() int { return len(r.Outcomes) }

// HasFailures reports whether any file failed conversion.
func (r *BatchReport) HasFailures() bool { return r.Failed() > 0 }
