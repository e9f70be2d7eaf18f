package letters

import "fmt"

// ErrorCode is the stable machine-readable code clients branch on.
type ErrorCode string

const (
	CodeValidationError       ErrorCode = "VALIDATION_ERROR"        // malformed client input, nothing was attempted
	CodeGenerationError       ErrorCode = "GENERATION_ERROR"        // provider call failed or returned empty
	CodeLetterValidationError ErrorCode = "LETTER_VALIDATION_ERROR" // generated text broke a hard constraint
	CodeInternalError         ErrorCode = "INTERNAL_ERROR"          // anything unanticipated
)

// PipelineError is the tagged error the orchestrator returns instead of raw
// provider/storage errors. The HTTP layer owns the code-to-status mapping, the
// pipeline itself stays transport-agnostic.
type PipelineError struct {
	Code    ErrorCode
	Message string
	Meta    map[string]any
	Err     error
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *PipelineError) Unwrap() error { return e.Err }

func newValidationError(msg string) *PipelineError {
	return &PipelineError{Code: CodeValidationError, Message: msg}
}

func newGenerationError(msg string, err error) *PipelineError {
	return &PipelineError{Code: CodeGenerationError, Message: msg, Err: err}
}

func newLetterValidationError(result ValidationResult) *PipelineError {
	return &PipelineError{
		Code:    CodeLetterValidationError,
		Message: "generated letter failed validation",
		Meta: map[string]any{
			"errors":    result.Errors,
			"warnings":  result.Warnings,
			"wordCount": result.WordCount,
		},
	}
}
