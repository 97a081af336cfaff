package pipeline

import (
	"errors"

	"github.com/roach88/trendlab/internal/store"
	"github.com/roach88/trendlab/internal/trend"
)

// Severity tags a notice for the display surface.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notice codes.
const (
	CodeOK               = "OK"
	CodeEmptyInput       = "W001"
	CodePersistence      = "E001"
	CodeParse            = "E002"
	CodeInsufficientData = "E003"
	CodeLengthMismatch   = "E004"
	CodeDegenerateMetric = "E005"
	CodeUnknown          = "E999"
)

// Notice is a user-facing message with a severity tag.
type Notice struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Detail   string   `json:"detail,omitempty"`
}

// Describe converts an error from any pipeline operation into a Notice.
// Returns nil for a nil error.
func Describe(err error) *Notice {
	if err == nil {
		return nil
	}

	n := &Notice{Severity: SeverityError, Detail: err.Error()}

	var (
		pe  *store.PersistenceError
		pa  *ParseError
		ide *trend.InsufficientDataError
		lme *trend.LengthMismatchError
		dme *trend.DegenerateMetricError
	)
	switch {
	case errors.As(err, &pa):
		n.Code = CodeParse
		n.Message = "Error inserting data. Make sure the data is entered correctly."
	case errors.As(err, &pe):
		n.Code = CodePersistence
		n.Message = "The database could not be read or written. Try again."
	case errors.As(err, &ide):
		n.Code = CodeInsufficientData
		n.Message = "No data to train on. Add data first."
	case errors.As(err, &lme):
		n.Code = CodeLengthMismatch
		n.Message = "Prediction does not match the data set."
	case errors.As(err, &dme):
		n.Code = CodeDegenerateMetric
		n.Message = "R² is undefined for constant data that the model does not reproduce."
	default:
		n.Code = CodeUnknown
		n.Message = "Unexpected error."
	}

	return n
}
