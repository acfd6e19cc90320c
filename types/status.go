package types

// StepStatus represents the runner-native outcome of a step or scenario
type StepStatus string

const (
	StepStatusPassed    StepStatus = "passed"
	StepStatusFailed    StepStatus = "failed"
	StepStatusPending   StepStatus = "pending"
	StepStatusSkipped   StepStatus = "skipped"
	StepStatusUndefined StepStatus = "undefined"
)

// ResultStatus represents the report-native status persisted in result artifacts
type ResultStatus string

const (
	ResultStatusPassed   ResultStatus = "passed"
	ResultStatusFailed   ResultStatus = "failed"
	ResultStatusPending  ResultStatus = "pending"
	ResultStatusBroken   ResultStatus = "broken"
	ResultStatusCanceled ResultStatus = "canceled"
)

// MapStatus translates a runner status into its report status.
// Undefined steps surface as broken and skipped steps as canceled;
// every other status maps through unchanged. The runner only ever
// emits the five StepStatus values, so no defensive branch exists for
// anything else.
func MapStatus(s StepStatus) ResultStatus {
	switch s {
	case StepStatusUndefined:
		return ResultStatusBroken
	case StepStatusSkipped:
		return ResultStatusCanceled
	default:
		return ResultStatus(s)
	}
}
