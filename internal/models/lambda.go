package models

import "fmt"

// LambdaEvent is the input event for Lambda invocation.
type LambdaEvent struct {
	Organization string `json:"organization,omitempty"`
	Source       string `json:"source,omitempty"`
	DetailType   string `json:"detail-type,omitempty"`
}

// LambdaResponse is the output from Lambda invocation.
type LambdaResponse struct {
	StatusCode int            `json:"status_code"`
	Message    string         `json:"message"`
	Summary    *ReportSummary `json:"summary,omitempty"`
}

// NewSuccessResponse creates a success response.
func NewSuccessResponse(summary *ReportSummary) *LambdaResponse {
	return &LambdaResponse{
		StatusCode: 200,
		Message:    fmt.Sprintf("report completed: %d repositories", summary.ReposReported),
		Summary:    summary,
	}
}

// NewErrorResponse creates an error response.
func NewErrorResponse(err error) *LambdaResponse {
	return &LambdaResponse{
		StatusCode: 500,
		Message:    err.Error(),
	}
}
