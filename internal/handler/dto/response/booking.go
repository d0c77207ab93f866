package response

import (
	"deskbooker/internal/usecase/commands"
	"deskbooker/internal/usecase/queries"
)

type SubmitSummary struct {
	TotalRequested int `json:"total_requested"`
	Successful     int `json:"successful"`
	Failed         int `json:"failed"`
}

type SubmitResponse struct {
	Created []*queries.BookingView `json:"created"`
	Errors  []commands.SubmitError `json:"errors"`
	Summary SubmitSummary          `json:"summary"`
}

func FromSubmitResult(result *commands.SubmitResult) *SubmitResponse {
	resp := &SubmitResponse{
		Created: result.Created,
		Errors:  result.Errors,
		Summary: SubmitSummary{
			TotalRequested: len(result.Created) + len(result.Errors),
			Successful:     len(result.Created),
			Failed:         len(result.Errors),
		},
	}
	if resp.Created == nil {
		resp.Created = []*queries.BookingView{}
	}
	if resp.Errors == nil {
		resp.Errors = []commands.SubmitError{}
	}
	return resp
}
