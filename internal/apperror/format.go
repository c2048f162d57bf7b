package apperror

import "net/http"

// Response is the JSON body of every error reply. Success is always false so
// clients can branch on one field for both envelopes.
type Response struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Code      string `json:"code"`
	Context   string `json:"context,omitempty"`
	Operation string `json:"operation,omitempty"`
	Layer     string `json:"layer,omitempty"`
	Details   any    `json:"details,omitempty"`
}

// Format renders err for the client. In production server faults are fully
// redacted and client faults lose their diagnostic fields.
func Format(err error, production bool) Response {
	status := Status(err)
	if production && status >= http.StatusInternalServerError {
		return Response{Error: "Internal server error", Code: string(CodeInternal)}
	}

	resp := Response{Error: "An error occurred", Code: string(CodeUnknown)}
	e, ok := As(err)
	if !ok {
		if err != nil {
			resp.Error = err.Error()
		}
		if production {
			resp.Error = http.StatusText(status)
		}
		return resp
	}

	if e.Message != "" {
		resp.Error = e.Message
	}
	switch {
	case e.Code != "":
		resp.Code = string(e.Code)
	case e.StoreCode != "":
		resp.Code = e.StoreCode
	}
	if production {
		return resp
	}
	resp.Context = e.Context
	resp.Operation = e.Operation
	resp.Layer = e.Layer
	if e.Input != nil {
		resp.Details = e.Input
	} else if e.ResourceID != nil {
		resp.Details = map[string]any{"resourceId": e.ResourceID}
	}
	return resp
}
