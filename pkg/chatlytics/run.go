package chatlytics

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/chatlytics/chatlytics-go/internal/logger"
	"github.com/chatlytics/chatlytics-go/pkg/apierror"
)

// Run is a tracked model response within a thread.
type Run struct {
	RunID     string `json:"run_id"`
	ThreadID  string `json:"thread_id"`
	Response  string `json:"response"`
	CreatedAt string `json:"created_at"`

	raw map[string]any
}

// RunRequest carries the caller-supplied fields for CreateRun.
type RunRequest struct {
	// ThreadID references the session the run belongs to. Required.
	ThreadID string

	// RunID is the caller-assigned run identifier. Required.
	RunID string

	// Response is the model's response content. An empty response is
	// accepted, failed generations are still worth tracking.
	Response string
}

// runBody is the wire form of a run creation request.
type runBody struct {
	ThreadID string `json:"thread_id"`
	RunID    string `json:"run_id"`
	Response string `json:"response"`
}

// CreateRun records a model response against an existing thread.
func (c *Client) CreateRun(ctx context.Context, req RunRequest) (Run, error) {
	if err := c.validator.ValidateRunRequest(req.ThreadID, req.RunID); err != nil {
		return Run{}, err
	}

	logger.Log.WithField("thread_id", req.ThreadID).Debug("Creating run")

	data, err := c.post(ctx, "/api/runs", runBody{
		ThreadID: req.ThreadID,
		RunID:    req.RunID,
		Response: req.Response,
	})
	if err != nil {
		return Run{}, err
	}

	return newRun(data)
}

func newRun(data json.RawMessage) (Run, error) {
	var r Run
	if err := json.Unmarshal(data, &r); err != nil {
		return Run{}, apierror.FromStatus(http.StatusOK, "Invalid response format: malformed data field", nil)
	}
	if err := json.Unmarshal(data, &r.raw); err != nil {
		return Run{}, apierror.FromStatus(http.StatusOK, "Invalid response format: malformed data field", nil)
	}
	return r, nil
}

// ToMap returns the run exactly as the server sent it, including any
// fields this client version does not model.
func (r Run) ToMap() map[string]any {
	out := make(map[string]any, len(r.raw))
	for k, v := range r.raw {
		out[k] = v
	}
	return out
}

func (r Run) String() string {
	return fmt.Sprintf("Run(run_id=%s, thread_id=%s)", r.RunID, r.ThreadID)
}
