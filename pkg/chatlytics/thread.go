package chatlytics

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/chatlytics/chatlytics-go/internal/logger"
	"github.com/chatlytics/chatlytics-go/pkg/apierror"
)

// Thread is a conversation session as recorded by the service. Timestamps
// are kept in the server's own string representation.
type Thread struct {
	ID         string `json:"id"`
	ThreadID   string `json:"thread_id"`
	UserID     string `json:"user_id,omitempty"`
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`

	raw map[string]any
}

// ThreadRequest carries the caller-supplied fields for CreateThread.
type ThreadRequest struct {
	// ThreadID is the caller-assigned session identifier. Required.
	ThreadID string

	// UserID optionally attributes the session to an end user.
	UserID string
}

// threadBody is the wire form of a thread creation request.
type threadBody struct {
	ThreadID string `json:"thread_id"`
	UserID   string `json:"user_id,omitempty"`
}

// CreateThread registers a conversation session with the analytics
// service. The thread id is chosen by the caller and reused when tracking
// messages and runs for the same conversation.
func (c *Client) CreateThread(ctx context.Context, req ThreadRequest) (Thread, error) {
	if err := c.validator.ValidateThreadRequest(req.ThreadID); err != nil {
		return Thread{}, err
	}

	logger.Log.WithField("thread_id", req.ThreadID).Debug("Creating thread")

	data, err := c.post(ctx, "/api/threads", threadBody{
		ThreadID: req.ThreadID,
		UserID:   req.UserID,
	})
	if err != nil {
		return Thread{}, err
	}

	return newThread(data)
}

func newThread(data json.RawMessage) (Thread, error) {
	var t Thread
	if err := json.Unmarshal(data, &t); err != nil {
		return Thread{}, apierror.FromStatus(http.StatusOK, "Invalid response format: malformed data field", nil)
	}
	if err := json.Unmarshal(data, &t.raw); err != nil {
		return Thread{}, apierror.FromStatus(http.StatusOK, "Invalid response format: malformed data field", nil)
	}
	return t, nil
}

// ToMap returns the thread exactly as the server sent it, including any
// fields this client version does not model.
func (t Thread) ToMap() map[string]any {
	out := make(map[string]any, len(t.raw))
	for k, v := range t.raw {
		out[k] = v
	}
	return out
}

func (t Thread) String() string {
	return fmt.Sprintf("Thread(id=%s, thread_id=%s, user_id=%s)", t.ID, t.ThreadID, t.UserID)
}
