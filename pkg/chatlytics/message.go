package chatlytics

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/chatlytics/chatlytics-go/internal/logger"
	"github.com/chatlytics/chatlytics-go/pkg/apierror"
)

// Message is a tracked user message within a thread.
type Message struct {
	ID        string `json:"id"`
	ThreadID  string `json:"thread_id"`
	Message   string `json:"message"`
	MessageID string `json:"message_id"`
	CreatedAt string `json:"created_at"`

	raw map[string]any
}

// MessageRequest carries the caller-supplied fields for CreateMessage.
type MessageRequest struct {
	// ThreadID references the session the message belongs to. Required.
	ThreadID string

	// Message is the user's message content. Required.
	Message string

	// MessageID is the caller-assigned message identifier. Required.
	MessageID string
}

// messageBody is the wire form of a message creation request.
type messageBody struct {
	ThreadID  string `json:"thread_id"`
	Message   string `json:"message"`
	MessageID string `json:"message_id"`
}

// CreateMessage records a user message against an existing thread.
func (c *Client) CreateMessage(ctx context.Context, req MessageRequest) (Message, error) {
	if err := c.validator.ValidateMessageRequest(req.ThreadID, req.Message, req.MessageID); err != nil {
		return Message{}, err
	}

	logger.Log.WithField("thread_id", req.ThreadID).Debug("Creating message")

	data, err := c.post(ctx, "/api/messages", messageBody{
		ThreadID:  req.ThreadID,
		Message:   req.Message,
		MessageID: req.MessageID,
	})
	if err != nil {
		return Message{}, err
	}

	return newMessage(data)
}

func newMessage(data json.RawMessage) (Message, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return Message{}, apierror.FromStatus(http.StatusOK, "Invalid response format: malformed data field", nil)
	}
	if err := json.Unmarshal(data, &m.raw); err != nil {
		return Message{}, apierror.FromStatus(http.StatusOK, "Invalid response format: malformed data field", nil)
	}
	return m, nil
}

// ToMap returns the message exactly as the server sent it, including any
// fields this client version does not model.
func (m Message) ToMap() map[string]any {
	out := make(map[string]any, len(m.raw))
	for k, v := range m.raw {
		out[k] = v
	}
	return out
}

func (m Message) String() string {
	return fmt.Sprintf("Message(id=%s, thread_id=%s, message_id=%s)", m.ID, m.ThreadID, m.MessageID)
}
