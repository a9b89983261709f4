package notify

import (
	"fmt"
	"strings"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/oggyb/barter-match/internal/engine"
)

// Envelope is the body published for every notification.
type Envelope struct {
	Recipient string
	Kind      engine.NotificationKind
	SentAt    time.Time
	Payload   map[string]any
}

// Marshal encodes the envelope as protojson of a google.protobuf.Struct.
func (e Envelope) Marshal() ([]byte, error) {
	body := map[string]any{
		"recipientId": e.Recipient,
		"kind":        string(e.Kind),
		"sentAt":      e.SentAt.UTC().Format(time.RFC3339Nano),
	}
	if len(e.Payload) > 0 {
		body["payload"] = e.Payload
	}
	s, err := structpb.NewStruct(body)
	if err != nil {
		return nil, fmt.Errorf("notify: encode payload: %w", err)
	}
	return protojson.Marshal(s)
}

// RoutingKey is "notification.<kind>" in lower case.
func RoutingKey(kind engine.NotificationKind) string {
	return "notification." + strings.ToLower(string(kind))
}
