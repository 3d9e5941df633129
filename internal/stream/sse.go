// Package stream renders agent events as server-sent-events frames, the
// transport a web or voice front end would subscribe to.
package stream

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/balkashynov/crewlog/internal/agent"
)

// WriteEvent writes one event as a minimal SSE frame: an "event:" line
// carrying the type, a "data:" line carrying the JSON payload, then the
// blank line that separates frames.
func WriteEvent(w io.Writer, ev agent.Event) error {
	data := []byte("{}")
	if ev.Payload != nil {
		encoded, err := json.Marshal(ev.Payload)
		if err != nil {
			return fmt.Errorf("encoding %s payload: %w", ev.Type, err)
		}
		data = encoded
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type, data); err != nil {
		return fmt.Errorf("writing %s frame: %w", ev.Type, err)
	}
	return nil
}

// Frames renders a batch of events as one SSE-framed string.
func Frames(events []agent.Event) string {
	var sb strings.Builder
	for _, ev := range events {
		// strings.Builder writes cannot fail and the payloads the agent
		// produces always encode.
		_ = WriteEvent(&sb, ev)
	}
	return sb.String()
}
