package stream

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/balkashynov/crewlog/internal/agent"
)

func TestWriteEvent(t *testing.T) {
	var buf bytes.Buffer
	ev := agent.Event{Type: "user_input", Payload: map[string]any{"text": "Alex 8h"}}

	if err := WriteEvent(&buf, ev); err != nil {
		t.Fatalf("WriteEvent: %v", err)
	}

	got := buf.String()
	if !strings.HasPrefix(got, "event: user_input\ndata: ") {
		t.Fatalf("frame = %q", got)
	}
	if !strings.HasSuffix(got, "\n\n") {
		t.Fatalf("frame %q must end with a blank separator line", got)
	}

	dataLine := strings.TrimSuffix(strings.Split(got, "\n")[1], "\r")
	var payload map[string]any
	if err := json.Unmarshal([]byte(strings.TrimPrefix(dataLine, "data: ")), &payload); err != nil {
		t.Fatalf("data line is not JSON: %v", err)
	}
	if payload["text"] != "Alex 8h" {
		t.Fatalf("payload = %v", payload)
	}
}

func TestWriteEventEmptyPayload(t *testing.T) {
	var buf bytes.Buffer

	if err := WriteEvent(&buf, agent.Event{Type: "ping"}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "event: ping\ndata: {}\n\n" {
		t.Fatalf("frame = %q", got)
	}
}

func TestFrames(t *testing.T) {
	events := []agent.Event{
		{Type: "started", Payload: map[string]any{"message": "hi"}},
		{Type: "finalized", Payload: map[string]any{"count": 0}},
	}

	got := Frames(events)

	if strings.Count(got, "event: ") != 2 {
		t.Fatalf("frames = %q, want two events", got)
	}
	if !strings.Contains(got, "event: started\n") || !strings.Contains(got, "event: finalized\n") {
		t.Fatalf("frames = %q", got)
	}
}
