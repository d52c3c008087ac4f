package normalizer

import (
	"strings"
	"testing"

	"doc-agent-be/pkg/letta"
)

func reasoning(text string) letta.EventRecord {
	return letta.EventRecord{Kind: letta.KindReasoning, Text: text}
}

func toolReturn(text string) letta.EventRecord {
	return letta.EventRecord{Kind: letta.KindToolReturn, Text: text}
}

func assistant(text string) letta.EventRecord {
	return letta.EventRecord{Kind: letta.KindAssistantText, Text: text}
}

func sendMessageCall(args string) letta.EventRecord {
	return letta.EventRecord{Kind: letta.KindToolCall, ToolName: letta.ToolSendMessage, ToolArgs: args}
}

func TestNormalizeOrdering(t *testing.T) {
	// Arrival order is assistant first; output order must still be
	// analysis, document, answer.
	records := []letta.EventRecord{
		assistant("ok"),
		reasoning("because the document mentions X"),
		toolReturn("result Y from the archive"),
	}

	got := Normalize(records)
	parts := strings.Split(got, "\n\n")

	// The document wrapper carries its own blank line, so four blocks total.
	if len(parts) != 4 {
		t.Fatalf("parts = %d, want 4: %q", len(parts), got)
	}
	if parts[0] != "💭 **Analysis:** because the document mentions X" {
		t.Errorf("first part = %q, want analysis", parts[0])
	}
	if parts[1] != "📄 **Found in your documents:**" {
		t.Errorf("second part = %q, want document header", parts[1])
	}
	if parts[2] != "result Y from the archive" {
		t.Errorf("third part = %q, want document body", parts[2])
	}
	if parts[3] != "ok" {
		t.Errorf("answer must come last, got %q", parts[3])
	}
}

func TestNormalizeDropsShortReasoning(t *testing.T) {
	got := Normalize([]letta.EventRecord{
		reasoning("Ok."),
		assistant("the answer"),
	})

	if strings.Contains(got, "Analysis") {
		t.Errorf("short reasoning must be dropped, got %q", got)
	}
	if got != "the answer" {
		t.Errorf("got %q, want %q", got, "the answer")
	}
}

func TestNormalizeShortAssistantTextSurvives(t *testing.T) {
	got := Normalize([]letta.EventRecord{assistant("ok")})
	if got != "ok" {
		t.Errorf("got %q, want %q", got, "ok")
	}
}

func TestNormalizeSuppressesTransientNoise(t *testing.T) {
	tests := []string{
		"Connection refused",
		"HTTPConnectionPool: Max retries exceeded with url",
		"read timed out after 30s",
		"[Errno 111] connection failed",
		"broken pipe while streaming",
	}

	for _, noise := range tests {
		got := Normalize([]letta.EventRecord{
			toolReturn(noise),
			assistant("real answer"),
		})
		if strings.Contains(got, "documents") {
			t.Errorf("noise %q must not surface, got %q", noise, got)
		}
		if got != "real answer" {
			t.Errorf("got %q, want %q", got, "real answer")
		}
	}
}

func TestNormalizeDeduplicatesToolCallAndAssistantText(t *testing.T) {
	// Some backends emit the same final text twice: once as a send_message
	// call and once as assistant text.
	records := []letta.EventRecord{
		sendMessageCall(`{"message": "the final answer"}`),
		assistant("the final answer"),
	}

	got := Normalize(records)
	if got != "the final answer" {
		t.Errorf("got %q, want single occurrence", got)
	}
}

func TestNormalizeContainmentDedup(t *testing.T) {
	// A fragment fully contained in another must be dropped, regardless of slot.
	records := []letta.EventRecord{
		reasoning("the quarterly numbers"),
		assistant("I checked the quarterly numbers and they look fine"),
	}

	got := Normalize(records)
	if strings.Contains(got, "Analysis") {
		t.Errorf("contained fragment must be dropped, got %q", got)
	}
}

func TestNormalizeFallback(t *testing.T) {
	tests := []struct {
		name    string
		records []letta.EventRecord
	}{
		{name: "no records", records: nil},
		{name: "only noise", records: []letta.EventRecord{toolReturn("Connection refused")}},
		{name: "only filler", records: []letta.EventRecord{reasoning("Hm."), assistant("")}},
		{name: "unknown kinds", records: []letta.EventRecord{{Kind: "", Text: "???"}}},
		{name: "malformed tool args", records: []letta.EventRecord{sendMessageCall("not json")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.records)
			if got != FallbackAnswer {
				t.Errorf("got %q, want fallback", got)
			}
		})
	}
}

func TestNormalizeIgnoresOtherToolCalls(t *testing.T) {
	got := Normalize([]letta.EventRecord{
		{Kind: letta.KindToolCall, ToolName: "archival_memory_search", ToolArgs: `{"query": "x"}`},
		assistant("done"),
	})
	if got != "done" {
		t.Errorf("got %q, want %q", got, "done")
	}
}

func TestCleanToolReturn(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strips result header",
			input: "Showing 2 of 10 results\nfirst hit\nsecond hit",
			want:  "first hit\nsecond hit",
		},
		{
			name:  "rewrites line markers",
			input: "Line 4: the relevant sentence",
			want:  "(line 4) the relevant sentence",
		},
		{
			name:  "plain text untouched",
			input: "nothing special here",
			want:  "nothing special here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanToolReturn(tt.input); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsTransientNoise(t *testing.T) {
	if !IsTransientNoise("ERROR: Connection Refused by peer") {
		t.Error("case-insensitive match expected")
	}
	if IsTransientNoise("the document discusses connection pooling") {
		// "connection" alone is not a signature
		t.Error("plain prose must not be flagged")
	}
}
