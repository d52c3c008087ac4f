package normalizer

import (
	"encoding/json"
	"strings"

	"doc-agent-be/pkg/letta"
)

// The normalizer reduces the heterogeneous, unordered event stream of one
// turn to a single deterministic answer string. It is a pure fold: no state,
// no I/O.

const (
	// Reasoning shorter than this is backend filler ("Thinking...", "Ok."),
	// not analysis worth surfacing.
	minReasoningLen = 8
	// Assistant text must at least be a word; empty or single-glyph
	// acknowledgments are dropped.
	minAnswerLen = 1

	// FallbackAnswer is emitted when no fragment survives classification.
	FallbackAnswer = "I couldn't put together an answer this time. Please try sending your question again."
)

// Fragment slots in fixed priority order: reasoning precedes conclusions,
// document evidence precedes the final answer.
type slot int

const (
	slotAnalysis slot = iota
	slotDocument
	slotAnswer
)

type fragment struct {
	slot slot
	text string // underlying text, used for deduplication
}

// Normalize folds the event records of one turn into one rendered answer.
func Normalize(records []letta.EventRecord) string {
	fragments := classify(records)
	fragments = dedupe(fragments)

	if len(fragments) == 0 {
		return FallbackAnswer
	}

	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		parts = append(parts, wrap(f))
	}
	return strings.Join(parts, "\n\n")
}

// classify extracts one candidate fragment per matching record, ordered by
// slot priority first and arrival order within a slot.
func classify(records []letta.EventRecord) []fragment {
	var analysis, document, answer []fragment

	for _, rec := range records {
		switch rec.Kind {
		case letta.KindReasoning:
			text := strings.TrimSpace(rec.Text)
			if len(text) > minReasoningLen {
				analysis = append(analysis, fragment{slot: slotAnalysis, text: text})
			}

		case letta.KindToolCall:
			if rec.ToolName != letta.ToolSendMessage {
				continue
			}
			var args letta.SendMessageArgs
			if err := json.Unmarshal([]byte(rec.ToolArgs), &args); err != nil {
				continue
			}
			text := strings.TrimSpace(args.Message)
			if len(text) > minAnswerLen {
				answer = append(answer, fragment{slot: slotAnswer, text: text})
			}

		case letta.KindToolReturn:
			if IsTransientNoise(rec.Text) {
				continue
			}
			text := CleanToolReturn(rec.Text)
			if len(text) > 0 {
				document = append(document, fragment{slot: slotDocument, text: text})
			}

		case letta.KindAssistantText:
			text := strings.TrimSpace(rec.Text)
			if len(text) > minAnswerLen {
				answer = append(answer, fragment{slot: slotAnswer, text: text})
			}
		}
	}

	out := make([]fragment, 0, len(analysis)+len(document)+len(answer))
	out = append(out, analysis...)
	out = append(out, document...)
	out = append(out, answer...)
	return out
}

// dedupe drops fragments whose text is contained in another surviving
// fragment. Identical texts keep only the first occurrence in priority order.
func dedupe(fragments []fragment) []fragment {
	keep := make([]bool, len(fragments))
	for i := range keep {
		keep[i] = true
	}

	for i := range fragments {
		for j := range fragments {
			if i == j || !keep[i] || !keep[j] {
				continue
			}
			if fragments[i].text == fragments[j].text {
				if j < i {
					keep[i] = false
				}
				continue
			}
			if strings.Contains(fragments[j].text, fragments[i].text) {
				keep[i] = false
			}
		}
	}

	out := fragments[:0:0]
	for i, f := range fragments {
		if keep[i] {
			out = append(out, f)
		}
	}
	return out
}

// wrap applies the slot's presentation to the underlying text.
func wrap(f fragment) string {
	switch f.slot {
	case slotAnalysis:
		return "💭 **Analysis:** " + f.text
	case slotDocument:
		return "📄 **Found in your documents:**\n\n" + f.text
	default:
		return f.text
	}
}
