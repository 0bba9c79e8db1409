package ai

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// ErrMalformedResponse is returned when model output fails the strict
// decode. The whole request fails closed: no retry, no partial trust.
var ErrMalformedResponse = errors.New("malformed model response")

// TopicDraft is one generated topic before category filtering and persistence.
type TopicDraft struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// StripCodeFence removes a surrounding markdown code fence, with or without a
// language tag, which models frequently wrap JSON replies in despite being
// told not to.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// drop the language tag ("json", "JSON", ...) up to the first newline
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		first := strings.TrimSpace(s[:idx])
		if !strings.HasPrefix(first, "[") && !strings.HasPrefix(first, "{") {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// DecodeStringArray strictly decodes a classification reply into category
// names. Anything that is not a single JSON array of strings is rejected.
func DecodeStringArray(raw string) ([]string, error) {
	payload := StripCodeFence(raw)
	var names []string
	if err := decodeStrict(payload, &names); err != nil {
		return nil, errors.Wrap(ErrMalformedResponse, err.Error())
	}
	return names, nil
}

// DecodeTopicDrafts strictly decodes a generation reply. Unknown fields and
// trailing content both fail the decode, so a structurally off batch is
// rejected as a whole rather than partially trusted.
func DecodeTopicDrafts(raw string) ([]TopicDraft, error) {
	payload := StripCodeFence(raw)
	var drafts []TopicDraft
	if err := decodeStrict(payload, &drafts); err != nil {
		return nil, errors.Wrap(ErrMalformedResponse, err.Error())
	}
	for _, d := range drafts {
		if strings.TrimSpace(d.Title) == "" || strings.TrimSpace(d.Category) == "" {
			return nil, errors.Wrap(ErrMalformedResponse, "topic with empty title or category")
		}
	}
	return drafts, nil
}

func decodeStrict(payload string, out interface{}) error {
	dec := json.NewDecoder(strings.NewReader(payload))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return err
	}
	// reject trailing garbage after the array
	if dec.More() {
		return errors.New("trailing content after JSON value")
	}
	return nil
}
