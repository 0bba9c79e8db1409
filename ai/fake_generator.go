package ai

import "context"

// FakeGenerator is a canned Generator for tests. It records every prompt it
// receives and replies with a fixed response or error.
type FakeGenerator struct {
	Response string
	Err      error
	Prompts  []string
}

func (f *FakeGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	f.Prompts = append(f.Prompts, prompt)
	if f.Err != nil {
		return "", f.Err
	}
	return f.Response, nil
}
