package llm

import "context"

// MockResponse is returned for every prompt when no API key is configured.
const MockResponse = "[MOCK RESPONSE — no API key detected]\n\n" +
	"This is a placeholder. Add your Gemini API key to secrets.yaml or set the " +
	"GEMINI_API_KEY environment variable to get live results."

// Mock stands in for the live provider when no credential is present. It
// makes no external calls and never fails.
type Mock struct{}

func NewMock() *Mock { return &Mock{} }

func (m *Mock) Name() string { return "Mock" }

func (m *Mock) Generate(ctx context.Context, prompt string, opts ...Option) (string, error) {
	return MockResponse, nil
}
