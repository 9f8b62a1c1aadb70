package llm

// Wire types for the Gemini generateContent API.

type generateContentRequest struct {
	Contents         []geminiContent   `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	MaxOutputTokens int64 `json:"maxOutputTokens,omitempty"`
	CandidateCount  int   `json:"candidateCount,omitempty"`
}

// generateContentResponse covers both response shapes the endpoint is known
// to produce: a direct text payload, or a candidate list.
type generateContentResponse struct {
	Text       string            `json:"text,omitempty"`
	Candidates []geminiCandidate `json:"candidates,omitempty"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type geminiErrorResponse struct {
	Error geminiErrorDetail `json:"error"`
}

type geminiErrorDetail struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}
