package apimodels

type AnalysisRequest struct {
	// Text is the pasted content to analyze.
	Text string `json:"text"`
}
