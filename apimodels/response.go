package apimodels

// AnalysisResponse is the result of one analysis: three rendered text
// sections, held only for the duration of the interaction.
type AnalysisResponse struct {
	// Bulleted list of misinformation indicators
	RedFlags string `json:"redFlags"`

	// Concise, neutral summary of the text
	Summary string `json:"summary"`

	// Misinformation tactics explained for the reader
	Insights string `json:"insights"`

	// Metadata about the analysis
	Metadata AnalysisMetadata `json:"metadata"`
}

type AnalysisMetadata struct {
	// Time taken for analysis
	Duration string `json:"duration"`

	// Model used for analysis
	Model string `json:"model"`

	// Operating mode, "live" or "mock"
	Mode string `json:"mode"`
}
