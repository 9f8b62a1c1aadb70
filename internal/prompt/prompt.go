// Package prompt builds the three fixed instruction prompts sent to the
// model. The input text is interpolated verbatim; no escaping or truncation
// is applied.
package prompt

import "fmt"

// Output token budgets for each section.
const (
	RedFlagsMaxTokens int64 = 280
	SummaryMaxTokens  int64 = 200
	InsightsMaxTokens int64 = 300
)

const redFlagsTemplate = "You are an assistant that identifies indicators of misinformation in text. " +
	"Given the following text, return a bulleted list of 'red flags'. For each flag include: " +
	"1) Quote or short excerpt, 2) the type of problem (e.g., emotional appeal, no source, " +
	"sensational claim, cherry-picking, misleading statistic, poor sourcing), " +
	"3) a one-line explanation. Use short bullet points.\n\n" +
	"TEXT:\n'''%s'''\n\n" +
	"Format strictly as bullets."

const summaryTemplate = "You are a neutral summarizer. Read the text and provide a concise, factual, " +
	"neutral summary (2-4 sentences). Do not add opinions and avoid speculative language. " +
	"If the input contains claims that are verifiable, indicate them as 'Claim: ...' and mark " +
	"'Verified/Unverified/Unknown' if possible.\n\n" +
	"TEXT:\n'''%s'''"

const insightsTemplate = "You are an educational assistant. For the provided text, list 2-4 misinformation " +
	"tactics used (e.g., cherry-picking, appeal to emotion, false cause), and for each tactic give " +
	"a two-sentence plain-language explanation and an example suggestion for how a user can check " +
	"or verify such a tactic.\n\n" +
	"TEXT:\n'''%s'''"

// RedFlags asks for a bulleted list of misinformation indicators.
func RedFlags(text string) string {
	return fmt.Sprintf(redFlagsTemplate, text)
}

// Summary asks for a concise, neutral summary of the text.
func Summary(text string) string {
	return fmt.Sprintf(summaryTemplate, text)
}

// Insights asks for an explanation of the tactics used in the text.
func Insights(text string) string {
	return fmt.Sprintf(insightsTemplate, text)
}
