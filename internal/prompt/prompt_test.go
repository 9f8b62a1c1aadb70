package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptsContainInputVerbatim(t *testing.T) {
	input := "Scientists BAFFLED by this one weird trick!!! Share before it's deleted."

	assert.Contains(t, RedFlags(input), input)
	assert.Contains(t, Summary(input), input)
	assert.Contains(t, Insights(input), input)
}

func TestPromptsAreDeterministic(t *testing.T) {
	input := "The moon landing was staged, according to a forwarded message."

	assert.Equal(t, RedFlags(input), RedFlags(input))
	assert.Equal(t, Summary(input), Summary(input))
	assert.Equal(t, Insights(input), Insights(input))
}

func TestPromptsAreDistinct(t *testing.T) {
	input := "some text"

	assert.NotEqual(t, RedFlags(input), Summary(input))
	assert.NotEqual(t, Summary(input), Insights(input))
	assert.NotEqual(t, RedFlags(input), Insights(input))
}

func TestPromptsForwardLongInputUnmodified(t *testing.T) {
	long := ""
	for i := 0; i < 1000; i++ {
		long += "a very long forwarded chain message "
	}

	assert.Contains(t, RedFlags(long), long)
}
