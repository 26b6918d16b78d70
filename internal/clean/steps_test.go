package clean

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveNonChinese(t *testing.T) {
	got, err := RemoveNonChinese{}.Apply([]string{"我", "NLP", "处理", "2016", "。", "", "自然语言"})
	require.NoError(t, err)
	assert.Equal(t, []string{"我", "处理", "自然语言"}, got)
}

func TestRemoveStopwords(t *testing.T) {
	step := NewRemoveStopwords([]string{"的", "了"})
	got, err := step.Apply([]string{"我", "的", "书", "了"})
	require.NoError(t, err)
	assert.Equal(t, []string{"我", "书"}, got)
}

func TestConvertT2SIsDeterministic(t *testing.T) {
	step, err := NewConvertT2S()
	require.NoError(t, err)

	first, err := step.Apply([]string{"自然語言處理", "電腦"})
	require.NoError(t, err)
	assert.Equal(t, []string{"自然语言处理", "电脑"}, first)

	second, err := step.Apply([]string{"自然語言處理", "電腦"})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSegmentSplitsWords(t *testing.T) {
	seg, err := NewSegment()
	require.NoError(t, err)

	got, err := seg.Apply([]string{"我爱自然语言处理"})
	require.NoError(t, err)
	assert.Equal(t, "我爱自然语言处理", strings.Join(got, ""))
	assert.Greater(t, len(got), 2)
}

// The canonical cleaning example: segmented, punctuation removed.
func TestCleaningPipelineExample(t *testing.T) {
	seg, err := NewSegment()
	require.NoError(t, err)
	steps := []Step{seg, RemoveNonChinese{}}

	tokens := []string{"我爱自然语言处理。"}
	for _, s := range steps {
		tokens, err = s.Apply(tokens)
		require.NoError(t, err)
	}
	assert.Equal(t, "我 爱 自然语言 处理", strings.Join(tokens, " "))
}
