package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	assert.Equal(t, "[█████░░░░░]  50%", stripANSI(RenderProgress(0.5, 10)))
	assert.Equal(t, "[██████████] 100%", stripANSI(RenderProgress(1.5, 10)))
	assert.Equal(t, "[░░░░░░░░░░]   0%", stripANSI(RenderProgress(-1, 10)))
}

func TestRenderSplitBar(t *testing.T) {
	assert.Equal(t, "██████", stripANSI(RenderSplitBar(2, 1, 3, 6)))
	assert.Equal(t, "█", stripANSI(RenderSplitBar(1, 0, 100, 10)), "non-zero counts stay visible")
	assert.Empty(t, RenderSplitBar(1, 1, 0, 10))
}

func TestSparkline(t *testing.T) {
	assert.Equal(t, " ▁█", Sparkline([]int{0, 1, 8}))
	assert.Equal(t, "   ", Sparkline([]int{0, 0, 0}))
	assert.Equal(t, "██", Sparkline([]int{3, 3}))
}
