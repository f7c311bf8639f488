package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░]  45%.
// Green above 66%, yellow from 33%, red below.
func RenderProgress(pct float64, width int) string {
	pct = min(max(pct, 0), 1)
	width = max(width, 2)

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// RenderSplitBar renders completed and failed counts as one bar scaled to
// maxTotal, completed first.
func RenderSplitBar(completed, failed, maxTotal, width int) string {
	if maxTotal <= 0 || width <= 0 {
		return ""
	}
	c := completed * width / maxTotal
	f := failed * width / maxTotal
	if completed > 0 && c == 0 {
		c = 1
	}
	if failed > 0 && f == 0 {
		f = 1
	}
	return StyleCompleted.Render(strings.Repeat(filledBlock, c)) + StyleFailed.Render(strings.Repeat(filledBlock, f))
}

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders values as a single line of block characters. Zero
// values render as a space so quiet days stand out.
func Sparkline(values []int) string {
	peak := 0
	for _, v := range values {
		peak = max(peak, v)
	}
	var b strings.Builder
	for _, v := range values {
		if v <= 0 || peak == 0 {
			b.WriteRune(' ')
			continue
		}
		idx := (v*len(sparkLevels) - 1) / peak
		b.WriteRune(sparkLevels[min(idx, len(sparkLevels)-1)])
	}
	return b.String()
}
