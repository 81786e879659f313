package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/petcare/pawpal/internal/testutil"
)

func TestRunDemo(t *testing.T) {
	var buf bytes.Buffer
	clock := &testutil.MockClock{NowTime: time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)}

	runDemo(&buf, clock)
	out := buf.String()

	// The 55 minute budget fits the litter box, the walk and playtime;
	// the completed feed is skipped.
	assert.Contains(t, out, "=== PawPal Today's Schedule ===")
	assert.Contains(t, out, "[#3] Clean litter box - 10 min (priority 5)")
	assert.Contains(t, out, "[#1] Morning walk - 20 min (priority 5)")
	assert.Contains(t, out, "[#4] Playtime with Ani - 15 min (priority 3)")
	assert.Contains(t, out, "Total scheduled time: 45 min (out of 55 min)")

	assert.Contains(t, out, "- Skipped 'Feed Haze' (already completed).")

	assert.Contains(t, out, "=== Tasks by Pet ===")
	assert.Contains(t, out, "Ani:")
	assert.Contains(t, out, "Haze:")

	assert.Contains(t, out, "=== Tasks Sorted by Time ===")
	assert.Contains(t, out, "[#4] Playtime with Ani at 450 min")

	assert.Contains(t, out, "[#1] Morning walk (incomplete)")
	assert.Contains(t, out, "[#1] Morning walk (completed)")
	assert.Contains(t, out, "[#2] Feed Haze (completed)")
}
