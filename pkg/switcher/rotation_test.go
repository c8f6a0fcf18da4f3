package switcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvance_LoneTapTogglesActiveSlot(t *testing.T) {
	d := newTestData(2)
	d.Layouts = []int{0, 1}
	d.CurFreq = 0
	d.CurAll = 1
	d.Counter = 1

	target := d.Advance()

	assert.Equal(t, 1, target)
	assert.Equal(t, 1, d.CurFreq)
	assert.Equal(t, []int{0, 1}, d.Layouts, "a lone tap never reorders layouts")
	assert.Equal(t, 1, d.CurAll, "a lone tap never moves the rotation cursor")
}

func TestAdvance_LoneTapToggleIsAnInvolution(t *testing.T) {
	d := newTestData(4)
	d.Layouts = []int{2, 3, 0, 1}
	d.CurFreq = 1
	d.CurAll = 3
	d.Counter = 1

	d.Advance()
	assert.Equal(t, 0, d.CurFreq)

	d.Advance()
	assert.Equal(t, 1, d.CurFreq)
	assert.Equal(t, []int{2, 3, 0, 1}, d.Layouts)
}

func TestAdvance_ThreeLayoutBurst(t *testing.T) {
	d := newTestData(3)
	d.Layouts = []int{0, 1, 2}
	d.CurFreq = 0
	d.CurAll = 1

	// second press of a rapid run: the cursor jumps past the cache
	d.Counter = 2
	target := d.Advance()
	assert.Equal(t, 2, target)
	assert.Equal(t, []int{2, 1, 0}, d.Layouts)
	assert.Equal(t, 2, d.CurAll)

	// third press: cursor wraps onto the active slot and probes past it
	d.Counter = 3
	target = d.Advance()
	assert.Equal(t, 1, target)
	assert.Equal(t, []int{1, 2, 0}, d.Layouts)
	assert.Equal(t, 1, d.CurAll)
}

func TestAdvance_SustainedRunSweep(t *testing.T) {
	d := newTestData(4)

	var targets []int
	for counter := 2; counter <= 6; counter++ {
		d.Counter = counter
		targets = append(targets, d.Advance())
	}

	assert.Equal(t, []int{2, 3, 1, 0, 2}, targets)
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, d.Layouts)
}

func TestAdvance_ProbePastLastSlotWraps(t *testing.T) {
	d := newTestData(2)
	d.Layouts = []int{0, 1}
	d.CurFreq = 1
	d.CurAll = 0
	d.Counter = 3

	target := d.Advance()

	// the cursor lands on the active slot at the top index; the probe must
	// wrap instead of stepping out of range
	assert.Equal(t, 0, d.CurAll)
	assert.Equal(t, 0, target)
	assert.Equal(t, []int{1, 0}, d.Layouts)
}

func TestAdvance_PermutationIsPreserved(t *testing.T) {
	for counter := 1; counter <= 8; counter++ {
		d := newTestData(5)
		d.Counter = counter

		for i := 0; i < 20; i++ {
			d.Advance()

			assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, d.Layouts,
				"counter %d, step %d", counter, i)
			require.Less(t, d.CurFreq, 5)
			require.Less(t, d.CurAll, 5)
			if counter >= 2 {
				require.NotEqual(t, d.CurFreq, d.CurAll)
			}
		}
	}
}

func TestAdvance_FewerThanTwoLayouts(t *testing.T) {
	d := newTestData(1)
	d.Counter = 1
	assert.Equal(t, 0, d.Advance())
	assert.Equal(t, 0, d.CurFreq)

	d = newTestData(0)
	d.Counter = 2
	assert.Equal(t, 0, d.Advance())
	assert.Empty(t, d.Layouts)
}
