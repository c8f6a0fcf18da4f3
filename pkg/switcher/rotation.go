package switcher

// Advance applies the rotation decision for the press most recently folded
// in by RegisterPress and returns the layout index to activate.
//
// A lone tap (Counter <= 1) toggles CurFreq between slots 0 and 1, the
// two-entry cache of recently used layouts. A confirmed rapid run moves
// CurAll one dormant slot further and promotes the layout found there into
// the active slot by swapping the two entries, so every visited layout ends
// up in the cache.
func (d *Data) Advance() int {
	if len(d.Layouts) < 2 {
		// nothing to rotate through
		return d.CurrentLayout()
	}

	if d.Counter <= 1 {
		d.CurFreq = (d.CurFreq + 1) % 2
		return d.CurrentLayout()
	}

	if d.Counter > 2 {
		d.CurAll++
	} else {
		// first press that confirms the run: jump past the cache
		d.CurAll = 2
	}
	d.CurAll %= len(d.Layouts)

	if d.CurAll == d.CurFreq {
		// the probe may step past the last slot when the active slot
		// occupies it, so wrap to keep the swap in range
		d.CurAll = (d.CurAll + 1) % len(d.Layouts)
	}

	d.Layouts[d.CurAll], d.Layouts[d.CurFreq] = d.Layouts[d.CurFreq], d.Layouts[d.CurAll]

	return d.CurrentLayout()
}
