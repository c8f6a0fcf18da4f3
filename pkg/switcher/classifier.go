package switcher

// RegisterPress folds a press timestamp (seconds since epoch) into the run
// accumulator.
//
// The first two presses of a run are tested cumulatively: their summed gap
// has to fit inside the window. Once the run is confirmed (Counter >= 2) the
// accumulator is cleared after every press, so from the third press on each
// individual gap has to fit. A timestamp behind LastTime is allowed; the
// negative gap only makes the window easier to satisfy.
func (d *Data) RegisterPress(t float64) {
	diff := t - d.LastTime
	d.LastTime = t

	d.SumTime += diff

	if d.MaxDuration.Satisfies(d.SumTime) {
		d.Counter++
	} else {
		d.SumTime = 0
		d.Counter = 1
	}

	if d.Counter >= 2 {
		d.SumTime = 0
	}
}
