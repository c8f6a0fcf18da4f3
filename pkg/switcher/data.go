package switcher

// Data is the single persisted record the switcher works on. One record
// exists per user; every invocation loads it, folds the new press in, and
// writes it back.
//
// Layouts is always a permutation of 0..len(Layouts). Slots 0 and 1 hold
// the two most recently used layouts, CurFreq points at the active one and
// CurAll is the cursor that sweeps the dormant slots during a rapid run.
type Data struct {
	Devices     []string `json:"devices"`
	LastTime    float64  `json:"last_time"`
	Layouts     []int    `json:"layouts"`
	CurFreq     int      `json:"cur_freq"`
	CurAll      int      `json:"cur_all"`
	SumTime     float64  `json:"sum_time"`
	Counter     int      `json:"counter"`
	MaxDuration Duration `json:"max_duration"`
}

// NewData builds a fresh record: identity permutation over layoutCount
// layouts, both cursors on slot 0, default threshold.
func NewData(devices []string, layoutCount int, now float64) *Data {
	return &Data{
		Devices:     devices,
		LastTime:    now,
		Layouts:     identity(layoutCount),
		MaxDuration: DefaultMaxDuration,
	}
}

// ResetLayouts replaces the permutation with the identity of the new size.
// Cursors and timing fields are left alone.
func (d *Data) ResetLayouts(layoutCount int) {
	d.Layouts = identity(layoutCount)
}

// CurrentLayout returns the layout index occupying the active slot.
func (d *Data) CurrentLayout() int {
	if len(d.Layouts) == 0 {
		return 0
	}
	return d.Layouts[d.CurFreq]
}

// AddDevice appends a device name. Callers validate the name against the
// live keyboard enumeration first.
func (d *Data) AddDevice(name string) {
	d.Devices = append(d.Devices, name)
}

// RemoveDevice drops the first matching entry and reports whether one was
// found.
func (d *Data) RemoveDevice(name string) bool {
	for i, dev := range d.Devices {
		if dev == name {
			d.Devices = append(d.Devices[:i], d.Devices[i+1:]...)
			return true
		}
	}
	return false
}

func identity(n int) []int {
	layouts := make([]int, n)
	for i := range layouts {
		layouts[i] = i
	}
	return layouts
}
