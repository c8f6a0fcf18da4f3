package switcher

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeStore keeps the record in memory, copying on both sides like a real
// store does across process boundaries.
type fakeStore struct {
	data *Data
}

func (s *fakeStore) Load() (*Data, error) {
	if s.data == nil {
		return nil, ErrNotInitialized
	}
	out := *s.data
	out.Devices = append([]string(nil), s.data.Devices...)
	out.Layouts = append([]int(nil), s.data.Layouts...)
	return &out, nil
}

func (s *fakeStore) Store(data *Data) error {
	out := *data
	out.Devices = append([]string(nil), data.Devices...)
	out.Layouts = append([]int(nil), data.Layouts...)
	s.data = &out
	return nil
}

func (s *fakeStore) Close() error { return nil }

type layoutCall struct {
	device string
	layout int
}

type fakeHyprctl struct {
	mu        sync.Mutex
	keyboards []Keyboard
	layouts   []string
	fail      map[string]error
	calls     []layoutCall
}

func (f *fakeHyprctl) GetKeyboards() ([]Keyboard, error) {
	return f.keyboards, nil
}

func (f *fakeHyprctl) GetConfiguredLayouts() ([]string, error) {
	return f.layouts, nil
}

func (f *fakeHyprctl) SwitchToLayout(keyboard string, idx int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.fail[keyboard]; err != nil {
		return err
	}

	f.calls = append(f.calls, layoutCall{device: keyboard, layout: idx})
	return nil
}

func (f *fakeHyprctl) layoutsFor(device string) []int {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []int
	for _, call := range f.calls {
		if call.device == device {
			out = append(out, call.layout)
		}
	}
	return out
}

func newTestSwitcher(t *testing.T, hyprctl *fakeHyprctl) (*Switcher, *fakeStore) {
	t.Helper()

	store := &fakeStore{}
	sw := NewSwitcher(store, hyprctl, zap.NewNop().Sugar())
	sw.now = func() float64 { return 100 }
	return sw, store
}

func TestSwitcherInit(t *testing.T) {
	hyprctl := &fakeHyprctl{
		keyboards: []Keyboard{{Name: "kb1"}, {Name: "kb2"}},
		layouts:   []string{"us", "hu", "de"},
	}
	sw, store := newTestSwitcher(t, hyprctl)

	require.NoError(t, sw.Init([]string{"kb1", "bogus", "kb2"}))

	require.NotNil(t, store.data)
	assert.Equal(t, []string{"kb1", "kb2"}, store.data.Devices, "unknown names are skipped")
	assert.Equal(t, []int{0, 1, 2}, store.data.Layouts)
	assert.Equal(t, float64(100), store.data.LastTime)
	assert.Equal(t, DefaultMaxDuration, store.data.MaxDuration)
}

func TestSwitcherSwitch_RequiresInit(t *testing.T) {
	sw, _ := newTestSwitcher(t, &fakeHyprctl{})

	err := sw.Switch()
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestSwitcherSwitch_LoneTapToggles(t *testing.T) {
	hyprctl := &fakeHyprctl{
		keyboards: []Keyboard{{Name: "kb1"}, {Name: "ignored"}},
		layouts:   []string{"us", "hu"},
	}
	sw, store := newTestSwitcher(t, hyprctl)
	require.NoError(t, sw.Init([]string{"kb1"}))

	sw.now = func() float64 { return 110 }
	require.NoError(t, sw.Switch())

	assert.Equal(t, []int{1}, hyprctl.layoutsFor("kb1"))
	assert.Empty(t, hyprctl.layoutsFor("ignored"), "only registered devices are driven")
	assert.Equal(t, 1, store.data.CurFreq)
	assert.Equal(t, 1, store.data.Counter)
	assert.Equal(t, float64(110), store.data.LastTime)
}

func TestSwitcherSwitch_BurstWalksLayouts(t *testing.T) {
	hyprctl := &fakeHyprctl{
		keyboards: []Keyboard{{Name: "kb1"}},
		layouts:   []string{"us", "hu", "de"},
	}
	sw, store := newTestSwitcher(t, hyprctl)
	require.NoError(t, sw.Init([]string{"kb1"}))

	for _, pressTime := range []float64{100.5, 100.55, 100.6} {
		pressTime := pressTime
		sw.now = func() float64 { return pressTime }
		require.NoError(t, sw.Switch())
	}

	// lone tap toggles to slot 1, the confirmed burst then promotes the
	// dormant layouts one by one
	assert.Equal(t, []int{1, 2, 0}, hyprctl.layoutsFor("kb1"))
	assert.Equal(t, 3, store.data.Counter)
}

func TestSwitcherSwitch_DeviceFailureDoesNotBlockOthers(t *testing.T) {
	hyprctl := &fakeHyprctl{
		keyboards: []Keyboard{{Name: "broken"}, {Name: "kb1"}},
		layouts:   []string{"us", "hu"},
		fail:      map[string]error{"broken": assert.AnError},
	}
	sw, store := newTestSwitcher(t, hyprctl)
	require.NoError(t, sw.Init([]string{"broken", "kb1"}))

	sw.now = func() float64 { return 110 }
	require.NoError(t, sw.Switch(), "per-device failures are not fatal")

	assert.Equal(t, []int{1}, hyprctl.layoutsFor("kb1"))
	assert.Equal(t, 1, store.data.CurFreq, "state is persisted regardless")
}

func TestSwitcherUpdateLayouts(t *testing.T) {
	hyprctl := &fakeHyprctl{
		keyboards: []Keyboard{{Name: "kb1"}},
		layouts:   []string{"us", "hu"},
	}
	sw, store := newTestSwitcher(t, hyprctl)
	require.NoError(t, sw.Init([]string{"kb1"}))
	store.data.Layouts = []int{1, 0}

	hyprctl.layouts = []string{"us", "hu", "de", "fr"}
	count, err := sw.UpdateLayouts()

	require.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.Equal(t, []int{0, 1, 2, 3}, store.data.Layouts)
	assert.Equal(t, []string{"kb1"}, store.data.Devices)
}

func TestSwitcherAddDevice(t *testing.T) {
	hyprctl := &fakeHyprctl{
		keyboards: []Keyboard{{Name: "kb1"}, {Name: "kb2"}},
		layouts:   []string{"us", "hu"},
	}
	sw, store := newTestSwitcher(t, hyprctl)
	require.NoError(t, sw.Init([]string{"kb1"}))

	err := sw.AddDevice("bogus")
	assert.ErrorIs(t, err, ErrUnknownDevice)
	assert.Contains(t, err.Error(), "kb2", "the error lists available keyboards")
	assert.Equal(t, []string{"kb1"}, store.data.Devices, "nothing is written on rejection")

	require.NoError(t, sw.AddDevice("kb2"))
	assert.Equal(t, []string{"kb1", "kb2"}, store.data.Devices)
}

func TestSwitcherRemoveDevice(t *testing.T) {
	hyprctl := &fakeHyprctl{
		keyboards: []Keyboard{{Name: "kb1"}, {Name: "kb2"}},
		layouts:   []string{"us", "hu"},
	}
	sw, store := newTestSwitcher(t, hyprctl)
	require.NoError(t, sw.Init([]string{"kb1", "kb2"}))

	require.NoError(t, sw.RemoveDevice("kb1"))
	assert.Equal(t, []string{"kb2"}, store.data.Devices)

	require.NoError(t, sw.RemoveDevice("missing"), "removing an absent device is a no-op")
	assert.Equal(t, []string{"kb2"}, store.data.Devices)
}

func TestSwitcherThreshold(t *testing.T) {
	hyprctl := &fakeHyprctl{
		keyboards: []Keyboard{{Name: "kb1"}},
		layouts:   []string{"us", "hu"},
	}
	sw, store := newTestSwitcher(t, hyprctl)
	require.NoError(t, sw.Init([]string{"kb1"}))

	threshold, err := sw.Threshold()
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxDuration, threshold)

	assert.ErrorIs(t, sw.SetThreshold(1.5), ErrInvalidDuration)
	assert.ErrorIs(t, sw.SetThreshold(0.1), ErrInvalidDuration)

	require.NoError(t, sw.SetThreshold(0.7))
	threshold, err = sw.Threshold()
	require.NoError(t, err)
	assert.Equal(t, Duration(0.7), threshold)

	// setting the stored value again changes nothing else
	before := *store.data
	require.NoError(t, sw.SetThreshold(0.7))
	after := *store.data
	assert.Equal(t, before.Devices, after.Devices)
	assert.Equal(t, before.Layouts, after.Layouts)
	assert.Equal(t, before.LastTime, after.LastTime)
	assert.Equal(t, before.Counter, after.Counter)
}
