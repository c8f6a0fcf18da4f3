package hyprland

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevicesDecode(t *testing.T) {
	payload := `{
		"mice": [{"name": "some-mouse"}],
		"keyboards": [
			{
				"name": "at-translated-set-2-keyboard",
				"layout": "us,hu",
				"variant": ",",
				"options": "grp:alt_shift_toggle",
				"active_keymap": "English (US)"
			}
		]
	}`

	var devs devices
	require.NoError(t, json.Unmarshal([]byte(payload), &devs))
	require.Len(t, devs.Keyboards, 1)

	kb := devs.Keyboards[0].ToKeyboard()
	assert.Equal(t, "at-translated-set-2-keyboard", kb.Name)
	assert.Equal(t, []string{"us", "hu"}, kb.Layouts)
	assert.Equal(t, []string{"", ""}, kb.Variants)
}

func TestOptionDecode(t *testing.T) {
	payload := `{"option": "input:kb_layout", "str": "us,hu,de", "int": 0, "set": true}`

	var opt option
	require.NoError(t, json.Unmarshal([]byte(payload), &opt))
	assert.Equal(t, "input:kb_layout", opt.Option)
	assert.Equal(t, "us,hu,de", opt.Str)
	assert.True(t, opt.Set)
}

func TestGetSocketPath(t *testing.T) {
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "sig123")

	path, err := getSocketPath(Hyperctl)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/hypr/sig123/.socket.sock", path)

	path, err = getSocketPath(Socket2)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/hypr/sig123/.socket2.sock", path)
}

func TestGetSocketPathWithoutSignature(t *testing.T) {
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "")

	_, err := getSocketPath(Socket2)
	assert.ErrorIs(t, err, ErrNotRunning)
}
