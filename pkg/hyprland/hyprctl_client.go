package hyprland

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"regexp"
	"strings"

	"codeberg.org/miketth/hyprtap/pkg/switcher"
)

// Hyprctl talks to the Hyprland request socket, covering the subset of
// hyprctl the switcher needs: device enumeration, the configured layout
// list, and switchxkblayout.
type Hyprctl struct{}

func NewHyprctl() (*Hyprctl, error) {
	return &Hyprctl{}, nil
}

var (
	ErrIndexOutOfRange = errors.New("layout index out of range")
	ErrDeviceNotFound  = errors.New("device not found")
)

var errorMapper = map[*regexp.Regexp]error{
	regexp.MustCompile(`layout idx out of range.*`): ErrIndexOutOfRange,
	regexp.MustCompile(`device not found`):          ErrDeviceNotFound,
}

// SwitchToLayout activates the layout at idx on the given keyboard.
func (c *Hyprctl) SwitchToLayout(keyboard string, idx int) error {
	conn, err := c.makeRequest(fmt.Sprintf("switchxkblayout %s %d", keyboard, idx), "")
	if err != nil {
		return err
	}
	defer conn.Close()

	var buf bytes.Buffer
	_, err = io.Copy(&buf, conn)
	if err != nil {
		return fmt.Errorf("read response from hyprctl socket: %w", err)
	}

	outStr := strings.TrimSpace(buf.String())
	if outStr == "ok" {
		return nil
	}

	for re, mappedErr := range errorMapper {
		if re.MatchString(outStr) {
			return mappedErr
		}
	}

	return fmt.Errorf("hyprctl: %s", outStr)
}

// GetKeyboards enumerates the keyboards known to the compositor.
func (c *Hyprctl) GetKeyboards() ([]switcher.Keyboard, error) {
	conn, err := c.makeRequest("devices", "j")
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	dec := json.NewDecoder(conn)

	var devs devices
	if err := dec.Decode(&devs); err != nil {
		return nil, fmt.Errorf("unmarshal devices: %w", err)
	}

	keyboards := devs.Keyboards
	out := make([]switcher.Keyboard, 0, len(keyboards))
	for _, k := range keyboards {
		out = append(out, k.ToKeyboard())
	}

	return out, nil
}

// GetConfiguredLayouts reads the input:kb_layout option and splits it into
// the configured layout codes, in config order.
func (c *Hyprctl) GetConfiguredLayouts() ([]string, error) {
	conn, err := c.makeRequest("getoption input:kb_layout", "j")
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	dec := json.NewDecoder(conn)

	var opt option
	if err := dec.Decode(&opt); err != nil {
		return nil, fmt.Errorf("unmarshal option: %w", err)
	}

	if opt.Str == "" {
		return nil, fmt.Errorf("option input:kb_layout has no string value")
	}

	return strings.Split(opt.Str, ","), nil
}

func (c *Hyprctl) makeRequest(request string, args string) (net.Conn, error) {
	conn, err := connect(Hyperctl)
	if err != nil {
		return nil, err
	}

	_, err = conn.Write([]byte(fmt.Sprintf("%s/%s", args, request)))
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("write to hyprctl socket: %w", err)
	}

	return conn, nil
}
