package hyprland

import (
	"strings"

	"codeberg.org/miketth/hyprtap/pkg/switcher"
)

type keyboard struct {
	Name         string `json:"name"`
	Layout       string `json:"layout"`
	Variant      string `json:"variant"`
	Options      string `json:"options"`
	ActiveKeymap string `json:"active_keymap"`
}

type devices struct {
	Keyboards []keyboard `json:"keyboards"`
}

type option struct {
	Option string `json:"option"`
	Str    string `json:"str"`
	Set    bool   `json:"set"`
}

func (k keyboard) ToKeyboard() switcher.Keyboard {
	return switcher.Keyboard{
		Name:     k.Name,
		Layouts:  strings.Split(k.Layout, ","),
		Variants: strings.Split(k.Variant, ","),
	}
}
