// Package xkblayouts reads the xkb registry (evdev.xml) so layout codes can
// be shown with their human-readable descriptions and vice versa.
package xkblayouts

import (
	"encoding/xml"
	"fmt"
	"os"
)

type XkbConfigRegistry struct {
	XMLName    xml.Name   `xml:"xkbConfigRegistry"`
	LayoutList LayoutList `xml:"layoutList"`
}

type LayoutList struct {
	Layout []Layout `xml:"layout"`
}

type Layout struct {
	ConfigItem  ConfigItem  `xml:"configItem"`
	VariantList VariantList `xml:"variantList"`
}

type VariantList struct {
	Variant []Variant `xml:"variant"`
}

type Variant struct {
	ConfigItem ConfigItem `xml:"configItem"`
}

type ConfigItem struct {
	Name        string `xml:"name"`
	Description string `xml:"description"`
}

func ParseLayouts(path string) (*XkbConfigRegistry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	registry := &XkbConfigRegistry{}
	err = xml.NewDecoder(file).Decode(registry)
	if err != nil {
		return nil, fmt.Errorf("decode xml: %w", err)
	}

	return registry, nil
}

// GetLayoutPrettyName returns the description for a layout code and variant,
// or "" when the registry does not know it.
func (r *XkbConfigRegistry) GetLayoutPrettyName(layout, variant string) string {
	for _, l := range r.LayoutList.Layout {
		if l.ConfigItem.Name != layout {
			continue
		}

		if variant == "" {
			return l.ConfigItem.Description
		}

		for _, v := range l.VariantList.Variant {
			if v.ConfigItem.Name == variant {
				return v.ConfigItem.Description
			}
		}
	}

	return ""
}

// GetLayoutAndVariantFromPrettyName resolves a description back to its
// layout code and variant code.
func (r *XkbConfigRegistry) GetLayoutAndVariantFromPrettyName(prettyName string) (string, string) {
	for _, l := range r.LayoutList.Layout {
		if l.ConfigItem.Description == prettyName {
			return l.ConfigItem.Name, ""
		}

		for _, v := range l.VariantList.Variant {
			if v.ConfigItem.Description == prettyName {
				return l.ConfigItem.Name, v.ConfigItem.Name
			}
		}
	}

	return "", ""
}
