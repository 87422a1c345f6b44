// Package config provides configuration structures for the application.
package config

import (
	"fmt"
	"strings"
)

type Config struct {
	Debug        bool     `json:"debug" yaml:"debug" mapstructure:"debug"`
	DebugModules []string `json:"debugModules" yaml:"debugModules" mapstructure:"debugModules"`
	DisableANSI  bool     `json:"disableANSI" yaml:"disableANSI" mapstructure:"disableANSI"`
	ConfigPath   string   `json:"configPath" yaml:"configPath" mapstructure:"configPath"`
	Report       Report   `json:"report" yaml:"report" mapstructure:"report"`
	Schema       Schema   `json:"schema" yaml:"schema" mapstructure:"schema"`
	ConfigName   string   `json:"configName" yaml:"configName" mapstructure:"configName"`
}

type Report struct {
	Format  Format    `json:"format" yaml:"format" mapstructure:"format"`
	Color   ColorMode `json:"color" yaml:"color" mapstructure:"color"`
	Summary bool      `json:"summary" yaml:"summary" mapstructure:"summary"`
}

type Schema struct {
	// ImportPaths are include roots searched after the root directory of each side.
	ImportPaths    []string `json:"importPaths" yaml:"importPaths" mapstructure:"importPaths"`
	LegacyDefaults bool     `json:"legacyDefaults" yaml:"legacyDefaults" mapstructure:"legacyDefaults"`
}

// Format is the output format of the report. It implements pflag.Value.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

func (f *Format) String() string {
	return string(*f)
}

func (f *Format) Set(v string) error {
	switch Format(strings.ToLower(v)) {
	case FormatText, FormatYAML, FormatJSON:
		*f = Format(strings.ToLower(v))
		return nil
	default:
		return fmt.Errorf(`must be one of "text", "yaml" or "json"`)
	}
}

func (f *Format) Type() string {
	return "format"
}

// ColorMode decides when the text report is colored. It implements pflag.Value.
type ColorMode string

const (
	ColorAuto ColorMode = "auto"
	ColorOn   ColorMode = "on"
	ColorOff  ColorMode = "off"
)

func (c *ColorMode) String() string {
	return string(*c)
}

func (c *ColorMode) Set(v string) error {
	switch ColorMode(strings.ToLower(v)) {
	case ColorAuto, ColorOn, ColorOff:
		*c = ColorMode(strings.ToLower(v))
		return nil
	default:
		return fmt.Errorf(`must be one of "auto", "on" or "off"`)
	}
}

func (c *ColorMode) Type() string {
	return "color"
}

// Validate checks the values that can also come from a config file, where
// they bypass the flag parsers.
func (c *Config) Validate() error {
	if c.Report.Format == "" {
		c.Report.Format = FormatText
	}
	if c.Report.Color == "" {
		c.Report.Color = ColorAuto
	}
	f := c.Report.Format
	if err := f.Set(string(c.Report.Format)); err != nil {
		return fmt.Errorf("invalid report format %q: %w", c.Report.Format, err)
	}
	c.Report.Format = f
	m := c.Report.Color
	if err := m.Set(string(c.Report.Color)); err != nil {
		return fmt.Errorf("invalid color mode %q: %w", c.Report.Color, err)
	}
	c.Report.Color = m
	return nil
}
