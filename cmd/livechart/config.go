package main

import (
	"os"

	"github.com/midbel/livechart"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
)

type LabelConfig struct {
	Show         bool    `yaml:"show"`
	OnlySelected bool    `yaml:"only-selected"`
	Decimals     int     `yaml:"decimals"`
	Separator    string  `yaml:"separator"`
	Prefix       string  `yaml:"prefix"`
	Suffix       string  `yaml:"suffix"`
	TextSize     float64 `yaml:"text-size"`
	TextColor    string  `yaml:"text-color"`
	Typeface     string  `yaml:"typeface"`
	Background   struct {
		Enabled bool   `yaml:"enabled"`
		Auto    bool   `yaml:"auto"`
		Color   string `yaml:"color"`
	} `yaml:"background"`
}

type AxisConfig struct {
	Show     bool   `yaml:"show"`
	Right    bool   `yaml:"right"`
	Ticks    int    `yaml:"ticks"`
	Grid     bool   `yaml:"grid"`
	Color    string `yaml:"color"`
	Decimals int    `yaml:"decimals"`
}

type Config struct {
	Width         float64           `yaml:"width"`
	Height        float64           `yaml:"height"`
	Padding       livechart.Padding `yaml:"padding"`
	Density       float64           `yaml:"density"`
	ScaledDensity float64           `yaml:"scaled-density"`
	Background    string            `yaml:"background"`
	Palette       []string          `yaml:"palette"`
	Stacked       bool              `yaml:"stacked"`
	FillRatio     float64           `yaml:"fill-ratio"`
	BaseValue     float64           `yaml:"base-value"`
	Labels        LabelConfig       `yaml:"labels"`
	Axis          AxisConfig        `yaml:"axis"`
}

func DefaultConfig() Config {
	attrs := livechart.DefaultLabelAttributes()
	cfg := Config{
		Width:  defaultWidth,
		Height: defaultHeight,
		Padding: livechart.Padding{
			Top:    40,
			Right:  40,
			Bottom: 40,
			Left:   40,
		},
		Density:       1,
		ScaledDensity: 1,
		Background:    "#ffffff",
		Palette:       livechart.Tableau10,
		FillRatio:     livechart.DefaultFillRatio,
		BaseValue:     livechart.DefaultBaseValue,
	}
	cfg.Axis.Show = true
	cfg.Axis.Ticks = livechart.DefaultTicks
	cfg.Axis.Color = livechart.DefaultAxisColor
	cfg.Labels.Show = true
	cfg.Labels.TextSize = attrs.TextSize
	cfg.Labels.TextColor = attrs.TextColor
	cfg.Labels.Background.Enabled = attrs.BackgroundEnabled
	cfg.Labels.Background.Auto = attrs.BackgroundAuto
	cfg.Labels.Background.Color = attrs.BackgroundColor
	return cfg
}

// LoadConfig reads a style file. Options missing from the file keep their
// default value.
func LoadConfig(file string) (Config, error) {
	cfg := DefaultConfig()
	if file == "" {
		return cfg, nil
	}
	buf, err := os.ReadFile(file)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "decode config %s", file)
	}
	return cfg, nil
}

func (c Config) LabelAttributes() livechart.LabelAttributes {
	return livechart.LabelAttributes{
		TextSize:          c.Labels.TextSize,
		TextColor:         c.Labels.TextColor,
		Typeface:          c.Labels.Typeface,
		BackgroundEnabled: c.Labels.Background.Enabled,
		BackgroundAuto:    c.Labels.Background.Auto,
		BackgroundColor:   c.Labels.Background.Color,
	}
}

func (c Config) LabelFormat() livechart.LabelFormat {
	return livechart.LabelFormat{
		Decimals:  c.Labels.Decimals,
		Separator: c.Labels.Separator,
		Prefix:    c.Labels.Prefix,
		Suffix:    c.Labels.Suffix,
	}
}

func (c Config) ValueAxis(m livechart.Metrics) *livechart.ValueAxis {
	if !c.Axis.Show {
		return nil
	}
	axis := livechart.ValueAxis{
		Ticks:          c.Axis.Ticks,
		Color:          c.Axis.Color,
		WithOuterTicks: c.Axis.Grid,
		Format:         livechart.LabelFormat{Decimals: c.Axis.Decimals},
		Text: livechart.TextStyle{
			Size:  m.SpToPx(livechart.DefaultLabelTextSize),
			Color: c.Axis.Color,
		},
		Metrics: m,
	}
	if c.Axis.Right {
		axis.Orientation = livechart.OrientRight
	}
	return &axis
}
