package app

import (
	"parabola/editor"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the editor settings. Defaults come from struct tags and may be
// overridden through PARABOLA_* environment variables.
type Config struct {
	CaptureRadius float64 `envconfig:"CAPTURE_RADIUS" default:"0.3"`
	DragAll       bool    `envconfig:"DRAG_ALL" default:"false"`
	Samples       int     `envconfig:"SAMPLES" default:"100"`
	Verbose       bool    `envconfig:"VERBOSE" default:"false"`

	Width  int `envconfig:"WIDTH" default:"480"`
	Height int `envconfig:"HEIGHT" default:"320"`
	Scale  int `envconfig:"SCALE" default:"2"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("parabola", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) taskConfig() editor.TaskConfig {
	return editor.TaskConfig{
		Editor: editor.Config{
			CaptureRadius: c.CaptureRadius,
			DragAll:       c.DragAll,
			Samples:       c.Samples,
			View:          editor.DefaultView,
		},
		Verbose: c.Verbose,
	}
}
