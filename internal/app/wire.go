package app

import (
	"stegamoji/internal/clipboard"
	"stegamoji/internal/config"
	"stegamoji/internal/domain"
	"stegamoji/internal/stego/detect"
	"stegamoji/internal/stego/tag"
	"stegamoji/internal/stego/zwc"
)

// Wire bundles the codecs, detector, clipboard and user defaults for the CLI.
type Wire struct {
	Tag       domain.Codec
	Binary    domain.Codec
	Detector  domain.Detector
	Clipboard domain.Clipboard
	Defaults  config.Config
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	path := cfg.ConfigPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	defaults, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	cb := cfg.Clipboard
	if cb == nil {
		cb = clipboard.System{}
	}

	return &Wire{
		Tag:       tag.Codec{},
		Binary:    zwc.Codec{},
		Detector:  detect.New(),
		Clipboard: cb,
		Defaults:  defaults,
	}, nil
}

// Codec returns the codec for an encoding scheme.
func (w *Wire) Codec(s domain.Scheme) (domain.Codec, bool) {
	switch s {
	case domain.SchemeTag:
		return w.Tag, true
	case domain.SchemeBinary:
		return w.Binary, true
	default:
		return nil, false
	}
}
