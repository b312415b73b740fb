package app

import "stegamoji/internal/domain"

// Config holds runtime wiring options for building the app.
type Config struct {
	ConfigPath string           // config file, e.g. $HOME/.stegamoji/config.toml ("" = default)
	Clipboard  domain.Clipboard // optional; defaults to the system clipboard
}
