package store

import (
	"tableflip.dev/confusion/pkg/config"
)

// Config locates the on-disk store.
type Config interface {
	BasePath() string
}

// LoadConfig reads the runtime settings and returns them as a store Config.
func LoadConfig() (Config, error) {
	s, err := config.Load()
	if err != nil {
		return nil, err
	}
	return s, nil
}
