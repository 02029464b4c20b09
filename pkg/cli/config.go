package cli

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lilith-lang/lilith/internal/config"
)

// Config is the optional lilith.yaml file, looked up in the working
// directory and then in $HOME.
type Config struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	Color       bool   `yaml:"color"`
}

func defaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		Prompt:      config.DefaultPrompt,
		HistoryFile: filepath.Join(home, config.DefaultHistoryFile),
		Color:       true,
	}
}

// LoadConfig reads the first lilith.yaml found over the defaults. A missing
// file is not an error; a malformed one is.
func LoadConfig() (Config, error) {
	cfg := defaultConfig()

	candidates := []string{"lilith.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, "lilith.yaml"))
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
		break
	}
	return cfg, nil
}
