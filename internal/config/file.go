package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// fileConfig is the shape of the JSON config file. Pointer fields distinguish
// "absent" from an explicit zero value.
type fileConfig struct {
	ReplacementCharacters []string `mapstructure:"replacement_characters"`
	Root                  *string  `mapstructure:"root"`
	LogFile               *string  `mapstructure:"log_file"`
	Color                 *string  `mapstructure:"color"`
	Verbose               *bool    `mapstructure:"verbose"`
	SortChildren          *bool    `mapstructure:"sort_children"`
	DirectoryNames        *string  `mapstructure:"directory_names"`
	Exclude               []string `mapstructure:"exclude"`
}

// LoadFile reads the JSON config file at path and applies the keys it sets
// over cfg. Keys not present leave cfg untouched; unknown keys are an error.
//
// replacement_characters accepts either a string (" .-") or a list of
// strings ([" ", ".", "-"]).
func LoadFile(cfg *Config, path string) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return fmt.Errorf("config file: %w", err)
	}
	return applyFileData(cfg, data, expanded)
}

func applyFileData(cfg *Config, data []byte, source string) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("config file %s: %w", source, err)
	}

	var fc fileConfig
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &fc,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("config file %s: %w", source, err)
	}

	if _, ok := raw["replacement_characters"]; ok {
		cfg.ReplacementCharacters = strings.Join(fc.ReplacementCharacters, "")
	}
	if fc.Root != nil {
		cfg.Root = NormalizeDirArg(*fc.Root)
	}
	if fc.LogFile != nil {
		cfg.LogFile = *fc.LogFile
	}
	if fc.Color != nil {
		cfg.ColorMode = ColorMode(strings.ToLower(*fc.Color))
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	if fc.SortChildren != nil {
		cfg.SortChildren = *fc.SortChildren
	}
	if fc.DirectoryNames != nil {
		cfg.DirectoryNames = DirNameMode(strings.ToLower(*fc.DirectoryNames))
	}
	if fc.Exclude != nil {
		cfg.Exclude = append([]string(nil), fc.Exclude...)
	}
	cfg.ConfigFile = source
	return nil
}
