package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and the
// [Duration] wrapper so that durations can be written as "30s" strings.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		Vault struct {
			Path string `json:"path"`
		} `json:"vault,omitempty"`

		Key struct {
			Path string `json:"path"`
		} `json:"key,omitempty"`
	} `json:"storage,omitempty"`

	Generator struct {
		Length int `json:"length"`
	} `json:"generator,omitempty"`

	Workers struct {
		ClipboardTTL Duration `json:"clipboard_ttl"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			Vault: Vault{Path: jsonCfg.Storage.Vault.Path},
			Key:   Key{Path: jsonCfg.Storage.Key.Path},
		},
		Generator: Generator{
			Length: jsonCfg.Generator.Length,
		},
		Workers: Workers{
			ClipboardTTL: time.Duration(jsonCfg.Workers.ClipboardTTL),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
