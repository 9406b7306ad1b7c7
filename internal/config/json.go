package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field names and
// string durations.
type StructuredJSONConfig struct {
	App struct {
		PasswordHasher string `json:"password_hasher"`
		BcryptCost     int    `json:"bcrypt_cost"`
		TokenName      string `json:"token_name"`
		Version        string `json:"version"`
		LogLevel       string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver         string `json:"driver"`
			DSN            string `json:"dsn"`
			MaxOpenConns   int    `json:"max_open_conns"`
			ConnectRetries uint64 `json:"connect_retries"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
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
			PasswordHasher: jsonCfg.App.PasswordHasher,
			BcryptCost:     jsonCfg.App.BcryptCost,
			TokenName:      jsonCfg.App.TokenName,
			Version:        jsonCfg.App.Version,
			LogLevel:       jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver:         jsonCfg.Storage.DB.Driver,
				DSN:            jsonCfg.Storage.DB.DSN,
				MaxOpenConns:   jsonCfg.Storage.DB.MaxOpenConns,
				ConnectRetries: jsonCfg.Storage.DB.ConnectRetries,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
