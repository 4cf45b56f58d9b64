package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations so operators can write "15m" instead of
// nanosecond counts.
type StructuredJSONConfig struct {
	App struct {
		BcryptCost int `json:"bcrypt_cost"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Content struct {
			Region     string   `json:"region"`
			Endpoint   string   `json:"endpoint"`
			Bucket     string   `json:"bucket"`
			AccessKey  string   `json:"access_key"`
			SecretKey  string   `json:"secret_key"`
			PresignTTL Duration `json:"presign_ttl"`
		} `json:"content,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	RateLimit struct {
		GlobalWindow Duration `json:"global_window"`
		GlobalLimit  int      `json:"global_limit"`
		AuthWindow   Duration `json:"auth_window"`
		AuthLimit    int      `json:"auth_limit"`
	} `json:"rate_limit,omitempty"`
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
			BcryptCost: jsonCfg.App.BcryptCost,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Content: Content{
				Region:     jsonCfg.Storage.Content.Region,
				Endpoint:   jsonCfg.Storage.Content.Endpoint,
				Bucket:     jsonCfg.Storage.Content.Bucket,
				AccessKey:  jsonCfg.Storage.Content.AccessKey,
				SecretKey:  jsonCfg.Storage.Content.SecretKey,
				PresignTTL: time.Duration(jsonCfg.Storage.Content.PresignTTL),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		RateLimit: RateLimit{
			GlobalWindow: time.Duration(jsonCfg.RateLimit.GlobalWindow),
			GlobalLimit:  jsonCfg.RateLimit.GlobalLimit,
			AuthWindow:   time.Duration(jsonCfg.RateLimit.AuthWindow),
			AuthLimit:    jsonCfg.RateLimit.AuthLimit,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
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
