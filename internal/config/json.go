package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout accepted
// from a JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		MasterKey                string   `json:"encryption_master_key"`
		MasterKeySecretID        string   `json:"master_key_secret_id"`
		TokenSignKey             string   `json:"token_sign_key"`
		TokenIssuer              string   `json:"token_issuer"`
		TokenDuration            Duration `json:"token_duration"`
		ServerSideDecryptionOnly bool     `json:"server_side_decryption_only"`
		Version                  string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Objects struct {
			Bucket       string   `json:"bucket"`
			Region       string   `json:"region"`
			Endpoint     string   `json:"endpoint"`
			UsePathStyle bool     `json:"use_path_style"`
			PresignTTL   Duration `json:"presign_ttl"`
		} `json:"objects,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		TranscriberURL    string   `json:"transcriber_url"`
		TranscriberAPIKey string   `json:"transcriber_api_key"`
		RequestTimeout    Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		TranscriptionConcurrency int `json:"transcription_concurrency"`
		TranscriptionQueueSize   int `json:"transcription_queue_size"`
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
			MasterKey:                jsonCfg.App.MasterKey,
			MasterKeySecretID:        jsonCfg.App.MasterKeySecretID,
			TokenSignKey:             jsonCfg.App.TokenSignKey,
			TokenIssuer:              jsonCfg.App.TokenIssuer,
			TokenDuration:            time.Duration(jsonCfg.App.TokenDuration),
			ServerSideDecryptionOnly: jsonCfg.App.ServerSideDecryptionOnly,
			Version:                  jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Objects: Objects{
				Bucket:       jsonCfg.Storage.Objects.Bucket,
				Region:       jsonCfg.Storage.Objects.Region,
				Endpoint:     jsonCfg.Storage.Objects.Endpoint,
				UsePathStyle: jsonCfg.Storage.Objects.UsePathStyle,
				PresignTTL:   time.Duration(jsonCfg.Storage.Objects.PresignTTL),
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			TranscriberURL:    jsonCfg.Adapter.TranscriberURL,
			TranscriberAPIKey: jsonCfg.Adapter.TranscriberAPIKey,
			RequestTimeout:    time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			TranscriptionConcurrency: jsonCfg.Workers.TranscriptionConcurrency,
			TranscriptionQueueSize:   jsonCfg.Workers.TranscriptionQueueSize,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
