package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server command-line flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-master-key encryption master key
//	-master-key-secret-id secrets manager id holding the master key
//	-server-side-decryption-only never return recovered passwords
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-bucket recordings bucket name
//	-s3-endpoint S3 endpoint override
//	-transcriber-url speech-to-text endpoint
//	-transcription-workers number of transcription workers
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("voice-keeper", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var masterKey, masterKeySecretID string
	var serverSideOnly bool
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var bucket, endpoint string
	var transcriberURL string
	var transcriptionWorkers int

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&masterKey, "master-key", "", "Encryption master key")
	fs.StringVar(&masterKeySecretID, "master-key-secret-id", "", "Secrets Manager id of the master key")
	fs.BoolVar(&serverSideOnly, "server-side-decryption-only", false, "Never return recovered file passwords")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&bucket, "bucket", "", "Recordings bucket")
	fs.StringVar(&endpoint, "s3-endpoint", "", "S3 endpoint override")
	fs.StringVar(&transcriberURL, "transcriber-url", "", "Transcription provider URL")
	fs.IntVar(&transcriptionWorkers, "transcription-workers", 0, "Number of transcription workers")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			MasterKey:                masterKey,
			MasterKeySecretID:        masterKeySecretID,
			TokenSignKey:             tokenSignKey,
			TokenIssuer:              tokenIssuer,
			TokenDuration:            tokenDuration,
			ServerSideDecryptionOnly: serverSideOnly,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Objects: Objects{
				Bucket:   bucket,
				Endpoint: endpoint,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			TranscriberURL: transcriberURL,
		},
		Workers: Workers{
			TranscriptionConcurrency: transcriptionWorkers,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
