package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-voice-keeper/internal/config"
	"github.com/MKhiriev/go-voice-keeper/internal/crypto"
	"github.com/MKhiriev/go-voice-keeper/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// SecretsClient is the subset of the Secrets Manager API used to fetch the
// master key.
type SecretsClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// MasterKeyProvider resolves the server master key once at startup.
type MasterKeyProvider struct {
	secrets SecretsClient
	logger  *logger.Logger
}

// NewMasterKeyProvider returns a provider. secrets may be nil when the key
// comes from configuration only.
func NewMasterKeyProvider(secrets SecretsClient, logger *logger.Logger) *MasterKeyProvider {
	return &MasterKeyProvider{secrets: secrets, logger: logger}
}

// NewAWSSecretsClient builds a Secrets Manager client from the default AWS
// credential chain.
func NewAWSSecretsClient(ctx context.Context) (SecretsClient, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return secretsmanager.NewFromConfig(awsCfg), nil
}

// MasterKey returns the master key named by cfg. A configured secret id wins
// over an inline key. A missing or empty key yields [crypto.ErrConfiguration].
func (p *MasterKeyProvider) MasterKey(ctx context.Context, cfg config.App) (string, error) {
	if cfg.MasterKeySecretID == "" {
		if cfg.MasterKey == "" {
			return "", fmt.Errorf("%w: master key is not set", crypto.ErrConfiguration)
		}
		p.logger.Info().Str("source", "config").Msg("master key loaded")
		return cfg.MasterKey, nil
	}

	if p.secrets == nil {
		return "", fmt.Errorf("%w: secrets client is not configured", crypto.ErrConfiguration)
	}

	out, err := p.secrets.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(cfg.MasterKeySecretID),
	})
	if err != nil {
		return "", fmt.Errorf("%w: get secret value: %w", crypto.ErrConfiguration, err)
	}

	var key string
	switch {
	case out.SecretString != nil:
		key = strings.TrimSpace(*out.SecretString)
	case len(out.SecretBinary) > 0:
		key = strings.TrimSpace(string(out.SecretBinary))
	}
	if key == "" {
		return "", fmt.Errorf("%w: %w", crypto.ErrConfiguration, ErrMasterKeyUnavailable)
	}

	p.logger.Info().Str("source", "secretsmanager").Msg("master key loaded")
	return key, nil
}
