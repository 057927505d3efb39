package secrets

import (
	"context"
	"fmt"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/sirupsen/logrus"
)

// GCPSecretManager 从 Google Secret Manager 读取 API 凭证
type GCPSecretManager struct {
	client    *secretmanager.Client
	projectID string
	logger    *logrus.Logger
}

// NewGCPSecretManager 创建 Secret Manager 客户端，使用默认应用凭证
func NewGCPSecretManager(ctx context.Context, projectID string, logger *logrus.Logger) (*GCPSecretManager, error) {
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create secretmanager client: %w", err)
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &GCPSecretManager{
		client:    client,
		projectID: projectID,
		logger:    logger,
	}, nil
}

// GetSecret 读取最新版本的 secret
func (g *GCPSecretManager) GetSecret(ctx context.Context, secretName string) (string, error) {
	req := &secretmanagerpb.AccessSecretVersionRequest{
		Name: SecretVersionName(g.projectID, secretName),
	}
	result, err := g.client.AccessSecretVersion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("access secret %s: %w", secretName, err)
	}
	return strings.TrimSpace(string(result.GetPayload().GetData())), nil
}

// GetSecretWithDefault 读取失败时返回默认值
func (g *GCPSecretManager) GetSecretWithDefault(ctx context.Context, secretName, defaultValue string) string {
	if secretName == "" {
		return defaultValue
	}
	value, err := g.GetSecret(ctx, secretName)
	if err != nil {
		g.logger.WithError(err).WithField("secret", secretName).Debug("failed to get secret, using default")
		return defaultValue
	}
	return value
}

// Close 关闭客户端
func (g *GCPSecretManager) Close() error {
	return g.client.Close()
}

// SecretVersionName 最新版本 secret 的资源名
func SecretVersionName(projectID, secretName string) string {
	return fmt.Sprintf("projects/%s/secrets/%s/versions/latest", projectID, secretName)
}

// SecretNames Kraken 凭证在 Secret Manager 中的名称
type SecretNames struct {
	APIKey    string `mapstructure:"api_key"`
	APISecret string `mapstructure:"api_secret"`
	TwoFactor string `mapstructure:"two_factor"`
}

// DefaultSecretNames 默认名称
func DefaultSecretNames() SecretNames {
	return SecretNames{
		APIKey:    "kraken-api-key",
		APISecret: "kraken-api-secret",
		TwoFactor: "",
	}
}
