package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/lemconn/krakenlink/internal/secrets"
	"github.com/lemconn/krakenlink/option"
)

// Config krakenctl 配置
type Config struct {
	Kraken  KrakenConfig  `mapstructure:"kraken"`
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
	GCP     GCPConfig     `mapstructure:"gcp"`
}

// KrakenConfig 客户端配置
type KrakenConfig struct {
	APIKey    string        `mapstructure:"api_key"`
	APISecret string        `mapstructure:"api_secret"`
	TwoFactor string        `mapstructure:"two_factor"`
	BaseURL   string        `mapstructure:"base_url"`
	Proxy     string        `mapstructure:"proxy"`
	Timeout   time.Duration `mapstructure:"timeout"`
	RateLimit float64       `mapstructure:"rate_limit"`
	RateBurst int           `mapstructure:"rate_burst"`
	Debug     bool          `mapstructure:"debug"`
}

// LoggingConfig 日志配置
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig 输出配置
type OutputConfig struct {
	// Format json、yaml 或 text
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// GCPConfig Secret Manager 配置
type GCPConfig struct {
	ProjectID   string              `mapstructure:"project_id"`
	UseSecrets  bool                `mapstructure:"use_secrets"`
	SecretNames secrets.SecretNames `mapstructure:"secret_names"`
}

// 环境变量名，不带重复的 KRAKEN_KRAKEN_ 前缀
var envBindings = map[string]string{
	"kraken.api_key":    "KRAKEN_API_KEY",
	"kraken.api_secret": "KRAKEN_API_SECRET",
	"kraken.two_factor": "KRAKEN_TWO_FACTOR",
	"kraken.base_url":   "KRAKEN_BASE_URL",
	"kraken.proxy":      "KRAKEN_PROXY",
	"kraken.timeout":    "KRAKEN_TIMEOUT",
	"kraken.rate_limit": "KRAKEN_RATE_LIMIT",
	"kraken.rate_burst": "KRAKEN_RATE_BURST",
	"kraken.debug":      "KRAKEN_DEBUG",
	"gcp.project_id":    "GCP_PROJECT_ID",
	"gcp.use_secrets":   "GCP_USE_SECRETS",
}

// Load 加载配置，优先级：环境变量（含 .env）> 配置文件 > 默认值
// configPath 为空时在当前目录、./config 和 $HOME/.krakenctl 中查找 config.yaml
// envFile 为空时尝试加载当前目录的 .env，文件不存在不算错误
func Load(configPath, envFile string) (*Config, error) {
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.krakenctl")
	}

	v.SetEnvPrefix("KRAKEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadEnvFile(envFile string) error {
	path := envFile
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if envFile == "" && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("kraken.api_key", "")
	v.SetDefault("kraken.api_secret", "")
	v.SetDefault("kraken.two_factor", "")
	v.SetDefault("kraken.base_url", "https://api.kraken.com")
	v.SetDefault("kraken.proxy", "")
	v.SetDefault("kraken.timeout", 30*time.Second)
	v.SetDefault("kraken.rate_limit", 0.0)
	v.SetDefault("kraken.rate_burst", 0)
	v.SetDefault("kraken.debug", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("output.format", "json")
	v.SetDefault("output.color", true)

	v.SetDefault("gcp.project_id", "")
	v.SetDefault("gcp.use_secrets", false)
	names := secrets.DefaultSecretNames()
	v.SetDefault("gcp.secret_names.api_key", names.APIKey)
	v.SetDefault("gcp.secret_names.api_secret", names.APISecret)
	v.SetDefault("gcp.secret_names.two_factor", names.TwoFactor)
}

// Validate 校验枚举类配置
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "json", "yaml", "text":
	default:
		return fmt.Errorf("invalid output format %q, expected json, yaml or text", c.Output.Format)
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid logging format %q, expected json or text", c.Logging.Format)
	}
	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging level: %w", err)
	}
	return nil
}

// LoadSecrets 未配置凭证时从 Secret Manager 读取
func (c *Config) LoadSecrets(ctx context.Context, logger *logrus.Logger) error {
	if !c.GCP.UseSecrets || c.GCP.ProjectID == "" {
		return nil
	}
	if c.Kraken.APIKey != "" && c.Kraken.APISecret != "" {
		return nil
	}

	sm, err := secrets.NewGCPSecretManager(ctx, c.GCP.ProjectID, logger)
	if err != nil {
		return fmt.Errorf("create secret manager: %w", err)
	}
	defer func() {
		if err := sm.Close(); err != nil {
			logger.WithError(err).Warn("failed to close secret manager")
		}
	}()

	if c.Kraken.APIKey == "" {
		c.Kraken.APIKey = sm.GetSecretWithDefault(ctx, c.GCP.SecretNames.APIKey, "")
	}
	if c.Kraken.APISecret == "" {
		c.Kraken.APISecret = sm.GetSecretWithDefault(ctx, c.GCP.SecretNames.APISecret, "")
	}
	if c.Kraken.TwoFactor == "" {
		c.Kraken.TwoFactor = sm.GetSecretWithDefault(ctx, c.GCP.SecretNames.TwoFactor, "")
	}
	logger.WithField("project", c.GCP.ProjectID).Debug("loaded credentials from secret manager")
	return nil
}

// NewLogger 按配置创建日志
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	if c.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(c.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	if c.Kraken.Debug && level < logrus.DebugLevel {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// ClientOptions 转换为客户端配置选项
func (c *Config) ClientOptions(logger *logrus.Logger) []option.Option {
	opts := []option.Option{
		option.WithBaseURL(c.Kraken.BaseURL),
		option.WithDebug(c.Kraken.Debug),
		option.WithRateLimit(c.Kraken.RateLimit, c.Kraken.RateBurst),
	}
	if c.Kraken.APIKey != "" || c.Kraken.APISecret != "" {
		opts = append(opts, option.WithAPIKey(c.Kraken.APIKey), option.WithSecretKey(c.Kraken.APISecret))
	}
	if c.Kraken.Proxy != "" {
		opts = append(opts, option.WithProxy(c.Kraken.Proxy))
	}
	if c.Kraken.Timeout > 0 {
		opts = append(opts, option.WithTimeout(c.Kraken.Timeout))
	}
	if logger != nil {
		opts = append(opts, option.WithLogger(logger))
	}
	return opts
}
