package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/douhashi/coincidence/pkg/dockerenv"
)

// 出力フォーマット
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// EnvPrefix は環境変数のプレフィックス
const EnvPrefix = "COINCIDENCE"

// Config はアプリケーション全体の設定
type Config struct {
	Docker DockerConfig `mapstructure:"docker"`
	Values ValuesConfig `mapstructure:"values"`
	Output OutputConfig `mapstructure:"output"`
}

// DockerConfig はDocker判定に使うパスの設定
type DockerConfig struct {
	MarkerPath string `mapstructure:"marker_path"`
	CgroupPath string `mapstructure:"cgroup_path"`
}

// ValuesConfig はトークン生成の設定。Seedが0なら共有乱数源をそのまま使う
type ValuesConfig struct {
	Seed int64 `mapstructure:"seed"`
}

// OutputConfig は出力の設定
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// NewConfig は新しいConfigを作成する
func NewConfig() *Config {
	return &Config{
		Docker: DockerConfig{
			MarkerPath: dockerenv.DefaultMarkerPath,
			CgroupPath: dockerenv.DefaultCgroupPath,
		},
		Output: OutputConfig{
			Format: FormatText,
		},
	}
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("docker.marker_path", dockerenv.DefaultMarkerPath)
	v.SetDefault("docker.cgroup_path", dockerenv.DefaultCgroupPath)
	v.SetDefault("values.seed", 0)
	v.SetDefault("output.format", FormatText)

	return v
}

// Load は設定ファイルから設定を読み込む
func (c *Config) Load(configPath string) error {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// 途中まで書き込まれた値が残らないよう、別のConfigに読み込んでから反映する
	loaded := Config{}
	if err := v.Unmarshal(&loaded); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	*c = loaded

	return nil
}

// LoadOrDefault は設定ファイルを探して読み込み、実際に読み込んだパスを返す。
// ファイルが見つからない・読めない場合は環境変数とデフォルト値だけを反映して空文字を返す。
// 存在したが読み込めなかったファイルのエラーは戻り値で返すが、設定はフォールバック済み
func (c *Config) LoadOrDefault(configPath string) (string, error) {
	candidates := []string{configPath}
	if configPath == "" {
		candidates = searchPaths()
	}

	var loadErrs []error
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := c.Load(path); err != nil {
			loadErrs = append(loadErrs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		return path, errors.Join(loadErrs...)
	}

	// 環境変数のみ反映
	loaded := Config{}
	if err := newViper().Unmarshal(&loaded); err != nil {
		loadErrs = append(loadErrs, fmt.Errorf("failed to unmarshal environment: %w", err))
		return "", errors.Join(loadErrs...)
	}
	*c = loaded
	return "", errors.Join(loadErrs...)
}

// searchPaths は設定ファイルの探索順を返す
func searchPaths() []string {
	paths := []string{".coincidence.yml", ".coincidence.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "coincidence", "coincidence.yml"),
			filepath.Join(home, ".config", "coincidence", "coincidence.yaml"),
		)
	}
	return paths
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	if c.Docker.MarkerPath == "" {
		return errors.New("docker.marker_path must not be empty")
	}
	if c.Docker.CgroupPath == "" {
		return errors.New("docker.cgroup_path must not be empty")
	}
	if c.Values.Seed < 0 {
		return errors.New("values.seed must not be negative")
	}
	if err := ValidateFormat(c.Output.Format); err != nil {
		return err
	}
	return nil
}

// ValidateFormat は出力フォーマット名を検証する
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("invalid output format %q: must be one of text, json, yaml", format)
	}
}
