package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/douhashi/coincidence/internal/config"
	"github.com/douhashi/coincidence/internal/logger"
	"github.com/douhashi/coincidence/internal/version"
)

var (
	cfgFile   string
	verbose   bool
	rootCmd   *cobra.Command
	appLog    logger.Logger
	appConfig *config.Config
)

func init() {
	rootCmd = NewRootCmd()
}

func addCommands(cmd *cobra.Command) {
	cmd.AddCommand(newTruthyCmd())
	cmd.AddCommand(newFalsyCmd())
	cmd.AddCommand(newWhitespaceCmd())
	cmd.AddCommand(newIsDockerCmd())
	cmd.AddCommand(newNowCmd())
}

// NewRootCmd creates a new root command with all subcommands
func NewRootCmd() *cobra.Command {
	cmd := newRootCmd()
	addCommands(cmd)
	return cmd
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coincidence",
		Short: "テスト用の値生成・環境判定ツール",
		Long: `coincidenceは、真偽値トークンの生成・Docker環境の判定・固定時刻の表示を
シェルベースのテストから利用するためのCLIツールです。`,
		Version: version.Get().String(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// 設定ファイルを先に読み込む
			skipped, err := initConfig()
			if err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}

			opts := []logger.Option{logger.WithOutput(cmd.ErrOrStderr())}
			if verbose {
				opts = append(opts, logger.WithLevel("debug"))
			}
			appLog, err = logger.NewFromEnv(opts...)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			if skipped != nil {
				appLog.Debug("config file ignored", "error", skipped)
			}
			appLog.Debug("config loaded",
				"marker_path", appConfig.Docker.MarkerPath,
				"cgroup_path", appConfig.Docker.CgroupPath,
				"format", appConfig.Output.Format,
			)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "設定ファイルのパス")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "詳細出力")

	return cmd
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig は設定を読み込んで検証する。skippedは読み込めずに無視した設定ファイルのエラー
func initConfig() (skipped error, err error) {
	cfg := config.NewConfig()
	_, skipped = cfg.LoadOrDefault(cfgFile)

	if err := cfg.Validate(); err != nil {
		return skipped, err
	}
	appConfig = cfg
	return skipped, nil
}

// getLogger はPersistentPreRunEを経由しない呼び出しでも使えるロガーを返す
func getLogger() logger.Logger {
	if appLog == nil {
		return logger.NewNop()
	}
	return appLog
}

// getConfig は読み込み済みの設定、未読み込みならデフォルト値を返す
func getConfig() *config.Config {
	if appConfig == nil {
		return config.NewConfig()
	}
	return appConfig
}
