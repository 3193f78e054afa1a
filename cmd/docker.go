package cmd

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/douhashi/coincidence/pkg/dockerenv"
)

// ErrNotDocker は--exit-code指定時にDocker外で返すエラー
var ErrNotDocker = errors.New("not running inside docker")

type dockerResult struct {
	Docker bool   `json:"docker" yaml:"docker"`
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

func newIsDockerCmd() *cobra.Command {
	var (
		markerPath string
		cgroupPath string
		exitCode   bool
		format     string
	)

	cmd := &cobra.Command{
		Use:   "is-docker",
		Short: "Docker環境かどうかを判定",
		Long: `/.dockerenv の存在、または /proc/self/cgroup に docker を含む行があるかで
Dockerコンテナ内で実行されているかを判定します。`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := resolveFormat(format, cmd.Flags().Changed("format"))
			if err != nil {
				return err
			}

			cfg := getConfig()
			if !cmd.Flags().Changed("marker") {
				markerPath = cfg.Docker.MarkerPath
			}
			if !cmd.Flags().Changed("cgroup") {
				cgroupPath = cfg.Docker.CgroupPath
			}

			probe := dockerenv.NewProbe(
				dockerenv.WithMarkerPath(markerPath),
				dockerenv.WithCgroupPath(cgroupPath),
				dockerenv.WithLogger(getLogger()),
			)

			reason := probe.Reason()
			result := dockerResult{Docker: reason != "", Reason: reason}

			if err := writeOutput(cmd.OutOrStdout(), out, result, []string{strconv.FormatBool(result.Docker)}); err != nil {
				return err
			}

			if exitCode && !result.Docker {
				return ErrNotDocker
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&markerPath, "marker", dockerenv.DefaultMarkerPath, "マーカーファイルのパス")
	cmd.Flags().StringVar(&cgroupPath, "cgroup", dockerenv.DefaultCgroupPath, "cgroupファイルのパス")
	cmd.Flags().BoolVar(&exitCode, "exit-code", false, "Docker外の場合に終了コード1で終了する")
	cmd.Flags().StringVarP(&format, "format", "o", "", "出力フォーマット (text|json|yaml)")
	return cmd
}
