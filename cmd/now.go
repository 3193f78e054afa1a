package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/douhashi/coincidence/pkg/clock"
)

type nowResult struct {
	Now   string `json:"now" yaml:"now"`
	Today string `json:"today" yaml:"today"`
}

func newNowCmd() *cobra.Command {
	var (
		at     string
		format string
	)

	cmd := &cobra.Command{
		Use:   "now",
		Short: "現在時刻と日付を表示",
		Long: `現在時刻(now)と日付(today)を表示します。
--at を指定すると、その時刻に固定した時計で表示します。`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := resolveFormat(format, cmd.Flags().Changed("format"))
			if err != nil {
				return err
			}

			report := func() error {
				result := nowResult{
					Now:   clock.Now().Format(time.RFC3339),
					Today: clock.Today().Format(time.DateOnly),
				}
				lines := []string{
					fmt.Sprintf("now:   %s", result.Now),
					fmt.Sprintf("today: %s", result.Today),
				}
				return writeOutput(cmd.OutOrStdout(), out, result, lines)
			}

			if at == "" {
				return report()
			}

			fixed, err := time.Parse(time.RFC3339, at)
			if err != nil {
				return fmt.Errorf("invalid --at value %q: %w", at, err)
			}
			getLogger().Debug("clock fixed", "at", fixed)

			clock.WithFixed(fixed, func() {
				err = report()
			})
			return err
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "固定する時刻 (RFC3339)")
	cmd.Flags().StringVarP(&format, "format", "o", "", "出力フォーマット (text|json|yaml)")
	return cmd
}
