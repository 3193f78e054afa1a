package cmd

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/douhashi/coincidence/pkg/values"
)

type tokenFlags struct {
	extra  []string
	ratio  float64
	seed   int64
	format string
}

func newTruthyCmd() *cobra.Command {
	return newTokensCmd("truthy", "真値トークンを出力",
		`設定ファイル等で真として扱われるべき値（true, "yes", "ON", 1 など）を出力します。`,
		values.TruthyValues)
}

func newFalsyCmd() *cobra.Command {
	return newTokensCmd("falsy", "偽値トークンを出力",
		`設定ファイル等で偽として扱われるべき値（false, "no", "OFF", 0 など）を出力します。`,
		values.FalsyValues)
}

func newTokensCmd(use, short, long string, generate func(...values.Option) ([]any, error)) *cobra.Command {
	flags := &tokenFlags{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveFormat(flags.format, cmd.Flags().Changed("format"))
			if err != nil {
				return err
			}

			opts := sampleOptions(cmd, flags)
			for _, e := range flags.extra {
				opts = append(opts, values.WithExtra(e))
			}

			tokens, err := generate(opts...)
			if err != nil {
				return err
			}
			getLogger().Debug("tokens generated", "kind", use, "count", len(tokens), "format", format)

			lines := make([]string, 0, len(tokens))
			for _, tok := range tokens {
				lines = append(lines, fmt.Sprintf("%#v", tok))
			}
			return writeOutput(cmd.OutOrStdout(), format, tokens, lines)
		},
	}

	cmd.Flags().StringSliceVar(&flags.extra, "extra", nil, "正規のトークンの後ろに追加する値")
	addSampleFlags(cmd, flags)
	return cmd
}

func newWhitespaceCmd() *cobra.Command {
	flags := &tokenFlags{}

	cmd := &cobra.Command{
		Use:   "whitespace",
		Short: "空白文字の順列を出力",
		Long:  `空白・タブ・改行・復帰の4文字のすべての並び順を出力します。`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveFormat(flags.format, cmd.Flags().Changed("format"))
			if err != nil {
				return err
			}

			perms, err := values.WhitespacePerms(sampleOptions(cmd, flags)...)
			if err != nil {
				return err
			}
			getLogger().Debug("whitespace permutations generated", "count", len(perms))

			lines := make([]string, 0, len(perms))
			for _, p := range perms {
				lines = append(lines, fmt.Sprintf("%q", p))
			}
			return writeOutput(cmd.OutOrStdout(), format, perms, lines)
		},
	}

	addSampleFlags(cmd, flags)
	return cmd
}

func addSampleFlags(cmd *cobra.Command, flags *tokenFlags) {
	cmd.Flags().Float64Var(&flags.ratio, "ratio", 0, "抽出する割合 (0, 1]。指定時はシャッフルされた部分集合を出力")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "抽出に使う乱数シード（0の場合は設定値、それも0なら非決定的）")
	cmd.Flags().StringVarP(&flags.format, "format", "o", "", "出力フォーマット (text|json|yaml)")
}

// sampleOptions は--ratioと--seedから生成オプションを組み立てる
func sampleOptions(cmd *cobra.Command, flags *tokenFlags) []values.Option {
	var opts []values.Option
	if cmd.Flags().Changed("ratio") {
		opts = append(opts, values.WithRatio(flags.ratio))
	}

	seed := flags.seed
	if seed == 0 {
		seed = getConfig().Values.Seed
	}
	if seed != 0 {
		opts = append(opts, values.WithRand(rand.New(rand.NewSource(seed))))
	}
	return opts
}
