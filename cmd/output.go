package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/douhashi/coincidence/internal/config"
)

// writeOutput はformatに従ってdataを出力する。textの場合はlinesを1行ずつ出力する
func writeOutput(w io.Writer, format string, data interface{}, lines []string) error {
	switch format {
	case config.FormatText:
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(data)
	default:
		return config.ValidateFormat(format)
	}
}

// resolveFormat はフラグ指定があればそれを、無ければ設定値を返す
func resolveFormat(flagValue string, changed bool) (string, error) {
	format := getConfig().Output.Format
	if changed {
		format = flagValue
	}
	if err := config.ValidateFormat(format); err != nil {
		return "", err
	}
	return format, nil
}
