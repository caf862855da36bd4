package commands

import (
	"encoding/json"
	"fmt"

	"github.com/cordialsys/addrcheck/cmd/addrcheck/setup"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func printOutput(cmd *cobra.Command, data any) error {
	args := setup.UnwrapArgs(cmd.Context())
	out := cmd.OutOrStdout()
	switch args.Output {
	case setup.FormatYaml:
		bz, err := yaml.Marshal(data)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(out, string(bz))
		return err
	case setup.FormatToml:
		bz, err := asToml(data)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(out, string(bz))
		return err
	default:
		_, err := fmt.Fprintln(out, asJson(data))
		return err
	}
}

func asJson(data any) string {
	bz, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		panic(err)
	}
	return string(bz)
}

// A toml document must be a table, so lists are placed under "items".
func asToml(data any) ([]byte, error) {
	bz, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(bz, &generic); err != nil {
		return nil, err
	}
	generic = dropNulls(generic)
	if list, ok := generic.([]any); ok {
		generic = map[string]any{"items": list}
	}
	if _, ok := generic.(map[string]any); !ok {
		return nil, fmt.Errorf("cannot render %T as toml", data)
	}
	return toml.Marshal(generic)
}

func dropNulls(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for key, value := range v {
			if value == nil {
				delete(v, key)
				continue
			}
			v[key] = dropNulls(value)
		}
		return v
	case []any:
		for i := range v {
			v[i] = dropNulls(v[i])
		}
		return v
	default:
		return v
	}
}
