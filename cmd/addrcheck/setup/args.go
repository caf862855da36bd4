package setup

import (
	"context"
	"fmt"
	"os"
	"strings"

	ac "github.com/cordialsys/addrcheck"
	"github.com/cordialsys/addrcheck/codec/eip55"
	"github.com/cordialsys/addrcheck/config/constants"
	"github.com/cordialsys/addrcheck/factory"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type ContextKey string

const ContextFactory ContextKey = "factory"
const ContextArgs ContextKey = "args"

func WrapFactory(ctx context.Context, f *factory.Factory) context.Context {
	return context.WithValue(ctx, ContextFactory, f)
}

func WrapArgs(ctx context.Context, args *Args) context.Context {
	return context.WithValue(ctx, ContextArgs, args)
}

func UnwrapFactory(ctx context.Context) *factory.Factory {
	return ctx.Value(ContextFactory).(*factory.Factory)
}

func UnwrapArgs(ctx context.Context) *Args {
	return ctx.Value(ContextArgs).(*Args)
}

type Format string

const (
	FormatJson Format = "json"
	FormatYaml Format = "yaml"
	FormatToml Format = "toml"
)

var FormatList = []Format{FormatJson, FormatYaml, FormatToml}

func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(s))
	for _, option := range FormatList {
		if option == format {
			return format, nil
		}
	}
	return "", fmt.Errorf("invalid output format %q, options: %v", s, FormatList)
}

type Args struct {
	ConfigPath     string
	Chain          ac.ChainType
	ChecksumHash   eip55.Hash
	Output         Format
	VerbosityCount int
	EnvFiles       []string
}

const ChainEnv = "ADDRCHECK_CHAIN"

func AddArgs(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "", fmt.Sprintf("Path to config.yaml (may set %s env var). Optional.", constants.ConfigEnv))
	cmd.PersistentFlags().String("chain", os.Getenv(ChainEnv), fmt.Sprintf("Chain of the address (may set %s env var). Detected from the address when omitted.", ChainEnv))
	cmd.PersistentFlags().String("checksum-hash", "", "Hash for ethereum checksum casing: keccak256 or sha256. Overrides the config.")
	cmd.PersistentFlags().StringP("output", "o", string(FormatJson), "Output format: json, yaml or toml.")
	cmd.PersistentFlags().StringSlice("env-file", []string{}, "Additional .env files to load before reading the config.")
	cmd.PersistentFlags().CountP("verbose", "v", "Set verbosity.")
}

func ArgsFromCmd(cmd *cobra.Command) (*Args, error) {
	configPath, _ := cmd.Flags().GetString("config")
	chainInput, _ := cmd.Flags().GetString("chain")
	hashInput, _ := cmd.Flags().GetString("checksum-hash")
	outputInput, _ := cmd.Flags().GetString("output")
	envFiles, _ := cmd.Flags().GetStringSlice("env-file")
	count, _ := cmd.Flags().GetCount("verbose")

	var chain ac.ChainType
	if chainInput != "" {
		var err error
		chain, err = ac.ParseChainType(chainInput)
		if err != nil {
			return nil, fmt.Errorf("%v\noptions: %v", err, ac.ChainTypeList)
		}
	}
	var hash eip55.Hash
	if hashInput != "" {
		var err error
		hash, err = eip55.ParseHash(hashInput)
		if err != nil {
			return nil, err
		}
	}
	output, err := ParseFormat(outputInput)
	if err != nil {
		return nil, err
	}

	return &Args{
		ConfigPath:     configPath,
		Chain:          chain,
		ChecksumHash:   hash,
		Output:         output,
		VerbosityCount: count,
		EnvFiles:       envFiles,
	}, nil
}

func ConfigureLogger(args *Args) {
	if args.VerbosityCount == 0 {
		logrus.SetLevel(logrus.WarnLevel)
	}
	if args.VerbosityCount == 1 {
		logrus.SetLevel(logrus.InfoLevel)
	}
	if args.VerbosityCount == 2 {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if args.VerbosityCount >= 3 {
		logrus.SetLevel(logrus.TraceLevel)
	}
}

func LoadFactory(args *Args) (*factory.Factory, error) {
	if args.ConfigPath != "" {
		// the config file is only located through the environment
		_ = os.Setenv(constants.ConfigEnv, args.ConfigPath)
	}
	cfg, err := factory.LoadConfig()
	if err != nil {
		return nil, err
	}
	if args.ChecksumHash != "" {
		cfg.EthereumChecksumHash = args.ChecksumHash
	}
	return factory.NewDefaultFactoryWithConfig(cfg, &factory.FactoryOptions{})
}

func CreateContext(ctx context.Context, f *factory.Factory, args *Args) context.Context {
	ctx = WrapFactory(ctx, f)
	ctx = WrapArgs(ctx, args)
	return ctx
}
