package setup

import (
	"context"
	"fmt"

	"github.com/openweb3-io/keplr-go/blockchain/cosmos"
	"github.com/openweb3-io/keplr-go/config"
	"github.com/openweb3-io/keplr-go/keplr"
	"github.com/openweb3-io/keplr-go/signer"
	xc "github.com/openweb3-io/keplr-go/types"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type ContextKey string

const (
	ContextConfig ContextKey = "config"
)

func WrapConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, ContextConfig, cfg)
}

func UnwrapConfig(ctx context.Context) *config.Config {
	return ctx.Value(ContextConfig).(*config.Config)
}

type Args struct {
	ConfigPath string
	Chain      string
	Signer     string
	LogLevel   string
}

func AddArgs(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "", "Path to a yaml, json or toml config file. Optional.")
	cmd.PersistentFlags().String("chain", "", "Chain id to use.")
	cmd.PersistentFlags().String("signer", "", "Signer kind (keplr or local). Overrides config.")
	cmd.PersistentFlags().String("log-level", "", "Log level. Overrides config.")
}

func ArgsFromCmd(cmd *cobra.Command) *Args {
	configPath, _ := cmd.Flags().GetString("config")
	chain, _ := cmd.Flags().GetString("chain")
	signerKind, _ := cmd.Flags().GetString("signer")
	logLevel, _ := cmd.Flags().GetString("log-level")
	return &Args{
		ConfigPath: configPath,
		Chain:      chain,
		Signer:     signerKind,
		LogLevel:   logLevel,
	}
}

func LoadConfig(args *Args) (*config.Config, error) {
	cfg, err := config.Load(args.ConfigPath)
	if err != nil {
		return nil, err
	}
	if args.Signer != "" {
		cfg.Signer.Kind = args.Signer
	}
	if args.LogLevel != "" {
		cfg.LogLevel = args.LogLevel
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %v", cfg.LogLevel, err)
	}
	logrus.SetLevel(level)
	return cfg, nil
}

// LoadChain resolves the --chain flag against the configured chains.
func LoadChain(cmd *cobra.Command) (*xc.ChainConfig, error) {
	cfg := UnwrapConfig(cmd.Context())
	chain := ArgsFromCmd(cmd).Chain
	if chain == "" {
		return nil, fmt.Errorf("--chain required\noptions: %v", cfg.ChainIDs())
	}
	return cfg.Chain(xc.ChainID(chain))
}

// NewSignerProvider wires the signer kinds the CLI knows about. Unknown kinds
// fall back to keplr. Keplr is only reachable from a browser build, so outside
// one it reports the wallet missing.
func NewSignerProvider(cfg *config.Config) signer.SignerProvider {
	registry := keplr.NewRegistry(keplr.NewExtensionWallet())
	keplrCreator := keplr.NewSignerCreator(registry)

	provider := signer.NewSignerProvider(signer.WithFailoverSignerCreator(keplrCreator))
	provider.Register(signer.KindKeplr, keplrCreator)
	provider.Register(signer.KindLocal, func(_ context.Context, _ xc.ChainID, mnemonic string) (signer.TxSigner, error) {
		return cosmos.NewLocalSignerFromMnemonic(mnemonic, cfg.Signer.Index)
	})
	return provider
}

// LoadSigner provides the configured signer for chain.
func LoadSigner(ctx context.Context, cfg *config.Config, chain *xc.ChainConfig) (signer.TxSigner, error) {
	var key string
	if cfg.Signer.Kind == signer.KindLocal {
		mnemonic, err := cfg.Mnemonic()
		if err != nil {
			return nil, err
		}
		key = mnemonic
	}
	return NewSignerProvider(cfg).Provide(ctx, cfg.Signer.Kind, chain.ChainID, key)
}
