package config

import (
	"os"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/openweb3-io/keplr-go/signer"
	xc "github.com/openweb3-io/keplr-go/types"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "KEPLR"
	// values of the form "env:NAME" are read from the environment
	envValuePrefix = "env:"
)

type SignerConfig struct {
	Kind     string `mapstructure:"kind" json:"kind" yaml:"kind" toml:"kind"`
	Mnemonic string `mapstructure:"mnemonic,omitempty" json:"mnemonic,omitempty" yaml:"mnemonic,omitempty" toml:"mnemonic,omitempty"`
	Index    uint32 `mapstructure:"index,omitempty" json:"index,omitempty" yaml:"index,omitempty" toml:"index,omitempty"`
}

type Config struct {
	LogLevel string            `mapstructure:"log_level" json:"log_level" yaml:"log_level" toml:"log_level"`
	Signer   SignerConfig      `mapstructure:"signer" json:"signer" yaml:"signer" toml:"signer"`
	Chains   []*xc.ChainConfig `mapstructure:"chains" json:"chains" yaml:"chains" toml:"chains"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Signer: SignerConfig{
			Kind:     signer.KindKeplr,
			Mnemonic: "env:KEPLR_MNEMONIC",
		},
	}
}

// Load reads path (yaml, json or toml) over the defaults. KEPLR_* environment
// variables override scalar settings, e.g. KEPLR_SIGNER_KIND.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("signer.kind", cfg.Signer.Kind)
	v.SetDefault("signer.mnemonic", cfg.Signer.Mnemonic)
	v.SetDefault("signer.index", cfg.Signer.Index)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config %s", path)
		}
	}

	err := v.Unmarshal(cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(addrKindHook)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}

	for _, chain := range cfg.Chains {
		if chain.ChainID == "" {
			return nil, xc.WrapErrf(xc.ErrInvalidChainConfig, "chain without chain_id")
		}
	}
	return cfg, nil
}

// Chain looks up a configured chain by id.
func (c *Config) Chain(id xc.ChainID) (*xc.ChainConfig, error) {
	for _, chain := range c.Chains {
		if strings.EqualFold(string(chain.ChainID), string(id)) {
			return chain, nil
		}
	}
	return nil, xc.WrapErrf(xc.ErrInvalidChainConfig, "chain %s is not configured", id)
}

func (c *Config) ChainIDs() []xc.ChainID {
	ids := make([]xc.ChainID, 0, len(c.Chains))
	for _, chain := range c.Chains {
		ids = append(ids, chain.ChainID)
	}
	return ids
}

// Mnemonic resolves the local signer mnemonic.
func (c *Config) Mnemonic() (string, error) {
	value, err := resolve(c.Signer.Mnemonic)
	if err != nil {
		return "", err
	}
	if value == "" {
		return "", errors.New("no mnemonic configured")
	}
	return value, nil
}

func resolve(value string) (string, error) {
	if !strings.HasPrefix(value, envValuePrefix) {
		return value, nil
	}
	name := strings.TrimPrefix(value, envValuePrefix)
	resolved, ok := os.LookupEnv(name)
	if !ok {
		return "", errors.Errorf("environment variable %s is not set", name)
	}
	return resolved, nil
}

// addrKindHook accepts `address_kind: eth` next to the map form.
func addrKindHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != reflect.TypeOf(xc.AddrKind{}) || from.Kind() != reflect.String {
		return data, nil
	}
	if data.(string) != "eth" {
		return nil, errors.Errorf("invalid address kind: %s", data)
	}
	return map[string]interface{}{"eth": map[string]interface{}{}}, nil
}
