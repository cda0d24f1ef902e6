package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/openweb3-io/keplr-go/config"
	"github.com/openweb3-io/keplr-go/signer"
	xc "github.com/openweb3-io/keplr-go/types"
	"github.com/stretchr/testify/suite"
)

const testConfig = `
log_level: debug
signer:
  kind: local
  mnemonic: env:TEST_KEPLR_MNEMONIC
  index: 2
chains:
  - chain_id: layer-local
    rpc_endpoint: http://localhost:26657
    grpc_endpoint: http://localhost:9090
    gas_price: 0.025
    gas_denom: uslay
    address_kind:
      cosmos:
        prefix: layer
  - chain_id: evmos_9000-1
    rpc_endpoint: http://localhost:26667
    rest_endpoint: http://localhost:1318
    gas_price: "20000000000"
    gas_denom: atevmos
    address_kind: eth
`

type ConfigTestSuite struct {
	suite.Suite
	path string
}

func TestConfig(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "config.yaml")
	s.Require().NoError(os.WriteFile(s.path, []byte(testConfig), 0o600))
}

func (s *ConfigTestSuite) TestDefaults() {
	require := s.Require()
	cfg, err := config.Load("")
	require.NoError(err)
	require.Equal("info", cfg.LogLevel)
	require.Equal(signer.KindKeplr, cfg.Signer.Kind)
	require.Empty(cfg.Chains)
}

func (s *ConfigTestSuite) TestLoad() {
	require := s.Require()
	cfg, err := config.Load(s.path)
	require.NoError(err)

	require.Equal("debug", cfg.LogLevel)
	require.Equal(signer.KindLocal, cfg.Signer.Kind)
	require.EqualValues(2, cfg.Signer.Index)
	require.Equal([]xc.ChainID{"layer-local", "evmos_9000-1"}, cfg.ChainIDs())

	layer, err := cfg.Chain("layer-local")
	require.NoError(err)
	require.Equal("layer", layer.AddressKind.CosmosPrefix())
	require.Equal("0.025", layer.GasPrice)
	require.Equal("http://localhost:9090", layer.GRPCWeb())

	evmos, err := cfg.Chain("EVMOS_9000-1")
	require.NoError(err)
	require.True(evmos.AddressKind.IsEth())
	require.Equal("http://localhost:1318", evmos.RestEndpoint)

	_, err = cfg.Chain("missing")
	require.ErrorIs(err, xc.ErrInvalidChainConfig)
}

func (s *ConfigTestSuite) TestEnvOverride() {
	require := s.Require()
	s.T().Setenv("KEPLR_SIGNER_KIND", "keplr")
	s.T().Setenv("KEPLR_LOG_LEVEL", "warn")

	cfg, err := config.Load(s.path)
	require.NoError(err)
	require.Equal(signer.KindKeplr, cfg.Signer.Kind)
	require.Equal("warn", cfg.LogLevel)
}

func (s *ConfigTestSuite) TestMnemonic() {
	require := s.Require()
	cfg, err := config.Load(s.path)
	require.NoError(err)

	_, err = cfg.Mnemonic()
	require.ErrorContains(err, "TEST_KEPLR_MNEMONIC")

	s.T().Setenv("TEST_KEPLR_MNEMONIC", "word word word")
	mnemonic, err := cfg.Mnemonic()
	require.NoError(err)
	require.Equal("word word word", mnemonic)

	cfg.Signer.Mnemonic = "inline words"
	mnemonic, err = cfg.Mnemonic()
	require.NoError(err)
	require.Equal("inline words", mnemonic)
}

func (s *ConfigTestSuite) TestMissingFile() {
	_, err := config.Load(filepath.Join(s.T().TempDir(), "nope.yaml"))
	s.Require().Error(err)
}
