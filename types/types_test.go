package types_test

import (
	"encoding/json"
	"errors"
	"testing"

	. "github.com/openweb3-io/keplr-go/types"
	"github.com/stretchr/testify/suite"
)

type TypesTestSuite struct {
	suite.Suite
}

func TestTypes(t *testing.T) {
	suite.Run(t, new(TypesTestSuite))
}

func (s *TypesTestSuite) TestWrapErrKeepsKind() {
	require := s.Require()
	cause := errors.New("boom")
	err := WrapErr(ErrEnableFailed, cause)

	require.ErrorIs(err, ErrEnableFailed)
	require.NotErrorIs(err, ErrChainNotRegistered)
	require.ErrorIs(err, cause)
	require.Equal("Wallet enable failed: boom", err.Error())
	// the sentinel itself is untouched
	require.Nil(ErrEnableFailed.Details)
	require.Equal("Wallet enable failed", ErrEnableFailed.Error())
}

func (s *TypesTestSuite) TestWrapErrf() {
	require := s.Require()
	err := WrapErrf(ErrSignerNotFound, "handle %s", "7")
	require.ErrorIs(err, ErrSignerNotFound)
	require.Equal("Signer not found: handle 7", err.Error())
}

func (s *TypesTestSuite) TestSetPortInURL() {
	require := s.Require()

	cases := []struct {
		in   string
		out  string
		fail bool
	}{
		{in: "http://localhost:26657", out: "http://localhost:1317"},
		{in: "https://rpc.example.com", out: "https://rpc.example.com:1317"},
		{in: "https://rpc.example.com:443/path", out: "https://rpc.example.com:1317/path"},
		{in: "localhost:26657", out: "localhost:1317"},
		{in: "rpc.example.com", out: "rpc.example.com:1317"},
		{in: "http://", fail: true},
	}
	for _, c := range cases {
		out, err := SetPortInURL(c.in, 1317)
		if c.fail {
			require.Error(err, c.in)
			continue
		}
		require.NoError(err, c.in)
		require.Equal(c.out, out, c.in)
	}
}

func (s *TypesTestSuite) TestAddrKindJSON() {
	require := s.Require()

	var kind AddrKind
	require.NoError(json.Unmarshal([]byte(`{"cosmos":{"prefix":"layer"}}`), &kind))
	require.Equal("layer", kind.CosmosPrefix())
	require.False(kind.IsEth())

	kind = AddrKind{}
	require.NoError(json.Unmarshal([]byte(`"eth"`), &kind))
	require.True(kind.IsEth())
	require.Equal("", kind.CosmosPrefix())

	require.Error(json.Unmarshal([]byte(`"solana"`), &kind))
}

func (s *TypesTestSuite) TestChainConfigEndpointsJSON() {
	require := s.Require()

	var cfg ChainConfig
	require.NoError(json.Unmarshal([]byte(`{
		"chain_id": "layer-local-1",
		"rpc_endpoint": "http://localhost:26657",
		"grpc_endpoint": "http://localhost:9090",
		"gas_denom": "ulayer",
		"address_kind": {"cosmos": {"prefix": "layer"}}
	}`), &cfg))
	require.Equal("http://localhost:26657", cfg.RPCEndpoint)
	require.Equal("http://localhost:9090", cfg.GRPCEndpoint)
	require.Equal("http://localhost:9090", cfg.GRPCWeb())

	cfg.GRPCWebEndpoint = "http://localhost:9091"
	require.Equal("http://localhost:9091", cfg.GRPCWeb())

	bz, err := json.Marshal(&cfg)
	require.NoError(err)
	require.Contains(string(bz), `"rpc_endpoint":"http://localhost:26657"`)
	require.Contains(string(bz), `"grpc_web_endpoint":"http://localhost:9091"`)
}

func (s *TypesTestSuite) TestIBCClientRevision() {
	require := s.Require()
	require.EqualValues(4, (&ChainConfig{ChainID: "cosmoshub-4"}).IBCClientRevision())
	require.EqualValues(1, (&ChainConfig{ChainID: "layer-local-1"}).IBCClientRevision())
	require.EqualValues(0, (&ChainConfig{ChainID: "localnet"}).IBCClientRevision())
}

func (s *TypesTestSuite) TestFee() {
	require := s.Require()

	cfg := &ChainConfig{ChainID: "testnet-1", GasDenom: "utest", GasPrice: "0.025"}
	fee, err := cfg.Fee(200_000)
	require.NoError(err)
	require.Equal("utest", fee.Denom)
	require.Equal("5000", fee.Amount)

	// rounds up
	fee, err = cfg.Fee(3)
	require.NoError(err)
	require.Equal("1", fee.Amount)

	_, err = (&ChainConfig{ChainID: "x", GasDenom: "utest", GasPrice: "abc"}).Fee(1)
	require.ErrorIs(err, ErrInvalidChainConfig)

	_, err = (&ChainConfig{ChainID: "x", GasPrice: "1"}).Fee(1)
	require.ErrorIs(err, ErrInvalidChainConfig)
}
