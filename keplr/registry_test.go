package keplr_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"sync"
	"testing"

	txv1beta1 "cosmossdk.io/api/cosmos/tx/v1beta1"
	"github.com/golang/mock/gomock"
	"github.com/openweb3-io/keplr-go/keplr"
	"github.com/openweb3-io/keplr-go/keplr/mocks"
	xc "github.com/openweb3-io/keplr-go/types"
	"github.com/stretchr/testify/suite"
)

type RegistryTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	wallet   *mocks.MockWallet
	signer   *mocks.MockOfflineSigner
	registry *keplr.Registry
	key      *keplr.Key
}

func TestRegistry(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (s *RegistryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.wallet = mocks.NewMockWallet(s.ctrl)
	s.signer = mocks.NewMockOfflineSigner(s.ctrl)
	s.registry = keplr.NewRegistry(s.wallet)

	s.key = &keplr.Key{
		Name:          "alice",
		Algo:          keplr.AlgoSecp256k1,
		PubKey:        append([]byte{0x02}, bytes.Repeat([]byte{0x11}, 32)...),
		Address:       bytes.Repeat([]byte{0x22}, 20),
		Bech32Address: "test1alice",
	}
}

func (s *RegistryTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RegistryTestSuite) expectEnable(chainID xc.ChainID, key *keplr.Key) {
	s.wallet.EXPECT().IsPresent().Return(true)
	s.wallet.EXPECT().Enable(gomock.Any(), chainID).Return(nil)
	s.wallet.EXPECT().GetOfflineSigner(gomock.Any(), chainID).Return(s.signer, nil)
	s.wallet.EXPECT().GetKey(gomock.Any(), chainID).Return(key, nil)
}

func (s *RegistryTestSuite) TestRegisterWalletMissing() {
	require := s.Require()
	s.wallet.EXPECT().IsPresent().Return(false)

	_, err := s.registry.Register(context.Background(), "chain-a")
	require.ErrorIs(err, xc.ErrWalletNotFound)
	require.Equal(0, s.registry.Len())
}

func (s *RegistryTestSuite) TestRegisterAssignsIncreasingHandles() {
	require := s.Require()
	ctx := context.Background()

	s.expectEnable("chain-a", s.key)
	s.expectEnable("chain-a", s.key)
	other := &keplr.Key{Algo: keplr.AlgoSecp256k1, Bech32Address: "test1bob"}
	s.expectEnable("chain-b", other)

	h1, err := s.registry.Register(ctx, "chain-a")
	require.NoError(err)
	require.Equal("1", h1)

	h2, err := s.registry.Register(ctx, "chain-a")
	require.NoError(err)
	require.Equal("2", h2)

	h3, err := s.registry.Register(ctx, "chain-b")
	require.NoError(err)
	require.Equal("3", h3)
	require.Equal(3, s.registry.Len())

	key, err := s.registry.PublicKey(ctx, h1)
	require.NoError(err)
	require.Equal(s.key, key)

	session, err := s.registry.Session(h3)
	require.NoError(err)
	require.EqualValues("chain-b", session.ChainID)
	require.Equal("test1bob", session.Key().Bech32Address)
}

func (s *RegistryTestSuite) TestPublicKeyIsSnapshot() {
	require := s.Require()
	ctx := context.Background()
	s.expectEnable("chain-a", s.key)

	handle, err := s.registry.Register(ctx, "chain-a")
	require.NoError(err)

	original := s.key.Bech32Address
	s.key.Bech32Address = "test1changed"
	s.key.PubKey[0] ^= 0xff

	key, err := s.registry.PublicKey(ctx, handle)
	require.NoError(err)
	require.Equal(original, key.Bech32Address)
	require.NotEqual(s.key.PubKey, key.PubKey)

	// callers cannot reach into the stored record either
	key.Bech32Address = "test1mutated"
	again, err := s.registry.PublicKey(ctx, handle)
	require.NoError(err)
	require.Equal(original, again.Bech32Address)
}

func (s *RegistryTestSuite) TestRegisterMissingChain() {
	require := s.Require()
	s.wallet.EXPECT().IsPresent().Return(true)
	s.wallet.EXPECT().Enable(gomock.Any(), xc.ChainID("chain-x")).
		Return(errors.New("There is no chain info for chain-x"))

	_, err := s.registry.Register(context.Background(), "chain-x")
	require.ErrorIs(err, xc.ErrChainNotRegistered)
	require.Equal(0, s.registry.Len())
}

func (s *RegistryTestSuite) TestRegisterEnableRejected() {
	require := s.Require()
	s.wallet.EXPECT().IsPresent().Return(true)
	s.wallet.EXPECT().Enable(gomock.Any(), xc.ChainID("chain-a")).
		Return(errors.New("Request rejected"))

	_, err := s.registry.Register(context.Background(), "chain-a")
	require.ErrorIs(err, xc.ErrEnableFailed)
	require.NotErrorIs(err, xc.ErrChainNotRegistered)
	require.Equal(0, s.registry.Len())
}

func (s *RegistryTestSuite) TestRegisterGetKeyFails() {
	require := s.Require()
	s.wallet.EXPECT().IsPresent().Return(true)
	s.wallet.EXPECT().Enable(gomock.Any(), xc.ChainID("chain-a")).Return(nil)
	s.wallet.EXPECT().GetOfflineSigner(gomock.Any(), xc.ChainID("chain-a")).Return(s.signer, nil)
	s.wallet.EXPECT().GetKey(gomock.Any(), xc.ChainID("chain-a")).Return(nil, errors.New("locked"))

	_, err := s.registry.Register(context.Background(), "chain-a")
	require.ErrorIs(err, xc.ErrEnableFailed)
	require.Equal(0, s.registry.Len())
}

func (s *RegistryTestSuite) TestCustomClassifier() {
	require := s.Require()
	registry := keplr.NewRegistry(s.wallet, keplr.WithEnableErrorClassifier(func(err error) error {
		return xc.WrapErr(xc.ErrChainNotRegistered, err)
	}))
	s.wallet.EXPECT().IsPresent().Return(true)
	s.wallet.EXPECT().Enable(gomock.Any(), xc.ChainID("chain-a")).Return(errors.New("whatever"))

	_, err := registry.Register(context.Background(), "chain-a")
	require.ErrorIs(err, xc.ErrChainNotRegistered)
}

func (s *RegistryTestSuite) TestClassifierReturningNilStillFails() {
	require := s.Require()
	registry := keplr.NewRegistry(s.wallet, keplr.WithEnableErrorClassifier(func(error) error {
		return nil
	}))
	s.wallet.EXPECT().IsPresent().Return(true)
	s.wallet.EXPECT().Enable(gomock.Any(), xc.ChainID("chain-a")).Return(errors.New("x"))

	handle, err := registry.Register(context.Background(), "chain-a")
	require.ErrorIs(err, xc.ErrEnableFailed)
	require.Contains(err.Error(), "x")
	require.Empty(handle)
	require.Equal(0, registry.Len())
}

func (s *RegistryTestSuite) TestSignUnknownHandle() {
	require := s.Require()

	_, err := s.registry.Sign(context.Background(), "42", &txv1beta1.SignDoc{})
	require.ErrorIs(err, xc.ErrSignerNotFound)

	_, err = s.registry.PublicKey(context.Background(), "42")
	require.ErrorIs(err, xc.ErrSignerNotFound)
}

func (s *RegistryTestSuite) TestSignReturnsRawSignature() {
	require := s.Require()
	ctx := context.Background()
	s.expectEnable("chain-a", s.key)

	handle, err := s.registry.Register(ctx, "chain-a")
	require.NoError(err)
	require.Equal("1", handle)

	doc := &txv1beta1.SignDoc{
		BodyBytes:     []byte("body"),
		AuthInfoBytes: []byte("auth"),
		ChainId:       "chain-a",
		AccountNumber: 9,
	}
	raw := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01}
	s.signer.EXPECT().SignDirect(gomock.Any(), "test1alice", doc).Return(&keplr.DirectSignResponse{
		Signed: doc,
		Signature: keplr.StdSignature{
			PubKey:    keplr.PubKeyJSON{Type: "tendermint/PubKeySecp256k1", Value: "AAAA"},
			Signature: base64.StdEncoding.EncodeToString(raw),
		},
	}, nil)

	sig, err := s.registry.Sign(ctx, handle, doc)
	require.NoError(err)
	require.Equal(raw, sig)
}

func (s *RegistryTestSuite) TestSignWalletError() {
	require := s.Require()
	ctx := context.Background()
	s.expectEnable("chain-a", s.key)
	handle, err := s.registry.Register(ctx, "chain-a")
	require.NoError(err)

	rejected := errors.New("Request rejected")
	s.signer.EXPECT().SignDirect(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, rejected)

	_, err = s.registry.Sign(ctx, handle, &txv1beta1.SignDoc{})
	require.ErrorIs(err, rejected)
}

func (s *RegistryTestSuite) TestClose() {
	require := s.Require()
	ctx := context.Background()
	s.expectEnable("chain-a", s.key)
	handle, err := s.registry.Register(ctx, "chain-a")
	require.NoError(err)

	require.NoError(s.registry.Close())
	require.Equal(0, s.registry.Len())

	_, err = s.registry.Sign(ctx, handle, &txv1beta1.SignDoc{})
	require.ErrorIs(err, xc.ErrSignerNotFound)

	_, err = s.registry.Register(ctx, "chain-a")
	require.ErrorIs(err, xc.ErrRegistryClosed)
}

func (s *RegistryTestSuite) TestConcurrentRegister() {
	require := s.Require()
	ctx := context.Background()
	const n = 20

	s.wallet.EXPECT().IsPresent().Return(true).Times(n)
	s.wallet.EXPECT().Enable(gomock.Any(), gomock.Any()).Return(nil).Times(n)
	s.wallet.EXPECT().GetOfflineSigner(gomock.Any(), gomock.Any()).Return(s.signer, nil).Times(n)
	s.wallet.EXPECT().GetKey(gomock.Any(), gomock.Any()).Return(s.key, nil).Times(n)

	var wg sync.WaitGroup
	handles := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h, err := s.registry.Register(ctx, "chain-a")
			if err == nil {
				handles <- h
			}
		}()
	}
	wg.Wait()
	close(handles)

	seen := map[string]bool{}
	for h := range handles {
		require.False(seen[h], "duplicate handle %s", h)
		seen[h] = true
	}
	require.Len(seen, n)
	require.Equal(n, s.registry.Len())
}
