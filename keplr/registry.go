package keplr

import (
	"context"
	"encoding/base64"
	"strconv"
	"sync"

	txv1beta1 "cosmossdk.io/api/cosmos/tx/v1beta1"
	xc "github.com/openweb3-io/keplr-go/types"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Session is one successful enable of a chain. It never changes after creation.
type Session struct {
	Handle  string
	ChainID xc.ChainID

	key    *Key
	signer OfflineSigner
}

// Key returns a copy of the key captured when the session was created.
func (s *Session) Key() *Key {
	return s.key.clone()
}

type Options struct {
	logger   *zap.Logger
	classify EnableErrorClassifier
}

type Option func(*Options)

func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

func WithEnableErrorClassifier(classify EnableErrorClassifier) Option {
	return func(o *Options) {
		o.classify = classify
	}
}

// Registry maps session handles to wallet signers. Handles start at "1" and
// are never reused. Registering the same chain twice yields two sessions.
type Registry struct {
	wallet Wallet
	opts   *Options

	mu       sync.RWMutex
	lastID   uint64
	sessions map[string]*Session
	closed   bool
}

func newOptions(o ...Option) *Options {
	opts := &Options{
		logger:   zap.L(),
		classify: ClassifyEnableError,
	}
	for _, opt := range o {
		opt(opts)
	}
	return opts
}

func NewRegistry(wallet Wallet, o ...Option) *Registry {
	return &Registry{
		wallet:   wallet,
		opts:     newOptions(o...),
		sessions: make(map[string]*Session),
	}
}

// Register enables chainID in the wallet and stores a new session for it.
func (r *Registry) Register(ctx context.Context, chainID xc.ChainID) (string, error) {
	if r.isClosed() {
		return "", xc.ErrRegistryClosed
	}
	if !r.wallet.IsPresent() {
		return "", xc.ErrWalletNotFound
	}

	if err := r.wallet.Enable(ctx, chainID); err != nil {
		classified := r.opts.classify(err)
		if classified == nil {
			classified = xc.WrapErr(xc.ErrEnableFailed, err)
		}
		r.opts.logger.Warn("wallet enable failed",
			zap.String("chain_id", chainID.String()),
			zap.Error(err),
		)
		return "", classified
	}

	signer, err := r.wallet.GetOfflineSigner(ctx, chainID)
	if err != nil {
		return "", xc.WrapErr(xc.ErrEnableFailed, errors.Wrap(err, "get offline signer"))
	}
	key, err := r.wallet.GetKey(ctx, chainID)
	if err != nil {
		return "", xc.WrapErr(xc.ErrEnableFailed, errors.Wrap(err, "get key"))
	}
	if key == nil {
		return "", xc.WrapErrf(xc.ErrEnableFailed, "wallet returned no key for %s", chainID)
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return "", xc.ErrRegistryClosed
	}
	r.lastID++
	handle := strconv.FormatUint(r.lastID, 10)
	r.sessions[handle] = &Session{
		Handle:  handle,
		ChainID: chainID,
		key:     key.clone(),
		signer:  signer,
	}
	r.mu.Unlock()

	r.opts.logger.Info("registered signer",
		zap.String("handle", handle),
		zap.String("chain_id", chainID.String()),
		zap.String("address", key.Bech32Address),
	)
	return handle, nil
}

// Session resolves a handle.
func (r *Registry) Session(handle string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[handle]
	if !ok {
		return nil, xc.WrapErrf(xc.ErrSignerNotFound, "handle %q", handle)
	}
	return session, nil
}

// Sign has the wallet sign the full doc in direct mode and returns the raw
// signature bytes.
func (r *Registry) Sign(ctx context.Context, handle string, doc *txv1beta1.SignDoc) ([]byte, error) {
	session, err := r.Session(handle)
	if err != nil {
		return nil, err
	}

	res, err := session.signer.SignDirect(ctx, session.key.Bech32Address, doc)
	if err != nil {
		return nil, errors.Wrapf(err, "wallet failed to sign for %s", session.ChainID)
	}
	if res == nil {
		return nil, errors.Errorf("wallet returned no signature for %s", session.ChainID)
	}

	sig, err := base64.StdEncoding.DecodeString(res.Signature.Signature)
	if err != nil {
		return nil, errors.Wrap(err, "invalid signature encoding")
	}
	return sig, nil
}

// PublicKey returns the key captured at registration, not the wallet's current key.
func (r *Registry) PublicKey(ctx context.Context, handle string) (*Key, error) {
	session, err := r.Session(handle)
	if err != nil {
		return nil, err
	}
	return session.Key(), nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Close drops every session. Handles stop resolving and Register fails afterwards.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true
	r.sessions = make(map[string]*Session)
	return nil
}

func (r *Registry) isClosed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.closed
}
