package vanity

import (
	"context"
	"crypto/rand"
	"io"
	"strings"
	"sync/atomic"

	"github.com/ozwaldorf/vanity-secp256k1/secp"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Searcher generates key pairs until one matches the configured prefix.
type Searcher struct {
	group  *secp.Secp256k1
	config Config
	prefix string
	logger *zap.Logger
	rand   io.Reader

	attempts atomic.Uint64
}

// New validates cfg and returns a Searcher drawing secrets from
// crypto/rand. A nil logger disables logging.
func New(g *secp.Secp256k1, cfg Config, logger *zap.Logger) (*Searcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Searcher{
		group:  g,
		config: cfg,
		prefix: strings.ToLower(cfg.Prefix),
		logger: logger,
		rand:   rand.Reader,
	}, nil
}

// Attempts returns the number of key pairs generated so far.
func (s *Searcher) Attempts() uint64 {
	return s.attempts.Load()
}

// Match reports whether the base58 public key pk starts with the prefix,
// ignoring case.
func (s *Searcher) Match(pk string) bool {
	return len(pk) >= len(s.prefix) && strings.ToLower(pk[:len(s.prefix)]) == s.prefix
}

// Run starts the workers and blocks until ctx is cancelled or a worker
// fails. Matches are sent on results, which Run never closes. A cancelled
// context is not an error.
func (s *Searcher) Run(ctx context.Context, results chan<- Result) error {
	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < s.config.Workers; w++ {
		eg.Go(func() error {
			return s.work(ctx, w, results)
		})
	}
	return eg.Wait()
}

func (s *Searcher) work(ctx context.Context, id int, results chan<- Result) error {
	logger := s.logger.With(zap.Int("worker", id))
	logger.Debug("worker started")
	defer logger.Debug("worker stopped")

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		secret, err := s.group.RandomScalar(s.rand)
		if err != nil {
			return errors.Wrap(err, "generating secret")
		}
		pk := EncodePublicKey(s.group.ScalarBaseMult(secret))
		s.attempts.Add(1)

		if !s.Match(pk) {
			continue
		}
		logger.Info("found matching key", zap.String("public_key", pk))

		select {
		case results <- Result{PublicKey: pk, Secret: secret.(*secp.Scalar)}:
		case <-ctx.Done():
			return nil
		}
	}
}
