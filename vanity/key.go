package vanity

import (
	"encoding/pem"
	"os"
	"path/filepath"

	"github.com/mr-tron/base58"
	"github.com/ozwaldorf/vanity-secp256k1/group"
	"github.com/ozwaldorf/vanity-secp256k1/secp"
	"github.com/pkg/errors"
)

const (
	pemType       = "SECP256K1 PRIVATE KEY"
	pemPublicKey  = "Public-Key"
	keyFileSuffix = ".pem"
)

// Result is a key pair whose public key matched the prefix.
type Result struct {
	// PublicKey is the base58 encoded compressed public key.
	PublicKey string
	// Secret is the private scalar.
	Secret *secp.Scalar
}

// EncodePublicKey returns the base58 text form of p.
func EncodePublicKey(p group.Point) string {
	return base58.Encode(p.Bytes())
}

// DecodePublicKey parses the output of EncodePublicKey.
func DecodePublicKey(g group.Group, s string) (group.Point, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return nil, errors.Wrap(err, "decoding base58 public key")
	}
	p, err := g.NewPoint().SetBytes(raw)
	if err != nil {
		return nil, errors.Wrap(err, "decoding public key")
	}
	return p, nil
}

// WriteKey stores r as a PEM file named after its public key in dir and
// returns the file path.
func WriteKey(dir string, r Result) (string, error) {
	block := &pem.Block{
		Type:    pemType,
		Headers: map[string]string{pemPublicKey: r.PublicKey},
		Bytes:   r.Secret.Bytes(),
	}
	path := filepath.Join(dir, r.PublicKey+keyFileSuffix)
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		return "", errors.Wrapf(err, "writing key file %s", path)
	}
	return path, nil
}

// ReadKey loads a key written by WriteKey.
func ReadKey(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, errors.Wrapf(err, "reading key file %s", path)
	}
	block, _ := pem.Decode(data)
	if block == nil || block.Type != pemType {
		return Result{}, errors.Errorf("%s: no %s block", path, pemType)
	}
	secret := new(secp.Scalar)
	if _, err := secret.SetBytes(block.Bytes); err != nil {
		return Result{}, errors.Wrapf(err, "%s: decoding secret", path)
	}
	return Result{PublicKey: block.Headers[pemPublicKey], Secret: secret}, nil
}
