// Package deriver turns a master passphrase and per-account public
// parameters into a reproducible password using a memory-hard key-derivation
// function.
//
// No password is ever stored; everything the deriver needs is either the
// master passphrase or public recipe data, and identical inputs always
// produce the identical password.
package deriver

import (
	"fmt"

	"golang.org/x/crypto/scrypt"

	"github.com/dmitrijs2005/padre/internal/accountdb"
	"github.com/dmitrijs2005/padre/internal/charset"
	"github.com/dmitrijs2005/padre/internal/common"
	"github.com/dmitrijs2005/padre/internal/shared"
)

// kdf is a test seam for the key-derivation primitive. In tests you can
// replace it with a stub to observe inputs or to force failures.
var kdf = scrypt.Key

// Params are the scrypt work factors: CPU/memory cost, block size and
// parallelization. They are deployment constants shared by every account;
// changing any of them changes every derived password.
type Params struct {
	N int
	R int
	P int
}

// DefaultParams are the production work factors.
var DefaultParams = Params{N: 1 << 15, R: 8, P: 1}

type Deriver struct {
	params Params
}

// New returns a Deriver using the given work factors. Tests inject cheap
// parameters; production wiring uses values from config.
func New(params Params) *Deriver {
	return &Deriver{params: params}
}

// Derive produces a password of exactly length characters, each drawn from
// cs, for the given account coordinates.
//
// The salt is domain, username and iteration concatenated with no separator.
// The boundary between them is reconstructible only because the database
// parser already consumed the field delimiter, so none of the three can
// contain it; this is a correctness-by-construction invariant of the file
// format, not a coincidence.
//
// Each raw output byte b at position i maps to cs[b mod len(cs)]. The
// mapping is intentionally plain modulo: when len(cs) does not divide 256
// the character distribution is slightly biased, and that bias is an
// accepted property of the scheme. "Fixing" it would change every password
// ever derived.
//
// The salt and the raw KDF output are wiped before returning, on error
// paths included. The master passphrase is borrowed, never retained.
func (d *Deriver) Derive(master []byte, domain, username, iteration string, cs charset.Charset, length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("%w: length %d", common.ErrDerivation, length)
	}
	if len(cs) == 0 {
		return "", fmt.Errorf("%w: empty charset", common.ErrDerivation)
	}

	salt := make([]byte, 0, len(domain)+len(username)+len(iteration))
	salt = append(salt, domain...)
	salt = append(salt, username...)
	salt = append(salt, iteration...)
	defer shared.WipeByteArray(salt)

	raw, err := kdf(master, salt, d.params.N, d.params.R, d.params.P, length)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrDerivation, err)
	}
	defer shared.WipeByteArray(raw)

	if len(raw) != length {
		return "", fmt.Errorf("%w: primitive produced %d of %d bytes", common.ErrDerivation, len(raw), length)
	}

	out := make([]rune, length)
	for i, b := range raw {
		out[i] = cs[int(b)%len(cs)]
	}

	password := string(out)
	shared.WipeRuneArray(out)
	return password, nil
}

// ForAccount compiles the account's charset specification and derives its
// password. Compilation failures surface as-is so the caller can tell a bad
// recipe apart from a failing primitive.
func (d *Deriver) ForAccount(master []byte, acc *accountdb.Account) (string, error) {
	cs, err := charset.Compile(acc.CharsetSpec)
	if err != nil {
		return "", err
	}
	return d.Derive(master, acc.Domain, acc.Username, acc.Iteration, cs, acc.Length)
}
