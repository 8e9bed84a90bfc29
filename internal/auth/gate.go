// Package auth implements the access gate in front of the ledger: exactly
// two configured identities, bcrypt password checks, and fernet-sealed
// session cookies. The settlement engine never touches any of this; the
// gate only decides who a request is acting as.
package auth

import (
	"fmt"

	"github.com/avdberg/shared-ledger-backend/internal/apperrors"
	"github.com/avdberg/shared-ledger-backend/internal/config"
	"github.com/avdberg/shared-ledger-backend/internal/model"
)

// Identity is an authenticated caller: which of the two parties they are
// and how to address them.
type Identity struct {
	Username    string      `json:"username"`
	Party       model.Party `json:"party"`
	DisplayName string      `json:"displayName"`
}

type credential struct {
	identity     Identity
	passwordHash string
}

// Gate authenticates callers against the two configured participants.
type Gate struct {
	credentials map[string]credential
}

// NewGate builds a Gate from configuration. Credentials that are not
// already bcrypt hashes are hashed here, mirroring how the original
// deployment accepted either form in its secrets.
func NewGate(parties config.PartiesConfig) (*Gate, error) {
	gate := &Gate{credentials: make(map[string]credential, 2)}

	for party, pc := range map[model.Party]config.PartyConfig{
		model.PartyOne: parties.One,
		model.PartyTwo: parties.Two,
	} {
		hash := pc.Password
		if !IsBcryptHash(hash) {
			var err error
			hash, err = HashPassword(pc.Password)
			if err != nil {
				return nil, fmt.Errorf("failed to hash credential for %s: %w", pc.Username, err)
			}
		}
		gate.credentials[pc.Username] = credential{
			identity: Identity{
				Username:    pc.Username,
				Party:       party,
				DisplayName: pc.DisplayName,
			},
			passwordHash: hash,
		}
	}

	return gate, nil
}

// Authenticate checks a username/password pair and returns the matching
// identity. Unknown usernames and wrong passwords return the same error.
func (g *Gate) Authenticate(username, password string) (Identity, error) {
	cred, ok := g.credentials[username]
	if !ok {
		return Identity{}, apperrors.ErrInvalidCredentials
	}
	if err := VerifyPassword(cred.passwordHash, password); err != nil {
		return Identity{}, apperrors.ErrInvalidCredentials
	}
	return cred.identity, nil
}

// Lookup resolves a username to its identity without a password check.
// Used when decoding an already-verified session token.
func (g *Gate) Lookup(username string) (Identity, bool) {
	cred, ok := g.credentials[username]
	if !ok {
		return Identity{}, false
	}
	return cred.identity, true
}
