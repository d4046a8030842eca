package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// RoleMentor is the only role permitted to submit posts.
const RoleMentor = "mentor"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Identity is the verified caller attached to a request by the access
// gate. The core trusts it as-is; cryptographic verification happens
// here, not in the handlers.
type Identity struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// TokenVerifier turns a bearer token into a verified identity.
type TokenVerifier interface {
	Verify(token string) (Identity, error)
}

// HMACVerifier checks tokens issued by the login gateway: a base64url
// JSON payload and an HMAC-SHA256 signature over it, joined by a dot.
// The payload must name the gateway domain and an unexpired deadline.
type HMACVerifier struct {
	secret []byte
	domain string
	now    func() time.Time
}

type tokenPayload struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Domain   string `json:"domain"`
	Exp      int64  `json:"exp"`
}

// NewHMACVerifier creates a verifier for tokens signed with the shared
// secret on behalf of the given gateway domain.
func NewHMACVerifier(secret, domain string) *HMACVerifier {
	return &HMACVerifier{
		secret: []byte(secret),
		domain: domain,
		now:    time.Now,
	}
}

// Mint signs a token for the identity. The gateway does this in
// production; the service itself only verifies.
func (v *HMACVerifier) Mint(id Identity, ttl time.Duration) (string, error) {
	payload, err := json.Marshal(tokenPayload{
		Username: id.Username,
		Role:     id.Role,
		Domain:   v.domain,
		Exp:      v.now().Add(ttl).Unix(),
	})
	if err != nil {
		return "", err
	}

	enc := base64.RawURLEncoding
	return enc.EncodeToString(payload) + "." + enc.EncodeToString(v.sign(payload)), nil
}

// Verify checks the signature, issuer domain and expiry, returning the
// embedded identity on success.
func (v *HMACVerifier) Verify(token string) (Identity, error) {
	payloadPart, sigPart, ok := strings.Cut(token, ".")
	if !ok {
		return Identity{}, ErrInvalidToken
	}

	enc := base64.RawURLEncoding
	payload, err := enc.DecodeString(payloadPart)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}
	sig, err := enc.DecodeString(sigPart)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}
	if !hmac.Equal(sig, v.sign(payload)) {
		return Identity{}, ErrInvalidToken
	}

	var tp tokenPayload
	if err := json.Unmarshal(payload, &tp); err != nil {
		return Identity{}, ErrInvalidToken
	}
	if tp.Domain != v.domain || tp.Username == "" {
		return Identity{}, ErrInvalidToken
	}
	if v.now().Unix() >= tp.Exp {
		return Identity{}, ErrTokenExpired
	}

	return Identity{Username: tp.Username, Role: tp.Role}, nil
}

func (v *HMACVerifier) sign(payload []byte) []byte {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(payload)
	return mac.Sum(nil)
}
