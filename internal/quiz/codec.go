package quiz

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Codec turns a State into a URL-safe token and back. Decode never fails: anything it
// cannot read becomes EmptyState.
type Codec interface {
	Encode(s State) (string, error)
	Decode(token string) State
}

var errInvalidState = errors.New("invalid quiz state")

// wireState mirrors State with pointer fields so absent keys can be told apart from
// zero values.
type wireState struct {
	Count   *int            `json:"count"`
	History *[]HistoryEntry `json:"history"`
}

func toWire(s State) wireState {
	history := s.History
	if history == nil {
		history = []HistoryEntry{}
	}
	count := s.Count
	return wireState{Count: &count, History: &history}
}

func (w wireState) state() (State, error) {
	if w.Count == nil || w.History == nil || *w.History == nil {
		return State{}, fmt.Errorf("%w: missing count or history", errInvalidState)
	}
	if *w.Count < 0 || *w.Count != len(*w.History) {
		return State{}, fmt.Errorf("%w: count %d does not match history", errInvalidState, *w.Count)
	}
	return State{Count: *w.Count, History: *w.History}, nil
}

type plainCodec struct{}

// NewCodec returns the unsigned codec: base64url over the JSON state. Clients can
// forge these tokens.
func NewCodec() Codec {
	return plainCodec{}
}

func (plainCodec) Encode(s State) (string, error) {
	raw, err := json.Marshal(toWire(s))
	if err != nil {
		return "", fmt.Errorf("marshal state: %w", err)
	}
	return base64.URLEncoding.EncodeToString(raw), nil
}

func (plainCodec) Decode(token string) State {
	s, err := decodePlain(token)
	if err != nil {
		return EmptyState()
	}
	return s
}

func decodePlain(token string) (State, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return State{}, fmt.Errorf("%w: empty token", errInvalidState)
	}

	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		raw, err = base64.RawURLEncoding.DecodeString(token)
		if err != nil {
			return State{}, fmt.Errorf("decode base64: %w", err)
		}
	}

	var w wireState
	if err := json.Unmarshal(raw, &w); err != nil {
		return State{}, fmt.Errorf("unmarshal state: %w", err)
	}
	return w.state()
}

type stateClaims struct {
	State wireState `json:"state"`
	jwt.RegisteredClaims
}

type signedCodec struct {
	secret []byte
}

// NewSignedCodec returns a codec whose tokens are HS256 JWTs. Tokens with a bad
// signature decode to EmptyState.
func NewSignedCodec(secret []byte) Codec {
	return &signedCodec{secret: secret}
}

func (c *signedCodec) Encode(s State) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, stateClaims{State: toWire(s)})
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign state: %w", err)
	}
	return signed, nil
}

func (c *signedCodec) Decode(token string) State {
	token = strings.TrimSpace(token)
	if token == "" {
		return EmptyState()
	}

	var claims stateClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return EmptyState()
	}

	s, err := claims.State.state()
	if err != nil {
		return EmptyState()
	}
	return s
}
