package security

import "time"

// CredentialClaim is the minimal identity assertion produced by a successful
// password check. The hash stays inside this process; only the email is ever
// embedded in a token.
type CredentialClaim struct {
	Email        string
	PasswordHash string
}

type TokenPair struct {
	TokenType    string `json:"token_type"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// TokenIssuer mints the session token pair for an authenticated claim.
type TokenIssuer struct {
	manager    *JWTManager
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenIssuer(manager *JWTManager, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{manager: manager, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

func (i *TokenIssuer) Issue(claim CredentialClaim) (*TokenPair, error) {
	access, err := i.manager.SignAccessToken(claim.Email, i.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := i.manager.SignRefreshToken(claim.Email, i.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{TokenType: "Bearer", AccessToken: access, RefreshToken: refresh}, nil
}
