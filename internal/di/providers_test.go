package di

import (
	"testing"
	"time"

	"github.com/neutralpress/member-service/internal/config"
	"github.com/neutralpress/member-service/internal/http/router"
	"github.com/neutralpress/member-service/internal/security"
)

func TestProvideHTTPServer(t *testing.T) {
	cfg := &config.Config{HTTPPort: "9999"}
	srv := provideHTTPServer(cfg, nil)
	if srv.Addr != ":9999" {
		t.Fatalf("unexpected addr: %s", srv.Addr)
	}
	if srv.ReadTimeout.Seconds() != 10 {
		t.Fatalf("unexpected read timeout: %v", srv.ReadTimeout)
	}
}

func TestProvideRouterDependencies(t *testing.T) {
	dep := provideRouterDependencies(nil, nil, nil, nil)
	_ = router.Dependencies(dep)
}

func TestProvideNotifierModes(t *testing.T) {
	logger := provideLogger(&config.Config{Env: "development"})

	dev := provideNotifier(&config.Config{NotifierMode: "dev"}, logger)
	if dev == nil {
		t.Fatal("expected dev notifier")
	}
	smtp := provideNotifier(&config.Config{NotifierMode: "smtp", SMTPAddr: "localhost:25"}, logger)
	if smtp == nil {
		t.Fatal("expected smtp notifier")
	}
}

func TestProvideTokenIssuer(t *testing.T) {
	cfg := &config.Config{
		JWTIssuer:        "iss",
		JWTAudience:      "aud",
		JWTAccessSecret:  "abcdefghijklmnopqrstuvwxyz123456",
		JWTRefreshSecret: "abcdefghijklmnopqrstuvwxyz654321",
		JWTAccessTTL:     time.Minute,
		JWTRefreshTTL:    time.Hour,
	}
	issuer := provideTokenIssuer(provideJWTManager(cfg), cfg)
	pair, err := issuer.Issue(security.CredentialClaim{Email: "jamie@example.com"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if pair.TokenType != "Bearer" || pair.AccessToken == "" {
		t.Fatalf("unexpected pair: %+v", pair)
	}
}
