package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/neutralpress/member-service/internal/domain"
	"github.com/neutralpress/member-service/internal/security"
	"github.com/neutralpress/member-service/internal/service"
)

type stubMemberService struct {
	registerFn       func(ctx context.Context, req service.RegisterRequest) (string, error)
	loginFn          func(ctx context.Context, req service.LoginRequest) (*security.TokenPair, error)
	updatePasswordFn func(ctx context.Context, email string, req service.UpdatePasswordRequest) error
	sendResetCodeFn  func(ctx context.Context, req service.FindPasswordRequest) error
	verifyCodeFn     func(ctx context.Context, req service.VerifyCodeRequest) error
	resetPasswordFn  func(ctx context.Context, req service.ResetPasswordRequest) error
}

func (s *stubMemberService) RegisterMember(ctx context.Context, req service.RegisterRequest) (string, error) {
	if s.registerFn == nil {
		return "", errors.New("not implemented")
	}
	return s.registerFn(ctx, req)
}

func (s *stubMemberService) Login(ctx context.Context, req service.LoginRequest) (*security.TokenPair, error) {
	if s.loginFn == nil {
		return nil, errors.New("not implemented")
	}
	return s.loginFn(ctx, req)
}

func (s *stubMemberService) UpdatePassword(ctx context.Context, email string, req service.UpdatePasswordRequest) error {
	if s.updatePasswordFn == nil {
		return errors.New("not implemented")
	}
	return s.updatePasswordFn(ctx, email, req)
}

func (s *stubMemberService) SendPasswordResetCode(ctx context.Context, req service.FindPasswordRequest) error {
	if s.sendResetCodeFn == nil {
		return errors.New("not implemented")
	}
	return s.sendResetCodeFn(ctx, req)
}

func (s *stubMemberService) VerifyCode(ctx context.Context, req service.VerifyCodeRequest) error {
	if s.verifyCodeFn == nil {
		return errors.New("not implemented")
	}
	return s.verifyCodeFn(ctx, req)
}

func (s *stubMemberService) ResetPassword(ctx context.Context, req service.ResetPasswordRequest) error {
	if s.resetPasswordFn == nil {
		return errors.New("not implemented")
	}
	return s.resetPasswordFn(ctx, req)
}

func doJSON(t *testing.T, h http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func TestSignupSuccess(t *testing.T) {
	svc := &stubMemberService{
		registerFn: func(_ context.Context, req service.RegisterRequest) (string, error) {
			if req.Email != "jamie@example.com" || req.PhoneNumber != "010-1234-5678" {
				t.Fatalf("unexpected request: %+v", req)
			}
			return "registration completed", nil
		},
	}
	h := NewMemberHandler(svc)

	rr := doJSON(t, h.Signup, http.MethodPost, "/member/signup",
		`{"name":"Jamie","email":"jamie@example.com","password":"TestPassword12!","phone_number":"010-1234-5678"}`)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	data := body["data"].(map[string]any)
	if data["message"] != "registration completed" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestSignupDuplicateEmailMapsToConflict(t *testing.T) {
	svc := &stubMemberService{
		registerFn: func(context.Context, service.RegisterRequest) (string, error) {
			return "", domain.ErrDuplicatedEmail
		},
	}
	h := NewMemberHandler(svc)

	rr := doJSON(t, h.Signup, http.MethodPost, "/member/signup", `{"email":"dup@example.com"}`)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rr.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	apiErr := body["error"].(map[string]any)
	if apiErr["code"] != "DUPLICATED_EMAIL" {
		t.Fatalf("unexpected error code: %+v", apiErr)
	}
	details := apiErr["details"].(map[string]any)
	if details["code"] != float64(1000) {
		t.Fatalf("unexpected numeric code: %+v", details)
	}
}

func TestSignupMalformedBody(t *testing.T) {
	h := NewMemberHandler(&stubMemberService{})

	rr := doJSON(t, h.Signup, http.MethodPost, "/member/signup", `{bad json`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestLoginReturnsTokenPair(t *testing.T) {
	svc := &stubMemberService{
		loginFn: func(_ context.Context, req service.LoginRequest) (*security.TokenPair, error) {
			return &security.TokenPair{TokenType: "Bearer", AccessToken: "a", RefreshToken: "r"}, nil
		},
	}
	h := NewMemberHandler(svc)

	rr := doJSON(t, h.Login, http.MethodPost, "/member/login", `{"email":"jamie@example.com","password":"TestPassword12!"}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	data := body["data"].(map[string]any)
	if data["token_type"] != "Bearer" || data["access_token"] != "a" || data["refresh_token"] != "r" {
		t.Fatalf("unexpected pair: %+v", data)
	}
}

func TestLoginFailuresStayUnauthorized(t *testing.T) {
	cases := []struct {
		name string
		err  *domain.AuthError
	}{
		{"unknown member", domain.ErrNotRegisteredMember},
		{"wrong password", domain.ErrPasswordMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubMemberService{
				loginFn: func(context.Context, service.LoginRequest) (*security.TokenPair, error) {
					return nil, tc.err
				},
			}
			h := NewMemberHandler(svc)

			rr := doJSON(t, h.Login, http.MethodPost, "/member/login", `{"email":"x@example.com","password":"y"}`)
			if rr.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rr.Code)
			}
		})
	}
}

func TestUpdatePasswordRequiresAuthContext(t *testing.T) {
	h := NewMemberHandler(&stubMemberService{})

	rr := doJSON(t, h.UpdatePassword, http.MethodPost, "/member/update-password", `{"old_password":"a","new_password":"b"}`)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %d", rr.Code)
	}
}

func TestResetFlowHandlersReturnNoContent(t *testing.T) {
	svc := &stubMemberService{
		sendResetCodeFn: func(context.Context, service.FindPasswordRequest) error { return nil },
		verifyCodeFn:    func(context.Context, service.VerifyCodeRequest) error { return nil },
		resetPasswordFn: func(context.Context, service.ResetPasswordRequest) error { return nil },
	}
	h := NewMemberHandler(svc)

	cases := []struct {
		name    string
		handler http.HandlerFunc
		body    string
	}{
		{"send code", h.SendPasswordResetCode, `{"email":"jamie@example.com","phone_number":"010-1234-5678"}`},
		{"verify", h.VerifyCode, `{"email":"jamie@example.com","verification_code":"654321"}`},
		{"reset", h.ResetPassword, `{"email":"jamie@example.com","new_password":"NewPassword12!"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := doJSON(t, tc.handler, http.MethodPost, "/member/x", tc.body)
			if rr.Code != http.StatusNoContent {
				t.Fatalf("expected 204, got %d: %s", rr.Code, rr.Body.String())
			}
		})
	}
}

func TestResetPasswordUnauthorizedResetMapping(t *testing.T) {
	svc := &stubMemberService{
		resetPasswordFn: func(context.Context, service.ResetPasswordRequest) error {
			return domain.ErrUnauthorizedReset
		},
	}
	h := NewMemberHandler(svc)

	rr := doJSON(t, h.ResetPassword, http.MethodPost, "/member/reset-password", `{"email":"jamie@example.com","new_password":"NewPassword12!"}`)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	apiErr := body["error"].(map[string]any)
	if apiErr["code"] != "UNAUTHORIZED_VERIFICATION" {
		t.Fatalf("unexpected code: %+v", apiErr)
	}
}

func TestInfrastructureFaultStaysOpaque(t *testing.T) {
	svc := &stubMemberService{
		loginFn: func(context.Context, service.LoginRequest) (*security.TokenPair, error) {
			return nil, errors.New("pg: connection refused")
		},
	}
	h := NewMemberHandler(svc)

	rr := doJSON(t, h.Login, http.MethodPost, "/member/login", `{"email":"x@example.com","password":"y"}`)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	if strings.Contains(rr.Body.String(), "connection refused") {
		t.Fatal("infrastructure detail must not leak to clients")
	}
}
