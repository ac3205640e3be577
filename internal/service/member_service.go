package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/neutralpress/member-service/internal/domain"
	"github.com/neutralpress/member-service/internal/repository"
	"github.com/neutralpress/member-service/internal/security"
)

const (
	verifiedFlagSuffix = ":verified"
	verifiedFlagValue  = "true"

	resetCodeSubject      = "Password reset verification code"
	resetCodeBodyTemplate = "Your password reset verification code is %s"
)

var phonePattern = regexp.MustCompile(`^\d{3}-\d{3,4}-\d{4}$`)

type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type FindPasswordRequest struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

type VerifyCodeRequest struct {
	Email            string `json:"email"`
	VerificationCode string `json:"verification_code"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"new_password"`
}

type TokenIssuer interface {
	Issue(claim security.CredentialClaim) (*security.TokenPair, error)
}

type MemberServiceInterface interface {
	RegisterMember(ctx context.Context, req RegisterRequest) (string, error)
	Login(ctx context.Context, req LoginRequest) (*security.TokenPair, error)
	UpdatePassword(ctx context.Context, email string, req UpdatePasswordRequest) error
	SendPasswordResetCode(ctx context.Context, req FindPasswordRequest) error
	VerifyCode(ctx context.Context, req VerifyCodeRequest) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
}

// MemberService is the authentication and password-recovery state machine.
// All cross-request state lives in the member repository and the verification
// store; the service itself holds no mutable state and is safe for concurrent
// use. Code verification carries no attempt counting or lockout.
type MemberService struct {
	members  repository.MemberRepository
	hasher   security.PasswordHasher
	tokens   TokenIssuer
	store    VerificationStore
	notifier Notifier
	logger   *slog.Logger
	codeTTL  time.Duration
}

func NewMemberService(
	members repository.MemberRepository,
	hasher security.PasswordHasher,
	tokens TokenIssuer,
	store VerificationStore,
	notifier Notifier,
	logger *slog.Logger,
	codeTTL time.Duration,
) *MemberService {
	if codeTTL <= 0 {
		codeTTL = 5 * time.Minute
	}
	return &MemberService{
		members:  members,
		hasher:   hasher,
		tokens:   tokens,
		store:    store,
		notifier: notifier,
		logger:   logger,
		codeTTL:  codeTTL,
	}
}

func (s *MemberService) RegisterMember(ctx context.Context, req RegisterRequest) (string, error) {
	_, err := s.members.FindByEmail(req.Email)
	if err == nil {
		return "", domain.ErrDuplicatedEmail
	}
	if !errors.Is(err, repository.ErrMemberNotFound) {
		return "", fmt.Errorf("register lookup: %w", err)
	}

	if !validPassword(req.Password) {
		return "", domain.ErrInvalidPasswordFormat
	}
	if !phonePattern.MatchString(req.PhoneNumber) {
		return "", domain.ErrInvalidPhoneNumberFormat
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	member := &domain.Member{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		PhoneNumber:  req.PhoneNumber,
	}
	if err := s.members.Create(member); err != nil {
		return "", fmt.Errorf("register member: %w", err)
	}

	s.logger.InfoContext(ctx, "member registered", "member_id", member.ID)
	return "registration completed", nil
}

func (s *MemberService) Login(ctx context.Context, req LoginRequest) (*security.TokenPair, error) {
	member, err := s.members.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return nil, domain.ErrNotRegisteredMember
		}
		return nil, fmt.Errorf("login lookup: %w", err)
	}

	if !s.hasher.Verify(req.Password, member.PasswordHash) {
		return nil, domain.ErrPasswordMismatch
	}

	pair, err := s.tokens.Issue(security.CredentialClaim{Email: member.Email, PasswordHash: member.PasswordHash})
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	s.logger.InfoContext(ctx, "member logged in", "member_id", member.ID)
	return pair, nil
}

// UpdatePassword changes the password of an already-authenticated caller.
// The email comes from the boundary layer's verified token claims, never from
// ambient state. Existing tokens stay valid until their natural expiry.
func (s *MemberService) UpdatePassword(ctx context.Context, email string, req UpdatePasswordRequest) error {
	member, err := s.members.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			// Authentication already succeeded upstream, so an absent row is a
			// consistency fault, not a bad login.
			return domain.ErrMemberNotFound
		}
		return fmt.Errorf("update password lookup: %w", err)
	}

	if !s.hasher.Verify(req.OldPassword, member.PasswordHash) {
		return domain.ErrPasswordMismatch
	}
	if !validPassword(req.NewPassword) {
		return domain.ErrInvalidPasswordFormat
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.members.UpdatePassword(member.ID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	s.logger.InfoContext(ctx, "member password updated", "member_id", member.ID)
	return nil
}

func (s *MemberService) SendPasswordResetCode(ctx context.Context, req FindPasswordRequest) error {
	member, err := s.members.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return domain.ErrMemberNotFound
		}
		return fmt.Errorf("reset code lookup: %w", err)
	}

	if req.PhoneNumber != member.PhoneNumber {
		return domain.ErrPhoneNumberMismatch
	}

	code, err := generateVerificationCode()
	if err != nil {
		return fmt.Errorf("generate verification code: %w", err)
	}

	if err := s.notifier.Send(ctx, member.Email, resetCodeSubject, fmt.Sprintf(resetCodeBodyTemplate, code)); err != nil {
		return fmt.Errorf("send verification code: %w", err)
	}
	if err := s.store.Set(ctx, member.Email, code, s.codeTTL); err != nil {
		return fmt.Errorf("store verification code: %w", err)
	}
	s.logger.InfoContext(ctx, "password reset code issued", "member_id", member.ID)
	return nil
}

// VerifyCode is idempotent for a correct code: re-submitting it refreshes the
// verified flag. A wrong or expired code fails without touching the stored
// code, so a correct retry within the TTL still succeeds.
func (s *MemberService) VerifyCode(ctx context.Context, req VerifyCodeRequest) error {
	code, ok, err := s.store.Get(ctx, req.Email)
	if err != nil {
		return fmt.Errorf("read verification code: %w", err)
	}
	if !ok || code != req.VerificationCode {
		return domain.ErrVerificationCodeMismatch
	}

	if err := s.store.Set(ctx, req.Email+verifiedFlagSuffix, verifiedFlagValue, s.codeTTL); err != nil {
		return fmt.Errorf("store verified flag: %w", err)
	}
	s.logger.InfoContext(ctx, "reset code verified", "email", req.Email)
	return nil
}

func (s *MemberService) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	verified, ok, err := s.store.Get(ctx, req.Email+verifiedFlagSuffix)
	if err != nil {
		return fmt.Errorf("read verified flag: %w", err)
	}
	if !ok || verified != verifiedFlagValue {
		return domain.ErrUnauthorizedReset
	}

	member, err := s.members.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return domain.ErrMemberNotFound
		}
		return fmt.Errorf("reset password lookup: %w", err)
	}

	if !validPassword(req.NewPassword) {
		return domain.ErrInvalidPasswordFormat
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.members.UpdatePassword(member.ID, hash); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}

	// Closing the reuse window matters more than the delete outcome; the flag
	// would lapse on its own TTL anyway.
	if err := s.store.Delete(ctx, req.Email+verifiedFlagSuffix); err != nil {
		s.logger.WarnContext(ctx, "failed to delete verified flag", "error", err)
	}
	s.logger.InfoContext(ctx, "member password reset", "member_id", member.ID)
	return nil
}

// validPassword enforces 8-16 characters drawn only from letters, digits and
// the symbol set @$!%*?&, with at least one of each class present. Mixed case
// is not required.
func validPassword(password string) bool {
	if len(password) < 8 || len(password) > 16 {
		return false
	}
	var letter, digit, symbol bool
	for _, r := range password {
		switch {
		case (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z'):
			letter = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune("@$!%*?&", r):
			symbol = true
		default:
			return false
		}
	}
	return letter && digit && symbol
}

// generateVerificationCode draws a 6-digit code uniformly from
// [100000, 999999].
func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
