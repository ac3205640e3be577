package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/neutralpress/member-service/internal/domain"
)

// ErrMemberNotFound signals an absent row. Callers decide how (and whether)
// to classify it; the repository never speaks in business error codes.
var ErrMemberNotFound = errors.New("member not found")

type MemberRepository interface {
	FindByEmail(email string) (*domain.Member, error)
	Create(member *domain.Member) error
	UpdatePassword(memberID uint, passwordHash string) error
}

type GormMemberRepository struct {
	db *gorm.DB
}

func NewGormMemberRepository(db *gorm.DB) *GormMemberRepository {
	return &GormMemberRepository{db: db}
}

func (r *GormMemberRepository) FindByEmail(email string) (*domain.Member, error) {
	var member domain.Member
	if err := r.db.Where("email = ?", email).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("find member by email: %w", err)
	}
	return &member, nil
}

func (r *GormMemberRepository) Create(member *domain.Member) error {
	if err := r.db.Create(member).Error; err != nil {
		return fmt.Errorf("create member: %w", err)
	}
	return nil
}

func (r *GormMemberRepository) UpdatePassword(memberID uint, passwordHash string) error {
	res := r.db.Model(&domain.Member{}).Where("id = ?", memberID).Update("password_hash", passwordHash)
	if res.Error != nil {
		return fmt.Errorf("update member password: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrMemberNotFound
	}
	return nil
}
