package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/you/regsvc/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	PhoneNumber         string    `gorm:"index;size:32"`
	Email               string    `gorm:"uniqueIndex;size:255"`
	Name                string    `gorm:"size:128"`
	Family              string    `gorm:"size:128"`
	HashedPassword      string    `gorm:"column:hashed_password"`
	Role                string    `gorm:"index;size:64"`
	Position            string    `gorm:"size:255"`
	PersonalCode        string    `gorm:"size:64"`
	IsVerified          bool
	EmailVerified       bool
	PhoneNumberVerified bool
	LatestLogin         *time.Time
	LoginRetries        bool
	LockExpireTime      *time.Time
	IsLocked            bool
	IsActive            bool      `gorm:"index"`
	CreatedAt           time.Time `gorm:"index"`
	UpdatedAt           time.Time
	DeletedAt           gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository. The *gorm.DB must be
// opened with TranslateError so duplicate-key violations surface as
// gorm.ErrDuplicatedKey.
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// GetByID implements domain.UserRepository
func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

// GetByPhoneNumber implements domain.UserRepository
func (r *UserRepositoryImpl) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.User, error) {
	return r.findOne(ctx, "phone_number = ?", phoneNumber)
}

// GetByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *UserRepositoryImpl) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where(query, arg).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// Insert implements domain.UserRepository. The unique index on email is the
// real uniqueness authority: two registrations racing past the service-level
// existence check still collapse to one row here.
func (r *UserRepositoryImpl) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrUserAlreadyExists
		}
		return nil, err
	}
	return r.dbToDomain(dbUser), nil
}

// Update implements domain.UserRepository
func (r *UserRepositoryImpl) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (*domain.User, error) {
	res := r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:                  user.ID,
		PhoneNumber:         user.PhoneNumber,
		Email:               user.Email,
		Name:                user.Name,
		Family:              user.Family,
		HashedPassword:      user.HashedPassword,
		Role:                user.Role.String(),
		Position:            user.Position,
		PersonalCode:        user.PersonalCode,
		IsVerified:          user.IsVerified,
		EmailVerified:       user.EmailVerified,
		PhoneNumberVerified: user.PhoneNumberVerified,
		LatestLogin:         user.LatestLogin,
		LoginRetries:        user.LoginRetries,
		LockExpireTime:      user.LockExpireTime,
		IsLocked:            user.IsLocked,
		IsActive:            user.IsActive,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:                  dbUser.ID,
		PhoneNumber:         dbUser.PhoneNumber,
		Email:               dbUser.Email,
		Name:                dbUser.Name,
		Family:              dbUser.Family,
		HashedPassword:      dbUser.HashedPassword,
		Role:                domain.Role(dbUser.Role),
		Position:            dbUser.Position,
		PersonalCode:        dbUser.PersonalCode,
		IsVerified:          dbUser.IsVerified,
		EmailVerified:       dbUser.EmailVerified,
		PhoneNumberVerified: dbUser.PhoneNumberVerified,
		LatestLogin:         dbUser.LatestLogin,
		LoginRetries:        dbUser.LoginRetries,
		LockExpireTime:      dbUser.LockExpireTime,
		IsLocked:            dbUser.IsLocked,
		IsActive:            dbUser.IsActive,
		CreatedAt:           dbUser.CreatedAt,
		UpdatedAt:           dbUser.UpdatedAt,
	}
}
