package service

import (
	"context"
	"strings"
	"time"

	"github.com/diskusiapp/diskusi/model"
	Logger "github.com/diskusiapp/diskusi/utils/log"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Points awarded per event. Points only ever go up, deletes don't claw back.
const (
	PointsPerPost        = 10
	PointsPerComment     = 5
	PointsPerFirstRating = 2
)

const defaultAvatarUrl = "https://robohash.org/54a9068a8750731226a284514c01b0bb?set=set4&bgset=&size=400x400"

const defaultLeaderboardLimit = 10

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a user with a bcrypt-hashed password. Email uniqueness is
// enforced both by a pre-check (for a friendly error) and by the unique index.
func (s *Service) Register(input RegisterInput) (*model.User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Name == "" || input.Email == "" {
		return nil, invalid("name and email are required")
	}
	if len(input.Password) < 8 {
		return nil, invalid("password must be at least 8 characters")
	}

	var existing model.User
	if res := s.DB.Where("email = ?", input.Email).First(&existing); res.RowsAffected > 0 {
		return nil, errors.Wrap(ErrConflict, "email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	user := model.User{
		Id:           uuid.New().String(),
		CreatedAt:    time.Now(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		AvatarUrl:    defaultAvatarUrl,
		Role:         model.RoleUser,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, errors.Wrap(err, "create user")
	}
	return &user, nil
}

// Authenticate verifies email/password and returns the user on success.
func (s *Service) Authenticate(email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user model.User
	res := s.DB.Where("email = ?", email).First(&user)
	if res.RowsAffected != 1 {
		return nil, ErrUnauthenticated
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrUnauthenticated
	}
	return &user, nil
}

func (s *Service) GetUser(id string) (*model.User, error) {
	var user model.User
	res := s.DB.Where("id = ?", id).First(&user)
	if res.RowsAffected != 1 {
		return nil, notFound("user")
	}
	return &user, nil
}

// ListUsers is the admin dashboard listing, newest first.
func (s *Service) ListUsers(principal Principal) ([]model.User, error) {
	if !principal.IsAdmin() {
		return nil, ErrForbidden
	}
	var users []model.User
	if err := s.DB.Order("created_at desc").Find(&users).Error; err != nil {
		return nil, errors.Wrap(err, "list users")
	}
	return users, nil
}

type UpdateUserInput struct {
	Name      *string
	Bio       *string
	AvatarUrl *string
	// admin-only fields
	Verified *bool
	Role     *string
}

// UpdateUser updates profile fields. Self-service edits cover name, bio and
// avatar; verified and role changes require an admin principal.
func (s *Service) UpdateUser(principal Principal, id string, input UpdateUserInput) (*model.User, error) {
	if principal.UserID != id && !principal.IsAdmin() {
		return nil, ErrForbidden
	}
	if (input.Verified != nil || input.Role != nil) && !principal.IsAdmin() {
		return nil, ErrForbidden
	}
	if input.Role != nil && *input.Role != model.RoleUser && *input.Role != model.RoleAdmin {
		return nil, invalid("unknown role")
	}

	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, invalid("name must not be empty")
		}
		updates["name"] = strings.TrimSpace(*input.Name)
	}
	if input.Bio != nil {
		updates["bio"] = *input.Bio
	}
	if input.AvatarUrl != nil {
		updates["avatar_url"] = *input.AvatarUrl
	}
	if input.Verified != nil {
		updates["verified"] = *input.Verified
	}
	if input.Role != nil {
		updates["role"] = *input.Role
	}
	if len(updates) == 0 {
		return user, nil
	}

	if err := s.DB.Model(user).Updates(updates).Error; err != nil {
		return nil, errors.Wrap(err, "update user")
	}
	return user, nil
}

// DeleteUser soft-deletes a user. Self-delete or admin only.
func (s *Service) DeleteUser(principal Principal, id string) error {
	if principal.UserID != id && !principal.IsAdmin() {
		return ErrForbidden
	}
	res := s.DB.Where("id = ?", id).Delete(&model.User{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete user")
	}
	if res.RowsAffected == 0 {
		return notFound("user")
	}
	return nil
}

// awardPoints bumps the accumulator with a single atomic statement.
func awardPoints(tx *gorm.DB, userID string, points int) error {
	return tx.Model(&model.User{}).Where("id = ?", userID).
		UpdateColumn("points", gorm.Expr("points + ?", points)).Error
}

// Leaderboard returns the top users by points, descending, behind a short
// redis TTL cache when one is configured.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}

	if s.Redis != nil {
		if cached, err := s.Redis.GetLeaderboard(ctx, limit); err == nil {
			return cached, nil
		}
	}

	var users []model.User
	if err := s.DB.Order("points desc").Limit(limit).Find(&users).Error; err != nil {
		return nil, errors.Wrap(err, "query leaderboard")
	}

	entries := []model.LeaderboardEntry{}
	if err := copier.Copy(&entries, &users); err != nil {
		return nil, errors.Wrap(err, "shape leaderboard")
	}

	if s.Redis != nil {
		if err := s.Redis.SetLeaderboard(ctx, limit, entries); err != nil {
			Logger.Log.Warn("fail to cache leaderboard: ", err)
		}
	}
	return entries, nil
}
