package usecase

import (
	"context"
	"errors"
	"time"

	"career-compass/internal/domain/authz"
	"career-compass/internal/domain/competency"
	"career-compass/internal/repository"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

type Profile struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Role         authz.Role
	CurrentLevel competency.Level
	TargetLevel  competency.Level
	CreatedAt    time.Time
}

type UpdateProfileInput struct {
	Name         string
	CurrentLevel competency.Level
	TargetLevel  competency.Level
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (Profile, error)
}

type ProfileService struct {
	users  repository.UserRepository
	ladder competency.Ladder
}

func NewProfileUsecase(users repository.UserRepository, ladder competency.Ladder) *ProfileService {
	if len(ladder) == 0 {
		ladder = competency.DefaultLadder()
	}
	return &ProfileService{users: users, ladder: ladder}
}

func (u *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (Profile, error) {
	usr, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Profile{}, ErrUserNotFound
		}
		return Profile{}, ErrInternal
	}
	return toProfile(usr), nil
}

func (u *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (Profile, error) {
	if in.Name == "" {
		return Profile{}, ErrInvalidInput
	}
	if !u.ladder.Contains(in.CurrentLevel) || !u.ladder.Contains(in.TargetLevel) {
		return Profile{}, ErrInvalidInput
	}

	usr, err := u.users.UpdateProfile(ctx, userID, in.Name, in.CurrentLevel, in.TargetLevel)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Profile{}, ErrUserNotFound
		}
		return Profile{}, ErrInternal
	}
	return toProfile(usr), nil
}

func toProfile(u repository.User) Profile {
	return Profile{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		CurrentLevel: u.CurrentLevel,
		TargetLevel:  u.TargetLevel,
		CreatedAt:    u.CreatedAt,
	}
}
