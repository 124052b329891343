package usecase

import (
	"context"

	"hirelink/internal/domain/entity"
	"hirelink/internal/domain/repository"
	"hirelink/internal/infrastructure/firebase"
	"hirelink/pkg/errors"
	"hirelink/pkg/logger"
)

type UserUseCase struct {
	userRepo   repository.UserRepository
	authClient *firebase.FirebaseAuthClient
	syncUC     *SyncUseCase
}

func NewUserUseCase(
	userRepo repository.UserRepository,
	authClient *firebase.FirebaseAuthClient,
	syncUC *SyncUseCase,
) *UserUseCase {
	return &UserUseCase{
		userRepo:   userRepo,
		authClient: authClient,
		syncUC:     syncUC,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     string
	Phone    string
	Location string
}

type UpdateProfileInput struct {
	Name      string
	Phone     string
	Location  string
	Bio       string
	AvatarURL string
	Provider  *entity.ProviderProfile
}

// Register creates the auth account and its profile document. The profile is
// the canonical user record; the auth provider only owns credentials.
func (uc *UserUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	if input.Role != entity.RoleSeeker && input.Role != entity.RoleProvider {
		return nil, errors.BadRequest("Role must be seeker or provider", nil)
	}

	if existing, err := uc.userRepo.GetByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, errors.Conflict("An account with this email already exists")
	}

	uid, err := uc.authClient.CreateUser(ctx, input.Email, input.Password, input.Name)
	if err != nil {
		return nil, errors.BadRequest("Failed to create account", err)
	}

	user := &entity.User{
		ID:       uid,
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Location: input.Location,
		Role:     input.Role,
	}
	if user.IsProvider() {
		user.Provider = &entity.ProviderProfile{Location: input.Location}
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		// Roll the auth account back so the email is not burned by a
		// half-finished signup.
		if delErr := uc.authClient.DeleteUser(ctx, uid); delErr != nil {
			logger.Error("Failed to clean up auth account %s after profile create failure: %v", uid, delErr)
		}
		return nil, err
	}

	return user, nil
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

// UpdateProfile saves the profile and, when the display name or avatar
// changed for a provider, fans the new snapshot out to their listings.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	snapshotChanged := (input.Name != "" && input.Name != user.Name) ||
		(input.AvatarURL != "" && input.AvatarURL != user.AvatarURL)

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.Location != "" {
		user.Location = input.Location
	}
	if input.Bio != "" {
		user.Bio = input.Bio
	}
	if input.AvatarURL != "" {
		user.AvatarURL = input.AvatarURL
	}
	if input.Provider != nil {
		if !user.IsProvider() {
			return nil, errors.InvalidOperation("Only providers can set business details")
		}
		user.Provider = input.Provider
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if user.IsProvider() && snapshotChanged {
		if _, err := uc.syncUC.UpdateProvider(ctx, userID, user.Name, user.AvatarURL); err != nil {
			// The profile write already succeeded; listing snapshots catch up
			// on the next edit or retry.
			logger.Warn("Provider fan-out failed for %s: %v", userID, err)
		}
	}

	return user, nil
}

func (uc *UserUseCase) ListUsers(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	return uc.userRepo.List(ctx, limit, offset)
}

// GenerateDevToken mints a usable bearer token for local development.
func (uc *UserUseCase) GenerateDevToken(ctx context.Context, userID string) (string, error) {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return "", err
	}
	return uc.authClient.GenerateDevToken(ctx, userID)
}
