package database

import (
	"context"

	"userapi/internal/domain/entity"
	domainerrors "userapi/internal/domain/errors"
	"userapi/internal/domain/repository"
	"userapi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user and copies the generated ID and timestamps back.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		return translateWriteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByID retrieves a single user by primary key.
func (repo *userRepository) FindByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		return nil, translateReadError(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&userM).Error; err != nil {
		return nil, translateReadError(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindAll returns every user ordered by ID.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var models []model.UserModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(models))
	for i := range models {
		users = append(users, toUserDomain(&models[i]))
	}

	return users, nil
}

// Update writes only the supplied fields and returns the stored record.
func (repo *userRepository) Update(ctx context.Context, id uint64, update repository.UserUpdate) (*entity.User, error) {
	if update.IsEmpty() {
		return repo.FindByID(ctx, id)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(toUpdateColumns(update))
	if result.Error != nil {
		return nil, translateWriteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return nil, errors.WithStack(repository.ErrUserNotFound)
	}

	return repo.FindByID(ctx, id)
}

// Delete removes the user and returns the record as it was before deletion.
// Callers wanting the read and the delete to be atomic run it through the TransactionManager.
func (repo *userRepository) Delete(ctx context.Context, id uint64) (*entity.User, error) {
	db := repo.db.WithContext(ctx)

	var userM model.UserModel
	if err := db.Where("id = ?", id).First(&userM).Error; err != nil {
		return nil, translateReadError(err, "failed to find user for delete")
	}

	result := db.Delete(&model.UserModel{}, userM.ID)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return nil, errors.WithStack(repository.ErrUserNotFound)
	}

	return toUserDomain(&userM), nil
}

func translateReadError(err error, details string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.WithStack(repository.ErrUserNotFound)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

func translateWriteError(err error, details string) error {
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrUserAlreadyExists.WrapMessage(details)
	}
	if isNotNullConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WrapMessage(details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

func toUpdateColumns(update repository.UserUpdate) map[string]any {
	columns := make(map[string]any, 4)
	if update.Name != nil {
		columns["name"] = *update.Name
	}
	if update.Email != nil {
		columns["email"] = *update.Email
	}
	if update.Address != nil {
		columns["address"] = *update.Address
	}
	if update.PasswordHash != nil {
		columns["password"] = *update.PasswordHash
	}

	return columns
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		Address:      data.Address,
		PasswordHash: data.Password,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Address:   data.Address,
		Password:  data.PasswordHash,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
