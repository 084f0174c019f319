package teacher

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=teacher_repo.go -destination=mock/teacher_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *Teacher) error
	FindAll(ctx context.Context) ([]Teacher, error)
	FindOptions(ctx context.Context) ([]Teacher, error)
	FindByID(ctx context.Context, id string) (*Teacher, error)
	FindByLogin(ctx context.Context, login string) (*Teacher, error)
	Update(ctx context.Context, t *Teacher) error
	UpdatePassword(ctx context.Context, id, hash string) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, t *Teacher) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Teacher, error) {
	var teachers []Teacher
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&teachers).Error
	return teachers, err
}

func (r *repository) FindOptions(ctx context.Context) ([]Teacher, error) {
	var teachers []Teacher
	err := r.db.WithContext(ctx).
		Select("id", "name", "gr_number", "designation").
		Where("active = ?", true).
		Order("name ASC").
		Find(&teachers).Error
	return teachers, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Teacher, error) {
	var t Teacher
	err := r.db.WithContext(ctx).
		First(&t, "id = ?", id).Error
	return &t, err
}

// FindByLogin resolves either identifier scheme: username or GR number.
func (r *repository) FindByLogin(ctx context.Context, login string) (*Teacher, error) {
	var t Teacher
	err := r.db.WithContext(ctx).
		Where("username = ? OR gr_number = ?", login, login).
		First(&t).Error
	return &t, err
}

func (r *repository) Update(ctx context.Context, t *Teacher) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) UpdatePassword(ctx context.Context, id, hash string) error {
	return r.db.WithContext(ctx).
		Model(&Teacher{}).
		Where("id = ?", id).
		Update("password", hash).Error
}

// Delete is a hard delete; attendance rows referencing the teacher are
// left in place and looked up defensively by readers.
func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Unscoped().
		Delete(&Teacher{}, "id = ?", id).Error
}
