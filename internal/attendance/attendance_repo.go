package attendance

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	Update(ctx context.Context, a *Attendance) error
	FindByID(ctx context.Context, id string) (*Attendance, error)
	FindByTeacherAndDate(ctx context.Context, teacherID string, date time.Time) (*Attendance, error)
	FindAll(ctx context.Context) ([]Attendance, error)
	FindAllByTeacher(ctx context.Context, teacherID string) ([]Attendance, error)
	FindByTeacherAndRange(ctx context.Context, teacherID string, from, to time.Time) ([]Attendance, error)
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

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) FindByTeacherAndDate(ctx context.Context, teacherID string, date time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("teacher_id = ? AND date = ?", teacherID, date).
		First(&a).Error
	return &a, err
}

func (r *repository) FindAll(ctx context.Context) ([]Attendance, error) {
	var records []Attendance
	err := r.db.WithContext(ctx).
		Order("date DESC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindAllByTeacher(ctx context.Context, teacherID string) ([]Attendance, error) {
	var records []Attendance
	err := r.db.WithContext(ctx).
		Where("teacher_id = ?", teacherID).
		Order("date DESC").
		Find(&records).Error
	return records, err
}

// FindByTeacherAndRange returns records with from <= date < to.
func (r *repository) FindByTeacherAndRange(ctx context.Context, teacherID string, from, to time.Time) ([]Attendance, error) {
	var records []Attendance
	err := r.db.WithContext(ctx).
		Where("teacher_id = ? AND date >= ? AND date < ?", teacherID, from, to).
		Order("date ASC").
		Find(&records).Error
	return records, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Delete(&Attendance{}, "id = ?", id).Error
}
