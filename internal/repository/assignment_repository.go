package repository

import (
	"context"
	"errors"
	"time"

	"github.com/MyeongsupWorkSpace/sepnp/internal/model/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentRepository 작업자 편성 저장소
type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create 편성 등록
func (r *AssignmentRepository) Create(ctx context.Context, assignment *entity.WorkerAssignment) error {
	if assignment.ID == "" {
		assignment.ID = uuid.New().String()[:32]
	}
	return r.db.WithContext(ctx).Create(assignment).Error
}

// FindByID 편성 조회
func (r *AssignmentRepository) FindByID(ctx context.Context, id string) (*entity.WorkerAssignment, error) {
	var assignment entity.WorkerAssignment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &assignment, nil
}

// List 편성 목록 (날짜 필터 선택, 최신순)
func (r *AssignmentRepository) List(ctx context.Context, date *time.Time) ([]entity.WorkerAssignment, error) {
	var assignments []entity.WorkerAssignment
	query := r.db.WithContext(ctx).Model(&entity.WorkerAssignment{})
	if date != nil {
		query = query.Where("date = ?", date.Format("2006-01-02"))
	}
	err := query.Order("date DESC, created_at DESC").Find(&assignments).Error
	return assignments, err
}

// CountByDate 특정 일자의 편성 수
func (r *AssignmentRepository) CountByDate(ctx context.Context, date time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.WorkerAssignment{}).
		Where("date = ?", date.Format("2006-01-02")).
		Count(&count).Error
	return count, err
}

// Update 편성 수정
func (r *AssignmentRepository) Update(ctx context.Context, assignment *entity.WorkerAssignment) error {
	return r.db.WithContext(ctx).Save(assignment).Error
}

// Delete 편성 삭제
func (r *AssignmentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.WorkerAssignment{}, "id = ?", id).Error
}
