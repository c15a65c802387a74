package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MyeongsupWorkSpace/sepnp/internal/model/entity"
	"github.com/MyeongsupWorkSpace/sepnp/internal/repository"
	"github.com/google/uuid"
)

// AssignmentService 작업자 편성 서비스
type AssignmentService struct {
	repo *repository.AssignmentRepository
}

func NewAssignmentService(repo *repository.AssignmentRepository) *AssignmentService {
	return &AssignmentService{repo: repo}
}

// CreateAssignmentRequest 편성 등록 요청
type CreateAssignmentRequest struct {
	Date          string   `json:"date" binding:"required"` // YYYY-MM-DD
	Process       string   `json:"process" binding:"required"`
	ProcessPerm   string   `json:"processPerm"`
	Machine       string   `json:"machine" binding:"required"`
	Team          string   `json:"team" binding:"required"`
	Shift         string   `json:"shift" binding:"required"`
	Start         string   `json:"start"`
	End           string   `json:"end"`
	Workers       []string `json:"workers" binding:"required"`
	CreatedBy     string   `json:"createdBy"`
	CreatedByName string   `json:"createdByName"`
}

// Create 편성 등록
func (s *AssignmentService) Create(ctx context.Context, req *CreateAssignmentRequest) (*entity.WorkerAssignment, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}

	assignment := &entity.WorkerAssignment{
		ID:            uuid.New().String()[:32],
		Date:          date,
		Process:       req.Process,
		ProcessPerm:   req.ProcessPerm,
		Machine:       req.Machine,
		Team:          req.Team,
		Shift:         req.Shift,
		StartTime:     req.Start,
		EndTime:       req.End,
		Workers:       entity.StringList(req.Workers),
		CreatedBy:     req.CreatedBy,
		CreatedByName: req.CreatedByName,
	}

	if err := s.repo.Create(ctx, assignment); err != nil {
		return nil, fmt.Errorf("create assignment: %w", err)
	}
	return assignment, nil
}

// List 편성 목록 조회 (날짜 필터 선택)
func (s *AssignmentService) List(ctx context.Context, dateStr string) ([]entity.WorkerAssignment, error) {
	var date *time.Time
	if dateStr != "" {
		t, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, fmt.Errorf("parse date: %w", err)
		}
		date = &t
	}
	return s.repo.List(ctx, date)
}

// UpdateAssignmentRequest 편성 수정 요청
type UpdateAssignmentRequest struct {
	Date    string   `json:"date"`
	Machine string   `json:"machine"`
	Team    string   `json:"team"`
	Shift   string   `json:"shift"`
	Start   string   `json:"start"`
	End     string   `json:"end"`
	Workers []string `json:"workers"`
}

// Update 편성 수정
func (s *AssignmentService) Update(ctx context.Context, id string, req *UpdateAssignmentRequest) (*entity.WorkerAssignment, error) {
	assignment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find assignment: %w", err)
	}

	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, fmt.Errorf("parse date: %w", err)
		}
		assignment.Date = date
	}
	if req.Machine != "" {
		assignment.Machine = req.Machine
	}
	if req.Team != "" {
		assignment.Team = req.Team
	}
	if req.Shift != "" {
		assignment.Shift = req.Shift
	}
	if req.Start != "" {
		assignment.StartTime = req.Start
	}
	if req.End != "" {
		assignment.EndTime = req.End
	}
	if req.Workers != nil {
		assignment.Workers = entity.StringList(req.Workers)
	}

	if err := s.repo.Update(ctx, assignment); err != nil {
		return nil, fmt.Errorf("update assignment: %w", err)
	}
	return assignment, nil
}

// Delete 편성 삭제
func (s *AssignmentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
