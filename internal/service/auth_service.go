package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MyeongsupWorkSpace/sepnp/internal/config"
	"github.com/MyeongsupWorkSpace/sepnp/internal/model/entity"
	"github.com/MyeongsupWorkSpace/sepnp/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials 로그인 실패
var ErrInvalidCredentials = errors.New("invalid login id or password")

// AuthService 인증 서비스
type AuthService struct {
	empRepo *repository.EmployeeRepository
	cfg     *config.Config
}

func NewAuthService(empRepo *repository.EmployeeRepository, cfg *config.Config) *AuthService {
	return &AuthService{empRepo: empRepo, cfg: cfg}
}

// LoginResult 로그인 결과
type LoginResult struct {
	Token     string           `json:"token"`
	ExpiresIn int64            `json:"expires_in"`
	Employee  *entity.Employee `json:"emp"`
}

// Login authenticates by username or employee number against the
// stored bcrypt hash and issues a signed access token.
func (s *AuthService) Login(ctx context.Context, loginID, password string) (*LoginResult, error) {
	emp, err := s.empRepo.FindByLogin(ctx, loginID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresIn, err := s.generateToken(emp)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &LoginResult{Token: token, ExpiresIn: expiresIn, Employee: emp}, nil
}

// CreateEmployeeRequest 사원 등록 요청
type CreateEmployeeRequest struct {
	EmpNo    string   `json:"emp_no" binding:"required"`
	Username string   `json:"username" binding:"required"`
	Password string   `json:"password" binding:"required"`
	Name     string   `json:"name" binding:"required"`
	Dept     string   `json:"dept"`
	Position string   `json:"position"`
	Phone    string   `json:"phone"`
	Email    string   `json:"email"`
	Role     string   `json:"role"`
	Perms    []string `json:"perms"`
}

// CreateEmployee 사원 등록 (비밀번호는 bcrypt 해시로 저장)
func (s *AuthService) CreateEmployee(ctx context.Context, req *CreateEmployeeRequest) (*entity.Employee, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = entity.EmployeeRoleViewer
	}

	emp := &entity.Employee{
		ID:           uuid.New().String()[:32],
		EmpNo:        req.EmpNo,
		Username:     req.Username,
		PasswordHash: string(hash),
		Name:         req.Name,
		Dept:         req.Dept,
		Position:     req.Position,
		Phone:        req.Phone,
		Email:        req.Email,
		Status:       entity.EmployeeStatusActive,
		Role:         role,
		Perms:        entity.StringList(req.Perms),
	}

	if err := s.empRepo.Create(ctx, emp); err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}
	return emp, nil
}

// GetEmployee 사원 조회
func (s *AuthService) GetEmployee(ctx context.Context, id string) (*entity.Employee, error) {
	return s.empRepo.FindByID(ctx, id)
}

// ListEmployees 사원 목록 조회
func (s *AuthService) ListEmployees(ctx context.Context) ([]entity.Employee, error) {
	return s.empRepo.List(ctx)
}

func (s *AuthService) generateToken(emp *entity.Employee) (string, int64, error) {
	now := time.Now()
	expire := s.cfg.JWT.AccessTokenExpire
	if expire <= 0 {
		expire = 24 * time.Hour
	}

	claims := jwt.MapClaims{
		"sub":    emp.ID,
		"uid":    emp.ID,
		"emp_no": emp.EmpNo,
		"name":   emp.Name,
		"role":   emp.Role,
		"perms":  []string(emp.Perms),
		"iss":    s.cfg.JWT.Issuer,
		"iat":    now.Unix(),
		"exp":    now.Add(expire).Unix(),
		"jti":    uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return "", 0, err
	}
	return signed, int64(expire.Seconds()), nil
}
