package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/MyeongsupWorkSpace/sepnp/internal/model/entity"
	"github.com/MyeongsupWorkSpace/sepnp/internal/repository"
	"github.com/MyeongsupWorkSpace/sepnp/internal/service"
	"github.com/MyeongsupWorkSpace/sepnp/internal/testutil"
)

func setupStatsTest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)

	repos := repository.NewRepositories(db)
	svc := service.NewStatsService(repos.Employee, repos.Product, repos.Order, repos.Assignment)
	handler := NewStatsHandler(svc)

	router := testutil.SetupRouter()
	api := testutil.AuthGroup(router, "/api")
	api.GET("/stats", handler.Overview)

	return &testutil.TestEnv{DB: db, Router: router, T: t}
}

// TestStatsOverview counts only active employees, non-cancelled orders
// and today's assignments.
func TestStatsOverview(t *testing.T) {
	env := setupStatsTest(t)
	token := testutil.DefaultTestToken()

	testutil.SeedTestEmployee(t, env.DB, "emp-100", "S2410", "active.emp", "pw123456", "staff")
	inactive := &entity.Employee{
		ID:           "emp-101",
		EmpNo:        "S2411",
		Username:     "left.emp",
		PasswordHash: "x",
		Name:         "퇴사자",
		Status:       entity.EmployeeStatusInactive,
		Role:         entity.EmployeeRoleViewer,
	}
	if err := env.DB.Create(inactive).Error; err != nil {
		t.Fatalf("seed inactive employee: %v", err)
	}

	if err := env.DB.Create(&entity.Product{ID: "prd-100", Name: "명함"}).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}

	orders := []entity.Order{
		{ID: "ord-100", OrderNo: "ORD-100", OrderDate: time.Now(), Quantity: 10, Status: entity.OrderStatusPending},
		{ID: "ord-101", OrderNo: "ORD-101", OrderDate: time.Now(), Quantity: 5, Status: entity.OrderStatusCancelled},
	}
	for i := range orders {
		if err := env.DB.Create(&orders[i]).Error; err != nil {
			t.Fatalf("seed order: %v", err)
		}
	}

	today := time.Now()
	yesterday := today.AddDate(0, 0, -1)
	assignments := []entity.WorkerAssignment{
		{ID: "asg-100", Date: today, Process: "인쇄", Machine: "M1", Team: "A", Shift: entity.ShiftDay, Workers: entity.StringList{"emp-100"}},
		{ID: "asg-101", Date: yesterday, Process: "인쇄", Machine: "M1", Team: "B", Shift: entity.ShiftNight, Workers: entity.StringList{"emp-100"}},
	}
	for i := range assignments {
		if err := env.DB.Create(&assignments[i]).Error; err != nil {
			t.Fatalf("seed assignment: %v", err)
		}
	}

	w := testutil.DoRequest(env.Router, http.MethodGet, "/api/stats", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	checks := map[string]float64{
		"employees":   1,
		"products":    1,
		"orders":      1,
		"assignments": 1,
	}
	for key, want := range checks {
		if got, _ := resp[key].(float64); got != want {
			t.Errorf("expected %s=%v, got %v", key, want, resp[key])
		}
	}
}
