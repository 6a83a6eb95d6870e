// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"testing"

	"github.com/beatfluencer/beatfluencer-api/internal/config"
	"github.com/beatfluencer/beatfluencer-api/internal/logger"
	"github.com/beatfluencer/beatfluencer-api/internal/service"
	"github.com/beatfluencer/beatfluencer-api/models"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run(context.Context) {
	m.runCount++
}

// orderWorker is a helper that appends its ID to a shared slice on Run.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Run(context.Context) {
	*o.order = append(*o.order, o.id)
}

// fakeUserService records EnsureUser calls.
type fakeUserService struct {
	ensured []string
	fail    map[string]error
	exists  map[string]bool
}

func (f *fakeUserService) ListUsers(context.Context) ([]models.User, error) { return nil, nil }

func (f *fakeUserService) EnsureUser(_ context.Context, req models.RegisterRequest) (bool, error) {
	f.ensured = append(f.ensured, req.Email)
	if err := f.fail[req.Email]; err != nil {
		return false, err
	}
	return !f.exists[req.Email], nil
}

// ─── Workers ────────────────────────────────────────────────────────────────

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
}

func TestWorkers_Run_Order(t *testing.T) {
	order := []int{}

	ws := &Workers{workers: []Worker{
		&orderWorker{id: 1, order: &order},
		&orderWorker{id: 2, order: &order},
		&orderWorker{id: 3, order: &order},
	}}
	ws.Run(context.Background())

	expected := []int{1, 2, 3}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}

func TestNewWorkers_SeedToggle(t *testing.T) {
	off := false
	on := true

	tests := []struct {
		name string
		flag *bool
		want int
	}{
		{"unset seeds", nil, 1},
		{"enabled", &on, 1},
		{"disabled", &off, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := &service.Services{UserService: &fakeUserService{}}
			ws := NewWorkers(services, config.App{SeedDefaultUsers: tt.flag}, logger.Nop())
			if len(ws.workers) != tt.want {
				t.Errorf("expected %d workers, got %d", tt.want, len(ws.workers))
			}
		})
	}
}

// ─── SeedWorker ─────────────────────────────────────────────────────────────

func TestSeedWorker_EnsuresEveryDefaultUser(t *testing.T) {
	users := &fakeUserService{exists: map[string]bool{"admin@beatfluencer.com": true}}

	NewSeedWorker(users, DefaultUsers(), logger.Nop()).Run(context.Background())

	want := []string{"admin@beatfluencer.com", "cm_new@test.com"}
	if len(users.ensured) != len(want) {
		t.Fatalf("expected %d EnsureUser calls, got %d", len(want), len(users.ensured))
	}
	for i, email := range want {
		if users.ensured[i] != email {
			t.Errorf("call %d: expected %q, got %q", i, email, users.ensured[i])
		}
	}
}

func TestSeedWorker_ContinuesAfterFailure(t *testing.T) {
	users := &fakeUserService{fail: map[string]error{"admin@beatfluencer.com": errors.New("store down")}}

	NewSeedWorker(users, DefaultUsers(), logger.Nop()).Run(context.Background())

	if len(users.ensured) != 2 {
		t.Fatalf("expected both users to be attempted, got %v", users.ensured)
	}
}

func TestDefaultUsers(t *testing.T) {
	defaults := DefaultUsers()

	if len(defaults) != 2 {
		t.Fatalf("expected 2 default users, got %d", len(defaults))
	}
	if defaults[0].Role != models.RoleAdmin || defaults[0].Password != "admin123" {
		t.Errorf("unexpected admin seed %+v", defaults[0])
	}
	if defaults[1].Role != models.RoleCampaignManager || defaults[1].Username != "Campaign Manager" {
		t.Errorf("unexpected campaign manager seed %+v", defaults[1])
	}
}
