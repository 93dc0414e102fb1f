package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bms-ph/records-system/internal/core/domain"
)

const testSecret = "unit-test-secret"

// stubUserRepo is an in-memory UserRepository keyed by id and email.
type stubUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
	err   error
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrPrincipalNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrPrincipalNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	created := cloneUser(user)
	if created.ID == "" {
		created.ID = "generated-id"
	}
	r.users[created.ID] = created
	return cloneUser(created), nil
}

func (r *stubUserRepo) TouchLastSeen(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.LastSeenAt = at
	}
	return nil
}

func cloneUser(u *domain.User) *domain.User {
	cp := *u
	return &cp
}

type stubLastSeen struct {
	recorded []string
}

func (s *stubLastSeen) Record(id string) {
	s.recorded = append(s.recorded, id)
}

func activeUser() *domain.User {
	return &domain.User{
		ID:             "u1",
		Email:          "staff@brgy5.example",
		Role:           domain.RoleStaff,
		BarangayID:     "brgy-5",
		Status:         domain.StatusActive,
		BarangayActive: true,
	}
}

func TestVerifyAccessToken_RoundTrip(t *testing.T) {
	user := activeUser()
	token, err := mintAccessToken(testSecret, user, time.Minute)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	svc := NewIdentityService(newStubUserRepo(user), testSecret, nil)
	claims, err := svc.VerifyAccessToken(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.PrincipalID != "u1" {
		t.Fatalf("unexpected principal: %s", claims.PrincipalID)
	}
	if claims.Role != domain.RoleStaff || claims.BarangayID != "brgy-5" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestVerifyAccessToken_Expired(t *testing.T) {
	user := activeUser()
	token, err := mintAccessToken(testSecret, user, -time.Minute)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	svc := NewIdentityService(newStubUserRepo(user), testSecret, nil)
	if _, err := svc.VerifyAccessToken(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyAccessToken_WrongSecret(t *testing.T) {
	user := activeUser()
	token, err := mintAccessToken("other-secret", user, time.Minute)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	svc := NewIdentityService(newStubUserRepo(user), testSecret, nil)
	if _, err := svc.VerifyAccessToken(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyAccessToken_Tampered(t *testing.T) {
	user := activeUser()
	token, err := mintAccessToken(testSecret, user, time.Minute)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	tampered := token[:len(token)-4] + "AAAA"

	svc := NewIdentityService(newStubUserRepo(user), testSecret, nil)
	if _, err := svc.VerifyAccessToken(tampered); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyAccessToken_Garbage(t *testing.T) {
	svc := NewIdentityService(newStubUserRepo(), testSecret, nil)
	if _, err := svc.VerifyAccessToken("not.a.token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestResolve_ActivePrincipal(t *testing.T) {
	user := activeUser()
	recorder := &stubLastSeen{}
	svc := NewIdentityService(newStubUserRepo(user), testSecret, recorder)

	got, err := svc.Resolve(context.Background(), "u1")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.ID != "u1" || got.Role != domain.RoleStaff {
		t.Fatalf("unexpected user: %+v", got)
	}
	if len(recorder.recorded) != 1 || recorder.recorded[0] != "u1" {
		t.Fatalf("expected one activity stamp for u1, got %v", recorder.recorded)
	}
}

func TestResolve_UnknownPrincipal(t *testing.T) {
	svc := NewIdentityService(newStubUserRepo(), testSecret, nil)
	if _, err := svc.Resolve(context.Background(), "ghost"); !errors.Is(err, domain.ErrPrincipalNotFound) {
		t.Fatalf("expected ErrPrincipalNotFound, got %v", err)
	}
}

func TestResolve_InactiveStates(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.User)
		want   error
	}{
		{"suspended account", func(u *domain.User) { u.Status = domain.StatusSuspended }, domain.ErrAccountInactive},
		{"inactive account", func(u *domain.User) { u.Status = domain.StatusInactive }, domain.ErrAccountInactive},
		{"deactivated barangay", func(u *domain.User) { u.BarangayActive = false }, domain.ErrTenantInactive},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			user := activeUser()
			tc.mutate(user)
			svc := NewIdentityService(newStubUserRepo(user), testSecret, nil)
			if _, err := svc.Resolve(context.Background(), "u1"); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestResolve_UnrestrictedSuperAdminSkipsBarangayCheck(t *testing.T) {
	user := &domain.User{ID: "root", Role: domain.RoleSuperAdmin, Status: domain.StatusActive}
	svc := NewIdentityService(newStubUserRepo(user), testSecret, nil)

	got, err := svc.Resolve(context.Background(), "root")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.BarangayID != "" {
		t.Fatalf("expected empty barangay binding, got %s", got.BarangayID)
	}
}

func TestResolve_StoreFailurePropagates(t *testing.T) {
	repo := newStubUserRepo(activeUser())
	repo.err = context.DeadlineExceeded
	svc := NewIdentityService(repo, testSecret, nil)

	if _, err := svc.Resolve(context.Background(), "u1"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}
