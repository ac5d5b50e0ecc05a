package techquiry_test

import (
	"context"

	"github.com/aggelowe/techquiry"
	"github.com/stretchr/testify/mock"
)

// MockUserLogins implements techquiry.UserLogins
type MockUserLogins struct {
	mock.Mock
}

func (m *MockUserLogins) Select(ctx context.Context, id int) (*techquiry.UserLogin, error) {
	args := m.Called(ctx, id)
	login, _ := args.Get(0).(*techquiry.UserLogin)
	return login, args.Error(1)
}

func (m *MockUserLogins) SelectFromUsername(ctx context.Context, username string) (*techquiry.UserLogin, error) {
	args := m.Called(ctx, username)
	login, _ := args.Get(0).(*techquiry.UserLogin)
	return login, args.Error(1)
}

func (m *MockUserLogins) Insert(ctx context.Context, login *techquiry.UserLogin) (int, error) {
	args := m.Called(ctx, login)
	return args.Int(0), args.Error(1)
}

func (m *MockUserLogins) Update(ctx context.Context, login *techquiry.UserLogin) error {
	args := m.Called(ctx, login)
	return args.Error(0)
}

func (m *MockUserLogins) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
