package usecase_test

import (
	"context"

	"github.com/dinesh-manogaran/Career-Compass/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockCompass struct {
	mock.Mock
}

func (m *MockCompass) Register(ctx context.Context, email, password string) error {
	return m.Called(ctx, email, password).Error(0)
}

func (m *MockCompass) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockCompass) AnalyzeMatch(ctx context.Context, token string, jd, resume *model.UploadedDocument) (*model.MatchResult, error) {
	args := m.Called(ctx, token, jd, resume)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MatchResult), args.Error(1)
}

func (m *MockCompass) CareerQuery(ctx context.Context, question string) (string, error) {
	args := m.Called(ctx, question)
	return args.String(0), args.Error(1)
}
