package usecase

import (
	"context"

	"github.com/tq-lab/maturika/pkg/domain/interfaces"
	"github.com/tq-lab/maturika/pkg/domain/model"
	"github.com/tq-lab/maturika/pkg/repository/memory"
	"github.com/tq-lab/maturika/pkg/service/token"
)

// UseCases provides the application logic behind every HTTP operation
type UseCases struct {
	repo      interfaces.Repository
	loader    interfaces.ModelLoader
	notifier  interfaces.Notifier
	tokens    interfaces.TokenSource
	adminGate AdminGate
}

type Option func(*UseCases)

func WithRepository(repo interfaces.Repository) Option {
	return func(uc *UseCases) {
		uc.repo = repo
	}
}

func WithModelLoader(loader interfaces.ModelLoader) Option {
	return func(uc *UseCases) {
		uc.loader = loader
	}
}

func WithNotifier(notifier interfaces.Notifier) Option {
	return func(uc *UseCases) {
		uc.notifier = notifier
	}
}

func WithTokenSource(tokens interfaces.TokenSource) Option {
	return func(uc *UseCases) {
		uc.tokens = tokens
	}
}

func WithAdminGate(gate AdminGate) Option {
	return func(uc *UseCases) {
		uc.adminGate = gate
	}
}

func New(opts ...Option) *UseCases {
	uc := &UseCases{
		repo:   memory.New(),
		tokens: token.New(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// GetModel returns the maturity model served to assessment clients
func (uc *UseCases) GetModel(ctx context.Context) (*model.MaturityModel, error) {
	return uc.loader.Load(ctx)
}
