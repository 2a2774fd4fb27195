package assessment

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/foundermind/foundermind-backend/internal/domain"
	"github.com/foundermind/foundermind-backend/internal/provider"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	GetByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	UpsertFunc      func(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)

	calls struct {
		GetByUserID []struct {
			UserID uuid.UUID
		}
		Upsert []struct {
			Profile *domain.Profile
		}
	}
	lockGetByUserID sync.RWMutex
	lockUpsert      sync.RWMutex
}

func (mock *profileRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	if mock.GetByUserIDFunc == nil {
		panic("profileRepoMock.GetByUserIDFunc: method is nil but profileRepo.GetByUserID was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
	}{UserID: userID}
	mock.lockGetByUserID.Lock()
	mock.calls.GetByUserID = append(mock.calls.GetByUserID, callInfo)
	mock.lockGetByUserID.Unlock()
	return mock.GetByUserIDFunc(ctx, userID)
}

func (mock *profileRepoMock) GetByUserIDCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockGetByUserID.RLock()
	calls := mock.calls.GetByUserID
	mock.lockGetByUserID.RUnlock()
	return calls
}

func (mock *profileRepoMock) Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	if mock.UpsertFunc == nil {
		panic("profileRepoMock.UpsertFunc: method is nil but profileRepo.Upsert was just called")
	}
	callInfo := struct {
		Profile *domain.Profile
	}{Profile: profile}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, profile)
}

func (mock *profileRepoMock) UpsertCalls() []struct {
	Profile *domain.Profile
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	CreateFunc  func(ctx context.Context, user *domain.User) (*domain.User, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		Create []struct {
			User *domain.User
		}
	}
	lockGetByID sync.RWMutex
	lockCreate  sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		User *domain.User
	}{User: user}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []struct {
	User *domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ insightGenerator = &insightGeneratorMock{}

type insightGeneratorMock struct {
	GenerateFunc func(ctx context.Context, scores domain.ScoreVector, archetype domain.Archetype) provider.Insight

	calls struct {
		Generate []struct {
			Scores    domain.ScoreVector
			Archetype domain.Archetype
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *insightGeneratorMock) Generate(ctx context.Context, scores domain.ScoreVector, archetype domain.Archetype) provider.Insight {
	if mock.GenerateFunc == nil {
		panic("insightGeneratorMock.GenerateFunc: method is nil but insightGenerator.Generate was just called")
	}
	callInfo := struct {
		Scores    domain.ScoreVector
		Archetype domain.Archetype
	}{Scores: scores, Archetype: archetype}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, scores, archetype)
}

func (mock *insightGeneratorMock) GenerateCalls() []struct {
	Scores    domain.ScoreVector
	Archetype domain.Archetype
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

var _ pseudonymGenerator = &pseudonymGeneratorMock{}

type pseudonymGeneratorMock struct {
	GenerateFunc func() string

	calls struct {
		Generate []struct{}
	}
	lockGenerate sync.RWMutex
}

func (mock *pseudonymGeneratorMock) Generate() string {
	if mock.GenerateFunc == nil {
		panic("pseudonymGeneratorMock.GenerateFunc: method is nil but pseudonymGenerator.Generate was just called")
	}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, struct{}{})
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc()
}

func (mock *pseudonymGeneratorMock) GenerateCalls() []struct{} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
