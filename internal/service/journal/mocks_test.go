package journal

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/foundermind/foundermind-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	UpsertFunc    func(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error)
	ListSinceFunc func(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.JournalEntry, error)

	calls struct {
		Upsert []struct {
			Entry *domain.JournalEntry
		}
		ListSince []struct {
			UserID uuid.UUID
			Since  time.Time
		}
	}
	lockUpsert    sync.RWMutex
	lockListSince sync.RWMutex
}

func (mock *entryRepoMock) Upsert(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error) {
	if mock.UpsertFunc == nil {
		panic("entryRepoMock.UpsertFunc: method is nil but entryRepo.Upsert was just called")
	}
	callInfo := struct {
		Entry *domain.JournalEntry
	}{Entry: entry}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, entry)
}

func (mock *entryRepoMock) UpsertCalls() []struct {
	Entry *domain.JournalEntry
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *entryRepoMock) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.JournalEntry, error) {
	if mock.ListSinceFunc == nil {
		panic("entryRepoMock.ListSinceFunc: method is nil but entryRepo.ListSince was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Since  time.Time
	}{UserID: userID, Since: since}
	mock.lockListSince.Lock()
	mock.calls.ListSince = append(mock.calls.ListSince, callInfo)
	mock.lockListSince.Unlock()
	return mock.ListSinceFunc(ctx, userID, since)
}

func (mock *entryRepoMock) ListSinceCalls() []struct {
	UserID uuid.UUID
	Since  time.Time
} {
	mock.lockListSince.RLock()
	calls := mock.calls.ListSince
	mock.lockListSince.RUnlock()
	return calls
}

var _ burnoutRepo = &burnoutRepoMock{}

type burnoutRepoMock struct {
	CreateFunc     func(ctx context.Context, score *domain.BurnoutScore) (*domain.BurnoutScore, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.BurnoutScore, error)

	calls struct {
		Create []struct {
			Score *domain.BurnoutScore
		}
		ListByUser []struct {
			UserID uuid.UUID
			Limit  int
		}
	}
	lockCreate     sync.RWMutex
	lockListByUser sync.RWMutex
}

func (mock *burnoutRepoMock) Create(ctx context.Context, score *domain.BurnoutScore) (*domain.BurnoutScore, error) {
	if mock.CreateFunc == nil {
		panic("burnoutRepoMock.CreateFunc: method is nil but burnoutRepo.Create was just called")
	}
	callInfo := struct {
		Score *domain.BurnoutScore
	}{Score: score}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, score)
}

func (mock *burnoutRepoMock) CreateCalls() []struct {
	Score *domain.BurnoutScore
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *burnoutRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.BurnoutScore, error) {
	if mock.ListByUserFunc == nil {
		panic("burnoutRepoMock.ListByUserFunc: method is nil but burnoutRepo.ListByUser was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Limit  int
	}{UserID: userID, Limit: limit}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, limit)
}

func (mock *burnoutRepoMock) ListByUserCalls() []struct {
	UserID uuid.UUID
	Limit  int
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	GetByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)

	calls struct {
		GetByUserID []struct {
			UserID uuid.UUID
		}
	}
	lockGetByUserID sync.RWMutex
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
