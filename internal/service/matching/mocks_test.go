package matching

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/foundermind/foundermind-backend/internal/domain"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	GetByUserIDFunc  func(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	GetByUserIDsFunc func(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*domain.Profile, error)
	ListOthersFunc   func(ctx context.Context, excludeUserID uuid.UUID) ([]*domain.Profile, error)

	calls struct {
		GetByUserID []struct {
			UserID uuid.UUID
		}
		GetByUserIDs []struct {
			UserIDs []uuid.UUID
		}
		ListOthers []struct {
			ExcludeUserID uuid.UUID
		}
	}
	lockGetByUserID  sync.RWMutex
	lockGetByUserIDs sync.RWMutex
	lockListOthers   sync.RWMutex
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

func (mock *profileRepoMock) GetByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]*domain.Profile, error) {
	if mock.GetByUserIDsFunc == nil {
		panic("profileRepoMock.GetByUserIDsFunc: method is nil but profileRepo.GetByUserIDs was just called")
	}
	callInfo := struct {
		UserIDs []uuid.UUID
	}{UserIDs: userIDs}
	mock.lockGetByUserIDs.Lock()
	mock.calls.GetByUserIDs = append(mock.calls.GetByUserIDs, callInfo)
	mock.lockGetByUserIDs.Unlock()
	return mock.GetByUserIDsFunc(ctx, userIDs)
}

func (mock *profileRepoMock) GetByUserIDsCalls() []struct {
	UserIDs []uuid.UUID
} {
	mock.lockGetByUserIDs.RLock()
	calls := mock.calls.GetByUserIDs
	mock.lockGetByUserIDs.RUnlock()
	return calls
}

func (mock *profileRepoMock) ListOthers(ctx context.Context, excludeUserID uuid.UUID) ([]*domain.Profile, error) {
	if mock.ListOthersFunc == nil {
		panic("profileRepoMock.ListOthersFunc: method is nil but profileRepo.ListOthers was just called")
	}
	callInfo := struct {
		ExcludeUserID uuid.UUID
	}{ExcludeUserID: excludeUserID}
	mock.lockListOthers.Lock()
	mock.calls.ListOthers = append(mock.calls.ListOthers, callInfo)
	mock.lockListOthers.Unlock()
	return mock.ListOthersFunc(ctx, excludeUserID)
}

func (mock *profileRepoMock) ListOthersCalls() []struct {
	ExcludeUserID uuid.UUID
} {
	mock.lockListOthers.RLock()
	calls := mock.calls.ListOthers
	mock.lockListOthers.RUnlock()
	return calls
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDsFunc func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.User, error)

	calls struct {
		GetByIDs []struct {
			IDs []uuid.UUID
		}
	}
	lockGetByIDs sync.RWMutex
}

func (mock *userRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.User, error) {
	if mock.GetByIDsFunc == nil {
		panic("userRepoMock.GetByIDsFunc: method is nil but userRepo.GetByIDs was just called")
	}
	callInfo := struct {
		IDs []uuid.UUID
	}{IDs: ids}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *userRepoMock) GetByIDsCalls() []struct {
	IDs []uuid.UUID
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}

var _ matchRepo = &matchRepoMock{}

type matchRepoMock struct {
	GetByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.PeerMatch, error)
	GetByPairFunc         func(ctx context.Context, userA, userB uuid.UUID) (*domain.PeerMatch, error)
	ListForUserFunc       func(ctx context.Context, userID uuid.UUID) ([]*domain.PeerMatch, error)
	CreateFunc            func(ctx context.Context, match *domain.PeerMatch) (*domain.PeerMatch, error)
	UpdateScoreFunc       func(ctx context.Context, id uuid.UUID, score int, shared []domain.Dimension) (*domain.PeerMatch, error)
	SetOptInFunc          func(ctx context.Context, id uuid.UUID, side domain.MatchSide) (*domain.PeerMatch, error)
	SetDismissedFunc      func(ctx context.Context, id uuid.UUID, side domain.MatchSide) (*domain.PeerMatch, error)
	ClaimMutualNoticeFunc func(ctx context.Context, id uuid.UUID) (bool, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		GetByPair []struct {
			UserA uuid.UUID
			UserB uuid.UUID
		}
		ListForUser []struct {
			UserID uuid.UUID
		}
		Create []struct {
			Match *domain.PeerMatch
		}
		UpdateScore []struct {
			ID     uuid.UUID
			Score  int
			Shared []domain.Dimension
		}
		SetOptIn []struct {
			ID   uuid.UUID
			Side domain.MatchSide
		}
		SetDismissed []struct {
			ID   uuid.UUID
			Side domain.MatchSide
		}
		ClaimMutualNotice []struct {
			ID uuid.UUID
		}
	}
	lockGetByID           sync.RWMutex
	lockGetByPair         sync.RWMutex
	lockListForUser       sync.RWMutex
	lockCreate            sync.RWMutex
	lockUpdateScore       sync.RWMutex
	lockSetOptIn          sync.RWMutex
	lockSetDismissed      sync.RWMutex
	lockClaimMutualNotice sync.RWMutex
}

func (mock *matchRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.PeerMatch, error) {
	if mock.GetByIDFunc == nil {
		panic("matchRepoMock.GetByIDFunc: method is nil but matchRepo.GetByID was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *matchRepoMock) GetByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *matchRepoMock) GetByPair(ctx context.Context, userA, userB uuid.UUID) (*domain.PeerMatch, error) {
	if mock.GetByPairFunc == nil {
		panic("matchRepoMock.GetByPairFunc: method is nil but matchRepo.GetByPair was just called")
	}
	callInfo := struct {
		UserA uuid.UUID
		UserB uuid.UUID
	}{UserA: userA, UserB: userB}
	mock.lockGetByPair.Lock()
	mock.calls.GetByPair = append(mock.calls.GetByPair, callInfo)
	mock.lockGetByPair.Unlock()
	return mock.GetByPairFunc(ctx, userA, userB)
}

func (mock *matchRepoMock) GetByPairCalls() []struct {
	UserA uuid.UUID
	UserB uuid.UUID
} {
	mock.lockGetByPair.RLock()
	calls := mock.calls.GetByPair
	mock.lockGetByPair.RUnlock()
	return calls
}

func (mock *matchRepoMock) ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.PeerMatch, error) {
	if mock.ListForUserFunc == nil {
		panic("matchRepoMock.ListForUserFunc: method is nil but matchRepo.ListForUser was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
	}{UserID: userID}
	mock.lockListForUser.Lock()
	mock.calls.ListForUser = append(mock.calls.ListForUser, callInfo)
	mock.lockListForUser.Unlock()
	return mock.ListForUserFunc(ctx, userID)
}

func (mock *matchRepoMock) ListForUserCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockListForUser.RLock()
	calls := mock.calls.ListForUser
	mock.lockListForUser.RUnlock()
	return calls
}

func (mock *matchRepoMock) Create(ctx context.Context, match *domain.PeerMatch) (*domain.PeerMatch, error) {
	if mock.CreateFunc == nil {
		panic("matchRepoMock.CreateFunc: method is nil but matchRepo.Create was just called")
	}
	callInfo := struct {
		Match *domain.PeerMatch
	}{Match: match}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, match)
}

func (mock *matchRepoMock) CreateCalls() []struct {
	Match *domain.PeerMatch
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *matchRepoMock) UpdateScore(ctx context.Context, id uuid.UUID, score int, shared []domain.Dimension) (*domain.PeerMatch, error) {
	if mock.UpdateScoreFunc == nil {
		panic("matchRepoMock.UpdateScoreFunc: method is nil but matchRepo.UpdateScore was just called")
	}
	callInfo := struct {
		ID     uuid.UUID
		Score  int
		Shared []domain.Dimension
	}{ID: id, Score: score, Shared: shared}
	mock.lockUpdateScore.Lock()
	mock.calls.UpdateScore = append(mock.calls.UpdateScore, callInfo)
	mock.lockUpdateScore.Unlock()
	return mock.UpdateScoreFunc(ctx, id, score, shared)
}

func (mock *matchRepoMock) UpdateScoreCalls() []struct {
	ID     uuid.UUID
	Score  int
	Shared []domain.Dimension
} {
	mock.lockUpdateScore.RLock()
	calls := mock.calls.UpdateScore
	mock.lockUpdateScore.RUnlock()
	return calls
}

func (mock *matchRepoMock) SetOptIn(ctx context.Context, id uuid.UUID, side domain.MatchSide) (*domain.PeerMatch, error) {
	if mock.SetOptInFunc == nil {
		panic("matchRepoMock.SetOptInFunc: method is nil but matchRepo.SetOptIn was just called")
	}
	callInfo := struct {
		ID   uuid.UUID
		Side domain.MatchSide
	}{ID: id, Side: side}
	mock.lockSetOptIn.Lock()
	mock.calls.SetOptIn = append(mock.calls.SetOptIn, callInfo)
	mock.lockSetOptIn.Unlock()
	return mock.SetOptInFunc(ctx, id, side)
}

func (mock *matchRepoMock) SetOptInCalls() []struct {
	ID   uuid.UUID
	Side domain.MatchSide
} {
	mock.lockSetOptIn.RLock()
	calls := mock.calls.SetOptIn
	mock.lockSetOptIn.RUnlock()
	return calls
}

func (mock *matchRepoMock) SetDismissed(ctx context.Context, id uuid.UUID, side domain.MatchSide) (*domain.PeerMatch, error) {
	if mock.SetDismissedFunc == nil {
		panic("matchRepoMock.SetDismissedFunc: method is nil but matchRepo.SetDismissed was just called")
	}
	callInfo := struct {
		ID   uuid.UUID
		Side domain.MatchSide
	}{ID: id, Side: side}
	mock.lockSetDismissed.Lock()
	mock.calls.SetDismissed = append(mock.calls.SetDismissed, callInfo)
	mock.lockSetDismissed.Unlock()
	return mock.SetDismissedFunc(ctx, id, side)
}

func (mock *matchRepoMock) SetDismissedCalls() []struct {
	ID   uuid.UUID
	Side domain.MatchSide
} {
	mock.lockSetDismissed.RLock()
	calls := mock.calls.SetDismissed
	mock.lockSetDismissed.RUnlock()
	return calls
}

func (mock *matchRepoMock) ClaimMutualNotice(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.ClaimMutualNoticeFunc == nil {
		panic("matchRepoMock.ClaimMutualNoticeFunc: method is nil but matchRepo.ClaimMutualNotice was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{ID: id}
	mock.lockClaimMutualNotice.Lock()
	mock.calls.ClaimMutualNotice = append(mock.calls.ClaimMutualNotice, callInfo)
	mock.lockClaimMutualNotice.Unlock()
	return mock.ClaimMutualNoticeFunc(ctx, id)
}

func (mock *matchRepoMock) ClaimMutualNoticeCalls() []struct {
	ID uuid.UUID
} {
	mock.lockClaimMutualNotice.RLock()
	calls := mock.calls.ClaimMutualNotice
	mock.lockClaimMutualNotice.RUnlock()
	return calls
}

var _ notifier = &notifierMock{}

type notifierMock struct {
	MutualMatchFunc func(ctx context.Context, match *domain.PeerMatch, users map[uuid.UUID]*domain.User) error

	calls struct {
		MutualMatch []struct {
			Match *domain.PeerMatch
		}
	}
	lockMutualMatch sync.RWMutex
}

func (mock *notifierMock) MutualMatch(ctx context.Context, match *domain.PeerMatch, users map[uuid.UUID]*domain.User) error {
	if mock.MutualMatchFunc == nil {
		panic("notifierMock.MutualMatchFunc: method is nil but notifier.MutualMatch was just called")
	}
	callInfo := struct {
		Match *domain.PeerMatch
	}{Match: match}
	mock.lockMutualMatch.Lock()
	mock.calls.MutualMatch = append(mock.calls.MutualMatch, callInfo)
	mock.lockMutualMatch.Unlock()
	return mock.MutualMatchFunc(ctx, match, users)
}

func (mock *notifierMock) MutualMatchCalls() []struct {
	Match *domain.PeerMatch
} {
	mock.lockMutualMatch.RLock()
	calls := mock.calls.MutualMatch
	mock.lockMutualMatch.RUnlock()
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
