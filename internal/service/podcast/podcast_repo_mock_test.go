package podcast

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/podshelf-backend/internal/domain"
)

var _ podcastRepo = &podcastRepoMock{}

type podcastRepoMock struct {
	CreateFunc           func(ctx context.Context, p *domain.Podcast) (*domain.Podcast, error)
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Podcast, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Podcast, error)
	ListByUserFunc       func(ctx context.Context, userID uuid.UUID, status *domain.PodcastStatus) ([]domain.Podcast, error)
	UpdateFunc           func(ctx context.Context, p *domain.Podcast) (*domain.Podcast, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			P   *domain.Podcast
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByIDForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Status *domain.PodcastStatus
		}
		Update []struct {
			Ctx context.Context
			P   *domain.Podcast
		}
	}
	lockCreate           sync.RWMutex
	lockDelete           sync.RWMutex
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockListByUser       sync.RWMutex
	lockUpdate           sync.RWMutex
}

func (mock *podcastRepoMock) Create(ctx context.Context, p *domain.Podcast) (*domain.Podcast, error) {
	if mock.CreateFunc == nil {
		panic("podcastRepoMock.CreateFunc: method is nil but podcastRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Podcast
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *podcastRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.Podcast
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *podcastRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("podcastRepoMock.DeleteFunc: method is nil but podcastRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *podcastRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *podcastRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Podcast, error) {
	if mock.GetByIDFunc == nil {
		panic("podcastRepoMock.GetByIDFunc: method is nil but podcastRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *podcastRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *podcastRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Podcast, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("podcastRepoMock.GetByIDForUpdateFunc: method is nil but podcastRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *podcastRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *podcastRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, status *domain.PodcastStatus) ([]domain.Podcast, error) {
	if mock.ListByUserFunc == nil {
		panic("podcastRepoMock.ListByUserFunc: method is nil but podcastRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Status *domain.PodcastStatus
	}{Ctx: ctx, UserID: userID, Status: status}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, status)
}

func (mock *podcastRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Status *domain.PodcastStatus
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *podcastRepoMock) Update(ctx context.Context, p *domain.Podcast) (*domain.Podcast, error) {
	if mock.UpdateFunc == nil {
		panic("podcastRepoMock.UpdateFunc: method is nil but podcastRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Podcast
	}{Ctx: ctx, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, p)
}

func (mock *podcastRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	P   *domain.Podcast
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
