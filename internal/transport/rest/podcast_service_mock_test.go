package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/podshelf-backend/internal/domain"
	"github.com/heartmarshall/podshelf-backend/internal/service/podcast"
)

var _ podcastService = &podcastServiceMock{}

type podcastServiceMock struct {
	CreateFunc func(ctx context.Context, input podcast.CreateInput) (*domain.Podcast, error)
	DeleteFunc func(ctx context.Context, id string) error
	GetFunc    func(ctx context.Context, id string) (*domain.Podcast, error)
	ListFunc   func(ctx context.Context, status string) ([]domain.Podcast, error)
	SearchFunc func(ctx context.Context, input podcast.SearchInput) ([]domain.CatalogPodcast, error)
	UpdateFunc func(ctx context.Context, id string, input podcast.UpdateInput) (*domain.Podcast, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input podcast.CreateInput
		}
		Delete []struct {
			Ctx context.Context
			ID  string
		}
		Get []struct {
			Ctx context.Context
			ID  string
		}
		List []struct {
			Ctx    context.Context
			Status string
		}
		Search []struct {
			Ctx   context.Context
			Input podcast.SearchInput
		}
		Update []struct {
			Ctx   context.Context
			ID    string
			Input podcast.UpdateInput
		}
	}
	lockCreate sync.RWMutex
	lockDelete sync.RWMutex
	lockGet    sync.RWMutex
	lockList   sync.RWMutex
	lockSearch sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *podcastServiceMock) Create(ctx context.Context, input podcast.CreateInput) (*domain.Podcast, error) {
	if mock.CreateFunc == nil {
		panic("podcastServiceMock.CreateFunc: method is nil but podcastService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input podcast.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *podcastServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input podcast.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *podcastServiceMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("podcastServiceMock.DeleteFunc: method is nil but podcastService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *podcastServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *podcastServiceMock) Get(ctx context.Context, id string) (*domain.Podcast, error) {
	if mock.GetFunc == nil {
		panic("podcastServiceMock.GetFunc: method is nil but podcastService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *podcastServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *podcastServiceMock) List(ctx context.Context, status string) ([]domain.Podcast, error) {
	if mock.ListFunc == nil {
		panic("podcastServiceMock.ListFunc: method is nil but podcastService.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Status string
	}{Ctx: ctx, Status: status}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, status)
}

func (mock *podcastServiceMock) ListCalls() []struct {
	Ctx    context.Context
	Status string
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *podcastServiceMock) Search(ctx context.Context, input podcast.SearchInput) ([]domain.CatalogPodcast, error) {
	if mock.SearchFunc == nil {
		panic("podcastServiceMock.SearchFunc: method is nil but podcastService.Search was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input podcast.SearchInput
	}{Ctx: ctx, Input: input}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, input)
}

func (mock *podcastServiceMock) SearchCalls() []struct {
	Ctx   context.Context
	Input podcast.SearchInput
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

func (mock *podcastServiceMock) Update(ctx context.Context, id string, input podcast.UpdateInput) (*domain.Podcast, error) {
	if mock.UpdateFunc == nil {
		panic("podcastServiceMock.UpdateFunc: method is nil but podcastService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    string
		Input podcast.UpdateInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, input)
}

func (mock *podcastServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	ID    string
	Input podcast.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
