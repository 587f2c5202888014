package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jackmarvels/platform/internal/utils"
	"github.com/jackmarvels/platform/services/mockapi"
	"github.com/jackmarvels/platform/services/mockapi/mocks"
	"github.com/jackmarvels/platform/services/mockapi/repository"
)

var fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	uc      *MockAPIUC
	store   *repository.Store
	eventGW *mocks.MockEventGW
}

// newFixture builds a usecase over a freshly seeded store. Unexpected
// event publishes are tolerated unless a test sets its own expectation.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	store := repository.NewStore(repository.SeedAt(fixedNow),
		repository.WithIDGenerator(utils.NewSequenceGenerator(1)),
		repository.WithClock(func() time.Time { return fixedNow }),
	)
	eventGW := mocks.NewMockEventGW(ctrl)

	uc := NewMockAPIUC(store, StaticIssuer{}, eventGW, time.Hour)
	uc.ids = utils.NewSequenceGenerator(1)
	uc.now = func() time.Time { return fixedNow }

	return &fixture{uc: uc, store: store, eventGW: eventGW}
}

func (f *fixture) allowEvents() {
	f.eventGW.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

// instant disables the simulated latency
func instant() context.Context {
	return mockapi.WithLatency(context.Background(), 0)
}

func strPtr(s string) *string { return &s }
