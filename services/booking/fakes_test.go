package booking

import (
	"errors"
	"sync"

	"quickscan/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory fakes for the repository and dispatcher interfaces. The booking
// fake is mutex-guarded so cancellation keeps the same
// check-and-update atomicity the conditional mongo update provides.

type fakeBookingRepo struct {
	mu        sync.Mutex
	byID      map[string]*models.Booking
	createErr error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{byID: make(map[string]*models.Booking)}
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return f.createErr
	}
	if _, exists := f.byID[b.BookingID]; exists {
		return errors.New("duplicate booking id")
	}
	stored := *b
	f.byID[b.BookingID] = &stored
	return nil
}

func (f *fakeBookingRepo) GetByBookingID(bookingID string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.byID[bookingID]
	if !ok {
		return nil, nil
	}
	out := *b
	return &out, nil
}

func (f *fakeBookingRepo) GetByUser(userID string, limit int64) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := []models.Booking{}
	for _, b := range f.byID {
		if b.UserID == userID && int64(len(out)) < limit {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Cancel(bookingID, reason string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.byID[bookingID]
	if !ok {
		return nil, nil
	}
	if b.Status != models.BookingStatusPending && b.Status != models.BookingStatusConfirmed {
		return nil, nil
	}
	b.Status = models.BookingStatusCancelled
	b.CancellationReason = reason
	out := *b
	return &out, nil
}

type fakeServiceRepo struct {
	byID   map[primitive.ObjectID]*models.Service
	bySlug map[string]*models.Service
	err    error
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{
		byID:   make(map[primitive.ObjectID]*models.Service),
		bySlug: make(map[string]*models.Service),
	}
}

func (f *fakeServiceRepo) GetByID(id primitive.ObjectID) (*models.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeServiceRepo) GetBySlug(slug string) (*models.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bySlug[slug], nil
}

func (f *fakeServiceRepo) GetAll() ([]models.Service, error) { return nil, nil }

func (f *fakeServiceRepo) GetByCategory(string) ([]models.Service, error) { return nil, nil }

type fakeLabRepo struct {
	byID map[primitive.ObjectID]*models.Lab
	err  error
}

func newFakeLabRepo() *fakeLabRepo {
	return &fakeLabRepo{byID: make(map[primitive.ObjectID]*models.Lab)}
}

func (f *fakeLabRepo) GetByID(id primitive.ObjectID) (*models.Lab, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byID[id], nil
}

func (f *fakeLabRepo) GetAll() ([]models.Lab, error) { return nil, nil }

func (f *fakeLabRepo) GetByCity(string) ([]models.Lab, error) { return nil, nil }

type fakeDispatcher struct {
	dispatched []string
	err        error
}

func (f *fakeDispatcher) DispatchBookingConfirmation(b *models.Booking) error {
	if f.err != nil {
		return f.err
	}
	f.dispatched = append(f.dispatched, b.BookingID)
	return nil
}

func newTestService() (*DefaultBookingService, *fakeBookingRepo, *fakeServiceRepo, *fakeLabRepo, *fakeDispatcher) {
	repo := newFakeBookingRepo()
	svcRepo := newFakeServiceRepo()
	labs := newFakeLabRepo()
	dispatcher := &fakeDispatcher{}
	svc := &DefaultBookingService{
		Repo:        repo,
		ServiceRepo: svcRepo,
		LabRepo:     labs,
		Notifier:    dispatcher,
	}
	return svc, repo, svcRepo, labs, dispatcher
}
