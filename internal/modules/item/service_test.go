package item

import (
	"context"
	"testing"
	"time"

	"shareit/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(ctx context.Context, i *domain.Item) error {
	args := m.Called(ctx, i)
	if i != nil {
		i.ID = 100
	}
	return args.Error(0)
}

func (m *MockItemRepository) Update(ctx context.Context, i *domain.Item) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockItemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Item, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemRepository) Search(ctx context.Context, text string) ([]domain.Item, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	args := m.Called(ctx, c)
	if c != nil {
		c.ID = 55
	}
	return args.Error(0)
}

func (m *MockCommentRepository) ListByItem(ctx context.Context, itemID int64) ([]domain.Comment, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

type MockBookingGate struct {
	mock.Mock
}

func (m *MockBookingGate) HasFinishedApprovedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	args := m.Called(ctx, bookerID, itemID, now)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingGate) LastForItem(ctx context.Context, itemID int64, now time.Time) (*domain.Booking, error) {
	args := m.Called(ctx, itemID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingGate) NextForItem(ctx context.Context, itemID int64, now time.Time) (*domain.Booking, error) {
	args := m.Called(ctx, itemID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockUserDirectory struct {
	mock.Mock
}

func (m *MockUserDirectory) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserDirectory) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func newMocks() (*MockItemRepository, *MockCommentRepository, *MockBookingGate, *MockUserDirectory, *Service) {
	items := new(MockItemRepository)
	comments := new(MockCommentRepository)
	bookings := new(MockBookingGate)
	users := new(MockUserDirectory)
	return items, comments, bookings, users, NewService(items, comments, bookings, users)
}

func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }

func TestService_Create_Success(t *testing.T) {
	items, _, _, users, service := newMocks()

	users.On("Exists", mock.Anything, int64(1)).Return(true, nil)
	items.On("Create", mock.Anything, mock.Anything).Return(nil)

	i, err := service.Create(context.Background(), 1, CreateItemRequest{
		Name:        "Drill",
		Description: "18V cordless",
		Available:   boolPtr(true),
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(100), i.ID)
	assert.Equal(t, int64(1), i.OwnerID)
	assert.True(t, i.Available)
}

func TestService_Create_UnknownOwner(t *testing.T) {
	_, _, _, users, service := newMocks()

	users.On("Exists", mock.Anything, int64(9)).Return(false, nil)

	_, err := service.Create(context.Background(), 9, CreateItemRequest{
		Name: "Drill", Description: "18V", Available: boolPtr(true),
	})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_Update_OnlyOwner(t *testing.T) {
	items, _, _, _, service := newMocks()

	items.On("GetByID", mock.Anything, int64(100)).Return(&domain.Item{ID: 100, OwnerID: 1, Name: "Drill"}, nil)

	_, err := service.Update(context.Background(), 2, 100, UpdateItemRequest{Name: strPtr("Hammer")})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Update_Patch(t *testing.T) {
	items, _, _, _, service := newMocks()

	items.On("GetByID", mock.Anything, int64(100)).
		Return(&domain.Item{ID: 100, OwnerID: 1, Name: "Drill", Description: "old", Available: true}, nil)
	items.On("Update", mock.Anything, mock.Anything).Return(nil)

	got, err := service.Update(context.Background(), 1, 100, UpdateItemRequest{Available: boolPtr(false)})

	assert.NoError(t, err)
	assert.Equal(t, "Drill", got.Name, "untouched field survives the patch")
	assert.False(t, got.Available)
}

func TestService_Search_BlankQuery(t *testing.T) {
	items, _, _, _, service := newMocks()

	out, err := service.Search(context.Background(), "   ")

	assert.NoError(t, err)
	assert.Empty(t, out)
	items.AssertNotCalled(t, "Search")
}

func TestService_GetByID_OwnerSeesBookings(t *testing.T) {
	items, comments, bookings, _, service := newMocks()

	items.On("GetByID", mock.Anything, int64(100)).Return(&domain.Item{ID: 100, OwnerID: 1}, nil)
	comments.On("ListByItem", mock.Anything, int64(100)).Return([]domain.Comment{}, nil)
	bookings.On("LastForItem", mock.Anything, int64(100), mock.Anything).Return(&domain.Booking{ID: 7}, nil)
	bookings.On("NextForItem", mock.Anything, int64(100), mock.Anything).Return(&domain.Booking{ID: 8}, nil)

	d, err := service.GetByID(context.Background(), 1, 100)

	assert.NoError(t, err)
	assert.NotNil(t, d.LastBooking)
	assert.NotNil(t, d.NextBooking)
}

func TestService_GetByID_StrangerSeesNoBookings(t *testing.T) {
	items, comments, bookings, _, service := newMocks()

	items.On("GetByID", mock.Anything, int64(100)).Return(&domain.Item{ID: 100, OwnerID: 1}, nil)
	comments.On("ListByItem", mock.Anything, int64(100)).Return([]domain.Comment{}, nil)

	d, err := service.GetByID(context.Background(), 5, 100)

	assert.NoError(t, err)
	assert.Nil(t, d.LastBooking)
	assert.Nil(t, d.NextBooking)
	bookings.AssertNotCalled(t, "LastForItem")
}

func TestService_AddComment_RequiresFinishedBooking(t *testing.T) {
	items, _, bookings, users, service := newMocks()

	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2, Name: "Bob"}, nil)
	items.On("GetByID", mock.Anything, int64(100)).Return(&domain.Item{ID: 100, OwnerID: 1}, nil)
	bookings.On("HasFinishedApprovedBooking", mock.Anything, int64(2), int64(100), mock.Anything).Return(false, nil)

	_, err := service.AddComment(context.Background(), 2, 100, CreateCommentRequest{Text: "great"})

	assert.ErrorIs(t, err, ErrCommentNotAllowed)
}

func TestService_AddComment_Success(t *testing.T) {
	items, comments, bookings, users, service := newMocks()

	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2, Name: "Bob"}, nil)
	items.On("GetByID", mock.Anything, int64(100)).Return(&domain.Item{ID: 100, OwnerID: 1}, nil)
	bookings.On("HasFinishedApprovedBooking", mock.Anything, int64(2), int64(100), mock.Anything).Return(true, nil)
	comments.On("Create", mock.Anything, mock.Anything).Return(nil)

	cm, err := service.AddComment(context.Background(), 2, 100, CreateCommentRequest{Text: "great"})

	assert.NoError(t, err)
	assert.Equal(t, int64(55), cm.ID)
	assert.Equal(t, "Bob", cm.AuthorName)
}

func TestService_AddComment_UnknownItem(t *testing.T) {
	items, _, _, users, service := newMocks()

	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2, Name: "Bob"}, nil)
	items.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.AddComment(context.Background(), 2, 404, CreateCommentRequest{Text: "great"})

	assert.ErrorIs(t, err, ErrNotFound)
}
