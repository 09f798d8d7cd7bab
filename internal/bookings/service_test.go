package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tna-office/backoffice/internal/resources"
	"github.com/tna-office/backoffice/internal/shared"
)

type fakeRepo struct {
	bookings map[string]Booking
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bookings: make(map[string]Booking)}
}

func (f *fakeRepo) List(ctx context.Context) ([]Booking, error) {
	out := make([]Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeRepo) ListByResource(ctx context.Context, resourceType, resourceID string) ([]Booking, error) {
	var out []Booking
	for _, b := range f.bookings {
		if b.ResourceType == resourceType && b.ResourceID == resourceID && b.Status != StatusCancelled {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) Get(ctx context.Context, id string) (Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return Booking{}, shared.ErrNotFound
	}
	return b, nil
}

func (f *fakeRepo) Create(ctx context.Context, b Booking) (Booking, error) {
	f.bookings[b.ID] = b
	return b, nil
}

func (f *fakeRepo) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	b := f.bookings[id]
	if v, ok := updates["status"]; ok {
		b.Status = v.(string)
	}
	if v, ok := updates["start_time"]; ok {
		s := v.(string)
		b.StartTime = &s
	}
	if v, ok := updates["end_time"]; ok {
		s := v.(string)
		b.EndTime = &s
	}
	f.bookings[id] = b
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	delete(f.bookings, id)
	return nil
}

type fakeCatalog struct {
	rooms  map[string]resources.Room
	booths map[string]resources.Booth
}

func (f *fakeCatalog) GetRoom(ctx context.Context, id string) (resources.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return resources.Room{}, shared.ErrNotFound
	}
	return r, nil
}

func (f *fakeCatalog) GetBooth(ctx context.Context, id string) (resources.Booth, error) {
	b, ok := f.booths[id]
	if !ok {
		return resources.Booth{}, shared.ErrNotFound
	}
	return b, nil
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		rooms: map[string]resources.Room{
			"room-1": {ID: "room-1", Name: "Sala Andes"},
		},
		booths: map[string]resources.Booth{
			"booth-1": {ID: "booth-1", Name: "Booth 1"},
		},
	}
}

func strPtr(s string) *string { return &s }

func testDate(t *testing.T) *shared.Date {
	t.Helper()
	d := shared.NewDate(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	return &d
}

func TestCreateSnapshotsRoomName(t *testing.T) {
	svc := NewService(newFakeRepo(), newFakeCatalog())

	booking, err := svc.Create(context.Background(), CreateBookingRequest{
		ResourceType: ResourceRoom,
		ResourceID:   "room-1",
		ClientName:   "Maria Soto",
		BookingDate:  testDate(t),
		StartTime:    strPtr("09:00"),
		EndTime:      strPtr("11:00"),
	}, nil)
	require.NoError(t, err)
	require.Equal(t, "Sala Andes", booking.ResourceName)
	require.Equal(t, StatusPending, booking.Status)
}

func TestCreateComputesDatetimes(t *testing.T) {
	svc := NewService(newFakeRepo(), newFakeCatalog())

	booking, err := svc.Create(context.Background(), CreateBookingRequest{
		ResourceType: ResourceBooth,
		ResourceID:   "booth-1",
		ClientName:   "Pedro Rojas",
		BookingDate:  testDate(t),
		StartTime:    strPtr("14:30"),
		EndTime:      strPtr("16:00"),
	}, nil)
	require.NoError(t, err)
	require.Equal(t, "2026-03-15T14:30:00", booking.StartDatetime)
	require.Equal(t, "2026-03-15T16:00:00", booking.EndDatetime)
}

func TestCreateUnknownResource(t *testing.T) {
	svc := NewService(newFakeRepo(), newFakeCatalog())

	_, err := svc.Create(context.Background(), CreateBookingRequest{
		ResourceType: ResourceRoom,
		ResourceID:   "room-404",
		ClientName:   "Maria Soto",
		BookingDate:  testDate(t),
	}, nil)
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCreateRejectsBadResourceType(t *testing.T) {
	svc := NewService(newFakeRepo(), newFakeCatalog())

	_, err := svc.Create(context.Background(), CreateBookingRequest{
		ResourceType: "desk",
		ResourceID:   "room-1",
		ClientName:   "Maria Soto",
		BookingDate:  testDate(t),
	}, nil)
	require.ErrorIs(t, err, shared.ErrValidation)
}

func TestPublicSlotsHidesClientDetails(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, newFakeCatalog())

	_, err := svc.Create(context.Background(), CreateBookingRequest{
		ResourceType: ResourceRoom,
		ResourceID:   "room-1",
		ClientName:   "Maria Soto",
		ClientEmail:  "maria@example.com",
		BookingDate:  testDate(t),
		StartTime:    strPtr("09:00"),
		EndTime:      strPtr("10:00"),
	}, nil)
	require.NoError(t, err)

	slots, err := svc.PublicSlots(context.Background(), ResourceRoom, "room-1")
	require.NoError(t, err)
	require.Len(t, slots, 1)
	require.Equal(t, "09:00", *slots[0].StartTime)
}

func TestPublicSlotsRejectsUnknownType(t *testing.T) {
	svc := NewService(newFakeRepo(), newFakeCatalog())

	_, err := svc.PublicSlots(context.Background(), "desk", "room-1")
	require.ErrorIs(t, err, shared.ErrValidation)
}

func TestCancelMarksCancelled(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, newFakeCatalog())

	booking, err := svc.Create(context.Background(), CreateBookingRequest{
		ResourceType: ResourceRoom,
		ResourceID:   "room-1",
		ClientName:   "Maria Soto",
		BookingDate:  testDate(t),
	}, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(context.Background(), booking.ID))

	got, err := svc.Get(context.Background(), booking.ID)
	require.NoError(t, err)
	require.Equal(t, StatusCancelled, got.Status)

	slots, err := svc.PublicSlots(context.Background(), ResourceRoom, "room-1")
	require.NoError(t, err)
	require.Empty(t, slots)
}

func TestUpdateRecomputesDatetimes(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, newFakeCatalog())

	booking, err := svc.Create(context.Background(), CreateBookingRequest{
		ResourceType: ResourceRoom,
		ResourceID:   "room-1",
		ClientName:   "Maria Soto",
		BookingDate:  testDate(t),
		StartTime:    strPtr("09:00"),
		EndTime:      strPtr("10:00"),
	}, nil)
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), booking.ID, UpdateBookingRequest{
		StartTime: strPtr("11:00"),
		EndTime:   strPtr("12:30"),
	})
	require.NoError(t, err)
	require.Equal(t, "2026-03-15T11:00:00", updated.StartDatetime)
	require.Equal(t, "2026-03-15T12:30:00", updated.EndDatetime)
}

func TestDeleteUnknownBooking(t *testing.T) {
	svc := NewService(newFakeRepo(), newFakeCatalog())
	require.ErrorIs(t, svc.Delete(context.Background(), "missing"), shared.ErrNotFound)
}
