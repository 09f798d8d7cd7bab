package offices

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tna-office/backoffice/internal/shared"
)

type fakeRepo struct {
	offices map[string]Office
	coords  map[string]FloorPlanCoordinate
	updates map[string]interface{}
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		offices: make(map[string]Office),
		coords:  make(map[string]FloorPlanCoordinate),
	}
}

func (f *fakeRepo) List(ctx context.Context) ([]Office, error) {
	out := make([]Office, 0, len(f.offices))
	for _, o := range f.offices {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeRepo) Get(ctx context.Context, id string) (Office, error) {
	o, ok := f.offices[id]
	if !ok {
		return Office{}, shared.ErrNotFound
	}
	return o, nil
}

func (f *fakeRepo) Create(ctx context.Context, o Office) (Office, error) {
	f.offices[o.ID] = o
	return o, nil
}

func (f *fakeRepo) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	f.updates = updates
	o := f.offices[id]
	if v, ok := updates["status"]; ok {
		o.Status = v.(string)
	}
	if v, ok := updates["client_id"]; ok {
		if v == nil {
			o.ClientID = nil
		} else {
			s := v.(string)
			o.ClientID = &s
		}
	}
	if v, ok := updates["billed_value_uf"]; ok {
		o.BilledValueUF = v.(float64)
	}
	if v, ok := updates["cost_uf"]; ok {
		o.CostUF = v.(float64)
	}
	f.offices[id] = o
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	delete(f.offices, id)
	return nil
}

func (f *fakeRepo) ListCoordinates(ctx context.Context) ([]FloorPlanCoordinate, error) {
	out := make([]FloorPlanCoordinate, 0, len(f.coords))
	for _, c := range f.coords {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeRepo) UpsertCoordinate(ctx context.Context, c FloorPlanCoordinate) (FloorPlanCoordinate, error) {
	f.coords[c.ID] = c
	return c, nil
}

func (f *fakeRepo) ReplaceCoordinates(ctx context.Context, coords []FloorPlanCoordinate) error {
	f.coords = make(map[string]FloorPlanCoordinate, len(coords))
	for _, c := range coords {
		f.coords[c.ID] = c
	}
	return nil
}

func (f *fakeRepo) DeleteCoordinate(ctx context.Context, id string) error {
	delete(f.coords, id)
	return nil
}

func TestCreateDerivesStatusFromClient(t *testing.T) {
	svc := NewService(newFakeRepo())

	office, err := svc.Create(context.Background(), CreateOfficeRequest{OfficeNumber: "101"})
	require.NoError(t, err)
	require.Equal(t, StatusAvailable, office.Status)

	clientID := "client-1"
	office, err = svc.Create(context.Background(), CreateOfficeRequest{
		OfficeNumber: "102",
		ClientID:     &clientID,
	})
	require.NoError(t, err)
	require.Equal(t, StatusOccupied, office.Status)
}

func TestCreateComputesMargin(t *testing.T) {
	svc := NewService(newFakeRepo())

	office, err := svc.Create(context.Background(), CreateOfficeRequest{
		OfficeNumber:  "201",
		BilledValueUF: 100,
		CostUF:        60,
	})
	require.NoError(t, err)
	require.InDelta(t, 40.0, office.MarginPercentage, 0.001)
}

func TestMarginZeroWhenNotBilled(t *testing.T) {
	o := Office{BilledValueUF: 0, CostUF: 25}
	o.ComputeMargin()
	require.Zero(t, o.MarginPercentage)
}

func TestCreateRequiresOfficeNumber(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Create(context.Background(), CreateOfficeRequest{})
	require.ErrorIs(t, err, shared.ErrValidation)
}

func TestUpdateAssignsAndClearsClient(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	office, err := svc.Create(context.Background(), CreateOfficeRequest{OfficeNumber: "301"})
	require.NoError(t, err)

	clientID := "client-9"
	updated, err := svc.Update(context.Background(), office.ID, UpdateOfficeRequest{ClientID: &clientID})
	require.NoError(t, err)
	require.Equal(t, StatusOccupied, updated.Status)
	require.NotNil(t, updated.ClientID)
	require.Equal(t, clientID, *updated.ClientID)

	updated, err = svc.Update(context.Background(), office.ID, UpdateOfficeRequest{ClearClient: true})
	require.NoError(t, err)
	require.Equal(t, StatusAvailable, updated.Status)
	require.Nil(t, updated.ClientID)
}

func TestUpdateEmptyClientClears(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	clientID := "client-2"
	office, err := svc.Create(context.Background(), CreateOfficeRequest{
		OfficeNumber: "302",
		ClientID:     &clientID,
	})
	require.NoError(t, err)

	empty := ""
	updated, err := svc.Update(context.Background(), office.ID, UpdateOfficeRequest{ClientID: &empty})
	require.NoError(t, err)
	require.Equal(t, StatusAvailable, updated.Status)
	require.Nil(t, updated.ClientID)
}

func TestUpdateRecomputesMargin(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	office, err := svc.Create(context.Background(), CreateOfficeRequest{
		OfficeNumber:  "303",
		BilledValueUF: 200,
		CostUF:        150,
	})
	require.NoError(t, err)

	billed := 400.0
	updated, err := svc.Update(context.Background(), office.ID, UpdateOfficeRequest{BilledValueUF: &billed})
	require.NoError(t, err)
	require.InDelta(t, 62.5, updated.MarginPercentage, 0.001)
}

func TestUpdateUnknownOffice(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Update(context.Background(), "missing", UpdateOfficeRequest{})
	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestSaveCoordinateAssignsID(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	coord, err := svc.SaveCoordinate(context.Background(), "", SaveCoordinateRequest{
		OfficeNumber: "101",
		X:            10,
		Y:            20,
		Width:        50,
		Height:       30,
	})
	require.NoError(t, err)
	require.NotEmpty(t, coord.ID)

	again, err := svc.SaveCoordinate(context.Background(), coord.ID, SaveCoordinateRequest{
		OfficeNumber: "101",
		X:            15,
		Y:            20,
		Width:        50,
		Height:       30,
	})
	require.NoError(t, err)
	require.Equal(t, coord.ID, again.ID)
	require.Len(t, repo.coords, 1)
}

func TestReplaceFloorPlanSwapsAllRectangles(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	_, err := svc.SaveCoordinate(context.Background(), "", SaveCoordinateRequest{OfficeNumber: "101"})
	require.NoError(t, err)

	coords, err := svc.ReplaceFloorPlan(context.Background(), []SaveCoordinateRequest{
		{OfficeNumber: "201", X: 1, Y: 2, Width: 3, Height: 4},
		{OfficeNumber: "202", X: 5, Y: 6, Width: 7, Height: 8},
	})
	require.NoError(t, err)
	require.Len(t, coords, 2)
	require.Len(t, repo.coords, 2)

	_, err = svc.ReplaceFloorPlan(context.Background(), []SaveCoordinateRequest{{}})
	require.ErrorIs(t, err, shared.ErrValidation)
}
