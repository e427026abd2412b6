package dispatch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yardboard-backend/internal/platform/apperr"
)

type entryKey struct {
	date    string
	vehicle string
	slot    int
}

type driverKey struct {
	date    string
	vehicle string
}

type fakeStore struct {
	entries map[entryKey]Entry
	drivers map[driverKey]Driver
	nextID  uint64
	calls   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{entries: map[entryKey]Entry{}, drivers: map[driverKey]Driver{}}
}

func (f *fakeStore) UpsertEntry(_ context.Context, date, vehicleID string, slotIndex int, pickup, delivery *string) (Entry, error) {
	f.calls++
	k := entryKey{date, vehicleID, slotIndex}
	e, ok := f.entries[k]
	if !ok {
		f.nextID++
		e = Entry{ID: f.nextID, Date: date, VehicleID: vehicleID, SlotIndex: slotIndex}
	}
	e.Pickup = pickup
	e.Delivery = delivery
	f.entries[k] = e
	return e, nil
}

func (f *fakeStore) ListEntriesByDate(_ context.Context, date string) ([]Entry, error) {
	f.calls++
	var out []Entry
	for _, e := range f.entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeStore) UpsertDriver(_ context.Context, date, vehicleID, driverName string) (Driver, error) {
	f.calls++
	k := driverKey{date, vehicleID}
	d, ok := f.drivers[k]
	if !ok {
		f.nextID++
		d = Driver{ID: f.nextID, Date: date, VehicleID: vehicleID}
	}
	d.DriverName = driverName
	f.drivers[k] = d
	return d, nil
}

func (f *fakeStore) ListDriversByDate(_ context.Context, date string) ([]Driver, error) {
	f.calls++
	var out []Driver
	for _, d := range f.drivers {
		if d.Date == date {
			out = append(out, d)
		}
	}
	return out, nil
}

func ptr[T any](v T) *T { return &v }

func TestUpsertEntry_RequiredFields(t *testing.T) {
	tests := []struct {
		name string
		req  UpsertEntryRequest
	}{
		{"missing date", UpsertEntryRequest{VehicleID: "10t①", SlotIndex: ptr(0)}},
		{"missing vehicleId", UpsertEntryRequest{Date: "2025-06-01", SlotIndex: ptr(0)}},
		{"missing slotIndex", UpsertEntryRequest{Date: "2025-06-01", VehicleID: "10t①"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newFakeStore()
			svc := newServiceWithStore(st)
			_, err := svc.UpsertEntry(context.Background(), tt.req)
			require.Error(t, err)
			assert.Equal(t, 400, apperr.ToHTTPStatus(err))
			assert.Equal(t, 0, st.calls)
		})
	}
}

// slotIndex=0 は有効値（存在チェックであって真偽値チェックではない）
func TestUpsertEntry_SlotZeroAllowed(t *testing.T) {
	svc := newServiceWithStore(newFakeStore())
	got, err := svc.UpsertEntry(context.Background(), UpsertEntryRequest{
		Date:      "2025-06-01",
		VehicleID: "10t①",
		SlotIndex: ptr(0),
		Pickup:    ptr("本社工場"),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, got.SlotIndex)
	require.NotNil(t, got.Pickup)
	assert.Equal(t, "本社工場", *got.Pickup)
}

// 同一キーへの2回目の書き込みは行を増やさず最新値だけ残す
func TestUpsertEntry_CompositeKeyUnique(t *testing.T) {
	st := newFakeStore()
	svc := newServiceWithStore(st)
	ctx := context.Background()

	first, err := svc.UpsertEntry(ctx, UpsertEntryRequest{
		Date: "2025-06-01", VehicleID: "10t①", SlotIndex: ptr(1), Pickup: ptr("本社工場"),
	})
	require.NoError(t, err)

	second, err := svc.UpsertEntry(ctx, UpsertEntryRequest{
		Date: "2025-06-01", VehicleID: "10t①", SlotIndex: ptr(1), Pickup: ptr("東港ヤード"),
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	rows, err := svc.ListEntries(ctx, "2025-06-01")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Pickup)
	assert.Equal(t, "東港ヤード", *rows[0].Pickup)
}

func TestUpsertDriver_RequiredFields(t *testing.T) {
	tests := []struct {
		name string
		req  UpsertDriverRequest
	}{
		{"missing date", UpsertDriverRequest{VehicleID: "10t①", DriverName: "佐藤"}},
		{"missing vehicleId", UpsertDriverRequest{Date: "2025-06-01", DriverName: "佐藤"}},
		{"missing driverName", UpsertDriverRequest{Date: "2025-06-01", VehicleID: "10t①"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newFakeStore()
			svc := newServiceWithStore(st)
			_, err := svc.UpsertDriver(context.Background(), tt.req)
			require.Error(t, err)
			assert.Equal(t, 400, apperr.ToHTTPStatus(err))
			assert.Equal(t, 0, st.calls)
		})
	}
}

func TestListEntries_DateRequired(t *testing.T) {
	st := newFakeStore()
	svc := newServiceWithStore(st)

	_, err := svc.ListEntries(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, 400, apperr.ToHTTPStatus(err))

	_, err = svc.ListDrivers(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, 400, apperr.ToHTTPStatus(err))

	assert.Equal(t, 0, st.calls)
}
