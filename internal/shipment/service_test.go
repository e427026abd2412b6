package shipment

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yardboard-backend/internal/platform/apperr"
)

type shipKey struct {
	date     string
	column   int
	category string
}

// ストアのキー付きupsert/部分適用の意味論をメモリ上で再現するフェイク
type fakeStore struct {
	rows   map[shipKey]Shipment
	nextID uint64
	calls  int
}

func newFakeStore() *fakeStore { return &fakeStore{rows: map[shipKey]Shipment{}} }

func (f *fakeStore) Upsert(_ context.Context, in UpsertShipmentRequest) (Shipment, error) {
	f.calls++
	k := shipKey{in.Date, *in.ColumnIndex, in.Category}
	m, ok := f.rows[k]
	if !ok {
		f.nextID++
		m = Shipment{
			ID: f.nextID, Date: in.Date, ColumnIndex: *in.ColumnIndex, Category: in.Category,
			CreatedAt: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC).Add(time.Duration(f.nextID) * time.Minute),
		}
		if in.Trailer != nil {
			m.Trailer = *in.Trailer
		}
		m.Time, m.Destination, m.Cargo, m.Remarks = in.Time, in.Destination, in.Cargo, in.Remarks
		f.rows[k] = m
		return m, nil
	}
	// 既存行にはリクエストに含まれるフィールドだけを適用
	if in.Trailer != nil {
		m.Trailer = *in.Trailer
	}
	if in.Time != nil {
		m.Time = in.Time
	}
	if in.Destination != nil {
		m.Destination = in.Destination
	}
	if in.Cargo != nil {
		m.Cargo = in.Cargo
	}
	if in.Remarks != nil {
		m.Remarks = in.Remarks
	}
	f.rows[k] = m
	return m, nil
}

func (f *fakeStore) UpdateByID(_ context.Context, id uint64, in UpdateShipmentRequest) (Shipment, error) {
	f.calls++
	for k, m := range f.rows {
		if m.ID != id {
			continue
		}
		if in.Destination != nil {
			m.Destination = in.Destination
		}
		if in.Remarks != nil {
			m.Remarks = in.Remarks
		}
		f.rows[k] = m
		return m, nil
	}
	return Shipment{}, sql.ErrNoRows
}

func (f *fakeStore) DeleteByID(_ context.Context, id uint64) error {
	f.calls++
	for k, m := range f.rows {
		if m.ID == id {
			delete(f.rows, k)
			return nil
		}
	}
	return sql.ErrNoRows
}

func (f *fakeStore) ListByDate(_ context.Context, date string) ([]Shipment, error) {
	f.calls++
	var out []Shipment
	for _, m := range f.rows {
		if m.Date == date {
			out = append(out, m)
		}
	}
	return out, nil
}

func TestUpsert_RequiredFields(t *testing.T) {
	tests := []struct {
		name string
		req  UpsertShipmentRequest
	}{
		{"missing date", UpsertShipmentRequest{ColumnIndex: ptr(0), Category: "Iron"}},
		{"missing columnIndex", UpsertShipmentRequest{Date: "2025-06-01", Category: "Iron"}},
		{"missing category", UpsertShipmentRequest{Date: "2025-06-01", ColumnIndex: ptr(0)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newFakeStore()
			svc := newServiceWithStore(st)
			_, err := svc.Upsert(context.Background(), tt.req)
			require.Error(t, err)
			assert.Equal(t, 400, apperr.ToHTTPStatus(err))
			assert.Equal(t, 0, st.calls)
		})
	}
}

// 部分更新則: destination を先に書き、time だけの2回目の書き込みが
// destination を潰さないこと。
func TestUpsert_PartialUpdatePreservesFields(t *testing.T) {
	svc := newServiceWithStore(newFakeStore())
	ctx := context.Background()

	first, err := svc.Upsert(ctx, UpsertShipmentRequest{
		Date: "2025-06-01", ColumnIndex: ptr(0), Category: "Iron",
		Destination: ptr("東京"),
	})
	require.NoError(t, err)
	// trailer 未指定の新規作成は空文字（NULLにしない）
	assert.Equal(t, "", first.Trailer)

	second, err := svc.Upsert(ctx, UpsertShipmentRequest{
		Date: "2025-06-01", ColumnIndex: ptr(0), Category: "Iron",
		Time: ptr("9:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	require.NotNil(t, second.Destination)
	assert.Equal(t, "東京", *second.Destination)
	require.NotNil(t, second.Time)
	assert.Equal(t, "9:00", *second.Time)

	rows, err := svc.List(ctx, "2025-06-01")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestUpdateByID_IDRequired(t *testing.T) {
	st := newFakeStore()
	svc := newServiceWithStore(st)

	_, err := svc.UpdateByID(context.Background(), UpdateShipmentRequest{Destination: ptr("大阪")})
	require.Error(t, err)
	assert.Equal(t, 400, apperr.ToHTTPStatus(err))
	assert.Equal(t, 0, st.calls)
}

// 存在しない id への更新は書き込み失敗（500）
func TestUpdateByID_MissingRow(t *testing.T) {
	svc := newServiceWithStore(newFakeStore())

	_, err := svc.UpdateByID(context.Background(), UpdateShipmentRequest{ID: ptr(uint64(99))})
	require.Error(t, err)
	assert.Equal(t, 500, apperr.ToHTTPStatus(err))
}

// 削除後の再削除は success ではなく失敗
func TestDelete_SecondDeleteFails(t *testing.T) {
	st := newFakeStore()
	svc := newServiceWithStore(st)
	ctx := context.Background()

	created, err := svc.Upsert(ctx, UpsertShipmentRequest{
		Date: "2025-06-01", ColumnIndex: ptr(1), Category: "Iron",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteByID(ctx, created.ID))

	rows, err := svc.List(ctx, "2025-06-01")
	require.NoError(t, err)
	assert.Len(t, rows, 0)

	err = svc.DeleteByID(ctx, created.ID)
	require.Error(t, err)
	assert.Equal(t, 500, apperr.ToHTTPStatus(err))
}
