package absence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yardboard-backend/internal/platform/apperr"
)

type fakeStore struct {
	rows    []Absentee
	inserts int
	lists   int
}

func (f *fakeStore) Insert(_ context.Context, date, name string) (Absentee, error) {
	f.inserts++
	a := Absentee{
		ID:        uint64(len(f.rows) + 1),
		Date:      date,
		Name:      name,
		CreatedAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC).Add(time.Duration(len(f.rows)) * time.Minute),
	}
	f.rows = append(f.rows, a)
	return a, nil
}

func (f *fakeStore) ListByDate(_ context.Context, date string) ([]Absentee, error) {
	f.lists++
	var out []Absentee
	for _, r := range f.rows {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out, nil
}

func TestList_DateRequired(t *testing.T) {
	st := &fakeStore{}
	svc := newServiceWithStore(st)

	_, err := svc.List(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, 400, apperr.ToHTTPStatus(err))
	// バリデーションで弾かれたリクエストはストアに到達しない
	assert.Equal(t, 0, st.lists)
}

func TestCreate_RequiredFields(t *testing.T) {
	tests := []struct {
		name string
		req  CreateAbsenteeRequest
	}{
		{"missing date", CreateAbsenteeRequest{Name: "山田"}},
		{"missing name", CreateAbsenteeRequest{Date: "2025-06-01"}},
		{"both missing", CreateAbsenteeRequest{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &fakeStore{}
			svc := newServiceWithStore(st)
			_, err := svc.Create(context.Background(), tt.req)
			require.Error(t, err)
			assert.Equal(t, 400, apperr.ToHTTPStatus(err))
			assert.Equal(t, 0, st.inserts)
		})
	}
}

func TestCreateAndList_OrderPreserved(t *testing.T) {
	st := &fakeStore{}
	svc := newServiceWithStore(st)
	ctx := context.Background()

	names := []string{"山田", "佐藤", "鈴木"}
	for _, n := range names {
		_, err := svc.Create(ctx, CreateAbsenteeRequest{Date: "2025-06-01", Name: n})
		require.NoError(t, err)
	}
	// 同名でも重複排除しない
	_, err := svc.Create(ctx, CreateAbsenteeRequest{Date: "2025-06-01", Name: "山田"})
	require.NoError(t, err)

	got, err := svc.List(ctx, "2025-06-01")
	require.NoError(t, err)
	require.Len(t, got, 4)
	for i, want := range append(names, "山田") {
		assert.Equal(t, want, got[i].Name)
	}

	// 別日のリストは空配列（nilでなく）
	empty, err := svc.List(ctx, "2099-01-01")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Len(t, empty, 0)
}
