package export

import (
	"context"

	"yardboard-backend/internal/absence"
	"yardboard-backend/internal/dispatch"
	"yardboard-backend/internal/platform/apperr"
	"yardboard-backend/internal/shipment"
	"yardboard-backend/internal/yardinfo"
)

// 各エンティティのServiceをそのまま束ねる。テストではフェイクを差す。
type absenceSource interface {
	List(ctx context.Context, date string) ([]absence.AbsenteeResponse, error)
}

type dispatchSource interface {
	ListEntries(ctx context.Context, date string) ([]dispatch.EntryResponse, error)
	ListDrivers(ctx context.Context, date string) ([]dispatch.DriverResponse, error)
}

type shipmentSource interface {
	List(ctx context.Context, date string) ([]shipment.ShipmentResponse, error)
}

type yardInfoSource interface {
	GetYardInfo(ctx context.Context, date string) (yardinfo.YardInfoResponse, error)
	GetRemark(ctx context.Context, date string) (yardinfo.RemarkResponse, error)
}

type Service struct {
	absences  absenceSource
	dispatch  dispatchSource
	shipments shipmentSource
	yardInfo  yardInfoSource
}

func NewService(ab *absence.Service, dp *dispatch.Service, sh *shipment.Service, yi *yardinfo.Service) *Service {
	return &Service{absences: ab, dispatch: dp, shipments: sh, yardInfo: yi}
}

// 1日分のボードデータ
type boardData struct {
	date      string
	info      yardinfo.YardInfoResponse
	remark    yardinfo.RemarkResponse
	drivers   []dispatch.DriverResponse
	entries   []dispatch.EntryResponse
	absentees []absence.AbsenteeResponse
	shipments []shipment.ShipmentResponse
}

func (s *Service) collect(ctx context.Context, date string) (boardData, error) {
	if date == "" {
		return boardData{}, apperr.Invalid("date is required")
	}
	var (
		b   = boardData{date: date}
		err error
	)
	if b.info, err = s.yardInfo.GetYardInfo(ctx, date); err != nil {
		return boardData{}, err
	}
	if b.remark, err = s.yardInfo.GetRemark(ctx, date); err != nil {
		return boardData{}, err
	}
	if b.drivers, err = s.dispatch.ListDrivers(ctx, date); err != nil {
		return boardData{}, err
	}
	if b.entries, err = s.dispatch.ListEntries(ctx, date); err != nil {
		return boardData{}, err
	}
	if b.absentees, err = s.absences.List(ctx, date); err != nil {
		return boardData{}, err
	}
	if b.shipments, err = s.shipments.List(ctx, date); err != nil {
		return boardData{}, err
	}
	return b, nil
}

// 車両ごとの行を組み立てるためのルックアップ
func (b boardData) driverFor(vehicleID string) string {
	for _, d := range b.drivers {
		if d.VehicleID == vehicleID {
			return d.DriverName
		}
	}
	return ""
}

func (b boardData) entryFor(vehicleID string, slot int) (pickup, delivery string) {
	for _, e := range b.entries {
		if e.VehicleID == vehicleID && e.SlotIndex == slot {
			return deref(e.Pickup), deref(e.Delivery)
		}
	}
	return "", ""
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
