package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"strconv"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"yardboard-backend/internal/master"
	"yardboard-backend/internal/platform/apperr"
)

// ExportCSV: 事務所のExcelでそのまま開けるよう CP932(Shift_JIS) + CRLF で出力する。
func (s *Service) ExportCSV(ctx context.Context, date string) (*bytes.Buffer, string, error) {
	b, err := s.collect(ctx, date)
	if err != nil {
		return nil, "", err
	}

	var records [][]string
	records = append(records, []string{"配車表", b.date})
	records = append(records, []string{"積込担当", b.info.LoadingPerson})
	records = append(records, nil)

	header := []string{"車両", "乗務員"}
	for slot := 0; slot < master.SlotsPerVehicle; slot++ {
		header = append(header,
			fmt.Sprintf("%d便 積み", slot+1),
			fmt.Sprintf("%d便 降ろし", slot+1))
	}
	records = append(records, header)
	for _, vehicle := range master.Vehicles {
		rec := []string{vehicle, b.driverFor(vehicle)}
		for slot := 0; slot < master.SlotsPerVehicle; slot++ {
			pickup, delivery := b.entryFor(vehicle, slot)
			rec = append(rec, pickup, delivery)
		}
		records = append(records, rec)
	}

	records = append(records, nil)
	records = append(records, []string{"欠勤者"})
	for _, a := range b.absentees {
		records = append(records, []string{a.Name})
	}

	records = append(records, nil)
	records = append(records, []string{"鉄ヤード出荷"})
	records = append(records, []string{"列", "区分", "トレーラー", "時間", "行き先", "出荷品目", "備考"})
	for _, sh := range b.shipments {
		records = append(records, []string{
			strconv.Itoa(sh.ColumnIndex),
			sh.Category,
			sh.Trailer,
			deref(sh.Time),
			deref(sh.Destination),
			deref(sh.Cargo),
			deref(sh.Remarks),
		})
	}

	records = append(records, nil)
	records = append(records, []string{"連絡事項", b.remark.Content})

	var buf bytes.Buffer
	enc := transform.NewWriter(&buf, japanese.ShiftJIS.NewEncoder())
	w := csv.NewWriter(enc)
	w.UseCRLF = true
	for _, rec := range records {
		if rec == nil {
			rec = []string{""}
		}
		if err := w.Write(rec); err != nil {
			log.Printf("[ERROR] write csv: %v", err)
			return nil, "", apperr.Internal("failed to generate board file")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Printf("[ERROR] flush csv: %v", err)
		return nil, "", apperr.Internal("failed to generate board file")
	}
	if err := enc.Close(); err != nil {
		log.Printf("[ERROR] close cp932 encoder: %v", err)
		return nil, "", apperr.Internal("failed to generate board file")
	}
	return &buf, fmt.Sprintf("yardboard_%s.csv", b.date), nil
}
