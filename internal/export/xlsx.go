package export

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/xuri/excelize/v2"

	"yardboard-backend/internal/master"
	"yardboard-backend/internal/platform/apperr"
)

const sheetName = "配車表"

// ExportXLSX: 1日分のボードを事務所印刷用のExcelにする。
// 返り値: buf（ファイル内容）, filename（推奨ファイル名）
func (s *Service) ExportXLSX(ctx context.Context, date string) (*bytes.Buffer, string, error) {
	b, err := s.collect(ctx, date)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, "", fmt.Errorf("シート名の設定に失敗: %w", err)
	}

	setCell := func(cell string, v any) {
		// セル番地は固定文字列なのでエラーは起きない想定。起きたらログだけ残す。
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			log.Printf("[ERROR] set cell %s: %v", cell, err)
		}
	}

	// ヘッダ
	setCell("A1", "配車表")
	setCell("B1", b.date)
	setCell("A2", "積込担当")
	setCell("B2", b.info.LoadingPerson)

	// 配車グリッド: 車両 / 乗務員 / 1便〜3便の積み→降ろし
	setCell("A4", "車両")
	setCell("B4", "乗務員")
	for slot := 0; slot < master.SlotsPerVehicle; slot++ {
		col, _ := excelize.ColumnNumberToName(3 + slot*2)
		setCell(col+"4", fmt.Sprintf("%d便 積み", slot+1))
		col2, _ := excelize.ColumnNumberToName(4 + slot*2)
		setCell(col2+"4", fmt.Sprintf("%d便 降ろし", slot+1))
	}
	rowIdx := 5
	for _, vehicle := range master.Vehicles {
		setCell("A"+strconv.Itoa(rowIdx), vehicle)
		setCell("B"+strconv.Itoa(rowIdx), b.driverFor(vehicle))
		for slot := 0; slot < master.SlotsPerVehicle; slot++ {
			pickup, delivery := b.entryFor(vehicle, slot)
			col, _ := excelize.ColumnNumberToName(3 + slot*2)
			setCell(col+strconv.Itoa(rowIdx), pickup)
			col2, _ := excelize.ColumnNumberToName(4 + slot*2)
			setCell(col2+strconv.Itoa(rowIdx), delivery)
		}
		rowIdx++
	}

	// 欠勤者
	rowIdx++
	setCell("A"+strconv.Itoa(rowIdx), "欠勤者")
	rowIdx++
	for _, a := range b.absentees {
		setCell("A"+strconv.Itoa(rowIdx), a.Name)
		rowIdx++
	}

	// 鉄ヤード出荷
	rowIdx++
	setCell("A"+strconv.Itoa(rowIdx), "鉄ヤード出荷")
	rowIdx++
	for i, h := range []string{"列", "区分", "トレーラー", "時間", "行き先", "出荷品目", "備考"} {
		col, _ := excelize.ColumnNumberToName(1 + i)
		setCell(col+strconv.Itoa(rowIdx), h)
	}
	rowIdx++
	for _, sh := range b.shipments {
		setCell("A"+strconv.Itoa(rowIdx), sh.ColumnIndex)
		setCell("B"+strconv.Itoa(rowIdx), sh.Category)
		setCell("C"+strconv.Itoa(rowIdx), sh.Trailer)
		setCell("D"+strconv.Itoa(rowIdx), deref(sh.Time))
		setCell("E"+strconv.Itoa(rowIdx), deref(sh.Destination))
		setCell("F"+strconv.Itoa(rowIdx), deref(sh.Cargo))
		setCell("G"+strconv.Itoa(rowIdx), deref(sh.Remarks))
		rowIdx++
	}

	// 連絡事項
	rowIdx++
	setCell("A"+strconv.Itoa(rowIdx), "連絡事項")
	setCell("B"+strconv.Itoa(rowIdx), b.remark.Content)

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Printf("[ERROR] write xlsx: %v", err)
		return nil, "", apperr.Internal("failed to generate board file")
	}
	return buf, fmt.Sprintf("yardboard_%s.xlsx", b.date), nil
}
