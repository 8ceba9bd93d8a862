package overview

import (
	"bytes"
	"context"
	"fmt"

	"dairy/models"
	"dairy/utils"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Overview"

func (s *DefaultOverviewService) ExportXLSX(ctx context.Context, session models.Session, shift models.Shift, month, year int) ([]byte, error) {
	snapshot, err := s.BuildOverview(ctx, session, shift, month, year)
	if err != nil {
		return nil, err
	}
	return RenderXLSX(snapshot, s.CurrencySymbol)
}

// RenderXLSX lays the snapshot out as one row per customer and one column per
// day, followed by the litre and amount totals. Values are rounded to two
// decimals here and nowhere earlier.
func RenderXLSX(snapshot *models.OverviewSnapshot, currency string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	title := fmt.Sprintf("Overview (%s) %04d-%02d", snapshot.Shift, snapshot.Year, snapshot.Month)
	if err := f.SetCellValue(exportSheet, "A1", title); err != nil {
		return nil, err
	}

	const headerRow = 3
	header := []any{"Customer"}
	for day := 1; day <= snapshot.DaysInMonth; day++ {
		header = append(header, day)
	}
	amountHeader := "Total Amount"
	if currency != "" {
		amountHeader = fmt.Sprintf("Total Amount (%s)", currency)
	}
	header = append(header, "Total Litres", amountHeader)
	if err := setRow(f, headerRow, header); err != nil {
		return nil, err
	}

	var grandLitres, grandAmount float64
	for i, c := range snapshot.Customers {
		row := []any{c.DisplayName()}
		for day := 1; day <= snapshot.DaysInMonth; day++ {
			if cell, ok := snapshot.Cell(day, c.ID); ok && cell.Litres != 0 {
				row = append(row, utils.Round2(cell.Litres))
			} else {
				row = append(row, "-")
			}
		}
		litres := snapshot.TotalLitresPerCustomer[c.ID]
		amount := snapshot.TotalAmountPerCustomer[c.ID]
		grandLitres = utils.AddExact(grandLitres, litres)
		grandAmount = utils.AddExact(grandAmount, amount)
		row = append(row, utils.Round2(litres), utils.Round2(amount))
		if err := setRow(f, headerRow+1+i, row); err != nil {
			return nil, err
		}
	}

	footer := make([]any, snapshot.DaysInMonth+3)
	footer[0] = "Total"
	for i := 1; i <= snapshot.DaysInMonth; i++ {
		footer[i] = ""
	}
	footer[snapshot.DaysInMonth+1] = utils.Round2(grandLitres)
	footer[snapshot.DaysInMonth+2] = utils.Round2(grandAmount)
	if err := setRow(f, headerRow+1+len(snapshot.Customers), footer); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(exportSheet, cell, &values)
}
