package spreadsheet

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/diegoclair/staff-desk-bot/internal/domain/calendar"
	"github.com/diegoclair/staff-desk-bot/internal/domain/contract"
	"github.com/diegoclair/staff-desk-bot/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

const ReadingsSheet = "Meter readings"

// ReadingsHeader is the first row of every report
var ReadingsHeader = []string{"#", "Plate number", "Inventory no.", "Counter", "Reading", "Comment"}

// Reports writes generated reports and received submissions into one directory
type Reports struct {
	dir string
}

func NewReports(dir string) (*Reports, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create reports dir %s: %w", dir, err)
	}
	return &Reports{dir: dir}, nil
}

var _ contract.ReportWriter = (*Reports)(nil)

// ReadingsReport lists the equipment the employee must read, with the last known values.
func (r *Reports) ReadingsReport(employee *entity.Employee, items []entity.Equipment, day calendar.Date) (*entity.Report, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), ReadingsSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(ReadingsHeader))
	for i, h := range ReadingsHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(ReadingsSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	widths := make([]int, len(ReadingsHeader))
	for i, h := range ReadingsHeader {
		widths[i] = utf8.RuneCountInString(h)
	}

	for i, item := range items {
		row := []interface{}{
			i + 1,
			item.GovNumber,
			item.InventoryNumber,
			item.CounterName,
			item.LastValue.InexactFloat64(),
			"",
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(ReadingsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}

		texts := []string{strconv.Itoa(i + 1), item.GovNumber, item.InventoryNumber, item.CounterName, item.LastValue.String(), ""}
		for c, text := range texts {
			if n := utf8.RuneCountInString(text); n > widths[c] {
				widths[c] = n
			}
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(ReadingsHeader), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(ReadingsSheet, "A1", lastHeader, bold); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	for c, width := range widths {
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(ReadingsSheet, col, col, float64(width+2)*1.2); err != nil {
			return nil, fmt.Errorf("failed to set width of column %s: %w", col, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	filename := fmt.Sprintf("counter_readings_%d_%s.xlsx", employee.ID, day.Time().Format("20060102"))
	return r.save(filename, buf.Bytes())
}

// StoreSubmission archives a workbook sent back by an employee after checking it opens.
func (r *Reports) StoreSubmission(chatUserID string, content []byte, at time.Time) (*entity.Report, error) {
	if _, err := readRowsFrom(content); err != nil {
		return nil, fmt.Errorf("submitted file is not a readable workbook: %w", err)
	}

	filename := fmt.Sprintf("user_response_%s_%s.xlsx", chatUserID, at.Format("20060102_150405"))
	return r.save(filename, content)
}

func (r *Reports) save(filename string, content []byte) (*entity.Report, error) {
	path := filepath.Join(r.dir, filename)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return &entity.Report{
		Filename: filename,
		Path:     path,
		Content:  content,
	}, nil
}
