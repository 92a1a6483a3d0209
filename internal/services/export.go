package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"redline-garage/pitwall/internal/models/dtos"
)

const exportSheet = "Service History"

var exportHeaders = []string{
	"Service Date", "Title", "Category", "Mileage", "Location",
	"Parts Brand", "Part Number", "Labor Cost", "Parts Cost", "Total Cost",
	"Steps", "Notes",
}

// ServiceExport is a rendered workbook ready to be streamed.
type ServiceExport struct {
	Filename string
	Content  []byte
}

// ExportServiceRecords renders the vehicle's service history as an .xlsx
// workbook, newest service first.
func (s *ServiceRecordService) ExportServiceRecords(ctx context.Context, vehicleID uint) (*ServiceExport, error) {
	vehicle, err := requireVehicle(ctx, s.vehicles, vehicleID)
	if err != nil {
		return nil, err
	}

	records, err := s.ListServiceRecords(ctx, vehicleID, "")
	if err != nil {
		return nil, err
	}

	buf, err := renderServiceHistory(records)
	if err != nil {
		return nil, internalError("export_service_records", err)
	}

	return &ServiceExport{
		Filename: fmt.Sprintf("service-history-%d.xlsx", vehicle.ID),
		Content:  buf.Bytes(),
	}, nil
}

func renderServiceHistory(records []dtos.ServiceRecordResponse) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheet, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6E6FA"}, Pattern: 1},
	})
	if err == nil {
		f.SetRowStyle(exportSheet, 1, 1, headerStyle)
	}

	for i, r := range records {
		row := i + 2
		values := []interface{}{
			r.ServiceDate,
			r.Title,
			r.Category,
			r.Mileage,
			deref(r.Location),
			deref(r.PartsBrand),
			deref(r.PartNumber),
			derefCost(r.LaborCost),
			derefCost(r.PartsCost),
			derefCost(r.TotalCost),
			len(r.Steps),
			deref(r.Notes),
		}

		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(exportSheet, cell, value)
		}
	}

	last, _ := excelize.ColumnNumberToName(len(exportHeaders))
	f.SetColWidth(exportSheet, "A", last, 16)

	if f.GetSheetName(0) != exportSheet {
		f.DeleteSheet("Sheet1")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return &buf, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// derefCost leaves missing costs as empty cells.
func derefCost(c *float64) interface{} {
	if c == nil {
		return ""
	}
	return *c
}
