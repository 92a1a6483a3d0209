package services

import (
	"time"

	"gorm.io/datatypes"

	"redline-garage/pitwall/internal/maintenance"
	"redline-garage/pitwall/internal/models/dtos"
	gormModels "redline-garage/pitwall/internal/models/gorm"
)

func formatDate(d datatypes.Date) string {
	return gormModels.DateTime(d).Format(dtos.DateLayout)
}

func formatDatePtr(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := formatDate(*d)
	return &s
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dtos.DateLayout, s)
}

func toScheduleItemResponse(item *gormModels.MaintenanceScheduleItem, status maintenance.Status) dtos.ScheduleItemResponse {
	return dtos.ScheduleItemResponse{
		ID:                  item.ID,
		VehicleID:           item.VehicleID,
		Title:               item.Title,
		Category:            item.Category,
		Description:         item.Description,
		IntervalMiles:       item.IntervalMiles,
		IntervalMonths:      item.IntervalMonths,
		LastServicedMileage: item.LastServicedMileage,
		LastServicedDate:    formatDatePtr(item.LastServicedDate),
		LastServiceRecordID: item.LastServiceRecordID,
		NextDueMileage:      item.NextDueMileage,
		NextDueDate:         formatDatePtr(item.NextDueDate),
		IsActive:            item.IsActive,
		Status:              status,
	}
}

// evaluate computes the status of every item against the vehicle's odometer.
func evaluate(vehicle *gormModels.Vehicle, items []gormModels.MaintenanceScheduleItem, today time.Time) []dtos.ScheduleItemResponse {
	out := make([]dtos.ScheduleItemResponse, len(items))
	for i := range items {
		status := maintenance.Compute(items[i].Due(), vehicle.CurrentMileage, today)
		out[i] = toScheduleItemResponse(&items[i], status)
	}
	return out
}

func toUserSummary(u gormModels.User) dtos.UserSummary {
	return dtos.UserSummary{ID: u.ID, Name: u.Name, Image: u.Image}
}

func toVehicleSummary(v *gormModels.Vehicle) dtos.VehicleSummary {
	return dtos.VehicleSummary{ID: v.ID, Year: v.Year, Make: v.Make, Model: v.Model}
}

func toVehicleResponse(v *gormModels.Vehicle) dtos.VehicleResponse {
	photos := make([]dtos.PhotoResponse, len(v.Photos))
	for i, p := range v.Photos {
		photos[i] = dtos.PhotoResponse{
			ID:          p.ID,
			FileURL:     p.FileURL,
			FileKey:     p.FileKey,
			Description: p.Description,
			IsPrimary:   p.IsPrimary,
		}
	}

	return dtos.VehicleResponse{
		VehicleSummary:    toVehicleSummary(v),
		CurrentMileage:    v.CurrentMileage,
		LastMileageUpdate: v.LastMileageUpdate,
		OwnerID:           v.OwnerID,
		Photos:            photos,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

func toServiceRecordResponse(r *gormModels.ServiceRecord) dtos.ServiceRecordResponse {
	steps := make([]dtos.StepResponse, len(r.Steps))
	for i, s := range r.Steps {
		photos := make([]dtos.FileResponse, len(s.Photos))
		for j, p := range s.Photos {
			photos[j] = dtos.FileResponse{ID: p.ID, FileURL: p.FileURL, FileKey: p.FileKey}
		}
		steps[i] = dtos.StepResponse{
			ID:          s.ID,
			StepNumber:  s.StepNumber,
			Title:       s.Title,
			Description: s.Description,
			Photos:      photos,
		}
	}

	docs := make([]dtos.DocumentResponse, len(r.Documents))
	for i, d := range r.Documents {
		docs[i] = dtos.DocumentResponse{ID: d.ID, FileURL: d.FileURL, FileKey: d.FileKey, FileType: d.FileType}
	}

	return dtos.ServiceRecordResponse{
		ID:             r.ID,
		VehicleID:      r.VehicleID,
		Title:          r.Title,
		Category:       r.Category,
		ServiceDate:    formatDate(r.ServiceDate),
		Mileage:        r.Mileage,
		Location:       r.Location,
		Description:    r.Description,
		PartsBrand:     r.PartsBrand,
		PartNumber:     r.PartNumber,
		LaborCost:      r.LaborCost,
		PartsCost:      r.PartsCost,
		TotalCost:      r.TotalCost,
		Notes:          r.Notes,
		ScheduleItemID: r.ScheduleItemID,
		Steps:          steps,
		Documents:      docs,
		CreatedAt:      r.CreatedAt,
	}
}

func toCommentResponse(c *gormModels.VehicleComment) dtos.CommentResponse {
	return dtos.CommentResponse{
		ID:        c.ID,
		VehicleID: c.VehicleID,
		Body:      c.Body,
		CreatedAt: c.CreatedAt,
		User:      toUserSummary(c.User),
	}
}

func toNotificationResponse(n *gormModels.Notification) dtos.NotificationResponse {
	return dtos.NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		IsRead:    n.IsRead,
		CommentID: n.CommentID,
		CreatedAt: n.CreatedAt,
		Actor:     toUserSummary(n.Actor),
		Vehicle:   toVehicleSummary(&n.Vehicle),
	}
}
