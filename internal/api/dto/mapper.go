package dto

import (
	"fmt"
	"time"

	"github.com/jinzhu/copier"

	"github.com/kingrain94/rental-manager-api/internal/domain"
	"github.com/kingrain94/rental-manager-api/pkg/utils"
)

func copyFields(to, from any) {
	if err := copier.Copy(to, from); err != nil {
		panic(fmt.Sprintf("dto: copy %T into %T: %v", from, to, err))
	}
}

// ToRoomFields converts a RoomRequest DTO to editable room fields
func (r *RoomRequest) ToRoomFields() domain.RoomFields {
	var fields domain.RoomFields
	copyFields(&fields, r)
	return fields
}

// ToTenantFields converts a TenantRequest DTO to tenant fields
func (r *TenantRequest) ToTenantFields() domain.TenantFields {
	var fields domain.TenantFields
	copyFields(&fields, r)
	return fields
}

// ToPaymentFields converts a PaymentRequest DTO, parsing the optional date.
// A date without a time is midnight in loc.
func (r *PaymentRequest) ToPaymentFields(loc *time.Location) (domain.PaymentFields, error) {
	var fields domain.PaymentFields
	copyFields(&fields, r)

	if r.Date != "" {
		date, err := utils.ParseUserTimeIn(r.Date, false, loc)
		if err != nil {
			return domain.PaymentFields{}, domain.NewValidationError("date", "must be RFC3339 or YYYY-MM-DD")
		}
		fields.Date = date
	}
	return fields, nil
}

func (r *ProfileRequest) ToProfileFields() domain.ProfileFields {
	var fields domain.ProfileFields
	copyFields(&fields, r)
	return fields
}

func FromRoom(room *domain.Room) RoomResponse {
	var resp RoomResponse
	copyFields(&resp, room)
	return resp
}

func FromRooms(rooms []domain.Room) []RoomResponse {
	responses := make([]RoomResponse, len(rooms))
	for i := range rooms {
		responses[i] = FromRoom(&rooms[i])
	}
	return responses
}

// FromRoomViews converts rooms decorated with their derived occupancy
func FromRoomViews(views []domain.RoomWithOccupancy) []RoomResponse {
	responses := make([]RoomResponse, len(views))
	for i := range views {
		resp := FromRoom(&views[i].Room)
		occupancy := views[i].Occupancy
		resp.Occupancy = &OccupancyResponse{
			Status:     string(occupancy.Status),
			TenantName: occupancy.TenantName,
			StartDate:  occupancy.StartDate,
		}
		responses[i] = resp
	}
	return responses
}

func FromTenant(tenant *domain.Tenant) TenantResponse {
	var resp TenantResponse
	copyFields(&resp, tenant)
	return resp
}

func FromTenants(tenants []domain.Tenant) []TenantResponse {
	responses := make([]TenantResponse, len(tenants))
	for i := range tenants {
		responses[i] = FromTenant(&tenants[i])
	}
	return responses
}

func FromPayment(payment *domain.Payment) PaymentResponse {
	var resp PaymentResponse
	copyFields(&resp, payment)
	return resp
}

func FromPayments(payments []domain.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = FromPayment(&payments[i])
	}
	return responses
}

func FromMonthlyReport(report *domain.MonthlyReport) MonthlyReportResponse {
	return MonthlyReportResponse{
		Month: report.Month,
		Year:  report.Year,
		Items: FromPayments(report.Items),
		Total: report.Total,
	}
}

func FromProfile(profile *domain.UserProfile) ProfileResponse {
	var resp ProfileResponse
	copyFields(&resp, profile)
	return resp
}

func FromReconcileResult(checked int, repaired []domain.OccupancyDrift) ReconcileResponse {
	resp := ReconcileResponse{
		RoomsChecked: checked,
		Repaired:     make([]DriftResponse, len(repaired)),
	}
	for i := range repaired {
		copyFields(&resp.Repaired[i], &repaired[i])
	}
	return resp
}
