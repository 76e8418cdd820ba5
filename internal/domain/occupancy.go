package domain

// RoomOccupancy is the display status of a room derived from the tenant set.
// It is computed on read and may disagree with Room.Status when a consistency write was missed.
type RoomOccupancy struct {
	Status     RoomStatus `json:"status"`
	TenantName *string    `json:"tenant_name"`
	StartDate  *string    `json:"start_date"`
}

// DeriveStatus looks up the first tenant whose room number equals the room name.
func DeriveStatus(room Room, tenants []Tenant) RoomOccupancy {
	for i := range tenants {
		if tenants[i].RoomNumber == room.Name {
			name := tenants[i].Name
			start := tenants[i].StartDate
			return RoomOccupancy{Status: RoomRented, TenantName: &name, StartDate: &start}
		}
	}
	return RoomOccupancy{Status: RoomAvailable}
}

// RoomWithOccupancy pairs a stored room with its derived display status.
type RoomWithOccupancy struct {
	Room
	Occupancy RoomOccupancy `json:"occupancy"`
}

// Project derives the occupancy of every room, preserving order.
func Project(rooms []Room, tenants []Tenant) []RoomWithOccupancy {
	result := make([]RoomWithOccupancy, len(rooms))
	for i, room := range rooms {
		result[i] = RoomWithOccupancy{Room: room, Occupancy: DeriveStatus(room, tenants)}
	}
	return result
}

// FilterByStatus keeps the rooms whose derived status equals filter, preserving order.
// An empty filter returns every room.
func FilterByStatus(rooms []Room, tenants []Tenant, filter RoomStatus) []Room {
	if filter == "" {
		return rooms
	}

	result := make([]Room, 0, len(rooms))
	for _, room := range rooms {
		if DeriveStatus(room, tenants).Status == filter {
			result = append(result, room)
		}
	}
	return result
}

// OccupancyDrift describes a room whose persisted status disagrees with the derived one.
type OccupancyDrift struct {
	RoomID    string     `json:"room_id"`
	RoomName  string     `json:"room_name"`
	Persisted RoomStatus `json:"persisted"`
	Derived   RoomStatus `json:"derived"`
	TenantID  *string    `json:"tenant_id,omitempty"`
}

// FindDrift compares persisted room status and tenant back-reference with the projection.
// For rented rooms TenantID is the first tenant referencing the room.
func FindDrift(rooms []Room, tenants []Tenant) []OccupancyDrift {
	firstTenant := make(map[string]string, len(tenants))
	for _, t := range tenants {
		if _, ok := firstTenant[t.RoomNumber]; !ok {
			firstTenant[t.RoomNumber] = t.ID
		}
	}

	var drift []OccupancyDrift
	for _, room := range rooms {
		derived := RoomAvailable
		var tenantID *string
		if id, ok := firstTenant[room.Name]; ok {
			derived = RoomRented
			tenantID = &id
		}
		if room.Status == derived && sameTenant(room.TenantID, tenantID) {
			continue
		}
		drift = append(drift, OccupancyDrift{
			RoomID:    room.ID,
			RoomName:  room.Name,
			Persisted: room.Status,
			Derived:   derived,
			TenantID:  tenantID,
		})
	}
	return drift
}

func sameTenant(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
