package repositories

import (
	"time"

	"github.com/google/uuid"

	"renti/internal/models"
)

// Dataset is the full set of mock records the dashboard starts with.
type Dataset struct {
	Tenants     []models.Tenant
	Rooms       []models.Room
	Maintenance []models.MaintenanceRequest
	Leases      []models.Lease
	Payments    []models.Payment
	Activity    []models.Activity
	Settings    models.Settings
}

// SeedDataset builds the mock data relative to now so that due dates,
// overdue payments and lease expiries stay meaningful whenever it is loaded.
func SeedDataset(now time.Time) Dataset {
	today := models.DateOf(now)
	day := func(offset int) models.Date {
		return models.DateOf(today.AddDate(0, 0, offset))
	}

	tenants := []models.Tenant{
		{ID: 1, Name: "Alice Kipchoge", Phone: "+254 712 345 678", Email: "alice@renti.com", Room: "1A", Rent: 45000, Status: models.PaymentStatusPaid, LastPayment: day(-4), MoveInDate: models.NewDate(2024, time.January, 15), LeaseExpiry: day(200)},
		{ID: 2, Name: "Bob Kamau", Phone: "+254 723 456 789", Email: "bob@renti.com", Room: "1B", Rent: 45000, Status: models.PaymentStatusDue, LastPayment: day(-34), MoveInDate: models.NewDate(2023, time.March, 1), LeaseExpiry: day(5)},
		{ID: 3, Name: "Carol Kipchoge", Phone: "+254 734 567 890", Email: "carol@renti.com", Room: "2B", Rent: 50000, Status: models.PaymentStatusPaid, LastPayment: day(-6), MoveInDate: models.NewDate(2024, time.June, 10), LeaseExpiry: day(120)},
		{ID: 4, Name: "David Kipchoge", Phone: "+254 745 678 901", Email: "david@renti.com", Room: "3A", Rent: 48000, Status: models.PaymentStatusOverdue, LastPayment: day(-55), MoveInDate: models.NewDate(2024, time.February, 1), LeaseExpiry: day(-10)},
		{ID: 5, Name: "Emma Kipchoge", Phone: "+254 756 789 012", Email: "emma@renti.com", Room: "3B", Rent: 40000, Status: models.PaymentStatusPaid, LastPayment: day(-5), MoveInDate: models.NewDate(2024, time.August, 1), LeaseExpiry: day(300)},
		{ID: 6, Name: "Frank Kipchoge", Phone: "+254 767 890 123", Email: "frank@renti.com", Room: "4A", Rent: 52000, Status: models.PaymentStatusDue, LastPayment: day(-40), MoveInDate: models.NewDate(2023, time.November, 1), LeaseExpiry: day(60)},
	}

	rooms := []models.Room{
		{ID: 1, Number: "1A", Floor: "1", Tenant: "Alice Kipchoge", Status: models.RoomStatusOccupied, Rent: 45000},
		{ID: 2, Number: "1B", Floor: "1", Tenant: "Bob Kamau", Status: models.RoomStatusOccupied, Rent: 45000},
		{ID: 3, Number: "2A", Floor: "2", Tenant: models.VacantTenantLabel, Status: models.RoomStatusVacant, Rent: 50000},
		{ID: 4, Number: "2B", Floor: "2", Tenant: "Carol Kipchoge", Status: models.RoomStatusOccupied, Rent: 50000},
		{ID: 5, Number: "3A", Floor: "3", Tenant: "David Kipchoge", Status: models.RoomStatusOccupied, Rent: 48000},
		{ID: 6, Number: "3B", Floor: "3", Tenant: "Emma Kipchoge", Status: models.RoomStatusOccupied, Rent: 40000},
		{ID: 7, Number: "4A", Floor: "4", Tenant: "Frank Kipchoge", Status: models.RoomStatusOccupied, Rent: 52000},
		{ID: 8, Number: "4B", Floor: "4", Tenant: models.VacantTenantLabel, Status: models.RoomStatusVacant, Rent: 52000},
	}

	maintenance := []models.MaintenanceRequest{
		{ID: 1, Code: models.MaintenanceCode(1), Tenant: "Alice Kipchoge", Room: "1A", Issue: "Leaking tap in bathroom", Type: models.MaintenanceTypePlumbing, Priority: models.PriorityHigh, Status: models.MaintenanceStatusInProgress, SubmittedDate: day(-3)},
		{ID: 2, Code: models.MaintenanceCode(2), Tenant: "Carol Kipchoge", Room: "2B", Issue: "Door lock not working", Type: models.MaintenanceTypeOther, Priority: models.PriorityCritical, Status: models.MaintenanceStatusPending, SubmittedDate: day(-1)},
		{ID: 3, Code: models.MaintenanceCode(3), Tenant: "Bob Kamau", Room: "1B", Issue: "Paint touch-up needed", Type: models.MaintenanceTypeOther, Priority: models.PriorityLow, Status: models.MaintenanceStatusPending, SubmittedDate: day(-8)},
		{ID: 4, Code: models.MaintenanceCode(4), Tenant: "David Kipchoge", Room: "3A", Issue: "Electrical outlet not working", Type: models.MaintenanceTypeElectrical, Priority: models.PriorityHigh, Status: models.MaintenanceStatusCompleted, SubmittedDate: day(-13)},
	}

	leases := []models.Lease{
		{ID: 1, Tenant: "Alice Kipchoge", Room: "1A", StartDate: models.NewDate(2024, time.January, 15), EndDate: tenants[0].LeaseExpiry, Rent: 45000},
		{ID: 2, Tenant: "Bob Kamau", Room: "1B", StartDate: models.NewDate(2023, time.March, 1), EndDate: tenants[1].LeaseExpiry, Rent: 45000},
		{ID: 3, Tenant: "Carol Kipchoge", Room: "2B", StartDate: models.NewDate(2024, time.June, 10), EndDate: tenants[2].LeaseExpiry, Rent: 50000},
		{ID: 4, Tenant: "David Kipchoge", Room: "3A", StartDate: models.NewDate(2024, time.February, 1), EndDate: tenants[3].LeaseExpiry, Rent: 48000},
	}

	payments := []models.Payment{
		{ID: 1, Tenant: "Alice Kipchoge", Room: "1A", Amount: 45000, DueDate: day(-2), Status: models.PaymentRecordPaid, PaymentDate: day(-4), Method: models.PaymentMethodMpesa},
		{ID: 2, Tenant: "Bob Kamau", Room: "1B", Amount: 45000, DueDate: day(-2), Status: models.PaymentRecordPaid, PaymentDate: day(-2), Method: models.PaymentMethodBankTransfer},
		{ID: 3, Tenant: "Carol Kipchoge", Room: "2B", Amount: 50000, DueDate: day(-2), Status: models.PaymentRecordPending},
		{ID: 4, Tenant: "David Kipchoge", Room: "3A", Amount: 48000, DueDate: day(-25), Status: models.PaymentRecordOverdue},
		{ID: 5, Tenant: "Frank Kipchoge", Room: "4A", Amount: 52000, DueDate: day(-5), Status: models.PaymentRecordOverdue},
	}

	activity := []models.Activity{
		{ID: uuid.New(), Type: models.ActivityPayment, Title: "Payment Received", Description: "KES 45,000 from Alice Kipchoge", Timestamp: now.Add(-2 * time.Hour)},
		{ID: uuid.New(), Type: models.ActivityMaintenance, Title: "Maintenance Request", Description: "Leaking tap reported by Bob Kamau", Timestamp: now.Add(-26 * time.Hour)},
		{ID: uuid.New(), Type: models.ActivityLease, Title: "Lease Updated", Description: "Lease agreement renewed for Carol Kipchoge", Timestamp: now.Add(-50 * time.Hour)},
		{ID: uuid.New(), Type: models.ActivityPayment, Title: "Payment Received", Description: "KES 48,000 from David Kipchoge", Timestamp: now.Add(-74 * time.Hour)},
	}

	return Dataset{
		Tenants:     tenants,
		Rooms:       rooms,
		Maintenance: maintenance,
		Leases:      leases,
		Payments:    payments,
		Activity:    activity,
		Settings: models.Settings{
			Profile:       models.ProfileSettings{Name: "Frank Kipchoge", Email: "frank@renti.com"},
			Property:      models.PropertySettings{Name: "Renti Apartments", Address: "123 Main St, Nairobi"},
			Payment:       models.PaymentSettings{Method: "Mpesa", Account: "123456"},
			Notifications: true,
		},
	}
}

// Repositories groups every collection the dashboard works on.
type Repositories struct {
	Tenants       TenantRepository
	Rooms         RoomRepository
	Maintenance   MaintenanceRepository
	Leases        LeaseRepository
	Payments      PaymentRepository
	Activity      ActivityRepository
	Settings      SettingsRepository
	Conversations ConversationRepository
}

func NewRepositories(data Dataset) *Repositories {
	return &Repositories{
		Tenants:       NewTenantRepository(data.Tenants),
		Rooms:         NewRoomRepository(data.Rooms),
		Maintenance:   NewMaintenanceRepository(data.Maintenance),
		Leases:        NewLeaseRepository(data.Leases),
		Payments:      NewPaymentRepository(data.Payments),
		Activity:      NewActivityRepository(data.Activity),
		Settings:      NewSettingsRepository(data.Settings),
		Conversations: NewConversationRepository(),
	}
}

// Reload discards every change and loads data, like a page reload does.
func (r *Repositories) Reload(data Dataset) {
	r.Tenants.Load(data.Tenants)
	r.Rooms.Load(data.Rooms)
	r.Maintenance.Load(data.Maintenance)
	r.Leases.Load(data.Leases)
	r.Payments.Load(data.Payments)
	r.Activity.Load(data.Activity)
	r.Settings.Load(data.Settings)
	r.Conversations.Clear()
}
