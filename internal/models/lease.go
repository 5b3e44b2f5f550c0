package models

type Lease struct {
	ID        int    `json:"id"`
	Tenant    string `json:"tenant"`
	Room      string `json:"room"`
	StartDate Date   `json:"start_date"`
	EndDate   Date   `json:"end_date"`
	Rent      int64  `json:"rent"`
}

// LeaseView carries the expiry flags derived at read time.
type LeaseView struct {
	Lease
	ExpiringSoon bool `json:"expiring_soon"`
	Expired      bool `json:"expired"`
	DaysLeft     int  `json:"days_left"`
}
