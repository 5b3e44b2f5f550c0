package models

type ProfileSettings struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PropertySettings struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type PaymentSettings struct {
	Method  string `json:"method"`
	Account string `json:"account"`
}

// Settings groups the four settings tabs.
type Settings struct {
	Profile       ProfileSettings  `json:"profile"`
	Property      PropertySettings `json:"property"`
	Payment       PaymentSettings  `json:"payment"`
	Notifications bool             `json:"notifications"`
}
