package models

// USSDRequest is the callback payload sent by the USSD gateway.
type USSDRequest struct {
	SessionID   string `json:"sessionId" form:"sessionId"`
	ServiceCode string `json:"serviceCode" form:"serviceCode"`
	PhoneNumber string `json:"phoneNumber" form:"phoneNumber"`
	Text        string `json:"text" form:"text"`
}

// SMSResult is what the SMS provider reported for one send.
type SMSResult struct {
	Recipient string `json:"recipient"`
	Status    string `json:"status"`
	MessageID string `json:"message_id"`
	Cost      string `json:"cost"`
	Stubbed   bool   `json:"stubbed"`
}
