package domain

// NotificationStatusSent is the only status a delivered notification carries
const NotificationStatusSent = "SENT"

// Notification is one entry in the append-only notification log
type Notification struct {
	NotificationID string `json:"notificationId"`
	UserID         int    `json:"userId"`
	TransactionID  string `json:"transactionId"`
	Message        string `json:"message"`
	Status         string `json:"status"`
}
