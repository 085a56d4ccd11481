package service

// Order statuses recognized by the notification templates.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusDelayed   = "delayed"
	StatusDelivered = "delivered"
)

// KnownStatuses lists the accepted status values in display order.
var KnownStatuses = []string{StatusPending, StatusConfirmed, StatusDelayed, StatusDelivered}

// KnownStatus reports whether s is one of the accepted status values.
func KnownStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDelayed, StatusDelivered:
		return true
	}
	return false
}

// MessageFor builds the SMS body for an order in the given status, addressed to
// recipientName. Total and deterministic: an unrecognized status yields the
// customer-support fallback regardless of name.
func MessageFor(status, recipientName string) string {
	switch status {
	case StatusPending:
		return "Hello, " + recipientName + ", thanks for ordering at OmNomNom Foods! We're still working on your order. Please be patient with us!"
	case StatusConfirmed:
		return "Hello, " + recipientName + ", thanks for ordering at OmNomNom Foods! We are now preparing your food with love and fresh ingredients and will keep you updated."
	case StatusDelayed:
		return "Hello, " + recipientName + ", sometimes good things take time! Unfortunately your order is slightly delayed but will be delivered as soon as possible."
	case StatusDelivered:
		return "Hello, " + recipientName + ", you can start setting the table! Our driver is on their way with your order! Bon appetit!"
	default:
		return "We can't find your order! Please call our customer support for assistance."
	}
}
