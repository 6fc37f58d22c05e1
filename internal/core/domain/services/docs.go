// Package services contains stateless domain services for the booking lifecycle.
//
// ReminderComposer is the pure half of the notification flow: it maps a booking
// and a reminder stage onto the message that should reach the technician, and
// composes the customer notice sent when a no-show recovery re-broadcasts a
// booking. Delivery across channels is owned by the application layer.
package services
