package models

import "time"

// NotificationType categorises a notification.
type NotificationType string

const (
	NotificationAcademic  NotificationType = "academic"
	NotificationGrade     NotificationType = "grade"
	NotificationEmergency NotificationType = "emergency"
	NotificationReminder  NotificationType = "reminder"
	NotificationMaterial  NotificationType = "material"
)

// NotificationPriority orders notifications by urgency.
type NotificationPriority string

const (
	PriorityLow      NotificationPriority = "low"
	PriorityMedium   NotificationPriority = "medium"
	PriorityHigh     NotificationPriority = "high"
	PriorityCritical NotificationPriority = "critical"
)

// Notification is one entry in the in-memory notification collection.
// Only the Read flag mutates after creation.
type Notification struct {
	ID        string               `json:"id"`
	Type      NotificationType     `json:"type"`
	Priority  NotificationPriority `json:"priority"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	Timestamp time.Time            `json:"timestamp"`
	Read      bool                 `json:"read"`
}

var priorityColors = map[NotificationPriority]string{
	PriorityLow:      "success",
	PriorityMedium:   "info",
	PriorityHigh:     "warning",
	PriorityCritical: "destructive",
}

var typeIcons = map[NotificationType]string{
	NotificationAcademic:  "Calendar",
	NotificationGrade:     "Star",
	NotificationEmergency: "AlertTriangle",
	NotificationReminder:  "Clock",
	NotificationMaterial:  "FileText",
}

// PriorityColor maps a priority to its presentation color token.
func PriorityColor(p NotificationPriority) string {
	return priorityColors[p]
}

// TypeIcon maps a notification type to its presentation icon name.
func TypeIcon(t NotificationType) string {
	return typeIcons[t]
}

// ValidNotificationType reports whether t names a known type.
func ValidNotificationType(t NotificationType) bool {
	_, ok := typeIcons[t]
	return ok
}

// ValidNotificationPriority reports whether p names a known priority.
func ValidNotificationPriority(p NotificationPriority) bool {
	_, ok := priorityColors[p]
	return ok
}
