package models

import (
	"time"
)

// Device is identified by (CustomerID, DeviceID). Device IDs are only
// meaningful within their customer; two customers may reuse the same DeviceID.
type Device struct {
	CustomerID string `gorm:"primaryKey"`
	DeviceID   string `gorm:"primaryKey"`
	Label      string `gorm:"not null"`
	Location   string `gorm:"not null"`
	CreatedAt  time.Time
	Events     []TelemetryEvent `gorm:"foreignKey:CustomerID,DeviceID;references:CustomerID,DeviceID;constraint:OnDelete:CASCADE"`
}
