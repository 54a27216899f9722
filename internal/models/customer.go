package models

import (
	"time"
)

// Customer is the tenant boundary. All devices and telemetry are scoped to
// exactly one customer.
type Customer struct {
	CustomerID string `gorm:"primaryKey"`
	Name       string `gorm:"not null"`
	CreatedAt  time.Time
	Devices    []Device `gorm:"foreignKey:CustomerID;references:CustomerID;constraint:OnDelete:CASCADE"`
}
