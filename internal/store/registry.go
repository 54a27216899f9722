package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mstanic/telemetry-hub/internal/models"
)

// Registry operations: every ingest and query path checks customer/device
// existence here before touching telemetry rows.

func (s *Store) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer

	err := s.db.WithContext(ctx).Order("customer_id").Find(&customers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, nil
}

func (s *Store) GetCustomer(ctx context.Context, customerID string) (*models.Customer, error) {
	var customer models.Customer

	err := s.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("customer %s: %w", customerID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to look up customer %s: %w", customerID, err)
	}

	return &customer, nil
}

func (s *Store) CustomerExists(ctx context.Context, customerID string) (bool, error) {
	_, err := s.GetCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// ListDevices returns the customer's devices. A customer with no devices
// yields an empty slice; an unknown customer yields ErrNotFound.
func (s *Store) ListDevices(ctx context.Context, customerID string) ([]models.Device, error) {
	if _, err := s.GetCustomer(ctx, customerID); err != nil {
		return nil, err
	}

	var devices []models.Device

	err := s.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("device_id").
		Find(&devices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list devices for customer %s: %w", customerID, err)
	}

	return devices, nil
}

func (s *Store) GetDevice(ctx context.Context, customerID, deviceID string) (*models.Device, error) {
	var device models.Device

	err := s.db.WithContext(ctx).
		Where("customer_id = ? AND device_id = ?", customerID, deviceID).
		First(&device).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("device %s/%s: %w", customerID, deviceID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to look up device %s/%s: %w", customerID, deviceID, err)
	}

	return &device, nil
}

// CreateCustomer and CreateDevice serve provisioning and seeding. They are
// not exposed over HTTP.

func (s *Store) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	err := s.db.WithContext(ctx).Create(customer).Error
	if err != nil {
		return fmt.Errorf("failed to create customer %s: %w", customer.CustomerID, err)
	}

	return nil
}

func (s *Store) CreateDevice(ctx context.Context, device *models.Device) error {
	err := s.db.WithContext(ctx).Create(device).Error
	if err != nil {
		return fmt.Errorf("failed to create device %s/%s: %w", device.CustomerID, device.DeviceID, err)
	}

	return nil
}
