// Package mocks provides testify mocks for the storage interfaces, used by
// the router tests.
package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"roomstayAdmin/internal/models"
)

type Database struct {
	mock.Mock
}

func (m *Database) GetAllUsers() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *Database) GetUserById(id string) (models.User, error) {
	args := m.Called(id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *Database) GetCredentialByEmail(email string) (models.Credential, error) {
	args := m.Called(email)
	return args.Get(0).(models.Credential), args.Error(1)
}

func (m *Database) UpdateUserStatus(id string, status string) error {
	return m.Called(id, status).Error(0)
}

func (m *Database) DeleteUser(id string) error {
	return m.Called(id).Error(0)
}

func (m *Database) GetAllProperties() ([]models.Property, error) {
	args := m.Called()
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *Database) GetPropertyById(id string) (models.Property, error) {
	args := m.Called(id)
	return args.Get(0).(models.Property), args.Error(1)
}

func (m *Database) UpdatePropertyStatus(id string, status string, dateVerified *time.Time) error {
	return m.Called(id, status, dateVerified).Error(0)
}

func (m *Database) SchedulePropertyVerification(id string, date time.Time) error {
	return m.Called(id, date).Error(0)
}

func (m *Database) UpdatePropertyDetails(id string, name string, address string, lat float64, lng float64) error {
	return m.Called(id, name, address, lat, lng).Error(0)
}

func (m *Database) CountPendingProperties() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *Database) GetRoomsByPropertyId(propertyId string) ([]models.Room, error) {
	args := m.Called(propertyId)
	return args.Get(0).([]models.Room), args.Error(1)
}

func (m *Database) GetRoomById(id string) (models.Room, error) {
	args := m.Called(id)
	return args.Get(0).(models.Room), args.Error(1)
}

func (m *Database) UpdateRoomStatus(id string, status string, dateVerified *time.Time) error {
	return m.Called(id, status, dateVerified).Error(0)
}

func (m *Database) ScheduleRoomVerification(id string, date time.Time) error {
	return m.Called(id, date).Error(0)
}

func (m *Database) ScheduleAllRoomVerifications(propertyId string, date time.Time) (int, error) {
	args := m.Called(propertyId, date)
	return args.Int(0), args.Error(1)
}

func (m *Database) GetAllWallets() ([]models.Wallet, error) {
	args := m.Called()
	return args.Get(0).([]models.Wallet), args.Error(1)
}

func (m *Database) GetWalletById(id string) (models.Wallet, error) {
	args := m.Called(id)
	return args.Get(0).(models.Wallet), args.Error(1)
}

func (m *Database) GetWithdrawalsByWalletId(walletId string) ([]models.Withdrawal, error) {
	args := m.Called(walletId)
	return args.Get(0).([]models.Withdrawal), args.Error(1)
}

func (m *Database) CreateWithdrawal(withdrawal models.Withdrawal) (models.Withdrawal, error) {
	args := m.Called(withdrawal)
	return args.Get(0).(models.Withdrawal), args.Error(1)
}

func (m *Database) GetAllTransactions() ([]models.Transaction, error) {
	args := m.Called()
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *Database) GetAllFeedbacks() ([]models.Feedback, error) {
	args := m.Called()
	return args.Get(0).([]models.Feedback), args.Error(1)
}

func (m *Database) SetFeedbackHidden(id string, hidden bool) error {
	return m.Called(id, hidden).Error(0)
}

func (m *Database) AppendSystemLog(entry models.SystemLog) error {
	return m.Called(entry).Error(0)
}

func (m *Database) GetRecentSystemLogs(limit int) ([]models.SystemLog, error) {
	args := m.Called(limit)
	return args.Get(0).([]models.SystemLog), args.Error(1)
}

func (m *Database) CreateUser(user models.User) (models.User, error) {
	args := m.Called(user)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *Database) CreateCredential(credential models.Credential) error {
	return m.Called(credential).Error(0)
}

func (m *Database) CreateWallet(wallet models.Wallet) (models.Wallet, error) {
	args := m.Called(wallet)
	return args.Get(0).(models.Wallet), args.Error(1)
}

func (m *Database) DeleteUsersByEmailDomain(domain string) (int, error) {
	args := m.Called(domain)
	return args.Int(0), args.Error(1)
}

func (m *Database) CountBookedBookings(seekerId string) (int, error) {
	args := m.Called(seekerId)
	return args.Int(0), args.Error(1)
}

func (m *Database) PruneOrphanCredentials() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

type Cache struct {
	mock.Mock
}

func (m *Cache) GetProperties() ([]byte, error) {
	args := m.Called()
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *Cache) PutProperties(properties []models.Property) error {
	return m.Called(properties).Error(0)
}

func (m *Cache) InvalidateProperties() {
	m.Called()
}

type Publisher struct {
	mock.Mock
}

func (m *Publisher) PublishPendingCount(count int) error {
	return m.Called(count).Error(0)
}

func (m *Publisher) PublishSystemLog(entry models.SystemLog) error {
	return m.Called(entry).Error(0)
}
