package storage

import (
	"errors"
	"time"

	"roomstayAdmin/internal/models"
)

var (
	ErrNotFound          = errors.New(`record not found`)
	ErrInsufficientFunds = errors.New(`insufficient wallet balance`)
)

// Database is the document store seen through one repository per entity.
// Listing calls denormalize display names themselves; an id that does not
// resolve yields the fixed fallback label instead of an error.
type Database interface {
	// users
	GetAllUsers() ([]models.User, error)
	GetUserById(id string) (models.User, error)
	GetCredentialByEmail(email string) (models.Credential, error)
	UpdateUserStatus(id string, status string) error
	// DeleteUser removes the user document and, in the same transaction,
	// the auth credential sharing its id.
	DeleteUser(id string) error

	// properties
	GetAllProperties() ([]models.Property, error)
	GetPropertyById(id string) (models.Property, error)
	UpdatePropertyStatus(id string, status string, dateVerified *time.Time) error
	SchedulePropertyVerification(id string, date time.Time) error
	UpdatePropertyDetails(id string, name string, address string, lat float64, lng float64) error
	CountPendingProperties() (int, error)

	// rooms
	GetRoomsByPropertyId(propertyId string) ([]models.Room, error)
	GetRoomById(id string) (models.Room, error)
	UpdateRoomStatus(id string, status string, dateVerified *time.Time) error
	ScheduleRoomVerification(id string, date time.Time) error
	ScheduleAllRoomVerifications(propertyId string, date time.Time) (int, error)

	// wallets
	GetAllWallets() ([]models.Wallet, error)
	GetWalletById(id string) (models.Wallet, error)
	GetWithdrawalsByWalletId(walletId string) ([]models.Withdrawal, error)
	// CreateWithdrawal deducts the withdrawal amount from the wallet and
	// appends the record; it fails with ErrInsufficientFunds when the
	// balance no longer covers the amount at write time.
	CreateWithdrawal(withdrawal models.Withdrawal) (models.Withdrawal, error)

	// transactions
	GetAllTransactions() ([]models.Transaction, error)

	// feedbacks
	GetAllFeedbacks() ([]models.Feedback, error)
	SetFeedbackHidden(id string, hidden bool) error

	// system logs
	AppendSystemLog(entry models.SystemLog) error
	GetRecentSystemLogs(limit int) ([]models.SystemLog, error)

	// maintenance, used by the adminctl commands
	CreateUser(user models.User) (models.User, error)
	CreateCredential(credential models.Credential) error
	CreateWallet(wallet models.Wallet) (models.Wallet, error)
	DeleteUsersByEmailDomain(domain string) (int, error)
	CountBookedBookings(seekerId string) (int, error)
	PruneOrphanCredentials() (int, error)
}

type Cache interface {
	GetProperties() ([]byte, error)
	PutProperties(properties []models.Property) error
	InvalidateProperties()
}

// Publisher pushes state changes to the realtime streams.
type Publisher interface {
	PublishPendingCount(count int) error
	PublishSystemLog(entry models.SystemLog) error
}
