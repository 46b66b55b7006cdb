package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Roles and the status domains that depend on them. A seeker cycles between
// searching and booked, an owner between unverified and verified; either can
// be suspended by an admin.
const (
	RoleSeeker = `seeker`
	RoleOwner  = `owner`
	RoleAdmin  = `admin`

	SeekerSearching = `searching`
	SeekerBooked    = `booked`

	OwnerUnverified = `unverified`
	OwnerVerified   = `verified`

	UserSuspended = `suspended`
)

const (
	PropertyPending  = `pending`
	PropertyVerified = `verified`
	PropertyRejected = `rejected`
)

const (
	RoomPending  = `pending`
	RoomReverify = `reverify`
	RoomVerified = `verified`
	RoomRejected = `rejected`
)

const (
	TransactionPending   = `pending`
	TransactionSucceeded = `succeeded`
	TransactionFailed    = `failed`
)

const (
	WithdrawalCompleted = `completed`
	BookingBooked       = `booked`
)

// Fallback labels used when a denormalized foreign id does not resolve.
const (
	UnknownOwner  = `Unknown Owner`
	UnknownSeeker = `Unknown Seeker`
	UnknownHolder = `Unknown Wallet Holder`
)

// ErrMalformedRecord marks documents that fail validation at the store
// boundary. Callers match it with errors.Is.
var ErrMalformedRecord = errors.New(`malformed record`)

func malformed(entity, id, reason string) error {
	return fmt.Errorf(`%w: %s %q: %s`, ErrMalformedRecord, entity, id, reason)
}

type AuthorizationToken struct {
	Token string `json:"token"`
}

// CustomClaims carries the admin session. Elevated is set only by a fresh
// password re-authentication and unlocks edits to verified properties.
type CustomClaims struct {
	UserId   string `json:"user_id"`
	Role     string `json:"role"`
	Elevated bool   `json:"elevated"`
	jwt.RegisteredClaims
}

// Credential is the auth provider record. Its id always equals the id of the
// matching user document; the delete cascade relies on that.
type Credential struct {
	Id           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

type User struct {
	Id              string    `json:"id"`
	Email           string    `json:"email"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Role            string    `json:"role"`
	Status          string    `json:"status"`
	DateOfBirth     string    `json:"date_of_birth"`
	Address         string    `json:"address"`
	PhoneNumber     string    `json:"phone_number"`
	ProfileImageUrl string    `json:"profile_image_url"`
	CreatedAt       time.Time `json:"created_at"`
}

func (u User) DisplayName() string {
	return u.FirstName + ` ` + u.LastName
}

func (u User) Validate() error {
	if u.Id == `` {
		return malformed(`user`, u.Id, `missing id`)
	}
	if u.Email == `` {
		return malformed(`user`, u.Id, `missing email`)
	}
	switch u.Role {
	case RoleSeeker:
		if u.Status != SeekerSearching && u.Status != SeekerBooked && u.Status != UserSuspended {
			return malformed(`user`, u.Id, `invalid seeker status `+u.Status)
		}
	case RoleOwner:
		if u.Status != OwnerUnverified && u.Status != OwnerVerified && u.Status != UserSuspended {
			return malformed(`user`, u.Id, `invalid owner status `+u.Status)
		}
	case RoleAdmin:
		// admins carry no meaningful status
	default:
		return malformed(`user`, u.Id, `unknown role `+u.Role)
	}
	return nil
}

type Property struct {
	Id                   string          `json:"id"`
	OwnerId              string          `json:"owner_id"`
	OwnerName            string          `json:"owner_name"`
	Name                 string          `json:"name"`
	Address              string          `json:"address"`
	Lat                  float64         `json:"lat"`
	Lng                  float64         `json:"lng"`
	Status               string          `json:"status"`
	VerificationData     json.RawMessage `json:"verification_data,omitempty"`
	VerificationSchedule *time.Time      `json:"verification_schedule,omitempty"`
	DateVerified         *time.Time      `json:"date_verified,omitempty"`
	VerificationSheetUrl string          `json:"verification_sheet_url,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
}

func (p Property) Validate() error {
	if p.Id == `` {
		return malformed(`property`, p.Id, `missing id`)
	}
	if p.OwnerId == `` {
		return malformed(`property`, p.Id, `missing owner id`)
	}
	switch p.Status {
	case PropertyPending, PropertyVerified, PropertyRejected:
		return nil
	}
	return malformed(`property`, p.Id, `unknown status `+p.Status)
}

type Room struct {
	Id                   string     `json:"id"`
	PropertyId           string     `json:"property_id"`
	Name                 string     `json:"name"`
	Price                int64      `json:"price"`
	Capacity             int        `json:"capacity"`
	Amenities            []string   `json:"amenities"`
	Images               []string   `json:"images"`
	VerificationStatus   string     `json:"verification_status"`
	VerificationSchedule *time.Time `json:"verification_schedule,omitempty"`
	DateVerified         *time.Time `json:"date_verified,omitempty"`
	SeekerId             string     `json:"seeker_id,omitempty"`
}

func (r Room) Validate() error {
	if r.Id == `` || r.PropertyId == `` {
		return malformed(`room`, r.Id, `missing id`)
	}
	switch r.VerificationStatus {
	case RoomPending, RoomReverify, RoomVerified, RoomRejected:
		return nil
	}
	return malformed(`room`, r.Id, `unknown verification status `+r.VerificationStatus)
}

type Booking struct {
	Id       string `json:"id"`
	SeekerId string `json:"seeker_id"`
	RoomId   string `json:"room_id"`
	Status   string `json:"status"`
}

// Monetary fields are integers in minor currency units (centavos).
type Transaction struct {
	Id          string    `json:"id"`
	PayerId     string    `json:"payer_id"`
	PayerName   string    `json:"payer_name"`
	OwnerId     string    `json:"owner_id"`
	OwnerName   string    `json:"owner_name"`
	Amount      int64     `json:"amount"`
	Commission  int64     `json:"commission"`
	PaymongoFee int64     `json:"paymongo_fee"`
	TotalAmount int64     `json:"total_amount"`
	Status      string    `json:"status"`
	PaymentType string    `json:"payment_type"`
	CreatedAt   time.Time `json:"created_at"`
}

type Wallet struct {
	Id         string    `json:"id"`
	UserId     string    `json:"user_id"`
	HolderName string    `json:"holder_name"`
	Role       string    `json:"role"`
	Amount     int64     `json:"amount"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Withdrawal amounts are stored negative; NetAmount is what the owner
// actually receives after fees.
type Withdrawal struct {
	Id          string    `json:"id"`
	WalletId    string    `json:"wallet_id"`
	Amount      int64     `json:"amount"`
	ServiceFee  int64     `json:"service_fee"`
	PaymongoFee int64     `json:"paymongo_fee"`
	NetAmount   int64     `json:"net_amount"`
	Status      string    `json:"status"`
	Method      string    `json:"method"`
	CreatedAt   time.Time `json:"created_at"`
}

type Feedback struct {
	Id          string    `json:"id"`
	PropertyId  string    `json:"property_id"`
	SeekerId    string    `json:"seeker_id"`
	RoomName    string    `json:"room_name"`
	Rating      int       `json:"rating"`
	Description string    `json:"description"`
	Hidden      bool      `json:"hidden"`
	CreatedAt   time.Time `json:"created_at"`
}

type SystemLog struct {
	Id        string    `json:"id"`
	Action    string    `json:"action"`
	ActorId   string    `json:"actor_id"`
	TargetId  string    `json:"target_id"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}
