package postgres

import (
	"database/sql"
	"errors"
	"time"

	"roomstayAdmin/internal/models"
	"roomstayAdmin/internal/storage"
)

const propertyColumns = `id, owner_id, name, address, lat, lng, status, verification_data, verification_schedule, date_verified, verification_sheet_url, created_at`

func scanProperty(row interface{ Scan(...any) error }) (models.Property, error) {
	var property models.Property
	var sheetUrl sql.NullString

	err := row.Scan(&property.Id, &property.OwnerId, &property.Name, &property.Address,
		&property.Lat, &property.Lng, &property.Status, &property.VerificationData,
		&property.VerificationSchedule, &property.DateVerified, &sheetUrl, &property.CreatedAt)
	if err != nil {
		return property, err
	}

	property.VerificationSheetUrl = sheetUrl.String

	return property, property.Validate()
}

// GetAllProperties lists every property with the owner's display name
// attached. Owners are resolved one point-read per unique owner id; an id
// that resolves to nothing yields the fixed fallback label.
func (s *Storage) GetAllProperties() ([]models.Property, error) {
	rows, err := s.Db.Query(`SELECT ` + propertyColumns + ` FROM properties ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var properties []models.Property

	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}

		properties = append(properties, property)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	resolveOwnerNames(properties, s.GetUserById)

	return properties, nil
}

// resolveOwnerNames deduplicates owner ids before looking each one up, then
// stamps every property with its owner's name or the fallback.
func resolveOwnerNames(properties []models.Property, lookup func(id string) (models.User, error)) {
	names := make(map[string]string)

	for _, property := range properties {
		if _, seen := names[property.OwnerId]; seen {
			continue
		}

		owner, err := lookup(property.OwnerId)
		if err != nil {
			names[property.OwnerId] = models.UnknownOwner
			continue
		}

		names[property.OwnerId] = owner.DisplayName()
	}

	for i := range properties {
		properties[i].OwnerName = names[properties[i].OwnerId]
	}
}

func (s *Storage) GetPropertyById(id string) (models.Property, error) {
	property, err := scanProperty(s.Db.QueryRow(`SELECT `+propertyColumns+` FROM properties WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return property, storage.ErrNotFound
	}

	if err != nil {
		return property, err
	}

	owner, err := s.GetUserById(property.OwnerId)
	if err != nil {
		property.OwnerName = models.UnknownOwner
		return property, nil
	}

	property.OwnerName = owner.DisplayName()

	return property, nil
}

func (s *Storage) UpdatePropertyStatus(id string, status string, dateVerified *time.Time) error {
	result, err := s.Db.Exec(`UPDATE properties SET status = $1, date_verified = COALESCE($2, date_verified) WHERE id = $3`,
		status, dateVerified, id)
	if err != nil {
		return err
	}

	return requireRow(result)
}

// SchedulePropertyVerification is pure metadata at the property level; the
// status is left alone.
func (s *Storage) SchedulePropertyVerification(id string, date time.Time) error {
	result, err := s.Db.Exec(`UPDATE properties SET verification_schedule = $1 WHERE id = $2`, date, id)
	if err != nil {
		return err
	}

	return requireRow(result)
}

func (s *Storage) UpdatePropertyDetails(id string, name string, address string, lat float64, lng float64) error {
	result, err := s.Db.Exec(`UPDATE properties SET name = $1, address = $2, lat = $3, lng = $4 WHERE id = $5`,
		name, address, lat, lng, id)
	if err != nil {
		return err
	}

	return requireRow(result)
}

func (s *Storage) CountPendingProperties() (int, error) {
	var count int
	err := s.Db.QueryRow(`SELECT COUNT(*) FROM properties WHERE status = $1`, models.PropertyPending).Scan(&count)

	return count, err
}
