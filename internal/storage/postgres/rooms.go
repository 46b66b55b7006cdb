package postgres

import (
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"roomstayAdmin/internal/models"
	"roomstayAdmin/internal/storage"
	"roomstayAdmin/internal/verification"
)

const roomColumns = `id, property_id, name, price, capacity, amenities, images, verification_status, verification_schedule, date_verified, seeker_id`

func scanRoom(row interface{ Scan(...any) error }) (models.Room, error) {
	var room models.Room
	var seekerId sql.NullString

	err := row.Scan(&room.Id, &room.PropertyId, &room.Name, &room.Price, &room.Capacity,
		pq.Array(&room.Amenities), pq.Array(&room.Images), &room.VerificationStatus,
		&room.VerificationSchedule, &room.DateVerified, &seekerId)
	if err != nil {
		return room, err
	}

	room.SeekerId = seekerId.String

	return room, room.Validate()
}

func (s *Storage) GetRoomsByPropertyId(propertyId string) ([]models.Room, error) {
	rows, err := s.Db.Query(`SELECT `+roomColumns+` FROM rooms WHERE property_id = $1 ORDER BY name`, propertyId)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var rooms []models.Room

	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}

		rooms = append(rooms, room)
	}

	return rooms, rows.Err()
}

func (s *Storage) GetRoomById(id string) (models.Room, error) {
	room, err := scanRoom(s.Db.QueryRow(`SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return room, storage.ErrNotFound
	}

	return room, err
}

func (s *Storage) UpdateRoomStatus(id string, status string, dateVerified *time.Time) error {
	result, err := s.Db.Exec(`UPDATE rooms SET verification_status = $1, date_verified = COALESCE($2, date_verified) WHERE id = $3`,
		status, dateVerified, id)
	if err != nil {
		return err
	}

	return requireRow(result)
}

// ScheduleRoomVerification stamps the visit date and resets the room to
// pending, whatever its current status.
func (s *Storage) ScheduleRoomVerification(id string, date time.Time) error {
	result, err := s.Db.Exec(`UPDATE rooms SET verification_schedule = $1, verification_status = $2 WHERE id = $3`,
		date, verification.ScheduleRoomStatus(``), id)
	if err != nil {
		return err
	}

	return requireRow(result)
}

// ScheduleAllRoomVerifications applies one schedule to every room of the
// property still awaiting a visit; other rooms are left untouched. Returns
// how many rooms were scheduled.
func (s *Storage) ScheduleAllRoomVerifications(propertyId string, date time.Time) (int, error) {
	result, err := s.Db.Exec(`UPDATE rooms SET verification_schedule = $1 WHERE property_id = $2 AND verification_status = ANY($3)`,
		date, propertyId, pq.Array(verification.BulkScheduleStatuses))
	if err != nil {
		return 0, err
	}

	scheduled, err := result.RowsAffected()

	return int(scheduled), err
}
