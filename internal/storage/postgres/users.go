package postgres

import (
	"database/sql"
	"errors"

	"roomstayAdmin/internal/models"
	"roomstayAdmin/internal/storage"
)

const userColumns = `id, email, first_name, last_name, role, status, date_of_birth, address, phone_number, profile_image_url, created_at`

func scanUser(row interface{ Scan(...any) error }) (models.User, error) {
	var user models.User
	err := row.Scan(&user.Id, &user.Email, &user.FirstName, &user.LastName, &user.Role, &user.Status,
		&user.DateOfBirth, &user.Address, &user.PhoneNumber, &user.ProfileImageUrl, &user.CreatedAt)
	if err != nil {
		return user, err
	}

	return user, user.Validate()
}

func (s *Storage) GetAllUsers() ([]models.User, error) {
	rows, err := s.Db.Query(`SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var users []models.User

	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}

		users = append(users, user)
	}

	return users, rows.Err()
}

func (s *Storage) GetUserById(id string) (models.User, error) {
	user, err := scanUser(s.Db.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return user, storage.ErrNotFound
	}

	return user, err
}

func (s *Storage) GetCredentialByEmail(email string) (models.Credential, error) {
	var credential models.Credential
	err := s.Db.QueryRow(`SELECT id, email, password_hash FROM credentials WHERE email = $1`, email).
		Scan(&credential.Id, &credential.Email, &credential.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return credential, storage.ErrNotFound
	}

	return credential, err
}

func (s *Storage) UpdateUserStatus(id string, status string) error {
	result, err := s.Db.Exec(`UPDATE users SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}

	return requireRow(result)
}

// DeleteUser removes the user document and its auth credential in one
// transaction. The credential row shares the user id, which is what the
// reactive delete trigger in the hosted setup relies on.
func (s *Storage) DeleteUser(id string) error {
	tx, err := s.Db.Begin()
	if err != nil {
		return err
	}

	defer tx.Rollback()

	result, err := tx.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if err := requireRow(result); err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM credentials WHERE id = $1`, id); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Storage) CreateUser(user models.User) (models.User, error) {
	if err := user.Validate(); err != nil {
		return user, err
	}

	query := `INSERT INTO users (` + userColumns + `)
	VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW()) RETURNING created_at`

	err := s.Db.QueryRow(query, user.Id, user.Email, user.FirstName, user.LastName, user.Role, user.Status,
		user.DateOfBirth, user.Address, user.PhoneNumber, user.ProfileImageUrl).Scan(&user.CreatedAt)

	return user, err
}

func (s *Storage) CreateCredential(credential models.Credential) error {
	_, err := s.Db.Exec(`INSERT INTO credentials (id, email, password_hash) VALUES($1, $2, $3)`,
		credential.Id, credential.Email, credential.PasswordHash)

	return err
}

func (s *Storage) DeleteUsersByEmailDomain(domain string) (int, error) {
	result, err := s.Db.Exec(`DELETE FROM credentials WHERE email LIKE '%@' || $1`, domain)
	if err != nil {
		return 0, err
	}

	if _, err := s.Db.Exec(`DELETE FROM wallets WHERE user_id IN (SELECT id FROM users WHERE email LIKE '%@' || $1)`, domain); err != nil {
		return 0, err
	}

	result, err = s.Db.Exec(`DELETE FROM users WHERE email LIKE '%@' || $1`, domain)
	if err != nil {
		return 0, err
	}

	deleted, err := result.RowsAffected()

	return int(deleted), err
}

func (s *Storage) CountBookedBookings(seekerId string) (int, error) {
	var count int
	err := s.Db.QueryRow(`SELECT COUNT(*) FROM bookings WHERE seeker_id = $1 AND status = $2`,
		seekerId, models.BookingBooked).Scan(&count)

	return count, err
}

// PruneOrphanCredentials deletes credentials whose user document is gone,
// the batch counterpart of the per-document delete cascade.
func (s *Storage) PruneOrphanCredentials() (int, error) {
	result, err := s.Db.Exec(`DELETE FROM credentials WHERE id NOT IN (SELECT id FROM users)`)
	if err != nil {
		return 0, err
	}

	pruned, err := result.RowsAffected()

	return int(pruned), err
}

func requireRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}
