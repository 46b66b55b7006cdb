package postgres

import (
	"roomstayAdmin/internal/models"
)

func (s *Storage) GetAllFeedbacks() ([]models.Feedback, error) {
	rows, err := s.Db.Query(`SELECT id, property_id, seeker_id, room_name, rating, description, hidden, created_at
	FROM feedbacks ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var feedbacks []models.Feedback

	for rows.Next() {
		var f models.Feedback

		if err := rows.Scan(&f.Id, &f.PropertyId, &f.SeekerId, &f.RoomName, &f.Rating,
			&f.Description, &f.Hidden, &f.CreatedAt); err != nil {
			return nil, err
		}

		feedbacks = append(feedbacks, f)
	}

	return feedbacks, rows.Err()
}

func (s *Storage) SetFeedbackHidden(id string, hidden bool) error {
	result, err := s.Db.Exec(`UPDATE feedbacks SET hidden = $1 WHERE id = $2`, hidden, id)
	if err != nil {
		return err
	}

	return requireRow(result)
}
