package postgres

import (
	"roomstayAdmin/internal/models"
)

func (s *Storage) AppendSystemLog(entry models.SystemLog) error {
	_, err := s.Db.Exec(`INSERT INTO system_logs (id, action, actor_id, target_id, detail, created_at)
	VALUES($1, $2, $3, $4, $5, NOW())`,
		entry.Id, entry.Action, entry.ActorId, entry.TargetId, entry.Detail)

	return err
}

func (s *Storage) GetRecentSystemLogs(limit int) ([]models.SystemLog, error) {
	rows, err := s.Db.Query(`SELECT id, action, actor_id, target_id, detail, created_at
	FROM system_logs ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var entries []models.SystemLog

	for rows.Next() {
		var entry models.SystemLog

		if err := rows.Scan(&entry.Id, &entry.Action, &entry.ActorId, &entry.TargetId,
			&entry.Detail, &entry.CreatedAt); err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
