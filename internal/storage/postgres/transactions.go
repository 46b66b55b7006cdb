package postgres

import (
	"roomstayAdmin/internal/models"
)

// GetAllTransactions lists settlements with both parties' display names
// attached, resolved one point-read per unique id.
func (s *Storage) GetAllTransactions() ([]models.Transaction, error) {
	rows, err := s.Db.Query(`SELECT id, payer_id, owner_id, amount, commission, paymongo_fee, total_amount, status, payment_type, created_at
	FROM transactions ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var transactions []models.Transaction

	for rows.Next() {
		var t models.Transaction

		if err := rows.Scan(&t.Id, &t.PayerId, &t.OwnerId, &t.Amount, &t.Commission, &t.PaymongoFee,
			&t.TotalAmount, &t.Status, &t.PaymentType, &t.CreatedAt); err != nil {
			return nil, err
		}

		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	names := make(map[string]string)

	resolve := func(id, fallback string) string {
		if name, seen := names[id]; seen {
			return name
		}

		user, err := s.GetUserById(id)
		if err != nil {
			names[id] = fallback
		} else {
			names[id] = user.DisplayName()
		}

		return names[id]
	}

	for i := range transactions {
		transactions[i].PayerName = resolve(transactions[i].PayerId, models.UnknownSeeker)
		transactions[i].OwnerName = resolve(transactions[i].OwnerId, models.UnknownOwner)
	}

	return transactions, nil
}
