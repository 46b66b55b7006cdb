package postgres

import (
	"database/sql"
	"errors"

	"roomstayAdmin/internal/models"
	"roomstayAdmin/internal/storage"
)

const walletColumns = `id, user_id, role, amount, updated_at`

func scanWallet(row interface{ Scan(...any) error }) (models.Wallet, error) {
	var wallet models.Wallet
	err := row.Scan(&wallet.Id, &wallet.UserId, &wallet.Role, &wallet.Amount, &wallet.UpdatedAt)

	return wallet, err
}

func (s *Storage) GetAllWallets() ([]models.Wallet, error) {
	rows, err := s.Db.Query(`SELECT ` + walletColumns + ` FROM wallets ORDER BY updated_at DESC`)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var wallets []models.Wallet

	for rows.Next() {
		wallet, err := scanWallet(rows)
		if err != nil {
			return nil, err
		}

		wallets = append(wallets, wallet)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	names := make(map[string]string)

	for i := range wallets {
		name, seen := names[wallets[i].UserId]
		if !seen {
			holder, err := s.GetUserById(wallets[i].UserId)
			if err != nil {
				name = models.UnknownHolder
			} else {
				name = holder.DisplayName()
			}
			names[wallets[i].UserId] = name
		}

		wallets[i].HolderName = name
	}

	return wallets, nil
}

func (s *Storage) GetWalletById(id string) (models.Wallet, error) {
	wallet, err := scanWallet(s.Db.QueryRow(`SELECT `+walletColumns+` FROM wallets WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return wallet, storage.ErrNotFound
	}

	if err != nil {
		return wallet, err
	}

	holder, err := s.GetUserById(wallet.UserId)
	if err != nil {
		wallet.HolderName = models.UnknownHolder
		return wallet, nil
	}

	wallet.HolderName = holder.DisplayName()

	return wallet, nil
}

func (s *Storage) GetWithdrawalsByWalletId(walletId string) ([]models.Withdrawal, error) {
	rows, err := s.Db.Query(`SELECT id, wallet_id, amount, service_fee, paymongo_fee, net_amount, status, method, created_at
	FROM withdrawals WHERE wallet_id = $1 ORDER BY created_at DESC`, walletId)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var withdrawals []models.Withdrawal

	for rows.Next() {
		var w models.Withdrawal

		if err := rows.Scan(&w.Id, &w.WalletId, &w.Amount, &w.ServiceFee, &w.PaymongoFee,
			&w.NetAmount, &w.Status, &w.Method, &w.CreatedAt); err != nil {
			return nil, err
		}

		withdrawals = append(withdrawals, w)
	}

	return withdrawals, rows.Err()
}

// CreateWithdrawal deducts the (negative) withdrawal amount from the wallet
// and appends the record in one transaction. The deduction is conditional on
// the balance still covering it, so a concurrent withdrawal loses cleanly
// instead of driving the balance negative.
func (s *Storage) CreateWithdrawal(withdrawal models.Withdrawal) (models.Withdrawal, error) {
	tx, err := s.Db.Begin()
	if err != nil {
		return withdrawal, err
	}

	defer tx.Rollback()

	debit := -withdrawal.Amount

	result, err := tx.Exec(`UPDATE wallets SET amount = amount - $1, updated_at = NOW() WHERE id = $2 AND amount >= $1`,
		debit, withdrawal.WalletId)
	if err != nil {
		return withdrawal, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return withdrawal, err
	}

	if affected == 0 {
		return withdrawal, storage.ErrInsufficientFunds
	}

	err = tx.QueryRow(`INSERT INTO withdrawals (id, wallet_id, amount, service_fee, paymongo_fee, net_amount, status, method, created_at)
	VALUES($1, $2, $3, $4, $5, $6, $7, $8, NOW()) RETURNING created_at`,
		withdrawal.Id, withdrawal.WalletId, withdrawal.Amount, withdrawal.ServiceFee, withdrawal.PaymongoFee,
		withdrawal.NetAmount, withdrawal.Status, withdrawal.Method).Scan(&withdrawal.CreatedAt)
	if err != nil {
		return withdrawal, err
	}

	return withdrawal, tx.Commit()
}

func (s *Storage) CreateWallet(wallet models.Wallet) (models.Wallet, error) {
	err := s.Db.QueryRow(`INSERT INTO wallets (id, user_id, role, amount, updated_at)
	VALUES($1, $2, $3, $4, NOW()) RETURNING updated_at`,
		wallet.Id, wallet.UserId, wallet.Role, wallet.Amount).Scan(&wallet.UpdatedAt)

	return wallet, err
}
