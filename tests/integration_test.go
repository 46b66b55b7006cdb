package tests

import (
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomstayAdmin/internal/commands"
	"roomstayAdmin/internal/models"
	"roomstayAdmin/internal/storage/postgres"
)

// Seeds 15 demo seekers and owners, books a handful of seekers, runs the
// status fix and checks every seeker landed on the status their bookings
// imply. Needs a reachable test database; skipped otherwise.
func TestSeedAndFixStatus(t *testing.T) {
	if os.Getenv(`TABLES_SQL`) == `` {
		os.Setenv(`TABLES_SQL`, `../tables/createTables.sql`)
	}

	db, err := postgres.NewForTest()
	if err != nil {
		t.Skipf(`test database unavailable: %v`, err)
	}

	defer db.Db.Close()

	defer func() {
		db.Db.Exec(`DELETE FROM bookings WHERE seeker_id IN (SELECT id FROM users WHERE email LIKE '%@' || $1)`, commands.DemoDomain)
		db.DeleteUsersByEmailDomain(commands.DemoDomain)
	}()

	seeded, err := commands.SeedDemoAccounts(db, 15)
	require.NoError(t, err)
	assert.Equal(t, 30, seeded)

	users, err := db.GetAllUsers()
	require.NoError(t, err)

	var seekers []models.User
	for _, user := range users {
		if user.Role == models.RoleSeeker && strings.HasSuffix(user.Email, `@`+commands.DemoDomain) {
			seekers = append(seekers, user)
		}
	}
	require.Len(t, seekers, 15)

	// give the first five seekers an active booking and scramble some
	// statuses so the fix has something to correct
	booked := make(map[string]bool)

	for i, seeker := range seekers {
		if i < 5 {
			_, err := db.Db.Exec(`INSERT INTO bookings (id, seeker_id, room_id, status) VALUES($1, $2, $3, $4)`,
				uuid.NewString(), seeker.Id, uuid.NewString(), models.BookingBooked)
			require.NoError(t, err)
			booked[seeker.Id] = true
		}

		if i%2 == 0 {
			wrong := models.SeekerBooked
			if booked[seeker.Id] {
				wrong = models.SeekerSearching
			}
			require.NoError(t, db.UpdateUserStatus(seeker.Id, wrong))
		}
	}

	_, err = commands.FixSeekerStatuses(db)
	require.NoError(t, err)

	for _, seeker := range seekers {
		after, err := db.GetUserById(seeker.Id)
		require.NoError(t, err)

		expected := models.SeekerSearching
		if booked[seeker.Id] {
			expected = models.SeekerBooked
		}

		assert.Equal(t, expected, after.Status, `seeker %s`, seeker.Email)
	}
}

// Withdrawal against a live wallet: the conditional deduction refuses to
// overdraw even when the handler-level check is bypassed.
func TestWithdrawalDeduction(t *testing.T) {
	if os.Getenv(`TABLES_SQL`) == `` {
		os.Setenv(`TABLES_SQL`, `../tables/createTables.sql`)
	}

	db, err := postgres.NewForTest()
	if err != nil {
		t.Skipf(`test database unavailable: %v`, err)
	}

	defer db.Db.Close()

	walletId := uuid.NewString()

	defer db.Db.Exec(`DELETE FROM wallets WHERE id = $1`, walletId)

	_, err = db.CreateWallet(models.Wallet{Id: walletId, UserId: uuid.NewString(), Role: models.RoleOwner, Amount: 10000})
	require.NoError(t, err)

	// ₱50 off a ₱100.00 balance leaves exactly 5000 centavos
	_, err = db.CreateWithdrawal(models.Withdrawal{
		Id: uuid.NewString(), WalletId: walletId, Amount: -5000,
		NetAmount: 5000, Status: models.WithdrawalCompleted, Method: `gcash`,
	})
	require.NoError(t, err)

	wallet, err := db.GetWalletById(walletId)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), wallet.Amount)

	// a second withdrawal larger than the remainder must not go through
	_, err = db.CreateWithdrawal(models.Withdrawal{
		Id: uuid.NewString(), WalletId: walletId, Amount: -15000,
		NetAmount: 15000, Status: models.WithdrawalCompleted, Method: `gcash`,
	})
	assert.Error(t, err)

	wallet, err = db.GetWalletById(walletId)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), wallet.Amount)

	withdrawals, err := db.GetWithdrawalsByWalletId(walletId)
	require.NoError(t, err)
	assert.Len(t, withdrawals, 1)
	assert.Equal(t, int64(-5000), withdrawals[0].Amount)
}
