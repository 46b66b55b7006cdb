package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"roomstayAdmin/internal/models"
	"roomstayAdmin/internal/storage"
	"roomstayAdmin/internal/storage/postgres"
)

// DemoDomain marks seeded accounts so unseed can find them again.
const DemoDomain = `demo.roomstay.ph`

const demoPassword = `roomstay-demo`

func getDB() (storage.Database, error) {
	return postgres.New()
}

func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   `seed`,
		Short: `Create demo seeker and owner accounts`,
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt(`count`)

			db, err := getDB()
			if err != nil {
				return err
			}

			seeded, err := SeedDemoAccounts(db, count)
			if err != nil {
				return err
			}

			fmt.Printf("Seeded %d demo accounts (password %q)\n", seeded, demoPassword)

			return nil
		},
	}

	cmd.Flags().Int(`count`, 15, `Number of accounts to create per role`)

	return cmd
}

// SeedDemoAccounts creates count seekers and count owners under the demo
// domain, returning how many accounts were created.
func SeedDemoAccounts(db storage.Database, count int) (int, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	seeded := 0

	for i := 1; i <= count; i++ {
		if err := seedUser(db, models.RoleSeeker, models.SeekerSearching, i, string(hash)); err != nil {
			return seeded, fmt.Errorf(`seed seeker %d: %w`, i, err)
		}
		seeded++

		if err := seedUser(db, models.RoleOwner, models.OwnerUnverified, i, string(hash)); err != nil {
			return seeded, fmt.Errorf(`seed owner %d: %w`, i, err)
		}
		seeded++
	}

	return seeded, nil
}

// seedUser creates a credential and a user document sharing one id; owners
// additionally get an empty wallet.
func seedUser(db storage.Database, role, status string, n int, passwordHash string) error {
	id := uuid.NewString()
	email := fmt.Sprintf(`%s%d@%s`, role, n, DemoDomain)

	if err := db.CreateCredential(models.Credential{Id: id, Email: email, PasswordHash: passwordHash}); err != nil {
		return err
	}

	user := models.User{
		Id:        id,
		Email:     email,
		FirstName: `Demo`,
		LastName:  fmt.Sprintf(`%s %d`, role, n),
		Role:      role,
		Status:    status,
	}

	if _, err := db.CreateUser(user); err != nil {
		return err
	}

	if role == models.RoleOwner {
		wallet := models.Wallet{Id: uuid.NewString(), UserId: id, Role: models.RoleOwner, Amount: 0}
		if _, err := db.CreateWallet(wallet); err != nil {
			return err
		}
	}

	return nil
}

func UnseedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   `unseed`,
		Short: `Delete all demo accounts`,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := getDB()
			if err != nil {
				return err
			}

			deleted, err := db.DeleteUsersByEmailDomain(DemoDomain)
			if err != nil {
				return err
			}

			fmt.Printf("Deleted %d demo accounts\n", deleted)

			return nil
		},
	}
}
