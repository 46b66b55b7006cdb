package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"roomstayAdmin/internal/models"
	"roomstayAdmin/internal/storage"
)

// FixStatusCmd recomputes every seeker's status from their bookings: at
// least one active booked booking means booked, otherwise searching.
// Suspended seekers are left alone.
func FixStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   `fix-status`,
		Short: `Recompute seeker statuses from bookings`,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := getDB()
			if err != nil {
				return err
			}

			fixed, err := FixSeekerStatuses(db)
			if err != nil {
				return err
			}

			fmt.Printf("Updated %d seekers\n", fixed)

			return nil
		},
	}
}

func FixSeekerStatuses(db storage.Database) (int, error) {
	users, err := db.GetAllUsers()
	if err != nil {
		return 0, err
	}

	fixed := 0

	for _, user := range users {
		if user.Role != models.RoleSeeker || user.Status == models.UserSuspended {
			continue
		}

		booked, err := db.CountBookedBookings(user.Id)
		if err != nil {
			return fixed, fmt.Errorf(`count bookings for %s: %w`, user.Id, err)
		}

		expected := models.SeekerSearching
		if booked > 0 {
			expected = models.SeekerBooked
		}

		if user.Status == expected {
			continue
		}

		if err := db.UpdateUserStatus(user.Id, expected); err != nil {
			return fixed, fmt.Errorf(`update %s: %w`, user.Id, err)
		}

		fixed++
	}

	return fixed, nil
}

func PruneCredentialsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   `prune-credentials`,
		Short: `Delete auth credentials whose user document is gone`,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := getDB()
			if err != nil {
				return err
			}

			pruned, err := db.PruneOrphanCredentials()
			if err != nil {
				return err
			}

			fmt.Printf("Pruned %d orphaned credentials\n", pruned)

			return nil
		},
	}
}
