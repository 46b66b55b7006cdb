package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"roomstayAdmin/internal/storage"
	"roomstayAdmin/internal/verification"
)

func GetRoomsHandler(db storage.Database) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rooms, err := db.GetRoomsByPropertyId(mux.Vars(r)[`id`])
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondJSON(w, rooms)
	})
}

func roomTransitionHandler(db storage.Database, cache storage.Cache, pub storage.Publisher,
	action string, transition func(string) (string, error), stamp bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)[`id`]

		room, err := db.GetRoomById(id)
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, `Room not found`, http.StatusNotFound)
			return
		}

		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		next, err := transition(room.VerificationStatus)
		if err != nil {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}

		var dateVerified *time.Time
		if stamp {
			now := time.Now().UTC()
			dateVerified = &now
		}

		if err := db.UpdateRoomStatus(id, next, dateVerified); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		cache.InvalidateProperties()
		recordAction(db, pub, r, action, id, next)

		room.VerificationStatus = next
		if dateVerified != nil {
			room.DateVerified = dateVerified
		}

		respondJSON(w, room)
	})
}

func VerifyRoomHandler(db storage.Database, cache storage.Cache, pub storage.Publisher) http.Handler {
	return roomTransitionHandler(db, cache, pub, `room.verify`, verification.VerifyRoom, true)
}

func UnverifyRoomHandler(db storage.Database, cache storage.Cache, pub storage.Publisher) http.Handler {
	return roomTransitionHandler(db, cache, pub, `room.unverify`, verification.UnverifyRoom, false)
}

func RejectRoomHandler(db storage.Database, cache storage.Cache, pub storage.Publisher) http.Handler {
	return roomTransitionHandler(db, cache, pub, `room.reject`, verification.RejectRoom, false)
}

// ScheduleRoomHandler stamps a visit date on one room. The storage layer
// resets the room to pending as part of the same write, whatever its current
// status.
func ScheduleRoomHandler(db storage.Database, cache storage.Cache, pub storage.Publisher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)[`id`]

		date, err := parseScheduleDate(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := db.ScheduleRoomVerification(id, date); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, `Room not found`, http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		cache.InvalidateProperties()
		recordAction(db, pub, r, `room.schedule`, id, date.Format(time.RFC3339))

		respondJSON(w, map[string]string{`scheduled`: id})
	})
}
