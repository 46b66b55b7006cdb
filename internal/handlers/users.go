package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"roomstayAdmin/internal/storage"
)

func GetAllUsersHandler(db storage.Database) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		users, err := db.GetAllUsers()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondJSON(w, users)
	})
}

func GetUserHandler(db storage.Database) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := db.GetUserById(mux.Vars(r)[`id`])
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, `User not found`, http.StatusNotFound)
			return
		}

		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondJSON(w, user)
	})
}

type userStatusRequest struct {
	Status string `json:"status"`
}

func UpdateUserStatusHandler(db storage.Database, pub storage.Publisher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)[`id`]

		var request userStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		defer r.Body.Close()

		user, err := db.GetUserById(id)
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, `User not found`, http.StatusNotFound)
			return
		}

		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		// validate the new status against the user's role before writing
		user.Status = request.Status
		if err := user.Validate(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := db.UpdateUserStatus(id, request.Status); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		recordAction(db, pub, r, `user.status`, id, request.Status)

		respondJSON(w, user)
	})
}

// DeleteUserHandler removes the user document; the storage layer cascades to
// the auth credential with the same id.
func DeleteUserHandler(db storage.Database, pub storage.Publisher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)[`id`]

		if err := db.DeleteUser(id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, `User not found`, http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		recordAction(db, pub, r, `user.delete`, id, ``)

		respondJSON(w, map[string]string{`deleted`: id})
	})
}
