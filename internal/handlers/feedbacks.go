package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"roomstayAdmin/internal/storage"
)

func GetAllFeedbacksHandler(db storage.Database) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		feedbacks, err := db.GetAllFeedbacks()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondJSON(w, feedbacks)
	})
}

// SetFeedbackHiddenHandler moderates a feedback in or out of public view.
func SetFeedbackHiddenHandler(db storage.Database, pub storage.Publisher, hidden bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)[`id`]

		if err := db.SetFeedbackHidden(id, hidden); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, `Feedback not found`, http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		action := `feedback.unhide`
		if hidden {
			action = `feedback.hide`
		}

		recordAction(db, pub, r, action, id, ``)

		respondJSON(w, map[string]bool{`hidden`: hidden})
	})
}
