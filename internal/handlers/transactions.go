package handlers

import (
	"net/http"

	"roomstayAdmin/internal/storage"
)

func GetAllTransactionsHandler(db storage.Database) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		transactions, err := db.GetAllTransactions()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondJSON(w, transactions)
	})
}
