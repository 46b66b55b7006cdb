package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"roomstayAdmin/internal/models"
	"roomstayAdmin/internal/money"
	"roomstayAdmin/internal/storage"
)

func GetAllWalletsHandler(db storage.Database) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wallets, err := db.GetAllWallets()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondJSON(w, wallets)
	})
}

func GetWalletHandler(db storage.Database) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wallet, err := db.GetWalletById(mux.Vars(r)[`id`])
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, `Wallet not found`, http.StatusNotFound)
			return
		}

		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondJSON(w, wallet)
	})
}

func GetWithdrawalsHandler(db storage.Database) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		withdrawals, err := db.GetWithdrawalsByWalletId(mux.Vars(r)[`id`])
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondJSON(w, withdrawals)
	})
}

// Amounts arrive in major units (pesos) because that is what the admin
// types; everything is converted to centavos before any write.
type withdrawRequest struct {
	Amount      float64 `json:"amount"`
	ServiceFee  float64 `json:"service_fee"`
	PaymongoFee float64 `json:"paymongo_fee"`
	Method      string  `json:"method"`
}

// WithdrawHandler validates the request against the current balance, then
// lets the storage layer deduct and append in one step. The withdrawal is
// recorded with a negative amount and completes immediately; there is no
// pending state.
func WithdrawHandler(db storage.Database, pub storage.Publisher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		walletId := mux.Vars(r)[`id`]

		var request withdrawRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		defer r.Body.Close()

		if request.Amount <= 0 {
			http.Error(w, `Withdrawal amount must be greater than zero`, http.StatusBadRequest)
			return
		}

		if request.ServiceFee < 0 || request.PaymongoFee < 0 {
			http.Error(w, `Fees cannot be negative`, http.StatusBadRequest)
			return
		}

		amount := money.ToMinorUnits(request.Amount)
		serviceFee := money.ToMinorUnits(request.ServiceFee)
		paymongoFee := money.ToMinorUnits(request.PaymongoFee)

		if serviceFee+paymongoFee >= amount {
			http.Error(w, `Fees exceed the withdrawal amount`, http.StatusBadRequest)
			return
		}

		wallet, err := db.GetWalletById(walletId)
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, `Wallet not found`, http.StatusNotFound)
			return
		}

		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if amount > wallet.Amount {
			http.Error(w, fmt.Sprintf(`Insufficient balance: wallet holds %.2f`, money.ToMajorUnits(wallet.Amount)),
				http.StatusBadRequest)
			return
		}

		withdrawal := models.Withdrawal{
			Id:          uuid.NewString(),
			WalletId:    walletId,
			Amount:      -amount,
			ServiceFee:  serviceFee,
			PaymongoFee: paymongoFee,
			NetAmount:   amount - serviceFee - paymongoFee,
			Status:      models.WithdrawalCompleted,
			Method:      request.Method,
		}

		withdrawal, err = db.CreateWithdrawal(withdrawal)
		if errors.Is(err, storage.ErrInsufficientFunds) {
			// a concurrent withdrawal got there first
			http.Error(w, `Insufficient balance`, http.StatusConflict)
			return
		}

		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		recordAction(db, pub, r, `wallet.withdraw`, walletId,
			fmt.Sprintf(`%.2f via %s`, request.Amount, request.Method))

		respondJSON(w, withdrawal)
	})
}
