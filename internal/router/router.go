package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"roomstayAdmin/internal/handlers"
	"roomstayAdmin/internal/realtime"
	"roomstayAdmin/internal/storage"
)

func New(database storage.Database, cache storage.Cache, publisher storage.Publisher, hub *realtime.Hub) http.Handler {
	router := mux.NewRouter()

	admin := func(h http.Handler) http.Handler {
		return handlers.AuthorizationMiddleware(h, database)
	}

	router.Handle(`/login`, handlers.LoginHandler(database)).Methods(`POST`)
	router.Handle(`/reauth`, admin(handlers.ReauthHandler(database))).Methods(`POST`)

	router.Handle(`/users`, admin(handlers.GetAllUsersHandler(database))).Methods(`GET`)
	router.Handle(`/users/{id}`, admin(handlers.GetUserHandler(database))).Methods(`GET`)
	router.Handle(`/users/{id}/status`, admin(handlers.UpdateUserStatusHandler(database, publisher))).Methods(`PATCH`)
	router.Handle(`/users/{id}`, admin(handlers.DeleteUserHandler(database, publisher))).Methods(`DELETE`)

	router.Handle(`/properties`, admin(handlers.GetAllPropertiesHandler(database, cache))).Methods(`GET`)
	router.Handle(`/properties/{id}`, admin(handlers.GetPropertyHandler(database))).Methods(`GET`)
	router.Handle(`/properties/{id}`, admin(handlers.UpdatePropertyHandler(database, cache, publisher))).Methods(`PUT`)
	router.Handle(`/properties/{id}/verify`, admin(handlers.VerifyPropertyHandler(database, cache, publisher))).Methods(`POST`)
	router.Handle(`/properties/{id}/unverify`, admin(handlers.UnverifyPropertyHandler(database, cache, publisher))).Methods(`POST`)
	router.Handle(`/properties/{id}/reject`, admin(handlers.RejectPropertyHandler(database, cache, publisher))).Methods(`POST`)
	router.Handle(`/properties/{id}/schedule`, admin(handlers.SchedulePropertyHandler(database, cache, publisher))).Methods(`POST`)
	router.Handle(`/properties/{id}/rooms`, admin(handlers.GetRoomsHandler(database))).Methods(`GET`)
	router.Handle(`/properties/{id}/rooms/schedule`, admin(handlers.BulkScheduleRoomsHandler(database, publisher))).Methods(`POST`)

	router.Handle(`/rooms/{id}/verify`, admin(handlers.VerifyRoomHandler(database, cache, publisher))).Methods(`POST`)
	router.Handle(`/rooms/{id}/unverify`, admin(handlers.UnverifyRoomHandler(database, cache, publisher))).Methods(`POST`)
	router.Handle(`/rooms/{id}/reject`, admin(handlers.RejectRoomHandler(database, cache, publisher))).Methods(`POST`)
	router.Handle(`/rooms/{id}/schedule`, admin(handlers.ScheduleRoomHandler(database, cache, publisher))).Methods(`POST`)

	router.Handle(`/wallets`, admin(handlers.GetAllWalletsHandler(database))).Methods(`GET`)
	router.Handle(`/wallets/{id}`, admin(handlers.GetWalletHandler(database))).Methods(`GET`)
	router.Handle(`/wallets/{id}/withdrawals`, admin(handlers.GetWithdrawalsHandler(database))).Methods(`GET`)
	router.Handle(`/wallets/{id}/withdraw`, admin(handlers.WithdrawHandler(database, publisher))).Methods(`POST`)

	router.Handle(`/transactions`, admin(handlers.GetAllTransactionsHandler(database))).Methods(`GET`)

	router.Handle(`/feedbacks`, admin(handlers.GetAllFeedbacksHandler(database))).Methods(`GET`)
	router.Handle(`/feedbacks/{id}/hide`, admin(handlers.SetFeedbackHiddenHandler(database, publisher, true))).Methods(`POST`)
	router.Handle(`/feedbacks/{id}/unhide`, admin(handlers.SetFeedbackHiddenHandler(database, publisher, false))).Methods(`POST`)

	router.Handle(`/ws/pending-count`, admin(handlers.PendingCountStreamHandler(database, hub))).Methods(`GET`)
	router.Handle(`/ws/logs`, admin(handlers.SystemLogStreamHandler(database, hub))).Methods(`GET`)

	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{`*`},
		AllowedMethods:   []string{`GET`, `POST`, `DELETE`, `OPTIONS`, `PATCH`, `PUT`},
		AllowedHeaders:   []string{`Content-Type`, `Authorization`},
		AllowCredentials: true,
	}).Handler(router)

	return handler
}

// PerformLogin mints a token directly, bypassing the password check. Tests
// use it to exercise authorized routes.
func PerformLogin(userId string, elevated bool) (string, error) {
	return handlers.NewToken(userId, elevated, 15*time.Minute)
}
