package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"roomstayAdmin/internal/models"
	"roomstayAdmin/internal/storage"
)

func respondJSON(w http.ResponseWriter, payload any) {
	w.Header().Set(`Content-Type`, `application/json`)
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(payload)
}

// recordAction appends a system log entry and publishes it to the log
// stream. Logging failures never fail the action that triggered them.
func recordAction(db storage.Database, pub storage.Publisher, r *http.Request, action, targetId, detail string) {
	claims := ClaimsFromContext(r)

	actorId := ``
	if claims != nil {
		actorId = claims.UserId
	}

	entry := models.SystemLog{
		Id:       uuid.NewString(),
		Action:   action,
		ActorId:  actorId,
		TargetId: targetId,
		Detail:   detail,
	}

	if err := db.AppendSystemLog(entry); err != nil {
		slog.Error(`Failed to append system log`, slog.Any(`err`, err))
		return
	}

	if err := pub.PublishSystemLog(entry); err != nil {
		slog.Error(`Failed to publish system log`, slog.Any(`err`, err))
	}
}

// publishPendingCount pushes a fresh pending-property count to the live
// badge after any verification action.
func publishPendingCount(db storage.Database, pub storage.Publisher) {
	count, err := db.CountPendingProperties()
	if err != nil {
		slog.Error(`Failed to count pending properties`, slog.Any(`err`, err))
		return
	}

	if err := pub.PublishPendingCount(count); err != nil {
		slog.Error(`Failed to publish pending count`, slog.Any(`err`, err))
	}
}
