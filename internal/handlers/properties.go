package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"roomstayAdmin/internal/models"
	"roomstayAdmin/internal/storage"
	"roomstayAdmin/internal/verification"
)

// GetAllPropertiesHandler serves the cached listing when it is warm; any
// cache failure counts as a miss and falls through to the store.
func GetAllPropertiesHandler(db storage.Database, cache storage.Cache) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if data, err := cache.GetProperties(); err == nil {
			w.Header().Set(`Content-Type`, `application/json`)
			w.WriteHeader(http.StatusOK)
			w.Write(data)
			return
		}

		properties, err := db.GetAllProperties()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondJSON(w, properties)

		cache.PutProperties(properties)
	})
}

type propertyDetail struct {
	models.Property
	Rooms []models.Room `json:"rooms"`
}

// GetPropertyHandler fetches the property and its rooms concurrently; the
// response is all or nothing.
func GetPropertyHandler(db storage.Database) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)[`id`]

		var property models.Property
		var rooms []models.Room

		var group errgroup.Group

		group.Go(func() error {
			var err error
			property, err = db.GetPropertyById(id)
			return err
		})

		group.Go(func() error {
			var err error
			rooms, err = db.GetRoomsByPropertyId(id)
			return err
		})

		if err := group.Wait(); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, `Property not found`, http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		respondJSON(w, propertyDetail{Property: property, Rooms: rooms})
	})
}

type propertyUpdateRequest struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// UpdatePropertyHandler edits the core fields. Editing a verified property
// requires an elevated token from a fresh password re-authentication.
func UpdatePropertyHandler(db storage.Database, cache storage.Cache, pub storage.Publisher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)[`id`]

		var request propertyUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		defer r.Body.Close()

		if request.Name == `` || request.Address == `` {
			http.Error(w, `Name and address are required`, http.StatusBadRequest)
			return
		}

		property, err := db.GetPropertyById(id)
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, `Property not found`, http.StatusNotFound)
			return
		}

		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if property.Status == models.PropertyVerified && !ClaimsFromContext(r).Elevated {
			http.Error(w, `Re-authentication required to edit a verified property`, http.StatusForbidden)
			return
		}

		if err := db.UpdatePropertyDetails(id, request.Name, request.Address, request.Lat, request.Lng); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		cache.InvalidateProperties()
		recordAction(db, pub, r, `property.update`, id, request.Name)

		property.Name = request.Name
		property.Address = request.Address
		property.Lat = request.Lat
		property.Lng = request.Lng

		respondJSON(w, property)
	})
}

// propertyTransitionHandler is the shared shape of verify, unverify and
// reject: load, run the transition table, write, refresh the live badge.
func propertyTransitionHandler(db storage.Database, cache storage.Cache, pub storage.Publisher,
	action string, transition func(string) (string, error), stamp bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)[`id`]

		property, err := db.GetPropertyById(id)
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, `Property not found`, http.StatusNotFound)
			return
		}

		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		next, err := transition(property.Status)
		if err != nil {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}

		var dateVerified *time.Time
		if stamp {
			now := time.Now().UTC()
			dateVerified = &now
		}

		if err := db.UpdatePropertyStatus(id, next, dateVerified); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		cache.InvalidateProperties()
		publishPendingCount(db, pub)
		recordAction(db, pub, r, action, id, next)

		property.Status = next
		if dateVerified != nil {
			property.DateVerified = dateVerified
		}

		respondJSON(w, property)
	})
}

func VerifyPropertyHandler(db storage.Database, cache storage.Cache, pub storage.Publisher) http.Handler {
	return propertyTransitionHandler(db, cache, pub, `property.verify`, verification.VerifyProperty, true)
}

func UnverifyPropertyHandler(db storage.Database, cache storage.Cache, pub storage.Publisher) http.Handler {
	return propertyTransitionHandler(db, cache, pub, `property.unverify`, verification.UnverifyProperty, false)
}

func RejectPropertyHandler(db storage.Database, cache storage.Cache, pub storage.Publisher) http.Handler {
	return propertyTransitionHandler(db, cache, pub, `property.reject`, verification.RejectProperty, false)
}

type scheduleRequest struct {
	Date string `json:"date"`
}

func parseScheduleDate(r *http.Request) (time.Time, error) {
	var request scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		return time.Time{}, err
	}

	defer r.Body.Close()

	if request.Date == `` {
		return time.Time{}, errors.New(`date is required`)
	}

	return time.Parse(time.RFC3339, request.Date)
}

// SchedulePropertyHandler stamps the visit date on the property itself.
// Unlike room-level scheduling this never touches the status, but the
// schedule is part of the cached listing, so the cache is dropped.
func SchedulePropertyHandler(db storage.Database, cache storage.Cache, pub storage.Publisher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)[`id`]

		date, err := parseScheduleDate(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := db.SchedulePropertyVerification(id, date); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, `Property not found`, http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		cache.InvalidateProperties()
		recordAction(db, pub, r, `property.schedule`, id, date.Format(time.RFC3339))

		respondJSON(w, map[string]string{`scheduled`: id})
	})
}

// BulkScheduleRoomsHandler applies one visit date to every room of the
// property still in pending or reverify.
func BulkScheduleRoomsHandler(db storage.Database, pub storage.Publisher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)[`id`]

		date, err := parseScheduleDate(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		scheduled, err := db.ScheduleAllRoomVerifications(id, date)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		recordAction(db, pub, r, `property.rooms.schedule`, id, date.Format(time.RFC3339))

		respondJSON(w, map[string]int{`scheduled`: scheduled})
	})
}
