package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	intconfig "github.com/AgbediaSamuel/traverse-backend-wa/internal/config"
	intdb "github.com/AgbediaSamuel/traverse-backend-wa/internal/db"
	"github.com/AgbediaSamuel/traverse-backend-wa/internal/domain"
)

// ItinerarySummary is the listing shape; the raw document stays in the blob.
type ItinerarySummary struct {
	ID          string `json:"id"`
	TripName    string `json:"trip_name"`
	Destination string `json:"destination"`
	UpdatedAt   string `json:"updated_at"`
}

// ItineraryRepository stores raw itinerary documents as JSON blobs keyed by
// string id. The document shape is not validated here; the mapper is total
// and absorbs whatever comes back.
type ItineraryRepository struct {
	DB *sql.DB
}

func (r ItineraryRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r ItineraryRepository) GetByID(id string) (map[string]any, error) {
	db := r.db()
	if db == nil {
		return nil, domain.InternalError{Msg: "database not connected"}
	}

	var blob []byte
	err := db.QueryRow(`SELECT document FROM itineraries WHERE id = ?`, strings.TrimSpace(id)).Scan(&blob)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundError{Resource: "itinerary"}
		}
		return nil, domain.InternalError{Msg: "failed to load itinerary", Err: err}
	}

	var doc map[string]any
	if err := json.Unmarshal(blob, &doc); err != nil {
		return nil, domain.InternalError{Msg: "stored itinerary is unreadable", Err: err}
	}
	return doc, nil
}

// Save upserts the document blob. Summary columns are denormalized from the
// document so List never has to parse blobs.
func (r ItineraryRepository) Save(id string, doc map[string]any) error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not connected"}
	}

	blob, err := json.Marshal(doc)
	if err != nil {
		return domain.InternalError{Msg: "failed to encode itinerary", Err: err}
	}

	_, err = db.Exec(`
		INSERT INTO itineraries (id, trip_name, destination, document, created_at, updated_at)
		VALUES (?, ?, ?, ?, NOW(), NOW())
		ON DUPLICATE KEY UPDATE trip_name = VALUES(trip_name), destination = VALUES(destination),
			document = VALUES(document), updated_at = NOW()
	`, strings.TrimSpace(id), docField(doc, "trip_name"), docField(doc, "destination"), blob)
	if err != nil {
		return domain.InternalError{Msg: "failed to save itinerary", Err: err}
	}
	return nil
}

// List returns one page of summaries plus the total row count. Paging
// params are clamped here so callers can pass query input as-is.
func (r ItineraryRepository) List(p domain.Pagination) ([]ItinerarySummary, int, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(db, "itineraries") {
		return []ItinerarySummary{}, 0, nil
	}

	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 || p.PageSize > 100 {
		p.PageSize = 20
	}

	var total int
	if err := db.QueryRow(`SELECT COUNT(*) FROM itineraries`).Scan(&total); err != nil {
		return nil, 0, domain.InternalError{Msg: "failed to count itineraries", Err: err}
	}

	rows, err := db.Query(`
		SELECT id, COALESCE(trip_name,''), COALESCE(destination,''), COALESCE(updated_at,'')
		FROM itineraries
		ORDER BY updated_at DESC, id ASC
		LIMIT ? OFFSET ?
	`, p.PageSize, (p.Page-1)*p.PageSize)
	if err != nil {
		return nil, 0, domain.InternalError{Msg: "failed to list itineraries", Err: err}
	}
	defer rows.Close()

	out := []ItinerarySummary{}
	for rows.Next() {
		var rec ItinerarySummary
		if err := rows.Scan(&rec.ID, &rec.TripName, &rec.Destination, &rec.UpdatedAt); err != nil {
			return out, total, err
		}
		out = append(out, rec)
	}
	return out, total, rows.Err()
}

func (r ItineraryRepository) Delete(id string) error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not connected"}
	}

	res, err := db.Exec(`DELETE FROM itineraries WHERE id = ?`, strings.TrimSpace(id))
	if err != nil {
		return domain.InternalError{Msg: "failed to delete itinerary", Err: err}
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "itinerary"}
	}
	return nil
}

func docField(doc map[string]any, key string) string {
	if s, ok := doc[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}
