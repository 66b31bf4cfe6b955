// Package journal persists engine snapshots, measurements, and attractor
// events in SQLite.
package journal

import (
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/wiltonos/lemniscate/internal/measure"
	"github.com/wiltonos/lemniscate/internal/temporal"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	snapshot_id   TEXT PRIMARY KEY,
	created_at    TEXT NOT NULL,
	dominant_mode TEXT NOT NULL,
	coherence     REAL NOT NULL,
	qctf          REAL NOT NULL,
	scale_vec     BLOB NOT NULL,
	detail_json   TEXT
);

CREATE TABLE IF NOT EXISTS measurements (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	scale       TEXT NOT NULL,
	method      TEXT NOT NULL,
	value       REAL NOT NULL,
	confidence  REAL NOT NULL,
	sample_size INTEGER NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS attractor_events (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	scale       TEXT NOT NULL,
	attractor   REAL NOT NULL,
	trend       TEXT NOT NULL,
	distance    REAL NOT NULL,
	approaching INTEGER NOT NULL,
	created_at  TEXT NOT NULL
);
`

// #endregion schema

// #region types

// SnapshotRecord is one persisted engine snapshot. ScaleCoherence is stored
// as a little-endian float64 BLOB in canonical scale order.
type SnapshotRecord struct {
	SnapshotID     string
	CreatedAt      time.Time
	DominantMode   temporal.Mode
	Coherence      float64
	QCTF           float64
	ScaleCoherence map[temporal.Scale]float64
	DetailJSON     string
}

// MeasurementRecord is one persisted coherence measurement.
type MeasurementRecord struct {
	Scale      temporal.Scale
	Method     measure.Method
	Value      float64
	Confidence float64
	SampleSize int
	CreatedAt  time.Time
}

// AttractorEvent is one persisted attractor report.
type AttractorEvent struct {
	Scale       temporal.Scale
	Attractor   float64
	Trend       measure.Trend
	Distance    float64
	Approaching bool
	CreatedAt   time.Time
}

// #endregion types

// #region store

// Store manages the coherence journal in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion store

// #region snapshots

// SaveSnapshot inserts a snapshot, assigning a UUID when missing.
func (s *Store) SaveSnapshot(rec SnapshotRecord) (string, error) {
	if rec.SnapshotID == "" {
		rec.SnapshotID = uuid.New().String()
	}
	_, err := s.db.Exec(
		`INSERT INTO snapshots (snapshot_id, created_at, dominant_mode, coherence, qctf, scale_vec, detail_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.SnapshotID, rec.CreatedAt.UTC().Format(time.RFC3339Nano), string(rec.DominantMode),
		rec.Coherence, rec.QCTF, encodeScaleVec(rec.ScaleCoherence), nullable(rec.DetailJSON),
	)
	if err != nil {
		return "", fmt.Errorf("insert snapshot: %w", err)
	}
	return rec.SnapshotID, nil
}

// GetSnapshot retrieves a snapshot by id.
func (s *Store) GetSnapshot(id string) (SnapshotRecord, error) {
	row := s.db.QueryRow(
		`SELECT snapshot_id, created_at, dominant_mode, coherence, qctf, scale_vec, detail_json
		 FROM snapshots WHERE snapshot_id = ?`, id,
	)
	rec, err := scanSnapshot(row)
	if err != nil {
		return SnapshotRecord{}, fmt.Errorf("get snapshot %s: %w", id, err)
	}
	return rec, nil
}

// ListSnapshots returns the most recent snapshots, newest first.
func (s *Store) ListSnapshots(limit int) ([]SnapshotRecord, error) {
	rows, err := s.db.Query(
		`SELECT snapshot_id, created_at, dominant_mode, coherence, qctf, scale_vec, detail_json
		 FROM snapshots ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var out []SnapshotRecord
	for rows.Next() {
		rec, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// DecayWeightedCoherence computes an exponentially decayed mean of one
// scale's coherence across all snapshots, half-life weighted relative to the
// newest snapshot. Returns 0 for an empty journal.
func (s *Store) DecayWeightedCoherence(scale temporal.Scale, halfLife time.Duration) (float64, error) {
	snaps, err := s.ListSnapshots(1 << 20)
	if err != nil {
		return 0, err
	}
	if len(snaps) == 0 {
		return 0, nil
	}
	newest := snaps[0].CreatedAt
	var sum, weights float64
	for _, rec := range snaps {
		age := newest.Sub(rec.CreatedAt)
		w := math.Pow(0.5, float64(age)/float64(halfLife))
		sum += w * rec.ScaleCoherence[scale]
		weights += w
	}
	return sum / weights, nil
}

// #endregion snapshots

// #region measurements

// SaveMeasurement inserts a measurement row.
func (s *Store) SaveMeasurement(rec MeasurementRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO measurements (scale, method, value, confidence, sample_size, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		string(rec.Scale), string(rec.Method), rec.Value, rec.Confidence, rec.SampleSize,
		rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert measurement: %w", err)
	}
	return nil
}

// ListMeasurements returns the most recent measurements for a scale,
// newest first.
func (s *Store) ListMeasurements(scale temporal.Scale, limit int) ([]MeasurementRecord, error) {
	rows, err := s.db.Query(
		`SELECT scale, method, value, confidence, sample_size, created_at
		 FROM measurements WHERE scale = ? ORDER BY id DESC LIMIT ?`, string(scale), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}
	defer rows.Close()

	var out []MeasurementRecord
	for rows.Next() {
		var rec MeasurementRecord
		var scaleStr, methodStr, createdStr string
		if err := rows.Scan(&scaleStr, &methodStr, &rec.Value, &rec.Confidence, &rec.SampleSize, &createdStr); err != nil {
			return nil, fmt.Errorf("scan measurement: %w", err)
		}
		rec.Scale = temporal.Scale(scaleStr)
		rec.Method = measure.Method(methodStr)
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// #endregion measurements

// #region attractor-events

// SaveAttractorEvent inserts an attractor event row.
func (s *Store) SaveAttractorEvent(ev AttractorEvent) error {
	approaching := 0
	if ev.Approaching {
		approaching = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO attractor_events (scale, attractor, trend, distance, approaching, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		string(ev.Scale), ev.Attractor, string(ev.Trend), ev.Distance, approaching,
		ev.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert attractor event: %w", err)
	}
	return nil
}

// ListAttractorEvents returns the most recent attractor events, newest first.
func (s *Store) ListAttractorEvents(limit int) ([]AttractorEvent, error) {
	rows, err := s.db.Query(
		`SELECT scale, attractor, trend, distance, approaching, created_at
		 FROM attractor_events ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list attractor events: %w", err)
	}
	defer rows.Close()

	var out []AttractorEvent
	for rows.Next() {
		var ev AttractorEvent
		var scaleStr, trendStr, createdStr string
		var approaching int
		if err := rows.Scan(&scaleStr, &ev.Attractor, &trendStr, &ev.Distance, &approaching, &createdStr); err != nil {
			return nil, fmt.Errorf("scan attractor event: %w", err)
		}
		ev.Scale = temporal.Scale(scaleStr)
		ev.Trend = measure.Trend(trendStr)
		ev.Approaching = approaching != 0
		ev.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		out = append(out, ev)
	}
	return out, rows.Err()
}

// #endregion attractor-events

// #region encoding

// encodeScaleVec packs per-scale coherence as little-endian float64 in
// canonical scale order.
func encodeScaleVec(vec map[temporal.Scale]float64) []byte {
	scales := temporal.Scales()
	buf := make([]byte, 8*len(scales))
	for i, scale := range scales {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(vec[scale]))
	}
	return buf
}

// decodeScaleVec unpacks a scale_vec BLOB.
func decodeScaleVec(buf []byte) map[temporal.Scale]float64 {
	out := make(map[temporal.Scale]float64)
	for i, scale := range temporal.Scales() {
		if (i+1)*8 > len(buf) {
			break
		}
		out[scale] = math.Float64frombits(binary.LittleEndian.Uint64(buf[i*8:]))
	}
	return out
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (SnapshotRecord, error) {
	var rec SnapshotRecord
	var modeStr, createdStr string
	var vecBlob []byte
	var detail sql.NullString
	if err := row.Scan(&rec.SnapshotID, &createdStr, &modeStr, &rec.Coherence, &rec.QCTF, &vecBlob, &detail); err != nil {
		return SnapshotRecord{}, err
	}
	rec.DominantMode = temporal.Mode(modeStr)
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	rec.ScaleCoherence = decodeScaleVec(vecBlob)
	if detail.Valid {
		rec.DetailJSON = detail.String
	}
	return rec, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// #endregion encoding
