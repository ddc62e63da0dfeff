// Copyright 2026 The WaveScout Authors
// SPDX-License-Identifier: Apache-2.0

// Package history persists completed scans in a local DuckDB file. It is
// an opt-in audit log; the in-memory scan lifecycle never depends on it.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/uber/h3-go/v4"
	"github.com/wavescout/wavescout/hotspot"
	"github.com/wavescout/wavescout/spatial"
)

// ScanRecord is one persisted scan.
type ScanRecord struct {
	ID        int           `json:"id"`
	ScannedAt time.Time     `json:"scanned_at"`
	Origin    spatial.Point `json:"origin"`
	Count     int           `json:"count"`
	// Coarse-to-fine cells of the origin, for grouping scans by area.
	H3Res5 int64 `json:"-"`
	H3Res6 int64 `json:"-"`
	H3Res7 int64 `json:"-"`
	H3Res8 int64 `json:"-"`
}

func (rec *ScanRecord) computeH3() error {
	latLng := h3.NewLatLng(rec.Origin.Lat, rec.Origin.Lng)

	for res := 5; res <= 8; res++ {
		cell, err := h3.LatLngToCell(latLng, res)
		if err != nil {
			return fmt.Errorf("error converting to h3 cell at res %d: %w", res, err)
		}

		switch res {
		case 5:
			rec.H3Res5 = int64(cell)
		case 6:
			rec.H3Res6 = int64(cell)
		case 7:
			rec.H3Res7 = int64(cell)
		case 8:
			rec.H3Res8 = int64(cell)
		}
	}

	return nil
}

// Repository persists scans and their hotspots.
type Repository interface {
	// CreateSchema creates the scans and scan_hotspots tables
	CreateSchema() error

	// SaveScan persists a completed scan and its hotspots
	SaveScan(origin spatial.Point, scannedAt time.Time, hotspots []hotspot.Hotspot) (int, error)

	// ListScans returns the most recent scans, newest first
	ListScans(limit int) ([]*ScanRecord, error)

	// ScanHotspots returns the hotspots stored for a scan
	ScanHotspots(scanID int) ([]hotspot.Hotspot, error)
}

type sqlScanRepository struct {
	db *sql.DB
}

// NewRepository creates a scan history repository.
func NewRepository(db *sql.DB) Repository {
	return &sqlScanRepository{db: db}
}

func (r *sqlScanRepository) CreateSchema() error {
	// DuckDB needs to load the spatial extension
	_, err := r.db.Exec(`INSTALL spatial; LOAD spatial;`)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(`
		CREATE SEQUENCE IF NOT EXISTS scans_seq START 1;

		CREATE TABLE IF NOT EXISTS scans (
			id INTEGER PRIMARY KEY DEFAULT nextval('scans_seq'),
			scanned_at TIMESTAMP NOT NULL,
			origin POINT_2D NOT NULL,
			hotspot_count INTEGER NOT NULL,
			h3_res5 UBIGINT,
			h3_res6 UBIGINT,
			h3_res7 UBIGINT,
			h3_res8 UBIGINT
		);

		CREATE TABLE IF NOT EXISTS scan_hotspots (
			scan_id INTEGER NOT NULL,
			name VARCHAR NOT NULL,
			address VARCHAR NOT NULL,
			distance VARCHAR NOT NULL,
			distance_m DOUBLE NOT NULL,
			signal_strength INTEGER NOT NULL,
			security VARCHAR NOT NULL,
			venue_type VARCHAR NOT NULL,
			has_password BOOLEAN NOT NULL
		);
	`)

	return err
}

func (r *sqlScanRepository) SaveScan(origin spatial.Point, scannedAt time.Time, hotspots []hotspot.Hotspot) (int, error) {
	rec := &ScanRecord{Origin: origin, ScannedAt: scannedAt, Count: len(hotspots)}
	if err := rec.computeH3(); err != nil {
		return 0, err
	}

	tx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}

	defer func() { _ = tx.Rollback() }()

	var scanID int

	err = tx.QueryRow(`
		INSERT INTO scans(scanned_at, origin, hotspot_count, h3_res5, h3_res6, h3_res7, h3_res8)
		VALUES (?, ST_Point(?, ?), ?, ?, ?, ?, ?)
		RETURNING id
	`,
		rec.ScannedAt,
		rec.Origin.Lng,
		rec.Origin.Lat,
		rec.Count,
		rec.H3Res5,
		rec.H3Res6,
		rec.H3Res7,
		rec.H3Res8,
	).Scan(&scanID)
	if err != nil {
		return 0, fmt.Errorf("inserting scan: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO scan_hotspots(
			scan_id, name, address, distance, distance_m,
			signal_strength, security, venue_type, has_password
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing hotspot insert: %w", err)
	}

	defer stmt.Close()

	// Passwords are deliberately not persisted, only their presence.
	for _, h := range hotspots {
		if _, err := stmt.Exec(
			scanID,
			h.Name,
			h.Address,
			h.Distance,
			h.DistanceValue,
			h.SignalStrength,
			string(h.Security),
			string(h.Venue),
			h.HasPassword(),
		); err != nil {
			return 0, fmt.Errorf("inserting hotspot %q: %w", h.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return scanID, nil
}

func (r *sqlScanRepository) ListScans(limit int) ([]*ScanRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.Query(`
		SELECT id, scanned_at, origin, hotspot_count
		FROM scans
		ORDER BY scanned_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var out []*ScanRecord

	for rows.Next() {
		var rec ScanRecord
		if err := rows.Scan(&rec.ID, &rec.ScannedAt, &rec.Origin, &rec.Count); err != nil {
			return nil, err
		}

		out = append(out, &rec)
	}

	return out, rows.Err()
}

func (r *sqlScanRepository) ScanHotspots(scanID int) ([]hotspot.Hotspot, error) {
	rows, err := r.db.Query(`
		SELECT name, address, distance, distance_m, signal_strength, security, venue_type
		FROM scan_hotspots
		WHERE scan_id = ?
	`, scanID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var out []hotspot.Hotspot

	for rows.Next() {
		var (
			h        hotspot.Hotspot
			security string
			venue    string
		)

		if err := rows.Scan(&h.Name, &h.Address, &h.Distance, &h.DistanceValue,
			&h.SignalStrength, &security, &venue); err != nil {
			return nil, err
		}

		h.Security = hotspot.Security(security)
		h.Venue = hotspot.Venue(venue)

		out = append(out, h)
	}

	return out, rows.Err()
}
