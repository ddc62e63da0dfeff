// Copyright 2026 The WaveScout Authors
// SPDX-License-Identifier: Apache-2.0

// Package server exposes a session over a local HTTP API.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wavescout/wavescout/hotspot"
	"github.com/wavescout/wavescout/session"
	"github.com/wavescout/wavescout/spatial"
)

// Server serves the scan workflow. Local only; not meant to be exposed.
type Server struct {
	session *session.Session
	addr    string
}

// NewServer creates a server around an existing session.
func NewServer(sess *session.Session, addr string) *Server {
	if addr == "" {
		addr = "localhost:8080"
	}

	return &Server{session: sess, addr: addr}
}

// Run blocks serving the API.
func (s *Server) Run() error {
	r := gin.Default()
	s.registerRoutes(r)

	return r.Run(s.addr)
}

func (s *Server) registerRoutes(r *gin.Engine) {
	r.GET("/api/state", s.getState)
	r.POST("/api/scan", s.startScan)
	r.PUT("/api/sort", s.setSortKey)
	r.POST("/api/hotspots/:id/select", s.selectHotspot)
	r.POST("/api/hotspots/:id/password", s.retrievePassword)
}

func (s *Server) getState(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, s.session.Snapshot())
}

type scanRequest struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

func (s *Server) startScan(ctx *gin.Context) {
	var req scanRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

			return
		}
	}

	var snap session.Snapshot
	if req.Lat != nil && req.Lng != nil {
		pt := spatial.Point{Lat: *req.Lat, Lng: *req.Lng}
		snap = s.session.StartScanAt(ctx.Request.Context(), pt)
	} else {
		snap = s.session.StartScan(ctx.Request.Context())
	}

	status := http.StatusOK
	if snap.Phase == session.PhaseErrored {
		status = http.StatusBadGateway
	}

	ctx.JSON(status, snap)
}

type sortRequest struct {
	Key string `json:"key" binding:"required"`
}

func (s *Server) setSortKey(ctx *gin.Context) {
	var req sortRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	key, err := hotspot.ParseSortKey(req.Key)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	s.session.SetSortKey(key)
	ctx.JSON(http.StatusOK, s.session.Snapshot())
}

func (s *Server) selectHotspot(ctx *gin.Context) {
	id := ctx.Param("id")
	if !s.session.Select(id) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "unknown hotspot id"})

		return
	}

	ctx.JSON(http.StatusOK, s.session.Snapshot())
}

func (s *Server) retrievePassword(ctx *gin.Context) {
	id := ctx.Param("id")

	// The lookup always acts on the current selection; the id in the path
	// keeps the API explicit and lets us reject mismatches early.
	if selected, ok := s.session.Selected(); !ok || selected.ID != id {
		ctx.JSON(http.StatusConflict, gin.H{"error": "hotspot is not the current selection"})

		return
	}

	out, err := s.session.RetrievePassword(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	if out == nil {
		// Superseded by a newer selection or scan while pending.
		ctx.JSON(http.StatusConflict, gin.H{"error": "lookup superseded"})

		return
	}

	ctx.JSON(http.StatusOK, out)
}
