package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ============================================================================
// HTTP HANDLERS
// ============================================================================

type server struct {
	cfg     Config
	logger  *zap.Logger
	planner *Planner
	store   SubmissionStore
	email   EmailSender
	pdf     PDFRenderer
	db      *sql.DB
}

type planRequest struct {
	Address string `json:"address"`
	Email   string `json:"email"`
}

type planResponse struct {
	Success         bool               `json:"success"`
	Address         string             `json:"address"`
	Email           string             `json:"email"`
	City            string             `json:"city"`
	Region          Region             `json:"region"`
	WaterDistrict   WaterDistrict      `json:"waterDistrict"`
	SunExposure     SunExposure        `json:"sunExposure"`
	Plants          []RecommendedPlant `json:"plants"`
	Rebates         []RebateOffer      `json:"rebates"`
	CompanionGroups []CompanionGroup   `json:"companionGroups"`
	Nurseries       []Nursery          `json:"nurseries"`
	EmailStatus     string             `json:"emailStatus"`
	EmailError      string             `json:"emailError,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Headers are already out; nothing useful left to do.
		return
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handlePlan runs the full pipeline for a submitted address. Validation and
// geocoding failures abort the request; PDF rendering, email delivery, and
// persistence are each best-effort and reported via status fields.
func (s *server) handlePlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	plan, err := s.planner.BuildPlan(r.Context(), req.Address, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, errValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, errGeocode):
			writeError(w, http.StatusBadRequest, "could not resolve that address, please check it and try again")
		default:
			s.logger.Error("plan build failed", zap.String("address", req.Address), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	emailStatus, emailError := s.deliverPlan(r.Context(), plan)
	s.persistPlan(r.Context(), plan, emailStatus, emailError)

	writeJSON(w, http.StatusOK, planResponse{
		Success:         true,
		Address:         plan.Address,
		Email:           plan.Email,
		City:            plan.City,
		Region:          plan.Region,
		WaterDistrict:   plan.WaterDistrict,
		SunExposure:     plan.SunExposure,
		Plants:          plan.Plants,
		Rebates:         plan.Rebates,
		CompanionGroups: plan.CompanionGroups,
		Nurseries:       plan.Nurseries,
		EmailStatus:     emailStatus,
		EmailError:      emailError,
	})
}

// deliverPlan renders the PDF and emails it. Both steps may fail without
// failing the request.
func (s *server) deliverPlan(ctx context.Context, plan *PlanResult) (status, errMsg string) {
	pdfBytes, err := s.pdf.Render(ctx, plan)
	if err != nil {
		s.logger.Warn("pdf render failed", zap.String("address", plan.Address), zap.Error(err))
		return "failed", "plan PDF could not be generated"
	}

	if err := s.email.SendPlan(ctx, plan.Email, plan.Address, plan.Region, plan.WaterDistrict, pdfBytes); err != nil {
		s.logger.Warn("plan email failed",
			zap.String("address", plan.Address),
			zap.String("email", plan.Email),
			zap.Error(err),
		)
		return "failed", err.Error()
	}

	s.logger.Info("plan emailed", zap.String("email", plan.Email), zap.String("address", plan.Address))
	return "sent", ""
}

// persistPlan records the submission. A storage failure is logged and
// swallowed so the caller still gets their plan.
func (s *server) persistPlan(ctx context.Context, plan *PlanResult, emailStatus, emailError string) {
	if s.store == nil {
		return
	}

	plantsJSON, err := json.Marshal(plan.Plants)
	if err != nil {
		s.logger.Warn("submission encode failed", zap.Error(err))
		return
	}
	rebatesJSON, err := json.Marshal(plan.Rebates)
	if err != nil {
		s.logger.Warn("submission encode failed", zap.Error(err))
		return
	}

	sub := &Submission{
		Address:       plan.Address,
		Email:         plan.Email,
		Region:        string(plan.Region),
		WaterDistrict: string(plan.WaterDistrict),
		PlantsJSON:    string(plantsJSON),
		RebatesJSON:   string(rebatesJSON),
		EmailStatus:   emailStatus,
		EmailError:    emailError,
	}
	if err := s.store.Insert(ctx, sub); err != nil {
		s.logger.Warn("submission insert failed", zap.String("address", plan.Address), zap.Error(err))
	}
}

// authorizeAdmin checks the bearer token on admin routes.
func (s *server) authorizeAdmin(w http.ResponseWriter, r *http.Request) bool {
	if s.cfg.AdminToken == "" {
		writeError(w, http.StatusUnauthorized, "admin access not configured")
		return false
	}
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") || strings.TrimPrefix(auth, "Bearer ") != s.cfg.AdminToken {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return false
	}
	return true
}

const adminListLimit = 200

func (s *server) handleAdminSubmissions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if !s.authorizeAdmin(w, r) {
		return
	}
	if s.store == nil {
		writeError(w, http.StatusInternalServerError, "submission store unavailable")
		return
	}

	subs, err := s.store.Recent(r.Context(), adminListLimit)
	if err != nil {
		s.logger.Error("submission listing failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not load submissions")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"submissions": subs,
		"count":       len(subs),
	})
}

// handleAdminExport streams the recent submissions as an xlsx workbook.
func (s *server) handleAdminExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if !s.authorizeAdmin(w, r) {
		return
	}
	if s.store == nil {
		writeError(w, http.StatusInternalServerError, "submission store unavailable")
		return
	}

	subs, err := s.store.Recent(r.Context(), adminListLimit)
	if err != nil {
		s.logger.Error("submission listing failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not load submissions")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Submissions"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Created", "Address", "Email", "Plant Community", "Water District", "Email Status", "Email Error"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for row, sub := range subs {
		values := []interface{}{
			sub.ID,
			sub.CreatedAt.Format(time.RFC3339),
			sub.Address,
			sub.Email,
			sub.Region,
			sub.WaterDistrict,
			sub.EmailStatus,
			sub.EmailError,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("xlsx export failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not build export")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=submissions-%s.xlsx", time.Now().UTC().Format("2006-01-02")))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := map[string]interface{}{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	}

	if s.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.PingContext(ctx); err != nil {
			health["status"] = "degraded"
			health["database"] = "unreachable"
		} else {
			health["database"] = "ok"
			if ps, ok := s.store.(*PostgresStore); ok {
				if n, err := ps.Count(ctx); err == nil {
					health["submissions"] = n
				}
			}
		}
	} else {
		health["database"] = "disabled"
	}

	writeJSON(w, http.StatusOK, health)
}
