package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/ulsa-utsa/ulsa-backend/internal/response"
)

// Querier is the subset of pgxpool.Pool the system handler needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// SystemHandler serves the health check and the database-listing debug
// endpoint used while wiring up deployments.
type SystemHandler struct {
	db  Querier
	log zerolog.Logger
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(db Querier, log zerolog.Logger) *SystemHandler {
	return &SystemHandler{db: db, log: log}
}

// Health godoc
// GET /api/health
func (h *SystemHandler) Health(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"status": "OK"})
}

// ListDatabases godoc
// GET /api/databases
// Lists non-template databases on the server. Debug aid only.
func (h *SystemHandler) ListDatabases(c *gin.Context) {
	rows, err := h.db.Query(c.Request.Context(),
		`SELECT datname FROM pg_database WHERE datistemplate = false ORDER BY datname`)
	if err != nil {
		h.log.Error().Err(err).Msg("list databases failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrFetchFailed)
		return
	}
	defer rows.Close()

	databases := []gin.H{} // Serialize as [] rather than null.
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			h.log.Error().Err(err).Msg("list databases scan failed")
			response.Fail(c, http.StatusInternalServerError, response.ErrFetchFailed)
			return
		}
		databases = append(databases, gin.H{"datname": name})
	}

	response.Success(c, http.StatusOK, databases)
}
