package server

import (
	"net/http"

	"civicflow/backend/server/api"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

// AdminStats returns the ten highest priority reports and the number of critical ones.
func (s *Server) AdminStats(c *gin.Context) {
	stats, err := s.query.AdminStats(c.Request.Context())
	if err != nil {
		log.Errorf("Failed to get admin stats: %v", err)
		c.String(http.StatusInternalServerError, "Failed to read reports.") // 500
		return
	}

	ret := &api.AdminStatsResponse{
		Reports:  make([]api.ReportRecord, 0, len(stats.Reports)),
		Critical: stats.Critical,
	}
	for _, r := range stats.Reports {
		ret.Reports = append(ret.Reports, api.ReportRecord{
			Id:     r.Id,
			Loc:    r.Location,
			Issue:  r.Issue,
			Desc:   r.Description,
			Score:  r.PriorityScore,
			Status: string(r.Status),
		})
	}

	c.IndentedJSON(http.StatusOK, ret)
}
