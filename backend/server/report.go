package server

import (
	"net/http"

	"civicflow/backend/models"
	"civicflow/backend/server/api"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

func (s *Server) SubmitReport(c *gin.Context) {
	args := &api.SubmitReportArgs{}

	// BindJSON replies 400 on a missing or mistyped field.
	if err := c.BindJSON(args); err != nil {
		log.Errorf("Failed to get the argument in %s call: %v", EndPointSubmitReport, err)
		return
	}

	saved, err := s.intake.Submit(c.Request.Context(), &models.ReportInput{
		Location:       *args.Location,
		Issue:          *args.Issue,
		Description:    *args.Description,
		SentimentScore: float64(*args.SentimentScore),
	})
	if err != nil {
		log.Errorf("Failed to write report with %v", err)
		c.String(http.StatusInternalServerError, "Failed to save the report.") // 500
		return
	}

	c.IndentedJSON(http.StatusOK, api.SubmitReportResponse{
		Message:  "Success",
		Priority: saved.PriorityScore,
	})
}

func (s *Server) FindServices(c *gin.Context) {
	args := &api.FindServicesArgs{}

	if err := c.BindJSON(args); err != nil {
		log.Errorf("Failed to get the argument in %s call: %v", EndPointFindServices, err)
		return
	}

	services, err := s.directory.ServicesFor(c.Request.Context(), *args.Location)
	if err != nil {
		log.Errorf("Failed to look up services: %v", err)
		c.String(http.StatusInternalServerError, "Failed to look up services.") // 500
		return
	}

	ret := make([]api.ServiceRecord, 0, len(services))
	for _, svc := range services {
		ret = append(ret, api.ServiceRecord{
			Name:     svc.Name,
			Category: svc.Category,
			Desc:     svc.Description,
		})
	}
	c.IndentedJSON(http.StatusOK, ret)
}
