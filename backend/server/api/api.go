package api

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Pointers let empty strings and zero sentiment through while still rejecting missing keys.
type SubmitReportArgs struct {
	Location       *string    `json:"location" binding:"required"`
	Issue          *string    `json:"issue" binding:"required"`
	Description    *string    `json:"description" binding:"required"`
	SentimentScore *Sentiment `json:"sentiment_score" binding:"required"`
}

// Sentiment is a finite number sent either as a JSON number or as a string holding one.
type Sentiment float64

func (s *Sentiment) UnmarshalJSON(data []byte) error {
	var f float64
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			return fmt.Errorf("sentiment_score %q is not a number", str)
		}
		f = v
	} else if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("sentiment_score must be finite")
	}
	*s = Sentiment(f)
	return nil
}

type SubmitReportResponse struct {
	Message  string `json:"message"`
	Priority int    `json:"priority"`
}

type FindServicesArgs struct {
	Location *string `json:"location" binding:"required"`
}

type ServiceRecord struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Desc     string `json:"desc"`
}

type ReportRecord struct {
	Id     int64  `json:"id"`
	Loc    string `json:"loc"`
	Issue  string `json:"issue"`
	Desc   string `json:"desc"`
	Score  int    `json:"score"`
	Status string `json:"status"`
}

type AdminStatsResponse struct {
	Reports  []ReportRecord `json:"reports"`
	Critical int            `json:"critical"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
