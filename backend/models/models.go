package models

type ReportStatus string

const (
	StatusPending    ReportStatus = "Pending"
	StatusInProgress ReportStatus = "In Progress"
	StatusResolved   ReportStatus = "Resolved"
)

// TimestampLayout is the wall-clock format stored with each report.
const TimestampLayout = "15:04:05"

// ReportInput is what a citizen submits.
type ReportInput struct {
	Location       string
	Issue          string
	Description    string
	SentimentScore float64
}

// Report is a stored report row.
type Report struct {
	Id             int64
	Location       string
	Issue          string
	Description    string
	SentimentScore float64
	PriorityScore  int
	Status         ReportStatus
	Timestamp      string
}

// Service is a public-service directory entry.
type Service struct {
	Id              int64  `yaml:"-"`
	Name            string `yaml:"name"`
	Category        string `yaml:"category"`
	LocationContext string `yaml:"location_context"`
	Description     string `yaml:"description"`
}
