// Dev/test client for dev/test/troubleshooting.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"

	"civicflow/backend/server"
	"civicflow/backend/server/api"

	"github.com/apex/log"
)

const contentType = "application/json"

var (
	serviceUrl = flag.String("url", "http://127.0.0.1:8000", "civicflow backend base URL")
	reports    = flag.Int("reports", 3, "number of random reports to submit")
)

var (
	locations = []string{"School Zone", "Hospital Area", "Main Highway", "Residential Area", "Marketplace"}
	issues    = []string{"Gas leak", "Pothole", "Sparking wire", "Garbage pile", "Open manhole", "Broken bench"}
)

func pick(s []string) *string {
	v := s[rand.Intn(len(s))]
	return &v
}

func post(endpoint string, args any) {
	buf, err := json.Marshal(args)
	if err != nil {
		log.Errorf("Failed to encode %s request: %v", endpoint, err)
		return
	}
	resp, err := http.Post(*serviceUrl+endpoint, contentType, bytes.NewBuffer(buf))
	if err != nil {
		log.Errorf("Failed to call the server with %v", err)
		return
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	log.Infof("Done %s, %s: %v", endpoint, resp.Status, string(body))
}

func doReport() {
	log.Info("doReport()")
	description := fmt.Sprintf("dev client report #%d", rand.Intn(1000))
	sentiment := api.Sentiment(rand.Float64()*2 - 1)
	post(server.EndPointSubmitReport, &api.SubmitReportArgs{
		Location:       pick(locations),
		Issue:          pick(issues),
		Description:    &description,
		SentimentScore: &sentiment,
	})
}

func doFindServices() {
	log.Info("doFindServices()")
	post(server.EndPointFindServices, &api.FindServicesArgs{Location: pick(locations)})
}

func doAdminStats() {
	log.Info("doAdminStats()")
	resp, err := http.Get(*serviceUrl + server.EndPointAdminStats)
	if err != nil {
		log.Errorf("Failed to call the server with %v", err)
		return
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	log.Infof("Done, %s: %v", resp.Status, string(body))
}

func main() {
	flag.Parse()

	for i := 0; i < *reports; i++ {
		doReport()
	}
	doFindServices()
	doAdminStats()
}
