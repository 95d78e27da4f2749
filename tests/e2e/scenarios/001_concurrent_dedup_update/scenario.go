package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

// ### Start - fixed configs (no change)
// Expected results below are derived from these values.
const (
	totalEvents   = 4000
	itemsPerBatch = 50
	machineCount  = 8
	lineCount     = 4
)

// ### End - fixed configs

type eventRequest struct {
	EventID     string `json:"eventId"`
	EventTime   string `json:"eventTime"`
	MachineID   string `json:"machineId"`
	LineID      string `json:"lineId"`
	FactoryID   string `json:"factoryId"`
	DurationMs  int64  `json:"durationMs"`
	DefectCount int    `json:"defectCount"`
}

type batchResponse struct {
	Accepted int `json:"accepted"`
	Deduped  int `json:"deduped"`
	Updated  int `json:"updated"`
	Rejected int `json:"rejected"`
}

type machineStats struct {
	EventsCount  int64  `json:"eventsCount"`
	DefectsCount int64  `json:"defectsCount"`
	Status       string `json:"status"`
}

type topLine struct {
	LineID       string `json:"lineId"`
	TotalDefects int64  `json:"totalDefects"`
	EventCount   int64  `json:"eventCount"`
}

type totals struct {
	mu sync.Mutex
	batchResponse
	failures []error
}

func (t *totals) add(resp *batchResponse, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		t.failures = append(t.failures, err)
		return
	}
	t.Accepted += resp.Accepted
	t.Deduped += resp.Deduped
	t.Updated += resp.Updated
	t.Rejected += resp.Rejected
}

// main runs the e2e scenario: 001_concurrent_dedup_update
//
// It drives a running factory-events server through the three reconciliation outcomes and
// then checks that the stats endpoints agree with the data that was sent.
//
// What it tests:
//   - POST /events/batch with many concurrent batches (phase 1, all accepted)
//   - identical resubmission of a share of the batches, concurrently (phase 2, all deduped)
//   - resubmission of the first batches with a changed payload (phase 3, all updated)
//   - GET /stats per machine and GET /stats/top-defect-lines against locally computed totals
//
// Every id carries a per-run suffix, so the scenario can run repeatedly against one database.
func main() {
	baseURL := getEnv("BASE_URL", "http://localhost:8080")
	parallel := getEnvInt("PARALLEL", 8)
	duplicateBatches := getEnvInt("DUPLICATE_BATCHES", 40)
	updatedBatches := getEnvInt("UPDATED_BATCHES", 10)

	batchCount := totalEvents / itemsPerBatch
	if duplicateBatches > batchCount || updatedBatches > batchCount {
		fail("DUPLICATE_BATCHES and UPDATED_BATCHES must not exceed %d", batchCount)
	}

	runID := strconv.FormatInt(time.Now().UnixNano(), 36)
	windowStart := time.Now().UTC().Truncate(time.Hour).Add(-2 * time.Hour)
	windowEnd := windowStart.Add(time.Hour)
	factoryID := "F-" + runID

	fmt.Println("Starting e2e scenario: 001_concurrent_dedup_update")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("RUN_ID: %s\n", runID)
	fmt.Printf("WINDOW: %s - %s\n", windowStart.Format(time.RFC3339), windowEnd.Format(time.RFC3339))
	fmt.Printf("BATCHES: %d x %d events, PARALLEL: %d\n", batchCount, itemsPerBatch, parallel)
	fmt.Println()

	original := make([][]eventRequest, batchCount)
	for b := range original {
		original[b] = generateBatch(b, runID, factoryID, windowStart, false)
	}

	client := &http.Client{Timeout: 30 * time.Second}

	phase1 := sendAll(client, baseURL, original, parallel)
	expect("phase 1", phase1, batchResponse{Accepted: totalEvents})

	phase2 := sendAll(client, baseURL, original[:duplicateBatches], parallel)
	expect("phase 2", phase2, batchResponse{Deduped: duplicateBatches * itemsPerBatch})

	changed := make([][]eventRequest, updatedBatches)
	for b := range changed {
		changed[b] = generateBatch(b, runID, factoryID, windowStart, true)
	}
	// receipt times must be strictly newer than phase 1
	time.Sleep(10 * time.Millisecond)
	phase3 := sendAll(client, baseURL, changed, parallel)
	expect("phase 3", phase3, batchResponse{Updated: updatedBatches * itemsPerBatch})

	final := append(append([][]eventRequest{}, changed...), original[updatedBatches:]...)
	verifyStats(client, baseURL, final, factoryID, windowStart, windowEnd)

	fmt.Println("Scenario completed successfully")
}

func generateBatch(batchIndex int, runID, factoryID string, windowStart time.Time, changed bool) []eventRequest {
	batch := make([]eventRequest, 0, itemsPerBatch)
	for i := 0; i < itemsPerBatch; i++ {
		n := batchIndex*itemsPerBatch + i
		machine := n % machineCount
		defects := n % 5
		if n%10 == 9 {
			defects = -1
		}
		duration := int64(500 + n%1000)
		if changed {
			duration++
			if defects >= 0 {
				defects++
			}
		}
		batch = append(batch, eventRequest{
			EventID:     fmt.Sprintf("E-%s-%05d", runID, n),
			EventTime:   windowStart.Add(time.Duration(n%3600) * time.Second).Format(time.RFC3339),
			MachineID:   fmt.Sprintf("M-%s-%02d", runID, machine),
			LineID:      fmt.Sprintf("L-%02d", machine%lineCount),
			FactoryID:   factoryID,
			DurationMs:  duration,
			DefectCount: defects,
		})
	}
	return batch
}

func sendAll(client *http.Client, baseURL string, batches [][]eventRequest, parallel int) *totals {
	result := &totals{}
	slots := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	for i, batch := range batches {
		wg.Add(1)
		slots <- struct{}{}
		go func(i int, batch []eventRequest) {
			defer wg.Done()
			defer func() { <-slots }()
			resp, err := sendBatch(client, baseURL, batch)
			if err != nil {
				err = fmt.Errorf("batch %d: %w", i, err)
			}
			result.add(resp, err)
		}(i, batch)
	}
	wg.Wait()
	return result
}

func sendBatch(client *http.Client, baseURL string, batch []eventRequest) (*batchResponse, error) {
	body, err := json.Marshal(batch)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(http.MethodPost, baseURL+"/events/batch", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var out batchResponse
	if err := doJSON(client, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func verifyStats(client *http.Client, baseURL string, batches [][]eventRequest, factoryID string, start, end time.Time) {
	machines := map[string]*machineStats{}
	lines := map[string]*topLine{}
	for _, batch := range batches {
		for _, e := range batch {
			m, ok := machines[e.MachineID]
			if !ok {
				m = &machineStats{}
				machines[e.MachineID] = m
			}
			l, ok := lines[e.LineID]
			if !ok {
				l = &topLine{LineID: e.LineID}
				lines[e.LineID] = l
			}
			m.EventsCount++
			l.EventCount++
			if e.DefectCount >= 0 {
				m.DefectsCount += int64(e.DefectCount)
				l.TotalDefects += int64(e.DefectCount)
			}
		}
	}

	for machineID, want := range machines {
		q := url.Values{"machineId": {machineID}, "start": {start.Format(time.RFC3339)}, "end": {end.Format(time.RFC3339)}}
		req, _ := http.NewRequest(http.MethodGet, baseURL+"/stats?"+q.Encode(), nil)
		var got machineStats
		if err := doJSON(client, req, &got); err != nil {
			fail("machine stats %s: %v", machineID, err)
		}
		if got.EventsCount != want.EventsCount || got.DefectsCount != want.DefectsCount {
			fail("machine %s: got events=%d defects=%d, want events=%d defects=%d",
				machineID, got.EventsCount, got.DefectsCount, want.EventsCount, want.DefectsCount)
		}
		fmt.Printf("Machine %s OK (events=%d defects=%d status=%s)\n", machineID, got.EventsCount, got.DefectsCount, got.Status)
	}

	q := url.Values{"factoryId": {factoryID}, "from": {start.Format(time.RFC3339)}, "to": {end.Format(time.RFC3339)}, "limit": {"100"}}
	req, _ := http.NewRequest(http.MethodGet, baseURL+"/stats/top-defect-lines?"+q.Encode(), nil)
	var got []topLine
	if err := doJSON(client, req, &got); err != nil {
		fail("top defect lines: %v", err)
	}
	if len(got) != len(lines) {
		fail("top defect lines: got %d lines, want %d", len(got), len(lines))
	}
	for i, line := range got {
		want := lines[line.LineID]
		if want == nil || want.TotalDefects != line.TotalDefects || want.EventCount != line.EventCount {
			fail("line %s: got %+v, want %+v", line.LineID, line, want)
		}
		if i > 0 && got[i-1].TotalDefects < line.TotalDefects {
			fail("top defect lines not ordered by total defects: %+v", got)
		}
	}
	fmt.Printf("Top defect lines OK (%d lines)\n", len(got))
}

func doJSON(client *http.Client, req *http.Request, out any) error {
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}
	return json.Unmarshal(body, out)
}

func expect(phase string, got *totals, want batchResponse) {
	if len(got.failures) > 0 {
		fail("%s: %d batches failed, first: %v", phase, len(got.failures), got.failures[0])
	}
	fmt.Printf("%s: accepted=%d deduped=%d updated=%d rejected=%d\n",
		phase, got.Accepted, got.Deduped, got.Updated, got.Rejected)
	if got.batchResponse != want {
		fail("%s: got %+v, want %+v", phase, got.batchResponse, want)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	os.Exit(1)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
