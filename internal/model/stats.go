package model

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// JobStats is a row of job_stats: five independent counters.
type JobStats struct {
	ID         int64 `json:"id" db:"id"`
	Applied    int32 `json:"applied" db:"applied"`
	Interviews int32 `json:"interviews" db:"interviews"`
	Offers     int32 `json:"offers" db:"offers"`
	Rejected   int32 `json:"rejected" db:"rejected"`
	Pending    int32 `json:"pending" db:"pending"`
}

// Summary renders the counters as a single activity line.
func (s *JobStats) Summary() string {
	return fmt.Sprintf("Job stats recorded: %d applied, %d interviews, %d offers, %d rejected, %d pending",
		s.Applied, s.Interviews, s.Offers, s.Rejected, s.Pending)
}

// GetJobStatsRequest is the (empty) payload of GET /stats/.
type GetJobStatsRequest struct{}

func (r *GetJobStatsRequest) Validate() error {
	return nil
}

// CreateJobStatsPayload is the payload of POST /stats/.
//
// Every counter is optional; an absent counter stays 0.
type CreateJobStatsPayload struct {
	Applied    Counter `json:"applied"`
	Interviews Counter `json:"interviews"`
	Offers     Counter `json:"offers"`
	Rejected   Counter `json:"rejected"`
	Pending    Counter `json:"pending"`
}

func (p *CreateJobStatsPayload) Validate() error {
	return nil
}

// maxCounterText bounds the length of a counter sent as a string.
const maxCounterText = 1000

var (
	counterType = reflect.TypeOf(Counter(0))

	zeroFraction = regexp.MustCompile(`\.0*\s*$`)
)

// Counter is a job stats counter as accepted in a request body.
//
// Integral JSON numbers (5, 5.0, 1e3) and numeric strings ("5", " 7 ")
// within the INTEGER column range are accepted. Fractions, other strings,
// booleans and null are rejected with a *json.UnmarshalTypeError, so the
// decoder reports the offending field.
type Counter int32

func (c *Counter) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if text == "" {
		return &json.UnmarshalTypeError{Value: "empty", Type: counterType}
	}

	var (
		n  int32
		ok bool
	)

	switch text[0] {
	case 'n':
		return &json.UnmarshalTypeError{Value: "null", Type: counterType}
	case '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		n, ok = parseCounterString(str)
		if !ok {
			return &json.UnmarshalTypeError{Value: "string", Type: counterType}
		}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		n, ok = parseCounterNumber(text)
		if !ok {
			return &json.UnmarshalTypeError{Value: "number " + text, Type: counterType}
		}
	case 't', 'f':
		return &json.UnmarshalTypeError{Value: "bool", Type: counterType}
	default:
		return &json.UnmarshalTypeError{Value: "object", Type: counterType}
	}

	*c = Counter(n)
	return nil
}

// parseCounterString accepts a base-10 integer, optionally followed by a
// zero fraction such as "5.0", with surrounding whitespace.
func parseCounterString(str string) (int32, bool) {
	if len(str) > maxCounterText {
		return 0, false
	}

	str = strings.TrimSpace(zeroFraction.ReplaceAllString(str, ""))
	n, err := strconv.ParseInt(str, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// parseCounterNumber accepts a JSON number literal with an integral value.
func parseCounterNumber(text string) (int32, bool) {
	if n, err := strconv.ParseInt(text, 10, 32); err == nil {
		return int32(n), true
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int32(f), true
}
