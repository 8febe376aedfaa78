package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"granite_estimator/internal/domain/estimator"
	"strconv"
	"strings"
)

// FlexFloat accepts a JSON number or a numeric string. Empty strings and null
// decode to zero.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", s)
		}
		*f = FlexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = FlexFloat(v)
	return nil
}

// FlexBool accepts true/false or the form values "yes"/"no", "on"/"off", "1"/"0".
type FlexBool bool

func (f *FlexBool) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = false
		return nil
	}
	if b[0] != '"' {
		var v bool
		if err := json.Unmarshal(b, &v); err != nil {
			var n float64
			if nErr := json.Unmarshal(b, &n); nErr != nil {
				return err
			}
			v = n != 0
		}
		*f = FlexBool(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "on", "1":
		*f = true
	case "", "no", "n", "false", "off", "0":
		*f = false
	default:
		return fmt.Errorf("not a yes/no value: %q", s)
	}
	return nil
}

// EstimateRequest is the payload posted by the website estimate widget.
type EstimateRequest struct {
	TotalSqFt    FlexFloat `json:"totalSqFt"`
	MaterialKey  string    `json:"materialKey"`
	MaterialType string    `json:"materialType"`
	Color        string    `json:"color"`
	Vendor       string    `json:"vendor"`
	CustomerName string    `json:"customerName"`
	JobName      string    `json:"jobName"`

	Demo                  FlexBool  `json:"demo"`
	SinkQty               FlexFloat `json:"sinkQty"`
	SinkType              string    `json:"sinkType"`
	CooktopQty            FlexFloat `json:"cooktopQty"`
	CooktopType           string    `json:"cooktopType"`
	Backsplash            FlexBool  `json:"backsplash"`
	BacksplashCostPerSqFt FlexFloat `json:"backsplashCostPerSqFt"`
	EdgeDetail            string    `json:"edgeDetail"`
	JobType               string    `json:"jobType"`
}

// ResolveMaterialKey picks the price lookup key: an explicit key first, then
// the material type, then the color.
func (r EstimateRequest) ResolveMaterialKey() string {
	for _, v := range []string{r.MaterialKey, r.MaterialType, r.Color} {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func (r EstimateRequest) ToProjectRequest() estimator.ProjectRequest {
	return estimator.ProjectRequest{
		TotalAreaSqFt:         float64(r.TotalSqFt),
		MaterialKey:           r.ResolveMaterialKey(),
		DemoRequired:          bool(r.Demo),
		SinkCount:             float64(r.SinkQty),
		SinkTier:              estimator.ParseTier(r.SinkType),
		CooktopCount:          float64(r.CooktopQty),
		CooktopTier:           estimator.ParseTier(r.CooktopType),
		BacksplashRequired:    bool(r.Backsplash),
		BacksplashCostPerSqFt: float64(r.BacksplashCostPerSqFt),
		EdgeDetail:            estimator.ParseEdgeDetail(r.EdgeDetail),
		JobType:               estimator.ParseJobType(r.JobType),
		CustomerName:          strings.TrimSpace(r.CustomerName),
		JobName:               strings.TrimSpace(r.JobName),
		Vendor:                strings.TrimSpace(r.Vendor),
		Color:                 strings.TrimSpace(r.Color),
	}
}
