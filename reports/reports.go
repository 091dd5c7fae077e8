// Package reports wraps the reporting endpoints.
package reports

import (
	"context"

	"github.com/pkg/errors"

	"github.com/jrsteele09/parkctl/apiclient"
)

const baseRoute = "/api/v1/parking/reports"

// Monthly is the result of generating the monthly report on the backend.
type Monthly struct {
	Message    string `json:"message"`
	ReportFile string `json:"report_file"`
}

// Service wraps the report endpoints.
type Service struct {
	client *apiclient.Client
}

func NewService(client *apiclient.Client) *Service {
	return &Service{client: client}
}

// GenerateMonthly asks the backend to produce the current monthly report and
// returns where it was written.
func (s *Service) GenerateMonthly(ctx context.Context) (Monthly, error) {
	var resp Monthly
	if err := s.client.Get(ctx, baseRoute+"/monthly", &resp); err != nil {
		return Monthly{}, errors.Wrap(err, "[GenerateMonthly] reports endpoint")
	}
	return resp, nil
}
