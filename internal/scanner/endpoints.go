package scanner

import (
	"context"

	"github.com/SpaceLeam/spring-security-scanner/internal/models"
)

// TestEndpoints checks the Spring Boot management and docs paths for exposure.
// Any status below 400 counts; paths that fail to answer are skipped.
func (e *Engine) TestEndpoints(ctx context.Context) ([]models.ExposedEndpoint, error) {
	e.Logger.Info("Testing Spring Boot endpoints...")
	exposed := make([]models.ExposedEndpoint, 0)

	for _, path := range SensitiveEndpoints {
		if err := e.aborted(ctx); err != nil {
			return nil, err
		}

		resp, err := e.Session.Get(ctx, e.url(path), e.Config.RequestTimeout)
		if err != nil {
			if abort := e.aborted(ctx); abort != nil {
				return nil, abort
			}
			e.Logger.Debug("%s: %v", path, err)
			continue
		}

		if resp.StatusCode < 400 {
			exposed = append(exposed, models.ExposedEndpoint{Path: path, StatusCode: resp.StatusCode})
			e.Logger.Warn("Exposed endpoint: %s - Status: %d", path, resp.StatusCode)
		}
	}

	if err := e.aborted(ctx); err != nil {
		return nil, err
	}
	return exposed, nil
}
