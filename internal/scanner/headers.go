package scanner

import (
	"context"
)

// CheckSecurityHeaders fetches the base URL once and lists the required
// security headers it did not send. A failed request yields an empty list.
func (e *Engine) CheckSecurityHeaders(ctx context.Context) ([]string, error) {
	e.Logger.Info("Checking security headers...")
	missing := make([]string, 0)

	if err := e.aborted(ctx); err != nil {
		return nil, err
	}

	resp, err := e.Session.Get(ctx, e.Config.TargetURL, e.Config.RequestTimeout)
	if err != nil {
		if abort := e.aborted(ctx); abort != nil {
			return nil, abort
		}
		e.Logger.Debug("header check: %v", err)
		return missing, nil
	}

	for _, header := range RequiredSecurityHeaders {
		if len(resp.Header.Values(header.Name)) == 0 {
			missing = append(missing, header.Name)
			e.Logger.Warn("Missing security header: %s", header.Name)
		}
	}

	if err := e.aborted(ctx); err != nil {
		return nil, err
	}
	return missing, nil
}
