package scanner

import (
	"context"
	"net/http"

	"github.com/SpaceLeam/spring-security-scanner/internal/utils"
)

// TestCommandInjection posts shell metacharacters as a filename to the
// file handling endpoints. A 500 or a request timeout is logged as a possible
// injection; nothing is added to the scan result.
func (e *Engine) TestCommandInjection(ctx context.Context) error {
	e.Logger.Info("Testing for Command Injection...")

	for _, endpoint := range CommandInjectionTargets {
		for _, payload := range CommandInjectionPayloads {
			if err := e.aborted(ctx); err != nil {
				return err
			}

			body := map[string]string{"filename": payload}
			resp, err := e.Session.PostJSON(ctx, e.url(endpoint), body, e.Config.CommandTimeout)
			if err != nil {
				if abort := e.aborted(ctx); abort != nil {
					return abort
				}
				if utils.IsTimeout(err) {
					e.Logger.Warn("Timeout on %s with payload %s - possible command injection", endpoint, payload)
				} else {
					e.Logger.Debug("%s: %v", endpoint, err)
				}
				continue
			}

			if resp.StatusCode == http.StatusInternalServerError {
				e.Logger.Warn("Possible command injection in %s", endpoint)
			}
		}
	}

	return e.aborted(ctx)
}
