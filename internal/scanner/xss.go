package scanner

import (
	"context"
	"fmt"
	"strings"

	"github.com/SpaceLeam/spring-security-scanner/internal/utils"
)

// TestXSS looks for reflected XSS on the search style endpoints.
// A payload counts only if it comes back byte-for-byte in the body; the first
// hit ends testing for that URL.
func (e *Engine) TestXSS(ctx context.Context) ([]string, error) {
	e.Logger.Info("Testing for XSS vulnerabilities...")
	vulnerable := make([]string, 0)

	for _, target := range XSSTargets {
		base := e.Config.TargetURL + target

		for _, payload := range XSSPayloads[:payloadsPerTarget] {
			if err := e.aborted(ctx); err != nil {
				return nil, err
			}

			resp, err := e.Session.Get(ctx, base+utils.Quote(payload), e.Config.RequestTimeout)
			if err != nil {
				if abort := e.aborted(ctx); abort != nil {
					return nil, abort
				}
				e.Logger.Debug("%s: %v", base, err)
				continue
			}

			if strings.Contains(resp.Body, payload) {
				vulnerable = append(vulnerable, fmt.Sprintf("Reflected XSS in %s", base))
				e.Logger.Warn("Possible XSS vulnerability in %s", base)
				break
			}
		}
	}

	if err := e.aborted(ctx); err != nil {
		return nil, err
	}
	return vulnerable, nil
}
