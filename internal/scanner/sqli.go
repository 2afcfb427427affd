package scanner

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// TestSQLInjection runs the login bypass check followed by the error-based
// check and returns the findings of both.
func (e *Engine) TestSQLInjection(ctx context.Context) ([]string, error) {
	e.Logger.Info("Testing for SQL Injection...")
	vulnerable := make([]string, 0)

	found, err := e.testLoginBypass(ctx)
	if err != nil {
		return nil, err
	}
	vulnerable = append(vulnerable, found...)

	found, err = e.testErrorBased(ctx)
	if err != nil {
		return nil, err
	}
	return append(vulnerable, found...), nil
}

// testLoginBypass posts a tautology username; a 200 carrying a token means
// the query accepted it.
func (e *Engine) testLoginBypass(ctx context.Context) ([]string, error) {
	if err := e.aborted(ctx); err != nil {
		return nil, err
	}

	login := map[string]string{
		"username": LoginBypassUser,
		"password": LoginBypassPass,
	}
	resp, err := e.Session.PostJSON(ctx, e.url(LoginPath), login, e.Config.RequestTimeout)
	if err != nil {
		if abort := e.aborted(ctx); abort != nil {
			return nil, abort
		}
		e.Logger.Debug("%s: %v", LoginPath, err)
		return nil, nil
	}

	if resp.StatusCode == http.StatusOK && strings.Contains(resp.Body, loginSuccessMarker) {
		e.Logger.Warn("Possible SQL Injection in login endpoint")
		return []string{"Login SQL Injection"}, nil
	}
	return nil, nil
}

func (e *Engine) testErrorBased(ctx context.Context) ([]string, error) {
	var vulnerable []string

	for _, endpoint := range SQLTargets {
		for _, payload := range SQLPayloads[:payloadsPerTarget] {
			if err := e.aborted(ctx); err != nil {
				return nil, err
			}

			query := url.Values{"q": {payload}}
			resp, err := e.Session.Get(ctx, e.url(endpoint)+"?"+query.Encode(), e.Config.RequestTimeout)
			if err != nil {
				if abort := e.aborted(ctx); abort != nil {
					return nil, abort
				}
				e.Logger.Debug("%s: %v", endpoint, err)
				continue
			}

			if containsSQLError(resp.Body) {
				vulnerable = append(vulnerable, fmt.Sprintf("SQLi in %s", endpoint))
				e.Logger.Warn("Possible SQL Injection in %s", endpoint)
				break
			}
		}
	}

	if err := e.aborted(ctx); err != nil {
		return nil, err
	}
	return vulnerable, nil
}

func containsSQLError(body string) bool {
	lower := strings.ToLower(body)
	for _, indicator := range SQLErrorIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}
