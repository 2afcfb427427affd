package scanner

import (
	"context"
	"errors"
	"fmt"

	"github.com/SpaceLeam/spring-security-scanner/internal/models"
	"github.com/SpaceLeam/spring-security-scanner/internal/utils"
	"github.com/google/uuid"
)

var (
	// ErrInterrupted is returned when the scan context is cancelled mid-run
	ErrInterrupted = errors.New("scan interrupted")
	// ErrScanFailed wraps any other failure that aborts the run
	ErrScanFailed = errors.New("scan failed")
)

// Engine runs every check against one target, one request at a time
type Engine struct {
	Config  models.ScanConfig
	Session *utils.Session
	Logger  *utils.Logger
	ScanID  string
}

// NewEngine creates a new scanner engine. A nil logger logs to stderr.
func NewEngine(config models.ScanConfig, logger *utils.Logger) *Engine {
	config = config.WithDefaults()
	config.TargetURL = utils.NormalizeURL(config.TargetURL)
	if logger == nil {
		logger = utils.NewLogger(config.Verbose)
	}

	return &Engine{
		Config:  config,
		Session: utils.NewSession(utils.NewHTTPClient(config.Insecure), config.Token),
		Logger:  logger,
		ScanID:  uuid.NewString(),
	}
}

// RunAll executes all checks in a fixed order and assembles the results.
// It returns either a complete result or an abort error, never both.
func (e *Engine) RunAll(ctx context.Context) (result models.ScanResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = models.ScanResult{}
			err = fmt.Errorf("%w: %v", ErrScanFailed, r)
		}
	}()

	result = models.NewScanResult()

	if result.ExposedEndpoints, err = e.TestEndpoints(ctx); err != nil {
		return models.ScanResult{}, err
	}
	if result.XSSVulnerabilities, err = e.TestXSS(ctx); err != nil {
		return models.ScanResult{}, err
	}
	if result.SQLInjections, err = e.TestSQLInjection(ctx); err != nil {
		return models.ScanResult{}, err
	}
	// Command injection signals are reported through the log only.
	if err = e.TestCommandInjection(ctx); err != nil {
		return models.ScanResult{}, err
	}
	if result.MissingHeaders, err = e.CheckSecurityHeaders(ctx); err != nil {
		return models.ScanResult{}, err
	}

	return result, nil
}

// aborted reports a cancelled or expired scan context as an abort error
func (e *Engine) aborted(ctx context.Context) error {
	err := ctx.Err()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %v", ErrInterrupted, err)
	default:
		return fmt.Errorf("%w: %v", ErrScanFailed, err)
	}
}

func (e *Engine) url(path string) string {
	return utils.JoinURL(e.Config.TargetURL, path)
}
