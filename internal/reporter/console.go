package reporter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/SpaceLeam/spring-security-scanner/internal/models"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// PrintConsoleSummary prints the target and the four finding counts
func PrintConsoleSummary(w io.Writer, target string, result models.ScanResult) error {
	rule := strings.Repeat("=", 50)

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, color.CyanString("SECURITY SCAN SUMMARY"))
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Target: %s\n", target)

	table := tablewriter.NewWriter(w)
	table.Header("Check", "Count")

	rows := [][]string{
		{"Exposed endpoints", strconv.Itoa(len(result.ExposedEndpoints))},
		{"XSS vulnerabilities", strconv.Itoa(len(result.XSSVulnerabilities))},
		{"SQL Injection points", strconv.Itoa(len(result.SQLInjections))},
		{"Missing security headers", strconv.Itoa(len(result.MissingHeaders))},
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintln(w, rule)

	if total := len(result.ExposedEndpoints) + len(result.XSSVulnerabilities) +
		len(result.SQLInjections) + len(result.MissingHeaders); total == 0 {
		fmt.Fprintln(w, color.GreenString("✅ No issues found."))
	}
	return nil
}
