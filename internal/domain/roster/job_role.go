package roster

import "strings"

// JobRoleDisplay carries the printable puesto label plus its sort
// precedence in exports: caja first, then camarero, then runner/bacha.
type JobRoleDisplay struct {
	Label string
	Order int
}

func DisplayJobRole(jobRole string) JobRoleDisplay {
	if jobRole == "" {
		return JobRoleDisplay{Label: "", Order: 99}
	}

	switch strings.ToLower(jobRole) {
	case "caja":
		return JobRoleDisplay{Label: "caja", Order: 1}
	case "camarero", "camarero/a":
		return JobRoleDisplay{Label: "camarero/a", Order: 2}
	case "runner_bacha", "runner/bacha":
		return JobRoleDisplay{Label: "runner/bacha", Order: 3}
	}

	return JobRoleDisplay{Label: jobRole, Order: 98}
}

// NormalizeJobRole maps free-text puesto values onto the stored set,
// falling back to camarero.
func NormalizeJobRole(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "caja":
		return "caja"
	case "camarero", "camarero/a":
		return "camarero"
	case "runner_bacha", "runner/bacha":
		return "runner_bacha"
	}
	return "camarero"
}
