package export

import (
	"regexp"
	"strings"
)

var reUnsafeLabel = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// SafeLabel sanitizes a run label for use in file names.
func SafeLabel(label string) string {
	return strings.Trim(reUnsafeLabel.ReplaceAllString(label, "_"), "_")
}

var regionFolder = strings.NewReplacer(" ", "_", "/", "_", `\`, "_", ":", "_")

// SafeRegion sanitizes a region name for use in file names; blank regions
// become "All".
func SafeRegion(region string) string {
	if region == "" {
		region = "All"
	}
	return regionFolder.Replace(region)
}
