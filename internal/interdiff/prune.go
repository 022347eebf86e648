package interdiff

import "regexp"

// gitHeaders matches extended git header lines that patchutils' interdiff
// misreads on older distributions.
var gitHeaders = regexp.MustCompile(`(?m)^(?:old mode|new mode|deleted file mode|new file mode|copy from|copy to|rename from|rename to|similarity index|dissimilarity index|index) .+\n`)

// PruneGitHeaders removes extended git header lines from a diff. Applying it
// twice yields the same text as applying it once.
func PruneGitHeaders(diff string) string {
	return gitHeaders.ReplaceAllString(diff, "")
}
