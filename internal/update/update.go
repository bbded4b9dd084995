// Package update checks GitHub for a newer release of the tools.
package update

import (
	"fmt"
	"io"

	"github.com/tcnksm/go-latest"
)

// Source is where releases are published.
var Source = &latest.GithubTag{
	Owner:      "acs-workspace",
	Repository: "acstools",
}

// Check prints a notice to w when a newer release exists. When announceCurrent
// is set it also confirms an up-to-date version. Network failures are silent.
func Check(w io.Writer, currentVer string, announceCurrent bool) {
	res, err := latest.Check(Source, currentVer)
	if err != nil {
		return
	}
	fmt.Fprint(w, Notice(res, currentVer, announceCurrent))
}

// Notice formats the outcome of a version check.
func Notice(res *latest.CheckResponse, currentVer string, announceCurrent bool) string {
	if res.Outdated {
		return fmt.Sprintf("\n✨ A new version is available: %s (you have %s)\n"+
			"👉 Download it from https://github.com/%s/%s/releases\n",
			res.Current, currentVer, Source.Owner, Source.Repository)
	}
	if announceCurrent {
		return fmt.Sprintf("✅ You are using the latest version: %s\n", currentVer)
	}
	return ""
}
