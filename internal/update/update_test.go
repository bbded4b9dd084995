package update

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tcnksm/go-latest"
)

func TestNotice(t *testing.T) {
	outdated := &latest.CheckResponse{Current: "1.2.0", Outdated: true}
	current := &latest.CheckResponse{Current: "1.2.0"}

	assert.Contains(t, Notice(outdated, "1.0.0", false), "A new version is available: 1.2.0 (you have 1.0.0)")
	assert.Contains(t, Notice(outdated, "1.0.0", false), "/acs-workspace/acstools/releases")
	assert.Equal(t, "✅ You are using the latest version: 1.2.0\n", Notice(current, "1.2.0", true))
	assert.Empty(t, Notice(current, "1.2.0", false))
}
