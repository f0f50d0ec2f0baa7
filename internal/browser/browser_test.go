package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		goos string
		name string
		args []string
	}{
		{"linux", "xdg-open", []string{"/tmp/chart.html"}},
		{"freebsd", "xdg-open", []string{"/tmp/chart.html"}},
		{"darwin", "open", []string{"/tmp/chart.html"}},
		{"windows", "cmd", []string{"/c", "start", "", "/tmp/chart.html"}},
	}
	for _, tt := range tests {
		name, args := Command(tt.goos, "/tmp/chart.html")
		assert.Equal(t, tt.name, name, tt.goos)
		assert.Equal(t, tt.args, args, tt.goos)
	}
}
