package audittrail

import (
	"strings"
	"testing"

	"github.com/opsdesk/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short"))
	exact := strings.Repeat("a", maxIdentifierLen)
	assert.Equal(t, exact, truncate(exact))

	long := strings.Repeat("é", maxIdentifierLen+10)
	got := truncate(long)
	assert.Equal(t, maxIdentifierLen, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestEmailLocalPart(t *testing.T) {
	assert.Equal(t, "jane.doe", emailLocalPart("jane.doe@example.com"))
	assert.Equal(t, "no-at-sign", emailLocalPart("no-at-sign"))
	assert.Equal(t, "@example.com", emailLocalPart("@example.com"))
	assert.Equal(t, "", emailLocalPart(""))
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  plain   text\n here ", "plain text here"},
		{"<p>Printer on <b>floor 3</b> is jammed</p>", "Printer on floor 3 is jammed"},
		{"<style>p{color:red}</style><p>Hi&nbsp;there</p><script>alert(1)</script>", "Hi there"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, plainText(tt.in), tt.in)
	}
}

func TestIdentifierForRichTextRecords(t *testing.T) {
	entries := Resolve([]models.ChangeRecord{
		record("1", "create", "feedback", nil, nil,
			map[string]any{"message": "<p>The <em>VPN</em> drops every hour</p>"}),
		record("2", "update", "documents", nil, nil,
			map[string]any{"file_name": "handbook-2026.pdf", "content": "<h1>Ignored</h1>"}),
		record("3", "create", "projects", nil, nil,
			map[string]any{"name": "Office move"}),
	}, nil)

	require.Len(t, entries, 3)
	assert.Equal(t, "The VPN drops every hour", entries[0].ObjectIdentifier)
	assert.Equal(t, "handbook-2026.pdf", entries[1].ObjectIdentifier)
	assert.Equal(t, "Office move", entries[2].ObjectIdentifier)
}
