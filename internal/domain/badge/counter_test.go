package badge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCounter(t *testing.T) {
	tests := []struct {
		title     string
		want      string
		wantMatch bool
	}{
		{title: "Inbox (7)", want: "7", wantMatch: true},
		{title: "Inbox (42) - mail", want: "42", wantMatch: true},
		{title: "Updates [12+]", want: "12", wantMatch: true},
		{title: "(99+)", want: "99", wantMatch: true},
		{title: "Chat {3}", want: "3", wantMatch: true},
		{title: "Mixed (4] brackets", want: "4", wantMatch: true},
		{title: "Empty ()", want: "", wantMatch: true},
		{title: "No count here", want: "", wantMatch: false},
		{title: "Words (draft)", want: "", wantMatch: false},
		{title: "", want: "", wantMatch: false},
		{title: "First (1) then (2)", want: "1", wantMatch: true},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got, ok := ParseCounter(tt.title)
			assert.Equal(t, tt.wantMatch, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
