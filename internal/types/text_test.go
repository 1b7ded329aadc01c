package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextAcceptsAnyJSONValue(t *testing.T) {
	tests := []struct {
		in   string
		want Text
	}{
		{`"Login"`, "Login"},
		{`"a \"quoted\" word"`, `a "quoted" word`},
		{`1704067200000`, "1704067200000"},
		{`-3.5e2`, "-3.5e2"},
		{`true`, "true"},
		{`null`, ""},
		{`{"k": 1}`, `{"k": 1}`},
		{`[1, "a"]`, `[1, "a"]`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var got Text
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestActivityWithNumericTimestamp(t *testing.T) {
	var req ReportsRequest
	body := `{"email": null, "activities": [{"description": "Login", "timestamp": 1704067200000}]}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	assert.Equal(t, Text(""), req.Email)
	require.Len(t, req.Activities, 1)
	assert.Equal(t, Text("Login"), req.Activities[0].Description)
	assert.Equal(t, "1704067200000", req.Activities[0].Timestamp.String())
}
