package evaluate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "bare object",
			input: `{"a":1}`,
			want:  `{"a":1}`,
		},
		{
			name:  "prose wrapped",
			input: "Here is the evaluation:\n{\"score\":4}\nHope that helps!",
			want:  `{"score":4}`,
		},
		{
			name:  "code fence",
			input: "```json\n{\"score\":4}\n```",
			want:  `{"score":4}`,
		},
		{
			name:  "nested objects",
			input: `{"outer":{"inner":2}}`,
			want:  `{"outer":{"inner":2}}`,
		},
		{
			name:  "braces inside strings",
			input: `{"feedback":"use {braces} carefully"}`,
			want:  `{"feedback":"use {braces} carefully"}`,
		},
		{
			name:  "escaped quotes inside strings",
			input: `{"feedback":"she said \"hi\" twice"}`,
			want:  `{"feedback":"she said \"hi\" twice"}`,
		},
		{
			name:  "first of two objects",
			input: `{"a":1} {"b":2}`,
			want:  `{"a":1}`,
		},
		{
			name:    "no object",
			input:   "no json here",
			wantErr: true,
		},
		{
			name:    "unbalanced",
			input:   `{"a":1`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FirstJSONObject(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}
