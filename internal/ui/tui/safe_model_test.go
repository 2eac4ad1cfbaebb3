package tui

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeModel_RecoversAndNamesActiveForm(t *testing.T) {
	cases := []struct {
		name      string
		recommend bool
		want      string
	}{
		{"yield", false, "Unexpected error in the yield form (see logs)"},
		{"recommendation", true, "Unexpected error in the recommendation form (see logs)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestModel(t, &stubService{})
			if tc.recommend {
				m, _ = update(t, m, f2Key)
			}
			// An out-of-range focus makes the next keystroke index past the fields.
			if m.active == tabYield {
				m.yield.panel.focus = -1
			} else {
				m.recommendation.panel.focus = -1
			}

			var buf bytes.Buffer
			s := wrapSafe(m, slog.New(slog.NewJSONHandler(&buf, nil)))

			var next any
			require.NotPanics(t, func() { next, _ = s.Update(typed("x")) })

			sm, ok := next.(safeModel)
			require.True(t, ok)
			assert.Equal(t, tc.want, sm.m.toast)
			assert.Contains(t, buf.String(), `"msg":"panic.recovered"`)
			assert.Contains(t, buf.String(), `"form":"`+m.active.form()+`"`)
		})
	}
}
