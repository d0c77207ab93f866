//go:build unit

package layout_test

import (
	"testing"

	"deskbooker/internal/domain/layout"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("decodes a layout document", func(t *testing.T) {
		doc := []byte(`{
			"schemaVersion": 1,
			"objects": [
				{"type": "desk", "deskId": 7, "deskNumber": 3},
				{"type": "wall"},
				{"type": "desk", "deskNumber": 4}
			]
		}`)

		l, err := layout.Parse(2, 1, 800, 600, doc)
		require.NoError(t, err)

		deskID := int64(7)
		num3, num4 := 3, 4
		want := &layout.Layout{
			RoomID:       2,
			Version:      1,
			CanvasWidth:  800,
			CanvasHeight: 600,
			Objects: []layout.Object{
				{Type: "desk", DeskID: &deskID, DeskNumber: &num3},
				{Type: "wall"},
				{Type: "desk", DeskNumber: &num4},
			},
		}
		if diff := cmp.Diff(want, l); diff != "" {
			t.Errorf("layout mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		_, err := layout.Parse(2, 1, 800, 600, []byte(`{"objects": [`))
		assert.Error(t, err)
	})
}

func TestHasDeskObjects(t *testing.T) {
	t.Run("nil layout has no desks", func(t *testing.T) {
		var l *layout.Layout
		assert.False(t, l.HasDeskObjects())
	})

	t.Run("decoration-only layout has no desks", func(t *testing.T) {
		l := &layout.Layout{Objects: []layout.Object{{Type: "wall"}, {Type: "label"}}}
		assert.False(t, l.HasDeskObjects())
	})

	t.Run("one desk object is enough", func(t *testing.T) {
		l := &layout.Layout{Objects: []layout.Object{{Type: "wall"}, {Type: "desk"}}}
		assert.True(t, l.HasDeskObjects())
	})
}

func TestDeskRefs(t *testing.T) {
	id7, id9 := int64(7), int64(9)
	l := &layout.Layout{Objects: []layout.Object{
		{Type: "desk", DeskID: &id7},
		{Type: "desk"}, // desk object without an id reference
		{Type: "wall", DeskID: &id9},
		{Type: "desk", DeskID: &id9},
	}}

	assert.Equal(t, []int64{7, 9}, l.DeskRefs())
}
