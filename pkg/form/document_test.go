package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/createrainforest/bosweb/pkg/form"
)

func TestParsePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want form.Path
	}{
		{"email", form.Path{Name: "email"}},
		{"numsqm[4]", form.Path{Name: "numsqm", Index: 4, Indexed: true}},
		{"form.email", form.Path{Form: "form", Name: "email"}},
		{"numsqm[0]?main", form.Path{Name: "numsqm", Frame: "main", Indexed: true}},
		{"order.numsqm[2]?main", form.Path{Form: "order", Name: "numsqm", Frame: "main", Index: 2, Indexed: true}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := form.ParsePath(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}

	t.Run("rejects malformed selectors", func(t *testing.T) {
		for _, in := range []string{"", "   ", "?frame", "[3]"} {
			_, err := form.ParsePath(in)
			assert.ErrorIs(t, err, form.ErrInvalidPath, in)
		}
	})
}

func TestStripIndex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "numsqm", form.StripIndex("numsqm[4]"))
	assert.Equal(t, "a.b", form.StripIndex("a[1].b[22]"))
	assert.Equal(t, "plain", form.StripIndex("plain"))
}

func TestDocument_Resolve(t *testing.T) {
	t.Parallel()

	login := form.NewForm("form",
		&form.Text{Name: "email", Value: "top@example.org"},
		&form.Text{Name: "password", Type: form.KindPassword, Value: "pw"},
	)
	order := form.NewForm("order",
		&form.Text{Name: "email", Value: "order@example.org"},
		&form.Checkbox{Name: "gift"},
	)
	frameForm := form.NewForm("inner", &form.Text{Name: "plz", Value: "12345"})
	layerForm := form.NewForm("layered", &form.TextArea{Name: "note", Value: "deep"})

	doc := form.NewDocument(login, order).
		AddFrame("main", form.NewDocument(frameForm)).
		AddLayer(form.NewDocument(layerForm))

	t.Run("searches forms in order", func(t *testing.T) {
		c, err := doc.Resolve("email")
		require.NoError(t, err)
		assert.Equal(t, "top@example.org", c.(*form.Text).Value)
	})

	t.Run("dotted path names the form", func(t *testing.T) {
		c, err := doc.Resolve("order.email")
		require.NoError(t, err)
		assert.Equal(t, "order@example.org", c.(*form.Text).Value)
	})

	t.Run("index is ignored for lookup", func(t *testing.T) {
		c, err := doc.Resolve("gift[0]")
		require.NoError(t, err)
		assert.Equal(t, form.KindCheckbox, c.Kind())
	})

	t.Run("frame suffix resolves in child frame", func(t *testing.T) {
		c, err := doc.Resolve("plz?main")
		require.NoError(t, err)
		assert.Equal(t, "12345", c.(*form.Text).Value)

		_, err = doc.Resolve("plz")
		assert.ErrorIs(t, err, form.ErrFieldNotFound)
	})

	t.Run("unknown frame", func(t *testing.T) {
		_, err := doc.Resolve("plz?side")
		assert.ErrorIs(t, err, form.ErrFrameNotFound)
	})

	t.Run("falls back to nested layers", func(t *testing.T) {
		c, err := doc.Resolve("note")
		require.NoError(t, err)
		assert.Equal(t, form.KindTextArea, c.Kind())
	})

	t.Run("direct controls come before forms", func(t *testing.T) {
		page := form.NewDocument(login).
			AddControl(&form.Text{Name: "email", Value: "loose@example.org"}).
			AddControl(&form.Checkbox{Name: "remember", Checked: true}).
			AddControl(nil)

		c, err := page.Resolve("email")
		require.NoError(t, err)
		assert.Equal(t, "loose@example.org", c.(*form.Text).Value)

		c, err = page.Resolve("remember[0]")
		require.NoError(t, err)
		assert.True(t, form.IsChecked(c, form.Path{Name: "remember", Indexed: true}))

		c, err = page.Resolve("form.email")
		require.NoError(t, err)
		assert.Equal(t, "top@example.org", c.(*form.Text).Value, "dotted path skips direct controls")
	})

	t.Run("missing field", func(t *testing.T) {
		_, err := doc.Resolve("nope")
		assert.ErrorIs(t, err, form.ErrFieldNotFound)
	})

	t.Run("form and frame lookups", func(t *testing.T) {
		f, ok := doc.Form("order")
		require.True(t, ok)
		assert.Equal(t, "order", f.Name())

		_, ok = doc.Frame("main")
		assert.True(t, ok)
		_, ok = doc.Form("missing")
		assert.False(t, ok)
	})
}

func TestForm_Resolve(t *testing.T) {
	t.Parallel()

	f := form.NewForm("form", &form.Text{Name: "email", Value: "a@b.co"})

	c, err := f.Resolve("email")
	require.NoError(t, err)
	assert.Equal(t, "email", c.FieldName())

	c, err = f.Resolve("form.email")
	require.NoError(t, err)
	assert.Equal(t, "email", c.FieldName())

	_, err = f.Resolve("other.email")
	assert.ErrorIs(t, err, form.ErrFieldNotFound)

	_, err = f.Resolve("email?main")
	assert.ErrorIs(t, err, form.ErrFrameNotFound)
}
