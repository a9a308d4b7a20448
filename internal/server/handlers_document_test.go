package server

import (
	"context"
	"net/http"
	"testing"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDocument(t *testing.T) {
	env := newTestServer(t)

	w := env.do(t, http.MethodGet, "/document", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody[DocumentResponse](t, w)
	assert.Equal(t, types.Demo(), resp.Document)
	assert.Equal(t, uint64(0), resp.Version)
}

func TestReplaceDocument(t *testing.T) {
	env := newTestServer(t)

	doc := types.Empty()
	doc.PersonalInfo.FullName = "Ada Lovelace"
	w := env.do(t, http.MethodPut, "/document", doc)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ada Lovelace", env.store.Current().PersonalInfo.FullName)

	w = env.do(t, http.MethodPut, "/document", `{"personalInfo": {}, "themeColor": "red"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Ada Lovelace", env.store.Current().PersonalInfo.FullName)

	w = env.do(t, http.MethodPut, "/document", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetPersonalField(t *testing.T) {
	env := newTestServer(t)

	w := env.do(t, http.MethodPut, "/document/personal/fullName", types.FieldValueRequest{Value: "Jane Roe"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[DocumentResponse](t, w)
	assert.Equal(t, "Jane Roe", resp.Document.PersonalInfo.FullName)
	assert.Equal(t, uint64(1), resp.Version)

	w = env.do(t, http.MethodPut, "/document/personal/favoriteColor", types.FieldValueRequest{Value: "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddEntry(t *testing.T) {
	env := newTestServer(t, func(d *Deps) { d.Store = document.NewStore(types.Empty()) })

	w := env.do(t, http.MethodPost, "/document/experience", types.Experience{Company: "Acme", JobTitle: "Engineer"})
	require.Equal(t, http.StatusCreated, w.Code)

	doc := env.store.Current()
	require.Len(t, doc.Experience, 1)
	assert.Equal(t, "Acme", doc.Experience[0].Company)
	assert.NotEmpty(t, doc.Experience[0].ID)

	w = env.do(t, http.MethodPost, "/document/education", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, env.store.Current().Education, 1)

	w = env.do(t, http.MethodPost, "/document/skills", `{"name": "Go", "level": "expert"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	skills := env.store.Current().Skills
	require.Len(t, skills, 1)
	assert.Equal(t, types.LevelExpert, skills[0].Level)

	w = env.do(t, http.MethodPost, "/document/skills", `{"name": "Rust", "level": "guru"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/document/hobbies", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateEntry(t *testing.T) {
	env := newTestServer(t)
	firstID := env.store.Current().Experience[0].ID

	w := env.do(t, http.MethodPut, "/document/experience/0/company", types.FieldValueRequest{Value: "Globex"})
	require.Equal(t, http.StatusOK, w.Code)

	doc := env.store.Current()
	assert.Equal(t, "Globex", doc.Experience[0].Company)
	assert.Equal(t, firstID, doc.Experience[0].ID, "ids are never reassigned")
	assert.Equal(t, types.Demo().Experience[1], doc.Experience[1])

	tests := []struct {
		name string
		path string
		want int
	}{
		{"index out of range", "/document/experience/9/company", http.StatusNotFound},
		{"negative index", "/document/experience/-1/company", http.StatusNotFound},
		{"non-numeric index", "/document/experience/first/company", http.StatusBadRequest},
		{"unknown field", "/document/experience/0/salary", http.StatusBadRequest},
		{"id is read-only", "/document/skills/0/id", http.StatusBadRequest},
		{"unknown list", "/document/hobbies/0/name", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPut, tt.path, types.FieldValueRequest{Value: "x"})
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRemoveEntry(t *testing.T) {
	env := newTestServer(t)

	w := env.do(t, http.MethodDelete, "/document/skills/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var names []string
	for _, s := range env.store.Current().Skills {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Figma", "User Research", "HTML/CSS", "Design Systems"}, names)

	w = env.do(t, http.MethodDelete, "/document/skills/10", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetTheme(t *testing.T) {
	env := newTestServer(t)

	w := env.do(t, http.MethodPut, "/document/theme", types.ThemeRequest{Color: "#DC2626"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "#dc2626", env.store.Current().ThemeColor)

	for _, color := range []string{"#123456", "red", ""} {
		w = env.do(t, http.MethodPut, "/document/theme", types.ThemeRequest{Color: color})
		assert.Equal(t, http.StatusBadRequest, w.Code, color)
	}
	assert.Equal(t, "#dc2626", env.store.Current().ThemeColor)
}

func TestToggleDensity(t *testing.T) {
	env := newTestServer(t)

	env.do(t, http.MethodPost, "/document/density/toggle", nil)
	assert.Equal(t, types.DensityCompact, env.store.Current().LayoutDensity)

	env.do(t, http.MethodPost, "/document/density/toggle", nil)
	assert.Equal(t, types.DensityComfortable, env.store.Current().LayoutDensity)
}

func TestLoadDemo(t *testing.T) {
	env := newTestServer(t, func(d *Deps) { d.Store = document.NewStore(types.Empty()) })

	w := env.do(t, http.MethodPost, "/document/demo", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeBody[map[string]any](t, w)["applied"])
	assert.Equal(t, types.Empty(), env.store.Current())

	w = env.do(t, http.MethodPost, "/document/demo", types.ConfirmRequest{Confirm: true})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, types.Demo(), env.store.Current())
}

func TestReset(t *testing.T) {
	snaps := storage.NewSnapshots(storage.NewFileBackend(t.TempDir()))
	require.NoError(t, snaps.Save(context.Background(), types.Demo()))

	env := newTestServer(t, func(d *Deps) {
		d.Store = document.NewStore(types.Demo(), document.WithClearer(snaps))
	})

	t.Run("not confirmed", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/document/reset", types.ConfirmRequest{Confirm: false})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, false, decodeBody[map[string]any](t, w)["applied"])
		assert.Equal(t, types.Demo(), env.store.Current())

		_, err := snaps.Load(context.Background())
		assert.NoError(t, err, "snapshot must survive an unconfirmed reset")
	})

	t.Run("confirmed", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/document/reset", types.ConfirmRequest{Confirm: true})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, types.Empty(), env.store.Current())

		_, err := snaps.Load(context.Background())
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}
