package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/tatlam/internal/adapters/memory"
	"github.com/example/tatlam/internal/app"
	"github.com/example/tatlam/internal/ports/secondary"
	"github.com/example/tatlam/internal/render"
)

func listFiles(t *testing.T, dir string) []string {
	t.Helper()

	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	require.NoError(t, err)
	return files
}

func TestRender_WritesOneFilePerRecord(t *testing.T) {
	repo := seedRepo(t)
	svc := app.NewRenderService(repo, zap.NewNop())
	out := t.TempDir()

	count, err := svc.Render(context.Background(), app.RenderOptions{OutDir: out})
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Len(t, listFiles(t, out), 3)
}

func TestRender_CategoryFilterSubset(t *testing.T) {
	repo := seedRepo(t)
	svc := app.NewRenderService(repo, zap.NewNop())
	out := t.TempDir()

	count, err := svc.Render(context.Background(), app.RenderOptions{Category: "ביטחון", OutDir: out})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	files := listFiles(t, out)
	require.Len(t, files, 2)

	var contents string
	for _, f := range files {
		data, err := os.ReadFile(f)
		require.NoError(t, err)
		contents += string(data)
	}
	assert.Contains(t, contents, "חדירה לשטח")
	assert.Contains(t, contents, "חבלה במתקן")
	assert.NotContains(t, contents, "גניבת ציוד")
}

func TestRender_BundleFilterExact(t *testing.T) {
	repo := seedRepo(t)
	svc := app.NewRenderService(repo, zap.NewNop())
	out := t.TempDir()

	count, err := svc.Render(context.Background(), app.RenderOptions{BundleID: "B-2", OutDir: out})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	files := listFiles(t, out)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "חבלה במתקן")
}

func TestRender_Limit(t *testing.T) {
	repo := seedRepo(t)
	svc := app.NewRenderService(repo, zap.NewNop())
	out := t.TempDir()

	count, err := svc.Render(context.Background(), app.RenderOptions{Limit: 2, OutDir: out})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRender_CollisionSuffix(t *testing.T) {
	repo := memory.NewScenarioRepository()
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Insert(ctx, &secondary.ScenarioRecord{Title: "אותו שם"}))
	}

	svc := app.NewRenderService(repo, zap.NewNop())
	out := t.TempDir()

	count, err := svc.Render(ctx, app.RenderOptions{OutDir: out})
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	for _, name := range []string{"אותו_שם.md", "אותו_שם-1.md", "אותו_שם-2.md"} {
		_, err := os.Stat(filepath.Join(out, name))
		assert.NoError(t, err, "expected %s", name)
	}
}

func TestRender_PrefixIDAndSubdirs(t *testing.T) {
	repo := seedRepo(t)
	svc := app.NewRenderService(repo, zap.NewNop())
	out := t.TempDir()

	count, err := svc.Render(context.Background(), app.RenderOptions{
		OutDir:            out,
		SubdirsByCategory: true,
		PrefixID:          true,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	// Record 2 is the theft scenario; its card lands in the category
	// subdirectory with the ID prefix.
	expected := filepath.Join(out, render.Slug("גניבה"), "2_"+render.Slug("גניבת ציוד")+".md")
	_, err = os.Stat(expected)
	assert.NoError(t, err, "expected %s", expected)
}

func TestRender_BadTemplatePathFailsUpFront(t *testing.T) {
	repo := seedRepo(t)
	svc := app.NewRenderService(repo, zap.NewNop())
	out := t.TempDir()

	count, err := svc.Render(context.Background(), app.RenderOptions{
		OutDir:       out,
		TemplatePath: filepath.Join(t.TempDir(), "missing.tmpl"),
	})
	require.Error(t, err)
	assert.Equal(t, 0, count)
	assert.Empty(t, listFiles(t, out), "no files written when the template is bad")
}

func TestRender_CustomTemplate(t *testing.T) {
	repo := seedRepo(t)
	svc := app.NewRenderService(repo, zap.NewNop())
	out := t.TempDir()

	tplPath := filepath.Join(t.TempDir(), "card.tmpl")
	require.NoError(t, os.WriteFile(tplPath, []byte("TITLE={{.title}}"), 0644))

	count, err := svc.Render(context.Background(), app.RenderOptions{
		BundleID:     "B-2",
		OutDir:       out,
		TemplatePath: tplPath,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	files := listFiles(t, out)
	require.Len(t, files, 1)
	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Equal(t, "TITLE=חבלה במתקן", string(data))
}
