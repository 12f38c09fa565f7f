package wizard

import (
	"os"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"
)

// pickerFixture builds a directory tree with a mix of image files, other
// files and a subdirectory.
func pickerFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	for _, name := range []string{"photo.png", "avatar.JPG", "notes.txt", "script.go"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	sub := filepath.Join(dir, "pics")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "cat.webp"), []byte("x"), 0o644))

	return dir
}

func itemNames(p *ImagePicker) []string {
	names := make([]string, 0, len(p.items))
	for _, it := range p.items {
		names = append(names, it.name)
	}
	return names
}

func TestImagePickerFiltersToImages(t *testing.T) {
	dir := pickerFixture(t)
	p := NewImagePicker(dir)

	names := itemNames(p)
	require.Contains(t, names, "photo.png")
	require.Contains(t, names, "avatar.JPG", "extension match is case-insensitive")
	require.Contains(t, names, "pics", "directories stay navigable")
	require.NotContains(t, names, "notes.txt")
	require.NotContains(t, names, "script.go")
}

func TestImagePickerOrdering(t *testing.T) {
	dir := pickerFixture(t)
	p := NewImagePicker(dir)

	names := itemNames(p)
	// Parent entry first, then directories, then files alphabetically.
	require.Equal(t, "..", names[0])
	require.Equal(t, "pics", names[1])
	require.Equal(t, []string{"avatar.JPG", "photo.png"}, names[2:])
}

func TestImagePickerEnterOnFileEmitsSelection(t *testing.T) {
	dir := pickerFixture(t)
	p := NewImagePicker(dir)

	// Move to "avatar.JPG" (index 2 after ".." and "pics").
	p.Update(tea.KeyPressMsg{Text: "down"})
	p.Update(tea.KeyPressMsg{Text: "down"})

	cmd := p.Update(tea.KeyPressMsg{Text: "enter"})
	require.NotNil(t, cmd)

	msg := cmd()
	sel, ok := msg.(ImageSelectedMsg)
	require.True(t, ok, "expected ImageSelectedMsg, got %T", msg)
	require.Equal(t, filepath.Join(dir, "avatar.JPG"), sel.Path)
}

func TestImagePickerEnterOnDirNavigates(t *testing.T) {
	dir := pickerFixture(t)
	p := NewImagePicker(dir)

	// Move to the "pics" directory and enter it.
	p.Update(tea.KeyPressMsg{Text: "down"})
	cmd := p.Update(tea.KeyPressMsg{Text: "enter"})
	require.Nil(t, cmd, "entering a directory emits no message")

	require.Equal(t, filepath.Join(dir, "pics"), p.currentPath)
	require.Contains(t, itemNames(p), "cat.webp")
}

func TestImagePickerBackspaceGoesUp(t *testing.T) {
	dir := pickerFixture(t)
	p := NewImagePicker(filepath.Join(dir, "pics"))

	p.Update(tea.KeyPressMsg{Text: "backspace"})

	require.Equal(t, dir, p.currentPath)
	require.Contains(t, itemNames(p), "photo.png")
}

func TestImagePickerCursorClamps(t *testing.T) {
	dir := pickerFixture(t)
	p := NewImagePicker(dir)

	p.Update(tea.KeyPressMsg{Text: "up"})
	require.Equal(t, 0, p.selectedIdx)

	for i := 0; i < 20; i++ {
		p.Update(tea.KeyPressMsg{Text: "down"})
	}
	require.Equal(t, len(p.items)-1, p.selectedIdx)
}

func TestImagePickerSelectedPath(t *testing.T) {
	dir := pickerFixture(t)
	p := NewImagePicker(dir)

	// Cursor starts on "..", a directory.
	require.Equal(t, "", p.SelectedPath())

	p.Update(tea.KeyPressMsg{Text: "down"})
	p.Update(tea.KeyPressMsg{Text: "down"})
	require.Equal(t, filepath.Join(dir, "avatar.JPG"), p.SelectedPath())
}

func TestImagePickerEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	p := NewImagePicker(dir)

	// Only the parent entry.
	require.Len(t, p.items, 1)
	require.Equal(t, "..", p.items[0].name)

	view := p.View()
	require.Contains(t, view, "No image files in this directory")
}
