package wizard

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/AD2708/multi-part/internal/tui/theme"
)

// imageExtensions are the file types offered by the picker. The picked
// file is captured as an opaque reference; its contents are never read.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
}

// ImageSelectedMsg is sent when an image file is selected.
type ImageSelectedMsg struct {
	Path string
}

// fileItem represents a file or directory in the picker.
type fileItem struct {
	name  string // Name of file/directory
	path  string // Full path
	isDir bool   // True if directory
}

// render returns the display line for this item.
func (f *fileItem) render(width int) string {
	icon := "🖼"
	if f.isDir {
		icon = "📁"
	}

	display := icon + " " + f.name

	// Truncate if too long
	if len(display) > width-2 && width > 5 {
		display = display[:width-5] + "..."
	}

	return display
}

// ImagePicker lets the user navigate directories and pick an image file
// for the photo field.
type ImagePicker struct {
	currentPath string      // Current directory path
	items       []*fileItem // All items in current directory
	selectedIdx int         // Index of selected item
	width       int         // Available width
	height      int         // Available height
}

// NewImagePicker creates a picker rooted at startDir (the working
// directory when empty).
func NewImagePicker(startDir string) *ImagePicker {
	if startDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			cwd = "."
		}
		startDir = cwd
	}

	p := &ImagePicker{
		currentPath: startDir,
		selectedIdx: 0,
		width:       60,
		height:      10,
	}

	p.loadDirectory(startDir)

	return p
}

// loadDirectory loads files and directories from the given path.
// Filters to image files and directories only.
func (p *ImagePicker) loadDirectory(path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return err
	}

	p.items = make([]*fileItem, 0)

	// Add parent directory entry if not at root
	absPath, err := filepath.Abs(path)
	if err == nil && absPath != filepath.Dir(absPath) {
		parentPath := filepath.Dir(absPath)
		p.items = append(p.items, &fileItem{
			name:  "..",
			path:  parentPath,
			isDir: true,
		})
	}

	var dirs []*fileItem
	var files []*fileItem

	for _, entry := range entries {
		fullPath := filepath.Join(path, entry.Name())

		if entry.IsDir() {
			// Include all directories for navigation
			dirs = append(dirs, &fileItem{
				name:  entry.Name(),
				path:  fullPath,
				isDir: true,
			})
		} else {
			ext := strings.ToLower(filepath.Ext(entry.Name()))
			if imageExtensions[ext] {
				files = append(files, &fileItem{
					name:  entry.Name(),
					path:  fullPath,
					isDir: false,
				})
			}
		}
	}

	// Sort directories and files separately
	sort.Slice(dirs, func(i, j int) bool {
		return strings.ToLower(dirs[i].name) < strings.ToLower(dirs[j].name)
	})
	sort.Slice(files, func(i, j int) bool {
		return strings.ToLower(files[i].name) < strings.ToLower(files[j].name)
	})

	// Combine: directories first, then files
	p.items = append(p.items, dirs...)
	p.items = append(p.items, files...)

	p.currentPath = path
	p.selectedIdx = 0

	return nil
}

// SetSize updates the dimensions for the picker.
func (p *ImagePicker) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Update handles messages for the picker.
func (p *ImagePicker) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "up", "k":
			if len(p.items) > 0 && p.selectedIdx > 0 {
				p.selectedIdx--
			}
		case "down", "j":
			if len(p.items) > 0 && p.selectedIdx < len(p.items)-1 {
				p.selectedIdx++
			}
		case "enter":
			if len(p.items) == 0 {
				return nil
			}
			if p.selectedIdx >= 0 && p.selectedIdx < len(p.items) {
				item := p.items[p.selectedIdx]
				if item.isDir {
					// Navigate into directory
					p.loadDirectory(item.path)
				} else {
					path := item.path
					return func() tea.Msg {
						return ImageSelectedMsg{Path: path}
					}
				}
			}
		case "backspace":
			// Go up one directory level
			parentPath := filepath.Dir(p.currentPath)
			if parentPath != p.currentPath {
				p.loadDirectory(parentPath)
			}
		}
	}

	return nil
}

// View renders the picker.
func (p *ImagePicker) View() string {
	t := theme.Current()
	var b strings.Builder

	// Show current path
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle)).Render(p.currentPath))
	b.WriteString("\n\n")

	// Check if directory is empty (excluding parent directory entry)
	hasFiles := false
	for _, item := range p.items {
		if item.name != ".." {
			hasFiles = true
			break
		}
	}

	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Primary)).
		Background(lipgloss.Color(t.BgSurface)).
		Bold(true)
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgMuted)).
		Italic(true)

	if len(p.items) == 0 {
		b.WriteString(emptyStyle.Render("Directory is empty"))
		b.WriteString("\n")
	} else if !hasFiles {
		b.WriteString(emptyStyle.Render("No image files in this directory"))
		b.WriteString("\n\n")

		// Still show parent directory entry if it exists
		if p.items[0].name == ".." {
			b.WriteString(selectedStyle.Render("▸ " + p.items[0].render(p.width)))
			b.WriteString("\n")
		}
	} else {
		for i, item := range p.items {
			line := item.render(p.width)
			if i == p.selectedIdx {
				line = selectedStyle.Render("▸ " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")

	// Hint bar (context-sensitive based on directory state)
	var hintBar string
	switch {
	case len(p.items) == 0:
		hintBar = RenderHintBar(
			"backspace", "go up",
			"esc", "cancel",
		)
	case !hasFiles:
		hintBar = RenderHintBar(
			"enter/backspace", "go up",
			"esc", "cancel",
		)
	default:
		hintBar = RenderHintBar(
			"↑↓/j/k", "navigate",
			"enter", "select",
			"backspace", "up",
			"esc", "cancel",
		)
	}
	b.WriteString(hintBar)

	return b.String()
}

// SelectedPath returns the currently highlighted file path (empty if a
// directory is highlighted).
func (p *ImagePicker) SelectedPath() string {
	if p.selectedIdx >= 0 && p.selectedIdx < len(p.items) {
		item := p.items[p.selectedIdx]
		if !item.isDir {
			return item.path
		}
	}
	return ""
}
