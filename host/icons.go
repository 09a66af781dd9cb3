package host

import (
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/skillfield"
)

// LoadIcons decodes each item's icon from fsys, keyed by item ID. Items
// without an icon use defaultIcon. Icons that are missing or fail to decode
// are logged and left out of the map, so the renderer falls back to the
// first letter of the item's name. Each distinct path is decoded once.
func LoadIcons(fsys fs.FS, items []*skillfield.Item, defaultIcon string, logger *log.Logger) map[string]*ebiten.Image {
	if logger == nil {
		logger = log.Default()
	}
	icons := make(map[string]*ebiten.Image, len(items))
	byPath := make(map[string]*ebiten.Image)
	failed := make(map[string]bool)

	for _, it := range items {
		ref := it.Skill.Icon
		if ref == "" {
			ref = defaultIcon
		}
		if ref == "" || fsys == nil || failed[ref] {
			continue
		}
		img, ok := byPath[ref]
		if !ok {
			var err error
			img, _, err = ebitenutil.NewImageFromFileSystem(fsys, ref)
			if err != nil {
				logger.Warn("icon unavailable, using letter", "item", it.ID, "icon", ref, "err", err)
				failed[ref] = true
				continue
			}
			byPath[ref] = img
		}
		icons[it.ID] = img
	}
	logger.Debug("icons loaded", "items", len(icons), "files", len(byPath), "failed", len(failed))
	return icons
}
