// File: internal/gallery/gallery.go
package gallery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// 副檔名允許清單，MIME 型別由副檔名推導，不嗅探檔案內容
var mimeByExt = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
}

// Catalog 以目錄列表作為圖片清單，每次請求重新掃描，不做快取
type Catalog struct {
	dir string
}

func New(dir string) *Catalog {
	return &Catalog{dir: dir}
}

// Dir 回傳圖庫目錄路徑
func (g *Catalog) Dir() string { return g.dir }

// List 同步掃描目錄並過濾允許的副檔名（不分大小寫）
func (g *Catalog) List() ([]string, error) {
	entries, err := os.ReadDir(g.dir)
	if err != nil {
		return nil, fmt.Errorf("gallery.List: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := MIMEType(e.Name()); ok {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// MIMEType 由副檔名推導 MIME 型別，不在允許清單時 ok 為 false
func MIMEType(name string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	mime, ok := mimeByExt[ext]
	return mime, ok
}

// SafeName 回報檔名是否為單一路徑片段，擋下目錄穿越
func SafeName(name string) bool {
	return name != "" && name == filepath.Base(name) && name != "." && name != ".."
}

// Remove 刪除目錄下的指定檔案
func (g *Catalog) Remove(name string) error {
	if err := os.Remove(filepath.Join(g.dir, name)); err != nil {
		return fmt.Errorf("gallery.Remove: %w", err)
	}
	return nil
}
