// internal/enrichment/gallery.go
package enrichment

import (
	"fmt"
	"math"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"dental-site/internal/models"
)

const (
	photoMaxWidth = 1200

	altPhoto      = "تصویر مطب"
	altLocal      = "نمونه کار"
	altStreetView = "نمای خیابان"
)

var galleryExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// PhotoURL builds a photo-endpoint URL for one upstream photo reference.
func PhotoURL(base, reference, apiKey string) string {
	q := url.Values{}
	q.Set("maxwidth", strconv.Itoa(photoMaxWidth))
	q.Set("photo_reference", reference)
	q.Set("key", apiKey)
	return base + "?" + q.Encode()
}

// StreetViewEmbedURL returns the street-view iframe source for a point.
func StreetViewEmbedURL(c models.Coordinates) string {
	return fmt.Sprintf("https://maps.google.com/maps?q=&layer=c&cbll=%s,%s&cbp=11,0,0,0,0&output=svembed",
		formatCoord(c.Lat), formatCoord(c.Lng))
}

// LocalImages lists gallery image file names in dir, sorted. A missing or
// unreadable directory yields no images.
func LocalImages(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if galleryExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

func (e *Engine) resolveGallery(record *models.PlaceRecord, apiKey string, coords models.Coordinates) []models.GalleryItem {
	items := make([]models.GalleryItem, 0, e.opts.MaxPhotos+1)

	if e.opts.StreetView && finite(coords) {
		items = append(items, models.GalleryItem{
			Kind:     models.GalleryStreetView,
			EmbedURL: StreetViewEmbedURL(coords),
			Alt:      altStreetView,
		})
	}

	if refs := record.PhotoReferences(); apiKey != "" && len(refs) > 0 {
		if len(refs) > e.opts.MaxPhotos {
			refs = refs[:e.opts.MaxPhotos]
		}
		for _, ref := range refs {
			items = append(items, models.GalleryItem{
				Kind: models.GalleryImage,
				URL:  PhotoURL(e.opts.PhotoURL, ref, apiKey),
				Alt:  altPhoto,
			})
		}
		return items
	}

	for _, name := range LocalImages(e.opts.GalleryDir) {
		items = append(items, models.GalleryItem{
			Kind: models.GalleryImage,
			URL:  path.Join(e.opts.ImagePrefix, url.PathEscape(name)),
			Alt:  altLocal,
		})
	}
	return items
}

func finite(c models.Coordinates) bool {
	for _, v := range []float64{c.Lat, c.Lng} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
