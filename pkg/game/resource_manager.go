package game

import (
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImagesDir is the subdirectory of the resources directory that holds part images.
const ImagesDir = "images"

// ResourceManager loads and caches the images used by machine parts.
//
// Images are looked up by file name under <resourcesDir>/images/ and are
// decoded only once. A failed load is not cached, so a missing file is
// retried the next time a machine is built.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. It is meant to be used from the
// game loop goroutine only.
//
// Usage:
//
//	rm := NewResourceManager("resources")
//	img, err := rm.LoadImage("sparty.png")
//	if err != nil {
//	    log.Printf("Failed to load image: %v", err)
//	}
type ResourceManager struct {
	resourcesDir string
	imageCache   map[string]*ebiten.Image // Cache for loaded images: name -> Image
}

// NewResourceManager creates a ResourceManager rooted at resourcesDir.
func NewResourceManager(resourcesDir string) *ResourceManager {
	return &ResourceManager{
		resourcesDir: resourcesDir,
		imageCache:   make(map[string]*ebiten.Image),
	}
}

// ResourcesDir returns the root directory images are loaded from.
func (rm *ResourceManager) ResourcesDir() string {
	return rm.resourcesDir
}

// ImagePath returns the file path for an image name.
func (rm *ResourceManager) ImagePath(name string) string {
	return filepath.Join(rm.resourcesDir, ImagesDir, name)
}

// LoadImage loads an image by file name and caches it for future use.
// If the image has already been loaded, it returns the cached instance.
//
// Parameters:
//   - name: The image file name relative to the images directory (e.g., "key.png").
//
// Returns:
//   - A pointer to the loaded ebiten.Image.
//   - An error if the file cannot be opened or decoded.
func (rm *ResourceManager) LoadImage(name string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[name]; exists {
		return cachedImage, nil
	}

	path := rm.ImagePath(name)
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[name] = ebitenImg
	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache.
// It returns nil if the image has not been loaded yet.
func (rm *ResourceManager) GetImage(name string) *ebiten.Image {
	return rm.imageCache[name]
}

// CachedImages returns the number of images currently cached.
func (rm *ResourceManager) CachedImages() int {
	return len(rm.imageCache)
}
