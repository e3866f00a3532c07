package infra

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ImageStorage writes product images to local disk under a per-tienda
// prefix and hands back the public URL stored on the producto row.
type ImageStorage struct {
	basePath      string
	publicBaseURL string
}

func NewImageStorage(basePath, publicBaseURL string) *ImageStorage {
	return &ImageStorage{basePath: basePath, publicBaseURL: publicBaseURL}
}

// Save stores the image for a product and returns its public URL. The file
// name is derived from the product id so re-uploads replace the old image.
func (s *ImageStorage) Save(tiendaID, productoID uuid.UUID, ext string, r io.Reader) (string, error) {
	dir := filepath.Join(s.basePath, tiendaID.String())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("storage: create dir: %w", err)
	}

	fileName := productoID.String() + ext
	path := filepath.Join(dir, fileName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("storage: create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("storage: write file: %w", err)
	}

	return fmt.Sprintf("%s/imagenes/%s/%s", s.publicBaseURL, tiendaID, fileName), nil
}

// Dir returns the on-disk directory for a tienda, used to mount the static
// file route.
func (s *ImageStorage) Dir() string { return s.basePath }
