package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/hashicorp/go-multierror"

	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/client/models"
)

// LoadImages turns paths into selected files, keeping their order. Content
// type comes from the file's leading bytes, not its extension. Paths that are
// missing, directories, or not images are skipped; the skips are reported
// together in the returned error while the accepted files are still returned.
func LoadImages(paths []string) ([]models.SelectedFile, error) {
	files := make([]models.SelectedFile, 0, len(paths))
	var errs *multierror.Error

	for _, p := range paths {
		f, err := loadImage(p)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		files = append(files, f)
	}

	return files, errs.ErrorOrNil()
}

func loadImage(path string) (models.SelectedFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return models.SelectedFile{}, fmt.Errorf("%s: %w", path, err)
	}
	if info.IsDir() {
		return models.SelectedFile{}, fmt.Errorf("%s: is a directory", path)
	}

	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return models.SelectedFile{}, fmt.Errorf("%s: detect type: %w", path, err)
	}

	ct, _, _ := strings.Cut(mt.String(), ";")
	if !strings.HasPrefix(ct, "image/") {
		return models.SelectedFile{}, fmt.Errorf("%s: not an image (%s)", path, ct)
	}

	return models.NewSelectedFile(filepath.Base(path), path, ct, info.Size(), nil), nil
}
