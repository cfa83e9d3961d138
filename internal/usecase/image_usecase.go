package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"atelie/internal/domain/entities"
	"atelie/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidImageFolder = errors.New("invalid image folder")
	ErrInvalidImage       = errors.New("file is not an image")
	ErrStorageUnavailable = errors.New("file storage unavailable")
)

// Catalog image folders.
const (
	ImageFolderProducts = "produtos"
	ImageFolderServices = "servicos"
)

type ImageUpload struct {
	Folder   string
	Filename string
	Data     []byte
}

type IImageUseCase interface {
	Upload(ctx context.Context, actor *entities.Actor, in ImageUpload) (interfaces.StoredObject, error)
}

type ImageUseCase struct {
	blobs  interfaces.IBlobStorage
	now    func() time.Time
	logger *zap.Logger
}

var _ IImageUseCase = (*ImageUseCase)(nil)

func NewImageUseCase(blobs interfaces.IBlobStorage, logger *zap.Logger) *ImageUseCase {
	return &ImageUseCase{blobs: blobs, now: time.Now, logger: logger.Named("image.usecase")}
}

// Upload stores a catalog image under its folder and returns its URL and
// storage path. The content type is sniffed from the bytes.
func (u *ImageUseCase) Upload(ctx context.Context, actor *entities.Actor, in ImageUpload) (interfaces.StoredObject, error) {
	if err := requireStaff(actor); err != nil {
		return interfaces.StoredObject{}, err
	}
	folder := strings.ToLower(strings.TrimSpace(in.Folder))
	if folder != ImageFolderProducts && folder != ImageFolderServices {
		return interfaces.StoredObject{}, ErrInvalidImageFolder
	}
	if len(in.Data) == 0 {
		return interfaces.StoredObject{}, ErrInvalidImage
	}
	contentType := http.DetectContentType(in.Data)
	if !strings.HasPrefix(contentType, "image/") {
		return interfaces.StoredObject{}, ErrInvalidImage
	}
	if u.blobs == nil {
		return interfaces.StoredObject{}, ErrStorageUnavailable
	}

	obj, err := u.blobs.Store(ctx, in.Data, contentType, blobPath(folder, u.now(), in.Filename))
	if err != nil {
		u.logger.Error("upload failed", zap.String("folder", folder), zap.Error(err))
		return interfaces.StoredObject{}, err
	}
	return obj, nil
}
