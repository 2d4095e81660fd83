package impl

import (
	"context"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"storeradar/config"
	deliverycontext "storeradar/internal/delivery/context"
	"storeradar/internal/domain/constants"
	domainerrors "storeradar/internal/domain/errors"
	"storeradar/internal/domain/service"
	"storeradar/internal/usecase"
	"storeradar/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultUploadExt = "jpg"

var uploadKinds = map[string]struct{}{
	constants.UploadKindComments: {},
	constants.UploadKindVisits:   {},
	constants.UploadKindStores:   {},
}

type uploadService struct {
	storage       service.FileStorage
	maxUploadSize int64
	logger        *slog.Logger
}

// UploadServiceParams holds dependencies for UploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	Storage service.FileStorage
	Config  *config.Config
	Logger  *slog.Logger
}

// NewUploadService creates the image upload use case.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	srv := &uploadService{
		storage: params.Storage,
		logger:  params.Logger,
	}
	if params.Config != nil && params.Config.Storage != nil {
		srv.maxUploadSize = params.Config.Storage.MaxUploadSize
	}

	return srv
}

func (srv *uploadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadImage stores content under {kind}/{uuid}.{ext}.
func (srv *uploadService) UploadImage(ctx context.Context, kind, filename string, content []byte) (*usecase.UploadOutput, error) {
	if _, ok := uploadKinds[kind]; !ok {
		return nil, domainerrors.ErrUnsupportedUpload.WrapMessage("unknown upload kind " + kind)
	}
	if len(content) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("file is empty")
	}
	if srv.maxUploadSize > 0 && int64(len(content)) > srv.maxUploadSize {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("file exceeds " + util.FormatBytes(srv.maxUploadSize))
	}

	name := uuid.NewString() + "." + uploadExt(filename)
	key := path.Join(kind, name)

	if err := srv.storage.Put(ctx, key, content, http.DetectContentType(content)); err != nil {
		srv.log(ctx).Error("Failed to store upload", slog.String("key", key), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store upload")
	}
	srv.log(ctx).Info("Upload stored",
		slog.String("key", key),
		slog.String("size", util.FormatBytes(int64(len(content)))),
		slog.String("sha256", util.Checksum(content)),
	)

	return &usecase.UploadOutput{URL: srv.storage.URL(key), Filename: name}, nil
}

// Open returns a stored upload. The caller closes the body.
func (srv *uploadService) Open(ctx context.Context, kind, name string) (*service.StoredObject, error) {
	if _, ok := uploadKinds[kind]; !ok {
		return nil, domainerrors.ErrObjectNotFound
	}
	if name == "" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return nil, domainerrors.ErrObjectNotFound
	}

	obj, err := srv.storage.Open(ctx, path.Join(kind, name))
	if err != nil {
		if errors.Is(err, service.ErrObjectNotFound) {
			return nil, domainerrors.ErrObjectNotFound
		}

		return nil, errors.Wrap(err, "failed to open upload")
	}

	return obj, nil
}

// uploadExt returns the lowercase alphanumeric extension of filename, or jpg.
func uploadExt(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if ext == "" || len(ext) > 5 {
		return defaultUploadExt
	}
	for _, r := range ext {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return defaultUploadExt
		}
	}

	return ext
}
