package impl

import (
	"context"
	"log/slog"

	deliverycontext "adboard/internal/delivery/context"
	"adboard/internal/domain/constants"
	"adboard/internal/domain/entity"
	domainerrors "adboard/internal/domain/errors"
	"adboard/internal/domain/repository"
	"adboard/internal/domain/service"
	"adboard/internal/errors"
	"adboard/internal/usecase"

	"go.uber.org/fx"
)

// adService implements the AdUsecase interface.
type adService struct {
	txManager repository.TransactionManager
	adRepo    repository.AdRepository
	userRepo  repository.UserRepository
	images    service.ImageStorage
	qrcodes   service.QRCodeService
	publisher service.EventPublisher
	logger    *slog.Logger
}

// AdServiceParams holds dependencies for AdService, injected by Fx.
type AdServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	AdRepo        repository.AdRepository
	UserRepo      repository.UserRepository
	ImageStorage  service.ImageStorage
	QRCodeService service.QRCodeService
	Publisher     service.EventPublisher
	Logger        *slog.Logger
}

// NewAdService is the constructor for adService.
func NewAdService(params AdServiceParams) usecase.AdUsecase {
	return &adService{
		txManager: params.TxManager,
		adRepo:    params.AdRepo,
		userRepo:  params.UserRepo,
		images:    params.ImageStorage,
		qrcodes:   params.QRCodeService,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *adService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAds returns every ad, newest first.
func (srv *adService) ListAds(ctx context.Context) (*usecase.AdsOutput, error) {
	ads, err := srv.adRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ads")
	}

	return toAdsOutput(ads), nil
}

// GetAd returns the full ad card.
func (srv *adService) GetAd(ctx context.Context, principal entity.Principal, id int64) (*usecase.ExtendedAdOutput, error) {
	if _, err := currentUser(ctx, srv.userRepo, principal); err != nil {
		return nil, err
	}

	ad, err := findAd(ctx, srv.adRepo, id)
	if err != nil {
		return nil, err
	}

	return toExtendedAdOutput(ad), nil
}

// ListMyAds returns the ads owned by the caller.
func (srv *adService) ListMyAds(ctx context.Context, principal entity.Principal) (*usecase.AdsOutput, error) {
	user, err := currentUser(ctx, srv.userRepo, principal)
	if err != nil {
		return nil, err
	}

	ads, err := srv.adRepo.ListByAuthor(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own ads")
	}

	return toAdsOutput(ads), nil
}

// CreateAd stores the optional image, then persists the ad with the caller as author.
func (srv *adService) CreateAd(ctx context.Context, principal entity.Principal, input *usecase.CreateAdInput, image *usecase.ImageUpload) (*usecase.AdOutput, error) {
	user, err := currentUser(ctx, srv.userRepo, principal)
	if err != nil {
		return nil, err
	}

	ad := &entity.Ad{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		AuthorID:    user.ID,
		Author:      user,
	}

	if image != nil {
		path, err := srv.images.Save(ctx, image.Data, image.Filename, service.ImageNamespaceAds)
		if err != nil {
			return nil, errors.Wrap(err, "failed to store ad image")
		}
		ad.ImagePath = &path
	}

	if err := srv.adRepo.Create(ctx, ad); err != nil {
		discardImage(ctx, srv.images, srv.log(ctx), derefString(ad.ImagePath))

		return nil, errors.Wrap(err, "failed to create ad")
	}

	srv.log(ctx).Info("Ad created", slog.Int64("adID", ad.ID), slog.Int64("authorID", user.ID))
	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.AdEvent{
		Type:      constants.EventAdCreated,
		AdID:      ad.ID,
		ActorID:   user.ID,
		ImagePath: derefString(ad.ImagePath),
	})

	return toAdOutput(ad), nil
}

// UpdateAd applies the non-nil fields of input to an ad the caller may modify.
func (srv *adService) UpdateAd(ctx context.Context, principal entity.Principal, id int64, input *usecase.UpdateAdInput) (*usecase.AdOutput, error) {
	user, err := currentUser(ctx, srv.userRepo, principal)
	if err != nil {
		return nil, err
	}

	ad, err := loadOwnedAd(ctx, srv.adRepo, user, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		ad.Title = *input.Title
	}
	if input.Description != nil {
		ad.Description = *input.Description
	}
	if input.Price != nil {
		ad.Price = *input.Price
	}

	if err := srv.adRepo.Update(ctx, ad); err != nil {
		return nil, updateFailure(err, "ad")
	}

	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.AdEvent{
		Type:    constants.EventAdUpdated,
		AdID:    ad.ID,
		ActorID: user.ID,
	})

	return toAdOutput(ad), nil
}

// DeleteAd removes the ad and its comments in one transaction, then releases the image.
func (srv *adService) DeleteAd(ctx context.Context, principal entity.Principal, id int64) error {
	user, err := currentUser(ctx, srv.userRepo, principal)
	if err != nil {
		return err
	}

	ad, err := loadOwnedAd(ctx, srv.adRepo, user, id)
	if err != nil {
		return err
	}

	var removedComments int64
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		removed, err := repoFactory.CommentRepo().DeleteByAd(ctx, ad.ID)
		if err != nil {
			return errors.Wrap(err, "failed to delete comments of ad")
		}
		removedComments = removed

		if err := repoFactory.AdRepo().Delete(ctx, ad.ID); err != nil {
			if errors.Is(err, repository.ErrAdNotFound) {
				return errors.Wrapf(domainerrors.ErrAdNotFound, "ad %d", ad.ID)
			}

			return errors.Wrap(err, "failed to delete ad")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete ad", slog.Int64("adID", ad.ID), slog.Any("error", err))

		return err
	}

	discardImage(ctx, srv.images, srv.log(ctx), derefString(ad.ImagePath))

	srv.log(ctx).Info("Ad deleted",
		slog.Int64("adID", ad.ID),
		slog.Int64("actorID", user.ID),
		slog.Int64("removedComments", removedComments),
	)
	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.AdEvent{
		Type:      constants.EventAdDeleted,
		AdID:      ad.ID,
		ActorID:   user.ID,
		ImagePath: derefString(ad.ImagePath),
	})

	return nil
}

// UpdateAdImage saves the new image, persists its path and then drops the previous file.
func (srv *adService) UpdateAdImage(ctx context.Context, principal entity.Principal, id int64, image *usecase.ImageUpload) ([]byte, error) {
	if image == nil || len(image.Data) == 0 {
		return nil, errors.WithStack(domainerrors.ErrEmptyImage)
	}

	user, err := currentUser(ctx, srv.userRepo, principal)
	if err != nil {
		return nil, err
	}

	ad, err := loadOwnedAd(ctx, srv.adRepo, user, id)
	if err != nil {
		return nil, err
	}

	path, err := srv.images.Save(ctx, image.Data, image.Filename, service.ImageNamespaceAds)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store ad image")
	}

	previous := derefString(ad.ImagePath)
	ad.ImagePath = &path

	if err := srv.adRepo.Update(ctx, ad); err != nil {
		discardImage(ctx, srv.images, srv.log(ctx), path)

		return nil, updateFailure(err, "ad")
	}

	discardImage(ctx, srv.images, srv.log(ctx), previous)

	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.AdEvent{
		Type:      constants.EventAdUpdated,
		AdID:      ad.ID,
		ActorID:   user.ID,
		ImagePath: path,
	})

	return image.Data, nil
}

// GetAdImage returns the stored image bytes of an ad.
func (srv *adService) GetAdImage(ctx context.Context, id int64) ([]byte, error) {
	ad, err := findAd(ctx, srv.adRepo, id)
	if err != nil {
		return nil, err
	}

	if !ad.HasImage() {
		return nil, errors.Wrapf(domainerrors.ErrImageNotFound, "ad %d has no image", id)
	}

	data, err := srv.images.Load(ctx, *ad.ImagePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load ad image")
	}

	return data, nil
}

// GetAdQRCode renders a PNG QR code linking to the ad.
func (srv *adService) GetAdQRCode(ctx context.Context, id int64) ([]byte, error) {
	ad, err := findAd(ctx, srv.adRepo, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodes.GenerateAdQR(ad.ID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return png, nil
}
