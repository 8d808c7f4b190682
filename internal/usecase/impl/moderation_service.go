package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "ecobazaar/internal/delivery/context"
	"ecobazaar/internal/domain/carbon"
	"ecobazaar/internal/domain/entity"
	domainerrors "ecobazaar/internal/domain/errors"
	"ecobazaar/internal/domain/repository"
	"ecobazaar/internal/domain/service"
	"ecobazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type moderationService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	txManager   repository.TransactionManager
	engine      *carbon.Engine
	notifier    service.AccountNotifier
	logger      *slog.Logger
}

// ModerationServiceParams holds dependencies for ModerationService, injected by Fx.
type ModerationServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	TxManager   repository.TransactionManager
	Engine      *carbon.Engine
	Notifier    service.AccountNotifier
	Logger      *slog.Logger
}

// NewModerationService creates the admin moderation use case.
func NewModerationService(params ModerationServiceParams) usecase.ModerationUsecase {
	return &moderationService{
		userRepo:    params.UserRepo,
		productRepo: params.ProductRepo,
		txManager:   params.TxManager,
		engine:      params.Engine,
		notifier:    params.Notifier,
		logger:      params.Logger,
	}
}

func (srv *moderationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *moderationService) ApproveSeller(ctx context.Context, sellerID uuid.UUID, _ string) error {
	seller, err := findSeller(ctx, srv.userRepo, sellerID)
	if err != nil {
		return err
	}

	return srv.setUserActive(ctx, seller, true, "Seller Approved",
		"Your seller account is approved!", entity.NotificationSellerApproval)
}

func (srv *moderationService) RejectSeller(ctx context.Context, sellerID uuid.UUID, notes string) error {
	seller, err := findSeller(ctx, srv.userRepo, sellerID)
	if err != nil {
		return err
	}

	return srv.setUserActive(ctx, seller, false, "Seller Application Rejected",
		"Reason: "+notes, entity.NotificationSellerRejection)
}

func (srv *moderationService) BlockSeller(ctx context.Context, sellerID uuid.UUID, reason string) error {
	seller, err := findSeller(ctx, srv.userRepo, sellerID)
	if err != nil {
		return err
	}

	return srv.setUserActive(ctx, seller, false, "Account Blocked",
		"Reason: "+reason, entity.NotificationAccountBlocked)
}

func (srv *moderationService) UpdateUserStatus(ctx context.Context, userID uuid.UUID, active bool) error {
	user, err := findUser(ctx, srv.userRepo, userID)
	if err != nil {
		return err
	}

	title, message := "Account Deactivated", "Your account has been deactivated. Contact support."
	if active {
		title, message = "Account Activated", "Your account has been activated."
	}

	return srv.setUserActive(ctx, user, active, title, message, entity.NotificationAccountStatus)
}

func (srv *moderationService) ApproveAdmin(ctx context.Context, userID uuid.UUID) error {
	user, err := findUser(ctx, srv.userRepo, userID)
	if err != nil {
		return err
	}
	if user.Role != entity.RoleAdmin {
		return domainerrors.ErrValidationFailed.WrapMessage("account did not request admin access")
	}

	return srv.setUserActive(ctx, user, true, "Admin Access Approved",
		"Your request for Admin access has been approved.", entity.NotificationAccessApproved)
}

func (srv *moderationService) RejectUser(ctx context.Context, userID uuid.UUID) error {
	user, err := findUser(ctx, srv.userRepo, userID)
	if err != nil {
		return err
	}

	return srv.setUserActive(ctx, user, false, "Account Status Update",
		"Your account request was rejected or access revoked.", entity.NotificationAccountRejected)
}

func (srv *moderationService) ApproveProduct(ctx context.Context, productID uuid.UUID, _ string) error {
	product, err := findProduct(ctx, srv.productRepo, productID)
	if err != nil {
		return err
	}

	return srv.setProductActive(ctx, product, true, "Product Approved",
		fmt.Sprintf("Your product '%s' is live.", product.Name), entity.NotificationProductApproval)
}

func (srv *moderationService) RejectProduct(ctx context.Context, productID uuid.UUID, reason string) error {
	product, err := findProduct(ctx, srv.productRepo, productID)
	if err != nil {
		return err
	}

	return srv.setProductActive(ctx, product, false, "Product Rejected",
		"Reason: "+reason, entity.NotificationProductRejection)
}

func (srv *moderationService) UpdateProductStatus(ctx context.Context, productID uuid.UUID, active bool) error {
	product, err := findProduct(ctx, srv.productRepo, productID)
	if err != nil {
		return err
	}

	title := "Product Suspended"
	if active {
		title = "Product Approved"
	}

	return srv.setProductActive(ctx, product, active, title,
		"Product: "+product.Name, entity.NotificationProductStatus)
}

// RemoveProduct deletes a listing and tells its seller why.
func (srv *moderationService) RemoveProduct(ctx context.Context, productID uuid.UUID, reason string) error {
	product, err := findProduct(ctx, srv.productRepo, productID)
	if err != nil {
		return err
	}

	notification := &entity.Notification{
		UserID:  product.SellerID,
		Title:   "Product Removed",
		Message: fmt.Sprintf("Your product '%s' was removed. Reason: %s", product.Name, reason),
		Type:    entity.NotificationProductRemoval,
	}
	err = srv.commitWithNotification(ctx, notification, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewProductRepository().Delete(ctx, productID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to remove product")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Product removed by admin", slog.Any("productID", productID), slog.String("reason", reason))

	return nil
}

// UpdateProductEcoData rescores a product. Measurements left nil keep their stored values.
func (srv *moderationService) UpdateProductEcoData(ctx context.Context, productID uuid.UUID, input usecase.EcoDataInput) (*usecase.ProductDetails, error) {
	product, err := findProduct(ctx, srv.productRepo, productID)
	if err != nil {
		return nil, err
	}

	weight := product.Footprint.WeightKg()
	if input.WeightKg != nil {
		weight = *input.WeightKg
	}
	distance := product.Footprint.ShippingDistanceKm()
	if input.ShippingDistanceKm != nil {
		distance = *input.ShippingDistanceKm
	}

	footprint, err := srv.engine.Score(weight, distance, input.IsEcoFriendly)
	if err != nil {
		return nil, err
	}

	product.Footprint = footprint
	product.UpdatedAt = time.Now()
	notification := &entity.Notification{
		UserID:  product.SellerID,
		Title:   "Product Updated",
		Message: fmt.Sprintf("Admin updated eco-data for '%s'", product.Name),
		Type:    entity.NotificationProductUpdate,
	}
	if err := srv.commitWithNotification(ctx, notification, func(repoFactory repository.RepositoryFactory) error {
		return saveProduct(ctx, repoFactory.NewProductRepository(), product)
	}); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Product eco data updated",
		slog.Any("productID", productID),
		slog.String("carbonScore", footprint.CarbonScore().String()),
		slog.String("adminNotes", input.AdminNotes),
	)

	details := usecase.NewProductDetails(product)

	return &details, nil
}

func (srv *moderationService) setUserActive(ctx context.Context, user *entity.User, active bool, title, message, notificationType string) error {
	user.IsActive = active
	user.UpdatedAt = time.Now()
	notification := &entity.Notification{UserID: user.ID, Title: title, Message: message, Type: notificationType}
	err := srv.commitWithNotification(ctx, notification, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().Update(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return domainerrors.ErrUserUpdateFailed.WrapMessage(err.Error())
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Account status changed",
		slog.Any("userID", user.ID),
		slog.Bool("active", active),
		slog.String("type", notificationType),
	)

	return nil
}

func (srv *moderationService) setProductActive(ctx context.Context, product *entity.Product, active bool, title, message, notificationType string) error {
	product.IsActive = active
	product.UpdatedAt = time.Now()
	notification := &entity.Notification{UserID: product.SellerID, Title: title, Message: message, Type: notificationType}
	err := srv.commitWithNotification(ctx, notification, func(repoFactory repository.RepositoryFactory) error {
		return saveProduct(ctx, repoFactory.NewProductRepository(), product)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Product status changed",
		slog.Any("productID", product.ID),
		slog.Bool("active", active),
		slog.String("type", notificationType),
	)

	return nil
}

// commitWithNotification applies change and stores notification in one
// transaction, then publishes the notification once the transaction committed.
func (srv *moderationService) commitWithNotification(
	ctx context.Context,
	notification *entity.Notification,
	change func(repoFactory repository.RepositoryFactory) error,
) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := change(repoFactory); err != nil {
			return err
		}
		if err := srv.notifier.Record(ctx, repoFactory.NewNotificationRepository(), notification); err != nil {
			return errors.Wrap(err, "failed to notify account")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.notifier.Publish(ctx, notification)

	return nil
}

func saveProduct(ctx context.Context, productRepo repository.ProductRepository, product *entity.Product) error {
	if err := productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return domainerrors.ErrProductSaveFailed.WrapMessage(err.Error())
	}

	return nil
}
