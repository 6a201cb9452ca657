package usecase

import (
	"github.com/samibentaiba/itc-hub-sub000/internal/notify"
	"github.com/samibentaiba/itc-hub-sub000/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all synchronizer interfaces.
type InterfaceUsecase interface {
	UserSyncInterface
	TeamSyncInterface
	DepartmentSyncInterface
	EventSyncInterface
	MemberSyncInterface
	SyncStateInterface
}

// New constructs the sync engine with its dependencies.
func New(log *zap.SugaredLogger, api domain.Transport, n notify.Notifier) InterfaceUsecase {
	return domain.New(log, api, n)
}
